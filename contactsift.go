// Package contactsift extracts, validates, deduplicates, and scores
// contact information (emails, phone numbers, personal names) found in
// text and HTML documents retrieved from the web. It turns raw page
// content into ranked, false-positive-filtered lists of structured
// contact records.
//
// This package contains domain types, the extraction engine, and its
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations of collaborator interfaces live in subdirectories
// named after their primary dependency (e.g., sqlite/, goquery/, http/).
package contactsift
