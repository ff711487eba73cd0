package main

import (
	"context"
	"io"

	"github.com/contactsift/contactsift"
	"github.com/contactsift/contactsift/scan"
	"github.com/contactsift/contactsift/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Contacts contactsift.ContactService
	Sitemaps contactsift.SitemapService
	Scanner  *scan.Scanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan   ScanCmd   `cmd:"" help:"Scan a website for contact information"`
	List   ListCmd   `cmd:"" help:"List stored contacts"`
	Delete DeleteCmd `cmd:"" help:"Delete all contacts for a domain"`
	Export ExportCmd `cmd:"" help:"Export contacts as JSON or CSV"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URL         string   `arg:"" help:"Website URL to scan"`
	Preview     bool     `short:"p" help:"Show URLs without scanning"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	MaxPages    int      `short:"n" default:"50" help:"Maximum pages to scan"`
	Rate        float64  `default:"1.0" help:"Requests per second per domain"`
	Verbose     bool     `short:"v" help:"Log service calls to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Domain string `short:"d" help:"Limit to a source domain"`
	Kind   string `short:"k" help:"Limit to a kind (email, phone, name)"`
	Limit  int    `default:"50" help:"Maximum records to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Domain string `arg:"" help:"Source domain"`
	Force  bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Domain string `arg:"" optional:"" help:"Limit to a source domain"`
	Format string `default:"json" enum:"json,csv" help:"Output format (json or csv)"`
}
