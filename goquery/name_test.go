package goquery_test

import (
	"testing"

	"github.com/contactsift/contactsift"
	"github.com/contactsift/contactsift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_NameCandidates(t *testing.T) {
	t.Parallel()

	t.Run("extracts JSON-LD Person names", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.NameCandidates(`<script type="application/ld+json">
			{"@type":"Person","name":"Maria Garcia"}
		</script>`)

		require.NoError(t, err)
		c := findCandidate(cands, "Maria Garcia")
		require.NotNil(t, c)
		assert.Equal(t, contactsift.SourceStructured, c.Source)
	})

	t.Run("joins givenName and familyName when name is absent", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.NameCandidates(`<script type="application/ld+json">
			{"@type":"Person","givenName":"Jane","familyName":"Smith"}
		</script>`)

		require.NoError(t, err)
		assert.NotNil(t, findCandidate(cands, "Jane Smith"))
	})

	t.Run("ignores non-person JSON-LD names", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.NameCandidates(`<script type="application/ld+json">
			{"@type":"Organization","name":"Acme Corporation"}
		</script>`)

		require.NoError(t, err)
		assert.Nil(t, findCandidate(cands, "Acme Corporation"))
	})

	t.Run("extracts author meta tags", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.NameCandidates(`<meta name="author" content="John Smith">`)

		require.NoError(t, err)
		c := findCandidate(cands, "John Smith")
		require.NotNil(t, c)
		assert.Equal(t, contactsift.SourceMeta, c.Source)
	})

	t.Run("joins profile first and last name meta pairs", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.NameCandidates(`<html><head>
			<meta property="profile:first_name" content="Maria">
			<meta property="profile:last_name" content="Garcia">
		</head></html>`)

		require.NoError(t, err)
		assert.NotNil(t, findCandidate(cands, "Maria Garcia"))
	})

	t.Run("extracts Person-scoped microdata names only", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.NameCandidates(`<html><body>
			<div itemscope itemtype="https://schema.org/Person">
				<span itemprop="name">Jane Smith</span>
			</div>
			<div itemscope itemtype="https://schema.org/Product">
				<span itemprop="name">Widget Deluxe</span>
			</div>
		</body></html>`)

		require.NoError(t, err)
		assert.NotNil(t, findCandidate(cands, "Jane Smith"))
		assert.Nil(t, findCandidate(cands, "Widget Deluxe"))
	})

	t.Run("extracts names from author-like class markers", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.NameCandidates(`<p class="author">John Smith</p>`)

		require.NoError(t, err)
		assert.NotNil(t, findCandidate(cands, "John Smith"))
	})

	t.Run("derives names from linkedin profile slugs", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.NameCandidates(`<a href="https://www.linkedin.com/in/jane-m-smith-8a31b2">Profile</a>`)

		require.NoError(t, err)
		c := findCandidate(cands, "jane m smith")
		require.NotNil(t, c)
		assert.Equal(t, contactsift.SourceSocial, c.Source)
	})

	t.Run("derives names from twitter and x profile handles", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.NameCandidates(`
			<a href="https://twitter.com/jane_smith">Twitter</a>
			<a href="https://x.com/john_doe">X</a>
			<a href="https://twitter.com/intent/tweet?text=hi">Share</a>
			<a href="https://linux.com/kernel_dev">Not a profile</a>`)

		require.NoError(t, err)
		c := findCandidate(cands, "jane smith")
		require.NotNil(t, c)
		assert.Equal(t, contactsift.SourceSocial, c.Source)
		assert.NotNil(t, findCandidate(cands, "john doe"))
		assert.Nil(t, findCandidate(cands, "intent"))
		assert.Nil(t, findCandidate(cands, "kernel dev"))
	})
}
