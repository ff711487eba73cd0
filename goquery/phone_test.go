package goquery_test

import (
	"testing"

	"github.com/contactsift/contactsift"
	"github.com/contactsift/contactsift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_PhoneCandidates(t *testing.T) {
	t.Parallel()

	t.Run("extracts tel hrefs with link text as context", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.PhoneCandidates(`<a href="tel:+12125557890">Call us</a>`)

		require.NoError(t, err)
		c := findCandidate(cands, "+12125557890")
		require.NotNil(t, c)
		assert.Equal(t, contactsift.SourceTel, c.Source)
		assert.Equal(t, "Call us", c.Context)
	})

	t.Run("extracts telephone microdata", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.PhoneCandidates(`<span itemprop="telephone">(212) 555-7890</span>`)

		require.NoError(t, err)
		assert.NotNil(t, findCandidate(cands, "(212) 555-7890"))
	})

	t.Run("prefers the content attribute of microdata elements", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.PhoneCandidates(`<span itemprop="telephone" content="+12125557890">Call</span>`)

		require.NoError(t, err)
		assert.NotNil(t, findCandidate(cands, "+12125557890"))
	})

	t.Run("extracts JSON-LD telephone fields", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.PhoneCandidates(`<script type="application/ld+json">
			{"@type":"LocalBusiness","name":"Acme","telephone":"+1-212-555-7890"}
		</script>`)

		require.NoError(t, err)
		c := findCandidate(cands, "+1-212-555-7890")
		require.NotNil(t, c)
		assert.Equal(t, contactsift.SourceStructured, c.Source)
	})

	t.Run("extracts phone meta tags", func(t *testing.T) {
		t.Parallel()

		src := goquery.NewSource()
		cands, err := src.PhoneCandidates(`<meta property="business:contact_data:phone_number" content="212-555-7890">`)

		require.NoError(t, err)
		c := findCandidate(cands, "212-555-7890")
		require.NotNil(t, c)
		assert.Equal(t, contactsift.SourceMeta, c.Source)
	})
}
