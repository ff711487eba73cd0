package contactsift_test

import (
	"regexp"
	"testing"

	"github.com/contactsift/contactsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a well-formed record", func(t *testing.T) {
		t.Parallel()

		rec := contactsift.ContactRecord{
			Kind:       contactsift.KindEmail,
			Value:      "info@acme.com",
			Confidence: 0.7,
		}
		assert.NoError(t, rec.Validate())
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		t.Parallel()

		rec := contactsift.ContactRecord{Kind: "fax", Value: "x", Confidence: 0.5}
		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, contactsift.EINVALID, contactsift.ErrorCode(err))
	})

	t.Run("rejects empty values and out-of-range confidence", func(t *testing.T) {
		t.Parallel()

		rec := contactsift.ContactRecord{Kind: contactsift.KindPhone, Confidence: 0.5}
		assert.Error(t, rec.Validate())

		rec = contactsift.ContactRecord{Kind: contactsift.KindPhone, Value: "5551234567", Confidence: 1.5}
		assert.Error(t, rec.Validate())
	})
}

func TestContactRecord_DedupKey(t *testing.T) {
	t.Parallel()

	email := contactsift.ContactRecord{Kind: contactsift.KindEmail, Value: "Jane.Doe@Acme.COM"}
	assert.Equal(t, "jane.doe@acme.com", email.DedupKey())

	phone := contactsift.ContactRecord{Kind: contactsift.KindPhone, Value: "+1 (555) 123-4567"}
	assert.Equal(t, "15551234567", phone.DedupKey())

	name := contactsift.ContactRecord{Kind: contactsift.KindName, Value: "Maria  Garcia"}
	assert.Equal(t, "maria garcia", name.DedupKey())
}

func TestSource_Structural(t *testing.T) {
	t.Parallel()

	assert.False(t, contactsift.SourcePattern.Structural())
	assert.True(t, contactsift.SourceMailto.Structural())
	assert.True(t, contactsift.SourceTel.Structural())
	assert.True(t, contactsift.SourceStructured.Structural())
	assert.True(t, contactsift.SourceMeta.Structural())
	assert.True(t, contactsift.SourceSocial.Structural())
}

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter passes everything", func(t *testing.T) {
		t.Parallel()

		var f *contactsift.URLFilter
		assert.True(t, f.Match("https://acme.com/anything"))
	})

	t.Run("include and exclude patterns", func(t *testing.T) {
		t.Parallel()

		f := &contactsift.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/contact`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`\.pdf$`)},
		}
		assert.True(t, f.Match("https://acme.com/contact"))
		assert.False(t, f.Match("https://acme.com/blog"))
		assert.False(t, f.Match("https://acme.com/contact/form.pdf"))
	})
}
