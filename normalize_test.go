package contactsift_test

import (
	"testing"

	"github.com/contactsift/contactsift"
	"github.com/stretchr/testify/assert"
)

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", contactsift.CollapseWhitespace("  a \n b\t\tc "))
	assert.Equal(t, "", contactsift.CollapseWhitespace("   \n\t "))
	assert.Equal(t, "already clean", contactsift.CollapseWhitespace("already clean"))
}

func TestStripWrapperChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info@firm.org", contactsift.StripWrapperChars("<info@firm.org>"))
	assert.Equal(t, "jane", contactsift.StripWrapperChars(`"jane"`))
	assert.Equal(t, "abc", contactsift.StripWrapperChars("a\x00b\x07c"))
	// Interior apostrophes survive; only wrapping quotes are dropped.
	assert.Equal(t, "o'brien patrick", contactsift.StripWrapperChars("o'brien patrick"))
	assert.Equal(t, "Patrick O'Brien", contactsift.StripWrapperChars(`"Patrick O'Brien"`))
}

func TestDeobfuscate(t *testing.T) {
	t.Parallel()

	t.Run("replaces bracket markers", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "info@acme.com", contactsift.Deobfuscate("info [at] acme [dot] com"))
		assert.Equal(t, "info@acme.com", contactsift.Deobfuscate("info (at) acme (dot) com"))
		assert.Equal(t, "info@acme.com", contactsift.Deobfuscate("info {at} acme {dot} com"))
	})

	t.Run("replaces spelled-out markers", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "john@company.com", contactsift.Deobfuscate("john at company dot com"))
	})

	t.Run("replaces entity escapes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "info@acme.com", contactsift.Deobfuscate("info&#64;acme&#46;com"))
	})

	t.Run("collapses spaces around at and dot", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "info@acme.com", contactsift.Deobfuscate("info @ acme . com"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"info [at] acme [dot] com",
			"john at company dot com",
			"info&#64;acme&#46;com",
			"plain@acme.com",
			"no markers here",
		}
		for _, in := range inputs {
			once := contactsift.Deobfuscate(in)
			twice := contactsift.Deobfuscate(once)
			assert.Equal(t, once, twice, "input %q", in)
		}
	})
}
