package contactsift_test

import (
	"testing"

	"github.com/contactsift/contactsift"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := contactsift.Errorf(contactsift.ENOTFOUND, "domain %q not found", "acme.com")

	assert.Equal(t, contactsift.ENOTFOUND, contactsift.ErrorCode(err))
	assert.Equal(t, "domain \"acme.com\" not found", contactsift.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, contactsift.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, contactsift.ErrorMessage(nil))
}
