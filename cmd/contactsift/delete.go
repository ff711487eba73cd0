package main

import (
	"fmt"

	"github.com/contactsift/contactsift"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return contactsift.Errorf(contactsift.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Contacts.DeleteContactsByDomain(deps.Ctx, c.Domain); err != nil {
		if contactsift.ErrorCode(err) == contactsift.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no contacts for domain %q. Use 'contactsift list' to see stored contacts.\n", c.Domain)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", contactsift.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted contacts for %q\n", c.Domain)
	return nil
}
