/*
Package errors provides semantic error types for the pix client.

Sentinel errors (ErrNotLoggedIn, ErrLoginFailed, ErrSessionExpired,
ErrResponse, ErrUnknownProject) support errors.Is checks across wrapping,
and typed errors carry the detail of the failing call:

	res, err := session.Get(ctx, "/items/123")
	if errors.IsSessionExpired(err) {
	    // re-login and retry
	}
	if status := errors.StatusOf(err); status == http.StatusNotFound {
	    ...
	}

The promotion layer itself introduces no error kinds of its own; a missing
or malformed class discriminator is not an error, and unregistered class
names silently build plain objects.
*/
package errors
