/*
Package model provides the built-in behaviors for the common PIX classes.

Each behavior wraps a promoted pix.Object and contributes the helper
methods appropriate for its class; the package's init functions register
them with registry.Default, so importing the package is all it takes to
make promoted projects, folders, feed entries, attachments and notes come
back with behavior attached:

	obj := session.Factory().Objectify(payload)
	if project, ok := pix.As[*model.Project](obj.(*pix.Object)); ok {
	    inbox, err := project.Inbox(ctx, 50)
	    ...
	}

Behaviors that need more from a session than the basic pix.Session verbs
declare their own narrow contracts (ProjectActivator, MediaGetter); the
api.Session implements all of them. Custom behaviors can be registered
the same way from application code; registrations for one class
accumulate, so adding behavior never displaces what is already there.
*/
package model
