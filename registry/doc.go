/*
Package registry manages class registration for the pix promotion layer.

The registry maps PIX class names (the value of a mapping's "class"
discriminator, e.g. "PIXImage") to an ordered list of behavior
constructors. When the factory promotes a mapping, it builds a Type for
the mapping's class name and binds one behavior per registered
constructor:

	registry.Register("PIXImage", func(o *pix.Object) any {
	    return &Attachment{Object: o}
	})

Multiple registrations for the same name accumulate in registration
order, so independent packages can all contribute behaviors to one class.
Unregistered names are not an error; they build plain objects with no
behaviors.

The registry should be populated during initialization, typically in
init() functions, before factories start walking data. Reads are
guarded for concurrent use; the single-writer-phase-then-many-readers
lifecycle is a usage discipline, not an enforced guarantee.
*/
package registry
