/*
Package pix provides a Go client for the PIX collaboration platform, built
around a dynamic object-promotion layer that turns the deeply nested JSON
structures returned by the PIX REST endpoints into richer objects.

The library follows a register-then-walk workflow:
  - Registration: behavior constructors are registered for PIX class names
    (typically from init functions), see the registry package
  - Promotion: the factory package walks raw response trees and promotes any
    mapping carrying a "class" discriminator into an Object, binding all
    registered behaviors for that name
  - Access: promoted objects expose dictionary-style access to the original
    data plus whatever methods their behaviors contribute

Key Features:
  - Process-wide class registry with ordered, accumulating registration
  - Shape-preserving deep transform of maps, slices and sets
  - Lazy, restartable child iteration using range-over-func iterators
  - Built-in behaviors for the common PIX classes (projects, playlists,
    folders, feed entries, clips, images, notes)
  - HTTP session management with env/YAML configuration

Basic Usage:

	cfg, _ := api.FromEnv()
	session, _ := api.NewSession(ctx, cfg)
	defer session.Logout(ctx)

	projects, _ := session.Projects(ctx)
	for _, project := range projects {
	    inbox, _ := project.Inbox(ctx, 50)
	    for _, entry := range inbox {
	        fmt.Println(entry.Identifier())
	    }
	}

For more information, see the documentation at https://github.com/blingdigital/pix
*/
package pix
