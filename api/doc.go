/*
Package api manages HTTP sessions against the PIX REST endpoints.

A Session logs in on construction, carries the PIX session cookie, and
routes every JSON response through the promotion factory, so API results
come back as promoted objects with behaviors bound:

	cfg, err := api.FromEnv()
	if err != nil {
	    ...
	}
	session, err := api.NewSession(ctx, cfg)
	if err != nil {
	    ...
	}
	defer session.Logout(ctx)

	project, err := session.LoadProject(ctx, "FooBar")

Configuration comes from the environment (PIX_API_URL, PIX_APP_KEY,
PIX_USERNAME, PIX_PASSWORD), a .env file, or a YAML config file; see
Config. The session implements pix.Session as well as the model
package's ProjectActivator and MediaGetter contracts.
*/
package api
