// Package geolens embeds the geolens overlay engine and interactive geo tools
// in a Go program, without running the HTTP API.
//
// Overlays are computed from the built-in datasets and need no network:
//
//	client, _ := geolens.New(ctx)
//	ov, _ := client.Overlays().Build(ctx, geolens.DomainCyber)
//	fmt.Println(ov.Summary)
//
// Interactive tools run against a session. Signed-out sessions get simulated
// enrichment; address and routing tools need a backend credential:
//
//	sess, _ := client.Sessions().Create(ctx)
//	_, _ = client.Sessions().SignIn(ctx, sess.ID, apiKey)
//	res, _ := client.Tools(sess.ID).Locate(ctx, "380 New York St, Redlands, CA")
//
// Sessions live in process memory by default; WithValkey or WithRedis share
// them between processes.
package geolens
