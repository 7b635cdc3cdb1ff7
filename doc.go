package treeconf

// Package treeconf provides:
//
// - Declarative config schemas: named, typed fields registered once per type
//   (required, defaulted, optional, vector, nested sub-config)
// - Binding of hierarchical property trees (JSON/YAML/INI/XML/info) into
//   strongly typed config values, without reflection on the hot path
// - A stable error model via Issues (path, code, message, cause chain)
// - Deterministic textual schema descriptions (Describe)
//
// Design policy:
// - Keep only public APIs in the root package; the property tree and its
//   format parsers live under ptree/, messages under i18n/, the CLI under
//   cmd/treeconf.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	var serverType = treeconf.Define[Server]("Server", "HTTP server settings",
//		func(b *treeconf.Builder[Server]) {
//			treeconf.Field(b, "host", "listen address", func(c *Server) *string { return &c.Host })
//			treeconf.FieldDef(b, "port", "listen port", 8080, func(c *Server) *int { return &c.Port })
//		})
//
//	cfg, err := serverType.Make(ctx, treeconf.JSON(data))
//	cfg, err = serverType.MakeFile(ctx, "server.yaml")
//	fmt.Println(serverType.Describe())
