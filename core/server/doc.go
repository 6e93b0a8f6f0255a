// Package server holds the application host and its HTTP configuration.
//
// # Host
//
// Host wraps a Fiber application for the lifetime of the process. Bootstrap calls
// (SetGlobalPrefix, EnableCORS, Publish, OnListen) record settings; the Fiber stack is
// built once, on the first App or Listen call, so middleware order never depends on the
// order of the configuration calls:
//
//	recover -> rayid -> request log -> CORS -> published routes -> /<prefix> guards -> module
//
// # CORS
//
// Exactly one origin is allowed and credentials are always permitted. ValidateOrigin
// rejects wildcards, lists and malformed origins before Fiber's CORS middleware sees them.
//
// # Usage
//
//	host, err := server.NewHost(mgr, log, server.Options{})
//	host.SetGlobalPrefix("api")
//	if err := host.EnableCORS("http://localhost:3000"); err != nil { ... }
//	err = host.Listen(ctx, 8000)
package server
