// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: Optional bearer token check on the prefixed API routes. It matches the
//     BearerAuth security scheme advertised by the API documentation.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// The application host registers RayID globally and Auth on the prefixed route group.
package middleware
