// Package diagnostics exposes the connectivity probes of the API.
//
// # HTTP Endpoints
//
//   - GET /test/db : Lists every user through the user repository.
//   - GET /test/health : Static liveness payload, no connectivity check.
//
// Both routes are mounted under the global prefix. Repository failures are returned
// unchanged to the host error handler, which answers with a generic 500.
package diagnostics
