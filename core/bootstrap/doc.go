// Package bootstrap turns a loaded configuration into a running application host.
//
// The sequence is linear and all-or-nothing:
//  1. create the host around the composition module
//  2. apply the global route prefix
//  3. restrict CORS to the configured origin, credentials allowed
//  4. publish the API documentation unless the environment is production
//  5. bind the port and serve until the context is cancelled
//  6. log the base URL, and the documentation URL when published
//
// Any failing step aborts the sequence with a wrapped error; the caller decides how the
// process exits.
package bootstrap
