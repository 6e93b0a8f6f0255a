// Package apidocs decides and publishes the API documentation.
//
// The decision is taken once at startup by Resolve and carried as a Plan value:
//
//   - Enabled{Path, Descriptor}: render the OpenAPI document generated by swag
//     (docs/swagger) with the runtime title, description, version, base path and the
//     BearerAuth security scheme, then publish it with the swagger UI.
//   - Disabled{}: production hosts expose no documentation at all.
//
// # Usage
//
//	plan := apidocs.Resolve(cfg.Swagger, cfg.Server.Prefix, cfg.Server.IsProduction())
//	if err := plan.Setup(host); err != nil {
//	    return err
//	}
package apidocs
