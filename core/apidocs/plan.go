package apidocs

import (
	"insightflow-api/core/server"
)

// Descriptor is the metadata the OpenAPI document is built from.
type Descriptor struct {
	Title       string
	Description string
	Version     string
	// BasePath is the route prefix every documented operation lives under.
	BasePath string
	// BearerAuth declares the BearerAuth security scheme.
	BearerAuth bool
}

// Plan is the documentation decision taken once at startup: Enabled or Disabled.
type Plan interface {
	// Setup applies the plan to the host.
	Setup(host *server.Host) error
	plan()
}

// Enabled publishes the document and its UI at Path.
type Enabled struct {
	Path       string
	Descriptor Descriptor
}

// Disabled publishes nothing.
type Disabled struct{}

func (Enabled) plan()  {}
func (Disabled) plan() {}

// Resolve decides the documentation plan. Production hosts never expose documentation.
func Resolve(cfg Config, prefix string, production bool) Plan {
	if production {
		return Disabled{}
	}

	basePath := "/"
	if p := server.NormalizePath(prefix); p != "" {
		basePath = "/" + p
	}

	return Enabled{
		Path: server.NormalizePath(cfg.Path),
		Descriptor: Descriptor{
			Title:       cfg.Title,
			Description: cfg.Description,
			Version:     cfg.Version,
			BasePath:    basePath,
			BearerAuth:  true,
		},
	}
}

// Setup is a no-op.
func (Disabled) Setup(*server.Host) error {
	return nil
}

// URL returns where the documentation UI is reachable under baseURL.
func (p Enabled) URL(baseURL string) string {
	return baseURL + "/" + p.Path
}
