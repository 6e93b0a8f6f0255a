package apidocs

import (
	"encoding/json"
	"errors"
	"fmt"

	"insightflow-api/core/server"
	docs "insightflow-api/docs/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// securityKey is the document key holding the security scheme definitions.
const securityKey = "securityDefinitions"

// operationSecurityKey is the per-operation list of required schemes.
const operationSecurityKey = "security"

// Document renders the OpenAPI document for the descriptor.
// The generated template is copied, so the registered swag instance is never mutated.
func (p Enabled) Document() ([]byte, error) {
	spec := *docs.SwaggerInfo
	spec.Title = p.Descriptor.Title
	spec.Description = p.Descriptor.Description
	spec.Version = p.Descriptor.Version
	spec.BasePath = p.Descriptor.BasePath

	return render(spec.ReadDoc(), p.Descriptor.BearerAuth)
}

func render(raw string, bearerAuth bool) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("failed to generate API document: %w", err)
	}

	if bearerAuth {
		if _, ok := doc[securityKey]; !ok {
			return nil, errors.New("failed to generate API document: bearer auth scheme is missing")
		}
	} else {
		delete(doc, securityKey)
		stripOperationSecurity(doc)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode API document: %w", err)
	}
	return out, nil
}

// stripOperationSecurity drops operation requirements that would point at the removed
// scheme definitions.
func stripOperationSecurity(doc map[string]any) {
	paths, _ := doc["paths"].(map[string]any)
	for _, item := range paths {
		operations, _ := item.(map[string]any)
		for _, op := range operations {
			if operation, ok := op.(map[string]any); ok {
				delete(operation, operationSecurityKey)
			}
		}
	}
}

// Setup generates the document and publishes it, together with the UI, on the host:
//
//	GET /<path>/doc.json  the document
//	GET /<path>-json      the document
//	GET /<path>/*         the swagger UI
func (p Enabled) Setup(host *server.Host) error {
	if p.Path == "" {
		return errors.New("documentation path is empty")
	}

	doc, err := p.Document()
	if err != nil {
		return err
	}

	base := "/" + p.Path
	serveDoc := func(c *fiber.Ctx) error {
		c.Type("json")
		return c.Send(doc)
	}
	ui := swagger.New(swagger.Config{
		URL:         base + "/doc.json",
		Title:       p.Descriptor.Title,
		DeepLinking: true,
	})

	host.Publish(func(router fiber.Router) error {
		// doc.json is registered ahead of the UI so the rendered document wins over
		// the handler's own registry lookup.
		router.Get(base+"/doc.json", serveDoc)
		router.Get(base+"-json", serveDoc)
		router.Get(base+"/*", ui)
		return nil
	})
	return nil
}
