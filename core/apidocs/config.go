package apidocs

// Config holds the API documentation settings.
type Config struct {
	// Title is the document title.
	Title string `mapstructure:"title" default:"InsightFlow API" validate:"required"`
	// Description is the document description.
	Description string `mapstructure:"description" default:"API documentation for InsightFlow application" validate:"required"`
	// Version is the API version advertised by the document.
	Version string `mapstructure:"version" default:"1.0.0" validate:"required"`
	// Path is where the documentation UI is published, outside the global prefix.
	Path string `mapstructure:"path" default:"docs" validate:"required"`
}
