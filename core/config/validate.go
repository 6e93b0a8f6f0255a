package config

import (
	"errors"
	"fmt"
	"strings"

	"insightflow-api/core/server"

	"github.com/go-playground/validator/v10"
)

// Validate checks the loaded configuration against the 'validate' struct tags.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("origin", func(fl validator.FieldLevel) bool {
		return server.ValidateOrigin(fl.Field().String()) == nil
	}); err != nil {
		return err
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s=%q fails %q", fe.Namespace(), fmt.Sprint(fe.Value()), describe(fe)))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
