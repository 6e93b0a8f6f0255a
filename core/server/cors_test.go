package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOrigin(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		wantErr bool
	}{
		{"Localhost", "http://localhost:3000", false},
		{"HTTPS", "https://app.insightflow.io", false},
		{"TrailingSlash", "https://app.insightflow.io/", false},
		{"Empty", "", true},
		{"Whitespace", "   ", true},
		{"Wildcard", "*", true},
		{"SubdomainWildcard", "https://*.insightflow.io", true},
		{"List", "http://a.com,http://b.com", true},
		{"MissingScheme", "localhost:3000", true},
		{"WithPath", "http://localhost:3000/app", true},
		{"WithQuery", "http://localhost:3000?x=1", true},
		{"WithUserInfo", "http://user@localhost:3000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrigin(tt.origin)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOrigin)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
