package server_test

import (
	"testing"

	"insightflow-api/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		want        bool
	}{
		{"Production", "production", true},
		{"Development", "development", false},
		{"Test", "test", false},
		{"Unset", "", false},
		{"CaseSensitive", "Production", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Environment: tt.environment}
			assert.Equal(t, tt.want, c.IsProduction())
		})
	}
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "api", server.NormalizePath("api"))
	assert.Equal(t, "api", server.NormalizePath("/api/"))
	assert.Equal(t, "api/docs", server.NormalizePath(" /api/docs "))
	assert.Equal(t, "", server.NormalizePath("/"))
	assert.Equal(t, "", server.NormalizePath(""))
}
