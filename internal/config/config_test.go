package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "Development defaults pass",
			config: Config{
				Port:      "8080",
				JWTSecret: "your-secret-key-change-in-production",
				Env:       "development",
			},
		},
		{
			name: "Missing port",
			config: Config{
				JWTSecret: "secret",
			},
			wantErr: true,
		},
		{
			name: "Missing JWT secret",
			config: Config{
				Port: "8080",
			},
			wantErr: true,
		},
		{
			name: "Production rejects default secret",
			config: Config{
				Port:       "8080",
				JWTSecret:  "your-secret-key-change-in-production",
				DBPassword: "something-strong",
				Env:        "production",
			},
			wantErr: true,
		},
		{
			name: "Production rejects short secret",
			config: Config{
				Port:       "8080",
				JWTSecret:  "short",
				DBPassword: "something-strong",
				Env:        "production",
			},
			wantErr: true,
		},
		{
			name: "Production rejects default db password",
			config: Config{
				Port:       "8080",
				JWTSecret:  "a-very-long-production-grade-secret!",
				DBPassword: "password",
				Env:        "production",
			},
			wantErr: true,
		},
		{
			name: "Valid production config",
			config: Config{
				Port:       "8080",
				JWTSecret:  "a-very-long-production-grade-secret!",
				DBPassword: "something-strong",
				DBSSLMode:  "require",
				Env:        "production",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
