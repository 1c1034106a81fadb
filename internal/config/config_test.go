package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/order-service/internal/config"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantErr    bool
		wantErrMsg string
	}{
		{
			name: "all_set",
			env: map[string]string{
				"APP_PORT":                 "9090",
				"MONGO_URI":                "mongodb://localhost:27017",
				"MONGO_DB":                 "minishop",
				"PRODUCT_SERVICE_BASE_URL": "http://localhost:5001",
			},
		},
		{
			name: "port_defaults",
			env: map[string]string{
				"MONGO_URI":                "mongodb://localhost:27017",
				"MONGO_DB":                 "minishop",
				"PRODUCT_SERVICE_BASE_URL": "http://localhost:5001",
			},
		},
		{
			name: "missing_mongo_uri",
			env: map[string]string{
				"MONGO_DB":                 "minishop",
				"PRODUCT_SERVICE_BASE_URL": "http://localhost:5001",
			},
			wantErr:    true,
			wantErrMsg: "MONGO_URI is required",
		},
		{
			name: "missing_mongo_db",
			env: map[string]string{
				"MONGO_URI":                "mongodb://localhost:27017",
				"PRODUCT_SERVICE_BASE_URL": "http://localhost:5001",
			},
			wantErr:    true,
			wantErrMsg: "MONGO_DB is required",
		},
		{
			name: "missing_product_base_url",
			env: map[string]string{
				"MONGO_URI": "mongodb://localhost:27017",
				"MONGO_DB":  "minishop",
			},
			wantErr:    true,
			wantErrMsg: "PRODUCT_SERVICE_BASE_URL is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"APP_PORT", "MONGO_URI", "MONGO_DB", "PRODUCT_SERVICE_BASE_URL"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := config.NewConfig()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrMsg, err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.env["MONGO_URI"], cfg.Mongo.URI)
			assert.Equal(t, tt.env["MONGO_DB"], cfg.Mongo.Database)
			assert.Equal(t, tt.env["PRODUCT_SERVICE_BASE_URL"], cfg.ProductService.BaseAddress)

			if tt.env["APP_PORT"] != "" {
				assert.Equal(t, tt.env["APP_PORT"], cfg.App.Port)
			} else {
				assert.Equal(t, "8080", cfg.App.Port)
			}
		})
	}
}
