package telemetry

import (
	"context"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "disabled", cfg: Config{Enabled: false, Endpoint: "http://localhost:4318"}},
		{name: "no endpoint", cfg: Config{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, shutdown, err := NewProvider(context.Background(), tt.cfg, "platelens", "test", zerowrap.Default())

			require.NoError(t, err)
			require.NotNil(t, shutdown)
			assert.Nil(t, p.TracerProvider)
			assert.Nil(t, p.MeterProvider)
			shutdown(context.Background())
		})
	}
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		wantHost     string
		wantBasePath string
		wantInsecure bool
		wantAuth     string
		wantErr      bool
	}{
		{
			name:         "plain http",
			cfg:          Config{Endpoint: "http://collector:4318"},
			wantHost:     "collector:4318",
			wantInsecure: true,
		},
		{
			name:         "https with path and auth",
			cfg:          Config{Endpoint: "https://otlp.example.com/otlp/", AuthToken: "dXNlcjpwYXNz"},
			wantHost:     "otlp.example.com",
			wantBasePath: "/otlp",
			wantAuth:     "Basic dXNlcjpwYXNz",
		},
		{name: "missing scheme", cfg: Config{Endpoint: "collector:4318"}, wantErr: true},
		{name: "unsupported scheme", cfg: Config{Endpoint: "grpc://collector:4317"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep, err := parseEndpoint(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, ep.host)
			assert.Equal(t, tt.wantBasePath, ep.basePath)
			assert.Equal(t, tt.wantInsecure, ep.insecure)
			assert.Equal(t, tt.wantAuth, ep.headers["Authorization"])
		})
	}
}
