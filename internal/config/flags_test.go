package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		addr NetAddress
		want string
	}{
		{addr: NetAddress{}, want: ""},
		{addr: NetAddress{Host: "localhost", Port: 8080}, want: "localhost:8080"},
		{addr: NetAddress{Host: "127.0.0.1", Port: 9090}, want: "127.0.0.1:9090"},
		{addr: NetAddress{Port: 8080}, want: ":8080"},
		{addr: NetAddress{Host: "::1", Port: 8080}, want: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr string
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "ipv6", input: "[::1]:8443", want: NetAddress{Host: "::1", Port: 8443}},
		{name: "highest port", input: "localhost:65535", want: NetAddress{Host: "localhost", Port: 65535}},
		{name: "missing colon", input: "localhost8080", wantErr: "need address in a form `host:port`"},
		{name: "too many colons", input: "host:port:extra", wantErr: "need address in a form `host:port`"},
		{name: "empty", input: "", wantErr: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", wantErr: "invalid port"},
		{name: "only colon", input: ":", wantErr: "invalid port"},
		{name: "zero port", input: "localhost:0", wantErr: "port number must be in 1..65535"},
		{name: "negative port", input: "localhost:-1", wantErr: "port number must be in 1..65535"},
		{name: "port too large", input: "localhost:70000", wantErr: "port number must be in 1..65535"},
		{name: "hostname", input: "site.example:8080", wantErr: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, NetAddress{}, addr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

// TestParseFlags tests flag parsing over an explicit argument list
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-dir", "/srv/site",
				"-max-depth", "7",
				"-format", "json",
				"-mode", "chain",
				"-a", "localhost:8080",
				"-request-timeout", "30s",
				"-server", "localhost:9090",
				"-hash-key", "security_hash",
				"-log-level", "debug",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/srv/site", cfg.Site.Dir)
				assert.Equal(t, 7, cfg.Site.MaxDepth)
				assert.Equal(t, "json", cfg.Output.Format)
				assert.Equal(t, "chain", cfg.Output.Mode)
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "localhost:9090", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "security_hash", cfg.App.HashKey)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "partial flags",
			args: []string{
				"-a", "127.0.0.1:3000",
				"-format", "yaml",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1:3000", cfg.Server.HTTPAddress)
				assert.Equal(t, "yaml", cfg.Output.Format)
				assert.Empty(t, cfg.Site.Dir)
				assert.Empty(t, cfg.Adapter.HTTPAddress)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			cfg, err := parseFlags(fs, tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_InvalidValues tests that malformed flag values are reported
func TestParseFlags_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "invalid server address format",
			args: []string{"-a", "invalid"},
		},
		{
			name: "invalid port in server address",
			args: []string{"-a", "localhost:abc"},
		},
		{
			name: "invalid max depth",
			args: []string{"-max-depth", "deep"},
		},
		{
			name: "invalid request timeout",
			args: []string{"-request-timeout", "soon"},
		},
		{
			name: "unknown flag",
			args: []string{"-listen", "localhost:9090"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)

			cfg, err := parseFlags(fs, tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

// TestNetAddress_SetAndString tests the round-trip of Set and String
func TestNetAddress_SetAndString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"localhost:8080", "localhost:8080"},
		{"127.0.0.1:9090", "127.0.0.1:9090"},
		{":8080", ":8080"},
		{"[::1]:8443", "[::1]:8443"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.String())
		})
	}
}
