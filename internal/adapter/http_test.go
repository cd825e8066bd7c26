// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/internal/utils"
	"github.com/MKhiriev/go-site-config/models"
)

const testHashKey = "testhashkey"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL, hashKey string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.Adapter{HTTPAddress: serverURL}
	appCfg := config.App{HashKey: hashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// signedHandler answers every request with body, signed with testHashKey.
func signedHandler(t *testing.T, path, body string, headers map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, path, r.URL.Path)

		for k, v := range headers {
			w.Header().Set(k, v)
		}
		w.Header().Set(hashHeader, utils.NewSigner(testHashKey).Sign([]byte(body)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: "  "}, config.App{}, logger.Nop())

	assert.Nil(t, a)
	require.Error(t, err)
}

func TestFetchConfig_Success(t *testing.T) {
	body := `{"title":"Mine","author":"Team","nested":{"z":1,"a":true},"list":["x",null],"released":"2024-03-01"}`
	srv := httptest.NewServer(signedHandler(t, "/api/config", body, map[string]string{
		"Content-Type": "application/json",
		siteDirHeader:  "/srv/site",
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	got, err := a.FetchConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/srv/site", got.Dir())
	assert.Equal(t, []string{"title", "author", "nested", "list", "released"}, got.Values().Keys())

	nested, _ := got.Get("nested")
	assert.Equal(t, models.MapOf("z", 1, "a", true), nested)

	released, _ := got.Get("released")
	assert.Equal(t, "2024-03-01", released)
}

func TestFetchConfig_HashMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(hashHeader, "deadbeef")
		_, _ = w.Write([]byte(`{"title":"Mine"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	_, err := a.FetchConfig(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponseHash)
}

func TestFetchConfig_NoHashKeySkipsVerification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":"Mine"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.FetchConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.MapOf("title", "Mine"), got.Values())
}

func TestFetchConfig_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["not", "a", "mapping"]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.FetchConfig(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config response")
}

func TestFetchConfig_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "no configuration file",
			status:  http.StatusNotFound,
			body:    `{"error":"no configuration file found","trace_id":"abc"}`,
			wantErr: ErrNotFound,
			wantMsg: "trace id abc",
		},
		{
			name:    "cyclical chain",
			status:  http.StatusConflict,
			body:    `{"error":"parent configuration file includes one of its descendants"}`,
			wantErr: ErrConflict,
			wantMsg: "descendants",
		},
		{
			name:    "disallowed type",
			status:  http.StatusUnprocessableEntity,
			body:    `{"error":"disallowed value type in configuration file"}`,
			wantErr: ErrUnprocessable,
			wantMsg: "disallowed",
		},
		{
			name:    "internal error with plain body",
			status:  http.StatusInternalServerError,
			body:    "boom\n",
			wantErr: ErrInternalServerError,
			wantMsg: "boom",
		},
		{
			name:    "bad gateway",
			status:  http.StatusBadGateway,
			wantErr: ErrBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, testHashKey)
			_, err := a.FetchConfig(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestFetchConfig_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.FetchConfig(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestFetchChain_Success(t *testing.T) {
	body := `{"site_dir":"/srv/site","chain":["/srv/site/nanoc.yaml","/srv/base.yaml"]}`
	srv := httptest.NewServer(signedHandler(t, "/api/config/chain", body, map[string]string{
		"Content-Type": "application/json",
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	got, err := a.FetchChain(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.ChainResponse{
		SiteDir: "/srv/site",
		Chain:   []string{"/srv/site/nanoc.yaml", "/srv/base.yaml"},
	}, got)
}

func TestIsSiteRoot_Success(t *testing.T) {
	body := `{"site_dir":"/srv/site","is_site_root":true}`
	srv := httptest.NewServer(signedHandler(t, "/api/site", body, map[string]string{
		"Content-Type": "application/json",
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	got, err := a.IsSiteRoot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.SiteRootResponse{SiteDir: "/srv/site", IsSiteRoot: true}, got)
}

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(signedHandler(t, "/api/version", "1.2.3", map[string]string{
		"Content-Type": "text/plain",
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestVersion_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("1.2.3"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Version(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
