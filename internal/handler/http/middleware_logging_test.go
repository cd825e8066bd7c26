package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/internal/mock"
	"github.com/MKhiriev/go-site-config/internal/service"
	"github.com/MKhiriev/go-site-config/internal/siteconfig"
	"github.com/MKhiriev/go-site-config/models"
)

// newLoggedRouter builds the application router with a logger writing JSON
// lines into buf.
func newLoggedRouter(t *testing.T, buf *bytes.Buffer) (*chi.Mux, *mock.MockSiteConfigService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	siteSvc := mock.NewMockSiteConfigService(ctrl)
	appSvc := mock.NewMockAppInfoService(ctrl)
	appSvc.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3").AnyTimes()

	h := NewHandler(&service.Services{
		SiteConfigService: siteSvc,
		AppInfoService:    appSvc,
	}, config.App{}, &logger.Logger{Logger: zerolog.New(buf)})

	return h.Init(), siteSvc
}

// accessEntries returns the log lines written by withLogging.
func accessEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		if _, ok := entry["uri"]; ok {
			entries = append(entries, entry)
		}
	}
	require.NoError(t, scanner.Err())

	return entries
}

func TestWithLogging_AppRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		setup      func(svc *mock.MockSiteConfigService)
		wantStatus int
		wantLevel  string
	}{
		{
			name:       "version",
			method:     http.MethodGet,
			target:     "/api/version",
			wantStatus: http.StatusOK,
			wantLevel:  "info",
		},
		{
			name:   "config",
			method: http.MethodGet,
			target: "/api/config",
			setup: func(svc *mock.MockSiteConfigService) {
				svc.EXPECT().GetSite(gomock.Any()).Return(testSite(), nil)
			},
			wantStatus: http.StatusOK,
			wantLevel:  "info",
		},
		{
			name:   "config with query keeps raw uri",
			method: http.MethodGet,
			target: "/api/config?pretty=1",
			setup: func(svc *mock.MockSiteConfigService) {
				svc.EXPECT().GetSite(gomock.Any()).Return(testSite(), nil)
			},
			wantStatus: http.StatusOK,
			wantLevel:  "info",
		},
		{
			name:   "chain on cyclic site",
			method: http.MethodGet,
			target: "/api/config/chain",
			setup: func(svc *mock.MockSiteConfigService) {
				svc.EXPECT().GetSite(gomock.Any()).Return(models.ResolvedSite{},
					&siteconfig.ConfigFileError{Path: "/srv/base.yaml", Err: siteconfig.ErrCyclicalConfigFile})
			},
			wantStatus: http.StatusConflict,
			wantLevel:  "warn",
		},
		{
			name:   "site root",
			method: http.MethodGet,
			target: "/api/site",
			setup: func(svc *mock.MockSiteConfigService) {
				svc.EXPECT().IsSiteRoot(gomock.Any()).Return(models.SiteRootResponse{SiteDir: "/srv/site", IsSiteRoot: true})
			},
			wantStatus: http.StatusOK,
			wantLevel:  "info",
		},
		{
			name:   "config on unreadable site",
			method: http.MethodGet,
			target: "/api/config",
			setup: func(svc *mock.MockSiteConfigService) {
				svc.EXPECT().GetSite(gomock.Any()).Return(models.ResolvedSite{}, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantLevel:  "error",
		},
		{
			name:       "post to config",
			method:     http.MethodPost,
			target:     "/api/config",
			wantStatus: http.StatusNotFound,
			wantLevel:  "warn",
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			target:     "/api/missing",
			wantStatus: http.StatusNotFound,
			wantLevel:  "warn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			router, svc := newLoggedRouter(t, &buf)
			if tt.setup != nil {
				tt.setup(svc)
			}

			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set(traceIDHeader, "trace-42")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			entries := accessEntries(t, &buf)
			require.Len(t, entries, 1)
			entry := entries[0]

			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, "trace-42", entry["trace_id"])
			assert.EqualValues(t, tt.wantStatus, entry["status"])
			assert.EqualValues(t, rec.Body.Len(), entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_SizeCountsCompressedBytes(t *testing.T) {
	var buf bytes.Buffer
	router, svc := newLoggedRouter(t, &buf)
	svc.EXPECT().GetSite(gomock.Any()).Return(testSite(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	entries := accessEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.EqualValues(t, rec.Body.Len(), entries[0]["size"])
}

func TestWithLogging_ErrorLoggedBeforeAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	router, svc := newLoggedRouter(t, &buf)
	svc.EXPECT().GetSite(gomock.Any()).Return(models.ResolvedSite{}, siteconfig.ErrNoConfigFileFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	out := buf.String()
	failed := strings.Index(out, `"message":"request failed"`)
	access := strings.Index(out, `"uri":"/api/config"`)
	require.NotEqual(t, -1, failed)
	require.NotEqual(t, -1, access)
	assert.Less(t, failed, access)
}

func TestWithLogging_PanicSkipsAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	router, svc := newLoggedRouter(t, &buf)
	svc.EXPECT().GetSite(gomock.Any()).DoAndReturn(func(context.Context) (models.ResolvedSite, error) {
		panic("resolver blew up")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, accessEntries(t, &buf))
}

func TestWithLogging_NoLoggerInContext(t *testing.T) {
	h := newHandlerWithAppInfo(t, "1.2.3")
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		withLogging(http.HandlerFunc(h.getServerVersion)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	})
	assert.Equal(t, "1.2.3", rec.Body.String())
}
