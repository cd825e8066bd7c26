package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/internal/mock"
	"github.com/MKhiriev/go-site-config/internal/service"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()
	ctrl := gomock.NewController(t)

	return &service.Services{
		SiteConfigService: mock.NewMockSiteConfigService(ctrl),
		AppInfoService:    mock.NewMockAppInfoService(ctrl),
	}
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":8080"},
	}

	h, err := NewHandlers(newTestServices(t), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_Errors(t *testing.T) {
	withAddress := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	tests := []struct {
		name     string
		services func(t *testing.T) *service.Services
		cfg      config.StructuredConfig
		wantErr  error
	}{
		{
			name:     "no address",
			services: newTestServices,
			cfg:      config.StructuredConfig{},
			wantErr:  errNoHandlersAreCreated,
		},
		{
			name:     "nil services",
			services: func(*testing.T) *service.Services { return nil },
			cfg:      withAddress,
			wantErr:  errServicesAreMissing,
		},
		{
			name: "no site config service",
			services: func(t *testing.T) *service.Services {
				s := newTestServices(t)
				s.SiteConfigService = nil
				return s
			},
			cfg:     withAddress,
			wantErr: errServicesAreMissing,
		},
		{
			name: "no app info service",
			services: func(t *testing.T) *service.Services {
				s := newTestServices(t)
				s.AppInfoService = nil
				return s
			},
			cfg:     withAddress,
			wantErr: errServicesAreMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(tt.services(t), tt.cfg, logger.Nop())

			assert.Nil(t, h)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
