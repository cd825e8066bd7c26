package adapter

import (
	"context"

	"github.com/MKhiriev/go-site-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with a running site configuration
// server. Implementations are responsible for decoding responses, checking
// response signatures and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// FetchConfig returns the resolved configuration served by the server.
	// Keys keep the order in which the server wrote them and the returned
	// configuration's directory is the server's site directory.
	FetchConfig(ctx context.Context) (models.Configuration, error)

	// FetchChain returns the configuration files the server merged, the
	// site's own file first.
	FetchChain(ctx context.Context) (models.ChainResponse, error)

	// IsSiteRoot reports whether the server's site directory holds a
	// configuration file.
	IsSiteRoot(ctx context.Context) (models.SiteRootResponse, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
