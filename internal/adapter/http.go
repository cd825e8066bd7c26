package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/internal/siteconfig"
	"github.com/MKhiriev/go-site-config/internal/utils"
	"github.com/MKhiriev/go-site-config/models"
)

const (
	hashHeader    = "HashSHA256"
	siteDirHeader = "X-Site-Dir"
	traceIDHeader = "X-Trace-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	signer *utils.Signer

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter]
// talking to adapterCfg.HTTPAddress. When appCfg.HashKey is set, every
// response body is checked against its HashSHA256 header.
//
// Returns an error if adapterCfg.HTTPAddress is empty.
func NewHTTPServerAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(adapterCfg.HTTPAddress) == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	client := utils.NewHTTPClient(strings.TrimSpace(adapterCfg.HTTPAddress), adapterCfg.RequestTimeout)

	a := &httpServerAdapter{client: client, logger: logger}
	if appCfg.HashKey != "" {
		a.signer = utils.NewSigner(appCfg.HashKey)
	}

	return a, nil
}

// FetchConfig implements [ServerAdapter]. It GETs /api/config and reads the
// JSON body through the safe configuration parser so that key order
// survives the round trip.
func (h *httpServerAdapter) FetchConfig(ctx context.Context) (models.Configuration, error) {
	resp, err := h.get(ctx, "/api/config", nil)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("fetch config request: %w", err)
	}

	values, err := siteconfig.Parse(resp.Body())
	if err != nil {
		return models.Configuration{}, fmt.Errorf("decode config response: %w", err)
	}

	return models.NewConfiguration(values, resp.Header().Get(siteDirHeader)), nil
}

// FetchChain implements [ServerAdapter]. It GETs /api/config/chain.
func (h *httpServerAdapter) FetchChain(ctx context.Context) (models.ChainResponse, error) {
	var chain models.ChainResponse

	if _, err := h.get(ctx, "/api/config/chain", &chain); err != nil {
		return models.ChainResponse{}, fmt.Errorf("fetch chain request: %w", err)
	}

	return chain, nil
}

// IsSiteRoot implements [ServerAdapter]. It GETs /api/site.
func (h *httpServerAdapter) IsSiteRoot(ctx context.Context) (models.SiteRootResponse, error) {
	var site models.SiteRootResponse

	if _, err := h.get(ctx, "/api/site", &site); err != nil {
		return models.SiteRootResponse{}, fmt.Errorf("site root request: %w", err)
	}

	return site, nil
}

// Version implements [ServerAdapter]. It GETs /api/version and returns the
// plain-text body.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.get(ctx, "/api/version", nil)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// get performs a GET on path, maps error statuses and verifies the response
// signature. When result is non-nil the JSON body is decoded into it.
func (h *httpServerAdapter) get(ctx context.Context, path string, result any) (*resty.Response, error) {
	req := h.client.R().SetContext(ctx)
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("func", "*httpServerAdapter.get").
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get(traceIDHeader)).
		Msg("response received")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if err = h.verifyHash(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (h *httpServerAdapter) verifyHash(resp *resty.Response) error {
	if h.signer == nil || len(resp.Body()) == 0 {
		return nil
	}

	if !h.signer.Verify(resp.Body(), resp.Header().Get(hashHeader)) {
		return fmt.Errorf("%w: %s", ErrInvalidResponseHash, resp.Request.URL)
	}

	return nil
}
