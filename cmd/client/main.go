package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-site-config/internal/adapter"
	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/internal/utils"
)

func main() {
	log := logger.NewCLILogger("go-site-config-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = run(ctx, serverAdapter, cfg.Output, os.Stdout); err != nil {
		log.Error().Err(err).Str("server", cfg.Adapter.HTTPAddress).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

// run fetches what out.Mode asks for from the server and prints it.
func run(ctx context.Context, serverAdapter adapter.ServerAdapter, out config.Output, w io.Writer) error {
	switch strings.ToLower(out.Mode) {
	case config.ModeChain:
		chain, err := serverAdapter.FetchChain(ctx)
		if err != nil {
			return err
		}
		return utils.WriteOutput(w, chain, out.Format)
	case config.ModeRoot:
		site, err := serverAdapter.IsSiteRoot(ctx)
		if err != nil {
			return err
		}
		return utils.WriteOutput(w, site, out.Format)
	case config.ModeVersion:
		version, err := serverAdapter.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, version)
		return err
	}

	cfg, err := serverAdapter.FetchConfig(ctx)
	if err != nil {
		return err
	}

	return utils.WriteOutput(w, cfg.Values(), out.Format)
}
