package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// newFlagSet returns the flag set used for the process command line.
//
// Flags:
//
//	-dir site directory
//	-max-depth maximum number of parent configuration files
//	-format output format (yaml or json)
//	-mode what to print (config, chain, root or version)
//	-a server address in format [host]:[port]
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-server address of a running server used by the client
//	-hash-key response signing key
//	-log-level log level
//	-c/-config json file path with configs
func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}

	return os.Args[1:]
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var siteDir string
	var maxDepth int
	var format string
	var mode string
	var requestTimeout time.Duration
	var adapterAddress string
	var hashKey string
	var logLevel string
	var jsonConfigPath string

	fs.StringVar(&siteDir, "dir", "", "Site directory")
	fs.IntVar(&maxDepth, "max-depth", 0, "Maximum number of parent configuration files")
	fs.StringVar(&format, "format", "", "Output format (yaml or json)")
	fs.StringVar(&mode, "mode", "", "What to print (config, chain, root, version)")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server", "", "Address of a running server")
	fs.StringVar(&hashKey, "hash-key", "", "Response signing key")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
		},
		Site: Site{
			Dir:      siteDir,
			MaxDepth: maxDepth,
		},
		Output: Output{
			Format: format,
			Mode:   mode,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, bracketing IPv6 hosts. An unset address is "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces), "localhost"
// or an IP literal, and the port must lie in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port number must be in 1..65535, got %d", port)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("incorrect IP-address provided: %q", host)
	}

	a.Host = host
	a.Port = port
	return nil
}
