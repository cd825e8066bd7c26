package models

// ErrorResponse is the JSON body written by the HTTP API on failure.
type ErrorResponse struct {
	// Error is a human readable description of what went wrong.
	Error string `json:"error"`

	// TraceID echoes the X-Trace-ID of the failed request.
	TraceID string `json:"trace_id,omitempty"`
}

// ChainResponse describes the resolution chain of a site.
type ChainResponse struct {
	// SiteDir is the directory whose configuration was resolved.
	SiteDir string `json:"site_dir" yaml:"site_dir"`

	// Chain lists the configuration files read, the site's own file first.
	Chain []string `json:"chain" yaml:"chain"`
}

// SiteRootResponse reports whether a directory holds a site configuration.
type SiteRootResponse struct {
	SiteDir    string `json:"site_dir" yaml:"site_dir"`
	IsSiteRoot bool   `json:"is_site_root" yaml:"is_site_root"`
}
