// Package http implements the HTTP transport layer of the application.
//
// It exposes the resolved site configuration, its resolution chain and the
// application version as read-only JSON endpoints. Request tracing, access
// logging, response compression and response signing are handled here
// before requests reach the service layer.
package http
