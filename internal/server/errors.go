// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned when the settings leave nothing to
	// serve: no listen address or no HTTP handler.
	errNoServersAreCreated = errors.New("no servers are created")

	// errServerStopped is returned when the listener exits before a stop
	// signal arrives, e.g. because the address is already in use.
	errServerStopped = errors.New("HTTP server stopped unexpectedly")
)
