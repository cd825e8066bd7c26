// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned when the server has no HTTP
	// address, so there is nothing to serve the site configuration on.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errServicesAreMissing is returned when a service the routes depend on
	// was not built.
	errServicesAreMissing = errors.New("site config and app info services are required")
)
