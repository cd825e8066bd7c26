// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the site configuration HTTP
// API.
//
// The primary abstraction is [ServerAdapter], which hides the transport from
// the command line client. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrConflict] for a cyclical parent chain reported as 409).
package adapter
