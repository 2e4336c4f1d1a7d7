// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the document store module.
//
// It exposes the module version probe and the document store endpoints
// consumed by the viewer client. Request tracing, access logging, response
// compression and the CSRF token check run in this package before requests
// are delegated to the service layer.
package http
