// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/service"
)

type Handler struct {
	services *service.Services

	// csrfToken is compared against the X-Csrf-Token header of document
	// store requests. Empty disables the check.
	csrfToken string

	logger *logger.Logger
}

func NewHandler(services *service.Services, csrfToken string, logger *logger.Logger) *Handler {
	logger.Info().Bool("csrf", csrfToken != "").Msg("http handler created")
	return &Handler{
		services:  services,
		csrfToken: csrfToken,
		logger:    logger,
	}
}
