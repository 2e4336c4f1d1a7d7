// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-webviewer-sync/internal/config"
	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/store"
)

// Services groups the server side services.
type Services struct {
	DocumentService DocumentService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	documentService := NewDocumentValidationService().
		Wrap(NewDocumentService(storages.DocumentRepository, storages.CommandLog, logger))

	return &Services{
		DocumentService: documentService,
		AppInfoService:  appInfoService,
	}, nil
}
