// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-webviewer-sync/internal/config"
	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
)

// Storages groups the persistence backends of the document store.
type Storages struct {
	DocumentRepository DocumentRepository
	CommandLog         CommandLog

	db    *DB
	redis *redis.Client
}

// NewStorages connects the relational database, applies migrations and
// chooses the command log: Redis when cfg.Redis.URL is set, the database
// otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	s := &Storages{
		DocumentRepository: NewDocumentRepository(db, log),
		db:                 db,
	}

	if cfg.Redis.URL == "" {
		s.CommandLog = NewSQLCommandLog(db, log)
		return s, nil
	}

	client, err := NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Info().Msg("using redis command log")
	s.redis = client
	s.CommandLog = NewRedisCommandLog(client, log)
	return s, nil
}

// Close releases every connection.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
