// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

const redisCommandKeyPrefix = "webviewer:commands:"

// redisCommandLog keeps one sorted set per document. Scores are Unix
// microseconds, which a float64 holds exactly; members carry the full
// nanosecond timestamp and a random id so equal commands stay distinct.
type redisCommandLog struct {
	client *redis.Client
	logger *logger.Logger
}

type redisCommandMember struct {
	ID        string `json:"id"`
	Command   string `json:"command"`
	Timestamp int64  `json:"ts"`
}

// NewRedisClient parses url and pings the server.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

// NewRedisCommandLog constructs a [CommandLog] on client.
func NewRedisCommandLog(client *redis.Client, logger *logger.Logger) CommandLog {
	return &redisCommandLog{
		client: client,
		logger: logger,
	}
}

func (l *redisCommandLog) key(documentID string) string {
	return redisCommandKeyPrefix + documentID
}

func (l *redisCommandLog) Append(ctx context.Context, documentID string, entry models.CommandEntry) error {
	member, err := json.Marshal(redisCommandMember{
		ID:        uuid.NewString(),
		Command:   entry.Command,
		Timestamp: entry.Timestamp.UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("%w: marshal command: %w", ErrRedis, err)
	}

	err = l.client.ZAdd(ctx, l.key(documentID), redis.Z{
		Score:  float64(entry.Timestamp.UnixMicro()),
		Member: string(member),
	}).Err()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisCommandLog.Append").
			Str("file_id", documentID).
			Msg("failed to add command")
		return fmt.Errorf("%w: %w", ErrRedis, err)
	}
	return nil
}

func (l *redisCommandLog) ListSince(ctx context.Context, documentID string, since time.Time) ([]models.CommandEntry, error) {
	minScore := "-inf"
	if !since.IsZero() {
		// inclusive on the microsecond, filtered exactly below
		minScore = strconv.FormatInt(since.UnixMicro(), 10)
	}

	members, err := l.client.ZRangeByScore(ctx, l.key(documentID), &redis.ZRangeBy{
		Min: minScore,
		Max: "+inf",
	}).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisCommandLog.ListSince").
			Str("file_id", documentID).
			Msg("failed to range commands")
		return nil, fmt.Errorf("%w: %w", ErrRedis, err)
	}

	entries := make([]models.CommandEntry, 0, len(members))
	for _, raw := range members {
		var m redisCommandMember
		if err = json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, fmt.Errorf("%w: unmarshal command: %w", ErrRedis, err)
		}
		ts := time.Unix(0, m.Timestamp).UTC()
		if !since.IsZero() && !ts.After(since) {
			continue
		}
		entries = append(entries, models.CommandEntry{Command: m.Command, Timestamp: ts})
	}

	// members sharing a score come back in lexical order
	slices.SortStableFunc(entries, func(a, b models.CommandEntry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return entries, nil
}
