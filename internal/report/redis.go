// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// recordTTL keeps published results around long enough for a plotting run
// to pick them up without letting forgotten demos accumulate forever.
const recordTTL = 24 * time.Hour

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisSink publishes records as JSON onto per-kind Redis lists
// (qday:results:<kind>), where an external visualization pipeline
// consumes them.
type RedisSink struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisSink connects to Redis and verifies the connection.
func NewRedisSink(cfg RedisConfig) (*RedisSink, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisSink{client: client, keyPrefix: "qday:results:"}, nil
}

func (s *RedisSink) Publish(ctx context.Context, rec *Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	key := s.keyPrefix + rec.Kind
	pipe := s.client.Pipeline()
	pipe.LPush(ctx, key, data)
	pipe.Expire(ctx, key, recordTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish record: %w", err)
	}
	return nil
}

func (s *RedisSink) Close() error {
	return s.client.Close()
}
