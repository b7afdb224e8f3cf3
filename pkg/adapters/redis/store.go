// Package redis provides a blueprint store backed by Redis, for teams
// sharing blueprints across machines.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

const defaultPrefix = "rigforge:blueprint:"

// Store implements ports.Store on a Redis instance. Each blueprint is
// one key holding its JSON document.
type Store struct {
	client *backend.Client
	reg    *blueprint.Registry
	prefix string
	ttl    time.Duration
}

var _ ports.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithPrefix overrides the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithTTL makes saved blueprints expire. Zero (the default) means keys
// persist.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// NewFromClient creates a store on an existing Redis client.
func NewFromClient(client *backend.Client, reg *blueprint.Registry, opts ...Option) *Store {
	s := &Store{
		client: client,
		reg:    reg,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save stores the blueprint document under its prefixed key.
func (s *Store) Save(ctx context.Context, name string, b *blueprint.Blueprint) error {
	if name == "" {
		return fmt.Errorf("blueprint name cannot be empty")
	}

	data, err := json.Marshal(b.Serialize())
	if err != nil {
		return fmt.Errorf("marshal blueprint: %w", err)
	}
	if err := s.client.Set(ctx, s.key(name), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Load fetches and rebuilds the named blueprint.
func (s *Store) Load(ctx context.Context, name string) (*blueprint.Blueprint, error) {
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode blueprint document: %w", err)
	}
	return blueprint.FromData(s.reg, doc)
}

// Delete removes the named blueprint key.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, s.key(name)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// List scans for all blueprint keys under the prefix.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var names []string

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return names, nil
}

func (s *Store) key(name string) string {
	return s.prefix + name
}
