package command

import (
	"context"
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-libram/internal/property"
	"github.com/redis/go-redis/v9"
)

type PropertyBackend int

const (
	BackendMemory PropertyBackend = iota
	BackendFile
	BackendRedis
	BackendSQLite
	BackendNats
)

func (b *PropertyBackend) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "memory":
		*b = BackendMemory
	case "file":
		*b = BackendFile
	case "redis":
		*b = BackendRedis
	case "sqlite":
		*b = BackendSQLite
	case "nats":
		*b = BackendNats
	default:
		return fmt.Errorf("unknown property backend: %s", text)
	}
	return nil
}

type PropertyConfig struct {
	Backend PropertyBackend `json:"backend"`
	// Path is the file for the file and sqlite backends.
	Path string `json:"path,omitempty"`

	Redis RedisConfig `json:"redis,omitempty"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db,omitempty"`
	Hash     string `json:"hash,omitempty"`
}

func (c *PropertyConfig) validate() error {
	el := errors.NewErrorList()

	switch c.Backend {
	case BackendFile, BackendSQLite:
		if c.Path == "" {
			el.Add(fmt.Errorf("properties: path is required for file and sqlite backends"))
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			el.Add(fmt.Errorf("properties: redis.addr is required"))
		}
		if c.Redis.DB < 0 {
			el.Add(fmt.Errorf("properties: redis.db must not be negative"))
		}
	}

	return el.Err()
}

// BuildStore opens the configured backend. remote is used for the nats
// backend, where the game client owns the properties. The returned func
// releases the backend.
func (c *PropertyConfig) BuildStore(ctx context.Context, remote property.Store) (property.Store, func() error, error) {
	noop := func() error { return nil }

	switch c.Backend {
	case BackendMemory:
		return property.NewMemoryStore(nil), noop, nil
	case BackendFile:
		s, err := property.OpenFileStore(c.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	case BackendSQLite:
		s, err := property.OpenSQLiteStore(c.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case BackendRedis:
		hash := c.Redis.Hash
		if hash == "" {
			hash = property.DefaultRedisHash
		}
		s := property.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		}), hash)
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, nil, err
		}
		return s, s.Close, nil
	case BackendNats:
		if remote == nil {
			return nil, nil, fmt.Errorf("nats property backend needs a host connection")
		}
		return remote, noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown property backend: %v", c.Backend)
	}
}
