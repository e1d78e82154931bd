// Package redisstore implements the KeyedStore port on Redis.
//
// Single-field reads and writes map directly onto Redis commands. Apply
// batches run inside MULTI/EXEC via TxPipelined, so a record write and its
// index updates either all land or none do — Redis gives us the multi-key
// atomic batch the repository invariants call for.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// Store adapts a go-redis client to the KeyedStore port.
type Store struct {
	client redis.Cmdable
}

// New wraps an already-configured Redis client.
func New(client redis.Cmdable) *Store {
	return &Store{client: client}
}

// NewClient builds a Redis client from address and optional password.
func NewClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

// HGet reads one hash field. A redis.Nil reply means the field is absent.
func (s *Store) HGet(ctx context.Context, key, field string) (string, bool, error) {
	value, err := s.client.HGet(ctx, key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("hget %s %s: %w", key, field, err)
	}
	return value, true, nil
}

// HGetAll reads every field of a hash.
func (s *Store) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	values, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return values, nil
}

// HSet writes one hash field.
func (s *Store) HSet(ctx context.Context, key, field, value string) error {
	if err := s.client.HSet(ctx, key, field, value).Err(); err != nil {
		return fmt.Errorf("hset %s %s: %w", key, field, err)
	}
	return nil
}

// SMembers lists the members of a set.
func (s *Store) SMembers(ctx context.Context, key string) ([]string, error) {
	members, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("smembers %s: %w", key, err)
	}
	return members, nil
}

// Apply queues every operation on a transactional pipeline and executes it
// as one MULTI/EXEC block.
func (s *Store) Apply(ctx context.Context, ops ...ports.Op) error {
	if len(ops) == 0 {
		return nil
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, op := range ops {
			switch op.Kind {
			case ports.OpKindHSet:
				pipe.HSet(ctx, op.Key, op.Field, op.Value)
			case ports.OpKindHDel:
				pipe.HDel(ctx, op.Key, op.Members...)
			case ports.OpKindSAdd:
				pipe.SAdd(ctx, op.Key, toAnySlice(op.Members)...)
			case ports.OpKindSRem:
				pipe.SRem(ctx, op.Key, toAnySlice(op.Members)...)
			case ports.OpKindDel:
				pipe.Del(ctx, op.Keys...)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("apply batch of %d ops: %w", len(ops), err)
	}
	return nil
}

func toAnySlice(members []string) []any {
	out := make([]any, len(members))
	for i, m := range members {
		out[i] = m
	}
	return out
}
