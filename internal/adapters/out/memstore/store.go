// Package memstore provides an in-memory KeyedStore used by tests and by
// single-process deployments that run without Redis. All operations are
// guarded by one mutex, so an Apply batch is trivially atomic.
package memstore

import (
	"context"
	"sync"

	"storefront/internal/core/ports"
)

// Store is an in-memory hash/set store. The zero value is not usable;
// create instances with New.
type Store struct {
	mu     sync.RWMutex
	hashes map[string]map[string]string
	sets   map[string]map[string]struct{}
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		hashes: make(map[string]map[string]string),
		sets:   make(map[string]map[string]struct{}),
	}
}

// HGet reads one hash field.
func (s *Store) HGet(_ context.Context, key, field string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.hashes[key][field]
	return value, ok, nil
}

// HGetAll reads every field of a hash into a fresh map.
func (s *Store) HGetAll(_ context.Context, key string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.hashes[key]))
	for field, value := range s.hashes[key] {
		out[field] = value
	}
	return out, nil
}

// HSet writes one hash field.
func (s *Store) HSet(_ context.Context, key, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hset(key, field, value)
	return nil
}

// SMembers lists the members of a set.
func (s *Store) SMembers(_ context.Context, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]string, 0, len(s.sets[key]))
	for member := range s.sets[key] {
		members = append(members, member)
	}
	return members, nil
}

// Apply executes all operations under one lock acquisition.
func (s *Store) Apply(_ context.Context, ops ...ports.Op) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, op := range ops {
		switch op.Kind {
		case ports.OpKindHSet:
			s.hset(op.Key, op.Field, op.Value)
		case ports.OpKindHDel:
			for _, field := range op.Members {
				delete(s.hashes[op.Key], field)
			}
		case ports.OpKindSAdd:
			set, ok := s.sets[op.Key]
			if !ok {
				set = make(map[string]struct{})
				s.sets[op.Key] = set
			}
			for _, member := range op.Members {
				set[member] = struct{}{}
			}
		case ports.OpKindSRem:
			for _, member := range op.Members {
				delete(s.sets[op.Key], member)
			}
		case ports.OpKindDel:
			for _, key := range op.Keys {
				delete(s.hashes, key)
				delete(s.sets, key)
			}
		}
	}
	return nil
}

func (s *Store) hset(key, field, value string) {
	hash, ok := s.hashes[key]
	if !ok {
		hash = make(map[string]string)
		s.hashes[key] = hash
	}
	hash[field] = value
}
