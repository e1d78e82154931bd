package ports

import "context"

// KeyedStore is the durability layer: a key-value store exposing hash
// (field -> value) and set primitives. Single-key operations are atomic;
// cross-key consistency is achieved by submitting every write of one logical
// change as a single Apply batch, which implementations execute atomically
// (Redis MULTI/EXEC) or under one lock (in-memory store).
type KeyedStore interface {
	// HGet reads one hash field. The boolean is false when the field is absent.
	HGet(ctx context.Context, key, field string) (string, bool, error)

	// HGetAll reads every field of a hash. Missing hashes yield an empty map.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// HSet writes one hash field.
	HSet(ctx context.Context, key, field, value string) error

	// SMembers lists the members of a set. Missing sets yield an empty slice.
	SMembers(ctx context.Context, key string) ([]string, error)

	// Apply executes the given write operations as one atomic batch.
	// Either all operations take effect or none do.
	Apply(ctx context.Context, ops ...Op) error
}

// OpKind enumerates the write operations Apply understands.
type OpKind int

const (
	OpKindHSet OpKind = iota
	OpKindHDel
	OpKindSAdd
	OpKindSRem
	OpKindDel
)

// Op is a single write operation inside an Apply batch.
type Op struct {
	Kind    OpKind
	Key     string
	Field   string
	Value   string
	Members []string
	Keys    []string
}

// OpHSet writes value under key/field.
func OpHSet(key, field, value string) Op {
	return Op{Kind: OpKindHSet, Key: key, Field: field, Value: value}
}

// OpHDel removes fields from the hash at key.
func OpHDel(key string, fields ...string) Op {
	return Op{Kind: OpKindHDel, Key: key, Members: fields}
}

// OpSAdd adds members to the set at key.
func OpSAdd(key string, members ...string) Op {
	return Op{Kind: OpKindSAdd, Key: key, Members: members}
}

// OpSRem removes members from the set at key.
func OpSRem(key string, members ...string) Op {
	return Op{Kind: OpKindSRem, Key: key, Members: members}
}

// OpDel deletes whole keys.
func OpDel(keys ...string) Op {
	return Op{Kind: OpKindDel, Keys: keys}
}
