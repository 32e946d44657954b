// Package sync provides per-key locking for read-modify-write sequences.
package sync

import (
	"hash/fnv"
	"sync"
)

const shardCount = 16

// ShardedMutex serializes work per key without one global lock.
// Keys that hash to the same shard share a mutex, which is safe but may
// serialize unrelated keys.
type ShardedMutex struct {
	shards [shardCount]sync.Mutex
}

// NewShardedMutex creates a ShardedMutex.
func NewShardedMutex() *ShardedMutex {
	return &ShardedMutex{}
}

// Lock acquires the mutex for key's shard.
func (m *ShardedMutex) Lock(key string) {
	m.shards[shardFor(key)].Lock()
}

// Unlock releases the mutex for key's shard.
func (m *ShardedMutex) Unlock(key string) {
	m.shards[shardFor(key)].Unlock()
}

func shardFor(key string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32() % shardCount
}
