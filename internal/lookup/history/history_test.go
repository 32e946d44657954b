package history

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idlookup/internal/lookup/models"
)

type countingRecorder struct {
	writes, reads int
}

func (r *countingRecorder) RecordHistoryWriteFailure(string) { r.writes++ }
func (r *countingRecorder) RecordHistoryReadFailure(string)  { r.reads++ }

type brokenKV struct {
	getErr error
	setErr error
	data   []byte
}

func (b *brokenKV) Get(context.Context, string) ([]byte, error) {
	if b.getErr != nil {
		return nil, b.getErr
	}
	if b.data == nil {
		return nil, ErrNotFound
	}
	return b.data, nil
}

func (b *brokenKV) Set(_ context.Context, _ string, value []byte) error {
	if b.setErr != nil {
		return b.setErr
	}
	b.data = value
	return nil
}

func TestGet_Empty(t *testing.T) {
	store := New(NewInMemoryKV())

	got := store.Get(context.Background(), models.CategoryIdentity)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdd_MostRecentFirst(t *testing.T) {
	store := New(NewInMemoryKV())
	ctx := context.Background()

	store.Add(ctx, models.CategoryNumber, "1111111111")
	got := store.Add(ctx, models.CategoryNumber, "2222222222")

	assert.Equal(t, []string{"2222222222", "1111111111"}, got)
	assert.Equal(t, got, store.Get(ctx, models.CategoryNumber))
}

func TestAdd_DedupMovesToFront(t *testing.T) {
	store := New(NewInMemoryKV())
	ctx := context.Background()

	for _, v := range []string{"a", "b", "c"} {
		store.Add(ctx, models.CategoryNumber, v)
	}
	got := store.Add(ctx, models.CategoryNumber, "a")

	assert.Equal(t, []string{"a", "c", "b"}, got)
}

func TestAdd_EvictsOldestBeyondCapacity(t *testing.T) {
	store := New(NewInMemoryKV())
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		store.Add(ctx, models.CategoryIdentity, fmt.Sprintf("v%d", i))
	}

	assert.Equal(t, []string{"v6", "v5", "v4", "v3", "v2"}, store.Get(ctx, models.CategoryIdentity))
}

func TestAdd_InvariantsHoldForAnySequence(t *testing.T) {
	store := New(NewInMemoryKV())
	ctx := context.Background()
	seq := []string{"a", "b", "a", "c", "d", "e", "f", "b", "b", "g", "a"}

	for _, v := range seq {
		got := store.Add(ctx, models.CategoryNumber, v)

		require.LessOrEqual(t, len(got), Capacity)
		require.Equal(t, v, got[0])
		seen := map[string]bool{}
		for _, e := range got {
			require.False(t, seen[e], "duplicate %q in %v", e, got)
			seen[e] = true
		}
	}
}

func TestAdd_EmptyValueIsNoOp(t *testing.T) {
	kv := NewInMemoryKV()
	store := New(kv)
	ctx := context.Background()
	store.Add(ctx, models.CategoryNumber, "x")

	got := store.Add(ctx, models.CategoryNumber, "")

	assert.Equal(t, []string{"x"}, got)
}

func TestCategoriesAreIndependent(t *testing.T) {
	store := New(NewInMemoryKV())
	ctx := context.Background()

	store.Add(ctx, models.CategoryIdentity, "123456789012")

	assert.Empty(t, store.Get(ctx, models.CategoryNumber))
}

func TestKeyPrefix(t *testing.T) {
	kv := NewInMemoryKV()
	store := New(kv, WithKeyPrefix("app:recent:"))

	store.Add(context.Background(), models.CategoryIdentity, "v")

	raw, err := kv.Get(context.Background(), "app:recent:identity")
	require.NoError(t, err)
	assert.JSONEq(t, `["v"]`, string(raw))
}

func TestGet_CorruptOrOversizedState(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt json yields empty", func(t *testing.T) {
		rec := &countingRecorder{}
		store := New(&brokenKV{data: []byte(`{not json`)}, WithRecorder(rec))

		assert.Empty(t, store.Get(ctx, models.CategoryNumber))
		assert.Equal(t, 1, rec.reads)
	})

	t.Run("stored state is normalized on read", func(t *testing.T) {
		store := New(&brokenKV{data: []byte(`["a","","a","b","c","d","e","f"]`)})

		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, store.Get(ctx, models.CategoryNumber))
	})

	t.Run("read error yields empty", func(t *testing.T) {
		rec := &countingRecorder{}
		store := New(&brokenKV{getErr: errors.New("timeout")}, WithRecorder(rec))

		assert.Empty(t, store.Get(ctx, models.CategoryNumber))
		assert.Equal(t, 1, rec.reads)
	})
}

func TestAdd_WriteFailureIsSwallowed(t *testing.T) {
	rec := &countingRecorder{}
	store := New(&brokenKV{setErr: errors.New("read-only replica")}, WithRecorder(rec))

	got := store.Add(context.Background(), models.CategoryIdentity, "123456789012")

	assert.Equal(t, []string{"123456789012"}, got)
	assert.Equal(t, 1, rec.writes)
}

func TestAdd_ConcurrentWritersKeepInvariants(t *testing.T) {
	store := New(NewInMemoryKV())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Add(ctx, models.CategoryNumber, fmt.Sprintf("v%d", i%7))
		}(i)
	}
	wg.Wait()

	got := store.Get(ctx, models.CategoryNumber)
	assert.Len(t, got, Capacity)
	seen := map[string]bool{}
	for _, e := range got {
		assert.False(t, seen[e])
		seen[e] = true
	}
}
