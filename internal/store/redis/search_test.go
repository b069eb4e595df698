package redis

import (
	"context"
	"testing"
	"time"
)

func TestSearchKey(t *testing.T) {
	if got := SearchKey("abc123"); got != "flightdeck:search:abc123" {
		t.Errorf("SearchKey() = %q", got)
	}
}

// The cache is best-effort: with no Redis configured every operation is
// a silent no-op and reads behave as misses.
func TestStoreNilClient(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	if err := store.CacheSearch(ctx, "h", []byte("payload"), time.Minute); err != nil {
		t.Errorf("CacheSearch() error = %v, want nil", err)
	}

	payload, err := store.GetCachedSearch(ctx, "h")
	if err != nil {
		t.Errorf("GetCachedSearch() error = %v, want nil", err)
	}
	if payload != nil {
		t.Errorf("GetCachedSearch() = %v, want nil miss", payload)
	}

	if err := store.InvalidateSearch(ctx, "h"); err != nil {
		t.Errorf("InvalidateSearch() error = %v, want nil", err)
	}
	if err := store.FlushSearches(ctx); err != nil {
		t.Errorf("FlushSearches() error = %v, want nil", err)
	}
}
