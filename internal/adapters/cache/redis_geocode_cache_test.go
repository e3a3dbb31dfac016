package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"safe-route-service/internal/domain"
)

func newTestRedisCache(t *testing.T) (*RedisGeocodeCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisGeocodeCache(client), mr
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c, _ := newTestRedisCache(t)
	ctx := context.Background()

	want := map[string]domain.Point{
		"gajuwaka":   {Lat: 17.6868, Lng: 83.2185},
		"mvp colony": {Lat: 17.7408, Lng: 83.3339},
	}
	if err := c.PutMany(ctx, want); err != nil {
		t.Fatalf("PutMany failed: %v", err)
	}

	got, err := c.GetMany(ctx, []string{"gajuwaka", "mvp colony", "unknown place"})
	if err != nil {
		t.Fatalf("GetMany failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	for key, p := range want {
		if got[key] != p {
			t.Errorf("got[%q] = %+v, want %+v", key, got[key], p)
		}
	}
	if _, ok := got["unknown place"]; ok {
		t.Error("uncached query must not appear in the result")
	}
}

func TestRedisGeocodeCacheSkipsBlankAndDuplicateQueries(t *testing.T) {
	c, _ := newTestRedisCache(t)
	ctx := context.Background()

	if err := c.PutMany(ctx, map[string]domain.Point{"nad junction": {Lat: 17.7433, Lng: 83.2428}}); err != nil {
		t.Fatalf("PutMany failed: %v", err)
	}

	got, err := c.GetMany(ctx, []string{"", "  ", "nad junction", "nad junction"})
	if err != nil {
		t.Fatalf("GetMany failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len(got) = %d, want 1", len(got))
	}

	if err := c.PutMany(ctx, map[string]domain.Point{"": {}}); err == nil {
		t.Error("PutMany with an empty key should fail")
	}
}

func TestRedisGeocodeCacheTreatsMalformedValueAsMiss(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	if err := mr.Set(geocodeKeyPrefix+"broken", "not-a-point"); err != nil {
		t.Fatalf("seed miniredis: %v", err)
	}

	got, err := c.GetMany(ctx, []string{"broken"})
	if err != nil {
		t.Fatalf("GetMany failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("malformed entry should read as a miss, got %+v", got)
	}
}

func TestRedisGeocodeCacheEmptyInput(t *testing.T) {
	c, _ := newTestRedisCache(t)
	ctx := context.Background()

	got, err := c.GetMany(ctx, nil)
	if err != nil {
		t.Fatalf("GetMany(nil) failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("GetMany(nil) = %+v, want empty map", got)
	}

	if err := c.PutMany(ctx, nil); err != nil {
		t.Errorf("PutMany(nil) failed: %v", err)
	}
}
