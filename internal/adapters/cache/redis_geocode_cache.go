package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/platform/obs"
)

const (
	geocodeKeyPrefix = "geocode:"
	geocodeTTL       = 30 * 24 * time.Hour
)

// Redis backed cache mapping geocode queries to coordinates. Values are
// stored as "lat,lon" strings under a prefixed key with a TTL, so the
// cache self-evicts stale geocoding data.
type RedisGeocodeCache struct {
	Client *redis.Client
}

func NewRedisGeocodeCache(client *redis.Client) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client}
}

// Fetch cached coordinates for the given queries.
func (r *RedisGeocodeCache) GetMany(ctx context.Context, queries []string) (_ map[string]domain.Point, err error) {
	defer obs.Time(ctx, "geocode.cache.GetMany")(&err)

	if r.Client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	if len(queries) == 0 {
		return map[string]domain.Point{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(queries))
	keys := make([]string, 0, len(queries))
	for _, q := range queries {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}

		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		uniq = append(uniq, q)
		keys = append(keys, geocodeKeyPrefix+q)
	}

	if len(uniq) == 0 {
		return map[string]domain.Point{}, nil
	}

	values, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: mget: %w", err)
	}

	out := make(map[string]domain.Point, len(uniq))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue // miss
		}
		p, err := parsePoint(s)
		if err != nil {
			// A malformed entry behaves like a miss; the caller will
			// overwrite it on the next put.
			continue
		}
		out[uniq[i]] = p
	}

	return out, nil
}

// Store query -> coordinate mappings in the cache.
func (r *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Point) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := r.Client.Pipeline()
	for key, p := range results {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("insert geocode cache: empty query key")
		}
		pipe.Set(ctx, geocodeKeyPrefix+key, formatPoint(p), geocodeTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: pipeline exec: %w", err)
	}
	return nil
}

func formatPoint(p domain.Point) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

func parsePoint(s string) (domain.Point, error) {
	lat, lng, ok := strings.Cut(s, ",")
	if !ok {
		return domain.Point{}, fmt.Errorf("malformed cache value %q", s)
	}
	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("malformed latitude in %q: %w", s, err)
	}
	lngF, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("malformed longitude in %q: %w", s, err)
	}
	return domain.Point{Lat: latF, Lng: lngF}, nil
}
