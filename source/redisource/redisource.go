// Package redisource provides paging sources backed by Redis lists and
// sorted sets. Counting is a single LLEN/ZCARD, so the two-pass cost of
// building a page stays cheap even for large keys.
package redisource

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Client is the subset of redis.UniversalClient the sources need.
// Tests fake it with the go-redis result constructors.
type Client interface {
	LLen(ctx context.Context, key string) *redis.IntCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	ZCard(ctx context.Context, key string) *redis.IntCmd
	ZRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// ListSource pages over a Redis list. Members are decoded one by one; a
// single undecodable member fails the whole slice.
type ListSource[T any] struct {
	client  Client
	key     string
	decode  DecodeFunc[T]
	reverse bool
	log     zerolog.Logger
}

// NewListSource wires a source to an existing client. All arguments are required.
func NewListSource[T any](client Client, key string, decode DecodeFunc[T], logger zerolog.Logger) (*ListSource[T], error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if key == "" {
		return nil, errors.New("key is required")
	}
	if decode == nil {
		return nil, errors.New("decode func is required")
	}
	l := logger.With().Str("component", "redisource").Str("key", key).Logger()
	return &ListSource[T]{client: client, key: key, decode: decode, log: l}, nil
}

// Reversed returns a copy that reads the list back to front. Lists filled
// with LPUSH keep the newest member at index 0; reading them reversed
// pages from oldest to newest without rewriting the key.
func (s *ListSource[T]) Reversed() *ListSource[T] {
	c := *s
	c.reverse = true
	return &c
}

func (s *ListSource[T]) Count(ctx context.Context) (int, error) {
	n, err := s.client.LLen(ctx, s.key).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (s *ListSource[T]) Slice(ctx context.Context, offset, limit int) ([]T, error) {
	if limit <= 0 {
		return []T{}, nil
	}
	start, stop := window(offset, limit, s.reverse)
	vals, err := s.client.LRange(ctx, s.key, start, stop).Result()
	if err != nil {
		return nil, err
	}
	if s.reverse {
		// LRANGE always returns members in ascending index order, so the
		// tail window comes back backwards relative to the logical page.
		reverseStrings(vals)
	}
	s.log.Debug().Int("limit", limit).Int("offset", offset).Int("members", len(vals)).Msg("page fetched")
	return decodeAll(vals, s.decode)
}

// ZSetSource pages over a Redis sorted set in rank order.
type ZSetSource[T any] struct {
	client Client
	key    string
	decode DecodeFunc[T]
	log    zerolog.Logger
}

// NewZSetSource wires a source to an existing client. All arguments are required.
func NewZSetSource[T any](client Client, key string, decode DecodeFunc[T], logger zerolog.Logger) (*ZSetSource[T], error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if key == "" {
		return nil, errors.New("key is required")
	}
	if decode == nil {
		return nil, errors.New("decode func is required")
	}
	l := logger.With().Str("component", "redisource").Str("key", key).Logger()
	return &ZSetSource[T]{client: client, key: key, decode: decode, log: l}, nil
}

func (s *ZSetSource[T]) Count(ctx context.Context) (int, error) {
	n, err := s.client.ZCard(ctx, s.key).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (s *ZSetSource[T]) Slice(ctx context.Context, offset, limit int) ([]T, error) {
	if limit <= 0 {
		return []T{}, nil
	}
	start, stop := window(offset, limit, false)
	vals, err := s.client.ZRange(ctx, s.key, start, stop).Result()
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("limit", limit).Int("offset", offset).Int("members", len(vals)).Msg("page fetched")
	return decodeAll(vals, s.decode)
}

// window translates an offset/limit pair into the inclusive start/stop
// indexes LRANGE and ZRANGE expect. The reversed form addresses the same
// window from the tail with negative indexes, so -1 is the last member.
func window(offset, limit int, reverse bool) (start, stop int64) {
	start = int64(offset)
	stop = int64(offset + limit - 1)
	if reverse {
		start, stop = -stop-1, -start-1
	}
	return start, stop
}

func reverseStrings(ss []string) {
	for i, j := 0, len(ss)-1; i < j; i, j = i+1, j-1 {
		ss[i], ss[j] = ss[j], ss[i]
	}
}

func decodeAll[T any](vals []string, decode DecodeFunc[T]) ([]T, error) {
	items := make([]T, 0, len(vals))
	for _, v := range vals {
		item, err := decode(v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
