// Package cache wires the Redis connection used for sessions and jobs.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// New creates a new Redis client against the given address.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("platform/cache: ping: %w", err)
	}

	return client, nil
}

// NewEmbedded starts an in-process miniredis and returns a client bound to
// it, together with the listen address for other consumers (the job
// worker). State lives and dies with the process, matching the rest of the
// application's memory-resident model.
func NewEmbedded(ctx context.Context) (*redis.Client, string, error) {
	srv, err := miniredis.Run()
	if err != nil {
		return nil, "", fmt.Errorf("platform/cache: embedded redis: %w", err)
	}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	client, err := New(ctx, srv.Addr())
	if err != nil {
		srv.Close()
		return nil, "", err
	}
	return client, srv.Addr(), nil
}
