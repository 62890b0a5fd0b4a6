package registry

import (
	"context"
	"time"
)

type ResolveHook func(ctx context.Context, key Key, duration time.Duration, err error)

type PutHook func(key Key, mode Mode)

// DisposeHook runs after each dispose callback with the callback's result.
type DisposeHook func(key Key, err error)

type ResolveInterceptor func(ctx context.Context, key Key, next func(ctx context.Context) (any, error)) (any, error)
