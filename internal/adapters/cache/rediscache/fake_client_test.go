package rediscache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeClient es un redis en memoria con lo que usa PetsRepo (GET, SET, SETNX, DEL, PING).
// Los métodos no implementados paniquean por el nil embebido.
// Con err != nil todas las operaciones fallan.
type fakeClient struct {
	redis.UniversalClient

	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
	}
}

func (f *fakeClient) Get(ctx context.Context, k string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := redis.NewStringCmd(ctx, "get", k)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	v, ok := f.data[k]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (f *fakeClient) Set(ctx context.Context, k string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := redis.NewStatusCmd(ctx, "set", k)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.data[k] = asString(value)
	f.ttls[k] = ttl
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeClient) SetNX(ctx context.Context, k string, value interface{}, ttl time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := redis.NewBoolCmd(ctx, "setnx", k)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	if _, ok := f.data[k]; ok {
		cmd.SetVal(false)
		return cmd
	}
	f.data[k] = asString(value)
	f.ttls[k] = ttl
	cmd.SetVal(true)
	return cmd
}

func (f *fakeClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := redis.NewIntCmd(ctx, "del")
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			delete(f.ttls, k)
			n++
		}
	}
	cmd.SetVal(n)
	return cmd
}

func (f *fakeClient) Ping(ctx context.Context) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := redis.NewStatusCmd(ctx, "ping")
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	cmd.SetVal("PONG")
	return cmd
}

func (f *fakeClient) raw(k string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[k]
	return v, ok
}

func (f *fakeClient) failWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func asString(v interface{}) string {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return ""
	}
}
