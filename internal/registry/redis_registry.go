package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRegistry 以redis key TTL實現服務註冊與發現
// 每個實例一個key: registry:<service>:<addr>，心跳續約TTL
type RedisRegistry struct {
	client  *redis.Client
	prefix  string
	counter atomic.Uint64
}

func NewRedisRegistry(client *redis.Client) *RedisRegistry {
	return &RedisRegistry{client: client, prefix: "registry"}
}

func (r *RedisRegistry) instanceKey(serviceName, addr string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, serviceName, addr)
}

func (r *RedisRegistry) servicePattern(serviceName string) string {
	return fmt.Sprintf("%s:%s:*", r.prefix, serviceName)
}

func (r *RedisRegistry) Register(ctx context.Context, inst Instance, ttl time.Duration) error {
	key := r.instanceKey(inst.ServiceName, inst.Addr)
	if err := r.client.Set(ctx, key, inst.Addr, ttl).Err(); err != nil {
		return fmt.Errorf("failed to register instance: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Deregister(ctx context.Context, inst Instance) error {
	key := r.instanceKey(inst.ServiceName, inst.Addr)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to deregister instance: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Resolve(ctx context.Context, serviceName string) (Instance, error) {
	var cursor uint64
	var keys []string
	for {
		batch, nextCursor, err := r.client.Scan(ctx, cursor, r.servicePattern(serviceName), 100).Result()
		if err != nil {
			return Instance{}, fmt.Errorf("failed to scan instances: %w", err)
		}
		keys = append(keys, batch...)
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	if len(keys) == 0 {
		return Instance{}, ErrServiceNotFound
	}

	// SCAN順序不穩定，排序後輪詢才公平
	sort.Strings(keys)
	n := r.counter.Add(1)
	key := keys[(n-1)%uint64(len(keys))]

	addr := strings.TrimPrefix(key, fmt.Sprintf("%s:%s:", r.prefix, serviceName))
	return Instance{ServiceName: serviceName, Addr: addr}, nil
}
