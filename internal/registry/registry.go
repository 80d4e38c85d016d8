package registry

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrNoInstance      = errors.New("no instance available")
)

// Instance 一個已註冊的服務實例
type Instance struct {
	ServiceName string `json:"service_name"`
	Addr        string `json:"addr"` // host:port
}

type Registrar interface {
	Register(ctx context.Context, inst Instance, ttl time.Duration) error
	Deregister(ctx context.Context, inst Instance) error
}

type Resolver interface {
	// Resolve 回傳一個可用實例，多實例時輪詢
	Resolve(ctx context.Context, serviceName string) (Instance, error)
}

// RunHeartbeat 週期性續約，直到ctx結束
// 續約間隔為ttl的1/3
func RunHeartbeat(ctx context.Context, r Registrar, inst Instance, ttl time.Duration) error {
	ticker := time.NewTicker(ttl / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			deregCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return r.Deregister(deregCtx, inst)
		case <-ticker.C:
			if err := r.Register(ctx, inst, ttl); err != nil && ctx.Err() == nil {
				return err
			}
		}
	}
}

// StaticResolver 固定位址解析，測試與無註冊中心部署用
type StaticResolver struct {
	services map[string][]string
	counter  atomic.Uint64
}

func NewStaticResolver(services map[string][]string) *StaticResolver {
	return &StaticResolver{services: services}
}

func (s *StaticResolver) Resolve(ctx context.Context, serviceName string) (Instance, error) {
	addrs, ok := s.services[serviceName]
	if !ok {
		return Instance{}, ErrServiceNotFound
	}
	if len(addrs) == 0 {
		return Instance{}, ErrNoInstance
	}
	n := s.counter.Add(1)
	return Instance{
		ServiceName: serviceName,
		Addr:        addrs[(n-1)%uint64(len(addrs))],
	}, nil
}
