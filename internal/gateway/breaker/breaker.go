package breaker

import (
	"sync"
	"time"
)

type State uint

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

type BreakerConfig struct {
	FailureThreshold int           // 連續失敗達到此數量後斷開
	OpenTimeout      time.Duration // 斷開後多久進入半開
}

func GetDefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		OpenTimeout:      10 * time.Second,
	}
}

/*
每個route一個Breaker
closed -> open: 連續失敗達到FailureThreshold
open -> half-open: 經過OpenTimeout後放行一個探測請求
half-open -> closed: 探測成功
half-open -> open: 探測失敗
*/
type Breaker struct {
	BreakerConfig
	mu         sync.Mutex
	state      State
	failures   int
	openedAt   time.Time
	probing    bool
	nowFn      func() time.Time
}

func NewBreaker(config *BreakerConfig) *Breaker {
	b := &Breaker{nowFn: time.Now}
	if config != nil {
		b.BreakerConfig = *config
	} else {
		b.BreakerConfig = GetDefaultBreakerConfig()
	}
	return b
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Allow 回傳該請求是否可放行
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return true
	case StateOpen:
		if b.nowFn().Sub(b.openedAt) >= b.OpenTimeout {
			b.state = StateHalfOpen
			b.probing = true
			return true
		}
		return false
	case StateHalfOpen:
		// 半開狀態只放行一個探測請求
		if b.probing {
			return false
		}
		b.probing = true
		return true
	}
	return false
}

func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	b.probing = false
	b.state = StateClosed
}

func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateHalfOpen:
		b.open()
	case StateClosed:
		b.failures++
		if b.failures >= b.FailureThreshold {
			b.open()
		}
	}
}

func (b *Breaker) open() {
	b.state = StateOpen
	b.failures = 0
	b.probing = false
	b.openedAt = b.nowFn()
}
