// Package idgen はレコードIDの採番と現在時刻の取得を提供する。
package idgen

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// テスト用の固定時計
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

// Monotonicはミリ秒時刻ベースのIDを返す。
// 同じミリ秒内で呼ばれても前回+1にするので必ず増える。
type Monotonic struct {
	mu    sync.Mutex
	clock Clock
	last  int64
}

func NewMonotonic(clock Clock) *Monotonic {
	if clock == nil {
		clock = RealClock{}
	}
	return &Monotonic{clock: clock}
}

func (g *Monotonic) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.clock.Now().UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return strconv.FormatInt(n, 10)
}

type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// 設定値（monotonic / uuid）から生成器を選ぶ
func New(strategy string, clock Clock) (Generator, error) {
	switch strategy {
	case "", "monotonic":
		return NewMonotonic(clock), nil
	case "uuid":
		return UUID{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy: %q", strategy)
	}
}
