package workflow

import (
	"context"
	"sync"
	"time"
)

const DefaultDraftTTL = 30 * time.Minute

// MinSweepInterval - нижняя граница периода очистки
const MinSweepInterval = time.Second

type sessionEntry[T any] struct {
	value   T
	touched time.Time
}

// Sessions - реестр открытых черновиков форм, ключ - токен формы.
// Черновик, к которому не обращались дольше ttl, удаляется.
type Sessions[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]*sessionEntry[T]
}

func NewSessions[T any](ttl time.Duration) *Sessions[T] {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &Sessions[T]{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]*sessionEntry[T]),
	}
}

// Put кладет черновик под токен, перезаписывая прежний
func (s *Sessions[T]) Put(token string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[token] = &sessionEntry[T]{value: value, touched: s.now()}
}

// GetOrPut возвращает черновик по токену или атомарно кладет новый из create.
// Второе значение - true, если черновик уже был.
func (s *Sessions[T]) GetOrPut(token string, create func() T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if entry, ok := s.items[token]; ok && now.Sub(entry.touched) <= s.ttl {
		entry.touched = now
		return entry.value, true
	}
	value := create()
	s.items[token] = &sessionEntry[T]{value: value, touched: now}
	return value, false
}

// Get возвращает черновик и продлевает ему жизнь
func (s *Sessions[T]) Get(token string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	entry, ok := s.items[token]
	if !ok {
		return zero, false
	}
	now := s.now()
	if now.Sub(entry.touched) > s.ttl {
		delete(s.items, token)
		return zero, false
	}
	entry.touched = now
	return entry.value, true
}

func (s *Sessions[T]) Close(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, token)
}

func (s *Sessions[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Sweep удаляет просроченные черновики и возвращает их количество
func (s *Sessions[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, entry := range s.items {
		if now.Sub(entry.touched) > s.ttl {
			delete(s.items, token)
			removed++
		}
	}
	return removed
}

// Run периодически чистит реестр до отмены контекста.
// Период не бывает меньше MinSweepInterval.
func (s *Sessions[T]) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	if interval <= 0 {
		interval = s.ttl / 2
	}
	interval = max(interval, MinSweepInterval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 && onSweep != nil {
				onSweep(removed)
			}
		}
	}
}
