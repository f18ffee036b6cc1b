package repository

import (
	"context"
	"sync"

	"dashboard/internal/domain/model"
	repo "dashboard/internal/repository"
)

// 直近capacity件だけ保持する。プロセス終了で消える。
type AuditLogMemoryRepository struct {
	mu       sync.RWMutex
	logs     []model.AuditLog
	capacity int
}

func NewAuditLogMemoryRepository(capacity int) *AuditLogMemoryRepository {
	if capacity <= 0 {
		capacity = 1000
	}
	return &AuditLogMemoryRepository{capacity: capacity}
}

func (r *AuditLogMemoryRepository) Create(_ context.Context, log model.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs = append(r.logs, log)
	if over := len(r.logs) - r.capacity; over > 0 {
		r.logs = append([]model.AuditLog(nil), r.logs[over:]...)
	}
	return nil
}

func (r *AuditLogMemoryRepository) List(_ context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	filter = filter.Normalize()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.AuditLog{}
	skipped := 0
	//新しい順
	for i := len(r.logs) - 1; i >= 0; i-- {
		l := r.logs[i]
		if !filter.Match(l) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		out = append(out, l)
		if len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}
