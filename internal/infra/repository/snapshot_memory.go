package repository

import (
	"context"
	"encoding/json"
	"sync"

	"dashboard/internal/domain/model"
	repo "dashboard/internal/repository"
)

// テストとSTORAGE_DRIVER=memory用。
// ファイル実装と同じくJSONで持つので、シリアライズの往復も確認できる。
type SnapshotMemoryRepository struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewSnapshotMemoryRepository() *SnapshotMemoryRepository {
	return &SnapshotMemoryRepository{blobs: map[string][]byte{}}
}

func (r *SnapshotMemoryRepository) Load(_ context.Context, name string) (model.Snapshot, error) {
	r.mu.Lock()
	data, ok := r.blobs[name]
	r.mu.Unlock()
	if !ok {
		return model.Snapshot{}, repo.ErrNotFound
	}
	return decodeSnapshot(data)
}

func (r *SnapshotMemoryRepository) Save(_ context.Context, name string, snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[name] = data
	return nil
}

// Rawは保存されているblobをそのまま返す
func (r *SnapshotMemoryRepository) Raw(name string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.blobs[name]
	return data, ok
}

// PutRawは壊れたblobを仕込むのに使う
func (r *SnapshotMemoryRepository) PutRaw(name string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[name] = data
}
