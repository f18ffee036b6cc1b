package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dashboard/internal/domain/model"
	repo "dashboard/internal/repository"
)

// ブラウザのlocalStorage相当。<dir>/<name>.json に1ファイルで保存する。
type snapshotFileRepository struct {
	dir string
}

func NewSnapshotFileRepository(dir string) repo.SnapshotRepository {
	return &snapshotFileRepository{dir: dir}
}

func (r *snapshotFileRepository) path(name string) string {
	return filepath.Join(r.dir, name+".json")
}

func (r *snapshotFileRepository) Load(ctx context.Context, name string) (model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.Snapshot{}, err
	}

	data, err := os.ReadFile(r.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return model.Snapshot{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Snapshot{}, err
	}

	return decodeSnapshot(data)
}

func (r *snapshotFileRepository) Save(ctx context.Context, name string, snap model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}

	//一時ファイルに書いてからrenameで置き換える
	tmp, err := os.CreateTemp(r.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, r.path(name))
}

func decodeSnapshot(data []byte) (model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
