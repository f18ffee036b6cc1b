package repository

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dashboard/internal/domain/model"
	repo "dashboard/internal/repository"

	"golang.org/x/crypto/blake2b"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// チェックサムが合わない（壊れたblob）
var ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

type snapshotGormRepository struct {
	db *gorm.DB
}

// store_snapshotsテーブルに name 単位で保存する
func NewSnapshotGormRepository(db *gorm.DB) repo.SnapshotRepository {
	return &snapshotGormRepository{db: db}
}

func (r *snapshotGormRepository) Load(ctx context.Context, name string) (model.Snapshot, error) {
	var row model.StoreSnapshot
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Snapshot{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Snapshot{}, err
	}

	if checksum(row.Payload) != row.Checksum {
		return model.Snapshot{}, ErrChecksumMismatch
	}
	return decodeSnapshot([]byte(row.Payload))
}

func (r *snapshotGormRepository) Save(ctx context.Context, name string, snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	row := model.StoreSnapshot{
		Name:      name,
		Payload:   string(data),
		Checksum:  checksum(string(data)),
		UpdatedAt: time.Now(),
	}

	//nameが既にあれば上書き
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "checksum", "updated_at"}),
	}).Create(&row).Error
}

func checksum(payload string) string {
	sum := blake2b.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
