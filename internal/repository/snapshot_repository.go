package repository

import (
	"context"
	"errors"

	"dashboard/internal/domain/model"
)

// 保存済みのスナップショットがない
var ErrNotFound = errors.New("not found")

// スナップショット（products/orders/reports）の保存先の約束。
// nameはストア名で、1つのnameに1つのblobを上書き保存する。
type SnapshotRepository interface {
	//保存がなければErrNotFound、壊れていればそれ以外のエラー
	Load(ctx context.Context, name string) (model.Snapshot, error)

	Save(ctx context.Context, name string, snap model.Snapshot) error
}
