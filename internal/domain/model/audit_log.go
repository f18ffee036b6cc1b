package model

import "time"

// 作成、更新、削除。
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// 何に対する操作か
type AuditResourceType string

const (
	//商品に対する操作。
	AuditResourceProduct AuditResourceType = "product"

	//注文に対する操作。
	AuditResourceOrder AuditResourceType = "order"

	//レポートに対する操作。
	AuditResourceReport AuditResourceType = "report"
)

// 監査ログ（管理画面の操作ログ）。
// 「誰が」「何を」「どの対象に」「どう変えたか」を残す。
// スナップショットには含めない。
type AuditLog struct {
	ID string `gorm:"primaryKey;type:varchar(64)" json:"id"`

	Action AuditAction `gorm:"type:varchar(20);not null;index" json:"action"`

	ResourceType AuditResourceType `gorm:"type:varchar(20);not null;index" json:"resourceType"`

	ResourceID string `gorm:"type:varchar(64);not null;index" json:"resourceId"`

	//JSON文字列。作成時は空。
	Before string `gorm:"type:text" json:"before"`

	//JSON文字列。削除時は空。
	After string `gorm:"type:text" json:"after"`

	//操作者。トークンがなければ "anonymous"。
	Actor string `gorm:"type:varchar(255);not null" json:"actor"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
}

func (AuditLog) Columns() []string {
	return []string{"id", "action", "resourceType", "resourceId", "before", "after", "actor", "createdAt"}
}

func (l AuditLog) Values() []any {
	return []any{l.ID, l.Action, l.ResourceType, l.ResourceID, l.Before, l.After, l.Actor, l.CreatedAt.UTC().Format(time.RFC3339)}
}
