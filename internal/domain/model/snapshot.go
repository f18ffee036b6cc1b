package model

import "time"

// 永続化対象の3コレクション。保存するJSONはこの3フィールドだけ。
type Snapshot struct {
	Products []Product `json:"products"`
	Orders   []Order   `json:"orders"`
	Reports  []Report  `json:"reports"`
}

// Cloneは各スライスをコピーした値を返す
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Products: append([]Product{}, s.Products...),
		Orders:   append([]Order{}, s.Orders...),
		Reports:  append([]Report{}, s.Reports...),
	}
}

// postgresに保存するときの1行（name = ストア名）
type StoreSnapshot struct {
	Name      string    `gorm:"primaryKey;type:varchar(100)"`
	Payload   string    `gorm:"type:text;not null"`
	Checksum  string    `gorm:"type:varchar(64);not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

func (StoreSnapshot) TableName() string {
	return "store_snapshots"
}
