package model

// レポート。更新操作はなし（作成と削除のみ）。
type Report struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	GeneratedBy string `json:"generatedBy"`
	Date        string `json:"date"`
	// "2.4 MB" のような表示用ラベル
	Size string `json:"size"`
}

func (Report) Columns() []string {
	return []string{"id", "title", "type", "generatedBy", "date", "size"}
}

func (r Report) Values() []any {
	return []any{r.ID, r.Title, r.Type, r.GeneratedBy, r.Date, r.Size}
}

// Date/Sizeが空なら作成時に補完する
type NewReport struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	GeneratedBy string `json:"generatedBy"`
	Date        string `json:"date,omitempty"`
	Size        string `json:"size,omitempty"`
}
