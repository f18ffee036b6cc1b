package tabular

import (
	"fmt"
	"strings"
	"time"
)

type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
)

// ParseFormatは空文字をcsvとして扱う
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, true
	case FormatExcel, "xls":
		return FormatExcel, true
	}
	return "", false
}

func (f Format) MIMEType() string {
	if f == FormatExcel {
		return "application/vnd.ms-excel"
	}
	return "text/csv"
}

func (f Format) Extension() string {
	if f == FormatExcel {
		return "xls"
	}
	return "csv"
}

// ダウンロード用のファイル。ExcelもCSVと同じ本文を持つ。
type Document struct {
	Filename string
	MIMEType string
	Body     string
}

// {type}-{YYYY-MM-DD}.{ext}（日付はUTC）
func Filename(kind string, f Format, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", kind, now.UTC().Format("2006-01-02"), f.Extension())
}

func Export[T Record](kind string, f Format, rows []T, now time.Time) Document {
	return Document{
		Filename: Filename(kind, f, now),
		MIMEType: f.MIMEType(),
		Body:     Serialize(rows),
	}
}
