// Package tabular はレコード列をカンマ区切りのテキストに変換する。
package tabular

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// 列名と値を同じ順序で返すフラットなレコード。
type Record interface {
	Columns() []string
	Values() []any
}

// Serializeはrowsをヘッダ付きのCSVテキストにする。
// 列は先頭レコードの Columns() で決まる。空なら "" を返す。
func Serialize[T Record](rows []T) string {
	if len(rows) == 0 {
		return ""
	}

	columns := rows[0].Columns()
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(columns, ","))

	for _, r := range rows {
		values := r.Values()
		fields := make([]string, len(columns))
		for i := range columns {
			//列数が足りないレコードは空欄で埋める
			if i < len(values) {
				fields[i] = formatValue(values[i])
			}
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

// 文字列はダブルクォートで囲み、中の " は "" にする。
// 数値・真偽値はそのまま出す。
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return quote(t)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case decimal.Decimal:
		return t.String()
	}

	//ProductStatusのような名前付き文字列型
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return quote(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}

	return quote(fmt.Sprint(v))
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
