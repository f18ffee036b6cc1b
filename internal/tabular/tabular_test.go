package tabular_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"dashboard/internal/domain/model"
	"dashboard/internal/tabular"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Laptop Pro", Category: "Electronics", Price: decimal.RequireFromString("1299.99"), Stock: 45, Sales: 120, Status: model.ProductStatusActive},
		{ID: "2", Name: `Desk "Standing", Oak`, Category: "Furniture", Price: decimal.RequireFromString("450"), Stock: 0, Sales: 3, Status: model.ProductStatusOutOfStock},
		{ID: "3", Name: "Multi\nLine", Category: "Misc", Price: decimal.RequireFromString("0.5"), Stock: 7, Sales: 0, Status: model.ProductStatusInactive},
	}
}

type flagRow struct {
	Name    string
	Enabled bool
	Ratio   float64
	Extra   any
}

func (flagRow) Columns() []string { return []string{"name", "enabled", "ratio", "extra"} }
func (r flagRow) Values() []any   { return []any{r.Name, r.Enabled, r.Ratio, r.Extra} }

// =====================
// Serialize
// =====================

func TestSerialize_Empty(t *testing.T) {
	assert.Equal(t, "", tabular.Serialize([]model.Product{}))
	assert.Equal(t, "", tabular.Serialize[model.Order](nil))
}

func TestSerialize_HeaderAndRows(t *testing.T) {
	out := tabular.Serialize([]model.Product{
		{ID: "1", Name: "Laptop Pro", Category: "Electronics", Price: decimal.RequireFromString("1299.99"), Stock: 45, Sales: 120, Status: model.ProductStatusActive},
	})

	assert.Equal(t,
		"id,name,category,price,stock,sales,status\n"+
			`"1","Laptop Pro","Electronics",1299.99,45,120,"active"`,
		out,
	)
}

func TestSerialize_EscapesQuotes(t *testing.T) {
	out := tabular.Serialize(sampleProducts()[1:2])

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"2","Desk ""Standing"", Oak","Furniture",450,0,3,"out_of_stock"`, lines[1])
}

func TestSerialize_NonTextualValuesAreUnquoted(t *testing.T) {
	out := tabular.Serialize([]flagRow{
		{Name: "a", Enabled: true, Ratio: 0.25, Extra: nil},
		{Name: "b", Enabled: false, Ratio: 3, Extra: 12},
		{Name: "c", Enabled: false, Ratio: 1.5, Extra: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "name,enabled,ratio,extra", lines[0])
	assert.Equal(t, `"a",true,0.25,`, lines[1])
	assert.Equal(t, `"b",false,3,12`, lines[2])
	// 未知の型は文字列として扱う
	assert.True(t, strings.HasPrefix(lines[3], `"c",false,1.5,"2024-01-02`))
}

func TestSerialize_LineCountAndRoundTrip(t *testing.T) {
	rows := sampleProducts()
	out := tabular.Serialize(rows)

	r := csv.NewReader(strings.NewReader(out))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(rows)+1)

	assert.Equal(t, model.Product{}.Columns(), records[0])
	for i, p := range rows {
		got := records[i+1]
		assert.Equal(t, p.ID, got[0])
		assert.Equal(t, p.Name, got[1])
		assert.Equal(t, p.Category, got[2])
		assert.Equal(t, p.Price.String(), got[3])
		assert.Equal(t, string(p.Status), got[6])
	}
}

func TestSerialize_NoNewlineInNumericOnlyRowsGivesNPlusOneLines(t *testing.T) {
	orders := []model.Order{
		{ID: "1", Customer: "A", Email: "a@x.com", Amount: decimal.NewFromInt(10), Status: model.OrderStatusPending, Date: "2024-01-01", Items: 1},
		{ID: "2", Customer: "B", Email: "b@x.com", Amount: decimal.NewFromInt(20), Status: model.OrderStatusCompleted, Date: "2024-01-02", Items: 2},
	}

	out := tabular.Serialize(orders)
	assert.Len(t, strings.Split(out, "\n"), 3)
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestSerialize_Idempotent(t *testing.T) {
	rows := sampleProducts()
	assert.Equal(t, tabular.Serialize(rows), tabular.Serialize(rows))
}

// =====================
// Export
// =====================

func TestExport_CSVAndExcelShareBody(t *testing.T) {
	now := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	rows := sampleProducts()

	csvDoc := tabular.Export("products", tabular.FormatCSV, rows, now)
	xlsDoc := tabular.Export("products", tabular.FormatExcel, rows, now)

	assert.Equal(t, "products-2024-03-09.csv", csvDoc.Filename)
	assert.Equal(t, "text/csv", csvDoc.MIMEType)
	assert.Equal(t, "products-2024-03-09.xls", xlsDoc.Filename)
	assert.Equal(t, "application/vnd.ms-excel", xlsDoc.MIMEType)
	assert.Equal(t, csvDoc.Body, xlsDoc.Body)
}

func TestFilename_UsesUTCDate(t *testing.T) {
	// 東京の朝8時はUTCだと前日
	tokyo := time.Date(2024, 3, 10, 8, 0, 0, 0, time.FixedZone("JST", 9*60*60))

	assert.Equal(t, "orders-2024-03-09.csv", tabular.Filename("orders", tabular.FormatCSV, tokyo))
	assert.Equal(t, "orders-2024-03-09.xls", tabular.Export("orders", tabular.FormatExcel, []model.Order{}, tokyo).Filename)
}

func TestParseFormat(t *testing.T) {
	cases := map[string]tabular.Format{
		"":      tabular.FormatCSV,
		"csv":   tabular.FormatCSV,
		"CSV":   tabular.FormatCSV,
		"excel": tabular.FormatExcel,
		"xls":   tabular.FormatExcel,
	}
	for in, want := range cases {
		got, ok := tabular.ParseFormat(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := tabular.ParseFormat("pdf")
	assert.False(t, ok)
}
