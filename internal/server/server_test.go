package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"dashboard/internal/app"
	"dashboard/internal/config"
	"dashboard/internal/domain/model"
	"dashboard/internal/handler"
	"dashboard/internal/infra/logger"
	"dashboard/internal/server"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret"

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func newTestServer(t *testing.T) *TestClient {
	t.Helper()

	cfg := config.Config{
		StoreName:     "admin-dashboard-storage",
		StorageDriver: config.StorageMemory,
		IDStrategy:    "monotonic",
		AuditCapacity: 100,
		JWTSecret:     testSecret,
	}
	log := logger.Discard()

	a, err := app.Build(context.Background(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	ts := httptest.NewServer(server.New(cfg, log, a.Handlers()))
	t.Cleanup(ts.Close)

	return &TestClient{BaseURL: ts.URL, HTTP: &http.Client{Timeout: 10 * time.Second}}
}

func (c *TestClient) do(t *testing.T, method, path, bearer string, body []byte) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTP.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

type productList struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

func TestHealthz(t *testing.T) {
	c := newTestServer(t)

	resp, body := c.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[handler.SuccessResponse](t, body).Message)
}

func TestProductLifecycle(t *testing.T) {
	c := newTestServer(t)
	token := signToken(t, jwt.MapClaims{"sub": "u-1", "name": "Alice"})

	resp, body := c.do(t, http.MethodGet, "/admin/products", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, decode[productList](t, body).Total)

	// 作成
	resp, body = c.do(t, http.MethodPost, "/admin/products", token,
		[]byte(`{"name":"  Desk Lamp ","category":"Furniture","price":"39.90","stock":12}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	created := decode[model.Product](t, body)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Desk Lamp", created.Name)
	assert.Equal(t, int64(0), created.Sales)
	assert.Equal(t, model.ProductStatusActive, created.Status)

	resp, body = c.do(t, http.MethodGet, "/admin/products", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[productList](t, body)
	require.Equal(t, 6, list.Total)
	assert.Equal(t, created.ID, list.Items[5].ID)

	// 部分更新
	resp, body = c.do(t, http.MethodPatch, "/admin/products/"+created.ID, "", []byte(`{"stock":3}`))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	updated := decode[model.Product](t, body)
	assert.Equal(t, int64(3), updated.Stock)
	assert.Equal(t, "Desk Lamp", updated.Name)

	// 存在しないIDはエラーにしない
	resp, body = c.do(t, http.MethodPatch, "/admin/products/nope", "", []byte(`{"stock":3}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "not found (ignored)", decode[handler.SuccessResponse](t, body).Message)

	resp, body = c.do(t, http.MethodDelete, "/admin/products/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "deleted", decode[handler.SuccessResponse](t, body).Message)

	resp, body = c.do(t, http.MethodDelete, "/admin/products/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "not found (ignored)", decode[handler.SuccessResponse](t, body).Message)

	resp, _ = c.do(t, http.MethodGet, "/admin/products/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// 監査ログ（新しい順）
	resp, body = c.do(t, http.MethodGet, "/admin/audit-logs?resource_type=product&resource_id="+created.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	logs := decode[[]model.AuditLog](t, body)
	require.Len(t, logs, 3)
	assert.Equal(t, model.AuditActionDelete, logs[0].Action)
	assert.Equal(t, model.AuditActionUpdate, logs[1].Action)
	assert.Equal(t, model.AuditActionCreate, logs[2].Action)
	assert.Equal(t, "Alice", logs[2].Actor)
	assert.Equal(t, "anonymous", logs[1].Actor)
	assert.Empty(t, logs[2].Before)
	assert.Empty(t, logs[0].After)
}

func TestProductValidation(t *testing.T) {
	c := newTestServer(t)

	resp, _ := c.do(t, http.MethodPost, "/admin/products", "", []byte(`{"name":"","price":"1"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = c.do(t, http.MethodPost, "/admin/products", "", []byte(`{"name":"x","price":"-1"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = c.do(t, http.MethodPatch, "/admin/products/1", "", []byte(`{"status":"archived"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = c.do(t, http.MethodGet, "/admin/products?status=archived", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrderAndReportCreate(t *testing.T) {
	c := newTestServer(t)
	resp, body := c.do(t, http.MethodPost, "/admin/orders", "",
		[]byte(`{"customer":"Jane Roe","email":"jane@example.com","amount":"10.00","items":2}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	o := decode[model.Order](t, body)
	assert.Equal(t, model.OrderStatusPending, o.Status)
	_, err := time.Parse(model.DateLayout, o.Date)
	assert.NoError(t, err)

	resp, body = c.do(t, http.MethodPost, "/admin/reports", "",
		[]byte(`{"title":"Weekly Digest","type":"Sales","generatedBy":"Admin User"}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	r := decode[model.Report](t, body)
	assert.Regexp(t, regexp.MustCompile(`^\d\.\d MB$`), r.Size)
	assert.NotEmpty(t, r.Date)

	resp, body = c.do(t, http.MethodDelete, "/admin/reports/"+r.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "deleted", decode[handler.SuccessResponse](t, body).Message)
}

func TestExportStored(t *testing.T) {
	c := newTestServer(t)

	resp, body := c.do(t, http.MethodGet, "/admin/export/products?format=excel", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "application/vnd.ms-excel", resp.Header.Get("Content-Type"))

	disposition := resp.Header.Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, `attachment; filename="products-`), disposition)
	assert.True(t, strings.HasSuffix(disposition, `.xls"`), disposition)

	lines := strings.Split(string(body), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "id,name,category,price,stock,sales,status", lines[0])
	assert.Equal(t, `"1","Laptop Pro","Electronics",1299.99,45,234,"active"`, lines[1])
	assert.False(t, strings.HasSuffix(string(body), "\n"))

	resp, _ = c.do(t, http.MethodGet, "/admin/export/orders", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"))
}

func TestExportExplicit(t *testing.T) {
	c := newTestServer(t)

	rows := `[{"id":"9","title":"Say \"hi\"","type":"Sales","generatedBy":"Me","date":"2024-02-02","size":"1.0 MB"}]`
	resp, body := c.do(t, http.MethodPost, "/admin/export/reports?format=csv", "", []byte(rows))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t,
		"id,title,type,generatedBy,date,size\n"+`"9","Say ""hi""","Sales","Me","2024-02-02","1.0 MB"`,
		string(body))

	// 空配列はコレクションではなく空の出力
	resp, body = c.do(t, http.MethodPost, "/admin/export/reports", "", []byte(`[]`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)
}

func TestExportErrors(t *testing.T) {
	c := newTestServer(t)

	resp, body := c.do(t, http.MethodGet, "/admin/export/customers", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid type", decode[handler.ErrorResponse](t, body).Error)

	resp, body = c.do(t, http.MethodGet, "/admin/export/products?format=pdf", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid format", decode[handler.ErrorResponse](t, body).Error)

	resp, _ = c.do(t, http.MethodPost, "/admin/export/products", "", []byte(`{"not":"an array"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
