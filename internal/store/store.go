// Package store は管理画面のデータ（商品・注文・レポート）を持つ。
//
// 変更はすべてこのパッケージのメソッド経由で行い、コレクションは毎回
// 新しいスライスに置き換える（コピーオンライト）。変更のたびに
// スナップショットを保存するが、保存に失敗してもメモリ上の状態が正となる。
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"

	"dashboard/internal/domain/model"
	"dashboard/internal/idgen"
	"dashboard/internal/infra/logger"
	repo "dashboard/internal/repository"
)

type Store struct {
	name string

	mu      sync.Mutex // 書き込みを直列化
	current atomic.Pointer[model.Snapshot]

	snapshots repo.SnapshotRepository
	audits    repo.AuditLogRepository
	ids       idgen.Generator
	clock     idgen.Clock
	intn      func(n int) int
	log       *slog.Logger
	seed      func() model.Snapshot
}

type Option func(*Store)

func WithAuditLog(r repo.AuditLogRepository) Option {
	return func(s *Store) { s.audits = r }
}

func WithIDGenerator(g idgen.Generator) Option {
	return func(s *Store) { s.ids = g }
}

func WithClock(c idgen.Clock) Option {
	return func(s *Store) { s.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// レポートサイズ生成用の乱数（テストで固定する）
func WithRand(intn func(n int) int) Option {
	return func(s *Store) { s.intn = intn }
}

func WithSeed(seed func() model.Snapshot) Option {
	return func(s *Store) { s.seed = seed }
}

// Newはnameで保存されたスナップショットを読み込んでストアを作る。
// 保存がない・壊れている場合は初期データで始める。snapshotsがnilなら保存しない。
func New(ctx context.Context, name string, snapshots repo.SnapshotRepository, opts ...Option) *Store {
	s := &Store{
		name:      name,
		snapshots: snapshots,
		clock:     idgen.RealClock{},
		intn:      rand.Intn,
		log:       logger.Discard(),
		seed:      Seed,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = idgen.NewMonotonic(s.clock)
	}

	snap := s.restore(ctx)
	s.current.Store(&snap)
	return s
}

func (s *Store) restore(ctx context.Context) model.Snapshot {
	seed := s.seed()
	if s.snapshots == nil {
		return seed
	}

	loaded, err := s.snapshots.Load(ctx, s.name)
	if errors.Is(err, repo.ErrNotFound) {
		s.log.Info("snapshot_not_found", "store", s.name)
		return seed
	}
	if err != nil {
		s.log.Warn("snapshot_load_failed", "store", s.name, "error", err)
		return seed
	}
	if !uniqueIDs(loaded.Products, productID) || !uniqueIDs(loaded.Orders, orderID) || !uniqueIDs(loaded.Reports, reportID) {
		s.log.Warn("snapshot_invalid_ids", "store", s.name)
		return seed
	}

	//blobにあるコレクションだけ初期データを上書きする
	if loaded.Products != nil {
		seed.Products = loaded.Products
	}
	if loaded.Orders != nil {
		seed.Orders = loaded.Orders
	}
	if loaded.Reports != nil {
		seed.Reports = loaded.Reports
	}
	s.log.Info("snapshot_restored", "store", s.name,
		"products", len(seed.Products), "orders", len(seed.Orders), "reports", len(seed.Reports))
	return seed
}

// =====================
// 読み取り
// =====================

func (s *Store) Name() string {
	return s.name
}

// Snapshotは現在の3コレクションのコピーを返す
func (s *Store) Snapshot() model.Snapshot {
	return s.current.Load().Clone()
}

func (s *Store) Products() []model.Product {
	return clone(s.current.Load().Products)
}

func (s *Store) Orders() []model.Order {
	return clone(s.current.Load().Orders)
}

func (s *Store) Reports() []model.Report {
	return clone(s.current.Load().Reports)
}

func (s *Store) Product(id string) (model.Product, bool) {
	return find(s.current.Load().Products, id, productID)
}

func (s *Store) Order(id string) (model.Order, bool) {
	return find(s.current.Load().Orders, id, orderID)
}

func (s *Store) Report(id string) (model.Report, bool) {
	return find(s.current.Load().Reports, id, reportID)
}

func find[T any](xs []T, id string, key func(T) string) (T, bool) {
	if i := indexOf(xs, id, key); i >= 0 {
		return xs[i], true
	}
	var zero T
	return zero, false
}

// =====================
// 商品
// =====================

// AddProductは新しいIDを振って末尾に追加する。Sales未指定なら0。
func (s *Store) AddProduct(ctx context.Context, in model.NewProduct) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	p := model.Product{
		ID:       newID(s, cur.Products, productID),
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
		Status:   in.Status,
	}
	if in.Sales != nil {
		p.Sales = *in.Sales
	}

	next := *cur
	next.Products = appended(cur.Products, p)
	s.commit(ctx, &next, s.auditEntry(ctx, model.AuditActionCreate, model.AuditResourceProduct, p.ID, nil, p))
	return p
}

// UpdateProductは指定フィールドだけ置き換える。該当なしはfalse（エラーではない）。
func (s *Store) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	i := indexOf(cur.Products, id, productID)
	if i < 0 {
		s.log.Debug("update_ignored", "resource", model.AuditResourceProduct, "id", id)
		return model.Product{}, false
	}

	before := cur.Products[i]
	after := before.Apply(patch)

	next := *cur
	next.Products = replaced(cur.Products, i, after)
	s.commit(ctx, &next, s.auditEntry(ctx, model.AuditActionUpdate, model.AuditResourceProduct, id, before, after))
	return after, true
}

func (s *Store) DeleteProduct(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	i := indexOf(cur.Products, id, productID)
	if i < 0 {
		s.log.Debug("delete_ignored", "resource", model.AuditResourceProduct, "id", id)
		return false
	}

	next := *cur
	next.Products = removed(cur.Products, i)
	s.commit(ctx, &next, s.auditEntry(ctx, model.AuditActionDelete, model.AuditResourceProduct, id, cur.Products[i], nil))
	return true
}

// =====================
// 注文
// =====================

// AddOrderはDate未指定なら今日の日付（YYYY-MM-DD）を入れる
func (s *Store) AddOrder(ctx context.Context, in model.NewOrder) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	o := model.Order{
		ID:       newID(s, cur.Orders, orderID),
		Customer: in.Customer,
		Email:    in.Email,
		Amount:   in.Amount,
		Status:   in.Status,
		Date:     in.Date,
		Items:    in.Items,
	}
	if o.Date == "" {
		o.Date = s.today()
	}

	next := *cur
	next.Orders = appended(cur.Orders, o)
	s.commit(ctx, &next, s.auditEntry(ctx, model.AuditActionCreate, model.AuditResourceOrder, o.ID, nil, o))
	return o
}

func (s *Store) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	i := indexOf(cur.Orders, id, orderID)
	if i < 0 {
		s.log.Debug("update_ignored", "resource", model.AuditResourceOrder, "id", id)
		return model.Order{}, false
	}

	before := cur.Orders[i]
	after := before.Apply(patch)

	next := *cur
	next.Orders = replaced(cur.Orders, i, after)
	s.commit(ctx, &next, s.auditEntry(ctx, model.AuditActionUpdate, model.AuditResourceOrder, id, before, after))
	return after, true
}

func (s *Store) DeleteOrder(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	i := indexOf(cur.Orders, id, orderID)
	if i < 0 {
		s.log.Debug("delete_ignored", "resource", model.AuditResourceOrder, "id", id)
		return false
	}

	next := *cur
	next.Orders = removed(cur.Orders, i)
	s.commit(ctx, &next, s.auditEntry(ctx, model.AuditActionDelete, model.AuditResourceOrder, id, cur.Orders[i], nil))
	return true
}

// =====================
// レポート（更新なし）
// =====================

// AddReportはDate未指定なら今日、Size未指定なら "X.Y MB" を適当に作る
func (s *Store) AddReport(ctx context.Context, in model.NewReport) model.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	r := model.Report{
		ID:          newID(s, cur.Reports, reportID),
		Title:       in.Title,
		Type:        in.Type,
		GeneratedBy: in.GeneratedBy,
		Date:        in.Date,
		Size:        in.Size,
	}
	if r.Date == "" {
		r.Date = s.today()
	}
	if r.Size == "" {
		r.Size = s.sizeLabel()
	}

	next := *cur
	next.Reports = appended(cur.Reports, r)
	s.commit(ctx, &next, s.auditEntry(ctx, model.AuditActionCreate, model.AuditResourceReport, r.ID, nil, r))
	return r
}

func (s *Store) DeleteReport(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	i := indexOf(cur.Reports, id, reportID)
	if i < 0 {
		s.log.Debug("delete_ignored", "resource", model.AuditResourceReport, "id", id)
		return false
	}

	next := *cur
	next.Reports = removed(cur.Reports, i)
	s.commit(ctx, &next, s.auditEntry(ctx, model.AuditActionDelete, model.AuditResourceReport, id, cur.Reports[i], nil))
	return true
}

// =====================
// 内部処理
// =====================

// commitは新しいスナップショットを公開してから保存・監査ログを書く。
// 保存や監査ログの失敗はログに出すだけで呼び出し元には返さない。
// s.muを持った状態で呼ぶこと。
func (s *Store) commit(ctx context.Context, next *model.Snapshot, entry model.AuditLog) {
	s.current.Store(next)

	//公開済みの状態は必ず書く（クライアント切断でキャンセルされない）
	ctx = context.WithoutCancel(ctx)

	if s.snapshots != nil {
		if err := s.snapshots.Save(ctx, s.name, *next); err != nil {
			s.log.Warn("snapshot_save_failed", "store", s.name, "error", err)
		}
	}

	if s.audits != nil {
		if err := s.audits.Create(ctx, entry); err != nil {
			s.log.Warn("audit_log_failed", "store", s.name, "action", entry.Action, "resource_id", entry.ResourceID, "error", err)
		}
	}
}

// 既存IDと重ならないIDを返す
func newID[T any](s *Store, existing []T, key func(T) string) string {
	for {
		id := s.ids.NewID()
		if indexOf(existing, id, key) < 0 {
			return id
		}
	}
}

// 日付はUTC
func (s *Store) today() string {
	return s.clock.Now().UTC().Format(model.DateLayout)
}

// 0.5 MB 〜 5.4 MB
func (s *Store) sizeLabel() string {
	tenths := 5 + s.intn(50)
	return fmt.Sprintf("%d.%d MB", tenths/10, tenths%10)
}

func (s *Store) auditEntry(ctx context.Context, action model.AuditAction, resource model.AuditResourceType, id string, before, after any) model.AuditLog {
	return model.AuditLog{
		ID:           s.ids.NewID(),
		Action:       action,
		ResourceType: resource,
		ResourceID:   id,
		Before:       toJSON(before),
		After:        toJSON(after),
		Actor:        ActorFrom(ctx),
		CreatedAt:    s.clock.Now(),
	}
}

func toJSON(v any) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
