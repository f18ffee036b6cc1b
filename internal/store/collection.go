package store

import "dashboard/internal/domain/model"

// コレクション操作はすべて新しいスライスを返す。元のスライスは変更しない。

func appended[T any](xs []T, x T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}

func replaced[T any](xs []T, i int, x T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	out[i] = x
	return out
}

func removed[T any](xs []T, i int) []T {
	out := make([]T, 0, len(xs)-1)
	out = append(out, xs[:i]...)
	return append(out, xs[i+1:]...)
}

func indexOf[T any](xs []T, id string, key func(T) string) int {
	for i, x := range xs {
		if key(x) == id {
			return i
		}
	}
	return -1
}

func clone[T any](xs []T) []T {
	return append([]T{}, xs...)
}

// idが空・重複していないか
func uniqueIDs[T any](xs []T, key func(T) string) bool {
	seen := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		id := key(x)
		if id == "" {
			return false
		}
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

func productID(p model.Product) string { return p.ID }
func orderID(o model.Order) string     { return o.ID }
func reportID(r model.Report) string   { return r.ID }
