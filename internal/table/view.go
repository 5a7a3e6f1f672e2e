// Package table pages an in-memory data set for display and classifies rows
// by their status field.
package table

import "errors"

// ErrInvalidPageSize is returned by New when the page size is below one.
var ErrInvalidPageSize = errors.New("page size must be positive")

// Row is a record the view can page and classify.
type Row interface {
	RowStatus() string
}

// View is a cursor over an ordered, read-only data set. All derived values
// are computed on demand from the rows, the page size and the cursor.
type View[R Row] struct {
	rows     []R
	pageSize int
	page     int
}

// New builds a view positioned on the first page. The rows are copied.
func New[R Row](rows []R, pageSize int) (*View[R], error) {
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}
	v := &View[R]{pageSize: pageSize}
	v.SetRows(rows)
	return v, nil
}

// SetRows replaces the data set and pulls the cursor back into range.
func (v *View[R]) SetRows(rows []R) {
	v.rows = make([]R, len(rows))
	copy(v.rows, rows)
	v.page = v.clamp(v.page)
}

// Len is the number of rows in the data set.
func (v *View[R]) Len() int { return len(v.rows) }

// PageSize is the configured number of rows per page.
func (v *View[R]) PageSize() int { return v.pageSize }

// CurrentPage is the zero-based page index.
func (v *View[R]) CurrentPage() int { return v.page }

// PageCount is ceil(Len/PageSize), and at least one so an empty data set
// still renders a single empty page.
func (v *View[R]) PageCount() int {
	n := (len(v.rows) + v.pageSize - 1) / v.pageSize
	if n < 1 {
		return 1
	}
	return n
}

// Offset is the index of the first row on the current page.
func (v *View[R]) Offset() int {
	return v.page * v.pageSize
}

// CurrentWindow returns the rows of the current page. The last page may be
// short; it is never padded.
func (v *View[R]) CurrentWindow() []R {
	start := v.Offset()
	if start > len(v.rows) {
		start = len(v.rows)
	}
	end := start + v.pageSize
	if end > len(v.rows) {
		end = len(v.rows)
	}
	out := make([]R, end-start)
	copy(out, v.rows[start:end])
	return out
}

// GoToPage moves the cursor to n, clamped into [0, PageCount()-1], and
// returns the new window.
func (v *View[R]) GoToPage(n int) []R {
	v.page = v.clamp(n)
	return v.CurrentWindow()
}

func (v *View[R]) NextPage() []R  { return v.GoToPage(v.page + 1) }
func (v *View[R]) PrevPage() []R  { return v.GoToPage(v.page - 1) }
func (v *View[R]) FirstPage() []R { return v.GoToPage(0) }
func (v *View[R]) LastPage() []R  { return v.GoToPage(v.PageCount() - 1) }

func (v *View[R]) HasNext() bool { return v.page < v.PageCount()-1 }
func (v *View[R]) HasPrev() bool { return v.page > 0 }

// Classify maps the row's status onto a Category.
func (v *View[R]) Classify(row R) Category {
	return ClassifyStatus(row.RowStatus())
}

func (v *View[R]) clamp(n int) int {
	if last := v.PageCount() - 1; n > last {
		n = last
	}
	if n < 0 {
		n = 0
	}
	return n
}
