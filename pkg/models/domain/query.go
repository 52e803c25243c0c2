package domain

import "time"

type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// DateFilter restricts records to those whose date property is on or after OnOrAfter.
type DateFilter struct {
	Property  string
	OnOrAfter time.Time
}

type Sort struct {
	Property  string
	Direction SortDirection
}

// Query describes one request against a remote database. Zero PageSize means the
// backing store default.
type Query struct {
	DatabaseID string
	Filter     *DateFilter
	Sorts      []Sort
	PageSize   int
}
