package models

import (
	"fmt"
	"math"
	"strings"
)

// Page is one slice of an ordered result set
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage builds a Page and derives the total page count
func NewPage[T any](content []T, number, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:       content,
		Number:        number,
		Size:          size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// SortField enumerates the pizza fields a listing can be ordered by
type SortField string

const (
	SortByID    SortField = "id"
	SortByName  SortField = "name"
	SortByPrice SortField = "price"
)

// SortDirection is the ordering direction of a SortSpec
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

var sortFields = map[SortField]struct{}{
	SortByID:    {},
	SortByName:  {},
	SortByPrice: {},
}

// SortSpec is a validated ordering instruction
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// ParseSort validates a field name and direction against the allow-list.
// The direction is matched case-insensitively.
func ParseSort(field, direction string) (SortSpec, error) {
	f := SortField(field)
	if _, ok := sortFields[f]; !ok {
		return SortSpec{}, fmt.Errorf("unknown sort field %q (allowed: id, name, price)", field)
	}

	var d SortDirection
	switch strings.ToUpper(strings.TrimSpace(direction)) {
	case string(SortAsc):
		d = SortAsc
	case string(SortDesc):
		d = SortDesc
	default:
		return SortSpec{}, fmt.Errorf("unknown sort direction %q (allowed: ASC, DESC)", direction)
	}

	return SortSpec{Field: f, Direction: d}, nil
}

// OrderClause renders the sort as an ORDER BY expression
func (s SortSpec) OrderClause() string {
	return string(s.Field) + " " + string(s.Direction)
}

// PageRequest addresses one page of a listing
type PageRequest struct {
	Page int
	Size int
	Sort *SortSpec
}

// Offset returns the number of rows preceding the requested page.
// ok is false when that number does not fit in an int.
func (r PageRequest) Offset() (offset int, ok bool) {
	if r.Page < 0 || r.Size < 0 {
		return 0, false
	}
	if r.Size > 0 && r.Page > math.MaxInt/r.Size {
		return 0, false
	}
	return r.Page * r.Size, true
}
