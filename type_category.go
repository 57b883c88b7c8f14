package dashboard

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category is the normalized type label of an account (Checking, Savings, ...).
type Category string

// Well known categories, in their display order.
const (
	Checking Category = "Checking"
	Savings  Category = "Savings"
	Stocks   Category = "Stocks"
	Crypto   Category = "Crypto"
)

// categoryOrder is the fixed display order. It is policy, not derived from data.
var categoryOrder = []Category{Checking, Savings, Stocks, Crypto}

// NormalizeCategory returns the canonical capitalization of a free-text label:
// first letter upper case, the rest lower case.
func NormalizeCategory(label string) Category {
	label = strings.TrimSpace(label)
	r, size := utf8.DecodeRuneInString(label)
	if r == utf8.RuneError {
		return Category(label)
	}
	return Category(string(unicode.ToUpper(r)) + strings.ToLower(label[size:]))
}

var fixedOrder = NewCategoryOrder()

// CategoryOrder ranks categories for display: the fixed ones first, then the
// unknown ones in the order they were first seen.
type CategoryOrder struct {
	rank map[Category]int
	list []Category
}

// NewCategoryOrder builds the display order for the given labels, in first-seen order.
func NewCategoryOrder(seen ...Category) *CategoryOrder {
	o := &CategoryOrder{rank: make(map[Category]int)}
	for _, c := range categoryOrder {
		o.rank[c] = len(o.rank)
	}
	for _, c := range seen {
		o.see(c)
	}
	return o
}

func (o *CategoryOrder) see(c Category) {
	if slices.Contains(o.list, c) {
		return
	}
	if _, ok := o.rank[c]; !ok {
		o.rank[c] = len(o.rank)
	}
	o.list = append(o.list, c)
}

// Compare orders two categories, for use with slices.SortFunc.
// Categories that were never seen sort last, alphabetically.
// A nil order only knows the fixed categories.
func (o *CategoryOrder) Compare(a, b Category) int {
	if o == nil {
		o = fixedOrder
	}
	ra, oka := o.rank[a]
	rb, okb := o.rank[b]
	switch {
	case oka && okb:
		return ra - rb
	case oka:
		return -1
	case okb:
		return 1
	default:
		return strings.Compare(string(a), string(b))
	}
}

// Categories returns the seen categories in display order.
func (o *CategoryOrder) Categories() []Category {
	out := slices.Clone(o.list)
	slices.SortFunc(out, o.Compare)
	return out
}
