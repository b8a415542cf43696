package kernel

import (
	"fmt"
	"slices"
	"strings"

	"garment/internal/pkg/errs"
)

// SizeQty is one entry of SizeQuantities.
type SizeQty struct {
	Size string
	Qty  int
}

// SizeQuantities is an ordered size -> quantity map. Sizes are unique and
// quantities are never negative. The zero value is an empty map.
type SizeQuantities struct {
	items []SizeQty
}

func NewSizeQuantities(items ...SizeQty) (SizeQuantities, error) {
	q := SizeQuantities{items: make([]SizeQty, 0, len(items))}
	for _, item := range items {
		size := strings.TrimSpace(item.Size)
		if size == "" {
			return SizeQuantities{}, errs.NewValueIsRequiredError("size")
		}
		if item.Qty < 0 {
			return SizeQuantities{}, errs.NewValueIsOutOfRangeError("qty["+size+"]", item.Qty, 0, "unbounded")
		}
		if q.index(size) >= 0 {
			return SizeQuantities{}, errs.NewValueIsInvalidErrorWithCause("quantities",
				fmt.Errorf("size %s appears twice", size))
		}
		q.items = append(q.items, SizeQty{Size: size, Qty: item.Qty})
	}
	return q, nil
}

func (q SizeQuantities) index(size string) int {
	return slices.IndexFunc(q.items, func(i SizeQty) bool { return i.Size == size })
}

// Get returns the quantity for size, or 0 when the size is absent.
func (q SizeQuantities) Get(size string) int {
	if i := q.index(size); i >= 0 {
		return q.items[i].Qty
	}
	return 0
}

func (q SizeQuantities) Has(size string) bool {
	return q.index(size) >= 0
}

// Add returns a copy with qty added to size, appending the size when missing.
func (q SizeQuantities) Add(size string, qty int) (SizeQuantities, error) {
	if qty < 0 {
		return SizeQuantities{}, errs.NewValueIsOutOfRangeError("qty["+size+"]", qty, 0, "unbounded")
	}
	out := SizeQuantities{items: slices.Clone(q.items)}
	if i := out.index(size); i >= 0 {
		out.items[i].Qty += qty
		return out, nil
	}
	if strings.TrimSpace(size) == "" {
		return SizeQuantities{}, errs.NewValueIsRequiredError("size")
	}
	out.items = append(out.items, SizeQty{Size: size, Qty: qty})
	return out, nil
}

func (q SizeQuantities) Sizes() []string {
	sizes := make([]string, len(q.items))
	for i, item := range q.items {
		sizes[i] = item.Size
	}
	return sizes
}

func (q SizeQuantities) Items() []SizeQty {
	return slices.Clone(q.items)
}

func (q SizeQuantities) Total() int {
	total := 0
	for _, item := range q.items {
		total += item.Qty
	}
	return total
}

func (q SizeQuantities) IsEmpty() bool {
	return len(q.items) == 0
}

// ValidateSizes fails when a size is not part of allowed.
func (q SizeQuantities) ValidateSizes(allowed []string) error {
	for _, item := range q.items {
		if !slices.Contains(allowed, item.Size) {
			return errs.NewValueIsInvalidErrorWithCause("quantities",
				fmt.Errorf("size %s is not part of %v", item.Size, allowed))
		}
	}
	return nil
}

// Ordered returns the entries following the given size order; sizes missing from
// order are appended in their original order.
func (q SizeQuantities) Ordered(order []string) SizeQuantities {
	out := SizeQuantities{items: make([]SizeQty, 0, len(q.items))}
	for _, size := range order {
		if i := q.index(size); i >= 0 {
			out.items = append(out.items, q.items[i])
		}
	}
	for _, item := range q.items {
		if !slices.Contains(order, item.Size) {
			out.items = append(out.items, item)
		}
	}
	return out
}
