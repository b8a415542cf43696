// Package sizecategory resolves garment size-categories: named, ordered size
// lists that decide which sizes an order and its loadings may carry.
package sizecategory

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"garment/internal/pkg/errs"
)

var ErrSizeCategoryIsNotConstructed = errors.New("size category must be created via RestoreSizeCategory")

type SizeCategory struct {
	id    int64
	name  string
	sizes []string

	isConstructed bool
}

// RestoreSizeCategory rebuilds a category; sizes keep their declared order.
func RestoreSizeCategory(id int64, name string, sizes []string) (*SizeCategory, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("sizeCategoryId", fmt.Errorf("%d is not greater than 0", id))
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("categoryName")
	}
	if len(sizes) == 0 {
		return nil, errs.NewValueIsRequiredError("sizes")
	}
	for i, size := range sizes {
		if slices.Contains(sizes[:i], size) {
			return nil, errs.NewValueIsInvalidErrorWithCause("sizes", fmt.Errorf("size %s appears twice", size))
		}
	}
	return &SizeCategory{
		id:            id,
		name:          name,
		sizes:         slices.Clone(sizes),
		isConstructed: true,
	}, nil
}

func (c *SizeCategory) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrSizeCategoryIsNotConstructed
	}
	return nil
}

func (c *SizeCategory) ID() int64    { return c.id }
func (c *SizeCategory) Name() string { return c.name }

func (c *SizeCategory) Sizes() []string {
	return slices.Clone(c.sizes)
}

func (c *SizeCategory) HasSize(size string) bool {
	return slices.Contains(c.sizes, size)
}

// Matches compares category names case-insensitively.
func (c *SizeCategory) Matches(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), c.name)
}
