// Package models defines the domain entities for the expense tracker.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxTitleLength is the maximum allowed length for expense titles.
const MaxTitleLength = 200

// MaxAmount is the exclusive upper bound for a single expense amount.
var MaxAmount = decimal.New(1, 12)

// AmountPlaces is the number of fractional digits stored for amounts.
const AmountPlaces = 2

// Exponent bounds for client supplied amounts. Anything outside them is
// rejected before any rescaling arithmetic runs.
const (
	MinAmountExponent = -18
	MaxAmountExponent = 12
)

// Category classifies an expense's purpose. The set is closed.
type Category string

// Supported categories.
const (
	CategoryFood          Category = "FOOD"
	CategoryTransport     Category = "TRANSPORT"
	CategoryUtilities     Category = "UTILITIES"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryOther         Category = "OTHER"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryOther,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryUtilities, CategoryEntertainment, CategoryOther:
		return true
	}
	return false
}

// ParseCategory normalizes and validates a category name (case-insensitive).
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// User is the owner of an expense set. Identity is the email forwarded by the auth proxy.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

// Expense represents a single expense entry. Expenses are never updated.
type Expense struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Amount    decimal.Decimal
	Category  Category
	CreatedAt time.Time
}

// CategoryTotal is the derived sum and count of expenses in one category.
type CategoryTotal struct {
	Category Category
	Total    decimal.Decimal
	Count    int
}

// DateRange is an inclusive [Start, End] interval of instants.
// A zero Start or End leaves that side unbounded.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the range is well formed (Start <= End when both are set).
func (r DateRange) Valid() bool {
	if r.Start.IsZero() || r.End.IsZero() {
		return true
	}
	return !r.Start.After(r.End)
}

// Unbounded reports whether neither side of the range is set.
func (r DateRange) Unbounded() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// ResetRequest scopes a bulk delete. Nil fields apply no restriction.
type ResetRequest struct {
	Range    *DateRange
	Category *Category
}

// FullWipe reports whether the request deletes every expense of the user.
func (r ResetRequest) FullWipe() bool {
	return (r.Range == nil || r.Range.Unbounded()) && r.Category == nil
}
