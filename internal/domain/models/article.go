package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ArticleParams carries the raw field values used to build or overwrite an article.
type ArticleParams struct {
	Name          string
	Brand         string
	BuyingPrice   decimal.Decimal
	SellingPrice  decimal.Decimal
	Units         int
	SecurityStock int
	MaxStock      int
}

// ArticleKey is the natural identity of an article, independent of its code.
type ArticleKey struct {
	Name  string
	Brand string
}

// Article is a single stock-keeping unit. Its fields are only changed through
// the validating setters so units and prices never go negative.
type Article struct {
	code          int
	name          string
	brand         string
	buyingPrice   decimal.Decimal
	sellingPrice  decimal.Decimal
	units         int
	securityStock int
	maxStock      int
}

// NewArticle validates every field in declaration order and returns the article
// identified by code.
func NewArticle(code int, p ArticleParams) (*Article, error) {
	a := &Article{code: code}
	if err := a.apply(p); err != nil {
		return nil, err
	}
	return a, nil
}

// Overwrite replaces every field through its setter. It stops at the first
// rejected value; fields set before it keep their new value.
func (a *Article) Overwrite(p ArticleParams) error {
	return a.apply(p)
}

func (a *Article) apply(p ArticleParams) error {
	if err := a.SetName(p.Name); err != nil {
		return err
	}
	if err := a.SetBrand(p.Brand); err != nil {
		return err
	}
	if err := a.SetBuyingPrice(p.BuyingPrice); err != nil {
		return err
	}
	if err := a.SetSellingPrice(p.SellingPrice); err != nil {
		return err
	}
	if err := a.SetUnits(p.Units); err != nil {
		return err
	}
	a.SetSecurityStock(p.SecurityStock)
	a.SetMaxStock(p.MaxStock)
	return nil
}

// Code returns the sequential identifier assigned by the owning warehouse.
func (a *Article) Code() int { return a.code }

func (a *Article) Name() string { return a.name }

func (a *Article) Brand() string { return a.brand }

func (a *Article) BuyingPrice() decimal.Decimal { return a.buyingPrice }

func (a *Article) SellingPrice() decimal.Decimal { return a.sellingPrice }

func (a *Article) Units() int { return a.units }

func (a *Article) SecurityStock() int { return a.securityStock }

func (a *Article) MaxStock() int { return a.maxStock }

// Key returns the (name, brand) identity used for equality.
func (a *Article) Key() ArticleKey {
	return ArticleKey{Name: a.name, Brand: a.brand}
}

// SetName replaces the name; blank values are rejected.
func (a *Article) SetName(name string) error {
	if err := requireText("name", name); err != nil {
		return err
	}
	a.name = name
	return nil
}

// SetBrand replaces the brand; blank values are rejected.
func (a *Article) SetBrand(brand string) error {
	if err := requireText("brand", brand); err != nil {
		return err
	}
	a.brand = brand
	return nil
}

// SetBuyingPrice replaces the buying price; negative amounts are rejected.
func (a *Article) SetBuyingPrice(price decimal.Decimal) error {
	if err := requirePrice("buying price", price); err != nil {
		return err
	}
	a.buyingPrice = price
	return nil
}

// SetSellingPrice replaces the selling price; negative amounts are rejected.
func (a *Article) SetSellingPrice(price decimal.Decimal) error {
	if err := requirePrice("selling price", price); err != nil {
		return err
	}
	a.sellingPrice = price
	return nil
}

// SetUnits replaces the stock count.
func (a *Article) SetUnits(units int) error {
	if units < 0 {
		return fmt.Errorf("units must not be negative, got %d: %w", units, ErrInvalidArgument)
	}
	a.units = units
	return nil
}

// IncreaseUnits adds n units to the stock.
func (a *Article) IncreaseUnits(n int) error {
	if n < 0 {
		return fmt.Errorf("units to increase must not be negative, got %d: %w", n, ErrInvalidArgument)
	}
	if n > math.MaxInt-a.units {
		return fmt.Errorf("adding %d to %d units overflows the stock count: %w", n, a.units, ErrInvalidArgument)
	}
	a.units += n
	return nil
}

// DecreaseUnits removes n units from the stock, never below zero.
func (a *Article) DecreaseUnits(n int) error {
	if n < 0 {
		return fmt.Errorf("units to decrease must not be negative, got %d: %w", n, ErrInvalidArgument)
	}
	if a.units-n < 0 {
		return fmt.Errorf("cannot remove %d of %d units: %w", n, a.units, ErrInsufficientStock)
	}
	a.units -= n
	return nil
}

// SetSecurityStock stores the advisory minimum stock level.
func (a *Article) SetSecurityStock(v int) { a.securityStock = v }

// SetMaxStock stores the advisory maximum stock level.
func (a *Article) SetMaxStock(v int) { a.maxStock = v }

// BelowSecurityStock reports whether units dropped under the advisory minimum.
func (a *Article) BelowSecurityStock() bool {
	return a.units < a.securityStock
}

// AboveMaxStock reports whether units exceed a configured advisory maximum.
func (a *Article) AboveMaxStock() bool {
	return a.maxStock > 0 && a.units > a.maxStock
}

// Equal compares articles by name and brand only.
func (a *Article) Equal(other *Article) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Key() == other.Key()
}

func (a *Article) String() string {
	return fmt.Sprintf("Article [code=%d, name=%s, brand=%s, buyingPrice=%s, sellingPrice=%s, units=%d, securityStock=%d, maxStock=%d]",
		a.code, a.name, a.brand, a.buyingPrice.String(), a.sellingPrice.String(), a.units, a.securityStock, a.maxStock)
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must not be empty: %w", field, ErrInvalidArgument)
	}
	return nil
}

func requirePrice(field string, price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%s must not be negative, got %s: %w", field, price.String(), ErrInvalidArgument)
	}
	return nil
}
