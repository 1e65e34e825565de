package reporting

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

// Summary aggregates stock figures over a set of articles.
type Summary struct {
	Articles           int
	TotalUnits         int
	CostValue          decimal.Decimal
	RetailValue        decimal.Decimal
	PotentialMargin    decimal.Decimal
	BelowSecurityStock []*models.Article
	AboveMaxStock      []*models.Article
}

// Service exposes lightweight stock analytics for the console.
type Service struct {
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Summarize values the stock at buying and selling price and collects the
// articles outside their advisory thresholds.
func (s *Service) Summarize(articles []*models.Article) Summary {
	summary := Summary{
		CostValue:   decimal.Zero,
		RetailValue: decimal.Zero,
	}

	for _, a := range articles {
		units := decimal.NewFromInt(int64(a.Units()))

		summary.Articles++
		summary.TotalUnits += a.Units()
		summary.CostValue = summary.CostValue.Add(a.BuyingPrice().Mul(units))
		summary.RetailValue = summary.RetailValue.Add(a.SellingPrice().Mul(units))

		if a.BelowSecurityStock() {
			summary.BelowSecurityStock = append(summary.BelowSecurityStock, a)
		}
		if a.AboveMaxStock() {
			summary.AboveMaxStock = append(summary.AboveMaxStock, a)
		}
	}
	summary.PotentialMargin = summary.RetailValue.Sub(summary.CostValue)

	s.logger.Debug("stock summary computed",
		zap.Int("articles", summary.Articles),
		zap.Int("units", summary.TotalUnits),
		zap.Int("below_security_stock", len(summary.BelowSecurityStock)))
	return summary
}

// Format renders the summary as console text.
func Format(summary Summary) string {
	if summary.Articles == 0 {
		return "Stock summary: warehouse is empty."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Stock summary: %d articles, %d units.\n", summary.Articles, summary.TotalUnits)
	fmt.Fprintf(&b, "Value at cost %s, at retail %s, potential margin %s.",
		summary.CostValue.StringFixed(2), summary.RetailValue.StringFixed(2), summary.PotentialMargin.StringFixed(2))

	if len(summary.BelowSecurityStock) > 0 {
		b.WriteString("\nBelow security stock:")
		for _, a := range summary.BelowSecurityStock {
			fmt.Fprintf(&b, "\n  [%d] %s (%s): %d of %d", a.Code(), a.Name(), a.Brand(), a.Units(), a.SecurityStock())
		}
	}
	if len(summary.AboveMaxStock) > 0 {
		b.WriteString("\nAbove max stock:")
		for _, a := range summary.AboveMaxStock {
			fmt.Fprintf(&b, "\n  [%d] %s (%s): %d of %d", a.Code(), a.Name(), a.Brand(), a.Units(), a.MaxStock())
		}
	}
	return b.String()
}
