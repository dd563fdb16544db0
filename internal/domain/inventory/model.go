package inventory

import (
	"time"

	"github.com/hms/hms/pkg/dates"
	"github.com/hms/hms/pkg/numeric"
)

type Medicine struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	Stock        numeric.Int   `json:"stock"`
	MinThreshold numeric.Int   `json:"min_threshold"`
	Price        numeric.Float `json:"price"`
	ExpiryDate   string        `json:"expiry_date"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Stock tiers, highest severity first. Exactly one holds for any
// stock/threshold pair.
const (
	TierOutOfStock = "Out of Stock"
	TierLowStock   = "Low Stock"
	TierInStock    = "In Stock"
)

// StockStatus classifies stock against the reorder threshold. Derived on
// every call; never persisted.
func StockStatus(stock, threshold int) string {
	switch {
	case stock == 0:
		return TierOutOfStock
	case stock <= threshold:
		return TierLowStock
	default:
		return TierInStock
	}
}

// ExpiringSoon reports whether the expiry date falls within 30 days of now.
// Orthogonal to the stock tier; a missing or unparseable expiry date is
// never flagged.
func ExpiringSoon(expiry string, now time.Time) bool {
	t, ok := dates.Parse(expiry)
	if !ok {
		return false
	}
	return !t.After(now.AddDate(0, 0, 30))
}

func (m *Medicine) StockStatus() string {
	return StockStatus(int(m.Stock), int(m.MinThreshold))
}

func (m *Medicine) LowOrOut() bool {
	return int(m.Stock) <= int(m.MinThreshold)
}
