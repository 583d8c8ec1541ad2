// Package commission classifies vendors into tiers and computes the
// commission owed on a sale.
package commission

import (
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/shopspring/decimal"
)

// Inclusive lower bounds of each tier.
var (
	DiamondThreshold = money.FromUnits(100000, 0)
	GoldThreshold    = money.FromUnits(50000, 0)
	SilverThreshold  = money.FromUnits(25000, 0)
)

// ClassifyTier maps cumulative sales to a tier.
func ClassifyTier(cumulative money.Cents) enum.Tier {
	switch {
	case cumulative >= DiamondThreshold:
		return enum.TierDiamond
	case cumulative >= GoldThreshold:
		return enum.TierGold
	case cumulative >= SilverThreshold:
		return enum.TierSilver
	default:
		return enum.TierBronze
	}
}

// Threshold returns the amount at which tier starts.
func Threshold(tier enum.Tier) money.Cents {
	switch tier {
	case enum.TierDiamond:
		return DiamondThreshold
	case enum.TierGold:
		return GoldThreshold
	case enum.TierSilver:
		return SilverThreshold
	default:
		return 0
	}
}

// Progress describes where a vendor stands relative to the next tier.
type Progress struct {
	Current     enum.Tier   `json:"current"`
	Next        *enum.Tier  `json:"next,omitempty"`
	Cumulative  money.Cents `json:"cumulative"`
	NextAt      money.Cents `json:"next_at,omitempty"`
	Missing     money.Cents `json:"missing"`
	PercentDone float64     `json:"percent_done"`
}

// NextTier reports the next tier above cumulative and how much is missing.
// A diamond vendor has no next tier and 100 percent progress.
func NextTier(cumulative money.Cents) Progress {
	current := ClassifyTier(cumulative)
	p := Progress{Current: current, Cumulative: cumulative, PercentDone: 100}

	var next enum.Tier
	switch current {
	case enum.TierBronze:
		next = enum.TierSilver
	case enum.TierSilver:
		next = enum.TierGold
	case enum.TierGold:
		next = enum.TierDiamond
	default:
		return p
	}

	floor, ceil := Threshold(current), Threshold(next)
	p.Next = &next
	p.NextAt = ceil
	p.Missing = ceil - cumulative
	done := decimal.NewFromInt(int64(cumulative - floor)).
		Div(decimal.NewFromInt(int64(ceil - floor))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	// cancellations can push the cumulative total below zero
	p.PercentDone = decimal.Max(done, decimal.Zero).InexactFloat64()
	return p
}

// CommissionFor returns ratePercent% of amount, rounded to the centavo.
func CommissionFor(amount money.Cents, ratePercent decimal.Decimal) money.Cents {
	return amount.Percent(ratePercent)
}
