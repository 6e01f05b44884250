package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendeeCategory selects which price column applies to an attendee.
type AttendeeCategory string

const (
	CategoryRegular AttendeeCategory = "regular"
	CategorySpecial AttendeeCategory = "special"
)

// PriceTier names the selected price column. Tiers are a stable enumerated
// set so presentation layers can localize them.
type PriceTier string

const (
	TierRegular      PriceTier = "regular"
	TierRegularEarly PriceTier = "regular_early"
	TierRegularBoard PriceTier = "regular_board"
	TierSpecial      PriceTier = "special"
	TierSpecialEarly PriceTier = "special_early"
	TierSpecialBoard PriceTier = "special_board"
	TierOnRequest    PriceTier = "on_request"
)

// PriceQuote is the result of price derivation for one tier. IsFree is set
// for zero amounts so formatting layers can render "for free" without
// re-deriving it; OnRequest overrides everything else.
type PriceQuote struct {
	Tier      PriceTier       `json:"tier"`
	Amount    decimal.Decimal `json:"amount"`
	OnRequest bool            `json:"on_request"`
	IsFree    bool            `json:"is_free"`
}

func newQuote(tier PriceTier, price decimal.NullDecimal) PriceQuote {
	amount := decimal.Decimal{}
	if price.Valid {
		amount = price.Decimal
	}
	return PriceQuote{Tier: tier, Amount: amount, IsFree: amount.IsZero()}
}

// CurrentPrice derives the price for the given attendee category at the
// given instant. Events priced on request quote OnRequest regardless of the
// configured amounts. Early-bird prices apply up to and including the
// early-bird deadline, and only when the early price is actually set;
// otherwise the late price applies. An event with no price configured for
// the selected tier quotes a free (zero) amount.
func CurrentPrice(e *Event, now time.Time, category AttendeeCategory) PriceQuote {
	c := e.Content()
	if c.PriceOnRequest {
		return PriceQuote{Tier: TierOnRequest, OnRequest: true}
	}
	early := e.EarlyBirdApplies(now)
	if category == CategorySpecial {
		if early && c.PriceSpecialEarly.Valid {
			return newQuote(TierSpecialEarly, c.PriceSpecialEarly)
		}
		return newQuote(TierSpecial, c.PriceSpecial)
	}
	if early && c.PriceRegularEarly.Valid {
		return newQuote(TierRegularEarly, c.PriceRegularEarly)
	}
	return newQuote(TierRegular, c.PriceRegular)
}

// AvailableTiers lists the selectable price tiers at the given instant: per
// category the early price when early bird applies and it is set, otherwise
// the late price when set; plus the board prices as additional tiers
// whenever they are set. Unset prices are never offered; explicit zero
// prices are offered and flagged free. Events priced on request offer a
// single OnRequest entry.
func AvailableTiers(e *Event, now time.Time) []PriceQuote {
	c := e.Content()
	if c.PriceOnRequest {
		return []PriceQuote{{Tier: TierOnRequest, OnRequest: true}}
	}
	early := e.EarlyBirdApplies(now)

	var tiers []PriceQuote
	if early && c.PriceRegularEarly.Valid {
		tiers = append(tiers, newQuote(TierRegularEarly, c.PriceRegularEarly))
	} else if c.PriceRegular.Valid {
		tiers = append(tiers, newQuote(TierRegular, c.PriceRegular))
	}
	if early && c.PriceSpecialEarly.Valid {
		tiers = append(tiers, newQuote(TierSpecialEarly, c.PriceSpecialEarly))
	} else if c.PriceSpecial.Valid {
		tiers = append(tiers, newQuote(TierSpecial, c.PriceSpecial))
	}
	if c.PriceRegularBoard.Valid {
		tiers = append(tiers, newQuote(TierRegularBoard, c.PriceRegularBoard))
	}
	if c.PriceSpecialBoard.Valid {
		tiers = append(tiers, newQuote(TierSpecialBoard, c.PriceSpecialBoard))
	}
	return tiers
}

// HasAnyPrice reports whether at least one price tier is configured at the
// given instant: a regular or special price, an applicable early-bird price,
// or a board price.
func HasAnyPrice(e *Event, now time.Time) bool {
	c := e.Content()
	if c.PriceRegular.Valid || c.PriceSpecial.Valid {
		return true
	}
	if e.EarlyBirdApplies(now) && (c.PriceRegularEarly.Valid || c.PriceSpecialEarly.Valid) {
		return true
	}
	return c.PriceRegularBoard.Valid || c.PriceSpecialBoard.Valid
}
