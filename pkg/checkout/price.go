package checkout

import (
	"math"
	"strconv"
	"strings"
)

// ServiceFeeRate is the fraction of the subtotal charged as a service fee.
const ServiceFeeRate = 0.10

// ParsePrice extracts a numeric amount from a display price such as
// "NPR 1,500" or "$25.50". Every character outside [0-9.] is discarded
// before parsing; a string with no digits yields zero.
func ParsePrice(display string) float64 {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	amount, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return amount
}

// Quote is an itemized cost breakdown, each amount rounded to two decimal
// places.
type Quote struct {
	Subtotal   float64 `json:"subtotal"    yaml:"subtotal"`
	ServiceFee float64 `json:"service_fee" yaml:"service_fee"`
	Total      float64 `json:"total"       yaml:"total"`
}

// NewQuote prices a quantity of tickets at the given unit price.
func NewQuote(unitPrice float64, quantity int) Quote {
	subtotal := unitPrice * float64(quantity)
	fee := subtotal * ServiceFeeRate
	return Quote{
		Subtotal:   round2(subtotal),
		ServiceFee: round2(fee),
		Total:      round2(subtotal + fee),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
