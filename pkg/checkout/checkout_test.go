package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/checkout"
	"github.com/eventtix/eventtix/pkg/errors"
)

func testEvent() catalogue.Event {
	return catalogue.Event{
		ID:     3,
		Artist: "Kutumba",
		Tickets: []catalogue.TicketTier{
			{Type: "General", Price: "NPR 1500", Remaining: 120},
			{Type: "VIP", Price: "NPR 3,000", Remaining: 40},
			{Type: "Platinum", Price: "NPR 5000.50", Remaining: 8},
		},
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		display string
		want    float64
	}{
		{"NPR 1500", 1500},
		{"NPR 1,500", 1500},
		{"$25.50", 25.50},
		{"Rs. 800", 800},
		{"free", 0},
		{"", 0},
	}

	for _, tc := range tests {
		t.Run(tc.display, func(t *testing.T) {
			assert.Equal(t, tc.want, checkout.ParsePrice(tc.display))
		})
	}
}

func TestQuoteAppliesServiceFee(t *testing.T) {
	quote := checkout.NewQuote(1500, 2)

	assert.Equal(t, 3000.00, quote.Subtotal)
	assert.Equal(t, 300.00, quote.ServiceFee)
	assert.Equal(t, 3300.00, quote.Total)
}

func TestQuoteRoundsToTwoDecimals(t *testing.T) {
	quote := checkout.NewQuote(33.33, 3)

	assert.Equal(t, 99.99, quote.Subtotal)
	assert.Equal(t, 10.00, quote.ServiceFee)
	assert.Equal(t, 109.99, quote.Total)
}

func TestPurchaseDefaultsToFirstTier(t *testing.T) {
	p := checkout.NewPurchase(testEvent())

	tier, ok := p.Tier()
	require.True(t, ok)
	assert.Equal(t, "General", tier.Type)
	assert.Equal(t, 1, p.Quantity())
}

func TestSelectTier(t *testing.T) {
	p := checkout.NewPurchase(testEvent())

	require.NoError(t, p.SelectTier("Platinum"))
	tier, _ := p.Tier()
	assert.Equal(t, "NPR 5000.50", tier.Price)

	err := p.SelectTier("backstage")
	assert.True(t, errors.IsValidationError(err))
}

func TestQuantityClamping(t *testing.T) {
	p := checkout.NewPurchase(testEvent())

	p.Decrement()
	assert.Equal(t, 1, p.Quantity())

	p.SetQuantity(25)
	assert.Equal(t, 10, p.Quantity())

	p.Increment()
	assert.Equal(t, 10, p.Quantity())

	p.SetQuantity(-3)
	assert.Equal(t, 1, p.Quantity())
}

func TestConfirmProducesIntent(t *testing.T) {
	p := checkout.NewPurchase(testEvent())
	p.SetQuantity(2)

	intent, err := p.Confirm()
	require.NoError(t, err)
	assert.NotEmpty(t, intent.Reference)
	assert.Equal(t, int64(3), intent.EventID)
	assert.Equal(t, "General", intent.TierType)
	assert.Equal(t, 2, intent.Quantity)
	assert.Equal(t, 3300.00, intent.Quote.Total)

	second, err := p.Confirm()
	require.NoError(t, err)
	assert.NotEqual(t, intent.Reference, second.Reference)
}

func TestConfirmWithoutTiers(t *testing.T) {
	p := checkout.NewPurchase(catalogue.Event{ID: 9, Artist: "No Tiers"})

	assert.Equal(t, checkout.Quote{}, p.Quote())
	_, err := p.Confirm()
	assert.ErrorIs(t, err, errors.ErrNoTierSelected)
}
