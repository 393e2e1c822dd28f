package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() Card {
	return Card{
		Number:         "4532015112830366",
		ExpirationDate: fixedNow.AddDate(1, 0, 0),
		CVV:            "123",
		CardHolderName: "John Smith",
	}
}

func TestValidateCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		patch func(*Card)
		rules []string
	}{
		{name: "valid"},
		{name: "spaced number", patch: func(c *Card) { c.Number = "4532 0151 1283 0366" }},
		{name: "bad checksum", patch: func(c *Card) { c.Number = "4532015112830367" }, rules: []string{"number"}},
		{name: "expired", patch: func(c *Card) { c.ExpirationDate = fixedNow.AddDate(0, -1, 0) }, rules: []string{"expirationDate"}},
		{name: "expires now", patch: func(c *Card) { c.ExpirationDate = fixedNow }},
		{name: "four digit cvv", patch: func(c *Card) { c.CVV = "1234" }, rules: []string{"cvv"}},
		{name: "short holder", patch: func(c *Card) { c.CardHolderName = " Al " }, rules: []string{"cardHolderName"}},
		{name: "holder with digits", patch: func(c *Card) { c.CardHolderName = "John Smith 2" }, rules: []string{"cardHolderName"}},
		{
			name: "everything wrong",
			patch: func(c *Card) {
				*c = Card{Number: "1234", CVV: "12", CardHolderName: "J1"}
			},
			rules: []string{"number", "expirationDate", "cvv", "cardHolderName"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			if tt.patch != nil {
				tt.patch(&card)
			}

			res, err := validateCard(card, CardConfig{Common: Common{Safe: true}}, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, len(tt.rules) == 0, res.Valid, "report: %v", res.Errors)
			if len(tt.rules) > 0 {
				assert.Equal(t, tt.rules, res.Errors.Rules())
			}
		})
	}
}

func TestValidateCard_Raises(t *testing.T) {
	t.Parallel()

	card := validCard()
	card.CVV = "1"

	cfg := DefaultCardConfig()
	cfg.ThrowErrorsAs = ThrowFirst

	_, err := validateCard(card, cfg, fixedNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCardValidationFailed)
	assert.Equal(t, "Invalid CVV.", err.Error())
}
