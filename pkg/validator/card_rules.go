package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	cvvRegex        = regexp.MustCompile(`^\d{3}$`)
	holderNameRegex = regexp.MustCompile(`[^a-zA-Z\s]`)
)

// Card holds the payment card details validated together by ValidateCard.
type Card struct {
	Number         string    `json:"number"`
	ExpirationDate time.Time `json:"expirationDate"`
	CVV            string    `json:"cvv"`
	CardHolderName string    `json:"cardHolderName"`
}

// CardConfig configures ValidateCard. Cards carry only the shared options.
type CardConfig struct {
	Common `yaml:",inline"`
}

func (c CardConfig) clone() CardConfig {
	c.Common = c.Common.clone()
	return c
}

// ValidateCard checks the number checksum, expiry, CVV and holder name.
func ValidateCard(card Card, cfg CardConfig) (Result, error) {
	return validateCard(card, cfg, time.Now())
}

func validateCard(card Card, cfg CardConfig, now time.Time) (Result, error) {
	return Apply(cfg.options(DomainCard), cardRules(card, now)...)
}

func cardRules(card Card, now time.Time) []Rule {
	return []Rule{
		{
			Key:     "number",
			Check:   func() bool { return LuhnValid(card.Number) },
			Message: "Invalid card number.",
		},
		{
			Key:     "expirationDate",
			Check:   func() bool { return !card.ExpirationDate.IsZero() && !card.ExpirationDate.Before(now) },
			Message: "Invalid expiration date.",
		},
		{
			Key:     "cvv",
			Check:   func() bool { return cvvRegex.MatchString(card.CVV) },
			Message: "Invalid CVV.",
		},
		{
			Key: "cardHolderName",
			Check: func() bool {
				return utf8.RuneCountInString(strings.TrimSpace(card.CardHolderName)) >= 3 &&
					!holderNameRegex.MatchString(card.CardHolderName)
			},
			Message: "Invalid cardholder name.",
		},
	}
}
