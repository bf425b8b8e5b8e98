package utils

import (
	"strings"

	"github.com/piresc/groomer/internal/pkg/models"
)

var identifierStripper = strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "", "(", "", ")", "", "-", "")

// Classification is the result of classifying one raw input
type Classification struct {
	Identifier models.Identifier
	// Country is the selected country after classification; it differs from
	// the input country when a "+" number revealed another dial code.
	Country        models.Country
	CountryChanged bool
}

// ClassifyIdentifier is a pure function of the raw input and the selected
// country. Email wins over phone when the input contains "@".
func ClassifyIdentifier(raw string, country models.Country) Classification {
	result := Classification{
		Identifier: models.Identifier{RawValue: raw, Kind: models.IdentifierUnknown},
		Country:    country,
	}

	clean := identifierStripper.Replace(raw)
	if clean == "" {
		return result
	}

	if strings.Contains(clean, "@") {
		result.Identifier.Kind = models.IdentifierEmail
		result.Identifier.NormalizedValue = clean
		return result
	}

	if strings.HasPrefix(clean, "+") {
		result.Identifier.Kind = models.IdentifierPhone
		result.Identifier.NormalizedValue = clean
		if detected, ok := DetectCountry(clean, country); ok && detected.Code != country.Code {
			result.Country = detected
			result.CountryChanged = true
		}
		return result
	}

	if IsDigits(clean) {
		result.Identifier.Kind = models.IdentifierPhone
		result.Identifier.NormalizedValue = country.DialCode + clean
		return result
	}

	return result
}

// IdentifierTracker memoises the last classification so callers only act
// when (kind, normalized value) changes.
type IdentifierTracker struct {
	country models.Country
	raw     string
	last    models.Identifier
	seen    bool
}

// NewIdentifierTracker starts tracking with the given selected country
func NewIdentifierTracker(country models.Country) *IdentifierTracker {
	return &IdentifierTracker{country: country}
}

// Country returns the currently selected country
func (t *IdentifierTracker) Country() models.Country {
	return t.country
}

// Current returns the last classified identifier
func (t *IdentifierTracker) Current() models.Identifier {
	return t.last
}

// Update re-classifies on a keystroke
func (t *IdentifierTracker) Update(raw string) (models.Identifier, bool) {
	t.raw = raw
	return t.classify()
}

// SetCountry re-classifies after the user picks another country
func (t *IdentifierTracker) SetCountry(country models.Country) (models.Identifier, bool) {
	t.country = country
	return t.classify()
}

func (t *IdentifierTracker) classify() (models.Identifier, bool) {
	c := ClassifyIdentifier(t.raw, t.country)
	t.country = c.Country

	changed := !t.seen ||
		c.Identifier.Kind != t.last.Kind ||
		c.Identifier.NormalizedValue != t.last.NormalizedValue
	t.seen = true
	t.last = c.Identifier
	return c.Identifier, changed
}

// LoginRequestFor splits an identifier into the email or phone login field.
// Emails are lowercased for network use.
func LoginRequestFor(id models.Identifier, password string) models.LoginRequest {
	req := models.LoginRequest{Password: password}
	switch id.Kind {
	case models.IdentifierEmail:
		req.Email = strings.ToLower(id.NormalizedValue)
	default:
		req.Phone = id.NormalizedValue
	}
	return req
}
