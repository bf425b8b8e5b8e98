package utils

import (
	"strings"

	"github.com/piresc/groomer/internal/pkg/models"
)

// DefaultCountryCode is the primary market of the app
const DefaultCountryCode = "IN"

// Countries lists the selectable dial codes. India is first; for shared
// dial codes the earlier entry wins when detecting from a number.
var Countries = []models.Country{
	{Code: "IN", DialCode: "+91", DisplayName: "India", Flag: "🇮🇳"},
	{Code: "US", DialCode: "+1", DisplayName: "United States", Flag: "🇺🇸"},
	{Code: "GB", DialCode: "+44", DisplayName: "United Kingdom", Flag: "🇬🇧"},
	{Code: "CA", DialCode: "+1", DisplayName: "Canada", Flag: "🇨🇦"},
	{Code: "AU", DialCode: "+61", DisplayName: "Australia", Flag: "🇦🇺"},
	{Code: "DE", DialCode: "+49", DisplayName: "Germany", Flag: "🇩🇪"},
	{Code: "AE", DialCode: "+971", DisplayName: "United Arab Emirates", Flag: "🇦🇪"},
	{Code: "SG", DialCode: "+65", DisplayName: "Singapore", Flag: "🇸🇬"},
	{Code: "LK", DialCode: "+94", DisplayName: "Sri Lanka", Flag: "🇱🇰"},
	{Code: "NP", DialCode: "+977", DisplayName: "Nepal", Flag: "🇳🇵"},
	{Code: "BD", DialCode: "+880", DisplayName: "Bangladesh", Flag: "🇧🇩"},
	{Code: "ID", DialCode: "+62", DisplayName: "Indonesia", Flag: "🇮🇩"},
	{Code: "FR", DialCode: "+33", DisplayName: "France", Flag: "🇫🇷"},
	{Code: "AS", DialCode: "+1684", DisplayName: "American Samoa", Flag: "🇦🇸"},
	{Code: "BS", DialCode: "+1242", DisplayName: "Bahamas", Flag: "🇧🇸"},
}

// DefaultCountry returns India
func DefaultCountry() models.Country {
	return Countries[0]
}

// CountryByCode looks a country up by its ISO alpha-2 code
func CountryByCode(code string) (models.Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return models.Country{}, false
}

// DetectCountry finds the country whose dial code is the longest prefix of
// phone. When current shares the winning dial code it is kept, so a user who
// picked Canada is not switched to the United States by "+1...".
func DetectCountry(phone string, current models.Country) (models.Country, bool) {
	var best models.Country
	found := false
	for _, c := range Countries {
		if !strings.HasPrefix(phone, c.DialCode) {
			continue
		}
		if !found || len(c.DialCode) > len(best.DialCode) {
			best = c
			found = true
		}
	}
	if !found {
		return models.Country{}, false
	}
	if current.DialCode == best.DialCode {
		return current, true
	}
	return best, true
}
