package utils

import (
	"regexp"
	"strings"
)

// AddressParts are the structured postal components stored on a location.
// Empty strings mean "unknown".
type AddressParts struct {
	Street              string
	HouseNumber         string
	HouseNumberAddition string
	Postcode            string
	City                string
}

// FormatAddress composes "STREET NUMBERADDITION, POSTCODE CITY", dropping
// whichever parts are absent. Returns "" only when every part is absent.
func FormatAddress(p AddressParts) string {
	var streetLine string
	if p.Street != "" && p.HouseNumber != "" {
		streetLine = p.Street + " " + p.HouseNumber + p.HouseNumberAddition
	} else if p.Street != "" {
		streetLine = p.Street
	} else if p.HouseNumber != "" {
		streetLine = p.HouseNumber + p.HouseNumberAddition
	}

	cityLine := strings.TrimSpace(strings.Join(nonEmpty(p.Postcode, p.City), " "))

	parts := nonEmpty(streetLine, cityLine)
	return strings.Join(parts, ", ")
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

var addressPattern = regexp.MustCompile(`^(.+?)\s+(\d+)([A-Za-z0-9\-/]*)?,\s*([0-9]{4}\s?[A-Z]{2})\s+(.+)$`)

// ParseAddress extracts the components from a formatted Dutch address such
// as "Marcusstraat 52, 1091 TK Amsterdam". Seed/import use only. A string
// that does not match the pattern yields the zero value, not an error;
// callers treat that as "fields unknown".
func ParseAddress(address string) AddressParts {
	match := addressPattern.FindStringSubmatch(strings.TrimSpace(address))
	if match == nil {
		return AddressParts{}
	}
	return AddressParts{
		Street:              match[1],
		HouseNumber:         match[2],
		HouseNumberAddition: match[3],
		Postcode:            NormalizePostcode(match[4]),
		City:                match[5],
	}
}

// NormalizePostcode strips whitespace and uppercases, "1091 tk" -> "1091TK".
func NormalizePostcode(value string) string {
	return strings.ToUpper(strings.Join(strings.Fields(value), ""))
}
