package trend

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllRegions is the filter value selecting every region
const AllRegions = "all"

// regionOverrides maps underscore identifiers that title-casing cannot recover
var regionOverrides = map[string]string{
	"middle_east":       "Middle East",
	"eastern_europe":    "Eastern Europe",
	"southeast_asia":    "Southeast Asia",
	"australia_oceania": "Australia & Oceania",
}

// IsAll reports whether a filter value selects every region or season
func IsAll(value string) bool {
	return value == "" || strings.EqualFold(value, AllRegions)
}

// NormalizeRegion maps a caller-supplied region identifier to its display name
func NormalizeRegion(raw string) string {
	raw = strings.TrimSpace(raw)
	if name, ok := regionOverrides[strings.ToLower(raw)]; ok {
		return name
	}
	return titleCase(strings.ReplaceAll(raw, "_", " "))
}

// NormalizeSeason maps a caller-supplied season name to its display name
func NormalizeSeason(raw string) string {
	return titleCase(strings.TrimSpace(raw))
}

func titleCase(s string) string {
	// cases.Caser is stateful, so build one per call
	return cases.Title(language.Und).String(s)
}
