package domain

import (
	"regexp"
	"strings"
)

// Hub is a named facility in the logistics network.
// Hubs are reference data owned by the backend; the console only reads them.
type Hub struct {
	Name string
}

var (
	hubSeparators = regexp.MustCompile(`[_-]+`)
	hubCamelCase  = regexp.MustCompile(`([a-z])([A-Z])`)
	hubSpaces     = regexp.MustCompile(`\s{2,}`)
)

// FormatHubName renders a hub identifier for display.
// "north_hub" becomes "north hub" and "NorthHub" becomes "North Hub".
func FormatHubName(name string) string {
	if name == "" {
		return name
	}

	pretty := hubSeparators.ReplaceAllString(name, " ")
	pretty = hubCamelCase.ReplaceAllString(pretty, "$1 $2")
	pretty = hubSpaces.ReplaceAllString(pretty, " ")
	return strings.TrimSpace(pretty)
}
