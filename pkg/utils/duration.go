package utils

import (
	"fmt"
	"strings"
)

// FormatTripDuration renders nights and days the way product listings show them, e.g. "2박3일".
func FormatTripDuration(nights, days string) string {
	return fmt.Sprintf("%s박%s일", strings.TrimSpace(nights), strings.TrimSpace(days))
}
