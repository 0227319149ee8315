// Package dates formats ISO-8601 dates and datetimes as Spanish text
// localized for Argentina (UTC-3).
package dates

import (
	"fmt"
	"strings"
	"time"

	"internship-portal/pdf-export/pdf-export-backend/pkg/memo"
)

// DefaultCacheCapacity bounds the memoization cache of a Formatter.
const DefaultCacheCapacity = 128

var spanishMonths = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// argentina is the fixed civil-time offset used for datetime values.
var argentina = time.FixedZone("-03", -3*60*60)

// Format converts an ISO-8601 value into Spanish wording.
//
// Datetime input (contains "T") is converted to UTC-3 before formatting:
//
//	"2024-02-20T14:30:00Z" -> "20 de febrero de 2024 a las 11:30"
//
// Date-only input keeps its calendar date:
//
//	"2024-03-01" -> "1 de marzo de 2024"
//
// Empty input yields an empty string. Input that does not parse is
// returned unchanged; this function never fails.
func Format(iso string) string {
	if iso == "" {
		return ""
	}

	if strings.Contains(iso, "T") {
		t, err := time.Parse(time.RFC3339, iso)
		if err != nil {
			// No offset suffix: treat the timestamp as UTC.
			t, err = time.Parse("2006-01-02T15:04:05", iso)
			if err != nil {
				return iso
			}
		}
		local := t.In(argentina)
		return fmt.Sprintf("%d de %s de %d a las %02d:%02d",
			local.Day(), spanishMonths[local.Month()-1], local.Year(),
			local.Hour(), local.Minute())
	}

	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// Valid reports whether iso is empty or one of the accepted ISO-8601
// layouts (RFC 3339, offsetless datetime, or date-only). Fields validated
// with it still format through Format's fail-open path.
func Valid(iso string) bool {
	if iso == "" {
		return true
	}
	if strings.Contains(iso, "T") {
		if _, err := time.Parse(time.RFC3339, iso); err == nil {
			return true
		}
		_, err := time.Parse("2006-01-02T15:04:05", iso)
		return err == nil
	}
	_, err := time.Parse("2006-01-02", iso)
	return err == nil
}

// Formatter memoizes Format results in a bounded LRU cache. Formatting is
// pure, so cached and uncached results are identical; the cache only
// avoids re-parsing timestamps that repeat across documents.
type Formatter struct {
	cache *memo.Cache[string, string]
}

// NewFormatter creates a Formatter with the given cache capacity.
// Non-positive capacities fall back to DefaultCacheCapacity.
func NewFormatter(capacity int) *Formatter {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Formatter{cache: memo.New[string, string](capacity)}
}

// Format returns the memoized Spanish rendering of iso.
func (f *Formatter) Format(iso string) string {
	return f.cache.GetOrCompute(iso, Format)
}

// CacheStats reports the state of the memoization cache.
func (f *Formatter) CacheStats() memo.Stats {
	return f.cache.Stats()
}

// ClearCache empties the memoization cache.
func (f *Formatter) ClearCache() {
	f.cache.Clear()
}
