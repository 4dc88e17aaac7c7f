package normalization

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	compactDatePattern = regexp.MustCompile(`\b[0-9]{8}\b`)
	frenchDatePattern  = regexp.MustCompile(`(?i)\b(1er|[0-9]{1,2})\s+(janvier|février|fevrier|mars|avril|mai|juin|juillet|août|aout|septembre|octobre|novembre|décembre|decembre)\s+([0-9]{4})\b`)
	frenchMonthNumbers = map[string]time.Month{
		"janvier":   time.January,
		"février":   time.February,
		"fevrier":   time.February,
		"mars":      time.March,
		"avril":     time.April,
		"mai":       time.May,
		"juin":      time.June,
		"juillet":   time.July,
		"août":      time.August,
		"aout":      time.August,
		"septembre": time.September,
		"octobre":   time.October,
		"novembre":  time.November,
		"décembre":  time.December,
		"decembre":  time.December,
	}
)

// NormalizeDatesToISO8601 rewrites every recognized date in the
// decision text to ISO-8601 date form (YYYY-MM-DD). Two source formats
// are recognized: compact YYYYMMDD tokens and French long-form dates
// ("21 novembre 2022", "1er mars 2023"). Tokens that look like dates
// but do not resolve to a valid calendar date are left untouched with
// a warning; one malformed date never blocks the rest of the batch.
func NormalizeDatesToISO8601(logger *slog.Logger, text string) string {
	text = compactDatePattern.ReplaceAllStringFunc(text, func(token string) string {
		t, err := time.Parse("20060102", token)
		if err != nil {
			logger.Warn("unrecognized date token left unchanged", "token", token)
			return token
		}
		return t.Format("2006-01-02")
	})

	text = frenchDatePattern.ReplaceAllStringFunc(text, func(token string) string {
		iso, ok := parseFrenchDate(token)
		if !ok {
			logger.Warn("unrecognized date token left unchanged", "token", token)
			return token
		}
		return iso
	})

	return text
}

func parseFrenchDate(token string) (string, bool) {
	parts := frenchDatePattern.FindStringSubmatch(token)
	if parts == nil {
		return "", false
	}

	dayPart := strings.ToLower(parts[1])
	if dayPart == "1er" {
		dayPart = "1"
	}
	day, err := strconv.Atoi(dayPart)
	if err != nil {
		return "", false
	}

	month, ok := frenchMonthNumbers[strings.ToLower(parts[2])]
	if !ok {
		return "", false
	}

	year, err := strconv.Atoi(parts[3])
	if err != nil {
		return "", false
	}

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != month {
		return "", false
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day), true
}
