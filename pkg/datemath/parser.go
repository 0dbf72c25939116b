package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts natural-language date and time expressions to absolute
// calendar values, resolving relative phrases against a reference time.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date/time parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Named day periods and their default clock times.
var dayPeriods = map[string]int{
	"morning":   9,
	"afternoon": 14,
	"evening":   18,
	"night":     18,
	"noon":      12,
	"midday":    12,
}

var (
	isoDateRe = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	// "June 12", "June 12th, 2025"
	monthDayRe = regexp.MustCompile(`\b([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s*(\d{4}))?\b`)
	// "12th June 2025", "12 of June"
	dayMonthRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?([a-z]+)(?:,?\s*(\d{4}))?\b`)
	// "in 3 days", "after 2 weeks", "3 days from today"
	inDurationRe   = regexp.MustCompile(`\b(?:in|after)\s+(\d+)\s+(day|days|week|weeks|month|months)\b`)
	fromNowRe      = regexp.MustCompile(`\b(\d+)\s+(day|days|week|weeks|month|months)\s+from\s+(?:now|today)\b`)
	nextWeekdayRe  = regexp.MustCompile(`\bnext\s+([a-z]+)\b`)
	thisWeekdayRe  = regexp.MustCompile(`\bthis\s+([a-z]+)\b`)
	clockRe        = regexp.MustCompile(`\b(\d{1,2})[:.](\d{2})\s*(am|pm|a\.m\.|p\.m\.)?`)
	hourMeridiemRe = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm|a\.m\.|p\.m\.)`)
	oclockRe       = regexp.MustCompile(`\b(\d{1,2})\s*o'?\s?clock\b`)
	bareHourRe     = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// Normalize resolves a date expression and/or a time expression against the
// reference time. Either expression may be empty. It returns ErrUnresolvable
// only when neither expression yields an interpretable value.
func (p *Parser) Normalize(dateExpr, timeExpr string, now time.Time) (Resolved, error) {
	var r Resolved

	if strings.TrimSpace(dateExpr) != "" {
		if d, err := p.ParseDate(dateExpr, now); err == nil {
			r.Date = d
			r.HasDate = true
		}
	}

	if strings.TrimSpace(timeExpr) != "" {
		if h, m, err := p.ParseTime(timeExpr); err == nil {
			r.Hour = h
			r.Minute = m
			r.HasTime = true
		}
	}

	if !r.HasDate && !r.HasTime {
		return Resolved{}, ErrUnresolvable
	}
	return r, nil
}

// ParseDate resolves a date expression to midnight of the target day in the
// parser's timezone. Relative phrases resolve against now's calendar date.
func (p *Parser) ParseDate(expr string, now time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	now = now.In(p.location)

	// Canonical form round-trips unchanged.
	if t, err := time.ParseInLocation(DateFormat, expr, p.location); err == nil {
		return t, nil
	}
	if m := isoDateRe.FindStringSubmatch(expr); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), nil
		}
	}

	switch {
	case strings.Contains(expr, "tomorrow"):
		return p.startOfDay(now.AddDate(0, 0, 1)), nil
	case strings.Contains(expr, "today"):
		return p.startOfDay(now), nil
	case strings.Contains(expr, "yesterday"):
		return p.startOfDay(now.AddDate(0, 0, -1)), nil
	}

	// "next monday" resolves strictly after today, never today itself.
	if m := nextWeekdayRe.FindStringSubmatch(expr); m != nil {
		if wd, ok := weekdays[m[1]]; ok {
			delta := (int(wd) - int(now.Weekday()) + 7) % 7
			if delta == 0 {
				delta = 7
			}
			return p.startOfDay(now.AddDate(0, 0, delta)), nil
		}
		if m[1] == "week" {
			return p.startOfDay(now.AddDate(0, 0, 7)), nil
		}
		if m[1] == "month" {
			return time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, p.location), nil
		}
	}

	// "this friday" is this week's occurrence, which may be today.
	if m := thisWeekdayRe.FindStringSubmatch(expr); m != nil {
		if wd, ok := weekdays[m[1]]; ok {
			delta := (int(wd) - int(now.Weekday()) + 7) % 7
			return p.startOfDay(now.AddDate(0, 0, delta)), nil
		}
	}

	// A bare weekday means the upcoming occurrence, which may be today.
	for name, wd := range weekdays {
		if regexp.MustCompile(`\b` + name + `\b`).MatchString(expr) {
			delta := (int(wd) - int(now.Weekday()) + 7) % 7
			return p.startOfDay(now.AddDate(0, 0, delta)), nil
		}
	}

	if m := inDurationRe.FindStringSubmatch(expr); m != nil {
		return p.addDuration(now, m[1], m[2])
	}
	if m := fromNowRe.FindStringSubmatch(expr); m != nil {
		return p.addDuration(now, m[1], m[2])
	}

	if strings.Contains(expr, "end of month") {
		firstOfNext := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, p.location)
		return firstOfNext.AddDate(0, 0, -1), nil
	}
	if strings.Contains(expr, "beginning of month") || strings.Contains(expr, "start of month") {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, p.location), nil
	}

	// "june 12", "12th of june", with or without an explicit year.
	if d, ok := p.parseWrittenDate(expr, now); ok {
		return d, nil
	}

	return time.Time{}, ErrUnresolvable
}

// parseWrittenDate handles month-name dates in both word orders. When the
// year is omitted the current year is assumed.
func (p *Parser) parseWrittenDate(expr string, now time.Time) (time.Time, bool) {
	for _, m := range monthDayRe.FindAllStringSubmatch(expr, -1) {
		if month, ok := months[m[1]]; ok {
			if d, ok := p.buildDate(month, m[2], m[3], now); ok {
				return d, true
			}
		}
	}
	for _, m := range dayMonthRe.FindAllStringSubmatch(expr, -1) {
		if month, ok := months[m[2]]; ok {
			if d, ok := p.buildDate(month, m[1], m[3], now); ok {
				return d, true
			}
		}
	}
	return time.Time{}, false
}

func (p *Parser) buildDate(month time.Month, dayStr, yearStr string, now time.Time) (time.Time, bool) {
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	year := now.Year()
	if yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			return time.Time{}, false
		}
	}
	return time.Date(year, month, day, 0, 0, 0, 0, p.location), true
}

func (p *Parser) addDuration(now time.Time, amountStr, unit string) (time.Time, error) {
	amount, err := strconv.Atoi(amountStr)
	if err != nil {
		return time.Time{}, ErrUnresolvable
	}
	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(now.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(now.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(now.AddDate(0, amount, 0)), nil
	}
	return time.Time{}, ErrUnresolvable
}

// ParseTime resolves a time expression to a 24-hour clock value. An explicit
// numeric time always wins over a named period appearing in the same
// expression. Bare hours without a meridiem default to PM.
func (p *Parser) ParseTime(expr string) (hour, minute int, err error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	// Canonical "15:04" round-trips unchanged.
	if t, parseErr := time.Parse(TimeFormat, expr); parseErr == nil {
		return t.Hour(), t.Minute(), nil
	}

	if m := clockRe.FindStringSubmatch(expr); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if min <= 59 {
			if m[3] != "" {
				if h >= 1 && h <= 12 {
					return to24Hour(h, m[3]), min, nil
				}
			} else if h <= 23 {
				// 24-hour clock, or an ambiguous 12-hour value: apply the PM
				// default for small hours.
				if h >= 1 && h <= 11 {
					h += 12
				}
				return h, min, nil
			}
		}
	}

	if m := hourMeridiemRe.FindStringSubmatch(expr); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h >= 1 && h <= 12 {
			return to24Hour(h, m[2]), 0, nil
		}
	}

	if m := oclockRe.FindStringSubmatch(expr); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h >= 1 && h <= 12 {
			if h <= 11 {
				h += 12 // PM default
			}
			return h, 0, nil
		}
	}

	// Named periods resolve only after every numeric form has failed.
	for period, h := range dayPeriods {
		if strings.Contains(expr, period) {
			return h, 0, nil
		}
	}

	// A lone small number defaults to PM ("3" means 15:00).
	if m := bareHourRe.FindStringSubmatch(expr); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h >= 1 && h <= 12 {
			if h <= 11 {
				h += 12
			}
			return h, 0, nil
		}
	}

	return 0, 0, ErrUnresolvable
}

func to24Hour(hour int, meridiem string) int {
	if strings.HasPrefix(meridiem, "p") && hour < 12 {
		return hour + 12
	}
	if strings.HasPrefix(meridiem, "a") && hour == 12 {
		return 0
	}
	return hour
}

// startOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
