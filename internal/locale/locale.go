// Package locale formats the weekday and month labels shown by the grids.
package locale

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// DefaultTag is used when no locale is configured
const DefaultTag = "en-US"

var ErrUnsupportedLocale = errors.New("unsupported locale")

// Service formats labels for BCP-47 tags. It is safe for concurrent use.
type Service struct {
	locales []monday.Locale
	matcher language.Matcher
}

// NewService builds a Service over every locale monday ships
func NewService() *Service {
	locales := monday.ListLocales()
	tags := make([]language.Tag, 0, len(locales))
	kept := make([]monday.Locale, 0, len(locales))
	for _, l := range locales {
		tag, err := language.Parse(strings.ReplaceAll(string(l), "_", "-"))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		kept = append(kept, l)
	}
	return &Service{locales: kept, matcher: language.NewMatcher(tags)}
}

// Resolve maps a tag such as "de" or "en-GB" to the closest supported locale
func (s *Service) Resolve(tag string) (monday.Locale, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrUnsupportedLocale, tag, err)
	}
	_, index, confidence := s.matcher.Match(parsed)
	if confidence == language.No || index < 0 || index >= len(s.locales) {
		return "", fmt.Errorf("%w %q", ErrUnsupportedLocale, tag)
	}
	return s.locales[index], nil
}

// WeekdayNarrow returns the one-letter weekday label, e.g. "M" for Monday in en-US
func (s *Service) WeekdayNarrow(wd time.Weekday, tag string) (string, error) {
	l, err := s.Resolve(tag)
	if err != nil {
		return "", err
	}
	// 1970-01-04 is a Sunday
	day := time.Date(1970, time.January, 4+int(wd), 12, 0, 0, 0, time.UTC)
	return firstLetter(monday.Format(day, "Mon", l)), nil
}

// MonthShort returns the abbreviated month label, e.g. "Apr"
func (s *Service) MonthShort(m time.Month, tag string) (string, error) {
	if m < time.January || m > time.December {
		return "", fmt.Errorf("month out of range: %d", m)
	}
	l, err := s.Resolve(tag)
	if err != nil {
		return "", err
	}
	return monday.Format(time.Date(1970, m, 1, 12, 0, 0, 0, time.UTC), "Jan", l), nil
}

func firstLetter(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r))
}
