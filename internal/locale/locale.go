// Package locale resolves the display language from the environment and
// provides month and weekday naming plus month-token parsing.
package locale

import (
	"os"
	"strconv"
	"strings"

	"github.com/username/cal/internal/calendar"
)

// Tag is a normalized locale tag such as "en_US" or "ru_RU" with any
// codeset and modifier suffixes stripped.
type Tag string

// DefaultTag is assumed when no locale variable is set.
const DefaultTag Tag = "en_US"

// Detect reads the locale from the environment, preferring LC_ALL over
// LC_TIME over LANG.
func Detect() Tag {
	raw := ""
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(name); v != "" {
			raw = v
			break
		}
	}
	if raw == "" {
		return DefaultTag
	}
	return Normalize(raw)
}

// Normalize strips ".codeset" and "@modifier" suffixes from a raw
// locale value ("ru_RU.UTF-8" becomes "ru_RU").
func Normalize(raw string) Tag {
	s := raw
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '@'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return DefaultTag
	}
	return Tag(s)
}

// Language returns the two-letter language part of the tag.
func (t Tag) Language() string {
	s := string(t)
	if i := strings.IndexByte(s, '_'); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(s)
}

var monthNames = map[string][12]string{
	"en": {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	"ru": {
		"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
		"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
	},
	"uk": {
		"Січень", "Лютий", "Березень", "Квітень", "Травень", "Червень",
		"Липень", "Серпень", "Вересень", "Жовтень", "Листопад", "Грудень",
	},
	"be": {
		"Студзень", "Люты", "Сакавік", "Красавік", "Май", "Чэрвень",
		"Ліпень", "Жнівень", "Верасень", "Кастрычнік", "Лістапад", "Снежань",
	},
}

// weekday labels in Monday-first order, two characters each
var weekdayShort = map[string][7]string{
	"en": {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	"ru": {"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"},
	"uk": {"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Нд"},
	"be": {"Пн", "Аў", "Ср", "Чц", "Пт", "Сб", "Нд"},
}

// englishAbbrevs maps English three-letter month forms. "may" is already
// covered by the full name.
var englishAbbrevs = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6, "jul": 7,
	"aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// MonthName returns the localized month name, falling back to English
// for unsupported languages.
func MonthName(tag Tag, month int) string {
	names, ok := monthNames[tag.Language()]
	if !ok {
		names = monthNames["en"]
	}
	return names[month-1]
}

// WeekdayShort returns the localized two-character weekday label.
func WeekdayShort(tag Tag, weekday calendar.Weekday) string {
	labels, ok := weekdayShort[tag.Language()]
	if !ok {
		labels = weekdayShort["en"]
	}
	return labels[weekday.FromMonday()]
}

// ParseMonth interprets a month token: a number 1-12, or a month name or
// abbreviation in any supported language, case-insensitively.
func ParseMonth(token string) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		if n >= 1 && n <= 12 {
			return n, true
		}
		return 0, false
	}

	lower := strings.ToLower(token)
	for _, names := range monthNames {
		for i, name := range names {
			if strings.ToLower(name) == lower {
				return i + 1, true
			}
		}
	}
	if n, ok := englishAbbrevs[lower]; ok {
		return n, true
	}
	return 0, false
}
