// Package holiday classifies calendar days as working, weekend,
// shortened or public holiday through a lazily resolved provider. Every
// failure degrades to CodeUnknown so a render never breaks on missing
// holiday data.
package holiday

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Code is the per-day classification.
type Code int

const (
	CodeUnknown       Code = -1
	CodeWorking       Code = 0
	CodeWeekend       Code = 1
	CodeShortened     Code = 2
	CodePublicHoliday Code = 8
)

// ParseCode maps a classification character to a Code.
func ParseCode(c byte) Code {
	switch c {
	case '0':
		return CodeWorking
	case '1':
		return CodeWeekend
	case '2':
		return CodeShortened
	case '8':
		return CodePublicHoliday
	}
	return CodeUnknown
}

// Provider supplies classification data for a country. Implementations
// may fetch over the network or read local files.
type Provider interface {
	// MonthData returns one classification character per day of the month.
	MonthData(year, month int, country string) (string, error)

	// YearData returns one classification character per day of the year.
	YearData(year int, country string) (string, error)

	// DayCode classifies a single day.
	DayCode(year, month, day int, country string) (Code, error)

	// CountryFromLocale determines the 2-letter country code to query.
	CountryFromLocale() string
}

// ResolverFunc builds the provider on first use. Returning nil disables
// highlighting for the whole process.
type ResolverFunc func() Provider

// cacheEntry holds classification data for one month, or for a whole
// year when month is 0.
type cacheEntry struct {
	year  int
	month int
	data  string
}

// Service owns the provider handle, the resolved country and a single
// cached data entry. A whole-year entry is never displaced by a
// same-year month fetch; any different-year fetch replaces the entry.
//
// Lock order: handleMu, then cacheMu, then countryMu. No lock is held
// across a provider call.
type Service struct {
	resolve ResolverFunc
	logger  *zap.Logger

	handleMu sync.Mutex
	provider Provider
	resolved bool

	cacheMu sync.Mutex
	cache   *cacheEntry

	countryMu sync.Mutex
	country   string
}

// NewService creates a holiday service. The provider is not resolved
// until the first lookup. A non-empty country overrides locale
// detection.
func NewService(resolve ResolverFunc, country string, logger *zap.Logger) *Service {
	return &Service{
		resolve: resolve,
		country: country,
		logger:  logger,
	}
}

// init resolves the provider exactly once per process and reports
// whether holiday data is available at all.
func (s *Service) init() bool {
	s.handleMu.Lock()
	defer s.handleMu.Unlock()

	if !s.resolved {
		s.resolved = true
		if s.resolve != nil {
			s.provider = s.resolve()
		}
		if s.provider == nil {
			s.logger.Warn("No holiday provider available, highlighting disabled")
			return false
		}

		s.countryMu.Lock()
		if s.country == "" {
			s.country = s.provider.CountryFromLocale()
		}
		s.countryMu.Unlock()
		s.logger.Debug("Holiday provider resolved",
			zap.String("country", s.country))
	}

	return s.provider != nil
}

func (s *Service) currentCountry() string {
	s.countryMu.Lock()
	defer s.countryMu.Unlock()
	return s.country
}

// Classify returns the classification of a single day, consulting the
// cache first and fetching the month on a miss.
func (s *Service) Classify(year, month, day int) Code {
	if code, ok := s.lookupCached(year, month, day); ok {
		return code
	}

	if !s.init() {
		return CodeUnknown
	}

	data, err := s.provider.MonthData(year, month, s.currentCountry())
	if err != nil {
		s.logger.Warn("Holiday lookup failed",
			zap.Int("year", year),
			zap.Int("month", month),
			zap.Error(err))
		return CodeUnknown
	}

	s.storeMonth(year, month, data)
	return codeAt(data, day-1)
}

// lookupCached answers from the resident entry when it covers the
// requested day.
func (s *Service) lookupCached(year, month, day int) (Code, bool) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if s.cache == nil || s.cache.year != year {
		return CodeUnknown, false
	}
	switch s.cache.month {
	case 0:
		ordinal := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).YearDay()
		return codeAt(s.cache.data, ordinal-1), true
	case month:
		return codeAt(s.cache.data, day-1), true
	}
	return CodeUnknown, false
}

// storeMonth caches month data unless a whole-year entry for the same
// year is already resident.
func (s *Service) storeMonth(year, month int, data string) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if s.cache != nil && s.cache.year == year && s.cache.month == 0 {
		return
	}
	s.cache = &cacheEntry{year: year, month: month, data: data}
}

// PreloadMonth warms the cache for a month unless already covered.
func (s *Service) PreloadMonth(year, month int) {
	s.cacheMu.Lock()
	covered := s.cache != nil && s.cache.year == year &&
		(s.cache.month == month || s.cache.month == 0)
	s.cacheMu.Unlock()
	if covered {
		return
	}

	s.Classify(year, month, 1)
}

// PreloadYear fetches and caches whole-year data. Used by the year
// display mode so twelve month renders share one fetch.
func (s *Service) PreloadYear(year int) {
	s.cacheMu.Lock()
	covered := s.cache != nil && s.cache.year == year && s.cache.month == 0
	s.cacheMu.Unlock()
	if covered {
		return
	}

	if !s.init() {
		return
	}

	data, err := s.provider.YearData(year, s.currentCountry())
	if err != nil {
		s.logger.Warn("Holiday year preload failed",
			zap.Int("year", year),
			zap.Error(err))
		return
	}

	s.cacheMu.Lock()
	s.cache = &cacheEntry{year: year, month: 0, data: data}
	s.cacheMu.Unlock()
}

// codeAt reads the classification at idx, with out-of-range reads
// resolving to CodeUnknown.
func codeAt(data string, idx int) Code {
	if idx < 0 || idx >= len(data) {
		return CodeUnknown
	}
	return ParseCode(data[idx])
}
