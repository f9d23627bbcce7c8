package holiday

import "go.uber.org/zap"

// Composite is a Provider with a fallback strategy: every lookup tries
// the primary first and falls back on error.
type Composite struct {
	primary  Provider
	fallback Provider
	logger   *zap.Logger
}

// NewComposite creates a composite provider.
func NewComposite(primary, fallback Provider, logger *zap.Logger) *Composite {
	return &Composite{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// MonthData returns month classification data, preferring the primary.
func (c *Composite) MonthData(year, month int, country string) (string, error) {
	data, err := c.primary.MonthData(year, month, country)
	if err == nil {
		return data, nil
	}

	c.logger.Warn("Primary holiday provider failed, using fallback",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Error(err))

	return c.fallback.MonthData(year, month, country)
}

// YearData returns year classification data, preferring the primary.
func (c *Composite) YearData(year int, country string) (string, error) {
	data, err := c.primary.YearData(year, country)
	if err == nil {
		return data, nil
	}

	c.logger.Warn("Primary holiday provider failed, using fallback",
		zap.Int("year", year),
		zap.Error(err))

	return c.fallback.YearData(year, country)
}

// DayCode classifies a single day, preferring the primary.
func (c *Composite) DayCode(year, month, day int, country string) (Code, error) {
	code, err := c.primary.DayCode(year, month, day, country)
	if err == nil {
		return code, nil
	}

	c.logger.Warn("Primary holiday provider failed, using fallback",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("day", day),
		zap.Error(err))

	return c.fallback.DayCode(year, month, day, country)
}

// CountryFromLocale delegates to the primary provider.
func (c *Composite) CountryFromLocale() string {
	return c.primary.CountryFromLocale()
}
