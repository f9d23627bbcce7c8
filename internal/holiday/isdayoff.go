package holiday

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the isdayoff.ru service root.
	DefaultBaseURL = "https://isdayoff.ru"

	defaultHTTPTimeout = 10 * time.Second
)

// IsDayOff fetches classification data from the isdayoff.ru API. The
// HTTP client carries its own timeout so a slow fetch degrades instead
// of hanging the render.
type IsDayOff struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewIsDayOff creates an isdayoff.ru provider.
func NewIsDayOff(baseURL string, timeout time.Duration, logger *zap.Logger) *IsDayOff {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}

	return &IsDayOff{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// MonthData fetches one classification character per day of the month.
func (p *IsDayOff) MonthData(year, month int, country string) (string, error) {
	url := fmt.Sprintf("%s/api/getdata?year=%d&month=%02d&cc=%s&pre=1",
		p.baseURL, year, month, strings.ToLower(country))

	data, err := p.fetch(url)
	if err != nil {
		return "", err
	}

	want := gregorianDaysInMonth(year, month)
	if len(data) != want {
		return "", fmt.Errorf("month data length mismatch: expected %d, got %d", want, len(data))
	}

	p.logger.Debug("Month classification fetched",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.String("country", country))

	return data, nil
}

// YearData fetches one classification character per day of the year.
func (p *IsDayOff) YearData(year int, country string) (string, error) {
	url := fmt.Sprintf("%s/api/getdata?year=%d&cc=%s&pre=1",
		p.baseURL, year, strings.ToLower(country))

	data, err := p.fetch(url)
	if err != nil {
		return "", err
	}

	want := 365
	if gregorianLeap(year) {
		want = 366
	}
	if len(data) != want {
		return "", fmt.Errorf("year data length mismatch: expected %d, got %d", want, len(data))
	}

	p.logger.Debug("Year classification fetched",
		zap.Int("year", year),
		zap.String("country", country))

	return data, nil
}

// DayCode classifies a single day via the bulk month endpoint.
func (p *IsDayOff) DayCode(year, month, day int, country string) (Code, error) {
	data, err := p.MonthData(year, month, country)
	if err != nil {
		return CodeUnknown, err
	}

	idx := day - 1
	if idx < 0 || idx >= len(data) {
		return CodeUnknown, fmt.Errorf("day %d out of range for month data", day)
	}
	return ParseCode(data[idx]), nil
}

// CountryFromLocale resolves the country to query from the environment.
func (p *IsDayOff) CountryFromLocale() string {
	return DetectCountry()
}

func (p *IsDayOff) fetch(url string) (string, error) {
	resp, err := p.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch holiday data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	return strings.TrimSpace(string(body)), nil
}

func gregorianLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func gregorianDaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
