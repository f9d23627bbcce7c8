package holiday

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// DefaultSearchPaths are the locations tried in order when resolving a
// local classification file.
var DefaultSearchPaths = []string{
	"./holidays.cal",
	"~/.local/share/cal/holidays.cal",
	"/usr/share/cal/holidays.cal",
	"/usr/local/share/cal/holidays.cal",
}

// FileProvider serves classification data from a local file. Each line
// holds "YYYY-MM codes" where codes is one classification character per
// day of the month; blank lines and # comments are skipped. Country is
// ignored: a file describes exactly one jurisdiction.
type FileProvider struct {
	filePath string
	logger   *zap.Logger
	data     map[string]string // key: "YYYY-MM"
}

// NewFileProvider creates a file provider for the given path. Load must
// succeed before the provider is usable.
func NewFileProvider(filePath string, logger *zap.Logger) *FileProvider {
	return &FileProvider{
		filePath: filePath,
		logger:   logger,
		data:     make(map[string]string),
	}
}

// Load reads and indexes the classification file.
func (fp *FileProvider) Load() error {
	file, err := os.Open(fp.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			fp.logger.Warn("Invalid holiday line format", zap.String("line", line))
			continue
		}

		key := parts[0]
		codes := parts[1]
		if len(key) != 7 || key[4] != '-' {
			fp.logger.Warn("Invalid month key", zap.String("key", key))
			continue
		}

		fp.data[key] = codes
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holiday file: %w", err)
	}

	fp.logger.Info("Holiday file loaded",
		zap.String("file", fp.filePath),
		zap.Int("months", len(fp.data)))

	return nil
}

// MonthData returns the stored classification string for a month.
func (fp *FileProvider) MonthData(year, month int, _ string) (string, error) {
	key := fmt.Sprintf("%d-%02d", year, month)
	data, ok := fp.data[key]
	if !ok {
		return "", fmt.Errorf("month not found in holiday file: %s", key)
	}
	return data, nil
}

// YearData concatenates the twelve month entries of a year. Every month
// must be present for the year to resolve.
func (fp *FileProvider) YearData(year int, country string) (string, error) {
	var b strings.Builder
	for month := 1; month <= 12; month++ {
		data, err := fp.MonthData(year, month, country)
		if err != nil {
			return "", err
		}
		b.WriteString(data)
	}
	return b.String(), nil
}

// DayCode classifies a single day from the stored month data.
func (fp *FileProvider) DayCode(year, month, day int, country string) (Code, error) {
	data, err := fp.MonthData(year, month, country)
	if err != nil {
		return CodeUnknown, err
	}

	idx := day - 1
	if idx < 0 || idx >= len(data) {
		return CodeUnknown, fmt.Errorf("day %d out of range in holiday file", day)
	}
	return ParseCode(data[idx]), nil
}

// CountryFromLocale resolves the country from the environment. The file
// data itself is country-agnostic but the service still records one.
func (fp *FileProvider) CountryFromLocale() string {
	return DetectCountry()
}

// ResolveFile tries each search path in order and returns the first
// provider whose file loads, or nil when none does.
func ResolveFile(searchPaths []string, logger *zap.Logger) *FileProvider {
	if len(searchPaths) == 0 {
		searchPaths = DefaultSearchPaths
	}

	home, _ := os.UserHomeDir()
	for _, path := range searchPaths {
		if strings.HasPrefix(path, "~/") && home != "" {
			path = home + path[1:]
		}

		fp := NewFileProvider(path, logger)
		if err := fp.Load(); err != nil {
			logger.Debug("Holiday file not usable",
				zap.String("path", path),
				zap.Error(err))
			continue
		}
		return fp
	}

	return nil
}
