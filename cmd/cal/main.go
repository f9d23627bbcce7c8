package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/cal/internal/calendar"
	"github.com/username/cal/internal/config"
	"github.com/username/cal/internal/holiday"
	"github.com/username/cal/internal/locale"
	"github.com/username/cal/internal/render"
	"github.com/username/cal/pkg/dateutil"
)

var logger *zap.Logger

type options struct {
	sunday      bool
	monday      bool
	julian      bool
	weekNumbers bool
	weekType    string
	yearMode    bool
	twelve      bool
	three       bool
	monthsCount int
	oneMonth    bool
	span        bool
	reform      string
	iso         bool
	noColor     bool
	columns     string
	vertical    bool
	holidays    bool
	configPath  string
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "cal [[day] month] year",
		Short: "Displays calendar for specified month or year",
		Long: `Display a calendar, or some part of it.

Without any arguments, display the current month.

Examples:
  cal                Display current month
  cal -3             Display three months (prev, current, next)
  cal -y             Display the whole year
  cal -Y             Display next twelve months
  cal 2 2026         Display February 2026
  cal 2026           Display year 2026
  cal --span -n 12   Display 12 months centered on current month
  cal --color        Disable colorized output
  cal -H             Highlight holidays`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(opts.configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger()
				}
			} else {
				initLogger()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.sunday, "sunday", "s", false, "Week starts on Sunday")
	flags.BoolVarP(&opts.monday, "monday", "m", false, "Week starts on Monday (default)")
	flags.BoolVarP(&opts.julian, "julian", "j", false, "Display Julian days (day number in year)")
	flags.BoolVarP(&opts.weekNumbers, "week-numbers", "w", false, "Display week numbers")
	flags.StringVar(&opts.weekType, "week-type", "iso", "Week numbering system (iso or us)")
	flags.BoolVarP(&opts.yearMode, "year", "y", false, "Display whole year")
	flags.BoolVarP(&opts.twelve, "twelve", "Y", false, "Display the next twelve months")
	flags.BoolVarP(&opts.three, "three", "3", false, "Display three months (previous, current, next)")
	flags.IntVarP(&opts.monthsCount, "months", "n", 0, "Number of months to display")
	flags.BoolVarP(&opts.oneMonth, "one", "1", false, "Show only a single month (default)")
	flags.BoolVarP(&opts.span, "span", "S", false, "Center the date range when displaying multiple months")
	flags.StringVar(&opts.reform, "reform", "1752", "Gregorian reform date (1752|gregorian|iso|julian)")
	flags.BoolVar(&opts.iso, "iso", false, "Use ISO 8601 reform (same as --reform iso)")
	flags.BoolVar(&opts.noColor, "color", false, "Disable colorized output")
	flags.StringVarP(&opts.columns, "columns", "c", "", `Number of columns for multiple months (or "auto")`)
	flags.BoolVarP(&opts.vertical, "vertical", "v", false, "Show days vertically (days in columns instead of rows)")
	flags.BoolVarP(&opts.holidays, "holidays", "H", false, "Highlight holidays using isdayoff.ru data")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cal: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *options, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	ctx, err := buildContext(opts)
	if err != nil {
		return err
	}

	year, month, _, err := displayDate(args)
	if err != nil {
		return err
	}

	holidaySvc := holiday.NewService(providerResolver(cfg), cfg.Holidays.Country, logger)

	r := render.New(*ctx, holidaySvc, locale.Detect(), os.Stdout, logger)

	// Display mode priority: year > twelve > three > months count > single
	switch {
	case opts.yearMode:
		r.Year(year)
	case opts.twelve:
		r.TwelveMonths(year, month)
	case opts.three:
		r.ThreeMonths(year, month)
	case opts.monthsCount > 0:
		r.MonthsCount(year, month, opts.monthsCount)
	default:
		r.Month(year, month)
	}

	return nil
}

// providerResolver builds the holiday provider chain on first use:
// isdayoff.ru primary, with a local classification file as fallback
// when one resolves from the search paths.
func providerResolver(cfg *config.Config) holiday.ResolverFunc {
	return func() holiday.Provider {
		primary := holiday.NewIsDayOff(cfg.Holidays.BaseURL, cfg.Holidays.GetHTTPTimeout(), logger)
		if fileProvider := holiday.ResolveFile(cfg.Holidays.SearchPaths, logger); fileProvider != nil {
			return holiday.NewComposite(primary, fileProvider, logger)
		}
		return primary
	}
}

func buildContext(opts *options) (*calendar.Context, error) {
	modeCount := 0
	if opts.yearMode {
		modeCount++
	}
	if opts.twelve {
		modeCount++
	}
	if opts.monthsCount != 0 {
		modeCount++
	}
	if modeCount > 1 {
		return nil, fmt.Errorf("options -y, -Y, and -n are mutually exclusive")
	}
	if opts.monthsCount < 0 {
		return nil, fmt.Errorf("months count must be positive")
	}

	columns := calendar.ColumnMode{Auto: true}
	if opts.columns != "" && opts.columns != "auto" {
		n, err := strconv.Atoi(opts.columns)
		if err != nil {
			return nil, fmt.Errorf("invalid columns value: %s", opts.columns)
		}
		if n <= 0 {
			return nil, fmt.Errorf("columns must be positive")
		}
		columns = calendar.ColumnMode{Count: n}
	}

	var reform calendar.Reform
	switch opts.reform {
	case "1752":
		reform = calendar.ReformYear(calendar.ReformYearGB)
	case "gregorian", "iso":
		reform = calendar.GregorianReform()
	case "julian":
		reform = calendar.JulianReform()
	default:
		return nil, fmt.Errorf("invalid reform value: %s (must be 1752, gregorian, iso or julian)", opts.reform)
	}
	if opts.iso {
		reform = calendar.GregorianReform()
	}

	var weekType calendar.WeekType
	switch opts.weekType {
	case "iso":
		weekType = calendar.WeekISO
	case "us":
		weekType = calendar.WeekUS
	default:
		return nil, fmt.Errorf("invalid week-type value: %s (must be iso or us)", opts.weekType)
	}

	weekStart := calendar.Monday
	if opts.sunday {
		weekStart = calendar.Sunday
	}

	gutter := calendar.GutterWidthRegular
	if opts.vertical {
		gutter = 1
	}

	color := !opts.noColor && term.IsTerminal(int(os.Stdout.Fd()))

	return &calendar.Context{
		Reform:       reform,
		WeekStart:    weekStart,
		WeekType:     weekType,
		Julian:       opts.julian,
		WeekNumbers:  opts.weekNumbers,
		Color:        color,
		Vertical:     opts.vertical,
		Today:        dateutil.Today(),
		YearInHeader: true,
		GutterWidth:  gutter,
		Columns:      columns,
		Span:         opts.span,
		Holidays:     opts.holidays,
	}, nil
}

// displayDate maps positional arguments to a target date.
//
// Patterns: no args = current month; one arg = 4-digit year or
// 1-2 digit month or month name; two args = month year; three args =
// day month year.
func displayDate(args []string) (year, month int, day int, err error) {
	today := dateutil.Today()

	switch len(args) {
	case 0:
		return today.Year(), int(today.Month()), 0, nil

	case 1:
		if n, convErr := strconv.Atoi(args[0]); convErr == nil {
			if n >= 1000 && n <= 9999 {
				return n, int(today.Month()), 0, nil
			}
			if n >= 1 && n <= 12 {
				return today.Year(), n, 0, nil
			}
		}
		if m, ok := locale.ParseMonth(args[0]); ok {
			return today.Year(), m, 0, nil
		}
		return 0, 0, 0, fmt.Errorf("invalid argument: %s", args[0])

	case 2:
		m, ok := locale.ParseMonth(args[0])
		if !ok {
			return 0, 0, 0, fmt.Errorf("invalid month: %s", args[0])
		}
		y, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("invalid year: %s", args[1])
		}
		if y < 1 || y > 9999 {
			return 0, 0, 0, fmt.Errorf("invalid year: %d (must be 1-9999)", y)
		}
		return y, m, 0, nil

	default:
		d, convErr := strconv.Atoi(args[0])
		if convErr != nil || d < 1 || d > 31 {
			return 0, 0, 0, fmt.Errorf("invalid day: %s (must be 1-31)", args[0])
		}
		m, ok := locale.ParseMonth(args[1])
		if !ok {
			return 0, 0, 0, fmt.Errorf("invalid month: %s", args[1])
		}
		y, convErr := strconv.Atoi(args[2])
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("invalid year: %s", args[2])
		}
		if y < 1 || y > 9999 {
			return 0, 0, 0, fmt.Errorf("invalid year: %d (must be 1-9999)", y)
		}
		return y, m, d, nil
	}
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
