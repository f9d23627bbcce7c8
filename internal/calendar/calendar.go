package calendar

import "time"

// Weekday is a day of the week in Monday-first order.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	// WeekdayNone marks an empty grid cell.
	WeekdayNone Weekday = -1
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "none"
	}
	return weekdayNames[w]
}

// Next returns the following day of the week, wrapping Sunday to Monday.
func (w Weekday) Next() Weekday {
	return (w + 1) % 7
}

// FromMonday returns the number of days since Monday (0-6).
func (w Weekday) FromMonday() int {
	return int(w)
}

// FromSunday returns the number of days since Sunday (0-6).
func (w Weekday) FromSunday() int {
	return (int(w) + 1) % 7
}

// WeekType selects the week numbering system.
type WeekType int

const (
	// WeekISO numbers weeks per ISO 8601: weeks start on Monday and
	// week 1 contains the first Thursday of the year.
	WeekISO WeekType = iota
	// WeekUS numbers weeks US style: weeks start on Sunday and week 1
	// contains January 1.
	WeekUS
)

// ReformKind tags the calendar reform choice.
type ReformKind int

const (
	// AlwaysGregorian applies Gregorian rules to every year.
	AlwaysGregorian ReformKind = iota
	// AlwaysJulian applies Julian rules to every year.
	AlwaysJulian
	// ReformAt switches from Julian to Gregorian at a given year.
	ReformAt
)

// Reform is the calendar system selection for a render.
type Reform struct {
	Kind ReformKind
	Year int
}

// GregorianReform returns an always-Gregorian reform selection.
func GregorianReform() Reform { return Reform{Kind: AlwaysGregorian} }

// JulianReform returns an always-Julian reform selection.
func JulianReform() Reform { return Reform{Kind: AlwaysJulian} }

// ReformYear returns a reform selection switching at the given year.
func ReformYear(year int) Reform { return Reform{Kind: ReformAt, Year: year} }

// julianRules reports whether the given year uses Julian arithmetic.
func (r Reform) julianRules(year int) bool {
	switch r.Kind {
	case AlwaysJulian:
		return true
	case ReformAt:
		return year < r.Year
	default:
		return false
	}
}

// ColumnMode is the months-per-row policy for multi-month row layouts.
type ColumnMode struct {
	Auto  bool
	Count int
}

// Context carries all options for a single render. It is built once from
// validated input and copied with overrides for sub-renders.
type Context struct {
	Reform       Reform
	WeekStart    Weekday
	WeekType     WeekType
	Julian       bool // display day-of-year numbers instead of day numbers
	WeekNumbers  bool
	Color        bool
	Vertical     bool
	Today        time.Time
	YearInHeader bool
	GutterWidth  int
	Columns      ColumnMode
	Span         bool
	Holidays     bool
}

const (
	// CellsPerMonth is the fixed grid size: 6 weeks of 7 days.
	CellsPerMonth = 42

	GutterWidthRegular = 2
	GutterWidthYear    = 3
)

// Great Britain switched to the Gregorian calendar in September 1752,
// removing the 3rd through the 13th.
const (
	ReformYearGB   = 1752
	ReformMonth    = 9
	ReformFirstDay = 3
	ReformLastDay  = 13
	ReformGapDays  = ReformLastDay - ReformFirstDay + 1
)
