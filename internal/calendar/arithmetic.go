package calendar

import "time"

// cumulative day counts before each month in a non-leap year
var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// Zeller's residue order: 0=Saturday, 1=Sunday, 2=Monday, ..., 6=Friday.
var zellerWeekdays = [7]Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

// IsLeapYear checks a year against the calendar rules active for it:
// Julian years leap every 4 years, Gregorian years additionally skip
// centuries not divisible by 400.
func (ctx *Context) IsLeapYear(year int) bool {
	if ctx.Reform.julianRules(year) {
		return year%4 == 0
	}
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the day count of a month, honoring leap years.
func (ctx *Context) DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if ctx.IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 30
}

// IsReformGap reports whether the date falls in the removed span
// (September 3-13, 1752). Always false unless the context reforms at
// the historical year.
func (ctx *Context) IsReformGap(year, month, day int) bool {
	if ctx.Reform.Kind != ReformAt || ctx.Reform.Year != ReformYearGB {
		return false
	}
	return year == ReformYearGB && month == ReformMonth &&
		day >= ReformFirstDay && day <= ReformLastDay
}

// FirstDayOfMonth computes the weekday of the 1st using Zeller's
// congruence. January and February count as months 13 and 14 of the
// previous year; the Julian branch omits the century correction.
func (ctx *Context) FirstDayOfMonth(year, month int) Weekday {
	m := month
	y := year
	if month < 3 {
		m = month + 12
		y = year - 1
	}
	const q = 1
	k := y % 100
	j := y / 100

	var h int
	if ctx.Reform.julianRules(year) {
		h = mod7(q + (13*(m+1))/5 + k + k/4 + 5)
	} else {
		h = mod7(q + (13*(m+1))/5 + k + k/4 + j/4 - 2*j)
	}
	return zellerWeekdays[h]
}

// DayOfYear returns the ordinal day within the year. The reform gap is
// subtracted exactly once, for dates at or past the reform month of the
// reform year.
func (ctx *Context) DayOfYear(year, month, day int) int {
	doy := daysBeforeMonth[month-1] + day
	if month > 2 && ctx.IsLeapYear(year) {
		doy++
	}
	if ctx.Reform.Kind == ReformAt && ctx.Reform.Year == ReformYearGB &&
		year == ReformYearGB && month >= ReformMonth {
		doy -= ReformGapDays
	}
	return doy
}

// WeekNumber computes the week number under the configured policy.
// Both policies reference the proleptic Gregorian calendar regardless
// of the reform setting.
func (ctx *Context) WeekNumber(year, month, day int) int {
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	switch ctx.WeekType {
	case WeekUS:
		jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		daysSinceJan1 := int(date.Sub(jan1).Hours() / 24)
		jan1Weekday := int(jan1.Weekday()) // days from Sunday
		return (daysSinceJan1+jan1Weekday)/7 + 1
	default:
		_, week := date.ISOWeek()
		return week
	}
}

// IsWeekend reports whether the weekday is Saturday or Sunday,
// independent of the configured week start.
func (ctx *Context) IsWeekend(weekday Weekday) bool {
	return weekday == Saturday || weekday == Sunday
}

func mod7(x int) int {
	return ((x % 7) + 7) % 7
}
