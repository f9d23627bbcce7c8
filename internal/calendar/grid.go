package calendar

// MonthGrid is the fixed 6-week cell layout of a single month. The three
// slices are parallel and always hold exactly CellsPerMonth entries: a
// zero day means an empty cell, and a cell has a weekday exactly when it
// has a day.
type MonthGrid struct {
	Year        int
	Month       int
	Days        []int
	WeekNumbers []int
	Weekdays    []Weekday
}

// BuildGrid lays out a month into 42 cells. Leading cells before the
// first weekday stay empty, the reform gap emits its removed days as
// empty cells while still advancing the weekday cursor, and trailing
// cells pad the grid to 6 full weeks.
func BuildGrid(ctx *Context, year, month int) *MonthGrid {
	grid := &MonthGrid{
		Year:        year,
		Month:       month,
		Days:        make([]int, CellsPerMonth),
		WeekNumbers: make([]int, CellsPerMonth),
		Weekdays:    make([]Weekday, CellsPerMonth),
	}
	for i := range grid.Weekdays {
		grid.Weekdays[i] = WeekdayNone
	}

	daysInMonth := ctx.DaysInMonth(year, month)
	firstDay := ctx.FirstDayOfMonth(year, month)

	var offset int
	if ctx.WeekStart == Sunday {
		offset = firstDay.FromSunday()
	} else {
		offset = firstDay.FromMonday()
	}

	idx := offset
	weekday := firstDay
	day := 1
	for day <= daysInMonth {
		if ctx.IsReformGap(year, month, day) {
			for i := 0; i < ReformGapDays; i++ {
				weekday = weekday.Next()
				idx++
			}
			day = ReformLastDay + 1
			continue
		}
		grid.Days[idx] = day
		if ctx.WeekNumbers {
			grid.WeekNumbers[idx] = ctx.WeekNumber(year, month, day)
		}
		grid.Weekdays[idx] = weekday
		weekday = weekday.Next()
		idx++
		day++
	}

	return grid
}
