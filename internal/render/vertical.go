package render

import (
	"fmt"
	"strings"

	"github.com/username/cal/internal/calendar"
	"github.com/username/cal/internal/holiday"
	"github.com/username/cal/internal/locale"
)

// verticalDayCell formats one day in the 3-column vertical layout with
// the same color precedence as the row layout.
func (r *Renderer) verticalDayCell(ctx *calendar.Context, grid *calendar.MonthGrid, day int, weekday calendar.Weekday) string {
	isToday := ctx.Color &&
		ctx.Today.Day() == day &&
		int(ctx.Today.Month()) == grid.Month &&
		ctx.Today.Year() == grid.Year

	isWeekend := ctx.Color && ctx.IsWeekend(weekday)
	code := holiday.CodeUnknown
	if ctx.Color {
		code = r.classify(ctx, grid.Year, grid.Month, day)
	}

	dayStr := fmt.Sprintf("%d", day)
	padding := strings.Repeat(" ", 3-len(dayStr))

	switch {
	case isToday:
		return padding + colorReverse + dayStr + colorReset
	case code == holiday.CodeShortened:
		return padding + colorTeal + dayStr + colorReset
	case isWeekend || code == holiday.CodeWeekend || code == holiday.CodePublicHoliday:
		return padding + colorRed + dayStr + colorReset
	default:
		return padding + dayStr
	}
}

// verticalGroup writes one or more months in column layout: headers
// left-justified on a single line, then one row per weekday holding the
// six week slots of that weekday for every month.
func (r *Renderer) verticalGroup(ctx *calendar.Context, grids []*calendar.MonthGrid) {
	var header strings.Builder
	for i, grid := range grids {
		padded := fmt.Sprintf("%-*s%s",
			verticalMonthWidth,
			r.monthHeaderText(ctx, grid.Year, grid.Month),
			strings.Repeat(" ", ctx.GutterWidth))
		if i == 0 {
			// room for the weekday label column
			padded = "    " + padded
		}
		header.WriteString(padded)
	}
	if ctx.Color {
		fmt.Fprintln(r.out, colorTeal+header.String()+colorReset)
	} else {
		fmt.Fprintln(r.out, header.String())
	}

	order := weekdayOrder(ctx.WeekStart)
	for row, weekday := range order {
		var line strings.Builder

		label := locale.WeekdayShort(r.tag, weekday)
		if ctx.Color {
			line.WriteString(colorYellow + label + colorReset)
		} else {
			line.WriteString(label)
		}

		for i, grid := range grids {
			if i > 0 {
				line.WriteString(strings.Repeat(" ", ctx.GutterWidth))
			}
			for week := 0; week < 6; week++ {
				idx := row + 7*week
				if day := grid.Days[idx]; day != 0 {
					line.WriteString(r.verticalDayCell(ctx, grid, day, grid.Weekdays[idx]))
				} else {
					line.WriteString("   ")
				}
			}
		}

		fmt.Fprintln(r.out, line.String())
	}
}
