package render

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/username/cal/internal/calendar"
)

// terminalWidth reports the current terminal width. Overridable in
// tests.
var terminalWidth = func() (int, bool) {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// monthsPerRow resolves the column policy: a fixed count, or as many
// ~20+gutter wide months as the terminal fits, clamped to 1-3.
func (r *Renderer) monthsPerRow(ctx *calendar.Context) int {
	if !ctx.Columns.Auto {
		return ctx.Columns.Count
	}

	width, ok := terminalWidth()
	if !ok {
		return 3
	}

	perRow := width / (20 + ctx.GutterWidth)
	if perRow < 1 {
		perRow = 1
	}
	if perRow > 3 {
		perRow = 3
	}
	return perRow
}

// normalizeMonth folds a month outside 1-12 into the adjacent years.
func normalizeMonth(year, month int) (int, int) {
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}
	return year, month
}

// Month renders a single month.
func (r *Renderer) Month(year, month int) {
	ctx := r.ctx
	if ctx.Holidays {
		r.holidays.PreloadMonth(year, month)
	}

	grid := calendar.BuildGrid(&ctx, year, month)
	if ctx.Vertical {
		r.verticalGroup(&ctx, []*calendar.MonthGrid{grid})
		return
	}
	for _, line := range r.monthLines(&ctx, grid) {
		fmt.Fprintln(r.out, line)
	}
}

// ThreeMonths renders the previous, given and next month side by side.
func (r *Renderer) ThreeMonths(year, month int) {
	prevYear, prevMonth := normalizeMonth(year, month-1)
	nextYear, nextMonth := normalizeMonth(year, month+1)

	ctx := r.ctx
	if ctx.Holidays {
		r.holidays.PreloadMonth(prevYear, prevMonth)
		r.holidays.PreloadMonth(year, month)
		r.holidays.PreloadMonth(nextYear, nextMonth)
	}

	grids := []*calendar.MonthGrid{
		calendar.BuildGrid(&ctx, prevYear, prevMonth),
		calendar.BuildGrid(&ctx, year, month),
		calendar.BuildGrid(&ctx, nextYear, nextMonth),
	}

	if ctx.Vertical {
		r.verticalGroup(&ctx, grids)
		fmt.Fprintln(r.out)
		return
	}
	r.sideBySide(&ctx, grids)
}

// Year renders all twelve months of a year under a centered year
// banner, three months per row, with the per-month year suppressed.
func (r *Renderer) Year(year int) {
	bannerWidth := 66
	if r.ctx.Vertical {
		bannerWidth = 62
	}
	fmt.Fprintln(r.out, centerText(strconv.Itoa(year), bannerWidth))
	fmt.Fprintln(r.out)

	if r.ctx.Holidays {
		r.holidays.PreloadYear(year)
	}

	monthCtx := r.ctx
	monthCtx.YearInHeader = false
	if r.ctx.Vertical {
		monthCtx.GutterWidth = 1
	} else {
		monthCtx.GutterWidth = calendar.GutterWidthYear
	}

	for rowStart := 1; rowStart <= 12; rowStart += 3 {
		grids := make([]*calendar.MonthGrid, 0, 3)
		for month := rowStart; month < rowStart+3 && month <= 12; month++ {
			grids = append(grids, calendar.BuildGrid(&monthCtx, year, month))
		}
		if monthCtx.Vertical {
			r.verticalGroup(&monthCtx, grids)
			fmt.Fprintln(r.out)
		} else {
			r.sideBySide(&monthCtx, grids)
		}
	}
}

// TwelveMonths renders twelve consecutive months starting at the given
// month, rolling over year boundaries.
func (r *Renderer) TwelveMonths(year, month int) {
	monthCtx := r.ctx
	monthCtx.YearInHeader = true
	monthCtx.GutterWidth = calendar.GutterWidthYear

	if monthCtx.Holidays {
		for i := 0; i < 12; i++ {
			y, m := normalizeMonth(year, month+i)
			r.holidays.PreloadMonth(y, m)
		}
	}

	grids := make([]*calendar.MonthGrid, 12)
	for i := 0; i < 12; i++ {
		y, m := normalizeMonth(year, month+i)
		grids[i] = calendar.BuildGrid(&monthCtx, y, m)
	}

	if monthCtx.Vertical {
		for _, grid := range grids {
			r.verticalGroup(&monthCtx, []*calendar.MonthGrid{grid})
			fmt.Fprintln(r.out)
		}
		return
	}
	for i := 0; i < len(grids); i += 3 {
		r.sideBySide(&monthCtx, grids[i:i+3])
	}
}

// MonthsCount renders count months starting at the given month, or
// centered on it when span is active.
func (r *Renderer) MonthsCount(year, month, count int) {
	ctx := r.ctx

	startYear, startMonth := year, month
	if ctx.Span && count > 1 {
		total := year*12 + (month - 1)
		start := total - (count-1)/2
		startYear = floorDiv(start, 12)
		startMonth = mod12(start) + 1
	}

	if ctx.Holidays {
		for i := 0; i < count; i++ {
			y, m := normalizeMonth(startYear, startMonth+i)
			r.holidays.PreloadMonth(y, m)
		}
	}

	grids := make([]*calendar.MonthGrid, count)
	for i := 0; i < count; i++ {
		y, m := normalizeMonth(startYear, startMonth+i)
		grids[i] = calendar.BuildGrid(&ctx, y, m)
	}

	if ctx.Vertical {
		for _, grid := range grids {
			r.verticalGroup(&ctx, []*calendar.MonthGrid{grid})
			fmt.Fprintln(r.out)
		}
		return
	}

	perRow := r.monthsPerRow(&ctx)
	for i := 0; i < len(grids); i += perRow {
		end := i + perRow
		if end > len(grids) {
			end = len(grids)
		}
		r.sideBySide(&ctx, grids[i:end])
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod12(a int) int {
	return ((a % 12) + 12) % 12
}
