// Package render composes month grids into row-based or column-based
// text with localized headers, color highlighting and multi-month
// stacking.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/username/cal/internal/calendar"
	"github.com/username/cal/internal/holiday"
	"github.com/username/cal/internal/locale"
)

// ANSI escape sequences used for highlighting.
const (
	colorReset   = "\x1b[0m"
	colorReverse = "\x1b[7m"
	colorRed     = "\x1b[91m"
	colorTeal    = "\x1b[96m"
	colorYellow  = "\x1b[93m"
)

const verticalMonthWidth = 18

// Renderer owns the collaborators of one render: the display context,
// the holiday service and the output writer.
type Renderer struct {
	ctx      calendar.Context
	holidays *holiday.Service
	tag      locale.Tag
	out      io.Writer
	logger   *zap.Logger
}

// New creates a renderer writing to out.
func New(ctx calendar.Context, holidays *holiday.Service, tag locale.Tag, out io.Writer, logger *zap.Logger) *Renderer {
	return &Renderer{
		ctx:      ctx,
		holidays: holidays,
		tag:      tag,
		out:      out,
		logger:   logger,
	}
}

// classify asks the holiday service for the day's code. Without the
// holidays flag every day reads as unknown, which renders unhighlighted.
func (r *Renderer) classify(ctx *calendar.Context, year, month, day int) holiday.Code {
	if !ctx.Holidays || r.holidays == nil {
		return holiday.CodeUnknown
	}
	return r.holidays.Classify(year, month, day)
}

// monthWidth is the fixed text width of one month block in row layout.
func monthWidth(ctx *calendar.Context) int {
	switch {
	case ctx.Julian:
		return 27
	case ctx.WeekNumbers:
		return 23
	default:
		return 20
	}
}

// centerText centers text in a field of the given visual width. The odd
// padding column goes to the left.
func centerText(text string, width int) string {
	textWidth := runewidth.StringWidth(text)
	if textWidth >= width {
		return text
	}
	total := width - textWidth
	left := (total + 1) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", total-left)
}

// visibleWidth measures the on-screen width of a string, skipping ANSI
// escape sequences and counting wide glyphs as two columns.
func visibleWidth(s string) int {
	width := 0
	for i := 0; i < len(s); {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < '@' || s[j] > '~') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		width += runewidth.RuneWidth(r)
		i += size
	}
	return width
}

// weekdayOrder lists the seven weekdays starting at the configured
// week start.
func weekdayOrder(start calendar.Weekday) [7]calendar.Weekday {
	var order [7]calendar.Weekday
	w := start
	for i := 0; i < 7; i++ {
		order[i] = w
		w = w.Next()
	}
	return order
}

// monthHeaderText is the uncentered month title.
func (r *Renderer) monthHeaderText(ctx *calendar.Context, year, month int) string {
	name := locale.MonthName(r.tag, month)
	if ctx.YearInHeader {
		return fmt.Sprintf("%s %d", name, year)
	}
	return name
}

// monthHeader formats the centered, optionally colored month title.
func (r *Renderer) monthHeader(ctx *calendar.Context, year, month, width int) string {
	centered := centerText(r.monthHeaderText(ctx, year, month), width)
	if ctx.Color {
		return colorTeal + centered + colorReset
	}
	return centered
}

// weekdayHeader formats the two-character weekday row in week-start
// order, aligned with the day cells below it.
func (r *Renderer) weekdayHeader(ctx *calendar.Context) string {
	var b strings.Builder

	if ctx.WeekNumbers {
		b.WriteString("   ")
	}
	if ctx.Julian {
		b.WriteString(" ")
	}
	if ctx.Color {
		b.WriteString(colorYellow)
	}

	order := weekdayOrder(ctx.WeekStart)
	for i, weekday := range order {
		name := locale.WeekdayShort(r.tag, weekday)
		switch {
		case ctx.Julian && i < 6:
			b.WriteString(name + "  ")
		case ctx.Julian:
			b.WriteString(" " + name)
		case i < 6:
			b.WriteString(name + " ")
		default:
			b.WriteString(name)
		}
	}

	if ctx.Color {
		b.WriteString(colorReset)
	}
	return b.String()
}

// dayCell formats one populated day with color precedence:
// today > shortened > weekend or holiday > plain.
func (r *Renderer) dayCell(ctx *calendar.Context, grid *calendar.MonthGrid, day int, weekday calendar.Weekday, isLast bool) string {
	isToday := ctx.Color &&
		ctx.Today.Day() == day &&
		int(ctx.Today.Month()) == grid.Month &&
		ctx.Today.Year() == grid.Year

	isWeekend := ctx.Color && ctx.IsWeekend(weekday)
	code := holiday.CodeUnknown
	if ctx.Color {
		code = r.classify(ctx, grid.Year, grid.Month, day)
	}

	dayStr := fmt.Sprintf("%2d", day)

	var formatted string
	switch {
	case isToday:
		formatted = colorReverse + dayStr + colorReset
	case code == holiday.CodeShortened:
		formatted = colorTeal + dayStr + colorReset
	case isWeekend || code == holiday.CodeWeekend || code == holiday.CodePublicHoliday:
		formatted = colorRed + dayStr + colorReset
	default:
		formatted = dayStr
	}

	if isLast {
		return formatted
	}
	return formatted + " "
}

// monthLines renders one month as row-layout lines: centered header,
// weekday header and six week rows.
func (r *Renderer) monthLines(ctx *calendar.Context, grid *calendar.MonthGrid) []string {
	lines := make([]string, 0, 8)
	lines = append(lines, r.monthHeader(ctx, grid.Year, grid.Month, monthWidth(ctx)))
	lines = append(lines, r.weekdayHeader(ctx))

	idx := 0
	for week := 0; week < 6; week++ {
		var line strings.Builder

		if ctx.WeekNumbers {
			weekNumber := 0
			for d := 0; d < 7; d++ {
				if wn := grid.WeekNumbers[idx+d]; wn != 0 {
					weekNumber = wn
					break
				}
			}
			if weekNumber != 0 {
				line.WriteString(fmt.Sprintf("%2d ", weekNumber))
			} else {
				line.WriteString("   ")
			}
		}

		for col := 0; col < 7; col++ {
			isLast := col == 6
			day := grid.Days[idx]

			switch {
			case day != 0 && ctx.Julian:
				doy := ctx.DayOfYear(grid.Year, grid.Month, day)
				if isLast {
					line.WriteString(fmt.Sprintf("%3d", doy))
				} else {
					line.WriteString(fmt.Sprintf("%3d ", doy))
				}
			case day != 0:
				line.WriteString(r.dayCell(ctx, grid, day, grid.Weekdays[idx], isLast))
			case ctx.Julian && isLast:
				line.WriteString("   ")
			case ctx.Julian:
				line.WriteString("    ")
			case isLast:
				line.WriteString("  ")
			default:
				line.WriteString("   ")
			}
			idx++
		}

		lines = append(lines, line.String())
	}

	return lines
}

// sideBySide writes several month blocks next to each other, padding
// each line to the fixed month width and inserting the gutter.
func (r *Renderer) sideBySide(ctx *calendar.Context, grids []*calendar.MonthGrid) {
	blocks := make([][]string, len(grids))
	maxHeight := 0
	for i, g := range grids {
		blocks[i] = r.monthLines(ctx, g)
		if len(blocks[i]) > maxHeight {
			maxHeight = len(blocks[i])
		}
	}

	width := monthWidth(ctx)
	for row := 0; row < maxHeight; row++ {
		var line strings.Builder
		for i, block := range blocks {
			if row < len(block) {
				text := block[row]
				line.WriteString(text)
				if pad := width - visibleWidth(text); pad > 0 {
					line.WriteString(strings.Repeat(" ", pad))
				}
				if i < len(blocks)-1 {
					line.WriteString(strings.Repeat(" ", ctx.GutterWidth))
				}
			} else {
				blank := width
				if i < len(blocks)-1 {
					blank += ctx.GutterWidth
				}
				line.WriteString(strings.Repeat(" ", blank))
			}
		}
		fmt.Fprintln(r.out, line.String())
	}
}
