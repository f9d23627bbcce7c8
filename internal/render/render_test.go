package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/username/cal/internal/calendar"
	"github.com/username/cal/internal/holiday"
)

type stubProvider struct {
	months map[string]string
}

func (s *stubProvider) MonthData(year, month int, country string) (string, error) {
	data, ok := s.months[fmt.Sprintf("%d-%d", year, month)]
	if !ok {
		return "", errors.New("no data")
	}
	return data, nil
}

func (s *stubProvider) YearData(year int, country string) (string, error) {
	return "", errors.New("no year data")
}

func (s *stubProvider) DayCode(year, month, day int, country string) (holiday.Code, error) {
	data, err := s.MonthData(year, month, country)
	if err != nil {
		return holiday.CodeUnknown, err
	}
	return holiday.ParseCode(data[day-1]), nil
}

func (s *stubProvider) CountryFromLocale() string { return "RU" }

func testContext() calendar.Context {
	return calendar.Context{
		Reform:       calendar.ReformYear(calendar.ReformYearGB),
		WeekStart:    calendar.Monday,
		GutterWidth:  calendar.GutterWidthRegular,
		Columns:      calendar.ColumnMode{Count: 3},
		YearInHeader: true,
	}
}

func newTestRenderer(ctx calendar.Context, svc *holiday.Service) (*Renderer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(ctx, svc, "en_US", buf, zap.NewNop()), buf
}

func outputLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"2024", 10, "   2024   "},
		{"January 2024", 20, "    January 2024    "},
		{"January 2024", 23, "      January 2024     "}, // odd pad goes left
		{"wide", 4, "wide"},
		{"overflow", 3, "overflow"},
		{"Май 2024", 12, "  Май 2024  "},
	}

	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"12 13 14", 8},
		{colorRed + "13" + colorReset, 2},
		{" 1 " + colorReverse + " 2" + colorReset + "  3", 8},
		{"Сб Вс", 5},
		{"月", 2},
	}

	for _, tt := range tests {
		if got := visibleWidth(tt.s); got != tt.want {
			t.Errorf("visibleWidth(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestMonth_January2024(t *testing.T) {
	r, buf := newTestRenderer(testContext(), nil)
	r.Month(2024, 1)

	want := []string{
		"    January 2024    ",
		"Mo Tu We Th Fr Sa Su",
		" 1  2  3  4  5  6  7",
		" 8  9 10 11 12 13 14",
		"15 16 17 18 19 20 21",
		"22 23 24 25 26 27 28",
		"29 30 31            ",
		"                    ",
	}

	got := outputLines(buf)
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMonth_ReformGapSeptember1752(t *testing.T) {
	r, buf := newTestRenderer(testContext(), nil)
	r.Month(1752, 9)

	got := outputLines(buf)
	if got[2] != "             1  2   " {
		t.Errorf("first week = %q", got[2])
	}
	if got[3] != "                    " {
		t.Errorf("removed week = %q, want blank", got[3])
	}
	if got[4] != "         14 15 16 17" {
		t.Errorf("resume week = %q", got[4])
	}
}

func TestMonth_WeekNumbers(t *testing.T) {
	ctx := testContext()
	ctx.WeekNumbers = true
	ctx.WeekType = calendar.WeekISO
	r, buf := newTestRenderer(ctx, nil)
	r.Month(2024, 1)

	got := outputLines(buf)
	if got[0] != "      January 2024     " {
		t.Errorf("header = %q", got[0])
	}
	if got[1] != "   Mo Tu We Th Fr Sa Su" {
		t.Errorf("weekday row = %q", got[1])
	}
	if got[2] != " 1  1  2  3  4  5  6  7" {
		t.Errorf("first week = %q", got[2])
	}
	if got[7] != strings.Repeat(" ", 23) {
		t.Errorf("empty week = %q, want 23 spaces", got[7])
	}
}

func TestMonth_DayOfYearNumbers(t *testing.T) {
	ctx := testContext()
	ctx.Julian = true
	r, buf := newTestRenderer(ctx, nil)
	r.Month(2024, 2)

	got := outputLines(buf)
	if got[1] != " Mo  Tu  We  Th  Fr  Sa   Su" {
		t.Errorf("weekday row = %q", got[1])
	}
	// February 2024 starts on Thursday at ordinal 32
	if want := strings.Repeat(" ", 13) + "32  33  34  35"; got[2] != want {
		t.Errorf("first week = %q, want %q", got[2], want)
	}
}

func TestMonth_ColorPrecedence(t *testing.T) {
	// January 2024: day 10 shortened, day 17 public holiday
	data := []byte(strings.Repeat("0", 31))
	data[9] = '2'
	data[16] = '8'
	provider := &stubProvider{months: map[string]string{"2024-1": string(data)}}
	svc := holiday.NewService(func() holiday.Provider { return provider }, "", zap.NewNop())

	ctx := testContext()
	ctx.Color = true
	ctx.Holidays = true
	ctx.Today = time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)

	r, buf := newTestRenderer(ctx, svc)
	r.Month(2024, 1)
	out := buf.String()

	checks := []struct {
		name string
		want string
	}{
		{"today reversed", colorReverse + "15" + colorReset},
		{"shortened teal", colorTeal + "10" + colorReset},
		{"public holiday red", colorRed + "17" + colorReset},
		{"weekend red", colorRed + " 6" + colorReset},
		{"teal header", colorTeal + "    January 2024    " + colorReset},
	}
	for _, c := range checks {
		if !strings.Contains(out, c.want) {
			t.Errorf("%s: output missing %q", c.name, c.want)
		}
	}

	// a plain working weekday stays uncolored
	if !strings.Contains(out, " 8  9 ") {
		t.Error("working days 8 and 9 should render without color")
	}
}

func TestMonth_NoColorWithoutTerminal(t *testing.T) {
	provider := &stubProvider{months: map[string]string{"2024-1": strings.Repeat("8", 31)}}
	svc := holiday.NewService(func() holiday.Provider { return provider }, "", zap.NewNop())

	ctx := testContext()
	ctx.Holidays = true
	r, buf := newTestRenderer(ctx, svc)
	r.Month(2024, 1)

	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("output contains escape sequences with color disabled")
	}
}

func TestMonth_Vertical(t *testing.T) {
	ctx := testContext()
	ctx.Vertical = true
	ctx.GutterWidth = 1
	r, buf := newTestRenderer(ctx, nil)
	r.Month(2024, 1)

	got := outputLines(buf)
	if got[0] != "    January 2024"+strings.Repeat(" ", 7) {
		t.Errorf("header = %q", got[0])
	}
	if got[1] != "Mo  1  8 15 22 29   " {
		t.Errorf("Monday row = %q", got[1])
	}
	if got[7] != "Su  7 14 21 28      " {
		t.Errorf("Sunday row = %q", got[7])
	}
	if len(got) != 8 {
		t.Errorf("got %d lines, want 8", len(got))
	}
}

func TestThreeMonths(t *testing.T) {
	r, buf := newTestRenderer(testContext(), nil)
	r.ThreeMonths(2024, 1)

	got := outputLines(buf)
	if len(got) != 8 {
		t.Fatalf("got %d lines, want 8", len(got))
	}
	for _, name := range []string{"December 2023", "January 2024", "February 2024"} {
		if !strings.Contains(got[0], name) {
			t.Errorf("header row missing %q: %q", name, got[0])
		}
	}

	wantWidth := 3*20 + 2*calendar.GutterWidthRegular
	for i, line := range got {
		if w := visibleWidth(line); w != wantWidth {
			t.Errorf("line %d width = %d, want %d", i, w, wantWidth)
		}
	}
}

func TestThreeMonths_YearRollover(t *testing.T) {
	r, buf := newTestRenderer(testContext(), nil)
	r.ThreeMonths(2024, 12)

	got := outputLines(buf)
	for _, name := range []string{"November 2024", "December 2024", "January 2025"} {
		if !strings.Contains(got[0], name) {
			t.Errorf("header row missing %q: %q", name, got[0])
		}
	}
}

func TestYear(t *testing.T) {
	r, buf := newTestRenderer(testContext(), nil)
	r.Year(2024)

	got := outputLines(buf)
	if got[0] != strings.Repeat(" ", 31)+"2024"+strings.Repeat(" ", 31) {
		t.Errorf("banner = %q", got[0])
	}
	if got[1] != "" {
		t.Errorf("line after banner = %q, want blank", got[1])
	}
	// banner, blank line, four rows of eight lines
	if len(got) != 2+4*8 {
		t.Fatalf("got %d lines, want %d", len(got), 2+4*8)
	}

	// per-month headers carry no year under the banner
	if !strings.Contains(got[2], "January") || strings.Contains(got[2], "2024") {
		t.Errorf("first header row = %q, want month names without year", got[2])
	}

	wantWidth := 3*20 + 2*calendar.GutterWidthYear
	if w := visibleWidth(got[2]); w != wantWidth {
		t.Errorf("header row width = %d, want %d", w, wantWidth)
	}
}

func TestTwelveMonths(t *testing.T) {
	r, buf := newTestRenderer(testContext(), nil)
	r.TwelveMonths(2024, 11)

	got := outputLines(buf)
	if len(got) != 4*8 {
		t.Fatalf("got %d lines, want %d", len(got), 4*8)
	}
	if !strings.Contains(got[0], "November 2024") || !strings.Contains(got[0], "January 2025") {
		t.Errorf("first header row = %q", got[0])
	}
	if !strings.Contains(got[3*8], "August 2025") || !strings.Contains(got[3*8], "October 2025") {
		t.Errorf("last header row = %q", got[3*8])
	}
}

func TestMonthsCount_SpanCentersRange(t *testing.T) {
	ctx := testContext()
	ctx.Span = true
	r, buf := newTestRenderer(ctx, nil)
	r.MonthsCount(2024, 1, 3)

	got := outputLines(buf)
	for _, name := range []string{"December 2023", "January 2024", "February 2024"} {
		if !strings.Contains(got[0], name) {
			t.Errorf("header row missing %q: %q", name, got[0])
		}
	}
}

func TestMonthsCount_EvenSpanLeansForward(t *testing.T) {
	ctx := testContext()
	ctx.Span = true
	r, buf := newTestRenderer(ctx, nil)
	r.MonthsCount(2024, 1, 4)

	got := outputLines(buf)
	// four months centered on January: December through March
	if !strings.Contains(got[0], "December 2023") {
		t.Errorf("first header row = %q, want December 2023 first", got[0])
	}
	if !strings.Contains(got[8], "March 2024") {
		t.Errorf("second header row = %q, want March 2024", got[8])
	}
}

func TestMonthsCount_WithoutSpanStartsAtMonth(t *testing.T) {
	r, buf := newTestRenderer(testContext(), nil)
	r.MonthsCount(2024, 1, 2)

	got := outputLines(buf)
	if strings.Contains(got[0], "December") {
		t.Errorf("header row = %q, must start at January", got[0])
	}
	if !strings.Contains(got[0], "January 2024") || !strings.Contains(got[0], "February 2024") {
		t.Errorf("header row = %q", got[0])
	}
}

func TestMonthsPerRow(t *testing.T) {
	restore := terminalWidth
	defer func() { terminalWidth = restore }()

	ctx := testContext()
	ctx.Columns = calendar.ColumnMode{Count: 2}
	r, _ := newTestRenderer(ctx, nil)
	if got := r.monthsPerRow(&ctx); got != 2 {
		t.Errorf("fixed columns = %d, want 2", got)
	}

	ctx.Columns = calendar.ColumnMode{Auto: true}
	tests := []struct {
		name  string
		width int
		ok    bool
		want  int
	}{
		{"Narrow", 30, true, 1},
		{"Two fit", 45, true, 2},
		{"Wide clamps to three", 300, true, 3},
		{"Tiny clamps to one", 10, true, 1},
		{"Unknown defaults to three", 0, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terminalWidth = func() (int, bool) { return tt.width, tt.ok }
			if got := r.monthsPerRow(&ctx); got != tt.want {
				t.Errorf("monthsPerRow() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		year, month         int
		wantYear, wantMonth int
	}{
		{2024, 13, 2025, 1},
		{2024, 0, 2023, 12},
		{2024, -11, 2023, 1},
		{2024, 6, 2024, 6},
		{2024, 25, 2026, 1},
	}

	for _, tt := range tests {
		y, m := normalizeMonth(tt.year, tt.month)
		if y != tt.wantYear || m != tt.wantMonth {
			t.Errorf("normalizeMonth(%d, %d) = (%d, %d), want (%d, %d)",
				tt.year, tt.month, y, m, tt.wantYear, tt.wantMonth)
		}
	}
}
