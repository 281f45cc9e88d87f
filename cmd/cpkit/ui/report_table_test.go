package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestReportTable_Render(t *testing.T) {
	table := NewReportTable("battery.yaml", "Case", "Result")
	table.AddRow("coloring-basics", "PASS")
	table.AddRow("mex-basics", "FAIL")

	view := table.Render(NewStyles(DarkTheme()))
	t.Logf("View:\n%q", view)

	if !strings.Contains(view, "battery.yaml") {
		t.Error("View missing caption")
	}
	if !strings.Contains(view, "coloring-basics") || !strings.Contains(view, "FAIL") {
		t.Error("View missing cell content")
	}
	if !strings.Contains(view, "---") {
		t.Error("View missing header rule")
	}
}

func TestReportTable_PlainLayout(t *testing.T) {
	table := NewReportTable("", "Case", "ms")
	table.AddRow("a", "12")

	want := " Case | ms \n" +
		"-----------\n" +
		" a    | 12 \n"
	if got := table.Render(PlainStyles()); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestReportTable_Empty(t *testing.T) {
	table := NewReportTable("Nothing", "A")
	if view := table.Render(PlainStyles()); view != "" {
		t.Errorf("expected empty view, got %q", view)
	}
}

func TestReportTable_Cells(t *testing.T) {
	table := NewReportTable("", "A", "B")
	table.AddRow("one", "two", "overflow")
	table.AddRow("short")

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	view := table.Render(PlainStyles())
	if strings.Contains(view, "overflow") {
		t.Errorf("cells beyond headers should be dropped: %q", view)
	}
	if !strings.Contains(view, "short") {
		t.Errorf("short row missing: %q", view)
	}
}

func TestReportTable_LimitTruncates(t *testing.T) {
	detail := "output mismatch: want " + strings.Repeat("YES ", 40)
	table := NewReportTable("", "Case", "Detail").Limit(1, 20)
	table.AddRow("long", detail)

	view := table.Render(PlainStyles())
	if strings.Contains(view, detail) {
		t.Fatalf("detail not truncated: %q", view)
	}
	if !strings.Contains(view, "…") {
		t.Errorf("truncated cell should end in an ellipsis: %q", view)
	}
	for _, line := range strings.Split(strings.TrimRight(view, "\n"), "\n") {
		if w := lipgloss.Width(line); w > len(" long ")+1+20+2 {
			t.Errorf("line wider than the limit allows (%d): %q", w, line)
		}
	}
}

func TestStyles_Verdict(t *testing.T) {
	plain := PlainStyles()
	if got := plain.Verdict(true); got != "PASS" {
		t.Errorf("Verdict(true) = %q", got)
	}
	if got := plain.Verdict(false); got != "FAIL" {
		t.Errorf("Verdict(false) = %q", got)
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("light").IsDark {
		t.Error("light should not be dark")
	}
	if !ThemeByName("anything").IsDark {
		t.Error("unknown themes default to dark")
	}
}
