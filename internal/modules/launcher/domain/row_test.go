package domain_test

import (
	"fmt"
	"strings"
	"testing"

	"flatpick/internal/modules/launcher/domain"
)

func TestFormatColumnsPadsEveryField(t *testing.T) {
	t.Parallel()
	got := domain.FormatColumns("Calculator org.gnome.Calculator 1.0 stable flathub system")
	want := fmt.Sprintf("%-20s %-40s %-10s %-10s %-20s %-15s",
		"Calculator", "org.gnome.Calculator", "1.0", "stable", "flathub", "system")
	if got != want {
		t.Fatalf("unexpected row:\n got %q\nwant %q", got, want)
	}
	if len(got) != 20+40+10+10+20+15+5 {
		t.Fatalf("unexpected row width %d", len(got))
	}
}

func TestFormatColumnsPassesShortLinesThrough(t *testing.T) {
	t.Parallel()
	cases := []string{
		"",
		"   ",
		"Name",
		"Calculator org.gnome.Calculator 1.0 stable flathub",
		"  odd   spacing kept  ",
	}
	for _, line := range cases {
		if got := domain.FormatColumns(line); got != line {
			t.Fatalf("expected %q unchanged, got %q", line, got)
		}
	}
}

func TestFormatColumnsJoinsMultiWordNames(t *testing.T) {
	t.Parallel()
	got := domain.FormatColumns("Web   Browser org.example.Web 2.0 stable flathub user")
	if !strings.HasPrefix(got, fmt.Sprintf("%-20s ", "Web Browser")) {
		t.Fatalf("expected joined name field, got %q", got)
	}
}

func TestFormatColumnsTruncatesLongFields(t *testing.T) {
	t.Parallel()
	name := "Very Long Application Name"
	id := "org.example.AnExtremelyLongApplicationIdentifier"
	version := "1.2.3-beta.45678"
	line := strings.Join([]string{name, id, version, "stable", "flathub", "system"}, " ")

	rec, ok := domain.SplitRecord(line)
	if !ok {
		t.Fatalf("expected record to parse")
	}
	if rec.Name != name || rec.ID != id || rec.Version != version {
		t.Fatalf("unexpected record: %+v", rec)
	}

	got := domain.FormatColumns(line)
	want := fmt.Sprintf("%-20s %-40s %-10s %-10s %-20s %-15s",
		"Very Long Applica...", id[:31]+"...", "1.2.3-b...", "stable", "flathub", "system")
	if got != want {
		t.Fatalf("unexpected truncated row:\n got %q\nwant %q", got, want)
	}
}

func TestTruncateBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{name: "at cap", value: strings.Repeat("a", 20), limit: 20, want: strings.Repeat("a", 20)},
		{name: "one over cap", value: strings.Repeat("a", 21), limit: 20, want: strings.Repeat("a", 17) + "..."},
		{name: "identifier cap", value: strings.Repeat("b", 35), limit: 34, want: strings.Repeat("b", 31) + "..."},
		{name: "no cap", value: strings.Repeat("c", 50), limit: 0, want: strings.Repeat("c", 50)},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := domain.Truncate(tc.value, tc.limit)
			if got != tc.want {
				t.Fatalf("truncate(%d) = %q, want %q", tc.limit, got, tc.want)
			}
			if tc.limit > 0 && len(got) > tc.limit {
				t.Fatalf("truncated value longer than cap: %d", len(got))
			}
		})
	}
}

func TestHeaderMatchesColumnWidths(t *testing.T) {
	t.Parallel()
	header := domain.Header()
	if !strings.HasPrefix(header, "Name ") || !strings.Contains(header, "AppID") || !strings.Contains(header, "Installation") {
		t.Fatalf("unexpected header %q", header)
	}
	row := domain.FormatColumns("Calculator org.gnome.Calculator 1.0 stable flathub system")
	if len(header) != len(row) {
		t.Fatalf("header width %d differs from row width %d", len(header), len(row))
	}
	if strings.Index(header, "AppID") != strings.Index(row, "org.gnome.Calculator") {
		t.Fatalf("identifier column misaligned")
	}
}

func TestParseRecordKeepsIdentifier(t *testing.T) {
	t.Parallel()
	cases := []struct {
		line string
		want string
	}{
		{line: "Calculator org.gnome.Calculator 1.0 stable flathub system", want: "org.gnome.Calculator"},
		{line: "GNU Image Manipulation Program org.gimp.GIMP 2.10.38 stable flathub system", want: "org.gimp.GIMP"},
		{line: "X org.example.AnExtremelyLongApplicationIdentifier 1 stable flathub user", want: "org.example.AnExtremelyLongApplicationIdentifier"},
	}
	for _, tc := range cases {
		entry := domain.ParseRecord(tc.line)
		if entry.ID != tc.want {
			t.Fatalf("ParseRecord(%q).ID = %q, want %q", tc.line, entry.ID, tc.want)
		}
		if entry.Display != domain.FormatColumns(tc.line) {
			t.Fatalf("display row differs from FormatColumns for %q", tc.line)
		}
	}
}

func TestParseRecordShortLineFallsBackToPosition(t *testing.T) {
	t.Parallel()
	entry := domain.ParseRecord("only two")
	if entry.Display != "only two" || entry.ID != "two" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	empty := domain.ParseRecord("single")
	if empty.ID != "" {
		t.Fatalf("expected empty identifier, got %q", empty.ID)
	}
}
