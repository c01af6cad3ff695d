package domain

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks a truncated field.
const Ellipsis = "..."

// recordTail is the number of trailing inventory tokens that are not part of the name.
const recordTail = 5

// Column describes one fixed-width field of a display row.
type Column struct {
	Title string
	Width int
	// Cap is the longest value shown before truncation; zero means never truncate.
	Cap int
}

// Columns in display order: name, identifier, version, branch, origin, installation.
var Columns = []Column{
	{Title: "Name", Width: 20, Cap: 20},
	{Title: "AppID", Width: 40, Cap: 34},
	{Title: "Version", Width: 10, Cap: 10},
	{Title: "Branch", Width: 10},
	{Title: "Origin", Width: 20},
	{Title: "Installation", Width: 15},
}

// East Asian ambiguous runes count as one cell regardless of locale.
var cells = &runewidth.Condition{StrictEmojiNeutral: true}

// Entry pairs a display row with the identifier it was formatted from.
type Entry struct {
	Display string
	ID      string
}

// Record is one parsed inventory line.
type Record struct {
	Name         string
	ID           string
	Version      string
	Branch       string
	Origin       string
	Installation string
}

// SplitRecord parses an inventory line. ok is false when the line has fewer than six tokens.
func SplitRecord(line string) (Record, bool) {
	parts := strings.Fields(line)
	if len(parts) < recordTail+1 {
		return Record{}, false
	}
	n := len(parts)
	return Record{
		Name:         strings.Join(parts[:n-recordTail], " "),
		ID:           parts[n-5],
		Version:      parts[n-4],
		Branch:       parts[n-3],
		Origin:       parts[n-2],
		Installation: parts[n-1],
	}, true
}

func (r Record) fields() []string {
	return []string{r.Name, r.ID, r.Version, r.Branch, r.Origin, r.Installation}
}

// Row renders the record as a fixed-width display row.
func (r Record) Row() string {
	return renderRow(r.fields())
}

// FormatColumns turns a raw inventory line into a display row. Lines with fewer
// than six tokens are returned unchanged.
func FormatColumns(line string) string {
	rec, ok := SplitRecord(line)
	if !ok {
		return line
	}
	return rec.Row()
}

// ParseRecord formats a raw inventory line and keeps its identifier next to the row.
func ParseRecord(line string) Entry {
	rec, ok := SplitRecord(line)
	if !ok {
		return Entry{Display: line, ID: ExtractIdentifier(line)}
	}
	return Entry{Display: rec.Row(), ID: rec.ID}
}

// Header is the column title line shown above the rows.
func Header() string {
	titles := make([]string, len(Columns))
	for i, col := range Columns {
		titles[i] = col.Title
	}
	return renderRow(titles)
}

// Truncate shortens value to limit cells, replacing the overflow with Ellipsis.
func Truncate(value string, limit int) string {
	if limit <= 0 {
		return value
	}
	return cells.Truncate(value, limit, Ellipsis)
}

// Pad left-aligns value in a field of width cells.
func Pad(value string, width int) string {
	return cells.FillRight(value, width)
}

func renderRow(values []string) string {
	out := make([]string, len(Columns))
	for i, col := range Columns {
		out[i] = Pad(Truncate(values[i], col.Cap), col.Width)
	}
	return strings.Join(out, " ")
}
