// Package ui - Terminal user interface
// Styled CLI output: headers, tables and summary boxes.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Palette colors (ANSI 16)
const (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Blue   = lipgloss.Color("4")
	Cyan   = lipgloss.Color("6")
	Gray   = lipgloss.Color("8")
)

// Writer is the UI output destination
type Writer struct {
	out      io.Writer
	noColor  bool
	renderer *lipgloss.Renderer
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:      out,
		noColor:  noColor,
		renderer: lipgloss.NewRenderer(out),
	}
}

func (w *Writer) style() lipgloss.Style {
	return w.renderer.NewStyle()
}

// styled renders text with s unless color is disabled
func (w *Writer) styled(s lipgloss.Style, text string) string {
	if w.noColor {
		return text
	}
	return s.Render(text)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, w.styled(w.style().Bold(true).Foreground(Cyan), "━━━ "+title+" ━━━"))
	fmt.Fprintln(w.out)
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	fmt.Fprintln(w.out, w.styled(w.style().Bold(true), "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	fmt.Fprintln(w.out, w.styled(w.style().Foreground(Green), "✓ ")+fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	fmt.Fprintln(w.out, w.styled(w.style().Foreground(Yellow), "⚠ ")+fmt.Sprintf(format, args...))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	fmt.Fprintln(w.out, w.styled(w.style().Foreground(Red), "✗ ")+fmt.Sprintf(format, args...))
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	fmt.Fprintln(w.out, w.styled(w.style().Foreground(Blue), "ℹ ")+fmt.Sprintf(format, args...))
}

// Table renders a table
type Table struct {
	w          *Writer
	headers    []string
	rows       [][]string
	alignRight map[int]bool
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	return &Table{
		w:          w,
		headers:    headers,
		rows:       [][]string{},
		alignRight: make(map[int]bool),
	}
}

// AlignRight right-aligns the given columns (numbers)
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		t.alignRight[c] = true
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// String returns the rendered table
func (t *Table) String() string {
	header := t.w.style().Bold(true).Padding(0, 1)
	cell := t.w.style().Padding(0, 1)
	if !t.w.noColor {
		header = header.Foreground(Cyan)
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(t.w.style().Foreground(Gray)).
		Headers(t.headers...).
		Rows(t.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell
			if row == table.HeaderRow {
				s = header
			}
			if t.alignRight[col] {
				s = s.Align(lipgloss.Right)
			}
			return s
		})
	return tbl.String()
}

// Markdown returns the table as a GitHub-flavored markdown table
func (t *Table) Markdown() string {
	escape := strings.NewReplacer("|", `\|`, "\n", " ")
	headers := make([]string, len(t.headers))
	for i, h := range t.headers {
		headers[i] = escape.Replace(h)
	}
	rows := make([][]string, len(t.rows))
	for i, r := range t.rows {
		rows[i] = make([]string, len(r))
		for j, c := range r {
			rows[i][j] = escape.Replace(c)
		}
	}

	cell := t.w.style().Padding(0, 1)
	tbl := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row != table.HeaderRow && t.alignRight[col] {
				return cell.Align(lipgloss.Right)
			}
			return cell
		})
	return tbl.String()
}

// Render prints the table
func (t *Table) Render() {
	fmt.Fprintln(t.w.out, t.String())
}

// SummaryBox renders highlighted key figures in a bordered box
type SummaryBox struct {
	w     *Writer
	Title string
	Lines []SummaryLine
	Note  string
}

// SummaryLine is a label/value pair in a SummaryBox
type SummaryLine struct {
	Label string
	Value string
}

// NewSummaryBox creates a summary box
func (w *Writer) NewSummaryBox(title string) *SummaryBox {
	return &SummaryBox{w: w, Title: title}
}

// Add appends a line to the box
func (s *SummaryBox) Add(label, value string) *SummaryBox {
	s.Lines = append(s.Lines, SummaryLine{Label: label, Value: value})
	return s
}

// Render prints the summary box
func (s *SummaryBox) Render() {
	width := 0
	for _, l := range s.Lines {
		if lw := lipgloss.Width(l.Label); lw > width {
			width = lw
		}
	}

	var b strings.Builder
	if s.Title != "" {
		b.WriteString(s.w.styled(s.w.style().Bold(true), s.Title))
		b.WriteString("\n")
	}
	for i, l := range s.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		pad := strings.Repeat(" ", width-lipgloss.Width(l.Label))
		b.WriteString(l.Label + ":" + pad + " " + s.w.styled(s.w.style().Bold(true).Foreground(Green), l.Value))
	}
	if s.Note != "" {
		b.WriteString("\n\n")
		b.WriteString(s.w.styled(s.w.style().Faint(true), s.Note))
	}

	box := s.w.style().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if !s.w.noColor {
		box = box.BorderForeground(Gray)
	}
	fmt.Fprintln(s.w.out, box.Render(b.String()))
}
