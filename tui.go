package scaffold

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Reporter receives progress from a scaffold run. Only actual creations and
// writes are reported.
type Reporter interface {
	DirCreated(path string)
	FileWritten(path string)
	Println(line string)
}

type nopReporter struct{}

func (nopReporter) DirCreated(string) {}
func (nopReporter) FileWritten(string) {}
func (nopReporter) Println(string) {}

type styles struct {
	header   lipgloss.Style
	created  lipgloss.Style
	success  lipgloss.Style
	modified lipgloss.Style
	missing  lipgloss.Style
	errorS   lipgloss.Style
	faint    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		created:  r.NewStyle().Foreground(lipgloss.Color("81")),
		success:  r.NewStyle().Foreground(lipgloss.Color("78")),
		modified: r.NewStyle().Foreground(lipgloss.Color("212")),
		missing:  r.NewStyle().Foreground(lipgloss.Color("204")),
		errorS:   r.NewStyle().Foreground(lipgloss.Color("197")),
		faint:    r.NewStyle().Faint(true),
	}
}

// Console writes progress lines to w. Colour is chosen from w itself, so
// pipes and buffers get plain text.
type Console struct {
	w      io.Writer
	r      *lipgloss.Renderer
	styles styles
}

func NewConsole(w io.Writer, noColor bool) *Console {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{w: w, r: r, styles: newStyles(r)}
}

func (c *Console) DirCreated(path string) {
	fmt.Fprintln(c.w, c.styles.created.Render("Created directory: "+path))
}

func (c *Console) FileWritten(path string) {
	fmt.Fprintln(c.w, c.styles.success.Render("Created file: "+path))
}

func (c *Console) Println(line string) {
	fmt.Fprintln(c.w, line)
}

func (c *Console) Print(s string) {
	fmt.Fprint(c.w, s)
}

func formatSize(n int) string {
	if n == 1 {
		return "1 byte"
	}
	return fmt.Sprintf("%d bytes", n)
}

func (c *Console) FormatSummary(s Summary) string {
	var b strings.Builder
	if s.Message != "" {
		b.WriteString(c.styles.header.Render(s.Message) + "\n\n")
	}

	renderList := func(title string, style lipgloss.Style, list []string) {
		if len(list) == 0 {
			return
		}
		b.WriteString(style.Render(title) + "\n")
		for _, f := range list {
			fmt.Fprintf(&b, "  %s\n", f)
		}
	}

	renderList("Created:", c.styles.created, s.Created)
	renderList("Written:", c.styles.success, s.Written)
	renderList("Matched:", c.styles.success, s.Matched)
	renderList("Modified:", c.styles.modified, s.Modified)
	renderList("Missing:", c.styles.missing, s.Missing)
	renderList("Failed:", c.styles.errorS, s.Failed)

	return b.String()
}

func (c *Console) FormatManifest(m *Manifest) string {
	var b strings.Builder
	b.WriteString(c.styles.header.Render("Manifest: "+m.Name) + "\n")
	for _, e := range m.Entries {
		if e.Kind == DirEntry {
			fmt.Fprintf(&b, "  %-4s %s\n", e.Kind, e.Path)
			continue
		}
		fmt.Fprintf(&b, "  %-4s %s %s\n", e.Kind, e.Path, c.styles.faint.Render("("+formatSize(len(e.Content))+")"))
	}
	return b.String()
}

func (c *Console) FormatPlan(lines []string) string {
	if len(lines) == 0 {
		return c.styles.header.Render("Nothing to do") + "\n"
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
	return b.String()
}
