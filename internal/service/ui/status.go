package ui

import (
	"fmt"
	"io"
	"strings"
)

// Status prints one-line, icon-prefixed progress messages for the operator.
// Styling is applied only to the icon so the text stays greppable.
type Status struct {
	w io.Writer
}

func NewStatus(w io.Writer) *Status {
	return &Status{w: w}
}

func (s *Status) Header(title string) {
	fmt.Fprintln(s.w, TitleStyle.Render(title))
	fmt.Fprintln(s.w, strings.Repeat("=", 40))
}

func (s *Status) Ok(format string, args ...any) {
	s.line(OkStyle.Render("✅"), format, args...)
}

func (s *Status) Fail(format string, args ...any) {
	s.line(ErrorStyle.Render("❌"), format, args...)
}

func (s *Status) Warn(format string, args ...any) {
	s.line(WarnStyle.Render("⚠️ "), format, args...)
}

func (s *Status) Step(icon, format string, args ...any) {
	s.line(InfoStyle.Render(icon), format, args...)
}

// Item prints an indented bullet under the previous line.
func (s *Status) Item(format string, args ...any) {
	fmt.Fprintf(s.w, "   - "+format+"\n", args...)
}

func (s *Status) Plain(format string, args ...any) {
	fmt.Fprintf(s.w, format+"\n", args...)
}

func (s *Status) line(icon, format string, args ...any) {
	fmt.Fprintf(s.w, "%s %s\n", icon, fmt.Sprintf(format, args...))
}
