// ABOUTME: TUI initialization and repaint plumbing
// ABOUTME: Wraps the bubbletea program and adapts it to the worker's repaint capability
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram builds the TUI program; the caller runs it
func NewProgram() *tea.Program {
	return tea.NewProgram(NewModel(), tea.WithAltScreen())
}

// Repainter adapts the program to the playback worker's repaint
// capability: a repaint request becomes a message, and rendering the
// model re-reads the elapsed time.
type Repainter struct {
	prog *tea.Program
}

// NewRepainter wraps a running program
func NewRepainter(prog *tea.Program) *Repainter {
	return &Repainter{prog: prog}
}

// RequestRepaint asks the TUI to redraw soon
func (r *Repainter) RequestRepaint() {
	r.prog.Send(RepaintMsg{})
}
