// ABOUTME: Bubbletea model for the audition TUI
// ABOUTME: Mirrors playback status and turns key presses into playback commands
package ui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tracklab/audition/internal/audio"
	"github.com/tracklab/audition/internal/meta"
	"github.com/tracklab/audition/internal/playback"
	"github.com/tracklab/audition/internal/version"
)

// status is the controller-side mirror of playback state. The core
// trusts whatever commands arrive; keeping this mirror consistent with
// the commands sent is the model's job.
type status int

const (
	statusStopped status = iota
	statusPlaying
	statusPaused
)

func (s status) String() string {
	switch s {
	case statusPlaying:
		return "Playing"
	case statusPaused:
		return "Paused"
	}
	return "Stopped"
}

// session is the slice of the playback handle the model drives
type session interface {
	Send(playback.Command) error
	Elapsed() time.Duration
}

// RepaintMsg asks the TUI to re-render. The playback worker emits one
// per polling tick and one per applied Stop; re-rendering re-reads the
// elapsed time.
type RepaintMsg struct{}

// TrackMsg delivers a decoded track and its metadata to the model
type TrackMsg struct {
	Info   *meta.TrackInfo
	Source *audio.Source
}

// SessionMsg hands the model its playback session once spawned
type SessionMsg struct {
	Session session
}

// Model represents the TUI state
type Model struct {
	session session
	track   *meta.TrackInfo
	source  *audio.Source
	status  status
	notice  string

	width  int
	height int
}

// NewModel creates the initial TUI model
func NewModel() Model {
	return Model{status: statusStopped}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case SessionMsg:
		m.session = msg.Session
	case TrackMsg:
		m.track = msg.Info
		m.source = msg.Source
	case RepaintMsg:
		// Nothing to mutate: rendering re-reads the elapsed cell
	}

	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		return m.togglePlayback(), nil
	case "s":
		return m.stopPlayback(), nil
	}

	return m, nil
}

// togglePlayback drives the stopped -> playing -> paused cycle
func (m Model) togglePlayback() Model {
	if m.session == nil || m.source == nil {
		return m
	}

	switch m.status {
	case statusStopped:
		if m.send(playback.Command{Kind: playback.KindPlay, Source: m.source}) {
			m.status = statusPlaying
		}
	case statusPlaying:
		if m.send(playback.Command{Kind: playback.KindPause}) {
			m.status = statusPaused
		}
	case statusPaused:
		if m.send(playback.Command{Kind: playback.KindContinue}) {
			m.status = statusPlaying
		}
	}

	return m
}

// stopPlayback sends Stop and mirrors the stopped status
func (m Model) stopPlayback() Model {
	if m.session == nil {
		return m
	}
	if m.send(playback.Command{Kind: playback.KindStop}) {
		m.status = statusStopped
	}
	return m
}

// send issues a command and surfaces a one-time notice if the worker
// is gone
func (m *Model) send(cmd playback.Command) bool {
	err := m.session.Send(cmd)
	if err == nil {
		return true
	}
	if errors.Is(err, playback.ErrClosed) && m.notice == "" {
		m.notice = "Playback unavailable: audio worker has exited"
	}
	return false
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := m.renderHeader()
	s += m.renderTrack()
	s += m.renderProgress()
	s += m.renderNotice()
	s += m.renderHelp()

	return s
}

// renderHeader renders the product banner
func (m Model) renderHeader() string {
	return fmt.Sprintf(`┌─ %s %s ─────────────────────────────────────┐
`, version.Product, version.Version)
}

// renderTrack renders the loaded track and its metadata
func (m Model) renderTrack() string {
	if m.track == nil {
		return "│ No track loaded                                      │\n"
	}

	s := fmt.Sprintf("│ Track:  %-44s │\n", truncate(m.track.Title, 44))
	if m.track.Artist != "" {
		s += fmt.Sprintf("│ Artist: %-44s │\n", truncate(m.track.Artist, 44))
	}
	if m.track.Album != "" {
		s += fmt.Sprintf("│ Album:  %-44s │\n", truncate(m.track.Album, 44))
	}
	if m.source != nil {
		f := m.source.Format()
		s += fmt.Sprintf("│ Format: %dHz %s %d-bit%-24s │\n",
			f.SampleRate, channelName(f.Channels), f.BitDepth, "")
	}

	return s
}

// renderProgress renders elapsed time against the track duration
func (m Model) renderProgress() string {
	if m.session == nil || m.source == nil {
		return "│                                                      │\n"
	}

	elapsed := m.session.Elapsed()
	total := m.source.Duration()

	bar := renderBar(int(elapsed.Milliseconds()), int(total.Milliseconds()), 24)

	return fmt.Sprintf("│                                                      │\n"+
		"│ [%s] %s / %s%-8s │\n"+
		"│ Status: %-44s │\n",
		bar, clock(elapsed), clock(total), "", m.status)
}

// renderNotice renders the one-time failure notice, if any
func (m Model) renderNotice() string {
	if m.notice == "" {
		return ""
	}
	return fmt.Sprintf("│ ! %-50s │\n", truncate(m.notice, 50))
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `│ space:Play/Pause  s:Stop  q:Quit                     │
└──────────────────────────────────────────────────────┘
`
}

// clock formats a duration as m:ss
func clock(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// renderBar renders a filled progress bar
func renderBar(value, max, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := (value * width) / max
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func channelName(channels int) string {
	if channels == 1 {
		return "Mono"
	}
	return "Stereo"
}
