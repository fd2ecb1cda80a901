// ABOUTME: Tests for the TUI model
// ABOUTME: Verifies the status mirror, command wiring, and closed-worker notice
package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tracklab/audition/internal/audio"
	"github.com/tracklab/audition/internal/meta"
	"github.com/tracklab/audition/internal/playback"
)

// fakeSession records commands instead of driving a worker
type fakeSession struct {
	sent    []playback.Command
	sendErr error
	elapsed time.Duration
}

func (s *fakeSession) Send(cmd playback.Command) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, cmd)
	return nil
}

func (s *fakeSession) Elapsed() time.Duration {
	return s.elapsed
}

func loadedModel(sess session) Model {
	m := NewModel()
	m.session = sess
	m.track = &meta.TrackInfo{Title: "Test Track", Artist: "Tester"}
	m.source = audio.NewSource(audio.Canonical, make([]byte, audio.Canonical.BytesPerSecond()))
	m.width = 80
	m.height = 24
	return m
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("update returned unexpected model type %T", next)
	}
	return got
}

func TestSpaceCyclesStatus(t *testing.T) {
	sess := &fakeSession{}
	m := loadedModel(sess)

	m = update(t, m, key(" "))
	if m.status != statusPlaying {
		t.Fatalf("expected playing after first space, got %v", m.status)
	}

	m = update(t, m, key(" "))
	if m.status != statusPaused {
		t.Fatalf("expected paused after second space, got %v", m.status)
	}

	m = update(t, m, key(" "))
	if m.status != statusPlaying {
		t.Fatalf("expected playing after third space, got %v", m.status)
	}

	kinds := []playback.Kind{playback.KindPlay, playback.KindPause, playback.KindContinue}
	if len(sess.sent) != len(kinds) {
		t.Fatalf("expected %d commands, got %d", len(kinds), len(sess.sent))
	}
	for i, k := range kinds {
		if sess.sent[i].Kind != k {
			t.Errorf("command %d: expected %v, got %v", i, k, sess.sent[i].Kind)
		}
	}

	// Play must carry the source
	if sess.sent[0].Source == nil {
		t.Error("expected play command to carry the source")
	}
}

func TestStopKey(t *testing.T) {
	sess := &fakeSession{}
	m := loadedModel(sess)

	m = update(t, m, key(" "))
	m = update(t, m, key("s"))

	if m.status != statusStopped {
		t.Errorf("expected stopped status, got %v", m.status)
	}
	last := sess.sent[len(sess.sent)-1]
	if last.Kind != playback.KindStop {
		t.Errorf("expected stop command, got %v", last.Kind)
	}
}

func TestNoCommandsWithoutTrack(t *testing.T) {
	sess := &fakeSession{}
	m := NewModel()
	m.session = sess
	m.width = 80

	m = update(t, m, key(" "))

	if len(sess.sent) != 0 {
		t.Errorf("expected no commands without a loaded track, got %d", len(sess.sent))
	}
	if m.status != statusStopped {
		t.Errorf("expected status unchanged, got %v", m.status)
	}
}

func TestClosedWorkerNotice(t *testing.T) {
	sess := &fakeSession{sendErr: playback.ErrClosed}
	m := loadedModel(sess)

	m = update(t, m, key(" "))

	if m.status != statusStopped {
		t.Errorf("expected status unchanged on failed send, got %v", m.status)
	}
	if m.notice == "" {
		t.Fatal("expected a notice after sending to a closed worker")
	}

	view := m.View()
	if !strings.Contains(view, "Playback unavailable") {
		t.Error("expected the notice in the rendered view")
	}
}

func TestViewShowsTrackAndElapsed(t *testing.T) {
	sess := &fakeSession{elapsed: 65 * time.Second}
	m := loadedModel(sess)
	// Ten-minute track so the bar is partially filled
	m.source = audio.NewSource(audio.Canonical, make([]byte, audio.Canonical.BytesPerSecond()*600))

	view := m.View()

	if !strings.Contains(view, "Test Track") {
		t.Error("expected track title in view")
	}
	if !strings.Contains(view, "1:05") {
		t.Error("expected elapsed time 1:05 in view")
	}
	if !strings.Contains(view, "10:00") {
		t.Error("expected total duration 10:00 in view")
	}
	if !strings.Contains(view, "Stopped") {
		t.Error("expected status in view")
	}
}

func TestRepaintMsgLeavesStateUntouched(t *testing.T) {
	sess := &fakeSession{}
	m := loadedModel(sess)
	m = update(t, m, key(" "))

	before := m.status
	m = update(t, m, RepaintMsg{})

	if m.status != before {
		t.Error("expected repaint message to leave status untouched")
	}
}

func TestSessionAndTrackMessages(t *testing.T) {
	m := NewModel()
	m.width = 80

	sess := &fakeSession{}
	m = update(t, m, SessionMsg{Session: sess})
	if m.session == nil {
		t.Fatal("expected session to be set")
	}

	src := audio.NewSource(audio.Canonical, make([]byte, 64))
	m = update(t, m, TrackMsg{Info: &meta.TrackInfo{Title: "T"}, Source: src})
	if m.track == nil || m.source == nil {
		t.Fatal("expected track and source to be set")
	}
}

func TestClock(t *testing.T) {
	cases := map[time.Duration]string{
		0:                "0:00",
		59 * time.Second: "0:59",
		60 * time.Second: "1:00",
		61 * time.Second: "1:01",
		10 * time.Minute: "10:00",
	}

	for d, want := range cases {
		if got := clock(d); got != want {
			t.Errorf("clock(%v): expected %q, got %q", d, want, got)
		}
	}
}

func TestRenderBar(t *testing.T) {
	bar := renderBar(50, 100, 10)
	if len([]rune(bar)) != 10 {
		t.Fatalf("expected 10-rune bar, got %d", len([]rune(bar)))
	}
	if !strings.HasPrefix(bar, "█████░") {
		t.Errorf("expected half-filled bar, got %q", bar)
	}

	// Overfull values clamp instead of overflowing the width
	bar = renderBar(200, 100, 10)
	if strings.Contains(bar, "░") {
		t.Errorf("expected fully filled bar, got %q", bar)
	}
}
