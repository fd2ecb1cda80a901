// ABOUTME: Tests for the oto sink helpers
// ABOUTME: Verifies the interface contract and counting-reader position math
package sink

import (
	"bytes"
	"io"
	"testing"

	"github.com/tracklab/audition/internal/playback"
)

func TestOtoImplementsSink(t *testing.T) {
	var _ playback.Sink = (*Oto)(nil)
}

func TestOtoImplementsCloser(t *testing.T) {
	// The worker releases sinks that know how to close themselves
	var _ io.Closer = (*Oto)(nil)
}

func TestCountingReaderCountsBytes(t *testing.T) {
	r := newCountingReader(bytes.NewReader(make([]byte, 100)))

	buf := make([]byte, 30)
	if _, err := r.Read(buf); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if r.count() != 30 {
		t.Errorf("expected 30 bytes counted, got %d", r.count())
	}
	if r.done() {
		t.Error("expected reader not done before EOF")
	}

	if _, err := io.Copy(io.Discard, r); err != nil {
		t.Fatalf("drain failed: %v", err)
	}
	if r.count() != 100 {
		t.Errorf("expected 100 bytes counted, got %d", r.count())
	}
}

func TestCountingReaderEOF(t *testing.T) {
	r := newCountingReader(bytes.NewReader([]byte{1, 2, 3}))

	buf := make([]byte, 8)
	for {
		_, err := r.Read(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
	}

	if !r.done() {
		t.Error("expected done after EOF")
	}
	if r.count() != 3 {
		t.Errorf("expected 3 bytes counted, got %d", r.count())
	}
}

func TestCountingReaderEmptySource(t *testing.T) {
	r := newCountingReader(bytes.NewReader(nil))

	if _, err := r.Read(make([]byte, 4)); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
	if !r.done() {
		t.Error("expected done for empty source")
	}
	if r.count() != 0 {
		t.Errorf("expected zero count, got %d", r.count())
	}
}
