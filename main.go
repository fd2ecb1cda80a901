// ABOUTME: Entry point for the Audition track player
// ABOUTME: Parses CLI flags, wires the playback worker to the TUI, and manages teardown
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tracklab/audition/internal/audio/decode"
	"github.com/tracklab/audition/internal/config"
	"github.com/tracklab/audition/internal/meta"
	"github.com/tracklab/audition/internal/playback"
	"github.com/tracklab/audition/internal/sink"
	"github.com/tracklab/audition/internal/ui"
	"github.com/tracklab/audition/internal/version"
)

var (
	configPath = flag.String("config", "", "Config file path (default: XDG config, then ./config.toml)")
	logFile    = flag.String("log-file", "", "Log file path (overrides config)")
	tickMs     = flag.Int("tick-ms", 0, "Playback poll interval in milliseconds (overrides config)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logPath := *logFile
	if logPath == "" {
		logPath = cfg.LogFile
	}

	// The TUI owns the terminal, so the log goes to a file only
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()
	log.SetOutput(f)

	log.Printf("Starting %s %s", version.Product, version.Version)

	tick := cfg.TickMs
	if *tickMs > 0 {
		tick = *tickMs
	}

	prog := ui.NewProgram()

	uiDone := make(chan error, 1)
	go func() {
		_, err := prog.Run()
		uiDone <- err
	}()

	// The worker acquires the output device on its own goroutine; an
	// acquisition failure surfaces as a notice on the first command
	// and as an error at teardown
	handle := playback.Spawn(
		ui.NewRepainter(prog),
		func() (playback.Sink, error) { return sink.New(cfg.Volume) },
		playback.WithTick(time.Duration(tick)*time.Millisecond),
	)
	prog.Send(ui.SessionMsg{Session: handle})

	// Decode off the UI path; large files take a moment
	if path := flag.Arg(0); path != "" {
		go loadTrack(prog, path)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-uiDone:
		if err != nil {
			log.Printf("TUI error: %v", err)
		}
	case <-sigChan:
		log.Printf("Shutdown signal received")
		prog.Quit()
		<-uiDone
	}

	// Close the send side first, then join the worker; a worker fault
	// is a defect worth keeping in the log
	if err := handle.Close(); err != nil {
		log.Printf("Playback teardown: %v", err)
	}

	log.Printf("%s stopped", version.Product)
}

// loadTrack decodes a file and hands it to the TUI
func loadTrack(prog *tea.Program, path string) {
	log.Printf("Loading track: %s", path)

	src, err := decode.File(path)
	if err != nil {
		log.Printf("Failed to load track: %v", err)
		return
	}

	info := meta.ReadTrackInfo(path)
	log.Printf("Loaded %q (%v, %d bytes PCM)", info.Title, src.Duration().Round(time.Second), src.Size())

	prog.Send(ui.TrackMsg{Info: info, Source: src})
}
