package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-doodle/internal/audio"
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/game"
	"github.com/vovakirdan/tui-doodle/internal/platform/tui"
	"github.com/vovakirdan/tui-doodle/internal/session"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := openLogger(flagLogPath)
	defer closeLog()

	cfg, err := config.LoadDoodle(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagMute {
		cfg.Sound.Enabled = false
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  max(height-tui.FooterRows, 1),
		TickRate: flagFPS,
		Seed:     seedOrNow(flagSeed),
	}

	// Open run history
	var recorder game.RunRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		recorder = store
	}

	sess, err := session.New(cfg, rt, session.Deps{
		Sound:    audio.Open(cfg.Sound, flagNoAudioDevice, logger),
		Recorder: recorder,
		Logger:   logger,
	})
	if err != nil {
		closeStore(store)
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := tui.Run(ctx, sess, rt)
	stop()

	// Close store before potential exit
	closeStore(store)

	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger logs to path, or nowhere: the alternate screen owns the terminal.
func openLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "doodle",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

func seedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
