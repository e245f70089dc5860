package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/audio"
	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/logging"
	"github.com/tomz197/spaceshooter/internal/loop"
	"github.com/tomz197/spaceshooter/internal/score"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(".")
	if err != nil {
		return err
	}

	// The terminal is the screen, so logs go to a file.
	logFile, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := logging.New(logFile, settings.LogLevel)

	store, err := score.Open(settings.HighScores.Backend, settings.HighScores.Path)
	if err != nil {
		return fmt.Errorf("open high scores: %w", err)
	}
	if c, ok := store.(io.Closer); ok {
		defer c.Close()
	}
	scores := score.NewTable(store, logger)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	assets := asset.Default(rng).WithSounds(settings.Audio.Music, settings.Audio.Explosion)

	player := newAudio(assets, settings, logger)
	defer player.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(ctx, reader, os.Stdout, loop.Options{
		Settings: settings,
		Assets:   assets,
		Rand:     rng,
		Scores:   scores,
		Audio:    player,
		Logger:   logger,
	})
}

// newAudio opens the speaker, falling back to silence when audio is
// disabled or the device or files are unavailable.
func newAudio(assets asset.Set, settings config.Settings, logger *log.Logger) audio.Player {
	if !settings.Audio.Enabled {
		return audio.Nop{}
	}
	player, err := audio.NewBeep(audio.OptionsFor(assets, settings.Audio.Volume))
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
		return audio.Nop{}
	}
	return player
}
