// Package loop drives the game in a terminal: fixed 60 Hz pacing, the title,
// options and high-score screens, the name prompt and rendering of game snapshots.
package loop

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/audio"
	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/draw"
	"github.com/tomz197/spaceshooter/internal/game"
	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/score"
)

// Options configures a Loop.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Nil reads the size of os.Stdout
	Settings     config.Settings
	Assets       asset.Set    // Zero value means asset.Default
	Scores       *score.Table // Nil keeps scores in memory
	Audio        audio.Player // Nil is silent
	Logger       *log.Logger
	Rand         *rand.Rand

	// Username pre-fills the name prompt.
	Username string
	// IdleTimeout ends the session after that long without a key press.
	// Zero disables it.
	IdleTimeout time.Duration
	// Hub, when set, registers the session and delivers server shutdowns.
	Hub *Hub
}

// Loop owns one terminal session: its input stream, canvas and the current run.
type Loop struct {
	ctx     context.Context
	writer  io.Writer
	stream  *input.Stream
	in      input.Input
	running bool

	canvas   *draw.Canvas
	cw       *draw.ChunkWriter
	termSize draw.TermSizeFunc

	screen     Screen
	prevScreen Screen
	menu       menu
	options    options
	game       *game.Game
	sprites    []game.Sprite
	prevState  game.State
	prevEffect uint

	settings config.Settings
	assets   asset.Set
	scores   *score.Table
	audio    audio.Player
	logger   *log.Logger
	rng      *rand.Rand
	username string

	idleTimeout time.Duration
	lastInput   time.Time

	hub          *Hub
	session      *Session
	shuttingDown bool
	shutdownLeft time.Duration
}

// New prepares a session reading keys from r and drawing to w.
func New(r *bufio.Reader, w io.Writer, opts Options) *Loop {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	assets := opts.Assets
	if len(assets.Asteroids) == 0 {
		assets = asset.Default(rng)
	}
	scores := opts.Scores
	if scores == nil {
		scores = score.NewTable(nil, logger)
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}

	ship, err := object.ParseShipVariant(opts.Settings.Ship)
	if err != nil {
		if opts.Settings.Ship != "" {
			logger.Warn("unknown ship, using default", "ship", opts.Settings.Ship)
		}
		ship = object.ShipBalanced
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSize()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, game.ScreenWidth, game.ScreenHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	brightness := opts.Settings.Display.Brightness
	if brightness == 0 {
		brightness = config.MaxBrightness
	}
	canvas.SetBrightness(brightness)
	player.SetVolume(opts.Settings.Audio.Volume)

	return &Loop{
		ctx:      context.Background(),
		writer:   w,
		stream:   input.StartStream(r),
		running:  true,
		canvas:   canvas,
		cw:       draw.NewChunkWriter(w, offsetCol, offsetRow),
		termSize: termSize,
		screen:   ScreenMenu,
		menu:     menu{ship: ship},
		options: options{
			brightness: canvas.Brightness(),
			volume:     opts.Settings.Audio.Volume,
		},
		settings:    opts.Settings,
		assets:      assets,
		scores:      scores,
		audio:       player,
		logger:      logger,
		rng:         rng,
		username:    opts.Username,
		idleTimeout: opts.IdleTimeout,
		lastInput:   time.Now(),
		hub:         opts.Hub,
	}
}

// Run starts the session loop. Blocks until the player quits, the input
// stream closes, the session idles out or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	l.ctx = ctx
	draw.HideCursor(l.writer)
	defer draw.ShowCursor(l.writer)
	draw.ClearScreen(l.writer)
	defer l.audio.StopMusic()

	if l.hub != nil {
		l.session = l.hub.Register(l.username)
		defer l.hub.Unregister(l.session.ID)
	}

	for l.running {
		frameStart := time.Now()
		if ctx.Err() != nil {
			break
		}

		l.readInput()
		l.updateScreen()

		if l.serverShuttingDown() {
			l.updateShutdown()
		} else {
			l.updateScreenState()
		}
		if !l.running {
			break
		}

		if err := l.drawFrame(); err != nil {
			return err
		}
		pace(frameStart)
	}

	draw.ClearScreen(l.writer)
	return nil
}

// updateScreenState runs one frame of the current screen.
func (l *Loop) updateScreenState() {
	switch l.screen {
	case ScreenMenu:
		l.updateMenu()
	case ScreenOptions:
		l.updateOptions()
	case ScreenHighScores:
		l.updateHighScores()
	case ScreenPlaying:
		l.updatePlaying()
	}
}

// Run is a convenience for New(r, w, opts).Run(ctx).
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	return New(r, w, opts).Run(ctx)
}

func (l *Loop) serverShuttingDown() bool {
	return l.session != nil && l.session.ShuttingDown()
}

// updateShutdown counts down the shutdown notice, then ends the session.
// Any quit, escape or enter leaves at once.
func (l *Loop) updateShutdown() {
	if !l.shuttingDown {
		l.shuttingDown = true
		l.shutdownLeft = ShutdownDisplay
		l.audio.StopMusic()
		l.invalidate()
	}
	l.shutdownLeft -= TargetFrameTime
	if l.shutdownLeft <= 0 || l.in.Has(input.EventQuit) || l.in.Has(input.EventEscape) || l.in.Has(input.EventEnter) {
		l.running = false
	}
}

// pace sleeps out the rest of the frame.
func pace(frameStart time.Time) {
	elapsed := time.Since(frameStart)
	if elapsed < TargetFrameTime {
		time.Sleep(TargetFrameTime - elapsed)
	}
}

// readInput polls the stream and tracks inactivity.
func (l *Loop) readInput() {
	l.in = input.ReadInput(l.stream)
	if len(l.in.Events) > 0 || len(l.in.Text) > 0 {
		l.lastInput = time.Now()
	} else if l.idleTimeout > 0 && time.Since(l.lastInput) > l.idleTimeout {
		l.logger.Info("session idle, disconnecting", "user", l.username)
		l.running = false
	}
	if l.in.Closed || l.in.Interrupt {
		l.running = false
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (l *Loop) updateScreen() {
	termWidth, termHeight, err := l.termSize()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != l.canvas.TerminalWidth() || renderHeight != l.canvas.TerminalHeight() ||
		offsetCol != l.canvas.OffsetCol() || offsetRow != l.canvas.OffsetRow() {
		l.invalidate()
	}

	l.canvas.Resize(renderWidth, renderHeight)
	l.canvas.SetOffset(offsetCol, offsetRow)
	l.cw.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 1), MaxTermWidth)
	renderHeight = min(max(termHeight, 1), MaxTermHeight)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// invalidate clears the terminal and repaints everything on the next frame.
func (l *Loop) invalidate() {
	draw.ClearScreen(l.cw)
	l.canvas.ForceRedraw()
}

// switchTo changes the top-level screen and drops keys held across the change.
func (l *Loop) switchTo(s Screen) {
	l.screen = s
	l.stream.Reset()
}

func (l *Loop) updateMenu() {
	if l.in.Has(input.EventQuit) || l.in.Has(input.EventEscape) {
		l.running = false
		return
	}
	prev := l.menu
	item, chosen := l.menu.update(l.in)
	if l.menu != prev {
		l.invalidate()
	}
	if !chosen {
		return
	}
	switch item {
	case itemPlay:
		l.startGame()
	case itemHighScores:
		l.switchTo(ScreenHighScores)
	case itemOptions:
		l.switchTo(ScreenOptions)
	case itemQuit:
		l.running = false
	}
}

func (l *Loop) updateOptions() {
	if l.in.Has(input.EventQuit) && !l.in.Has(input.EventEscape) {
		l.running = false
		return
	}
	prev := l.options
	changed, back := l.options.update(l.in, config.MinBrightness, config.MaxBrightness)
	if changed {
		l.canvas.SetBrightness(l.options.brightness)
		l.audio.SetVolume(l.options.volume)
		l.settings.Display.Brightness = l.options.brightness
		l.settings.Audio.Volume = l.options.volume
		l.logger.Debug("options changed", "brightness", l.options.brightness, "volume", l.options.volume)
	}
	if l.options != prev {
		l.invalidate()
	}
	if back {
		l.switchTo(ScreenMenu)
	}
}

func (l *Loop) updateHighScores() {
	if l.in.Has(input.EventQuit) {
		l.running = false
		return
	}
	if l.in.Has(input.EventEscape) || l.in.Has(input.EventEnter) {
		l.switchTo(ScreenMenu)
	}
}

// startGame begins a new run with the selected ship.
func (l *Loop) startGame() {
	l.game = game.New(game.Options{
		Ship:     l.menu.ship,
		Assets:   l.assets,
		Rand:     l.rng,
		Scores:   l.scores,
		Prompter: l,
		Audio:    l.audio,
		Logger:   l.logger.With("user", l.username),
	})
	l.prevState = l.game.State
	l.prevEffect = 0
	l.switchTo(ScreenPlaying)
}

// updatePlaying steps the run one fixed tick and handles its exit signals.
func (l *Loop) updatePlaying() {
	switch l.game.Step(TargetFrameTime, l.in) {
	case game.SignalQuit:
		l.running = false
	case game.SignalRestart:
		l.startGame()
	case game.SignalMenu:
		l.game = nil
		l.audio.StopMusic()
		l.switchTo(ScreenMenu)
	}
}

// PromptName runs the name-entry screen until a name is accepted or the
// prompt is cancelled. Ctrl-C, a closed stream or a cancelled context also
// end the session.
func (l *Loop) PromptName(points int) (string, bool) {
	entry := newNameEntry(l.username)
	l.stream.Reset()
	l.invalidate()
	defer l.invalidate()

	for l.running {
		frameStart := time.Now()
		if l.ctx.Err() != nil {
			l.running = false
			break
		}

		l.readInput()
		if !l.running {
			break
		}
		if l.serverShuttingDown() {
			break
		}
		name, done, ok := entry.update(l.in)
		if done {
			return name, ok
		}

		l.updateScreen()
		l.drawNameEntry(points, entry)
		if err := l.cw.Flush(); err != nil {
			l.logger.Debug("name prompt write failed", "err", err)
			l.running = false
			break
		}
		pace(frameStart)
	}
	return "", false
}

var _ game.NamePrompter = (*Loop)(nil)
