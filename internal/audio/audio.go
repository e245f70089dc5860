// Package audio plays the background music and the destruction sound.
package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/tomz197/spaceshooter/internal/asset"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
	boomDuration    = 600 * time.Millisecond
)

// Player is the audio sink a run talks to.
type Player interface {
	PlayMusic()
	PauseMusic()
	ResumeMusic()
	StopMusic()
	PlayExplosion()
	SetVolume(v float64)
	Close()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) PlayMusic()        {}
func (Nop) PauseMusic()       {}
func (Nop) ResumeMusic()      {}
func (Nop) StopMusic()        {}
func (Nop) PlayExplosion()    {}
func (Nop) SetVolume(float64) {}
func (Nop) Close()            {}

// Options configures a Beep player.
type Options struct {
	Music     string  // mp3 or wav, looped; empty for no music
	Explosion string  // mp3 or wav; empty for a synthesized burst
	Volume    float64 // 0..1
}

// OptionsFor takes the sound paths from an asset set.
func OptionsFor(set asset.Set, volume float64) Options {
	return Options{Music: set.Music, Explosion: set.Boom, Volume: volume}
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the output device once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	return speakerErr
}

// clip is a fully decoded sound.
type clip struct {
	buf  *beep.Buffer
	rate beep.SampleRate
}

func (c *clip) streamer() beep.StreamSeeker {
	return c.buf.Streamer(0, c.buf.Len())
}

// Beep plays audio on the default output device through a single mixer.
type Beep struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *clip
	boom   *clip
	ctrl   *beep.Ctrl
	gain   *effects.Volume
	volume float64
}

// NewBeep decodes the configured files and opens the speaker.
func NewBeep(opts Options) (*Beep, error) {
	b := &Beep{
		mixer:  &beep.Mixer{},
		volume: clamp01(opts.Volume),
	}

	if opts.Music != "" {
		c, err := load(opts.Music)
		if err != nil {
			return nil, err
		}
		b.music = c
	}
	if opts.Explosion != "" {
		c, err := load(opts.Explosion)
		if err != nil {
			return nil, err
		}
		b.boom = c
	}

	if err := initSpeaker(); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	return b, nil
}

// load decodes a whole mp3 or wav file into memory.
func load(path string) (*clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, format, err = mp3.Decode(f)
	case ".wav":
		s, format, err = wav.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported audio file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	return &clip{buf: buf, rate: format.SampleRate}, nil
}

// PlayMusic starts the looped track from the beginning.
func (b *Beep) PlayMusic() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.music == nil {
		return
	}

	loop := beep.Loop(-1, b.music.streamer())
	ctrl := &beep.Ctrl{Streamer: beep.Resample(resampleQuality, b.music.rate, sampleRate, loop)}
	gain := &effects.Volume{Streamer: ctrl, Base: 2}
	applyVolume(gain, b.volume)

	speaker.Lock()
	if b.ctrl != nil {
		b.ctrl.Streamer = nil
	}
	b.ctrl, b.gain = ctrl, gain
	b.mixer.Add(gain)
	speaker.Unlock()
}

// PauseMusic holds the track at its position.
func (b *Beep) PauseMusic() {
	b.setPaused(true)
}

// ResumeMusic continues a paused track.
func (b *Beep) ResumeMusic() {
	b.setPaused(false)
}

func (b *Beep) setPaused(paused bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrl == nil {
		return
	}
	speaker.Lock()
	b.ctrl.Paused = paused
	speaker.Unlock()
}

// StopMusic ends the track; the mixer drops it on the next buffer.
func (b *Beep) StopMusic() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrl == nil {
		return
	}
	speaker.Lock()
	b.ctrl.Streamer = nil
	speaker.Unlock()
	b.ctrl, b.gain = nil, nil
}

// PlayExplosion plays the destruction sound once.
func (b *Beep) PlayExplosion() {
	b.mu.Lock()
	defer b.mu.Unlock()

	var s beep.Streamer
	if b.boom != nil {
		s = beep.Resample(resampleQuality, b.boom.rate, sampleRate, b.boom.streamer())
	} else {
		s = beep.Take(sampleRate.N(boomDuration), newBurst(sampleRate, time.Now().UnixNano()))
	}
	gain := &effects.Volume{Streamer: s, Base: 2}
	applyVolume(gain, b.volume)

	speaker.Lock()
	b.mixer.Add(gain)
	speaker.Unlock()
}

// SetVolume changes the volume of everything playing now and later.
func (b *Beep) SetVolume(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.volume = clamp01(v)
	if b.gain == nil {
		return
	}
	speaker.Lock()
	applyVolume(b.gain, b.volume)
	speaker.Unlock()
}

// Close silences the player. The device stays open for other players in the process.
func (b *Beep) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.ctrl, b.gain = nil, nil
}

// applyVolume maps a linear 0..1 level onto a base-2 gain.
func applyVolume(gain *effects.Volume, level float64) {
	gain.Volume, gain.Silent = volumeLevel(level)
}

func volumeLevel(level float64) (float64, bool) {
	if level <= 0 {
		return 0, true
	}
	return math.Log2(clamp01(level)), false
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// burst is a decaying noise-and-rumble explosion.
type burst struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func newBurst(sr beep.SampleRate, seed int64) *burst {
	return &burst{sr: sr, seed: seed}
}

func (g *burst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := math.Sin(2 * math.Pi * 55 * t)

		sample := envelope * (0.5*noise + 0.4*rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *burst) Err() error {
	return nil
}
