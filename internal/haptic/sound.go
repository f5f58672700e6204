package haptic

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/pveldrane/pill/internal/errmsg"
)

// SoundPlayer plays a notification sound as presentation feedback.
// The sound file is decoded once and buffered; the speaker is
// initialized lazily on first use.
type SoundPlayer struct {
	mu          sync.Mutex
	logger      *slog.Logger
	path        string
	volume      float64
	buffer      *beep.Buffer
	initialized bool
	sampleRate  beep.SampleRate
}

// NewSoundPlayer creates a player for the given sound file.
// Volume is in [0, 1].
func NewSoundPlayer(path string, volume float64, logger *slog.Logger) *SoundPlayer {
	if logger == nil {
		logger = slog.Default()
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &SoundPlayer{
		logger:     logger,
		path:       expandPath(path),
		volume:     volume,
		sampleRate: beep.SampleRate(44100),
	}
}

// Trigger implements Feedback. Playback failures are logged and
// swallowed so presentation is never blocked by audio problems.
func (p *SoundPlayer) Trigger(k Kind) error {
	if k == KindNone || p.path == "" {
		return nil
	}
	if err := p.play(); err != nil {
		p.logger.Warn(errmsg.Format(errmsg.OpFeedbackPlay, err), "path", p.path)
	}
	return nil
}

func (p *SoundPlayer) play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.buffer == nil {
		buffer, err := p.load()
		if err != nil {
			return err
		}
		p.buffer = buffer
	}

	var streamer beep.Streamer = p.buffer.Streamer(0, p.buffer.Len())
	if p.buffer.Format().SampleRate != p.sampleRate {
		streamer = beep.Resample(4, p.buffer.Format().SampleRate, p.sampleRate, streamer)
	}
	if p.volume < 1 {
		streamer = &effects.Volume{
			Streamer: streamer,
			Base:     2,
			Volume:   volumeToDecibels(p.volume),
			Silent:   p.volume == 0,
		}
	}
	speaker.Play(streamer)
	return nil
}

func (p *SoundPlayer) load() (*beep.Buffer, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("open sound file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(p.path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", filepath.Ext(p.path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode sound: %w", err)
	}
	defer func() { _ = streamer.Close() }()

	if !p.initialized {
		bufferSize := format.SampleRate.N(100 * time.Millisecond)
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return nil, fmt.Errorf("init speaker: %w", err)
		}
		p.sampleRate = format.SampleRate
		p.initialized = true
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

// Close releases the speaker.
func (p *SoundPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
	p.buffer = nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// volumeToDecibels converts linear volume (0-1) to the decibel scale
// beep's volume effect expects: 0.5 = -6dB, 0.25 = -12dB.
func volumeToDecibels(volume float64) float64 {
	if volume <= 0 {
		return -100
	}
	return 20 * math.Log10(volume)
}
