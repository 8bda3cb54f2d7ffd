package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Volume bounds, as base-2 gain.
const (
	MinVolume = -3.0
	MaxVolume = 0.0
)

// ErrAudioUnavailable indicates the output device could not be opened.
var ErrAudioUnavailable = errors.New("audio output unavailable")

// Tone is a single decaying sine note of the chime.
type Tone struct {
	Frequency float64
	Length    time.Duration
}

// DefaultChime is the two-note phase transition chime.
var DefaultChime = []Tone{
	{Frequency: 880, Length: 180 * time.Millisecond},
	{Frequency: 1318.5, Length: 420 * time.Millisecond},
}

// Config defines playback options.
type Config struct {
	Enabled bool
	// Volume is a base-2 gain in [-3, 0]; 0 plays at full level.
	Volume float64
	Tones  []Tone
}

// Output is the sink that plays a streamer.
type Output interface {
	Init() error
	Play(streamer beep.Streamer)
}

// Player plays the transition chime. Failures are logged, never returned.
type Player struct {
	mu       sync.Mutex
	config   Config
	output   Output
	initOnce sync.Once
	initErr  error
}

// NewPlayer creates a Player writing to the system speaker.
func NewPlayer(config Config) *Player {
	return NewPlayerWithOutput(config, speakerOutput{})
}

// NewPlayerWithOutput creates a Player writing to the given output.
func NewPlayerWithOutput(config Config, output Output) *Player {
	if len(config.Tones) == 0 {
		config.Tones = DefaultChime
	}
	config.Volume = ClampVolume(config.Volume)
	return &Player{config: config, output: output}
}

// UpdateConfig replaces playback options.
func (player *Player) UpdateConfig(config Config) {
	player.mu.Lock()
	defer player.mu.Unlock()
	if len(config.Tones) == 0 {
		config.Tones = DefaultChime
	}
	config.Volume = ClampVolume(config.Volume)
	player.config = config
}

// PlayChime starts the chime without waiting for it to finish.
func (player *Player) PlayChime() {
	player.mu.Lock()
	config := player.config
	player.mu.Unlock()
	if !config.Enabled {
		return
	}
	player.play(config)
}

// Preview plays the chime with config even when chimes are disabled.
func (player *Player) Preview(config Config) {
	if len(config.Tones) == 0 {
		config.Tones = DefaultChime
	}
	config.Volume = ClampVolume(config.Volume)
	player.play(config)
}

func (player *Player) play(config Config) {
	if err := player.ensureOutput(); err != nil {
		return
	}

	player.output.Play(&effects.Volume{
		Streamer: Synthesize(config.Tones),
		Base:     2,
		Volume:   config.Volume,
		Silent:   config.Volume <= MinVolume,
	})
}

func (player *Player) ensureOutput() error {
	player.initOnce.Do(func() {
		if err := player.output.Init(); err != nil {
			player.initErr = fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
			log.Printf("audio: %v", player.initErr)
		}
	})
	return player.initErr
}

// Synthesize renders tones back to back as a single streamer.
func Synthesize(tones []Tone) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(tones))
	for _, tone := range tones {
		streamers = append(streamers, decayingSine(tone))
	}
	return beep.Seq(streamers...)
}

func decayingSine(tone Tone) beep.Streamer {
	total := sampleRate.N(tone.Length)
	position := 0
	step := 2 * math.Pi * tone.Frequency / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		filled := 0
		for filled < len(samples) && position < total {
			envelope := 1 - float64(position)/float64(total)
			value := math.Sin(step*float64(position)) * envelope * 0.6
			samples[filled][0] = value
			samples[filled][1] = value
			filled++
			position++
		}
		return filled, true
	})
}

// ClampVolume limits volume to [MinVolume, MaxVolume].
func ClampVolume(volume float64) float64 {
	if volume < MinVolume {
		return MinVolume
	}
	if volume > MaxVolume {
		return MaxVolume
	}
	return volume
}

type speakerOutput struct{}

func (speakerOutput) Init() error {
	return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
}

func (speakerOutput) Play(streamer beep.Streamer) {
	speaker.Play(streamer)
}
