package sound

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// ErrUnknownSound indicates the requested sound identifier has no file in
// the sound directory.
var ErrUnknownSound = errors.New("unknown sound")

const (
	soundExtension = ".wav"

	// speakerRate is the fixed mixer rate. Files recorded at other rates are
	// resampled once while buffering.
	speakerRate       = beep.SampleRate(44100)
	speakerBufferSize = time.Second / 10

	beepToneHz     = 880
	beepToneLength = 150 * time.Millisecond
)

// Player decodes alarm sounds from a directory and plays them through the
// system mixer. Decoded sounds are buffered on first use so repeated alarms
// never touch the disk.
type Player struct {
	mu        sync.Mutex
	dir       string
	speakerOn bool
	volume    float64
	silent    bool
	buffers   map[string]*beep.Buffer
}

// NewPlayer creates a Player reading sound files from dir.
func NewPlayer(dir string) *Player {
	return &Player{
		dir:     dir,
		buffers: make(map[string]*beep.Buffer),
	}
}

// DefaultDir returns the per-user sound directory.
func DefaultDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, "sounds"), nil
}

// SetVolume adjusts playback volume. 100 is unattenuated, 0 is muted, and
// values in between scale logarithmically.
func (player *Player) SetVolume(percent int) {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.volume, player.silent = volumeExponent(percent)
}

// Play starts the identified sound from the beginning, cutting off anything
// already playing, and returns the sound's length. An empty identifier plays
// nothing and reports a zero length.
func (player *Player) Play(soundID string) (time.Duration, error) {
	if soundID == "" {
		return 0, nil
	}

	player.mu.Lock()
	defer player.mu.Unlock()

	buffer, err := player.loadLocked(soundID)
	if err != nil {
		return 0, err
	}
	if err := player.ensureSpeakerLocked(); err != nil {
		return 0, err
	}

	speaker.Clear()
	speaker.Play(&effects.Volume{
		Streamer: buffer.Streamer(0, buffer.Len()),
		Base:     2,
		Volume:   player.volume,
		Silent:   player.silent,
	})
	return speakerRate.D(buffer.Len()), nil
}

// Beep plays one short synthesized tone. A muted player reports success
// without touching the speaker.
func (player *Player) Beep() error {
	player.mu.Lock()
	defer player.mu.Unlock()

	if player.silent {
		return nil
	}
	if err := player.ensureSpeakerLocked(); err != nil {
		return err
	}
	tone, err := generators.SinTone(speakerRate, beepToneHz)
	if err != nil {
		return fmt.Errorf("generate beep tone: %w", err)
	}
	speaker.Play(beep.Take(speakerRate.N(beepToneLength), tone))
	return nil
}

// Silence cuts off all playback immediately.
func (player *Player) Silence() {
	player.mu.Lock()
	defer player.mu.Unlock()

	if player.speakerOn {
		speaker.Clear()
	}
}

// Sounds lists the identifiers available in the sound directory, sorted. A
// missing directory lists as empty.
func (player *Player) Sounds() ([]string, error) {
	entries, err := os.ReadDir(player.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list sound directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), soundExtension) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	sort.Strings(ids)
	return ids, nil
}

func (player *Player) loadLocked(soundID string) (*beep.Buffer, error) {
	if buffer, ok := player.buffers[soundID]; ok {
		return buffer, nil
	}

	path := filepath.Join(player.dir, soundID+soundExtension)
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSound, soundID)
		}
		return nil, fmt.Errorf("open sound file: %w", err)
	}
	defer file.Close()

	streamer, format, err := wav.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode sound file %s: %w", path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  speakerRate,
		NumChannels: 2,
		Precision:   2,
	})
	if format.SampleRate == speakerRate {
		buffer.Append(streamer)
	} else {
		buffer.Append(beep.Resample(4, format.SampleRate, speakerRate, streamer))
	}

	player.buffers[soundID] = buffer
	return buffer, nil
}

func (player *Player) ensureSpeakerLocked() error {
	if player.speakerOn {
		return nil
	}
	if err := speaker.Init(speakerRate, speakerRate.N(speakerBufferSize)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	player.speakerOn = true
	return nil
}

// volumeExponent maps a 0..100 percentage onto the base-2 exponent used by
// the volume effect. Zero or less mutes outright.
func volumeExponent(percent int) (exponent float64, silent bool) {
	if percent <= 0 {
		return 0, true
	}
	if percent > 100 {
		percent = 100
	}
	return math.Log2(float64(percent) / 100), false
}
