// Package player plays single tracks through the system audio device
// using beep. It exists so edits can be checked by ear; playlist and
// queue logic live elsewhere.
package player

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

type State int

const (
	Stopped State = iota
	Playing
	Paused
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extOGG  = ".ogg"
	extOGA  = ".oga"
	extWAV  = ".wav"
)

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Player plays one file at a time. Not goroutine-safe except for the
// finish callback, which beep fires from the speaker goroutine.
type Player struct {
	state       State
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	volumeLevel float64
	streamer    beep.StreamSeekCloser
	format      beep.Format
	file        *os.File
	currentFile string
	done        chan struct{}

	onStatusChange func(playing, paused bool)
	onFinished     func()
}

// New creates a player with the initial volume as a 0-100 percentage.
func New(volumePercent int) *Player {
	level := float64(volumePercent) / 100
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	return &Player{
		state:       Stopped,
		volumeLevel: level,
		done:        make(chan struct{}),
	}
}

// Play starts playback of the given audio file, stopping any current
// track first.
func (p *Player) Play(path string) error {
	p.Stop()

	// Small delay to let any pending beep callback complete after speaker.Clear()
	time.Sleep(10 * time.Millisecond)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != extMP3 && ext != extFLAC && ext != extOGG && ext != extOGA && ext != extWAV {
		return fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extFLAC:
		// Skip ID3v2 tags some taggers prepend; the decoder cannot
		if err := skipID3v2(f); err != nil {
			f.Close()
			return err
		}
		streamer, format, err = flac.Decode(f)
	case extOGG, extOGA:
		streamer, format, err = vorbis.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return err
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		err = speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10))
		if err != nil {
			streamer.Close()
			f.Close()
			return err
		}
		speakerInitialized = true
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.currentFile = path

	// Resample if the track's sample rate differs from the speaker's
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: false}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2, Volume: levelToVolume(p.volumeLevel), Silent: p.volumeLevel == 0}

	p.state = Playing
	p.done = make(chan struct{})

	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		close(p.done)
		p.state = Stopped
		if p.onFinished != nil {
			p.onFinished()
		}
		if p.onStatusChange != nil {
			p.onStatusChange(false, false)
		}
	})))

	p.notifyStatus()
	return nil
}

// Stop ends playback and releases the current track's resources.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}

	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.ctrl = nil
	p.volume = nil
	p.currentFile = ""
	p.state = Stopped
	p.notifyStatus()
}

func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
	p.notifyStatus()
}

func (p *Player) Resume() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
	p.notifyStatus()
}

func (p *Player) Toggle() {
	switch p.state {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (p *Player) State() State { return p.state }

func (p *Player) IsPlaying() bool { return p.state == Playing }

func (p *Player) IsPaused() bool { return p.state == Paused }

// CurrentFile returns the path of the playing track, or "" when stopped.
func (p *Player) CurrentFile() string { return p.currentFile }

func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// SetVolume sets the volume level (0.0 to 1.0).
func (p *Player) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	p.volumeLevel = level

	if p.volume != nil {
		speaker.Lock()
		p.volume.Volume = levelToVolume(level)
		p.volume.Silent = level == 0
		speaker.Unlock()
	}
}

// Volume returns the current volume level (0.0 to 1.0).
func (p *Player) Volume() float64 { return p.volumeLevel }

// OnStatusChange registers a callback invoked whenever the
// playing/paused state changes.
func (p *Player) OnStatusChange(fn func(playing, paused bool)) {
	p.onStatusChange = fn
}

// OnFinished registers a callback invoked from the speaker goroutine
// when a track plays to completion.
func (p *Player) OnFinished(fn func()) {
	p.onFinished = fn
}

// Done returns a channel closed when the current track finishes.
func (p *Player) Done() <-chan struct{} { return p.done }

// Close stops playback. The speaker itself stays initialized; beep
// owns it for the process lifetime.
func (p *Player) Close() {
	p.Stop()
}

func (p *Player) notifyStatus() {
	if p.onStatusChange != nil {
		p.onStatusChange(p.state == Playing, p.state == Paused)
	}
}

// levelToVolume converts a 0.0-1.0 level to beep's logarithmic Volume
// value: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (effectively silent).
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the file.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := r.Read(header)
	if err != nil {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Size is a syncsafe integer in bytes 6-9 (7 bits per byte)
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
