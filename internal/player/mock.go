package player

import "time"

// Mock is a test double for Player.
type Mock struct {
	state          State
	position       time.Duration
	duration       time.Duration
	volumeLevel    float64
	currentFile    string
	playErr        error
	playCalls      []string
	done           chan struct{}
	onStatusChange func(playing, paused bool)
	onFinished     func()
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:       Stopped,
		volumeLevel: 1,
		done:        make(chan struct{}),
	}
}

func (m *Mock) Play(path string) error {
	m.playCalls = append(m.playCalls, path)
	if m.playErr != nil {
		return m.playErr
	}
	m.currentFile = path
	m.setState(Playing)
	return nil
}

func (m *Mock) Stop() {
	m.currentFile = ""
	m.setState(Stopped)
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.setState(Paused)
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.setState(Playing)
	}
}

func (m *Mock) Toggle() {
	switch m.state {
	case Playing:
		m.Pause()
	case Paused:
		m.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) IsPlaying() bool { return m.state == Playing }

func (m *Mock) IsPaused() bool { return m.state == Paused }

func (m *Mock) CurrentFile() string { return m.currentFile }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SetVolume(level float64) { m.volumeLevel = level }

func (m *Mock) Volume() float64 { return m.volumeLevel }

func (m *Mock) OnStatusChange(fn func(playing, paused bool)) { m.onStatusChange = fn }

func (m *Mock) OnFinished(fn func()) { m.onFinished = fn }

func (m *Mock) Done() <-chan struct{} { return m.done }

func (m *Mock) Close() { m.Stop() }

func (m *Mock) setState(s State) {
	m.state = s
	if m.onStatusChange != nil {
		m.onStatusChange(s == Playing, s == Paused)
	}
}

// Test helpers

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

// SimulateFinished simulates a track playing to completion.
func (m *Mock) SimulateFinished() {
	m.currentFile = ""
	m.state = Stopped
	if m.onFinished != nil {
		m.onFinished()
	}
	if m.onStatusChange != nil {
		m.onStatusChange(false, false)
	}
	select {
	case <-m.done:
	default:
		close(m.done)
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
