package player

import "time"

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	Play(path string) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	IsPlaying() bool
	IsPaused() bool
	CurrentFile() string
	Position() time.Duration
	Duration() time.Duration
	SetVolume(level float64)
	Volume() float64
	OnStatusChange(fn func(playing, paused bool))
	OnFinished(fn func())
	Done() <-chan struct{}
	Close()
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
