package core

// SoundPlayer turns game events into sound. Frontends depend on this
// interface so that only the binary links the audio device.
type SoundPlayer interface {
	Play(events []Event)
	Close() error
}

// Silent is a SoundPlayer that plays nothing.
type Silent struct{}

func (Silent) Play([]Event) {}
func (Silent) Close() error { return nil }
