package core

import "testing"

func TestSilentPlayer(t *testing.T) {
	var p SoundPlayer = Silent{}
	p.Play([]Event{EventFlap, EventScore, EventCrash})
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
