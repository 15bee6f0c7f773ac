package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"ballmachine/internal/session"
)

const sampleRate = beep.SampleRate(44100)

// Player turns session events into sounds on the default output device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	initialized bool

	// open starts the device and hands it the mixer. Tests replace it.
	open func(mixer *beep.Mixer) error
}

// NewPlayer returns a Player. Nothing is opened until Init or SetEnabled(true).
func NewPlayer(enabled bool) *Player {
	return &Player{mixer: &beep.Mixer{}, enabled: enabled, open: openSpeaker}
}

func openSpeaker(mixer *beep.Mixer) error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(mixer)
	return nil
}

// Init opens the speaker. A disabled player never touches the device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return nil
	}
	return p.ensureOpen()
}

func (p *Player) ensureOpen() error {
	if p.initialized {
		return nil
	}
	if err := p.open(p.mixer); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// SetEnabled mutes or unmutes. Muting drops the sounds still playing; unmuting
// opens the device on first use and stays muted if that fails.
func (p *Player) SetEnabled(on bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if on {
		if err := p.ensureOpen(); err != nil {
			p.enabled = false
			return err
		}
		p.enabled = true
		return nil
	}
	p.enabled = false
	if p.initialized {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
	return nil
}

// Enabled reports whether sounds are played.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues one cue per event.
func (p *Player) Play(events []session.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || !p.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	for _, ev := range events {
		if s := Cue(ev); s != nil {
			p.mixer.Add(s)
		}
	}
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Cue returns the sound for ev.
func Cue(ev session.Event) beep.Streamer {
	switch ev.Kind {
	case session.EventShot:
		return Thump(sampleRate)
	case session.EventScore:
		return Chime(sampleRate, ev.Points)
	case session.EventWin:
		return Fanfare(sampleRate)
	case session.EventLose:
		return Drone(sampleRate)
	}
	return nil
}
