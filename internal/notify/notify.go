// Package notify delivers phase-transition notifications: a system
// notification through the fyne app plus an optional chime.
package notify

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeFrequency = 660
	chimeDuration  = 300 * time.Millisecond
)

// Notifier implements the scheduler's notification port. Delivery is
// fire-and-forget: neither the notification nor the chime reports
// failure back to the caller.
type Notifier struct {
	app          fyne.App
	sampleRate   beep.SampleRate
	speakerReady bool
}

// New creates a Notifier and initializes the speaker. When no audio
// device is available the chime is disabled and notifications still go
// out.
func New(app fyne.App) *Notifier {
	notifier := &Notifier{app: app, sampleRate: beep.SampleRate(44100)}
	if err := speaker.Init(notifier.sampleRate, notifier.sampleRate.N(time.Second/10)); err != nil {
		log.Printf("notify: init speaker: %v", err)
		return notifier
	}
	notifier.speakerReady = true
	return notifier
}

// SendSingle posts one system notification and, when soundEnabled,
// plays the chime.
func (notifier *Notifier) SendSingle(title, subtitle string, soundEnabled bool) {
	notifier.app.SendNotification(fyne.NewNotification(title, subtitle))
	if soundEnabled {
		notifier.playChime()
	}
}

func (notifier *Notifier) playChime() {
	if !notifier.speakerReady {
		return
	}
	tone, err := generators.SineTone(notifier.sampleRate, chimeFrequency)
	if err != nil {
		log.Printf("notify: generate chime: %v", err)
		return
	}
	speaker.Play(beep.Take(notifier.sampleRate.N(chimeDuration), tone))
}
