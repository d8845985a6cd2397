package alarm

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Status is the alarm lifecycle state.
type Status string

const (
	StatusDormant   Status = "dormant"
	StatusTriggered Status = "triggered"
	StatusSnoozed   Status = "snoozed"
)

// DefaultSnoozeDuration matches the classic nine-minute snooze.
const DefaultSnoozeDuration = 9 * time.Minute

// Alarm is one scheduled alarm. At is the next ring instant; Active gates
// whether the countdown considers it at all.
type Alarm struct {
	ID             int64
	Name           string
	At             time.Time
	Status         Status
	Active         bool
	SnoozeDuration time.Duration
	CreatedAt      time.Time
}

// Clock abstracts "now" so transitions are testable with a fixed time.
type Clock func() time.Time

// Schedule points the alarm at the given ring time. A ring time that has
// already passed rolls one day forward, so "7:00" set at 8am rings tomorrow.
func (a *Alarm) Schedule(at time.Time, now Clock) {
	ringAt := at
	if !ringAt.After(now()) {
		ringAt = ringAt.AddDate(0, 0, 1)
	}
	a.At = ringAt
	a.Status = StatusDormant

	log.Debug().
		Str("alarm", a.Name).
		Time("at", a.At).
		Msg("Alarm scheduled")
}

// Activate arms the alarm.
func (a *Alarm) Activate() {
	a.Active = true
	a.Status = StatusDormant
}

// Deactivate disarms the alarm without touching its ring time.
func (a *Alarm) Deactivate() {
	a.Active = false
	a.Status = StatusDormant
}

// Trigger marks a due alarm as ringing. Returns false when the alarm is not
// armed or not yet due.
func (a *Alarm) Trigger(now Clock) bool {
	if !a.Active || a.Status == StatusTriggered || a.At.After(now()) {
		return false
	}
	a.Status = StatusTriggered
	return true
}

// Snooze pushes a ringing alarm forward by its snooze duration. Snoozing an
// alarm that isn't ringing is a no-op error so callers can surface it.
func (a *Alarm) Snooze(now Clock) error {
	if a.Status != StatusTriggered {
		return fmt.Errorf("alarm %q is not ringing", a.Name)
	}
	d := a.SnoozeDuration
	if d <= 0 {
		d = DefaultSnoozeDuration
	}
	a.At = now().Add(d)
	a.Status = StatusSnoozed

	log.Debug().
		Str("alarm", a.Name).
		Time("at", a.At).
		Dur("snooze", d).
		Msg("Alarm snoozed")
	return nil
}

// Stop silences a ringing or snoozed alarm and moves it to the next day.
func (a *Alarm) Stop() error {
	if a.Status != StatusTriggered && a.Status != StatusSnoozed {
		return fmt.Errorf("alarm %q is not ringing", a.Name)
	}
	a.At = a.At.AddDate(0, 0, 1)
	a.Status = StatusDormant
	return nil
}

// TimeLeft reports the countdown to the next ring, zero when inactive or due.
func (a *Alarm) TimeLeft(now Clock) time.Duration {
	if !a.Active {
		return 0
	}
	left := a.At.Sub(now())
	if left < 0 {
		return 0
	}
	return left
}
