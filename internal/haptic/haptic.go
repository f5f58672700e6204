// Package haptic provides presentation feedback for toasts.
//
// Terminals have no vibration motor, so feedback is audible: the
// terminal bell by default, or a short notification sound when one is
// configured.
package haptic

import (
	"io"
	"os"
)

// Kind selects the feedback flavor for a presentation.
type Kind int

const (
	// KindNone suppresses feedback entirely.
	KindNone Kind = iota
	KindSuccess
	KindWarning
	KindError
	KindImpact
)

// String returns the kind name for debugging.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	case KindImpact:
		return "impact"
	default:
		return "none"
	}
}

// Feedback fires a feedback cue for the given kind.
// Implementations degrade silently; a toast never fails to present
// because feedback did.
type Feedback interface {
	Trigger(k Kind) error
}

// Bell rings the terminal bell for any kind except KindNone.
type Bell struct {
	// W defaults to os.Stdout.
	W io.Writer
}

// Trigger implements Feedback.
func (b Bell) Trigger(k Kind) error {
	if k == KindNone {
		return nil
	}
	w := b.W
	if w == nil {
		w = os.Stdout
	}
	_, err := w.Write([]byte{'\a'})
	return err
}

// Stub is a no-op Feedback for tests and silent configurations.
type Stub struct{}

// Trigger implements Feedback.
func (Stub) Trigger(Kind) error { return nil }
