// Package challenge picks a random activity, from the Bored API when it
// answers and from a local table when it does not.
package challenge

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrMalformed marks a remote activity that cannot be displayed.
var ErrMalformed = errors.New("malformed activity")

// Source tells where a challenge came from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Challenge is a displayable activity, whatever its source.
type Challenge struct {
	Activity      string   `json:"activity"`
	Category      Category `json:"type"`
	Accessibility float64  `json:"accessibility"` // 0 easy .. 1 hard
	Price         float64  `json:"price"`         // 0 free .. 1 expensive
	Participants  int      `json:"participants"`
	Link          string   `json:"link,omitempty"`
	Key           string   `json:"key,omitempty"`
	Source        Source   `json:"source,omitempty"`
}

// Validate checks the fields required to display a challenge.
func (c Challenge) Validate() error {
	if strings.TrimSpace(c.Activity) == "" {
		return fmt.Errorf("%w: missing activity", ErrMalformed)
	}
	if c.Accessibility < 0 || c.Accessibility > 1 {
		return fmt.Errorf("%w: accessibility %v out of range", ErrMalformed, c.Accessibility)
	}
	if c.Price < 0 || c.Price > 1 {
		return fmt.Errorf("%w: price %v out of range", ErrMalformed, c.Price)
	}
	if c.Participants < 1 {
		return fmt.Errorf("%w: %d participants", ErrMalformed, c.Participants)
	}
	return nil
}

// ParticipantCount returns the participant count, at least 1.
func (c Challenge) ParticipantCount() int {
	if c.Participants < 1 {
		return 1
	}
	return c.Participants
}

// Difficulty is the accessibility as a 0-100 percentage.
func (c Challenge) Difficulty() int {
	return int(math.Round(c.Accessibility * 100))
}

// AccessibilityPercent is how approachable the activity is, 0-100.
func (c Challenge) AccessibilityPercent() int {
	return 100 - c.Difficulty()
}

// PricePercent is the normalized cost as a 0-100 percentage.
func (c Challenge) PricePercent() int {
	return int(math.Round(c.Price * 100))
}
