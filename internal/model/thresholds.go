package model

import (
	"errors"
	"fmt"
)

// ErrInvalidThresholds is returned when thresholds break 0 <= break <= low <= high <= 100.
var ErrInvalidThresholds = errors.New("invalid thresholds")

// Thresholds are minimum acceptable mutation score percentages.
type Thresholds struct {
	High  int `mapstructure:"high" yaml:"high"`
	Low   int `mapstructure:"low" yaml:"low"`
	Break int `mapstructure:"break" yaml:"break"`
}

// DefaultThresholds returns the thresholds used when none are configured.
func DefaultThresholds() Thresholds {
	return Thresholds{High: 80, Low: 60, Break: 0}
}

// Validate checks the ordering invariant.
func (t Thresholds) Validate() error {
	switch {
	case t.Break < 0 || t.High > 100:
		return fmt.Errorf("%w: values must be within 0..100 (high=%d, low=%d, break=%d)",
			ErrInvalidThresholds, t.High, t.Low, t.Break)
	case t.Break > t.Low:
		return fmt.Errorf("%w: break (%d) must not exceed low (%d)", ErrInvalidThresholds, t.Break, t.Low)
	case t.Low > t.High:
		return fmt.Errorf("%w: low (%d) must not exceed high (%d)", ErrInvalidThresholds, t.Low, t.High)
	}

	return nil
}

// Health is the verdict for a mutation score.
type Health int

const (
	// NotApplicable is used when no score can be computed.
	NotApplicable Health = iota
	// Danger means the score is below the low threshold.
	Danger
	// Warning means the score is between the low and high thresholds.
	Warning
	// Good means the score reached the high threshold.
	Good
)

func (h Health) String() string {
	switch h {
	case Good:
		return "good"
	case Warning:
		return "warning"
	case Danger:
		return "danger"
	default:
		return "n/a"
	}
}
