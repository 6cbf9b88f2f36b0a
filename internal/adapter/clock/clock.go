package clock

import (
	"time"

	"github.com/shopcredit/creditledger/internal/core/port"
)

type systemClock struct{}

// New returns the wall-clock implementation of port.Clock.
func New() port.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (systemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
