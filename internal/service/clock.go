package service

import "time"

// Clock supplies the current instant to the derived-field computations
// (task overdue flag, active-stage window). Production code uses the system
// clock; tests pin a fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock implementation.
func SystemClock() Clock { return systemClock{} }
