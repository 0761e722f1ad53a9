package domain

import "time"

// CurrentTimeProvider provides the current time, used for aggregate timestamps and events.
type CurrentTimeProvider interface {
	Now() time.Time
}
