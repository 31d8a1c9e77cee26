package ports

import "time"

// Clock supplies wall-clock time to application handlers.
type Clock interface {
	Now() time.Time
}
