package ports

import "time"

// Clock supplies the current wall-clock time. The application layer reads it
// once per evaluation so tests can pin "now".
type Clock interface {
	Now() time.Time
}
