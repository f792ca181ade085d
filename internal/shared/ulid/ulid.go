package ulid

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID returns a ULID stamped with the current time.
var NewULID = func() string {
	return NewULIDAt(time.Now())
}

// NewULIDAt returns a ULID whose time component is t, so ids sort by the
// moment the thing they name was received.
func NewULIDAt(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}
