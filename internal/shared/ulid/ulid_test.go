package ulid

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDAt_EncodesTime(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1_700_000_000_123)
	id := NewULIDAt(at)

	parsed, err := ulid.ParseStrict(id)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_700_000_000_123), parsed.Time())
}

func TestNewULIDAt_SortsByTime(t *testing.T) {
	t.Parallel()

	earlier := NewULIDAt(time.UnixMilli(1_700_000_000_000))
	later := NewULIDAt(time.UnixMilli(1_700_000_001_000))
	assert.Less(t, earlier, later)
	assert.Len(t, NewULID(), 26)
}
