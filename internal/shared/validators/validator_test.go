package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ClientID string `json:"client_id" validate:"required"`
	Size     int64  `json:"file_size" validate:"min=0"`
	Internal string `json:"-" validate:"omitempty,max=2"`
}

func TestNewJSON_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	err := NewJSON().Struct(&sample{Size: -1})
	require.Error(t, err)

	assert.ElementsMatch(t, []string{"client_id (required)", "file_size (min=0)"}, Describe(err))
}

func TestNewJSON_Valid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewJSON().Struct(&sample{ClientID: "client4", Size: 10}))
}
