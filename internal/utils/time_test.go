package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatetime(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		parsed, err := ParseDatetime("2026-03-01T10:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), parsed)
	})

	t.Run("DateOnly", func(t *testing.T) {
		parsed, err := ParseDatetime("2026-03-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseDatetime("01/03/2026")
		assert.Error(t, err)
	})
}

func TestDatetimeJSON(t *testing.T) {
	t.Run("DateOnlyInputEmitsRFC3339", func(t *testing.T) {
		var d Datetime
		require.NoError(t, json.Unmarshal([]byte(`"2026-03-01"`), &d))

		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2026-03-01T00:00:00Z"`, string(out))
	})

	t.Run("RejectsNonString", func(t *testing.T) {
		var d Datetime
		assert.Error(t, json.Unmarshal([]byte(`12345`), &d))
	})

	t.Run("RejectsUnknownLayout", func(t *testing.T) {
		var d Datetime
		assert.Error(t, json.Unmarshal([]byte(`"01.03.2026"`), &d))
	})
}

func TestDatetimeBSONRoundtrip(t *testing.T) {
	in := NewDatetime(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	typ, data, err := in.MarshalBSONValue()
	require.NoError(t, err)

	var out Datetime
	require.NoError(t, out.UnmarshalBSONValue(typ, data))
	assert.True(t, in.Equal(out.Time))
}

func TestFormatTimeISO(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-01T10:30:00Z", FormatTimeISO(at))
}
