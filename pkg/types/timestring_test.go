package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid afternoon", input: "16:30", want: "16:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "no leading zero normalized", input: "9:00", want: "09:00"},
		{name: "with seconds", input: "09:00:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "09:61", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 1, 10, 15, 45, 0, time.UTC))
	assert.Equal(t, TimeString("10:15"), ts)
}

func TestTimeString_HourMinute(t *testing.T) {
	ts := TimeString("14:30")

	hour, err := ts.Hour()
	require.NoError(t, err)
	assert.Equal(t, 14, hour)

	minute, err := ts.Minute()
	require.NoError(t, err)
	assert.Equal(t, 30, minute)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("16:00").IsAfter("09:30"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), got)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("from time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("from string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("09:00:00"))
		assert.Equal(t, TimeString("09:00"), ts)
	})

	t.Run("from bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("16:30")))
		assert.Equal(t, TimeString("16:30"), ts)
	})

	t.Run("nil resets value", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
