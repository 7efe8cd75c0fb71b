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
		{name: "short format", input: "09:00", want: "09:00:00"},
		{name: "canonical format", input: "09:00:00", want: "09:00:00"},
		{name: "afternoon short", input: "14:30", want: "14:30:00"},
		{name: "with seconds", input: "23:59:59", want: "23:59:59"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "nine am", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "missing minutes", input: "09", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 5, 20, 9, 30, 15, 0, time.UTC)
	assert.Equal(t, TimeString("09:30:15"), NewTimeString(moment))
}

func TestTimeStringShort(t *testing.T) {
	ts := TimeString("09:00:00")
	assert.Equal(t, "09:00", ts.Short())
}

func TestTimeStringOrdering(t *testing.T) {
	early := TimeString("09:00:00")
	late := TimeString("17:00:00")

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("09:00:00")

	next, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00:00"), next)

	next, err = ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30:00"), next)

	// Переход через полночь запрещен
	_, err = TimeString("23:30:00").AddMinutes(60)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringValidate(t *testing.T) {
	assert.NoError(t, TimeString("09:00:00").Validate())
	assert.Error(t, TimeString("09:00").Validate())
	assert.Error(t, TimeString("").Validate())
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("10:00:00"), ts)

	require.NoError(t, ts.Scan("11:00"))
	assert.Equal(t, TimeString("11:00:00"), ts)

	require.NoError(t, ts.Scan([]byte("12:00:00")))
	assert.Equal(t, TimeString("12:00:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("09:00:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("09:00").Value()
	assert.Error(t, err)
}
