package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTimeStringFromString проверяет парсинг строки "HH:MM"
func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning time", input: "08:00", wantErr: false},
		{name: "valid evening time", input: "22:00", wantErr: false},
		{name: "midnight", input: "00:00", wantErr: false},
		{name: "missing leading zero", input: "8:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "with seconds", input: "08:00:00", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

// TestTimeStringComparison проверяет лексикографическое сравнение
func TestTimeStringComparison(t *testing.T) {
	opening := TimeString("08:00")
	closing := TimeString("22:00")

	assert.True(t, opening.IsBefore(closing))
	assert.False(t, closing.IsBefore(opening))
	assert.True(t, closing.IsAfter(opening))
	assert.False(t, opening.IsBefore(opening))
	assert.False(t, opening.IsAfter(opening))
}

// TestTimeStringAddMinutes проверяет сложение с переходом через час
func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("09:30")

	result, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), result)

	_, err = TimeString("oops").AddMinutes(10)
	assert.Error(t, err)
}

// TestTimeStringScan проверяет чтение из БД
func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("15:45")))
	assert.Equal(t, TimeString("15:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
