package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	tests := []struct {
		name     string
		value    string
		loc      *time.Location
		expected time.Time
		wantErr  bool
	}{
		{name: "Vazio", value: "", expected: time.Time{}},
		{name: "UTC padrão", value: "2025-04-21", expected: time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC)},
		{name: "Fuso informado", value: "2025-04-21", loc: london, expected: time.Date(2025, 4, 21, 0, 0, 0, 0, london)},
		{name: "Formato inválido", value: "21/04/2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.value, tt.loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(date))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 3.15, RoundWithTwoDecimalPlace(3.149))
	assert.Equal(t, -1.24, RoundWithTwoDecimalPlace(-1.235))
	assert.Equal(t, 12.5, RoundWithTwoDecimalPlace(12.5))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idLength)
	assert.Regexp(t, `^[A-Za-z0-9]+$`, id)
}
