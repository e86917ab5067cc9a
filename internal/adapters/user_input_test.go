package adapters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserInputReaderReadInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     int
		attempts int
	}{
		{name: "first answer", input: "1\n", want: 1, attempts: 1},
		{name: "without newline", input: "0", want: 0, attempts: 1},
		{name: "retries garbage", input: "abc\n\n2\n", want: 2, attempts: 3},
		{name: "retries out of range", input: "5\n3\n", want: 3, attempts: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			reader := NewUserInputReader(strings.NewReader(tt.input), &out)
			got, err := reader.ReadInt("Pick a target", 4)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.attempts, strings.Count(out.String(), "Pick a target"))
			assert.Equal(t, tt.attempts-1, strings.Count(out.String(), "Invalid input. Please enter a valid integer."))
		})
	}
}

func TestUserInputReaderEndOfInput(t *testing.T) {
	var out bytes.Buffer
	reader := NewUserInputReader(strings.NewReader("nope\n9\n"), &out)
	_, err := reader.ReadInt("Pick a target", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end of input")
}
