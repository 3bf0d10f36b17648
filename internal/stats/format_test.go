package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "--"},
		{-30, "--"},
		{1, "1m"},
		{59, "59m"},
		{60, "1h"},
		{61, "1h 1m"},
		{90, "1h 30m"},
		{120, "2h"},
		{150, "2h 30m"},
		{1440, "24h"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes), "minutes=%d", tt.minutes)
	}
}
