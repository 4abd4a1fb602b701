package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"5", 5},
		{" 7", 7},
		{"+8", 8},
		{"12abc", 12},
		{"3.9", 3},
		{"007", 7},
		{"-4", 0},
		{"-", 0},
		{"", 0},
		{"abc", 0},
		{"100000", 100000},
		{"100001", 0},
		{"9223372036854775807", 0},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseOrderCount(tt.raw), "raw=%q", tt.raw)
	}
}
