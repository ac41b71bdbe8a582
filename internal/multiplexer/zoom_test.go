package multiplexer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoom_StepsAndClamps(t *testing.T) {
	z := NewZoom()
	assert.Equal(t, DefaultZoom, z.Level())

	for i := 0; i < 20; i++ {
		z.In()
	}
	assert.Equal(t, MaxZoom, z.Level())

	for i := 0; i < 30; i++ {
		z.Out()
	}
	assert.Equal(t, MinZoom, z.Level())

	assert.Equal(t, DefaultZoom, z.Reset())
}

func TestZoom_StepsDoNotDrift(t *testing.T) {
	z := NewZoom()
	z.In()
	z.In()
	z.In()
	assert.Equal(t, 1.3, z.Level())
	assert.Equal(t, 130, z.Percent())

	z.Out()
	assert.Equal(t, 1.2, z.Level())
}

func TestZoom_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"inside range", 1.5, 1.5},
		{"below min", 0.1, MinZoom},
		{"above max", 3, MaxZoom},
		{"rounds", 1.234, 1.23},
		{"nan resets", math.NaN(), DefaultZoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := NewZoom()
			assert.Equal(t, tt.expected, z.Set(tt.input))
		})
	}
}
