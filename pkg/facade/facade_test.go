package facade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStart(t *testing.T) {
	computer := NewComputer()

	got := computer.Start(context.Background())

	want := []string{
		"freezing processor",
		`loading from 0x00 data: "some data from sector 100 with size 1024"`,
		"jumping to 0x00",
		"executing",
	}
	assert.Equal(t, want, got, "boot transcript should follow the fixed choreography")
}
