// Package facade implements the facade pattern: a single Start call hides
// the boot choreography of the cpu, memory and drive subsystems.
package facade

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// CPU is one subsystem.
type CPU struct{}

func (CPU) Freeze() string { return "freezing processor" }

func (CPU) Jump(position string) string { return "jumping to " + position }

func (CPU) Execute() string { return "executing" }

// Memory is one subsystem.
type Memory struct{}

func (Memory) Load(position, data string) string {
	return fmt.Sprintf("loading from %s data: %q", position, data)
}

// SolidStateDrive is one subsystem.
type SolidStateDrive struct{}

func (SolidStateDrive) Read(lba, size string) string {
	return fmt.Sprintf("some data from sector %s with size %s", lba, size)
}

// Computer is the facade over the subsystems.
type Computer struct {
	cpu    CPU
	memory Memory
	drive  SolidStateDrive
}

// NewComputer assembles the subsystems behind the facade.
func NewComputer() *Computer {
	return &Computer{}
}

// Start boots the machine and returns the transcript of subsystem calls in
// execution order.
func (c *Computer) Start(ctx context.Context) []string {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Msg("starting computer")

	transcript := []string{
		c.cpu.Freeze(),
		c.memory.Load("0x00", c.drive.Read("100", "1024")),
		c.cpu.Jump("0x00"),
		c.cpu.Execute(),
	}

	logger.Debug().Int("steps", len(transcript)).Msg("computer started")
	return transcript
}
