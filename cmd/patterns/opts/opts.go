package opts

import (
	"github.com/patternforge/patterns/pkg/log"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// SceneFile is the path to the scene description
	SceneFile string
	// UserLogger renders user-facing console output
	UserLogger *log.Logger
}
