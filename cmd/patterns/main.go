// Copyright 2025 patternforge LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/patternforge/patterns/cmd/patterns/commands"
	"github.com/patternforge/patterns/cmd/patterns/opts"
	"github.com/patternforge/patterns/pkg/log"
)

func main() {
	// Optional local overrides (PATTERNS_LOG_LEVEL etc.)
	_ = godotenv.Load()

	ctx := zlog.Logger.WithContext(context.Background())
	userLogger := log.New(os.Stdout, zerolog.InfoLevel)

	rootCmd := &cobra.Command{
		Use:   "patterns",
		Short: "A teaching collection of classic design patterns",
		Long: `patterns demonstrates the classic creational and structural design
patterns in Go. The composite file tree is the centerpiece: describe one in a
scene file (YAML, JSON or HCL), then evaluate, render or search it.`,
	}

	addRootFlags(rootCmd)

	rootOpts := &opts.RootOpts{
		UserLogger: userLogger,
	}

	// Flags are parsed by Execute, so shared options are filled in here.
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogging()
		if lvl, err := zerolog.ParseLevel(os.Getenv("PATTERNS_LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
			zerolog.SetGlobalLevel(lvl)
		}
		rootOpts.SceneFile = sceneFile
	}

	rootCmd.AddCommand(
		commands.NewEvalCmd(rootOpts),
		commands.NewShowCmd(rootOpts),
		commands.NewFindCmd(rootOpts),
		commands.NewDemoCmd(rootOpts),
		commands.NewDescribeCmd(rootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger.Error(err.Error())
		os.Exit(1)
	}
}
