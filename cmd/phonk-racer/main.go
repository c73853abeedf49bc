// Command phonk-racer is a top-down arcade driving game for the terminal.
//
// Steer with the arrow keys or A/D, dodge the oncoming cars, press R after a
// crash to restart and Q or Esc to quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/phonk-racer/audio"
	"github.com/lixenwraith/phonk-racer/config"
	"github.com/lixenwraith/phonk-racer/constants"
	"github.com/lixenwraith/phonk-racer/input"
)

func main() {
	// Panics before the screen exists only need the report
	defer crashHandler(nil)()

	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	root, err := filepath.Abs(cfg.AssetRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Asset root %q: %v\n", cfg.AssetRoot, err)
		os.Exit(2)
	}
	fsys := os.DirFS(root)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}

	sound := audio.NewSoundManager(cfg.Audio, fsys)
	a, err := newApp(cfg, screen, fsys, input.SystemClock{}, sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	if err := sound.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
	}
	defer sound.Cleanup()

	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer crashHandler(screen)()
	screen.SetTitle(constants.Title)
	screen.EnableFocus()
	screen.HideCursor()

	sound.PlaySoundtrack()

	runErr := a.run()
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "phonk-racer: %v\n", runErr)
		sound.Cleanup()
		os.Exit(1)
	}
	reportExit(os.Stdout, a.score(), a.frames())
}
