package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/ttacon/chalk"
)

var osExit = os.Exit

// exit is replaced in tests
var exit = osExit

// reportCrash prints the panic value and stack. Lines end in \r\n in case the
// terminal is still in raw mode
func reportCrash(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\r\n%s\r\n", chalk.Red.Color(fmt.Sprintf("PHONK RACER CRASHED: %v", r)))
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
}

// reportExit prints the final score after the screen is restored
func reportExit(w io.Writer, score int, frames int64) {
	fmt.Fprintf(w, "%s %s\n", chalk.Yellow.Color("Final score:"), chalk.Bold.TextStyle(fmt.Sprint(score)))
	fmt.Fprintf(w, "%s\n", chalk.Dim.TextStyle(fmt.Sprintf("%d frames", frames)))
}

// crashHandler restores the terminal, reports the panic and exits 1.
// Deferred at the top of every goroutine that touches game or screen state
func crashHandler(screen tcell.Screen) func() {
	return func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			reportCrash(os.Stderr, r, debug.Stack())
			exit(1)
		}
	}
}
