//go:build windows

package main

import "os"

// Windows only delivers os.Interrupt (Ctrl+C, Ctrl+Break).
var shutdownSignals = []os.Signal{os.Interrupt}
