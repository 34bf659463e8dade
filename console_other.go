//go:build !windows

package main

// enableConsoleColors is a no-op outside Windows; ANSI terminals handle
// zerolog's colors natively.
func enableConsoleColors() {}
