//go:build windows

package main

import "golang.org/x/sys/windows"

// enableConsoleColors turns on virtual terminal processing so zerolog's
// console colors render in cmd.exe. Failure just means monochrome logs.
func enableConsoleColors() {
	handle, err := windows.GetStdHandle(windows.STD_ERROR_HANDLE)
	if err != nil {
		return
	}
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return
	}
	_ = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
