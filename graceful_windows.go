//go:build windows

package main

// Windows has no SIGTERM for the dev tooling to send.
const stdinGracefulExit = true
