//go:build !windows

package main

const stdinGracefulExit = false
