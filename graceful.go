package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/natscamp/money-manager/common"
)

// watchGracefulExit requests shutdown when the supervising dev tooling
// writes the graceful-exit line. It returns at EOF or after the request.
func watchGracefulExit(r io.Reader, shutdown func() bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != common.GracefulExitMessage {
			continue
		}
		common.LogInfo("Graceful exit requested on stdin")
		shutdown()
		return
	}
}
