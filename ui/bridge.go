package ui

import (
	"github.com/natscamp/money-manager/common"
	"github.com/natscamp/money-manager/content"
)

// AppInfo describes the running shell to the page.
type AppInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Copyright   string `json:"copyright"`
	Development bool   `json:"development"`
}

// Bridge is bound to the page only when content isolation is disabled.
type Bridge struct {
	version  string
	source   content.Source
	shutdown func() bool
}

// AppInfo returns the application metadata.
func (b *Bridge) AppInfo() AppInfo {
	return AppInfo{
		Name:        common.AppName,
		Version:     b.version,
		Copyright:   common.Copyright,
		Development: b.source.IsDevelopment(),
	}
}

// Quit requests an orderly shutdown.
func (b *Bridge) Quit() {
	b.shutdown()
}
