// Package ui provides the desktop integration for Money Manager.
// This file contains the main window adapter.
package ui

import (
	"context"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/natscamp/money-manager/common"
	"github.com/natscamp/money-manager/content"
	"github.com/natscamp/money-manager/lifecycle"
)

// windowRuntime is the subset of the wails runtime the window uses.
type windowRuntime interface {
	Show(ctx context.Context)
	Hide(ctx context.Context)
	Maximise(ctx context.Context)
	Reload(ctx context.Context)
}

type wailsWindowRuntime struct{}

func (wailsWindowRuntime) Show(ctx context.Context) {
	wailsRuntime.WindowShow(ctx)
	wailsRuntime.WindowUnminimise(ctx)
}

func (wailsWindowRuntime) Hide(ctx context.Context)     { wailsRuntime.WindowHide(ctx) }
func (wailsWindowRuntime) Maximise(ctx context.Context) { wailsRuntime.WindowMaximise(ctx) }
func (wailsWindowRuntime) Reload(ctx context.Context)   { wailsRuntime.WindowReloadApp(ctx) }

// WindowFactory hands out the wails main window.
//
// wails owns exactly one native window for the life of the process. The
// first handle adopts it as created by wails.Run; later handles stand for
// a re-created window and reload its content.
type WindowFactory struct {
	ctx     func() context.Context
	runtime windowRuntime
	created int
}

// NewWindowFactory creates a factory. ctx returns the wails runtime context.
func NewWindowFactory(ctx func() context.Context) *WindowFactory {
	return &WindowFactory{ctx: ctx, runtime: wailsWindowRuntime{}}
}

// NewWindow returns a handle on the main window.
func (f *WindowFactory) NewWindow(opts lifecycle.WindowOptions) (lifecycle.Window, error) {
	ctx := f.ctx()
	if ctx == nil {
		return nil, errRuntimeNotStarted
	}

	f.created++
	common.LogDebug("Main window handle %d (isolated=%t, menu=%t)", f.created, opts.Isolated, opts.ShowMenu)
	return &mainWindow{
		ctx:     ctx,
		runtime: f.runtime,
		reload:  f.created > 1,
	}, nil
}

type mainWindow struct {
	ctx     context.Context
	runtime windowRuntime
	reload  bool
}

// Load reloads the page on a re-created window. wails loads the first page
// itself and reports completion through OnDomReady.
func (w *mainWindow) Load(src content.Source) error {
	if w.reload {
		common.LogDebug("Reloading %s", src)
		w.runtime.Reload(w.ctx)
	}
	return nil
}

func (w *mainWindow) Show()     { w.runtime.Show(w.ctx) }
func (w *mainWindow) Hide()     { w.runtime.Hide(w.ctx) }
func (w *mainWindow) Maximize() { w.runtime.Maximise(w.ctx) }

// Close hides the native window. It is destroyed when the process quits.
func (w *mainWindow) Close() { w.runtime.Hide(w.ctx) }
