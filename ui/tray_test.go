package ui

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natscamp/money-manager/common"
	"github.com/natscamp/money-manager/lifecycle"
)

// fakeBackend models a registration that can be run and quit once per
// process.
type fakeBackend struct {
	mu        sync.Mutex
	holdReady bool
	onReady   func()
	runs      int
	quits     int
	quitCh    chan struct{}
	quitOnce  sync.Once
	icon      []byte
	icons     int
	tooltip   string
	dclick    func()
	items     map[string]func()
	visible   map[string]bool
	order     []string
	hideCalls int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		quitCh:  make(chan struct{}),
		items:   make(map[string]func()),
		visible: make(map[string]bool),
	}
}

func (b *fakeBackend) run(onReady, onExit func()) {
	b.mu.Lock()
	b.runs++
	first := b.runs == 1
	if b.holdReady {
		b.onReady = onReady
	}
	b.mu.Unlock()

	if !first {
		// a second registration never becomes ready
		return
	}
	if !b.holdReady {
		onReady()
	}
	<-b.quitCh
	onExit()
}

func (b *fakeBackend) quit() {
	b.mu.Lock()
	b.quits++
	b.mu.Unlock()
	b.quitOnce.Do(func() { close(b.quitCh) })
}

func (b *fakeBackend) releaseReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.onReady == nil {
		return false
	}
	b.onReady()
	b.onReady = nil
	return true
}

func (b *fakeBackend) setIcon(icon []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.icon = icon
	b.icons++
}

func (b *fakeBackend) setTooltip(tooltip string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tooltip = tooltip
}

func (b *fakeBackend) setOnDoubleClick(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dclick = fn
}

func (b *fakeBackend) setItem(label, _ string, onClick func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.items[label]; !ok {
		b.order = append(b.order, label)
	}
	b.items[label] = onClick
	b.visible[label] = true
}

func (b *fakeBackend) hideItems() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hideCalls++
	for label := range b.items {
		b.items[label] = func() {}
		b.visible[label] = false
	}
}

func (b *fakeBackend) click(label string) {
	b.mu.Lock()
	fn := b.items[label]
	b.mu.Unlock()
	fn()
}

func (b *fakeBackend) doubleClick() {
	b.mu.Lock()
	fn := b.dclick
	b.mu.Unlock()
	fn()
}

func (b *fakeBackend) runCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.runs
}

type fakeNotifier struct {
	sent []Notification
	err  error
}

func (n *fakeNotifier) Notify(note Notification) error {
	n.sent = append(n.sent, note)
	return n.err
}

func testSpec() lifecycle.TraySpec {
	return lifecycle.TraySpec{
		Icon:    []byte{1},
		Tooltip: "Money Manager",
		Menu: []lifecycle.MenuItem{
			{Label: "Open", Event: lifecycle.EventTrayOpen},
			{Label: "Exit", Event: lifecycle.EventTrayExit},
		},
		DoubleClick: lifecycle.EventTrayDoubleClick,
	}
}

func TestTrayFactory_NewTray(t *testing.T) {
	backend := newFakeBackend()
	f := newTrayFactory(backend, nil, time.Second)
	defer f.Close()

	var got []lifecycle.Event
	tray, err := f.NewTray(testSpec(), func(ev lifecycle.Event) { got = append(got, ev) })
	require.NoError(t, err)
	require.NotNil(t, tray)

	assert.Equal(t, []byte{1}, backend.icon)
	assert.Equal(t, "Money Manager", backend.tooltip)
	assert.Equal(t, []string{"Open", "Exit"}, backend.order)

	backend.click("Open")
	backend.click("Exit")
	backend.doubleClick()
	assert.Equal(t, []lifecycle.Event{
		lifecycle.EventTrayOpen,
		lifecycle.EventTrayExit,
		lifecycle.EventTrayDoubleClick,
	}, got)
}

func TestTrayFactory_SingleRegistrationAcrossCycles(t *testing.T) {
	backend := newFakeBackend()
	f := newTrayFactory(backend, nil, time.Second)

	for i := 0; i < 3; i++ {
		tray, err := f.NewTray(testSpec(), func(lifecycle.Event) {})
		require.NoError(t, err, "cycle %d", i)
		assert.Equal(t, []byte{1}, backend.icon, "icon shown in cycle %d", i)
		assert.True(t, backend.visible["Open"])

		tray.Destroy()
		assert.Equal(t, f.blank, backend.icon, "icon cleared in cycle %d", i)
		assert.False(t, backend.visible["Open"])
		assert.False(t, backend.visible["Exit"])
		assert.Empty(t, backend.tooltip)
	}

	assert.Equal(t, 1, backend.runCount(), "the tray is registered once per process")
	assert.Equal(t, 3, backend.hideCalls)
	assert.Len(t, backend.order, 2, "menu items are reused")

	f.Close()
	f.Close()
	assert.Equal(t, 2, backend.quits)
	assert.Equal(t, 1, backend.runCount())
}

func TestTrayFactory_DestroyedTrayIgnoresClicks(t *testing.T) {
	backend := newFakeBackend()
	f := newTrayFactory(backend, nil, time.Second)
	defer f.Close()

	var first, second []lifecycle.Event
	old, err := f.NewTray(testSpec(), func(ev lifecycle.Event) { first = append(first, ev) })
	require.NoError(t, err)
	clickOld := backend.items["Open"]
	old.Destroy()

	clickOld()
	backend.click("Open")
	assert.Empty(t, first)

	_, err = f.NewTray(testSpec(), func(ev lifecycle.Event) { second = append(second, ev) })
	require.NoError(t, err)

	clickOld()
	backend.click("Open")
	assert.Empty(t, first)
	assert.Equal(t, []lifecycle.Event{lifecycle.EventTrayOpen}, second)

}

func TestTrayFactory_SupersededTrayDoesNotClear(t *testing.T) {
	backend := newFakeBackend()
	f := newTrayFactory(backend, nil, time.Second)
	defer f.Close()

	var got []lifecycle.Event
	first, err := f.NewTray(testSpec(), func(lifecycle.Event) { t.Error("superseded tray emitted") })
	require.NoError(t, err)
	_, err = f.NewTray(testSpec(), func(ev lifecycle.Event) { got = append(got, ev) })
	require.NoError(t, err)

	first.Destroy()
	assert.Equal(t, []byte{1}, backend.icon)
	assert.True(t, backend.visible["Open"])

	backend.click("Exit")
	assert.Equal(t, []lifecycle.Event{lifecycle.EventTrayExit}, got)
}

func TestTrayFactory_MissingIcon(t *testing.T) {
	backend := newFakeBackend()
	f := newTrayFactory(backend, nil, time.Second)

	spec := testSpec()
	spec.Icon = nil
	_, err := f.NewTray(spec, func(lifecycle.Event) {})
	assert.ErrorIs(t, err, common.ErrNoIcon)
	assert.Zero(t, backend.runCount(), "nothing registered without an icon")

	f.Close()
	assert.Zero(t, backend.quits)
}

func TestTrayFactory_ReadyTimeoutKeepsRegistration(t *testing.T) {
	backend := newFakeBackend()
	backend.holdReady = true
	f := newTrayFactory(backend, nil, 10*time.Millisecond)
	defer f.Close()

	_, err := f.NewTray(testSpec(), func(lifecycle.Event) {})
	require.Error(t, err)

	require.Eventually(t, backend.releaseReady, time.Second, time.Millisecond)

	f.timeout = time.Second
	_, err = f.NewTray(testSpec(), func(lifecycle.Event) {})
	require.NoError(t, err)
	assert.Equal(t, 1, backend.runCount(), "a late registration is reused, not restarted")
}

func TestTrayIcon_DisplayBalloon(t *testing.T) {
	notifier := &fakeNotifier{}
	f := newTrayFactory(newFakeBackend(), notifier, time.Second)
	defer f.Close()

	tray, err := f.NewTray(testSpec(), func(lifecycle.Event) {})
	require.NoError(t, err)

	require.NoError(t, tray.DisplayBalloon(lifecycle.Balloon{
		Icon:    lifecycle.BalloonInfo,
		Title:   "Money Manager",
		Content: "App minimized to tray",
	}))
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "App minimized to tray", notifier.sent[0].Message)

	notifier.err = errors.New("no bus")
	assert.Error(t, tray.DisplayBalloon(lifecycle.Balloon{}))

	silent := &trayIcon{factory: f}
	assert.ErrorIs(t, silent.DisplayBalloon(lifecycle.Balloon{}), common.ErrNotifierUnavailable)
}
