package lifecycle

// State is the combined window and tray state.
type State int

const (
	StateStarting State = iota
	StateWindowVisible
	StateWindowHiddenNoTray
	StateWindowHiddenWithTray
	StateNoWindow
	StateTerminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStarting:
		return "Starting"
	case StateWindowVisible:
		return "WindowVisible"
	case StateWindowHiddenNoTray:
		return "WindowHiddenNoTray"
	case StateWindowHiddenWithTray:
		return "WindowHiddenWithTray"
	case StateNoWindow:
		return "NoWindow"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Event is a transition trigger. The set is closed; each event maps to
// exactly one handler.
type Event int

const (
	// EventReady is delivered once the platform can create windows.
	EventReady Event = iota
	// EventContentLoaded is delivered when the window finished loading content.
	EventContentLoaded
	// EventWindowClose is the user closing the main window.
	EventWindowClose
	// EventWindowsAllClosed is delivered after the last window was closed.
	EventWindowsAllClosed
	// EventActivate is a re-activation request (dock click, second launch).
	EventActivate
	// EventTrayOpen is the tray menu's "Open" item.
	EventTrayOpen
	// EventTrayDoubleClick is a double click on the tray icon.
	EventTrayDoubleClick
	// EventTrayExit is the tray menu's "Exit" item.
	EventTrayExit
	// EventShutdownRequest is a graceful termination request from outside.
	EventShutdownRequest
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventReady:
		return "Ready"
	case EventContentLoaded:
		return "ContentLoaded"
	case EventWindowClose:
		return "WindowClose"
	case EventWindowsAllClosed:
		return "WindowsAllClosed"
	case EventActivate:
		return "Activate"
	case EventTrayOpen:
		return "TrayOpen"
	case EventTrayDoubleClick:
		return "TrayDoubleClick"
	case EventTrayExit:
		return "TrayExit"
	case EventShutdownRequest:
		return "ShutdownRequest"
	default:
		return "Unknown"
	}
}
