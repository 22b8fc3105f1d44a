package tui

import "github.com/alexisbeaulieu97/ribbon/internal/config"

// ConfigReloadedMsg carries a freshly loaded scene after the config file changed.
type ConfigReloadedMsg struct {
	Scene *config.Scene
}

// ReloadFailedMsg reports a config change that could not be loaded. The
// previous scene stays on screen.
type ReloadFailedMsg struct {
	Err error
}

// WatchStoppedMsg reports that the config watcher ended.
type WatchStoppedMsg struct {
	Err error
}
