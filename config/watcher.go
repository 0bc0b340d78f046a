package config

import (
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the config file for changes and reloads
// automatically. No-op when no config file is in use.
func (m *Manager) Watch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching || m.viper.ConfigFileUsed() == "" {
		return
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.mu.Lock()
		config, err := m.unmarshalConfig()
		if err != nil {
			log.Printf("### config reload failed: %v", err)
			m.mu.Unlock()
			return
		}
		m.config = config
		m.notifyLocked()
	})

	m.watching = true
}

// OnConfigChange registers a callback invoked after every reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// notifyLocked copies callbacks and config, releases the lock, then
// notifies. Must be called with m.mu held for write.
func (m *Manager) notifyLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}
