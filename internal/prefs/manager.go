package prefs

import (
	"fmt"
	"log"
	"sync"

	"NexusBoard/internal/model"
)

// Manager handles user preference state with concurrency safety.
type Manager struct {
	mu       sync.Mutex
	state    *model.PrefsState
	filePath string
}

// NewManager creates a Manager, loading or initializing state from disk.
func NewManager(filePath string, defaultAppetite int) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}

	// Initialize if fresh state
	if state.Language == "" {
		state.Language = "en"
		state.RiskAppetite = defaultAppetite
	}
	if state.ModuleValues == nil {
		state.ModuleValues = make(map[model.ModuleID]map[string]float64)
	}

	m := &Manager{state: state, filePath: filePath}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

// GetState returns a copy of the current preference state.
func (m *Manager) GetState() model.PrefsState {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *m.state
	copied.ModuleValues = make(map[model.ModuleID]map[string]float64, len(m.state.ModuleValues))
	for id, values := range m.state.ModuleValues {
		inner := make(map[string]float64, len(values))
		for k, v := range values {
			inner[k] = v
		}
		copied.ModuleValues[id] = inner
	}
	return copied
}

// SetLanguage switches the UI language. Only "en" and "bn" are accepted.
func (m *Manager) SetLanguage(lang string) error {
	if lang != "en" && lang != "bn" {
		return fmt.Errorf("unsupported language: %s", lang)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Language = lang
	m.persist("language")
	return nil
}

// SetOnboarded marks the onboarding tour as completed or reset.
func (m *Manager) SetOnboarded(done bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Onboarded = done
	m.persist("onboarding flag")
}

// SetRiskAppetite stores the risk appetite slider position.
func (m *Manager) SetRiskAppetite(appetite int) error {
	if appetite < 0 || appetite > 100 {
		return fmt.Errorf("risk appetite must be between 0 and 100, got %d", appetite)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.RiskAppetite = appetite
	m.persist("risk appetite")
	return nil
}

// SaveModuleValues remembers the last inputs of one module form.
func (m *Manager) SaveModuleValues(id model.ModuleID, values map[string]float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inner := make(map[string]float64, len(values))
	for k, v := range values {
		inner[k] = v
	}
	m.state.ModuleValues[id] = inner
	m.persist("module values")
}

// ModuleValues returns the saved inputs of one module form, if any.
func (m *Manager) ModuleValues(id model.ModuleID) (map[string]float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	values, ok := m.state.ModuleValues[id]
	if !ok {
		return nil, false
	}
	inner := make(map[string]float64, len(values))
	for k, v := range values {
		inner[k] = v
	}
	return inner, true
}

// persist saves best-effort under the held lock; reads still serve the in-memory state.
func (m *Manager) persist(what string) {
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save prefs state after %s update: %v", what, err)
	}
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
