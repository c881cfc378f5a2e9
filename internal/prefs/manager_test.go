package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"NexusBoard/internal/model"
)

func TestSaveStateReplacesFileCleanly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.json")

	if err := SaveState(path, &model.PrefsState{Language: "en", RiskAppetite: 50}); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if err := SaveState(path, &model.PrefsState{Language: "bn", RiskAppetite: 70}); err != nil {
		t.Fatalf("SaveState overwrite: %v", err)
	}

	st, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if st.Language != "bn" || st.RiskAppetite != 70 {
		t.Errorf("reloaded state = %+v", st)
	}
	if st.UpdatedAt.IsZero() {
		t.Error("SaveState must stamp UpdatedAt")
	}

	// The rename must not strand temp files next to the state file.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected files after save: %v", names)
	}
}

func TestNewManagerInitializesFreshState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	m, err := NewManager(path, 50)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	st := m.GetState()
	if st.Language != "en" {
		t.Errorf("language = %q, want en", st.Language)
	}
	if st.RiskAppetite != 50 {
		t.Errorf("risk appetite = %d, want 50", st.RiskAppetite)
	}
	if st.Onboarded {
		t.Error("fresh state should not be onboarded")
	}
}

func TestManagerPersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	m, err := NewManager(path, 50)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetLanguage("bn"); err != nil {
		t.Fatal(err)
	}
	m.SetOnboarded(true)
	if err := m.SetRiskAppetite(70); err != nil {
		t.Fatal(err)
	}
	m.SaveModuleValues(model.ModuleLoan, map[string]float64{"amount": 100000, "months": 24})

	reloaded, err := NewManager(path, 50)
	if err != nil {
		t.Fatal(err)
	}
	st := reloaded.GetState()
	if st.Language != "bn" || !st.Onboarded || st.RiskAppetite != 70 {
		t.Errorf("state not persisted: %+v", st)
	}
	values, ok := reloaded.ModuleValues(model.ModuleLoan)
	if !ok {
		t.Fatal("module values not persisted")
	}
	if values["amount"] != 100000 || values["months"] != 24 {
		t.Errorf("module values = %v", values)
	}
}

func TestManagerRejectsBadInput(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "prefs.json"), 50)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetLanguage("fr"); err == nil {
		t.Error("expected error for unsupported language")
	}
	if err := m.SetRiskAppetite(101); err == nil {
		t.Error("expected error for out-of-range risk appetite")
	}
}

func TestGetStateReturnsCopy(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "prefs.json"), 50)
	if err != nil {
		t.Fatal(err)
	}
	m.SaveModuleValues(model.ModuleTax, map[string]float64{"monthlySalary": 50000})

	st := m.GetState()
	st.ModuleValues[model.ModuleTax]["monthlySalary"] = 1

	values, _ := m.ModuleValues(model.ModuleTax)
	if values["monthlySalary"] != 50000 {
		t.Error("GetState leaked internal map")
	}
}
