// Lifecycle tests for the SQLite backend.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func testConfig(dir string) types.Config {
	return types.Config{
		Backend: types.BackendSQLite,
		DataDir: dir,
	}
}

func TestBackendAttach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	if err := b.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	// Database file created.
	if _, err := os.Stat(filepath.Join(tmpDir, dbFileName)); os.IsNotExist(err) {
		t.Error("contacts.db not created")
	}

	// Double attach fails.
	if err := b.Attach(testConfig(tmpDir)); err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}
}

func TestBackendAttachRejectsBadConfig(t *testing.T) {
	b := NewBackend()

	err := b.Attach(types.Config{Backend: "mysql"})
	if err != types.ErrBackendUnknown {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}

func TestBackendDetach(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(testConfig(t.TempDir())); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Idempotent.
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Operations fail after detach.
	if _, err := b.List(); err != types.ErrDetached {
		t.Errorf("expected ErrDetached from List, got %v", err)
	}
	if _, err := b.Get("A1"); err != types.ErrDetached {
		t.Errorf("expected ErrDetached from Get, got %v", err)
	}
	if err := b.Remove("A1"); err != types.ErrDetached {
		t.Errorf("expected ErrDetached from Remove, got %v", err)
	}
}
