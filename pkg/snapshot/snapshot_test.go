package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oisee/synacorvm/pkg/vm"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	m, err := vm.New([]byte{0, 0, 1, 0, 5, 0})
	if err != nil {
		t.Fatalf("vm.New: %v", err)
	}
	m.Reg[0] = 42
	m.Reg[7] = 0x6486
	m.Stack = []uint16{1, 2, 3}
	m.PC = 2
	m.Stdin = []byte("look\n")

	path := filepath.Join(t.TempDir(), "snap.json")
	if err := Save(m, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored, err := vm.New(nil)
	if err != nil {
		t.Fatalf("vm.New: %v", err)
	}
	if err := Load(restored, path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if restored.Mem != m.Mem {
		t.Error("Mem did not round-trip")
	}
	if restored.Reg != m.Reg {
		t.Error("Reg did not round-trip")
	}
	if len(restored.Stack) != 3 || restored.Stack[0] != 1 || restored.Stack[2] != 3 {
		t.Errorf("Stack did not round-trip: %v", restored.Stack)
	}
	if restored.PC != 2 {
		t.Errorf("PC did not round-trip: %d", restored.PC)
	}
	if string(restored.Stdin) != "look\n" {
		t.Errorf("Stdin did not round-trip: %q", restored.Stdin)
	}
}

func TestSnapshotIsPlainJSON(t *testing.T) {
	m, err := vm.New(nil)
	if err != nil {
		t.Fatalf("vm.New: %v", err)
	}
	m.Stdin = []byte{1, 2, 3}

	path := filepath.Join(t.TempDir(), "snap.json")
	if err := Save(m, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// The stdin field must be a JSON array of integers, not a
	// base64-encoded string, per the wire format contract.
	if !strings.Contains(string(raw), `"stdin":[1,2,3]`) {
		t.Errorf("stdin field not encoded as an integer array: %s", raw)
	}
}
