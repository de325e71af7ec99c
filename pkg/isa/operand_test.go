package isa

import "testing"

func TestNewRegisterBoundaries(t *testing.T) {
	tests := []struct {
		raw     uint16
		wantReg Register
		wantErr bool
	}{
		{32767, 0, true},
		{32768, 0, false},
		{32775, 7, false},
		{32776, 0, true},
		{0, 0, true},
	}
	for _, tc := range tests {
		reg, err := NewRegister(tc.raw)
		if (err != nil) != tc.wantErr {
			t.Errorf("NewRegister(%d): err=%v, wantErr=%v", tc.raw, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && reg != tc.wantReg {
			t.Errorf("NewRegister(%d): got %d, want %d", tc.raw, reg, tc.wantReg)
		}
	}
}

func TestNewAddressBoundaries(t *testing.T) {
	if _, err := NewAddress(32767); err != nil {
		t.Errorf("NewAddress(32767) should be valid: %v", err)
	}
	if _, err := NewAddress(32768); err == nil {
		t.Error("NewAddress(32768) should be invalid")
	}
}

func TestNewValueClassifiesLiteralOrRegister(t *testing.T) {
	v, err := NewValue(42)
	if err != nil || v.Kind != ValueLiteral || v.Lit != 42 {
		t.Errorf("NewValue(42): got %+v, err=%v", v, err)
	}

	v, err = NewValue(32770)
	if err != nil || v.Kind != ValueRegister || v.Reg != 2 {
		t.Errorf("NewValue(32770): got %+v, err=%v", v, err)
	}

	if _, err := NewValue(32776); err == nil {
		t.Error("NewValue(32776) should be invalid")
	}
}

func TestNewLocationClassifiesAddressOrRegister(t *testing.T) {
	loc, err := NewLocation(100)
	if err != nil || loc.Kind != LocationAddress || loc.Addr != 100 {
		t.Errorf("NewLocation(100): got %+v, err=%v", loc, err)
	}

	loc, err = NewLocation(32775)
	if err != nil || loc.Kind != LocationRegister || loc.Reg != 7 {
		t.Errorf("NewLocation(32775): got %+v, err=%v", loc, err)
	}
}

func TestRegisterString(t *testing.T) {
	if got := Register(3).String(); got != "r3" {
		t.Errorf("Register(3).String() = %q, want r3", got)
	}
}
