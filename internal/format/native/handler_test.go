package native

import (
	"testing"

	"github.com/iancoleman/orderedmap"

	"github.com/thirteen37/dfconfig/line"
)

func TestHandler_Decode(t *testing.T) {
	h := New(line.Presets["df"])

	input := "[VOLUME:255]\r\nSome prose.\r\n[SOUND:YES]\r\n[VOLUME:100]\r\n"
	got, err := h.Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	keys := got.Keys()
	if len(keys) != 2 || keys[0] != "VOLUME" || keys[1] != "SOUND" {
		t.Fatalf("Decode() keys = %v, want [VOLUME SOUND]", keys)
	}
	if v, _ := got.Get("VOLUME"); v != "100" {
		t.Errorf("VOLUME = %v, want the last occurrence 100", v)
	}
}

func TestHandler_Decode_InvalidText(t *testing.T) {
	h := New(line.DefaultSyntax)
	if _, err := h.Decode([]byte{0xff}); err == nil {
		t.Error("Decode() error = nil, want decoding error")
	}
}

func TestHandler_Encode(t *testing.T) {
	h := New(line.DefaultSyntax)

	values := orderedmap.New()
	values.Set("VOLUME", "255")
	values.Set("SOUND", "YES")

	data, err := h.Encode(values)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := "[VOLUME:255]\r\n[SOUND:YES]\r\n"
	if string(data) != want {
		t.Errorf("Encode() = %q, want %q", data, want)
	}
}
