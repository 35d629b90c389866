package ini

import (
	"strings"
	"testing"

	"github.com/iancoleman/orderedmap"
)

func TestHandler_Decode(t *testing.T) {
	h := New()

	tests := []struct {
		name       string
		input      string
		wantKeys   []string
		wantValues []string
		wantErr    bool
	}{
		{
			name:       "global keys",
			input:      "VOLUME = 255\nSOUND = YES\n",
			wantKeys:   []string{"VOLUME", "SOUND"},
			wantValues: []string{"255", "YES"},
		},
		{
			name:       "comments",
			input:      "; volume\nVOLUME = 255\n# sound\n",
			wantKeys:   []string{"VOLUME"},
			wantValues: []string{"255"},
		},
		{
			name:     "empty ini",
			input:    "",
			wantKeys: []string{},
		},
		{
			name:    "named section",
			input:   "[section]\nkey = value\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Decode([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			keys := got.Keys()
			if len(keys) != len(tt.wantKeys) {
				t.Fatalf("Decode() got keys %v, want %v", keys, tt.wantKeys)
			}
			for i, k := range keys {
				if k != tt.wantKeys[i] {
					t.Errorf("key[%d] = %q, want %q", i, k, tt.wantKeys[i])
				}
				v, _ := got.Get(k)
				if v != tt.wantValues[i] {
					t.Errorf("value[%q] = %v, want %q", k, v, tt.wantValues[i])
				}
			}
		})
	}
}

func TestHandler_Encode(t *testing.T) {
	h := New()

	values := orderedmap.New()
	values.Set("VOLUME", "255")
	values.Set("SOUND", "YES")

	data, err := h.Encode(values)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	output := string(data)

	if strings.Contains(output, "[DEFAULT]") {
		t.Errorf("Encode() wrote a section header: %q", output)
	}
	if strings.Index(output, "VOLUME") > strings.Index(output, "SOUND") {
		t.Errorf("Encode() did not keep key order: %q", output)
	}

	got, err := h.Decode(data)
	if err != nil {
		t.Fatalf("Decode() of encoded output error = %v", err)
	}
	if v, _ := got.Get("SOUND"); v != "YES" {
		t.Errorf("round trip SOUND = %v, want YES", v)
	}
}
