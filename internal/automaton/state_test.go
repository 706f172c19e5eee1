package automaton

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		key  StateKey
		want State
	}{
		{"death", "MUERTE", Death{}},
		{"origin full mask", "0,0|3", Live{X: 0, Y: 0, Pellets: 3}},
		{"all eaten", "12,5|0", Live{X: 12, Y: 5, Pellets: 0}},
		{"wide mask", "1,1|18446744073709551615", Live{X: 1, Y: 1, Pellets: ^PelletMask(0)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.key)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tc.key, err)
			}
			if got != tc.want {
				t.Errorf("Decode(%q) = %#v, want %#v", tc.key, got, tc.want)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	keys := []StateKey{
		"",
		"muerte",
		"DEAD",
		"1,2",
		"1|2",
		"a,2|3",
		"1,b|3",
		"1,2|x",
		"-1,2|3",
		"1,2|-3",
		"1, 2|3",
		"1,2|+3",
		"1,2|18446744073709551616",
	}

	for _, key := range keys {
		t.Run(string(key), func(t *testing.T) {
			_, err := Decode(key)
			if err == nil {
				t.Fatalf("Decode(%q) should fail", key)
			}
			if !errors.Is(err, ErrMalformedStateKey) {
				t.Errorf("Decode(%q) error = %v, want ErrMalformedStateKey", key, err)
			}
			var mErr *MalformedStateKeyError
			if !errors.As(err, &mErr) || mErr.Key != key {
				t.Errorf("Decode(%q) error should carry the key, got %v", key, err)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	if got := Encode(Death{}); got != DeathKey {
		t.Errorf("Encode(Death) = %q, want %q", got, DeathKey)
	}
	if got := Encode(Live{X: 3, Y: 7, Pellets: 5}); got != "3,7|5" {
		t.Errorf("Encode(Live) = %q, want %q", got, "3,7|5")
	}
	if got := Encode(&Live{X: 1, Y: 0, Pellets: 0}); got != "1,0|0" {
		t.Errorf("Encode(*Live) = %q, want %q", got, "1,0|0")
	}
	if got := Encode((*Live)(nil)); got != DeathKey {
		t.Errorf("Encode(nil *Live) = %q, want %q", got, DeathKey)
	}
	if got := Encode(nil); got != DeathKey {
		t.Errorf("Encode(nil) = %q, want %q", got, DeathKey)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	for pellets := 0; pellets <= 6; pellets++ {
		full := FullMask(pellets)
		for mask := PelletMask(0); mask <= full; mask++ {
			for x := 0; x < 4; x++ {
				for y := 0; y < 3; y++ {
					in := Live{X: x, Y: y, Pellets: mask}
					out, err := Decode(Encode(in))
					if err != nil {
						t.Fatalf("round trip of %#v failed: %v", in, err)
					}
					if out != in {
						t.Fatalf("round trip of %#v = %#v", in, out)
					}
				}
			}
		}
	}
}

func TestPelletMask(t *testing.T) {
	m := FullMask(3)
	if m != 7 {
		t.Fatalf("FullMask(3) = %d, want 7", m)
	}
	if FullMask(0) != 0 {
		t.Error("FullMask(0) should be empty")
	}
	if FullMask(64) != ^PelletMask(0) {
		t.Error("FullMask(64) should set every bit")
	}

	m = m.Clear(1)
	if m.Has(1) {
		t.Error("pellet 1 should be eaten")
	}
	if !m.Has(0) || !m.Has(2) {
		t.Error("pellets 0 and 2 should remain")
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d, want 2", m.Count())
	}
	if m.Has(-1) || m.Has(64) {
		t.Error("out-of-range indices are never present")
	}
	if !m.SubsetOf(7) || PelletMask(8).SubsetOf(7) {
		t.Error("SubsetOf mismatch")
	}
}
