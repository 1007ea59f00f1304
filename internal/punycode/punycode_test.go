package punycode

import (
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"a_b",
		"Straße",
		"ü",
		"日本語",
		"mixed日本ascii",
		"with space",
		"emoji🙂end",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			enc, err := Encode(s, true)
			if err != nil {
				t.Fatalf("Encode(%q): %v", s, err)
			}
			for _, c := range enc {
				if c >= 0x80 {
					t.Fatalf("Encode(%q) = %q contains a non-ASCII scalar", s, enc)
				}
			}
			dec, err := Decode(enc)
			if err != nil {
				t.Fatalf("Decode(%q): %v", enc, err)
			}
			if dec != s {
				t.Errorf("Decode(Encode(%q)) = %q", s, dec)
			}
		})
	}
}

func TestEncodeASCII(t *testing.T) {
	got, err := Encode("abc", false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "abc_" {
		t.Errorf("Encode = %q, want %q", got, "abc_")
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, s := range []string{"abc_1", "abc_!", "a_zz"} {
		if _, err := Decode(s); !errors.Is(err, ErrInvalid) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalid", s, err)
		}
	}
}

func TestNeedsEncoding(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Foo", false},
		{"_foo1", false},
		{"1foo", true},
		{"a b", true},
		{"Straße", true},
	}
	for _, tt := range tests {
		if got := NeedsEncoding(tt.in); got != tt.want {
			t.Errorf("NeedsEncoding(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
