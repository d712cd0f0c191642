package biject

import (
	"bytes"
	"testing"
)

type record struct {
	Name  string `json:"name" msgpack:"name" yaml:"name"`
	Count int    `json:"count" msgpack:"count" yaml:"count"`
}

func TestJSON_RoundTrip(t *testing.T) {
	c := JSON[record]()

	in := record{Name: "widget", Count: 42}
	data, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	out, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if out != in {
		t.Errorf("round-trip = %+v, want %+v", out, in)
	}
}

func TestJSON_DecodeError(t *testing.T) {
	c := JSON[record]()
	if _, err := c.Decode([]byte("{not json")); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestMsgpack_RoundTrip(t *testing.T) {
	c := Msgpack[record]()

	in := record{Name: "widget", Count: 42}
	data, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	out, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if out != in {
		t.Errorf("round-trip = %+v, want %+v", out, in)
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	c := YAML[record]()

	in := record{Name: "widget", Count: 42}
	data, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	out, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if out != in {
		t.Errorf("round-trip = %+v, want %+v", out, in)
	}
}

func TestBytes_RoundTrip(t *testing.T) {
	c := Bytes()

	b, err := c.Encode("héllo")
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !bytes.Equal(b, []byte("héllo")) {
		t.Errorf("Encode = %q", b)
	}
	s, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if s != "héllo" {
		t.Errorf("round-trip = %q, want %q", s, "héllo")
	}
}

func TestURI_RoundTrip(t *testing.T) {
	c := URI()

	in := "a b&c=d/é"
	enc, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	out, err := c.Decode(enc)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if out != in {
		t.Errorf("round-trip %q -> %q -> %q", in, enc, out)
	}
}

func TestBase64_RoundTrip(t *testing.T) {
	c := Base64()

	in := []byte{0x00, 0xFF, 0x10, 0x7F}
	s, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	out, err := c.Decode(s)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Errorf("round-trip %v -> %q -> %v", in, s, out)
	}
}

func TestHex_RoundTrip(t *testing.T) {
	c := Hex()

	in := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	s, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if s != "deadbeef" {
		t.Errorf("Encode = %q, want %q", s, "deadbeef")
	}
	out, err := c.Decode(s)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Errorf("round-trip failed: %v", out)
	}
}

func TestClean_Lossy(t *testing.T) {
	tests := []struct {
		in   string
		size int
		sep  string
		want string
	}{
		{"42AB 17-CD", 4, "-", "42AB-17CD"},
		{"a.b_c d", 0, "", "abcd"},
		{"abcdef", 2, " ", "ab cd ef"},
		{"abc", 4, "-", "abc"},
	}

	for _, tt := range tests {
		if got := Clean(tt.in, tt.size, tt.sep); got != tt.want {
			t.Errorf("Clean(%q, %d, %q) = %q, want %q", tt.in, tt.size, tt.sep, got, tt.want)
		}
	}
}
