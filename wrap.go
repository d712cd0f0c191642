package biject

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/url"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Thin wrappers around platform and library primitives. Each is a pass-
// through codec: the interesting invariants live in the wrapped primitive,
// not here. Serialization wrappers round-trip exactly only for types the
// underlying format represents faithfully (e.g. JSON decodes numbers in an
// `any` as float64).

// JSON returns a codec between T and its JSON encoding.
func JSON[T any]() Codec[T, []byte] {
	return New(
		func(v T) ([]byte, error) { return json.Marshal(v) },
		func(data []byte) (T, error) {
			var v T
			err := json.Unmarshal(data, &v)
			return v, err
		},
	)
}

// Msgpack returns a codec between T and its MessagePack encoding.
func Msgpack[T any]() Codec[T, []byte] {
	return New(
		func(v T) ([]byte, error) { return msgpack.Marshal(v) },
		func(data []byte) (T, error) {
			var v T
			err := msgpack.Unmarshal(data, &v)
			return v, err
		},
	)
}

// YAML returns a codec between T and its YAML encoding.
func YAML[T any]() Codec[T, []byte] {
	return New(
		func(v T) ([]byte, error) { return yaml.Marshal(v) },
		func(data []byte) (T, error) {
			var v T
			err := yaml.Unmarshal(data, &v)
			return v, err
		},
	)
}

// Bytes returns a codec between a string and its raw bytes.
func Bytes() Codec[string, []byte] {
	return New(
		func(s string) ([]byte, error) { return []byte(s), nil },
		func(b []byte) (string, error) { return string(b), nil },
	)
}

// URI returns a codec that escapes a string for safe use in a URI query and
// unescapes it back.
func URI() Codec[string, string] {
	return New(
		func(s string) (string, error) { return url.QueryEscape(s), nil },
		func(s string) (string, error) { return url.QueryUnescape(s) },
	)
}

// Base64 returns a codec between raw bytes and standard base64 text.
func Base64() Codec[[]byte, string] {
	return New(
		func(b []byte) (string, error) { return base64.StdEncoding.EncodeToString(b), nil },
		func(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) },
	)
}

// Hex returns a codec between raw bytes and lowercase hex text.
func Hex() Codec[[]byte, string] {
	return New(
		func(b []byte) (string, error) { return hex.EncodeToString(b), nil },
		func(s string) ([]byte, error) { return hex.DecodeString(s) },
	)
}
