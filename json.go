package anydict

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// EncodeJSON encodes the Dict as a compact JSON object.  Member names are
// the projected strings, emitted in ascending order so equal dictionaries
// encode to identical bytes; member values come from encodeValue.
func EncodeJSON[K, V any](d Dict[K, V], encodeValue func(V) ([]byte, error)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		raw, err := encodeValue(d.entries[s].Value)
		if err != nil {
			return nil, errors.Wrapf(err, "member %q", s)
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeJSON parses a JSON object into a Dict.
//
// The top-level value must be an object (ErrRootType otherwise).  Each
// member name is passed to parseKey; names it rejects are silently dropped
// from the result, by design — the values under dropped names are still
// required to be well-formed JSON.  Accepted names are paired with their
// value decoded by decodeValue; any value decodeValue rejects fails the
// whole decode with ErrMemberValue.  Duplicate member names resolve last
// write wins, matching FromEntries.
func DecodeJSON[K, V any](
	data []byte,
	parseKey func(string) (K, bool),
	project func(K) string,
	decodeValue func(json.RawMessage) (V, error),
) (Dict[K, V], error) {
	var zero Dict[K, V]

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return zero, decodeErr(ErrSyntax, "malformed JSON", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return zero, decodeErr(ErrRootType, "top-level JSON value is not an object", nil)
	}

	// Members are buffered in document order, deduplicated by name with
	// last write wins, before the final FromEntries pass.
	members := orderedmap.New[string, Entry[K, V]]()

	for dec.More() {
		kTok, err := dec.Token()
		if err != nil {
			return zero, decodeErr(ErrSyntax, "malformed JSON member name", err)
		}
		name, ok := kTok.(string)
		if !ok {
			return zero, decodeErr(ErrSyntax, "member name is not a string", nil)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return zero, decodeErr(ErrSyntax, "malformed JSON member value", err)
		}

		key, ok := parseKey(name)
		if !ok {
			continue
		}
		val, err := decodeValue(raw)
		if err != nil {
			return zero, decodeErr(ErrMemberValue, "member value decode failed",
				errors.Wrapf(err, "member %q", name))
		}
		members.Set(name, Entry[K, V]{Key: key, Value: val})
	}

	if _, err := dec.Token(); err != nil {
		return zero, decodeErr(ErrSyntax, "malformed JSON: unterminated object", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return zero, decodeErr(ErrSyntax, "trailing content after JSON object", nil)
	}

	entries := make([]Entry[K, V], 0, members.Len())
	for pair := members.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, pair.Value)
	}
	return FromEntries(project, entries), nil
}

// EncodeValueJSON is an encodeValue that marshals with encoding/json.
func EncodeValueJSON[V any](v V) ([]byte, error) {
	return json.Marshal(v)
}

// DecodeValueJSON is a decodeValue that unmarshals with encoding/json.
func DecodeValueJSON[V any](raw json.RawMessage) (V, error) {
	var v V
	err := json.Unmarshal(raw, &v)
	return v, err
}
