// Package compare diffs two JSON documents structurally. Object keys are
// compared in the order they appear, so a serializer that reorders keys
// is reported as a mismatch even when encoding/json would consider the
// documents equal.
package compare

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Member is one key/value pair of a decoded object
type Member struct {
	Key   string
	Value any
}

// Object is a decoded JSON object with its keys in document order
type Object []Member

// Absent marks the side of a mismatch that has no value at the path
type Absent struct{}

func (Absent) String() string {
	return "<absent>"
}

// Mismatch is the first place two documents differ
type Mismatch struct {
	Path  string
	Left  any
	Right any
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("%s: %v != %v", m.Path, m.Left, m.Right)
}

// Decode reads one JSON value. Objects become Object, arrays []any, numbers
// json.Number.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := Object{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is %T", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: key, Value: value})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

// JSON decodes both documents and returns the first mismatch, or nil when
// they are structurally identical
func JSON(left, right []byte) (*Mismatch, error) {
	l, err := Decode(left)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	r, err := Decode(right)
	if err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}
	return Compare(l, r), nil
}

// Compare walks two decoded values and returns the first mismatch
func Compare(left, right any) *Mismatch {
	return compareAt("<root>", left, right)
}

func compareAt(path string, left, right any) *Mismatch {
	switch l := left.(type) {
	case Object:
		r, ok := right.(Object)
		if !ok {
			return &Mismatch{Path: path, Left: left, Right: right}
		}
		return compareObjects(path, l, r)
	case []any:
		r, ok := right.([]any)
		if !ok {
			return &Mismatch{Path: path, Left: left, Right: right}
		}
		return compareArrays(path, l, r)
	default:
		if left != right {
			return &Mismatch{Path: path, Left: left, Right: right}
		}
		return nil
	}
}

func compareObjects(path string, left, right Object) *Mismatch {
	for i, lm := range left {
		if i >= len(right) {
			return &Mismatch{Path: path + "." + lm.Key, Left: lm.Value, Right: Absent{}}
		}
		rm := right[i]
		if lm.Key != rm.Key {
			return &Mismatch{Path: path + "." + lm.Key, Left: lm.Value, Right: Absent{}}
		}
		if m := compareAt(path+"."+lm.Key, lm.Value, rm.Value); m != nil {
			return m
		}
	}
	if len(right) > len(left) {
		extra := right[len(left)]
		return &Mismatch{Path: path + "." + extra.Key, Left: Absent{}, Right: extra.Value}
	}
	return nil
}

func compareArrays(path string, left, right []any) *Mismatch {
	for i, lv := range left {
		at := path + "[" + strconv.Itoa(i) + "]"
		if i >= len(right) {
			return &Mismatch{Path: at, Left: lv, Right: Absent{}}
		}
		if m := compareAt(at, lv, right[i]); m != nil {
			return m
		}
	}
	if len(right) > len(left) {
		at := path + "[" + strconv.Itoa(len(left)) + "]"
		return &Mismatch{Path: at, Left: Absent{}, Right: right[len(left)]}
	}
	return nil
}
