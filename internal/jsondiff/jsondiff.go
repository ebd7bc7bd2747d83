// Package jsondiff reports the top-level keys of one JSON object that are
// missing from another.
package jsondiff

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

var ErrNotObject = errors.New("top-level JSON value is not an object")

// Member is one key of a JSON object with its raw value.
type Member struct {
	Key   string
	Value json.RawMessage
}

// Object is a decoded JSON object that keeps its key order. A key that
// appears more than once keeps its first position and its last value.
type Object struct {
	members []Member
	index   map[string]int
}

func newObject() *Object {
	return &Object{index: map[string]int{}}
}

func (o *Object) set(key string, value json.RawMessage) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = value
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: value})
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// Members returns the members in document order.
func (o *Object) Members() []Member {
	return o.members
}

func (o *Object) Len() int { return len(o.members) }

// Decode reads a single JSON object from r.
func Decode(r io.Reader) (*Object, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "reading JSON")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	obj := newObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "reading object key")
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, errors.Wrapf(err, "reading value of %q", key)
		}
		obj.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, "reading end of object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON object")
	}
	return obj, nil
}

// DecodeFile opens path and decodes it with Decode.
func DecodeFile(path string) (*Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	obj, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return obj, nil
}

// MissingKeys returns the members of a whose keys are absent from b, in a's
// order.
func MissingKeys(a, b *Object) *Object {
	out := newObject()
	for _, m := range a.members {
		if !b.Has(m.Key) {
			out.set(m.Key, m.Value)
		}
	}
	return out
}

// MarshalJSON writes the object compactly in member order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := json.Compact(&buf, m.Value); err != nil {
			return nil, errors.Wrapf(err, "value of %q", m.Key)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Write writes o to w indented by four spaces, followed by a newline.
func Write(w io.Writer, o *Object) error {
	compact, err := o.MarshalJSON()
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "    "); err != nil {
		return errors.Wrap(err, "indenting output")
	}
	out.WriteByte('\n')
	_, err = w.Write(out.Bytes())
	return errors.Wrap(err, "writing output")
}

// Diff decodes the files at aPath and bPath and returns the members of a
// that b lacks.
func Diff(aPath, bPath string) (*Object, error) {
	a, err := DecodeFile(aPath)
	if err != nil {
		return nil, err
	}
	b, err := DecodeFile(bPath)
	if err != nil {
		return nil, err
	}
	return MissingKeys(a, b), nil
}

// Compare runs Diff and writes the result to w. Nothing is written when
// either input fails to decode. It returns the number of missing keys.
func Compare(aPath, bPath string, w io.Writer) (int, error) {
	missing, err := Diff(aPath, bPath)
	if err != nil {
		return 0, err
	}
	if err := Write(w, missing); err != nil {
		return 0, err
	}
	return missing.Len(), nil
}
