// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// ValueFromJSON decodes a JSON document into a Value. Objects decode as
// *Object, arrays as *Array, and numbers as float64. The input must be
// exactly one JSON value; trailing data is an error.
func ValueFromJSON(msg []byte) (*Value, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(msg))
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	switch _, err := dec.ReadToken(); {
	case err == nil:
		return nil, errors.New("unexpected data after top-level value")
	case !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("read past top-level value: %w", err)
	}
	return v, nil
}

// TreeFromJSON decodes a JSON document into a tree rooted at its
// top-level value.
func TreeFromJSON(msg []byte) (*Tree, error) {
	v, err := ValueFromJSON(msg)
	if err != nil {
		return nil, err
	}
	return TreeFromValue(v), nil
}

func decodeValue(dec *jsontext.Decoder) (*Value, error) {
	switch dec.PeekKind() {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	default:
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, fmt.Errorf("read value: %w", err)
		}
		switch tok.Kind() {
		case 'n':
			return ValueNew(nil), nil
		case 't', 'f':
			return ValueNew(tok.Bool()), nil
		case '"':
			return ValueNew(tok.String()), nil
		case '0':
			return ValueNew(tok.Float()), nil
		default:
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
	}
}

func decodeObject(dec *jsontext.Decoder) (*Value, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	var pairs []Pair
	for dec.PeekKind() != '}' {
		key, err := dec.ReadToken()
		if err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("read object value for key %q: %w",
				key.String(), err)
		}
		pairs = append(pairs, PairNew(key.String(), val))
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return ValueNew(ObjectWith(pairs...)), nil
}

func decodeArray(dec *jsontext.Decoder) (*Value, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	var elems []interface{}
	for dec.PeekKind() != ']' {
		elem, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		elems = append(elems, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return ValueNew(ArrayFrom(elems)), nil
}

// MarshalJSON returns the value encoded as compact JSON. Object keys
// are written in sorted order so the encoding is deterministic.
func (val *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := encodeValue(enc, val); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalIndent returns the value pretty-printed with the supplied
// indentation and sorted object keys, so rewrites of the same document
// are diff-friendly.
func (val *Value) MarshalIndent(indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf, jsontext.WithIndent(indent))
	if err := encodeValue(enc, val); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalJSON returns the tree encoded as compact JSON.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return t.Root().MarshalJSON()
}

// MarshalIndent returns the tree pretty-printed with the supplied
// indentation.
func (t *Tree) MarshalIndent(indent string) ([]byte, error) {
	return t.Root().MarshalIndent(indent)
}

func encodeValue(enc *jsontext.Encoder, val *Value) error {
	if val.IsNull() {
		return enc.WriteToken(jsontext.Null)
	}
	switch d := val.data.(type) {
	case bool:
		return enc.WriteToken(jsontext.Bool(d))
	case string:
		return enc.WriteToken(jsontext.String(d))
	case float64:
		return enc.WriteToken(jsontext.Float(d))
	case *Object:
		return encodeObject(enc, d)
	case *Array:
		return encodeArray(enc, d)
	default:
		return fmt.Errorf("cannot encode value of type %T", d)
	}
}

func encodeObject(enc *jsontext.Encoder, obj *Object) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for _, key := range obj.Keys() {
		if err := enc.WriteToken(jsontext.String(key)); err != nil {
			return err
		}
		if err := encodeValue(enc, obj.At(key)); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

func encodeArray(enc *jsontext.Encoder, arr *Array) error {
	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return err
	}
	var encErr error
	arr.Range(func(v *Value) bool {
		encErr = encodeValue(enc, v)
		return encErr == nil
	})
	if encErr != nil {
		return encErr
	}
	return enc.WriteToken(jsontext.EndArray)
}
