package weekplan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Kind enumerates the JSON value kinds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

const maxDecodeDepth = 512

var (
	errTrailingData = errors.New("weekplan: trailing data after JSON value")
	errTooDeep      = errors.New("weekplan: JSON nesting too deep")
)

// Member is one key/value pair of a JSON object.
type Member struct {
	Key   string
	Value Value
}

// Value is a decoded JSON value. Only the fields matching Kind are set.
// Object members keep their source order, including repeated keys.
type Value struct {
	Kind    Kind
	Bool    bool
	Text    string // string contents, or the number literal as written
	Items   []Value
	Members []Member
}

// String builds a string Value.
func String(s string) Value { return Value{Kind: KindString, Text: s} }

// Number builds a number Value from its literal text.
func Number(lit string) Value { return Value{Kind: KindNumber, Text: lit} }

// Bool builds a boolean Value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Array builds an array Value.
func Array(items ...Value) Value { return Value{Kind: KindArray, Items: items} }

// Object builds an object Value.
func Object(members ...Member) Value { return Value{Kind: KindObject, Members: members} }

// Decode parses exactly one JSON document into a Value.
func Decode(raw []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	v, err := decodeValue(dec, 0)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, errTrailingData
	}
	return v, nil
}

func decodeValue(dec *json.Decoder, depth int) (Value, error) {
	if depth > maxDecodeDepth {
		return Value{}, errTooDeep
	}

	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Value{Kind: KindNull}, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec, depth)
		case '{':
			return decodeObject(dec, depth)
		}
	}
	return Value{}, fmt.Errorf("weekplan: unexpected token %v", tok)
}

func decodeArray(dec *json.Decoder, depth int) (Value, error) {
	v := Value{Kind: KindArray}
	for dec.More() {
		item, err := decodeValue(dec, depth+1)
		if err != nil {
			return Value{}, err
		}
		v.Items = append(v.Items, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return v, nil
}

func decodeObject(dec *json.Decoder, depth int) (Value, error) {
	v := Value{Kind: KindObject}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("weekplan: object key is %T", tok)
		}
		val, err := decodeValue(dec, depth+1)
		if err != nil {
			return Value{}, err
		}
		v.Members = append(v.Members, Member{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return v, nil
}
