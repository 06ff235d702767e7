package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the type tag of a parsed JSON value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a parsed JSON value. Only the field matching Kind is set.
type Value struct {
	Kind   Kind
	Bool   bool
	Number json.Number
	String string
	Array  []Value
	Object map[string]Value
}

var ErrTrailingData = errors.New("unexpected data after JSON value")

// ParseValue parses exactly one JSON document into a Value.
func ParseValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return Value{}, ErrTrailingData
	}

	return newValue(raw)
}

func newValue(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Value{Kind: KindNull}, nil
	case bool:
		return Value{Kind: KindBool, Bool: v}, nil
	case json.Number:
		return Value{Kind: KindNumber, Number: v}, nil
	case string:
		return Value{Kind: KindString, String: v}, nil
	case []any:
		items := make([]Value, 0, len(v))
		for _, item := range v {
			value, err := newValue(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, value)
		}
		return Value{Kind: KindArray, Array: items}, nil
	case map[string]any:
		fields := make(map[string]Value, len(v))
		for key, item := range v {
			value, err := newValue(item)
			if err != nil {
				return Value{}, err
			}
			fields[key] = value
		}
		return Value{Kind: KindObject, Object: fields}, nil
	default:
		return Value{}, fmt.Errorf("unsupported JSON value of type %T", raw)
	}
}

// decimalLiteral matches decimal float literals, allowing single
// underscores between digits.
var decimalLiteral = regexp.MustCompile(
	`^[+-]?(?:[0-9](?:_?[0-9])*(?:\.(?:[0-9](?:_?[0-9])*)?)?|\.[0-9](?:_?[0-9])*)(?:[eE][+-]?[0-9](?:_?[0-9])*)?$`,
)

// Float converts the value to a finite float64.
//
// Numbers convert directly, booleans to 1 or 0 and strings holding a
// decimal literal are parsed. Null, arrays, objects and anything that
// is not finite do not convert.
func (v Value) Float() (float64, bool) {
	var (
		f   float64
		err error
	)

	switch v.Kind {
	case KindNumber:
		f, err = v.Number.Float64()
	case KindBool:
		if v.Bool {
			return 1, true
		}
		return 0, true
	case KindString:
		s := strings.TrimSpace(v.String)
		if !decimalLiteral.MatchString(s) {
			return 0, false
		}
		f, err = strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
	default:
		return 0, false
	}

	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}
