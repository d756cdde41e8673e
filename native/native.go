// Package native maps tnetstring frames onto plain Go values.
//
// Decoding produces: string, int64 (or *big.Int past 64 bits), float64,
// bool, nil, []any for lists and Dict for dicts. Dict keeps pairs in wire
// order and keeps duplicate keys, so a decode/encode round trip reproduces
// the input bytes' structure exactly. Set MapDicts for map[string]any dicts
// instead: keys must then be strings and a duplicate overwrites the earlier
// entry - a deliberate divergence for callers who want plain maps over wire
// fidelity.
//
// Encoding additionally accepts []byte, every fixed-width int/uint type,
// float32 and map[string]any (keys written in sorted order so the output is
// deterministic).
package native

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"github.com/unkn0wn-root/tnetstr"
)

// Dict is the order-preserving dict representation. Keys are full values and
// may repeat.
type Dict []tnetstr.Pair[any]

// Model implements tnetstr.Model over untyped Go values.
type Model struct {
	// MapDicts switches dict decoding from Dict to map[string]any.
	MapDicts bool
}

var _ tnetstr.Model[any] = Model{}

func (Model) Classify(v any) (tnetstr.Tag, error) {
	switch v.(type) {
	case nil:
		return tnetstr.TagNull, nil
	case bool:
		return tnetstr.TagBool, nil
	case string, []byte:
		return tnetstr.TagString, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *big.Int:
		return tnetstr.TagInteger, nil
	case float32, float64:
		return tnetstr.TagFloat, nil
	case []any:
		return tnetstr.TagList, nil
	case Dict, map[string]any:
		return tnetstr.TagDict, nil
	}
	return 0, fmt.Errorf("%w: %T", tnetstr.ErrNotSerializable, v)
}

func (Model) ParseString(payload []byte) (any, error) {
	return string(payload), nil
}

// ParseInteger hand-parses literals shorter than 19 bytes: at most 18
// digits even without a sign, which always fits int64. Longer literals go
// through math/big and are normalized back to int64 when they fit, so both
// paths agree wherever their ranges overlap.
func (Model) ParseInteger(payload []byte) (any, error) {
	if len(payload) == 0 {
		return nil, &tnetstr.NumberError{Literal: "", Msg: "empty integer literal"}
	}
	if len(payload) < 19 {
		return parseSmallInt(payload)
	}
	z, ok := new(big.Int).SetString(string(payload), 10)
	if !ok {
		return nil, &tnetstr.NumberError{Literal: string(payload), Msg: "invalid integer literal"}
	}
	if z.IsInt64() {
		return z.Int64(), nil
	}
	return z, nil
}

func parseSmallInt(payload []byte) (any, error) {
	digits := payload
	neg := false
	switch payload[0] {
	case '+':
		digits = payload[1:]
	case '-':
		neg = true
		digits = payload[1:]
	}
	if len(digits) == 0 {
		return nil, &tnetstr.NumberError{Literal: string(payload), Msg: "invalid integer literal"}
	}
	var n int64
	for _, c := range digits {
		if c < '0' || c > '9' {
			return nil, &tnetstr.NumberError{Literal: string(payload), Msg: "invalid integer literal"}
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}

// ParseFloat delegates to strconv.ParseFloat, which consumes all or nothing.
// The stdlib parser also accepts Inf, NaN, hex floats and digit underscores,
// none of which are valid on the wire, so the charset is checked first.
func (Model) ParseFloat(payload []byte) (any, error) {
	for _, c := range payload {
		switch {
		case c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		default:
			return nil, &tnetstr.NumberError{Literal: string(payload), Msg: "invalid float literal"}
		}
	}
	f, err := strconv.ParseFloat(string(payload), 64)
	if err != nil {
		return nil, &tnetstr.NumberError{Literal: string(payload), Msg: "invalid float literal"}
	}
	return f, nil
}

func (Model) Bool(b bool) any { return b }
func (Model) Null() any       { return nil }

func (Model) NewList() any { return []any{} }

func (Model) Append(list, item any) (any, error) {
	return append(list.([]any), item), nil
}

func (m Model) NewDict() any {
	if m.MapDicts {
		return map[string]any{}
	}
	return Dict{}
}

func (m Model) Put(dict, key, val any) (any, error) {
	if m.MapDicts {
		d := dict.(map[string]any)
		k, ok := key.(string)
		if !ok {
			return nil, fmt.Errorf("tnetstr/native: map dict key must be a string, got %T", key)
		}
		d[k] = val
		return d, nil
	}
	return append(dict.(Dict), tnetstr.Pair[any]{Key: key, Val: val}), nil
}

func (Model) RenderString(v any) ([]byte, error) {
	switch s := v.(type) {
	case string:
		return []byte(s), nil
	case []byte:
		return s, nil
	}
	return nil, fmt.Errorf("%w: %T is not a string", tnetstr.ErrNotSerializable, v)
}

func (Model) RenderNumber(v any) ([]byte, error) {
	switch n := v.(type) {
	case int:
		return strconv.AppendInt(nil, int64(n), 10), nil
	case int8:
		return strconv.AppendInt(nil, int64(n), 10), nil
	case int16:
		return strconv.AppendInt(nil, int64(n), 10), nil
	case int32:
		return strconv.AppendInt(nil, int64(n), 10), nil
	case int64:
		return strconv.AppendInt(nil, n, 10), nil
	case uint:
		return strconv.AppendUint(nil, uint64(n), 10), nil
	case uint8:
		return strconv.AppendUint(nil, uint64(n), 10), nil
	case uint16:
		return strconv.AppendUint(nil, uint64(n), 10), nil
	case uint32:
		return strconv.AppendUint(nil, uint64(n), 10), nil
	case uint64:
		return strconv.AppendUint(nil, n, 10), nil
	case *big.Int:
		return n.Append(nil, 10), nil
	case float32:
		return strconv.AppendFloat(nil, float64(n), 'g', -1, 32), nil
	case float64:
		return strconv.AppendFloat(nil, n, 'g', -1, 64), nil
	}
	return nil, fmt.Errorf("%w: %T is not a number", tnetstr.ErrNotSerializable, v)
}

func (Model) RenderBool(v any) ([]byte, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a bool", tnetstr.ErrNotSerializable, v)
	}
	if b {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

func (Model) ListItems(v any) ([]any, error) {
	l, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a list", tnetstr.ErrNotSerializable, v)
	}
	return l, nil
}

func (Model) DictPairs(v any) ([]tnetstr.Pair[any], error) {
	switch d := v.(type) {
	case Dict:
		return d, nil
	case map[string]any:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]tnetstr.Pair[any], 0, len(d))
		for _, k := range keys {
			pairs = append(pairs, tnetstr.Pair[any]{Key: k, Val: d[k]})
		}
		return pairs, nil
	}
	return nil, fmt.Errorf("%w: %T is not a dict", tnetstr.ErrNotSerializable, v)
}

// Default is a coder over the pair-preserving model with default limits.
var Default = tnetstr.MustNew(tnetstr.Options[any]{Model: Model{}})

// Maps is Default with map-shaped dicts.
var Maps = tnetstr.MustNew(tnetstr.Options[any]{Model: Model{MapDicts: true}})

// Marshal renders v as one tnetstring frame using Default.
func Marshal(v any) ([]byte, error) { return Default.Encode(v) }

// Unmarshal parses exactly one frame spanning all of data using Default.
func Unmarshal(data []byte) (any, error) { return Default.Decode(data) }

// Pop parses one frame off the front of data using Default and returns the
// unconsumed remainder.
func Pop(data []byte) (any, []byte, error) { return Default.Pop(data) }
