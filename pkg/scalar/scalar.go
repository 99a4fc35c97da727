// Package scalar holds the restricted value union used for open-ended
// documents such as body measurements and coach request context.
package scalar

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ErrUnsupported is returned when a value is neither a number, a string nor a boolean.
var ErrUnsupported = errors.New("scalar: value must be a number, string or boolean")

// Kind identifies which member of the union a Value holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNumber
	KindString
	KindBool
)

// Value is a number, a string or a boolean. The zero Value is invalid.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

func Number(f float64) Value { return Value{kind: KindNumber, num: f} }
func String(s string) Value  { return Value{kind: KindString, str: s} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind { return v.kind }

// Float returns the numeric value and whether v is a number.
func (v Value) Float() (float64, bool) { return v.num, v.kind == KindNumber }

// Text returns the string value and whether v is a string.
func (v Value) Text() (string, bool) { return v.str, v.kind == KindString }

// Boolean returns the boolean value and whether v is a boolean.
func (v Value) Boolean() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrUnsupported
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case '{', '[', 'n':
		return ErrUnsupported
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*v = Number(f)
	}
	return nil
}

func (v Value) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch v.kind {
	case KindNumber:
		return bson.MarshalValue(v.num)
	case KindString:
		return bson.MarshalValue(v.str)
	case KindBool:
		return bson.MarshalValue(v.b)
	default:
		return bson.TypeNull, nil, nil
	}
}

func (v *Value) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDouble:
		*v = Number(raw.Double())
	case bson.TypeInt32:
		*v = Number(float64(raw.Int32()))
	case bson.TypeInt64:
		*v = Number(float64(raw.Int64()))
	case bson.TypeString:
		*v = String(raw.StringValue())
	case bson.TypeBoolean:
		*v = Bool(raw.Boolean())
	default:
		return fmt.Errorf("%w: bson type %s", ErrUnsupported, t)
	}
	return nil
}

// Map is a string-keyed document of scalar values.
type Map map[string]Value

// Format renders the map as "k=v" pairs in key order.
func (m Map) Format() string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+m[k].String())
	}
	return strings.Join(parts, ", ")
}
