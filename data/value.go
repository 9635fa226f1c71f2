// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"errors"
	"reflect"
	"strconv"

	"jsouthworth.net/go/dyn"
)

// ValueNew turns a native go value into a document Value as long as the
// type can be represented as JSON. ValueNew will panic if the value is
// not a representable type.
func ValueNew(data interface{}) *Value {
	return valueNew(data)
}

func valueNew(data interface{}) *Value {
	if data == nil {
		return &Value{data: nil}
	}
	switch d := data.(type) {
	case *Value:
		return d
	case *Object, *Array, bool, string, float64:
	case *Tree:
		return d.Root()
	case float32:
		data = float64(d)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		// JSON has a single number type; all numerics are
		// normalized to float64 so equality works across the
		// unmarshal and construction paths.
		data = convertToFloat(d)
	case map[string]interface{}:
		data = ObjectFrom(d)
	case []interface{}:
		data = ArrayFrom(d)
	default:
		panic(errors.New("cannot create value, invalid type"))
	}
	return &Value{
		data: data,
	}
}

// Value is a JSON document value. Values may be *Object, *Array,
// float64, string, bool, or nil.
type Value struct {
	data interface{}
}

var valType = reflect.TypeOf((*Value)(nil))
var interfaceType = reflect.TypeOf((*interface{})(nil)).Elem()
var float64Type = reflect.TypeOf(float64(0))

// Perform allows one to match the type of the Value with a behavior
// to perform on that type without resorting to the assertion
// operations. Think of this as the switch v.(type) { ... } analogue for
// document values. It takes a list of func(v vT) oT functions and applies
// the first match to the value.
//
// If vT above is *Value or interface{} it matches all value types.
func (val *Value) Perform(fns ...interface{}) interface{} {
	if val == nil {
		return nil
	}
	vty := reflect.TypeOf(val.data)
	var action interface{}
	arg := val.data
	for _, fn := range fns {
		if action != nil {
			break
		}
		fnty := reflect.TypeOf(fn)
		if fnty.NumIn() != 1 {
			continue
		}
		inputType := fnty.In(0)
		switch {
		case vty == nil:
			if inputType == interfaceType {
				action = fn
			}
		case inputType == valType:
			arg = val
			action = fn
		case vty.AssignableTo(inputType):
			action = fn
		}
	}
	if action == nil {
		return nil
	}
	return dyn.Apply(action, arg)
}

// ToTree returns a *Tree rooted at this value.
func (val *Value) ToTree() *Tree {
	return TreeFromValue(val)
}

// AsObject returns an *Object if the value is an Object and panics otherwise.
func (val *Value) AsObject() *Object {
	return val.data.(*Object)
}

// IsObject returns if the data stored in the value is an Object.
func (val *Value) IsObject() bool {
	_, isObject := val.data.(*Object)
	return isObject
}

// ToObject returns an *Object and allows the user to define a
// default. The value (*Object)(nil) is returned if no default is defined
// and the value is not an *Object.
func (val *Value) ToObject(defaultVal ...*Object) *Object {
	o, isObject := val.data.(*Object)
	if isObject {
		return o
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsArray returns an *Array if the value is an Array and panics otherwise.
func (val *Value) AsArray() *Array {
	return val.data.(*Array)
}

// IsArray returns if the data stored in the value is an Array.
func (val *Value) IsArray() bool {
	_, isArray := val.data.(*Array)
	return isArray
}

// ToArray returns an *Array and allows the user to define a
// default. The value (*Array)(nil) is returned if no default is defined
// and the value is not an *Array.
func (val *Value) ToArray(defaultVal ...*Array) *Array {
	arr, isArray := val.data.(*Array)
	if isArray {
		return arr
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsString returns a string if the value is a string and panics otherwise.
func (val *Value) AsString() string {
	return val.data.(string)
}

// IsString returns if the data stored in the value is a string.
func (val *Value) IsString() bool {
	_, isString := val.data.(string)
	return isString
}

// ToString returns a string and allows the user to define a
// default. The value "" is returned if no default is defined
// and the value is not a string.
func (val *Value) ToString(defaultVal ...string) string {
	s, isString := val.data.(string)
	if isString {
		return s
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return ""
}

func convertToFloat(v interface{}) float64 {
	return reflect.ValueOf(v).
		Convert(float64Type).
		Interface().(float64)
}

// AsNumber returns a float64 if the value is a number and panics otherwise.
func (val *Value) AsNumber() float64 {
	return val.data.(float64)
}

// IsNumber returns if the value is a number.
func (val *Value) IsNumber() bool {
	_, isNumber := val.data.(float64)
	return isNumber
}

// ToNumber returns a float64 and allows the user to define a default.
// The value 0 is returned if no default is defined and the value is
// not a number.
func (val *Value) ToNumber(defaultVal ...float64) float64 {
	f, isNumber := val.data.(float64)
	if isNumber {
		return f
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

// AsBoolean returns a bool if the value is a bool and panics otherwise.
func (val *Value) AsBoolean() bool {
	return val.data.(bool)
}

// IsBoolean returns if the value is a bool.
func (val *Value) IsBoolean() bool {
	_, isBoolean := val.data.(bool)
	return isBoolean
}

// ToBoolean returns a bool and allows the user to define a default.
// The value false is returned if no default is defined and the value
// is not a bool.
func (val *Value) ToBoolean(defaultVal ...bool) bool {
	b, isBool := val.data.(bool)
	if isBool {
		return b
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return false
}

// IsNull returns whether the value's data is nil.
func (val *Value) IsNull() bool {
	return val == nil || val.data == nil
}

// IsPrimitive returns whether the value is a leaf: string, number,
// boolean, or null.
func (val *Value) IsPrimitive() bool {
	return val.IsNull() || !val.IsObject() && !val.IsArray()
}

// ToInterface returns the held data directly as a native interface.
func (val *Value) ToInterface() interface{} {
	if val == nil {
		return nil
	}
	return val.data
}

// ToNative converts a value to a go native type. Objects become
// map[string]interface{} and arrays become []interface{} recursively.
func (val *Value) ToNative() interface{} {
	switch v := val.data.(type) {
	case interface {
		toNative() interface{}
	}:
		return v.toNative()
	default:
		return val.data
	}
}

// DisplayString converts the value to the textual form shown to a user
// editing it. Strings are returned verbatim without quotes, numbers are
// printed in their shortest form, and containers render as compact JSON.
func (val *Value) DisplayString() string {
	if val.IsNull() {
		return "null"
	}
	switch d := val.data.(type) {
	case float64:
		return strconv.FormatFloat(d, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(d)
	case string:
		return d
	default:
		return val.String()
	}
}

// Merge will combine the old value with the new value and return the
// result.
func (val *Value) Merge(new *Value) *Value {
	switch v := val.data.(type) {
	case interface {
		merge(*Value) *Value
	}:
		return v.merge(new)
	default:
		return new
	}
}

func (val *Value) diff(new *Value, path *Path) []EditEntry {
	switch v := val.data.(type) {
	case interface {
		diff(*Value, *Path) []EditEntry
	}:
		return v.diff(new, path)
	default:
		// Leaf values
		if equal(val, new) {
			return nil
		}
		return []EditEntry{
			{Action: EditAssoc, Path: path, Value: new},
		}
	}
}

// Equal provides an implementation of Equality for Value types.
func (val *Value) Equal(other interface{}) bool {
	if other == nil {
		return val == nil
	}
	ov, isValue := other.(*Value)
	if !isValue {
		return false
	}
	return (val == nil && ov == nil) ||
		equal(val.data, ov.data)
}

// Compare provides an implementation of Comparison for Value types.
func (val *Value) Compare(other interface{}) int {
	return dyn.Compare(val.data, other.(*Value).data)
}

// String returns a compact JSON representation of the Value.
func (val *Value) String() string {
	if val.IsNull() {
		return "null"
	}
	switch d := val.data.(type) {
	case interface {
		String() string
	}:
		return d.String()
	case string:
		return strconv.Quote(d)
	case float64:
		return strconv.FormatFloat(d, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(d)
	default:
		return "null"
	}
}

func equal(v1, v2 interface{}) bool {
	return dyn.Equal(v1, v2)
}
