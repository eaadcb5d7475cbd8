package ast

import (
	"math"
	"strconv"
)

var (
	_ LitValue = IntValue(0)
	_ LitValue = FloatValue(0)
	_ LitValue = StringValue("")
	_ LitValue = BoolValue(false)
	_ LitValue = UnitValue{}
)

// LitValue is the payload of a literal, shared by the surface and the core trees.
//
// The following values are supported:
//
//	IntValue:    42
//	FloatValue:  3.14
//	StringValue: "foo"
//	BoolValue:   true
//	UnitValue:   ()
type LitValue interface {
	// Syntax is how the value is written in source
	Syntax() string
	// TypeName is the name of the built-in type of the value
	TypeName() string
	litValue()
}

type IntValue int64
type FloatValue float64
type StringValue string
type BoolValue bool
type UnitValue struct{}

func (IntValue) litValue()    {}
func (FloatValue) litValue()  {}
func (StringValue) litValue() {}
func (BoolValue) litValue()   {}
func (UnitValue) litValue()   {}

func (v IntValue) Syntax() string    { return strconv.FormatInt(int64(v), 10) }
func (v FloatValue) Syntax() string  { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v StringValue) Syntax() string { return strconv.Quote(string(v)) }
func (v BoolValue) Syntax() string   { return strconv.FormatBool(bool(v)) }
func (UnitValue) Syntax() string     { return "()" }

func (IntValue) TypeName() string    { return IntTypeName }
func (FloatValue) TypeName() string  { return FloatTypeName }
func (StringValue) TypeName() string { return StringTypeName }
func (BoolValue) TypeName() string   { return BoolTypeName }
func (UnitValue) TypeName() string   { return UnitTypeName }

// LitValuesEqual compares literal payloads by their exact representation.
// Floats compare bit for bit, so NaN equals the same NaN and 0.0 differs from -0.0
func LitValuesEqual(a, b LitValue) bool {
	switch a := a.(type) {
	case FloatValue:
		b, ok := b.(FloatValue)
		return ok && math.Float64bits(float64(a)) == math.Float64bits(float64(b))
	case nil:
		return b == nil
	default:
		return a == b
	}
}
