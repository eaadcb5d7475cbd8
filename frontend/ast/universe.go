package ast

const (
	IntTypeName    = "Int"
	FloatTypeName  = "Float"
	StringTypeName = "String"
	BoolTypeName   = "Bool"
	UnitTypeName   = "Unit"
	ListTypeName   = "List"
)

// built-in constructors that desugaring produces
const (
	ConsConstructor = "Cons"
	NilConstructor  = "Nil"
)

// ConcatFunctionName is the built-in list concatenation function
// used when a list literal has a spread before its last element
const ConcatFunctionName = "concat"
