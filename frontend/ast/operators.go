package ast

type BinaryOperator uint8

const (
	_ BinaryOperator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpEqual
	OpNotEqual
	OpLessThan
	OpLessEqual
	OpGreaterThan
	OpGreaterEqual
	OpLogicalAnd
	OpLogicalOr
	// OpConcat is string concatenation: `a & b`
	OpConcat
	// OpRefAssign writes to a mutable reference: `r := v`
	OpRefAssign

	// the following operators never survive desugaring

	// OpCons prepends to a list: `h :: t`
	OpCons
	// OpForwardCompose: `f >> g`
	OpForwardCompose
	// OpBackwardCompose: `f << g`
	OpBackwardCompose
)

var binaryOperatorSyntax = map[BinaryOperator]string{
	OpAdd:             "+",
	OpSubtract:        "-",
	OpMultiply:        "*",
	OpDivide:          "/",
	OpModulo:          "%",
	OpEqual:           "==",
	OpNotEqual:        "!=",
	OpLessThan:        "<",
	OpLessEqual:       "<=",
	OpGreaterThan:     ">",
	OpGreaterEqual:    ">=",
	OpLogicalAnd:      "&&",
	OpLogicalOr:       "||",
	OpConcat:          "&",
	OpRefAssign:       ":=",
	OpCons:            "::",
	OpForwardCompose:  ">>",
	OpBackwardCompose: "<<",
}

func (op BinaryOperator) String() string {
	if s, ok := binaryOperatorSyntax[op]; ok {
		return s
	}
	return "invalid"
}

// BinaryOperatorFromSyntax is the inverse of BinaryOperator.String
func BinaryOperatorFromSyntax(syntax string) (BinaryOperator, bool) {
	for op, s := range binaryOperatorSyntax {
		if s == syntax {
			return op, true
		}
	}
	return 0, false
}

type UnaryOperator uint8

const (
	_ UnaryOperator = iota
	OpNegate
	OpLogicalNot
	// OpDeref reads a mutable reference: `!r`
	OpDeref
)

var unaryOperatorSyntax = map[UnaryOperator]string{
	OpNegate:     "-",
	OpLogicalNot: "not ",
	OpDeref:      "!",
}

func (op UnaryOperator) String() string {
	if s, ok := unaryOperatorSyntax[op]; ok {
		return s
	}
	return "invalid"
}

// UnaryOperatorFromName maps "negate", "not" and "deref" to their UnaryOperator
func UnaryOperatorFromName(name string) (UnaryOperator, bool) {
	switch name {
	case "negate", "-":
		return OpNegate, true
	case "not":
		return OpLogicalNot, true
	case "deref", "!":
		return OpDeref, true
	default:
		return 0, false
	}
}
