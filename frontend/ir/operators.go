package ir

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
)

// BinaryOperator is a primitive binary operation of the core.
//
// It is a distinct type from ast.BinaryOperator so that the surface-only
// operators (cons, composition) cannot be expressed in a core tree
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
	OpConcat
	OpRefAssign
)

var fromSurfaceBinary = map[ast.BinaryOperator]BinaryOperator{
	ast.OpAdd:          OpAdd,
	ast.OpSubtract:     OpSubtract,
	ast.OpMultiply:     OpMultiply,
	ast.OpDivide:       OpDivide,
	ast.OpModulo:       OpModulo,
	ast.OpEqual:        OpEqual,
	ast.OpNotEqual:     OpNotEqual,
	ast.OpLessThan:     OpLessThan,
	ast.OpLessEqual:    OpLessEqual,
	ast.OpGreaterThan:  OpGreaterThan,
	ast.OpGreaterEqual: OpGreaterEqual,
	ast.OpLogicalAnd:   OpLogicalAnd,
	ast.OpLogicalOr:    OpLogicalOr,
	ast.OpConcat:       OpConcat,
	ast.OpRefAssign:    OpRefAssign,
}

// CoreBinaryOperator returns the core counterpart of a surface operator,
// or false for operators that desugar into something else
func CoreBinaryOperator(op ast.BinaryOperator) (BinaryOperator, bool) {
	coreOp, ok := fromSurfaceBinary[op]
	return coreOp, ok
}

func (op BinaryOperator) String() string {
	for surfaceOp, coreOp := range fromSurfaceBinary {
		if coreOp == op {
			return surfaceOp.String()
		}
	}
	return "invalid"
}

type UnaryOperator uint8

const (
	_ UnaryOperator = iota
	OpNegate
	OpLogicalNot
	OpDeref
)

// CoreUnaryOperator returns the core counterpart of a surface unary operator
func CoreUnaryOperator(op ast.UnaryOperator) (UnaryOperator, bool) {
	switch op {
	case ast.OpNegate:
		return OpNegate, true
	case ast.OpLogicalNot:
		return OpLogicalNot, true
	case ast.OpDeref:
		return OpDeref, true
	default:
		return 0, false
	}
}

func (op UnaryOperator) String() string {
	switch op {
	case OpNegate:
		return ast.OpNegate.String()
	case OpLogicalNot:
		return ast.OpLogicalNot.String()
	case OpDeref:
		return ast.OpDeref.String()
	default:
		return "invalid"
	}
}
