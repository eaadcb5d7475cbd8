package ir

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
)

func IntLiteral(value int64, at Location) *Literal {
	return &Literal{Location: at, Value: ast.IntValue(value)}
}

func FloatLiteral(value float64, at Location) *Literal {
	return &Literal{Location: at, Value: ast.FloatValue(value)}
}

func StringLiteral(value string, at Location) *Literal {
	return &Literal{Location: at, Value: ast.StringValue(value)}
}

func BoolLiteral(value bool, at Location) *Literal {
	return &Literal{Location: at, Value: ast.BoolValue(value)}
}

// UnitLiteral is `()`, the value of loops and other expressions run for their effects
func UnitLiteral(at Location) *Literal {
	return &Literal{Location: at, Value: ast.UnitValue{}}
}

// Nil is the empty list
func Nil(at Location) *Variant {
	return &Variant{Location: at, Constructor: ast.NilConstructor}
}

// Cons prepends head to tail
func Cons(head, tail Expr, at Location) *Variant {
	return &Variant{Location: at, Constructor: ast.ConsConstructor, Args: []Expr{head, tail}}
}

func NilPattern(at Location) *VariantPattern {
	return &VariantPattern{Location: at, Constructor: ast.NilConstructor}
}

func ConsPattern(head, tail Pattern, at Location) *VariantPattern {
	return &VariantPattern{Location: at, Constructor: ast.ConsConstructor, Args: []Pattern{head, tail}}
}
