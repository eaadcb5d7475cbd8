package ilerr

import (
	"fmt"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include the frame that created them when printed
var enableDebugErrorPrinting = false

const enableDebugFullStacktrace bool = false

// SetDebugPrinting toggles printing the creation site of errors in FormatWithCode
func SetDebugPrinting(enabled bool) {
	enableDebugErrorPrinting = enabled
}

type ErrCode int

const (
	None ErrCode = iota
	EmptyBlock
	LambdaWithoutParams
	NonLetInBlock
	MissingElement
	EmptyOrPattern
	EmptyLetRecGroup
	BlockLetWithBody
)

// IleError is a structural error found while desugaring, reported to the user
// at the location of the offending node
type IleError interface {
	Error() string
	Code() ErrCode
	ast.Positioner
	// Hint suggests how to fix the error, and may be empty
	Hint() string

	withStack([]byte) IleError
	getStack() []byte
}

// FormatWithCode renders e as `file:line:col: (E00N) message`, followed by
// a hint line when e has one
func FormatWithCode(e IleError) string {
	var b strings.Builder
	if loc := e.Loc(); !loc.IsZero() {
		b.WriteString(loc.String() + ": ")
	}
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if lines := strings.Split(stack, "\n"); !enableDebugFullStacktrace && len(lines) > 6 {
			stack = strings.TrimSpace(lines[6])
		}
		b.WriteString(stack + ": ")
	}
	b.WriteString(fmt.Sprintf("(E%03d) %s", e.Code(), e.Error()))
	if hint := e.Hint(); hint != "" {
		b.WriteString("\n\thint: " + hint)
	}
	return b.String()
}

func New[E IleError](err E) IleError {
	return err.withStack(debug.Stack())
}

type NewEmptyBlock struct {
	ast.Location
	stack []byte
}

func (e NewEmptyBlock) Error() string    { return "Empty block" }
func (e NewEmptyBlock) Code() ErrCode    { return EmptyBlock }
func (e NewEmptyBlock) Hint() string     { return "a block needs at least one expression, use () for an empty value" }
func (e NewEmptyBlock) getStack() []byte { return e.stack }
func (e NewEmptyBlock) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewLambdaWithoutParams struct {
	ast.Location
	stack []byte
}

func (e NewLambdaWithoutParams) Error() string    { return "Lambda with no parameters" }
func (e NewLambdaWithoutParams) Code() ErrCode    { return LambdaWithoutParams }
func (e NewLambdaWithoutParams) Hint() string     { return "take a unit parameter instead: (_) => ..." }
func (e NewLambdaWithoutParams) getStack() []byte { return e.stack }
func (e NewLambdaWithoutParams) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

// NewNonLetInBlock is raised for an expression in a block that is neither
// the last one nor a let binding
type NewNonLetInBlock struct {
	ast.Location
	// Found describes the offending expression
	Found string
	stack []byte
}

func (e NewNonLetInBlock) Error() string {
	return fmt.Sprintf("Non-let expression in block: found %s before the last expression", e.Found)
}
func (e NewNonLetInBlock) Code() ErrCode    { return NonLetInBlock }
func (e NewNonLetInBlock) Hint() string     { return "bind it with `let _ = ...;` to run it for its effects" }
func (e NewNonLetInBlock) getStack() []byte { return e.stack }
func (e NewNonLetInBlock) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

// NewMissingElement is raised when a node lacks a child it needs, such as
// a nil element in a list literal
type NewMissingElement struct {
	ast.Location
	// In describes the node missing a child
	In    string
	stack []byte
}

func (e NewMissingElement) Error() string {
	return fmt.Sprintf("Missing element in %s", e.In)
}
func (e NewMissingElement) Code() ErrCode    { return MissingElement }
func (e NewMissingElement) Hint() string     { return "" }
func (e NewMissingElement) getStack() []byte { return e.stack }
func (e NewMissingElement) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewEmptyOrPattern struct {
	ast.Location
	stack []byte
}

func (e NewEmptyOrPattern) Error() string    { return "Or-pattern without alternatives" }
func (e NewEmptyOrPattern) Code() ErrCode    { return EmptyOrPattern }
func (e NewEmptyOrPattern) Hint() string     { return "" }
func (e NewEmptyOrPattern) getStack() []byte { return e.stack }
func (e NewEmptyOrPattern) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewEmptyLetRecGroup struct {
	ast.Location
	stack []byte
}

func (e NewEmptyLetRecGroup) Error() string    { return "Recursive let group without bindings" }
func (e NewEmptyLetRecGroup) Code() ErrCode    { return EmptyLetRecGroup }
func (e NewEmptyLetRecGroup) Hint() string     { return "" }
func (e NewEmptyLetRecGroup) getStack() []byte { return e.stack }
func (e NewEmptyLetRecGroup) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

// NewBlockLetWithBody is raised for a `let ... in e` used before the last
// expression of a block, where the rest of the block is the body
type NewBlockLetWithBody struct {
	ast.Location
	stack []byte
}

func (e NewBlockLetWithBody) Error() string    { return "Let with its own body inside a block" }
func (e NewBlockLetWithBody) Code() ErrCode    { return BlockLetWithBody }
func (e NewBlockLetWithBody) Hint() string     { return "drop the `in ...` part, the rest of the block is the body" }
func (e NewBlockLetWithBody) getStack() []byte { return e.stack }
func (e NewBlockLetWithBody) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}
