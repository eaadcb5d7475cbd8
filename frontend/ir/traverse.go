package ir

// TransformExpr rewrites expr bottom-up: every child is transformed first, then f is
// called on the node holding the already-transformed children, and whatever f
// returns takes the node's place. The input tree is left untouched.
func TransformExpr(expr Expr, f func(Expr) Expr) Expr {
	return expr.Transform(f)
}

// CopyExpr returns a deep copy of expr
func CopyExpr(expr Expr) Expr {
	return expr.Transform(func(e Expr) Expr { return e })
}

// VisitExpr calls f on every node of expr, parents before their children and
// children in source order (see Expr.Children). Guards, record spreads, update
// entries and tuple elements are all visited
func VisitExpr(expr Expr, f func(Expr)) {
	f(expr)
	for _, child := range expr.Children() {
		VisitExpr(child, f)
	}
}

// FoldExpr threads an accumulator through every node of expr, in the same
// order as VisitExpr
func FoldExpr[A any](expr Expr, f func(Expr, A) A, initial A) A {
	acc := initial
	VisitExpr(expr, func(e Expr) {
		acc = f(e, acc)
	})
	return acc
}
