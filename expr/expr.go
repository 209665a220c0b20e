// Package expr evaluates small arithmetic expression trees.
package expr

import (
	"errors"
	"fmt"
)

// ErrUnknownExpr is returned for an expression that is not one of the
// types in this package.
var ErrUnknownExpr = errors.New("unknown expression")

// Expr is implemented only by Num and Sum.
type Expr interface {
	fmt.Stringer
	expr()
}

// Num is an integer literal.
type Num struct {
	Value int
}

// Sum adds two expressions.
type Sum struct {
	Left, Right Expr
}

func (Num) expr() {}
func (Sum) expr() {}

func (n Num) String() string { return fmt.Sprint(n.Value) }

func (s Sum) String() string {
	return fmt.Sprintf("(%v + %v)", s.Left, s.Right)
}

// Eval computes the value of e.
func Eval(e Expr) (int, error) {
	switch e := e.(type) {
	case Num:
		return e.Value, nil
	case Sum:
		left, err := Eval(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := Eval(e.Right)
		if err != nil {
			return 0, err
		}
		return left + right, nil
	default:
		return 0, fmt.Errorf("eval %T: %w", e, ErrUnknownExpr)
	}
}

// MustEval is like Eval but panics on error.
func MustEval(e Expr) int {
	v, err := Eval(e)
	if err != nil {
		panic(err)
	}
	return v
}
