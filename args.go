package memocache

import (
	"context"
	"fmt"
	"slices"

	"github.com/mitba/memo-cache/memokey"
)

// Arg passes a value as a keyword argument to a memoized method or function.
func Arg(name string, value any) memokey.Named {
	return memokey.Named{Name: name, Value: value}
}

// BindArgs resolves a mixed positional/keyword argument list against the
// declared parameter names and returns the values in declaration order.
//
// Positional values fill the leading parameters; keyword values fill the
// rest by name. A parameter left unfilled yields ErrMissingArguments. Too
// many positionals, an unknown name or a doubly-assigned parameter yield
// ErrArgumentMismatch.
func BindArgs(names []string, args []any) ([]any, error) {
	positional, named := memokey.Split(args)
	if len(positional) > len(names) {
		return nil, fmt.Errorf("%w: got %d positional arguments, want at most %d",
			ErrArgumentMismatch, len(positional), len(names))
	}

	bound := make([]any, len(names))
	filled := make([]bool, len(names))
	for i, v := range positional {
		bound[i] = v
		filled[i] = true
	}
	for _, n := range named {
		i := slices.Index(names, n.Name)
		if i < 0 {
			return nil, fmt.Errorf("%w: unknown argument %q", ErrArgumentMismatch, n.Name)
		}
		if filled[i] {
			return nil, fmt.Errorf("%w: argument %q assigned twice", ErrArgumentMismatch, n.Name)
		}
		bound[i] = n.Value
		filled[i] = true
	}
	for i, ok := range filled {
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingArguments, names[i])
		}
	}
	return bound, nil
}

// Adapt1 wraps a one-parameter method into a MethodFunc, binding the
// argument by position or by name.
func Adapt1[O Owner, A, T any](name string, fn func(context.Context, O, A) (T, error)) MethodFunc[O, T] {
	return func(ctx context.Context, owner O, args ...any) (T, error) {
		var zero T
		bound, err := BindArgs([]string{name}, args)
		if err != nil {
			return zero, err
		}
		a, ok := bound[0].(A)
		if !ok {
			return zero, fmt.Errorf("%w: argument %q has type %T", ErrArgumentMismatch, name, bound[0])
		}
		return fn(ctx, owner, a)
	}
}

// Adapt2 wraps a two-parameter method into a MethodFunc.
func Adapt2[O Owner, A, B, T any](nameA, nameB string, fn func(context.Context, O, A, B) (T, error)) MethodFunc[O, T] {
	return func(ctx context.Context, owner O, args ...any) (T, error) {
		var zero T
		bound, err := BindArgs([]string{nameA, nameB}, args)
		if err != nil {
			return zero, err
		}
		a, ok := bound[0].(A)
		if !ok {
			return zero, fmt.Errorf("%w: argument %q has type %T", ErrArgumentMismatch, nameA, bound[0])
		}
		b, ok := bound[1].(B)
		if !ok {
			return zero, fmt.Errorf("%w: argument %q has type %T", ErrArgumentMismatch, nameB, bound[1])
		}
		return fn(ctx, owner, a, b)
	}
}
