// Package resolve turns interpolated template values into concrete values.
// Deferred values are invoked concurrently and the results are returned in
// input order once every position has settled.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrResolution wraps any failure raised while invoking a deferred value.
	ErrResolution = errors.New("resolve: resolution failure")
	// ErrNotInvocable reports a func value whose signature is not supported.
	ErrNotInvocable = errors.New("resolve: func value is not invocable")
)

// Resolver is implemented by values that produce their interpolation result
// lazily.
type Resolver interface {
	Resolve(ctx context.Context) (any, error)
}

// Func adapts a function to the Resolver interface.
type Func func(ctx context.Context) (any, error)

// Resolve calls f.
func (f Func) Resolve(ctx context.Context) (any, error) {
	return f(ctx)
}

// Value wraps a ready value so it can be passed where a Resolver is expected.
func Value(v any) Resolver {
	return Func(func(context.Context) (any, error) { return v, nil })
}

// Error records which interpolation failed.
type Error struct {
	Index int
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("resolve: value %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches ErrResolution.
func (e *Error) Is(target error) bool {
	return target == ErrResolution
}

// All resolves every value concurrently. Invocable values are replaced by the
// result of calling them, every other value is passed through unchanged. The
// first failure cancels the context handed to the remaining resolvers and is
// returned; no partial result is produced.
func All(ctx context.Context, values []any) ([]any, error) {
	out := make([]any, len(values))
	if len(values) == 0 {
		return out, nil
	}

	deferred := make([]bool, len(values))
	for i, value := range values {
		if Invocable(value) {
			deferred[i] = true
			continue
		}
		if err := checkFunc(value); err != nil {
			return nil, &Error{Index: i, Err: err}
		}
		out[i] = value
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, value := range values {
		if !deferred[i] {
			continue
		}
		i, value := i, value
		g.Go(func() error {
			result, err := invoke(gctx, value)
			if err != nil {
				return &Error{Index: i, Err: err}
			}
			out[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// One resolves a single value with the same rules as All.
func One(ctx context.Context, value any) (any, error) {
	out, err := All(ctx, []any{value})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func invoke(ctx context.Context, value any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch fn := value.(type) {
	case Resolver:
		return fn.Resolve(ctx)
	case func(context.Context) (any, error):
		return fn(ctx)
	case func() (any, error):
		return fn()
	case func() (string, error):
		return fn()
	case func() any:
		return fn(), nil
	case func() string:
		return fn(), nil
	}
	return callReflect(ctx, reflect.ValueOf(value))
}
