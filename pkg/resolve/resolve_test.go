package resolve_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ntml/pkg/resolve"
)

type greeting struct{ name string }

func (g greeting) String() string { return "hello " + g.name }

func TestAll_InvokesCallablesAndPassesValuesThrough(t *testing.T) {
	ready := greeting{name: "ada"}
	values := []any{
		func() string { return "a" },
		func() any { return 2 },
		func() (string, error) { return "c", nil },
		func() (any, error) { return 4.5, nil },
		func(ctx context.Context) (any, error) { return ctx != nil, nil },
		resolve.Func(func(context.Context) (any, error) { return "f", nil }),
		func() int { return 7 },
		func(context.Context) (greeting, error) { return greeting{name: "bob"}, nil },
		"plain",
		ready,
		nil,
		[]byte("raw"),
	}

	got, err := resolve.All(context.Background(), values)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	want := []any{
		"a", 2, "c", 4.5, true, "f", 7, greeting{name: "bob"},
		"plain", ready, nil, []byte("raw"),
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(greeting{})); diff != "" {
		t.Fatalf("resolved values mismatch (-want +got):\n%s", diff)
	}
}

func TestAll_PreservesOrderRegardlessOfCompletion(t *testing.T) {
	delays := []time.Duration{30 * time.Millisecond, 0, 15 * time.Millisecond, 5 * time.Millisecond}
	values := make([]any, len(delays))
	for i, d := range delays {
		i, d := i, d
		values[i] = func() string {
			time.Sleep(d)
			return fmt.Sprintf("v%d", i)
		}
	}

	got, err := resolve.All(context.Background(), values)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []any{"v0", "v1", "v2", "v3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestAll_RunsConcurrently(t *testing.T) {
	const n = 4
	var started atomic.Int32
	release := make(chan struct{})

	values := make([]any, n)
	for i := range values {
		values[i] = func(ctx context.Context) (any, error) {
			if started.Add(1) == n {
				close(release)
			}
			select {
			case <-release:
				return "ok", nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := resolve.All(ctx, values); err != nil {
		t.Fatalf("resolvers did not overlap: %v", err)
	}
}

func TestAll_FailsFast(t *testing.T) {
	boom := errors.New("boom")
	canceled := make(chan struct{})

	values := []any{
		"ok",
		func(ctx context.Context) (any, error) {
			<-ctx.Done()
			close(canceled)
			return nil, ctx.Err()
		},
		func() (string, error) { return "", boom },
	}

	got, err := resolve.All(context.Background(), values)
	if got != nil {
		t.Fatalf("expected no partial result, got %v", got)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if !errors.Is(err, resolve.ErrResolution) {
		t.Fatalf("expected ErrResolution, got %v", err)
	}
	var resErr *resolve.Error
	if !errors.As(err, &resErr) || resErr.Index != 2 {
		t.Fatalf("expected failure at index 2, got %v", err)
	}

	select {
	case <-canceled:
	case <-time.After(time.Second):
		t.Fatal("sibling resolver was not canceled")
	}
}

func TestAll_RecoversPanics(t *testing.T) {
	_, err := resolve.All(context.Background(), []any{func() string { panic("nope") }})
	if !errors.Is(err, resolve.ErrResolution) {
		t.Fatalf("expected ErrResolution, got %v", err)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Fatalf("panic value missing from %q", err.Error())
	}
}

func TestAll_RejectsUnsupportedFuncs(t *testing.T) {
	cases := map[string]any{
		"takes argument":   func(s string) string { return s },
		"no results":       func() {},
		"second not error": func() (string, int) { return "", 0 },
		"variadic":         func(...any) string { return "" },
		"nil func":         (func() string)(nil),
	}

	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := resolve.All(context.Background(), []any{value})
			if !errors.Is(err, resolve.ErrNotInvocable) {
				t.Fatalf("expected ErrNotInvocable, got %v", err)
			}
		})
	}
}

func TestInvocable(t *testing.T) {
	if resolve.Invocable("x") || resolve.Invocable(nil) || resolve.Invocable(func(int) int { return 0 }) {
		t.Fatal("non-deferred values reported as invocable")
	}
	if !resolve.Invocable(func() bool { return true }) || !resolve.Invocable(resolve.Value(1)) {
		t.Fatal("deferred values not reported as invocable")
	}
}

func TestOne(t *testing.T) {
	got, err := resolve.One(context.Background(), resolve.Value("ready"))
	if err != nil {
		t.Fatalf("resolve one: %v", err)
	}
	if got != "ready" {
		t.Fatalf("unexpected value %v", got)
	}
}
