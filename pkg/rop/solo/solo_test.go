package solo

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/fnkit/pkg/rop"
	"github.com/ib-77/fnkit/pkg/xlog"
	"github.com/stretchr/testify/assert"
)

// helper validators for int values that ignore prior result and validate captured value
func validateNonNegative(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v < 0 {
			return rop.Fail[int](errors.New("negative"))
		}
		return rop.Success(v)
	}
}

func validateEven(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v%2 != 0 {
			return rop.Fail[int](errors.New("odd"))
		}
		return rop.Success(v)
	}
}

func passThrough[T any]() func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
	return func(ctx context.Context, in rop.Result[T]) rop.Result[T] { return in }
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	notEmpty := func(ctx context.Context, s string) (bool, string) {
		if s == "" {
			return false, "empty"
		}
		return true, ""
	}

	if r := Validate(ctx, "x", notEmpty); !r.IsSuccess() || r.Value() != "x" {
		t.Fatalf("expected success x, got success=%v err=%v", r.IsSuccess(), r.Err())
	}
	if r := Validate(ctx, "", notEmpty); r.IsSuccess() || r.Err().Error() != "empty" {
		t.Fatalf("expected failure 'empty', got success=%v err=%v", r.IsSuccess(), r.Err())
	}
}

func TestAndValidate_SkipsFailure(t *testing.T) {
	t.Parallel()

	called := false
	r := AndValidate(context.Background(), rop.Fail[int](errors.New("before")),
		func(ctx context.Context, in int) (bool, string) {
			called = true
			return true, ""
		})

	if called {
		t.Fatalf("validator must not run on a failed result")
	}
	if r.Err() == nil || r.Err().Error() != "before" {
		t.Fatalf("expected 'before', got %v", r.Err())
	}
}

func TestValidateAll_AllSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := 10 // non-negative, even
	input := rop.Success(v)

	res := ValidateAll[int](ctx, input, true, validateNonNegative(v), validateEven(v))

	if !res.IsSuccess() {
		t.Fatalf("expected success, got error: %v", res.Err())
	}
	if res.Value() != v {
		t.Fatalf("expected result %d, got %d", v, res.Value())
	}
}

func TestValidateAll_FailBreakOnFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -1 // fails non-negative and odd
	input := rop.Success(v)

	executed := 0
	v1 := func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		executed++
		return validateNonNegative(v)(ctx, in)
	}

	v2 := func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		executed++
		return validateEven(v)(ctx, in)
	}

	res := ValidateAll[int](ctx, input, true, v1, v2)

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", res.Value())
	}
	if executed != 1 {
		t.Fatalf("expected only first validator to execute, got %d", executed)
	}

	// errors.Join(single) should equal the original error
	if res.Err() == nil || res.Err().Error() != "negative" {
		t.Fatalf("expected 'negative' error, got: %v", res.Err())
	}
}

func TestValidateAll_AccumulateErrors_NoBreak(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -3 // negative and odd
	input := rop.Success(v)

	res := ValidateAll[int](ctx, input, false, validateNonNegative(v), validateNonNegative(v), validateEven(v))

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", res.Value())
	}

	errs := rop.GetErrors(res.Err())
	if len(errs) != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d", len(errs))
	}

	// order follows validator sequence
	if errs[0].Error() != "negative" || errs[1].Error() != "negative" || errs[2].Error() != "odd" {
		t.Fatalf("expected errors ['negative', 'negative', 'odd'], got ['%s','%s','%s']",
			errs[0].Error(), errs[1].Error(), errs[2].Error())
	}
}

func TestValidateAll_InitialInputFail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	initialErr := errors.New("initial")
	input := rop.Fail[int](initialErr)

	res := ValidateAll[int](ctx, input, true, passThrough[int]())

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	if !errors.Is(res.Err(), initialErr) {
		t.Fatalf("expected initial error, got %v", res.Err())
	}
}

func TestJoin_StopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := rop.Success(1)
	res := Join(ctx, input, true, passThrough[int](), validateEven(1))
	assert.Equal(t, input.Id(), res.Id())
}

func TestJoin_StepsSeePreviousOutput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var ran []int
	step := func(n int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
			ran = append(ran, n)
			if n == 2 {
				return rop.Fail[int](errors.New("two"))
			}
			return rop.MapValue(in, func(v int) int { return v + n })
		}
	}

	res := Join(ctx, rop.Success(10), true, passThrough[int](), step(1), step(2), step(3))
	assert.EqualError(t, res.Err(), "two")
	assert.Equal(t, []int{1, 2}, ran)

	ran = nil
	res = Join(ctx, rop.Success(10), false, passThrough[int](), step(1), step(3))
	assert.Equal(t, 14, res.Value())
	assert.Equal(t, []int{1, 3}, ran)

	assert.Equal(t, 10, Join[int](ctx, rop.Success(10), true, nil, step(1)).Value())
}

func TestSwitchMapTry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s := Switch(ctx, rop.Success(4), func(ctx context.Context, r int) rop.Result[string] {
		return rop.Success(strconv.Itoa(r))
	})
	assert.Equal(t, "4", s.Value())

	m := Map(ctx, rop.Success(4), func(ctx context.Context, r int) int { return r * r })
	assert.Equal(t, 16, m.Value())

	tr := Try(ctx, rop.Success("nope"), func(ctx context.Context, r string) (int, error) {
		return strconv.Atoi(r)
	})
	assert.True(t, tr.IsFailure())

	boom := errors.New("boom")
	called := false
	skipped := Map(ctx, rop.Fail[int](boom), func(ctx context.Context, r int) int {
		called = true
		return r
	})
	assert.False(t, called)
	assert.ErrorIs(t, skipped.Err(), boom)
}

func TestFailOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limit := errors.New("too big")
	check := func(ctx context.Context, in int) error {
		if in > 10 {
			return limit
		}
		return nil
	}

	assert.True(t, FailOnError(ctx, rop.Success(3), check).IsSuccess())
	assert.ErrorIs(t, FailOnError(ctx, rop.Success(30), check).Err(), limit)
}

func TestTees(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	seen := 0
	Tee(ctx, rop.Success(2), func(ctx context.Context, r rop.Result[int]) { seen = r.Value() })
	assert.Equal(t, 2, seen)

	Tee(ctx, rop.Fail[int](errors.New("x")), func(ctx context.Context, r rop.Result[int]) { seen = -1 })
	assert.Equal(t, 2, seen)

	TeeIf(ctx, rop.Success(5),
		func(ctx context.Context, r rop.Result[int]) bool { return r.Value() > 3 },
		func(ctx context.Context, r rop.Result[int]) { seen = r.Value() })
	assert.Equal(t, 5, seen)

	var gotErr error
	DoubleTee(ctx, rop.Fail[int](errors.New("bad")),
		func(ctx context.Context, r int) { seen = r },
		func(ctx context.Context, err error) { gotErr = err })
	assert.EqualError(t, gotErr, "bad")
	assert.Equal(t, 5, seen)
}

func TestLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	l := xlog.NewTextTo(buf, xlog.LevelDebug)
	ctx := context.Background()

	failed := rop.Fail[int](errors.New("lookup failed"))
	out := Logged(ctx, failed, l, "user lookup")

	assert.Equal(t, failed.Id(), out.Id())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "lookup failed")
	assert.Contains(t, buf.String(), failed.Id().String())

	buf.Reset()
	Logged(ctx, rop.Success(7), l, "user lookup")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "value=7")
}

func TestFinally(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	onSuccess := func(ctx context.Context, r int) string { return "val:" + strconv.Itoa(r) }
	onError := func(ctx context.Context, err error) string { return "err" }

	assert.Equal(t, "val:1", Finally(ctx, rop.Success(1), onSuccess, onError))
	assert.Equal(t, "err", Finally(ctx, rop.Fail[int](errors.New("x")), onSuccess, onError))
}
