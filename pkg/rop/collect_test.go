package rop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine_AllSuccess(t *testing.T) {
	t.Parallel()

	r := Combine(Success(1), Success(2), Success(3))
	assert.True(t, r.IsSuccess())
	assert.Equal(t, []int{1, 2, 3}, r.Value())
}

func TestCombine_JoinsEveryError(t *testing.T) {
	t.Parallel()

	e1 := errors.New("first")
	e2 := errors.New("second")
	r := Combine(Success(1), Fail[int](e1), Success(3), Fail[int](e2))

	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), e1)
	assert.ErrorIs(t, r.Err(), e2)

	errs := GetErrors(r.Err())
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0] != e1 || errs[1] != e2 {
		t.Fatalf("expected errors in input order, got %v", errs)
	}
}

func TestCombine_Empty(t *testing.T) {
	t.Parallel()

	r := Combine[int]()
	assert.True(t, r.IsSuccess())
	assert.Empty(t, r.Value())
}

func TestPartition(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	values, errs := Partition(Success("a"), Fail[string](boom), Success("b"))
	assert.Equal(t, []string{"a", "b"}, values)
	assert.Equal(t, []error{boom}, errs)
}

func TestFilters(t *testing.T) {
	t.Parallel()

	notFound := errors.New("not found")
	denied := errors.New("denied")
	rs := []Result[int]{Success(1), Success(2), Fail[int](notFound), Success(4), Fail[int](denied)}

	even := FilterValues(rs, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)

	onlyDenied := FilterErrors(rs, func(err error) bool { return errors.Is(err, denied) })
	assert.Equal(t, []error{denied}, onlyDenied)
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))

	single := errors.New("single")
	assert.Equal(t, []error{single}, GetErrors(single))
}
