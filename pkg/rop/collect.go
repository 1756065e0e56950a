package rop

import "errors"

// Combine succeeds with every value when all results succeeded. Otherwise it
// fails with all the errors joined, in input order.
func Combine[T any](rs ...Result[T]) Result[[]T] {
	values, errs := Partition(rs...)
	if len(errs) > 0 {
		return Fail[[]T](errors.Join(errs...))
	}
	return Success(values)
}

// Partition splits results into the values of successes and the errors of
// failures.
func Partition[T any](rs ...Result[T]) (values []T, errs []error) {
	values = make([]T, 0, len(rs))
	for _, r := range rs {
		if r.IsSuccess() {
			values = append(values, r.Value())
		} else {
			errs = append(errs, r.Err())
		}
	}
	return values, errs
}

func FilterValues[T any](rs []Result[T], keep func(T) bool) []T {
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.IsSuccess() && keep(r.Value()) {
			out = append(out, r.Value())
		}
	}
	return out
}

func FilterErrors[T any](rs []Result[T], keep func(error) bool) []error {
	out := make([]error, 0)
	for _, r := range rs {
		if r.IsFailure() && keep(r.Err()) {
			out = append(out, r.Err())
		}
	}
	return out
}
