package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is either a Success carrying a value or a Failure carrying an
// optional error payload. The zero value is a Failure without payload.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a Failure. A nil err is allowed and means "failed, no detail".
func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Propagate moves a Failure onto another value type, keeping its id,
// creation time and payload. It must only be called on a Failure.
func Propagate[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

// Get returns the value and true for a Success, the zero value and false
// for a Failure.
func (r Result[T]) Get() (T, bool) {
	if !r.isSuccess {
		var zero T
		return zero, false
	}
	return r.result, true
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
