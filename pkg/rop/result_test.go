package rop

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSuccess_Flags(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, 1, -7, 42} {
		r := Success(v)
		assert.True(t, r.IsSuccess())
		assert.False(t, r.IsFailure())
		assert.Equal(t, v, r.Result())
		assert.NoError(t, r.Err())
	}
}

func TestSuccess_StructValue(t *testing.T) {
	t.Parallel()

	type record struct{ Name string }
	r := Success(record{Name: "Central City"})

	got, ok := r.Get()
	assert.True(t, ok)
	assert.Equal(t, record{Name: "Central City"}, got)
}

func TestFail_WithPayload(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Fail[string](boom)

	assert.True(t, r.IsFailure())
	assert.False(t, r.IsSuccess())
	assert.Same(t, boom, r.Err())

	got, ok := r.Get()
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestFail_WithoutPayload(t *testing.T) {
	t.Parallel()

	r := Fail[int](nil)
	assert.True(t, r.IsFailure())
	assert.False(t, r.IsSuccess())
	assert.Nil(t, r.Err())
}

func TestZeroValue_IsUnitFailure(t *testing.T) {
	t.Parallel()

	var r Result[string]
	assert.True(t, r.IsFailure())
	assert.Nil(t, r.Err())
}

func TestIdAndCreatedAt(t *testing.T) {
	t.Parallel()

	a := Success(1)
	b := Success(1)
	assert.NotEqual(t, uuid.Nil, a.Id())
	assert.NotEqual(t, a.Id(), b.Id())
	assert.Equal(t, "UTC", a.CreatedAt().Location().String())
}

func TestPropagate_KeepsIdentity(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	in := Fail[int](boom)
	out := Propagate[int, string](in)

	assert.True(t, out.IsFailure())
	assert.Same(t, boom, out.Err())
	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
}
