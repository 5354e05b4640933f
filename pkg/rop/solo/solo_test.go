package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/bevy-notion/pkg/rop"
)

func TestSwitch_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Switch(ctx, rop.Success(3), func(_ context.Context, v int) rop.Result[string] {
		return rop.Success(strconv.Itoa(v * 2))
	})

	require.True(t, out.IsSuccess())
	assert.Equal(t, "6", out.Result())
}

func TestSwitch_FailurePropagatesIdentity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	in := rop.Fail[int](errors.New("boom"))

	called := false
	out := Switch(ctx, in, func(_ context.Context, v int) rop.Result[string] {
		called = true
		return rop.Success("x")
	})

	assert.False(t, called)
	assert.True(t, out.IsFailure())
	assert.EqualError(t, out.Err(), "boom")
	assert.Equal(t, in.Id(), out.Id())
}

func TestSwitch_UnitFailureStaysUnit(t *testing.T) {
	t.Parallel()

	out := Switch(context.Background(), rop.Fail[int](nil), func(_ context.Context, v int) rop.Result[int] {
		return rop.Success(v)
	})

	assert.True(t, out.IsFailure())
	assert.Nil(t, out.Err())
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(ctx, rop.Success(5), func(_ context.Context, v int) int { return v + 1 })
	require.True(t, out.IsSuccess())
	assert.Equal(t, 6, out.Result())

	failed := Map(ctx, rop.Fail[int](errors.New("bad")), func(_ context.Context, v int) int {
		t.Fatal("map must not run on failure")
		return v
	})
	assert.EqualError(t, failed.Err(), "bad")
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Try(ctx, rop.Success("12"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	require.True(t, ok.IsSuccess())
	assert.Equal(t, 12, ok.Result())

	bad := Try(ctx, rop.Success("x"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	assert.True(t, bad.IsFailure())
	var numErr *strconv.NumError
	assert.ErrorAs(t, bad.Err(), &numErr)

	skipped := Try(ctx, rop.Fail[string](errors.New("earlier")), func(_ context.Context, s string) (int, error) {
		t.Fatal("try must not run on failure")
		return 0, nil
	})
	assert.EqualError(t, skipped.Err(), "earlier")
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	positive := func(_ context.Context, v int) error {
		if v <= 0 {
			return errors.New("not positive")
		}
		return nil
	}

	in := rop.Success(4)
	assert.Equal(t, in, FailOnError(ctx, in, positive))

	out := FailOnError(ctx, rop.Success(-1), positive)
	assert.EqualError(t, out.Err(), "not positive")

	prior := rop.Fail[int](errors.New("prior"))
	assert.Equal(t, prior, FailOnError(ctx, prior, positive))
}

func TestTee_OnlyOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []int
	record := func(_ context.Context, v int) { seen = append(seen, v) }

	Tee(ctx, rop.Success(1), record)
	Tee(ctx, rop.Fail[int](errors.New("x")), record)

	assert.Equal(t, []int{1}, seen)
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var okCalls, failCalls int
	var gotErr error
	onOK := func(context.Context, string) { okCalls++ }
	onFail := func(_ context.Context, err error) { failCalls++; gotErr = err }

	in := rop.Success("a")
	assert.Equal(t, in, DoubleTee(ctx, in, onOK, onFail))

	boom := errors.New("boom")
	DoubleTee(ctx, rop.Fail[string](boom), onOK, onFail)

	assert.Equal(t, 1, okCalls)
	assert.Equal(t, 1, failCalls)
	assert.Same(t, boom, gotErr)
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	onOK := func(_ context.Context, v int) string { return "val:" + strconv.Itoa(v) }
	onFail := func(_ context.Context, err error) string {
		if err == nil {
			return "fail"
		}
		return "err:" + err.Error()
	}

	assert.Equal(t, "val:2", Finally(ctx, rop.Success(2), onOK, onFail))
	assert.Equal(t, "err:bad", Finally(ctx, rop.Fail[int](errors.New("bad")), onOK, onFail))
	assert.Equal(t, "fail", Finally(ctx, rop.Fail[int](nil), onOK, onFail))
}
