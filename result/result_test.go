package result

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var ErrTest = errors.New("unit test error")

func TestSuccess(t *testing.T) {
	require := require.New(t)

	r := Success[int, string](42)

	require.True(r.IsSuccess())
	require.True(r.IsSuccess())

	v, ok := r.Value()
	require.True(ok)
	require.Equal(42, v)

	f, ok := r.Failure()
	require.False(ok)
	require.Equal("", f)
}

func TestFailure(t *testing.T) {
	require := require.New(t)

	r := Failure[int, string]("network error")

	require.False(r.IsSuccess())
	require.False(r.IsSuccess())

	f, ok := r.Failure()
	require.True(ok)
	require.Equal("network error", f)

	v, ok := r.Value()
	require.False(ok)
	require.Equal(0, v)
}

func TestErrorFailure(t *testing.T) {
	require := require.New(t)

	r := Failure[int, error](ErrTest)
	require.False(r.IsSuccess())

	f, ok := r.Failure()
	require.True(ok)
	require.ErrorIs(f, ErrTest)
}

func TestNilPayloads(t *testing.T) {
	require := require.New(t)

	s := Success[*int, error](nil)
	require.True(s.IsSuccess())

	v, ok := s.Value()
	require.True(ok)
	require.Nil(v)

	f := Failure[int, error](nil)
	require.False(f.IsSuccess())

	fv, ok := f.Failure()
	require.True(ok)
	require.Nil(fv)
}

func TestZeroValue(t *testing.T) {
	require := require.New(t)

	var r Result[int, string]

	require.False(r.IsSuccess())

	f, ok := r.Failure()
	require.True(ok)
	require.Equal("", f)

	v, ok := r.Value()
	require.False(ok)
	require.Equal(0, v)
}

func TestValueIdentity(t *testing.T) {
	require := require.New(t)

	payload := &struct{ n int }{n: 7}

	r := Success[*struct{ n int }, error](payload)

	v, ok := r.Value()
	require.True(ok)
	require.Same(payload, v)
}

func TestMatchSuccess(t *testing.T) {
	require := require.New(t)

	r := Success[int, string](42)

	doubled := Match(r,
		func(v int) int { return v * 2 },
		func(f string) int { return -1 },
	)

	require.Equal(84, doubled)
}

func TestMatchFailure(t *testing.T) {
	require := require.New(t)

	r := Failure[int, string]("network error")

	msg := Match(r,
		func(v int) string { return "ok" },
		func(f string) string { return f },
	)

	require.Equal("network error", msg)
}

func TestMatchInvokesExactlyOneHandler(t *testing.T) {
	require := require.New(t)

	successCnt := 0
	failureCnt := 0

	onSuccess := func(v int) int {
		successCnt++
		return v
	}
	onFailure := func(f string) int {
		failureCnt++
		return -1
	}

	Match(Success[int, string](1), onSuccess, onFailure)
	require.Equal(1, successCnt)
	require.Equal(0, failureCnt)

	Match(Failure[int, string]("boom"), onSuccess, onFailure)
	require.Equal(1, successCnt)
	require.Equal(1, failureCnt)
}

func TestWhenSuccess(t *testing.T) {
	require := require.New(t)

	var got int
	invoked := false

	Success[int, string](42).When(
		func(v int) {
			got = v
			invoked = true
		},
		func(f string) {
			require.Fail("failure handler must not be invoked for a success")
		},
	)

	require.True(invoked)
	require.Equal(42, got)
}

func TestWhenFailure(t *testing.T) {
	require := require.New(t)

	var got string
	invoked := false

	Failure[int, string]("network error").When(
		func(v int) {
			require.Fail("success handler must not be invoked for a failure")
		},
		func(f string) {
			got = f
			invoked = true
		},
	)

	require.True(invoked)
	require.Equal("network error", got)
}

func TestWhenNilHandlers(t *testing.T) {
	require := require.New(t)

	captured := ""
	Success[int, string](42).When(nil, func(f string) {
		captured = f
	})
	require.Equal("", captured)

	invoked := false
	Failure[int, string]("boom").When(func(v int) {
		invoked = true
	}, nil)
	require.False(invoked)

	Success[int, string](42).When(nil, nil)
	Failure[int, string]("boom").When(nil, nil)
}

func TestConcurrentReads(t *testing.T) {
	require := require.New(t)

	r := Success[int, string](42)
	wg := sync.WaitGroup{}

	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			require.True(r.IsSuccess())

			v, ok := r.Value()
			require.True(ok)
			require.Equal(42, v)

			n := Match(r,
				func(v int) int { return v * 2 },
				func(f string) int { return -1 },
			)
			require.Equal(84, n)
		}()
	}

	wg.Wait()
}
