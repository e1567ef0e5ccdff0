package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOkAndErr(t *testing.T) {
	ok := Ok[int, error](42)
	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())
	assert.Equal(t, 42, ok.Unwrap())

	e := Err[int, error](errors.New("boom"))
	assert.True(t, e.IsErr())
	assert.False(t, e.IsOk())
	assert.EqualError(t, e.UnwrapErr(), "boom")
}

func TestUnwrapPanicsOnErr(t *testing.T) {
	e := Err[int, error](errors.New("boom"))
	assert.Panics(t, func() { e.Unwrap() })

	ok := Ok[int, error](1)
	assert.Panics(t, func() { ok.UnwrapErr() })
}

func TestMap(t *testing.T) {
	ok := Ok[int, error](21)
	doubled := Map(ok, func(v int) int { return v * 2 })
	require.True(t, doubled.IsOk())
	assert.Equal(t, 42, doubled.Unwrap())

	e := Err[int, error](errors.New("boom"))
	mapped := Map(e, func(v int) string { return strconv.Itoa(v) })
	require.True(t, mapped.IsErr())
	assert.EqualError(t, mapped.UnwrapErr(), "boom")
}

func TestBindShortCircuits(t *testing.T) {
	parse := func(s string) Result[int, error] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Err[int, error](err)
		}
		return Ok[int, error](n)
	}

	ok := Bind(Ok[string, error]("7"), parse)
	require.True(t, ok.IsOk())
	assert.Equal(t, 7, ok.Unwrap())

	bad := Bind(Ok[string, error]("nope"), parse)
	assert.True(t, bad.IsErr())

	called := false
	e := Bind(Err[string, error](errors.New("upstream")), func(string) Result[int, error] {
		called = true
		return Ok[int, error](0)
	})
	assert.True(t, e.IsErr())
	assert.False(t, called, "bind must not call f on Err")
	assert.EqualError(t, e.UnwrapErr(), "upstream")
}

func TestMatchCallsExactlyOneBranch(t *testing.T) {
	got := Match(Ok[int, error](3),
		func(v int) string { return "ok:" + strconv.Itoa(v) },
		func(err error) string { return "err:" + err.Error() },
	)
	assert.Equal(t, "ok:3", got)

	got = Match(Err[int, error](errors.New("bad")),
		func(v int) string { return "ok:" + strconv.Itoa(v) },
		func(err error) string { return "err:" + err.Error() },
	)
	assert.Equal(t, "err:bad", got)
}

func TestZeroValueIsErr(t *testing.T) {
	var r Result[int, error]
	assert.True(t, r.IsErr())
}
