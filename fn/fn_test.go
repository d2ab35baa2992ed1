package fn_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/dispatch"
	"github.com/hasbyte1/go-underscore/fn"
)

func sub(a, b int) int { return b - a }

// ─── Partial ──────────────────────────────────────────────────────────────────

func TestPartial(t *testing.T) {
	r, err := fn.Partial(sub, 5)(20)
	require.NoError(t, err)
	assert.Equal(t, 15, r)

	r, err = fn.Partial(sub, fn.Placeholder, 20)(5)
	require.NoError(t, err)
	assert.Equal(t, 15, r)
}

func TestPartialAppendsRemainingArgs(t *testing.T) {
	join := func(parts ...string) string { return strings.Join(parts, ",") }
	r, err := fn.Partial(join, "a", fn.Placeholder, "c")("b", "d", "e")
	require.NoError(t, err)
	assert.Equal(t, "a,b,c,d,e", r)
}

func TestPartialMissingPlaceholderArgument(t *testing.T) {
	_, err := fn.Partial(sub, fn.Placeholder, fn.Placeholder)(1)
	assert.ErrorIs(t, err, dispatch.ErrInvalidArgument)
}

func TestPartialKwargs(t *testing.T) {
	greet := func(name string, kw fn.Kwargs) string {
		return fmt.Sprintf("%s %s%s", kw["greeting"], name, kw["punct"])
	}
	hello := fn.Partial(greet, fn.Kwargs{"greeting": "hello", "punct": "."})

	r, err := hello("moe")
	require.NoError(t, err)
	assert.Equal(t, "hello moe.", r)

	r, err = hello("moe", fn.Kwargs{"punct": "!"})
	require.NoError(t, err)
	assert.Equal(t, "hello moe!", r, "call-time keywords override bound ones")
}

// ─── Counted ──────────────────────────────────────────────────────────────────

func TestBefore(t *testing.T) {
	calls := 0
	create := fn.Before(3, func() int { calls++; return calls * 10 })

	var got []any
	for range 5 {
		r, err := create.Call()
		require.NoError(t, err)
		got = append(got, r)
	}
	assert.Equal(t, []any{10, 20, 30, 30, 30}, got)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, create.Calls())
}

func TestBeforeZeroNeverCalls(t *testing.T) {
	calls := 0
	r, err := fn.Before(0, func() int { calls++; return 1 }).Call()
	require.NoError(t, err)
	assert.Nil(t, r)
	assert.Zero(t, calls)
}

func TestBeforeFailedCallIsNotRemembered(t *testing.T) {
	boom := errors.New("boom")
	fail := true
	f := fn.Once(func() (string, error) {
		if fail {
			return "", boom
		}
		return "ok", nil
	})

	_, err := f.Call()
	assert.ErrorIs(t, err, boom)

	fail = false
	r, err := f.Call()
	require.NoError(t, err)
	assert.Equal(t, "ok", r)
	assert.Equal(t, 1, f.Calls())
}

func TestOnce(t *testing.T) {
	calls := 0
	initialize := fn.Once(func() string { calls++; return "created" })
	for range 3 {
		r, err := initialize.Call()
		require.NoError(t, err)
		assert.Equal(t, "created", r)
	}
	assert.Equal(t, 1, calls)
}

func TestAfter(t *testing.T) {
	delayed := fn.After(2, func(n int) int { return n * 2 })

	var got []any
	for i := range 4 {
		assert.Equal(t, i >= 2, delayed.Ready())
		r, err := delayed.Call(i)
		require.NoError(t, err)
		got = append(got, r)
	}
	assert.Equal(t, []any{nil, nil, 4, 6}, got)
}

// ─── Adapters ─────────────────────────────────────────────────────────────────

func TestWrap(t *testing.T) {
	hello := func(name string) string { return "Hello: " + name }
	wrapped := fn.Wrap(hello, func(f func(string) string, prefix string) string {
		return "before, " + f(prefix+"name") + ", after"
	})
	r, err := wrapped("my ")
	require.NoError(t, err)
	assert.Equal(t, "before, Hello: my name, after", r)
}

func TestNegate(t *testing.T) {
	both := func(x, y bool) bool { return x && y }

	r, err := fn.Negate(both, false, true)
	require.NoError(t, err)
	assert.True(t, r)

	r, err = fn.Negate(both, true, true)
	require.NoError(t, err)
	assert.False(t, r)

	r, err = fn.Negate(true)
	require.NoError(t, err)
	assert.False(t, r)

	r, err = fn.Negate(0)
	require.NoError(t, err)
	assert.True(t, r)

	isEven := func(n int) bool { return n%2 == 0 }
	assert.True(t, fn.Not(isEven)(3))
}

func TestCallableObjectsActAsFunctions(t *testing.T) {
	calls := 0
	yes := fn.Once(func() bool { calls++; return true })

	r, err := fn.Negate(yes)
	require.NoError(t, err)
	assert.False(t, r, "the Call result is negated, not the object")
	assert.Equal(t, 1, calls)

	double := fn.Before(5, func(n int) int { return n * 2 })
	got, err := fn.Partial(double, 4)()
	require.NoError(t, err)
	assert.Equal(t, 8, got)

	got, err = fn.ComposeAll(fn.Once(strings.ToUpper), strings.TrimSpace)("  moe ")
	require.NoError(t, err)
	assert.Equal(t, "MOE", got)

	shout := func(f any, s string) (any, error) { return dispatch.Call(f, s+"!") }
	got, err = fn.Wrap(fn.Once(strings.ToUpper), fn.Once(shout))("hi")
	require.NoError(t, err)
	assert.Equal(t, "HI!", got)

	n, variadic := dispatch.Arity(yes)
	assert.Equal(t, 0, n)
	assert.True(t, variadic)

	var missing *fn.BeforeFunc
	n, _ = dispatch.Arity(missing)
	assert.Equal(t, -1, n)
	_, err = dispatch.Call(missing)
	assert.ErrorIs(t, err, dispatch.ErrTypeMismatch)
}

func TestCompose(t *testing.T) {
	greet := func(name string) string { return "hi: " + name }
	exclaim := func(s string) string { return strings.ToUpper(s) + "!" }

	assert.Equal(t, "hi: MOE!", fn.Compose(greet, exclaim)("moe"))

	r, err := fn.ComposeAll(greet, exclaim)("moe")
	require.NoError(t, err)
	assert.Equal(t, "hi: MOE!", r)

	double := func(n int) int { return n * 2 }
	inc := func(n int) int { return n + 1 }
	for _, x := range []int{-3, 0, 7} {
		assert.Equal(t, double(inc(x)), fn.Compose(double, inc)(x))
	}

	_, err = fn.ComposeAll()()
	assert.ErrorIs(t, err, dispatch.ErrInvalidArgument)
}

func TestComposeAllReceivesEveryArgument(t *testing.T) {
	add := func(a, b int) int { return a + b }
	square := func(n int) int { return n * n }
	r, err := fn.ComposeAll(square, add)(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 25, r)
}

// ─── Utilities ────────────────────────────────────────────────────────────────

func TestUtilities(t *testing.T) {
	assert.Equal(t, "x", fn.Identity("x"))

	stooge := map[string]string{"name": "moe"}
	assert.Equal(t, stooge, fn.Constant(stooge)(1, 2, 3))

	fn.Noop(1, "two")

	assert.Equal(t, []int{0, 1, 2}, fn.Times(3, fn.Identity[int]))
	assert.Equal(t, []string{}, fn.Times(0, func(int) string { return "" }))
}

func ExamplePartial() {
	subFrom20 := fn.Partial(func(a, b int) int { return b - a }, fn.Placeholder, 20)
	r, _ := subFrom20(5)
	fmt.Println(r)
	// Output: 15
}

func ExampleComposeAll() {
	greet := func(name string) string { return "hi: " + name }
	exclaim := func(s string) string { return strings.ToUpper(s) + "!" }
	r, _ := fn.ComposeAll(greet, exclaim)("moe")
	fmt.Println(r)
	// Output: hi: MOE!
}
