package fn

import (
	"sync"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// BeforeFunc calls its function for at most count invocations and then
// keeps returning the last result. It is safe for concurrent use.
type BeforeFunc struct {
	mu     sync.Mutex
	f      any
	count  int
	called int
	last   any
}

// Before returns a BeforeFunc allowing count calls of f.
//
//	create := fn.Before(3, createApplication)
//	create.Call() // calls createApplication
//	...
//	create.Call() // fourth call: returns the third result
func Before(count int, f any) *BeforeFunc {
	return &BeforeFunc{f: f, count: count}
}

// Once is Before(1, f).
func Once(f any) *BeforeFunc { return Before(1, f) }

// Call invokes the function while calls remain and returns its result;
// afterwards it returns the remembered result without invoking it.
// A failed call does not count and is not remembered.
func (b *BeforeFunc) Call(args ...any) (any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.called >= b.count {
		return b.last, nil
	}
	r, err := dispatch.Call(b.f, args...)
	if err != nil {
		return nil, err
	}
	b.last = r
	b.called++
	return r, nil
}

// Calls reports how many times the wrapped function ran.
func (b *BeforeFunc) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.called
}

// Func returns b.Call as a [Func].
func (b *BeforeFunc) Func() Func { return b.Call }

// AfterFunc ignores its first count invocations and calls its function on
// every later one. It is safe for concurrent use.
type AfterFunc struct {
	mu     sync.Mutex
	f      any
	count  int
	called int
}

// After returns an AfterFunc that starts calling f on invocation count+1.
func After(count int, f any) *AfterFunc {
	return &AfterFunc{f: f, count: count}
}

// Call returns (nil, nil) for the first count invocations and the result of
// the wrapped function afterwards.
func (a *AfterFunc) Call(args ...any) (any, error) {
	a.mu.Lock()
	if a.called < a.count {
		a.called++
		a.mu.Unlock()
		return nil, nil
	}
	a.mu.Unlock()
	return dispatch.Call(a.f, args...)
}

// Ready reports whether the next Call will invoke the wrapped function.
func (a *AfterFunc) Ready() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.called >= a.count
}

// Func returns a.Call as a [Func].
func (a *AfterFunc) Func() Func { return a.Call }
