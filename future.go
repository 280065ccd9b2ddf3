// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// future is a write-once cell completed by exactly one goroutine.
type future struct {
	done chan struct{}
	val  Erased
	err  error
}

func newFuture() *future { return &future{done: make(chan struct{})} }

func resolved(v Erased) *future {
	f := newFuture()
	f.val = v
	close(f.done)
	return f
}

func (f *future) wait() (Erased, error) {
	<-f.done
	return f.val, f.err
}

// futureEffect is the asynchronous applicative over *future.
// Handler work runs in the handler group, possibly in parallel;
// combinators run in the assembly group and only wait on their inputs,
// so the composition order never depends on scheduling.
type futureEffect struct {
	asm *errgroup.Group
}

func (futureEffect) Of(a Erased) Erased { return resolved(a) }

func (e futureEffect) Map(fa Erased, f func(Erased) Erased) Erased {
	in := fa.(*future)
	out := newFuture()
	e.asm.Go(func() error {
		defer close(out.done)
		v, err := in.wait()
		if err != nil {
			out.err = err
			return nil
		}
		out.err = capture(func() { out.val = f(v) })
		return nil
	})
	return out
}

func (e futureEffect) Ap(ff, fa Erased) Erased {
	inf := ff.(*future)
	ina := fa.(*future)
	out := newFuture()
	e.asm.Go(func() error {
		defer close(out.done)
		f, err := inf.wait()
		if err != nil {
			out.err = err
			return nil
		}
		a, err := ina.wait()
		if err != nil {
			out.err = err
			return nil
		}
		out.err = capture(func() { out.val = f.(func(Erased) Erased)(a) })
		return nil
	})
	return out
}

// AsyncHandlers maps every constructor to a possibly slow, fallible handler.
type AsyncHandlers map[string]func(context.Context, Fields) (Rebuild, error)

// AsyncOption configures [TraverseAsync].
type AsyncOption func(*asyncOptions)

type asyncOptions struct {
	limit int
}

// WithConcurrency bounds the number of handlers running at once.
// Zero or negative means unbounded.
func WithConcurrency(n int) AsyncOption {
	return func(o *asyncOptions) { o.limit = n }
}

// TraverseAsync is [Traverse] specialized to concurrent handlers.
//
// Handlers of all layers may run in parallel, but the result is assembled in
// the same post-order as every other traversal. The first handler error
// cancels the context passed to the remaining handlers and is returned.
// A panicking handler is reported as a *[PanicError].
func TraverseAsync(ctx context.Context, r *Recursion, handlers AsyncHandlers, opts ...AsyncOption) func(Value) (Value, error) {
	var o asyncOptions
	for _, opt := range opts {
		opt(&o)
	}
	checkHandlers(r.t, "traverse", keys(handlers))
	return func(v Value) (Value, error) {
		work, wctx := errgroup.WithContext(ctx)
		if o.limit > 0 {
			work.SetLimit(o.limit)
		}
		var asm errgroup.Group
		erased := make(TraverseHandlers, len(handlers))
		for tag, h := range handlers {
			erased[tag] = func(f Fields) Erased {
				out := newFuture()
				work.Go(func() error {
					defer close(out.done)
					if err := wctx.Err(); err != nil {
						out.err = err
						return err
					}
					var rb Rebuild
					err := capture(func() { rb, out.err = h(wctx, f) })
					if err != nil {
						out.err = err
					}
					out.val = rb
					return out.err
				})
				return out
			}
		}
		root := Traverse(r, futureEffect{asm: &asm}, erased)(v).(*future)
		workErr := work.Wait()
		_ = asm.Wait()
		res, err := root.wait()
		if workErr != nil {
			return Value{}, workErr
		}
		if err != nil {
			return Value{}, err
		}
		return res.(Value), nil
	}
}
