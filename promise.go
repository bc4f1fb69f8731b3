package sparkpost

import (
	"context"

	"github.com/sparkpost/client-go/future"
)

// PromiseState describes whether a Promise has settled.
type PromiseState = future.State

const (
	// StatePending means the request is still in flight.
	StatePending = future.Pending
	// StateFulfilled means the request produced a Response.
	StateFulfilled = future.Fulfilled
	// StateRejected means the request produced an error.
	StateRejected = future.Rejected
)

// Promise is the eventual result of a request. It settles with a *Response
// or with an error, which is a *ClientError for anything that went wrong
// after the request was built.
type Promise struct {
	f       *future.Future[*Response]
	request *RequestValues
}

func newPromise(f *future.Future[*Response], req *RequestValues) *Promise {
	return &Promise{f: f, request: req}
}

func settledPromise(resp *Response, err error, req *RequestValues) *Promise {
	if err != nil {
		return newPromise(future.Failed[*Response](err), req)
	}
	return newPromise(future.Resolved(resp), req)
}

// Wait blocks until the promise settles.
func (p *Promise) Wait() (*Response, error) {
	return p.f.Wait()
}

// WaitContext blocks until the promise settles or ctx is done. Giving up on
// the wait does not cancel the request; cancel the context passed to the
// request for that.
func (p *Promise) WaitContext(ctx context.Context) (*Response, error) {
	return p.f.Await(ctx)
}

// Then registers callbacks run once the promise settles: onFulfilled with the
// response or onRejected with the error. Either may be nil. The returned
// promise settles with the same result after the callback has returned.
func (p *Promise) Then(onFulfilled func(*Response), onRejected func(error)) *Promise {
	next := future.Then(p.f, func(resp *Response, err error) (*Response, error) {
		if err != nil {
			if onRejected != nil {
				onRejected(err)
			}
			return nil, err
		}
		if onFulfilled != nil {
			onFulfilled(resp)
		}
		return resp, nil
	})
	return newPromise(next, p.request)
}

// State reports the current state without blocking.
func (p *Promise) State() PromiseState {
	return p.f.State()
}

// Done returns a channel closed when the promise settles.
func (p *Promise) Done() <-chan struct{} {
	return p.f.Done()
}

// Request returns the values being sent. It is nil unless the client runs
// with Debug enabled.
func (p *Promise) Request() *RequestValues {
	return p.request
}
