// Package gatewaytest provides an in-memory gateway.Gateway for handler tests.
package gatewaytest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/Marco16005/pag-web-web/internal/gateway"
)

// Responder fills dest for one procedure call.
type Responder func(dest any, params []gateway.Param) error

// Call records one invocation.
type Call struct {
	Procedure string
	Params    []gateway.Param
}

// Param returns the value passed for name, or nil.
func (c Call) Param(name string) any {
	for _, p := range c.Params {
		if p.Name == name {
			return p.Value
		}
	}
	return nil
}

// Stub answers procedure calls from registered responders. Procedures without
// a responder fail, so unexpected store access shows up in tests.
type Stub struct {
	mu         sync.Mutex
	responders map[string]Responder
	calls      []Call
}

func New() *Stub {
	return &Stub{responders: map[string]Responder{}}
}

// On registers the responder for procedure.
func (s *Stub) On(procedure string, r Responder) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responders[procedure] = r
	return s
}

func (s *Stub) Invoke(ctx context.Context, dest any, procedure string, params ...gateway.Param) error {
	s.mu.Lock()
	s.calls = append(s.calls, Call{Procedure: procedure, Params: append([]gateway.Param(nil), params...)})
	r, ok := s.responders[procedure]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("gatewaytest: no responder for %s", procedure)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return r(dest, params)
}

// Calls returns a copy of every recorded call.
func (s *Stub) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Count returns how many times procedure was invoked. An empty name counts all calls.
func (s *Stub) Count(procedure string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if procedure == "" {
		return len(s.calls)
	}
	n := 0
	for _, c := range s.calls {
		if c.Procedure == procedure {
			n++
		}
	}
	return n
}

// Rows answers with a fixed slice; its type must match the caller's dest.
func Rows(rows any) Responder {
	return func(dest any, _ []gateway.Param) error {
		dv := reflect.ValueOf(dest)
		rv := reflect.ValueOf(rows)
		if dv.Kind() != reflect.Pointer || dv.Elem().Type() != rv.Type() {
			return fmt.Errorf("gatewaytest: cannot assign %T to %T", rows, dest)
		}
		dv.Elem().Set(rv)
		return nil
	}
}

// Fail answers every call with err.
func Fail(err error) Responder {
	return func(any, []gateway.Param) error { return err }
}
