package jsonapi

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/neuronlabs/jsonapi/query"
)

// Request is the context of a single document assembly. It carries the query
// parameters and lazily parses the sparse fieldsets once.
type Request struct {
	ctx    context.Context
	values url.Values

	fieldsOnce sync.Once
	fieldsets  query.Fieldsets
	fieldsErr  error
}

// NewRequest creates new request context for given query 'values'.
func NewRequest(ctx context.Context, values url.Values) *Request {
	if ctx == nil {
		ctx = context.Background()
	}
	if values == nil {
		values = url.Values{}
	}
	return &Request{ctx: ctx, values: values}
}

// RequestFromHTTP creates the request context from the http request.
func RequestFromHTTP(req *http.Request) *Request {
	return NewRequest(req.Context(), req.URL.Query())
}

// requestOrDefault gets the 'req' or the empty request if it is nil.
func requestOrDefault(req *Request) *Request {
	if req == nil {
		return NewRequest(context.Background(), nil)
	}
	return req
}

// Context gets the request context.Context.
func (r *Request) Context() context.Context {
	return r.ctx
}

// Query gets the request query values.
func (r *Request) Query() url.Values {
	return r.values
}

// Fieldsets gets the parsed sparse fieldsets of the request.
func (r *Request) Fieldsets() (query.Fieldsets, error) {
	r.fieldsOnce.Do(func() {
		r.fieldsets, r.fieldsErr = query.ParseFieldsets(r.values)
	})
	return r.fieldsets, r.fieldsErr
}
