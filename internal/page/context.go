package page

import (
	"net/http"
	"net/url"
)

// Query holds request parameters; on duplicate keys the last value wins.
type Query map[string]string

func NewQuery(values url.Values) Query {
	q := make(Query, len(values))
	for k, v := range values {
		if len(v) == 0 {
			continue
		}
		q[k] = v[len(v)-1]
	}
	return q
}

func (q Query) Get(key string) string {
	return q[key]
}

// FormParams returns the url-encoded POST body params.
// A missing or malformed body yields empty params, never an error.
func FormParams(r *http.Request) Query {
	if r == nil || r.Body == nil {
		return Query{}
	}
	if err := r.ParseForm(); err != nil {
		return Query{}
	}
	return NewQuery(r.PostForm)
}

// Response is the request-scoped side channel through which a page sets
// response headers (e.g. cookies) and the status code. The dispatcher applies
// it to the real response writer only after the page rendered successfully.
type Response struct {
	header http.Header
	status int
}

func NewResponse() *Response {
	return &Response{
		header: make(http.Header),
		status: http.StatusOK,
	}
}

func (r *Response) Header() http.Header {
	return r.header
}

func (r *Response) SetCookie(cookie *http.Cookie) {
	if v := cookie.String(); v != "" {
		r.header.Add("Set-Cookie", v)
	}
}

func (r *Response) Status() int {
	return r.status
}

func (r *Response) SetStatus(statusCode int) {
	r.status = statusCode
}

// ApplyHeaders copies the collected headers onto w; must be called before w.WriteHeader.
func (r *Response) ApplyHeaders(w http.ResponseWriter) {
	for k, values := range r.header {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}
}

// Context is everything a page gets to know about the single request it renders.
type Context struct {
	Request  *http.Request
	Query    Query
	Response *Response
}

func NewContext(r *http.Request) *Context {
	return &Context{
		Request:  r,
		Query:    NewQuery(r.URL.Query()),
		Response: NewResponse(),
	}
}

func (pc *Context) IsPost() bool {
	return pc.Request.Method == http.MethodPost
}
