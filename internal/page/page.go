package page

import (
	"context"
)

// Meta is static per-route metadata, read once per response by the layout.
type Meta struct {
	Title string
}

// Page produces the HTML body for one route.
// Implementations are immutable after construction and safe for concurrent use.
// Render may set cookies or headers on pc.Response; they are only sent if Render succeeds.
type Page interface {
	Meta() Meta
	Render(ctx context.Context, pc *Context) (string, error)
}
