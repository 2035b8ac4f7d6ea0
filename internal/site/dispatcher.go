package site

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/2beens/plainsite/internal/page"
	"github.com/2beens/plainsite/internal/telemetry/metrics"
	"github.com/2beens/plainsite/internal/telemetry/tracing"
	"github.com/2beens/plainsite/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const NotFoundBody = "Page not found"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=site_test

type staticProvider interface {
	Exists(relPath string) bool
	Stream(relPath string) ([]byte, error)
}

type layoutRenderer interface {
	Wrap(ctx context.Context, body string, meta page.Meta, r *http.Request) (string, error)
}

// Route binds one allow-listed path to its page and the methods it answers.
type Route struct {
	Page    page.Page
	Methods []string
}

// Dispatcher maps requests onto the explicit route allow-list; anything else is a 404.
type Dispatcher struct {
	routes  map[string]Route
	static  staticProvider
	layout  layoutRenderer
	metrics *metrics.Manager
}

func NewDispatcher(
	routes map[string]Route,
	static staticProvider,
	layout layoutRenderer,
	metrics *metrics.Manager,
) *Dispatcher {
	return &Dispatcher{
		routes:  routes,
		static:  static,
		layout:  layout,
		metrics: metrics,
	}
}

// Router builds the request router. Only the registered routes, with their
// methods, and GET/HEAD on the public prefix are ever dispatched. Anything
// else, non-canonical paths included, is not found.
func (d *Dispatcher) Router() *mux.Router {
	r := mux.NewRouter()
	// paths are matched as sent, "//profile" is not "/profile"
	r.SkipClean(true)

	r.PathPrefix(PublicPrefix).
		Methods(http.MethodGet, http.MethodHead).
		HandlerFunc(d.handleStatic).
		Name("static")

	for path, route := range d.routes {
		r.Handle(path, d.pageHandler(path, route.Page)).
			Methods(route.Methods...).
			Name(path)
	}

	r.NotFoundHandler = http.HandlerFunc(d.notFound)
	// unsupported methods on a known path are still just "not found"
	r.MethodNotAllowedHandler = http.HandlerFunc(d.notFound)

	return r
}

func (d *Dispatcher) handleStatic(w http.ResponseWriter, r *http.Request) {
	relPath := strings.TrimPrefix(r.URL.Path, PublicPrefix)
	if !d.static.Exists(relPath) {
		log.Tracef("static file not found: %s", r.URL.Path)
		d.notFound(w, r)
		return
	}

	content, err := d.static.Stream(relPath)
	if err != nil {
		log.Errorf("stream static file %s: %s", r.URL.Path, err)
		d.notFound(w, r)
		return
	}

	pkg.WriteResponseBytes(w, ContentType(relPath), content, http.StatusOK)
}

func (d *Dispatcher) pageHandler(route string, p page.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracing.GlobalTracer.Start(r.Context(), "dispatcher.page")
		defer span.End()
		span.SetAttributes(
			attribute.String("route", route),
			attribute.String("method", r.Method),
		)

		pc := page.NewContext(r)
		html, err := d.render(ctx, p, pc)
		if err != nil {
			log.WithField("trace_id", tracing.TraceID(ctx)).
				Errorf("dispatch %s %s: %s", r.Method, route, err)
			span.SetStatus(codes.Error, "render-failed")
			span.RecordError(err)
			d.notFound(w, r)
			return
		}

		// headers set by the page (e.g. session cookies) only go out on success
		pc.Response.ApplyHeaders(w)
		pkg.WriteResponse(w, pkg.ContentType.HTML, html, pc.Response.Status())
		span.SetStatus(codes.Ok, "ok")
	}
}

// render invokes the page and wraps its body into the layout.
// A panicking page is turned into an error.
func (d *Dispatcher) render(ctx context.Context, p page.Page, pc *page.Context) (html string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("page panic serving %s: %v\n%s", pc.Request.URL.Path, rec, debug.Stack())
			if d.metrics != nil {
				d.metrics.CounterHandleRequestPanic.Inc()
			}
			err = fmt.Errorf("page panic: %v", rec)
		}
	}()

	body, err := p.Render(ctx, pc)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	// the layout sees the request cookie, so a page that just logged someone
	// in or out shows the updated navigation only from the next request on
	html, err = d.layout.Wrap(ctx, body, p.Meta(), pc.Request)
	if err != nil {
		return "", fmt.Errorf("wrap: %w", err)
	}

	return html, nil
}

func (d *Dispatcher) notFound(w http.ResponseWriter, r *http.Request) {
	log.Tracef("not found: %s %s", r.Method, r.URL.Path)
	if d.metrics != nil {
		d.metrics.CounterNotFound.Inc()
	}
	pkg.WriteResponse(w, pkg.ContentType.Text, NotFoundBody, http.StatusNotFound)
}
