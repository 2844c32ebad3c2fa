package service

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/docnav/pkg/manifest"
	"github.com/vango-dev/docnav/pkg/nav"
)

// Options configures the query service.
type Options struct {
	// Logger receives request and rebuild logs. Default: slog.Default().
	Logger *slog.Logger

	// Metrics records query and rebuild metrics. Nil disables recording.
	Metrics *Metrics

	// Content resolves page bodies for /api/page. Nil disables the endpoint.
	Content ContentResolver

	// TracerName overrides the OpenTelemetry tracer name (default: "docnav").
	TracerName string

	// MetricsHandler serves GET /metrics. Default: promhttp.Handler(),
	// which exposes the default Prometheus registry.
	MetricsHandler http.Handler
}

// Server answers navigation queries against the holder's current index.
type Server struct {
	holder  *Holder
	hub     *ReloadHub
	metrics *Metrics
	content ContentResolver
	tracer  trace.Tracer
	logger  *slog.Logger

	metricsHandler http.Handler
}

// New creates a query server over holder.
func New(holder *Holder, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	return &Server{
		holder:         holder,
		hub:            NewReloadHub(),
		metrics:        opts.Metrics,
		content:        opts.Content,
		tracer:         resolveTracer(opts.TracerName),
		logger:         logger,
		metricsHandler: metricsHandler,
	}
}

// Hub returns the reload hub for rebuild notifications.
func (s *Server) Hub() *ReloadHub {
	return s.hub
}

// Handler returns the HTTP handler for the query service.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api/nav", func(r chi.Router) {
		r.Get("/lookup", s.handleLookup)
		r.Get("/flatten", s.handleFlatten)
		r.Get("/sidebar", s.handleSidebar)
		r.Get("/breadcrumb", s.handleBreadcrumb)
		r.Get("/neighbors", s.handleNeighbors)
	})
	r.Get("/api/page", s.handlePage)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", s.metricsHandler)
	r.Get("/_docnav/reload", s.hub.HandleWebSocket)

	return r
}

// Rebuild loads the manifest from src, builds a fresh index, and installs
// it. On any failure the previous index stays in place and connected
// frontends are told about the error.
func (s *Server) Rebuild(ctx context.Context, src manifest.Source) error {
	start := time.Now()

	entries, err := manifest.Load(ctx, src)
	if err != nil {
		return s.rebuildFailed(src, err)
	}

	tree, err := nav.Build(entries)
	if err != nil {
		return s.rebuildFailed(src, err)
	}

	ix := nav.NewIndex(tree)
	s.holder.Swap(ix)

	stable := len(ix.Flatten(nav.ChannelStable))
	canary := len(ix.Flatten(nav.ChannelCanary))
	s.metrics.recordRebuild("ok")
	s.metrics.recordIndexSize(stable, canary)

	// Lift any error broadcast by an earlier failed rebuild before
	// announcing the fresh index.
	s.hub.ClearError()
	s.hub.NotifyNav()

	s.logger.Info("index rebuilt",
		"source", src.Describe(),
		"stable_pages", stable,
		"canary_pages", canary,
		"elapsed", time.Since(start))
	return nil
}

func (s *Server) rebuildFailed(src manifest.Source, err error) error {
	s.metrics.recordRebuild("error")
	s.hub.NotifyError(err.Error())
	s.logger.Error("index rebuild failed, keeping previous index",
		"source", src.Describe(),
		"error", err)
	return err
}

// nodeJSON is the wire shape of one navigation node. CanaryOnly is the
// effective channel flag (own or inherited), not the manifest's authored
// canary field, so it carries a distinct name on the wire.
type nodeJSON struct {
	Title         string `json:"title,omitempty"`
	Path          string `json:"path,omitempty"`
	SectionHeader string `json:"sectionHeader,omitempty"`
	CanaryOnly    bool   `json:"canaryOnly,omitempty"`
}

func encodeNode(n *nav.Node) *nodeJSON {
	if n == nil {
		return nil
	}
	if n.IsSectionHeader() {
		return &nodeJSON{SectionHeader: n.SectionHeaderText(), CanaryOnly: n.CanaryOnly()}
	}
	return &nodeJSON{Title: n.Title(), Path: n.Path(), CanaryOnly: n.CanaryOnly()}
}

func encodeNodes(nodes []*nav.Node) []*nodeJSON {
	out := make([]*nodeJSON, len(nodes))
	for i, n := range nodes {
		out[i] = encodeNode(n)
	}
	return out
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing path parameter")
		return
	}

	ctx, span := s.startSpan(r.Context(), "lookup", attribute.String("nav.path", path))
	start := time.Now()

	node, err := s.holder.Load().Lookup(path)
	endSpan(span, err)
	s.observe(ctx, "lookup", start, err)

	if err != nil {
		writeError(w, http.StatusNotFound, "path not found")
		return
	}
	writeJSON(w, http.StatusOK, encodeNode(node))
}

func (s *Server) handleFlatten(w http.ResponseWriter, r *http.Request) {
	ch, err := nav.ParseChannel(r.URL.Query().Get("channel"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, span := s.startSpan(r.Context(), "flatten", attribute.String("nav.channel", string(ch)))
	start := time.Now()

	pages := s.holder.Load().Flatten(ch)
	endSpan(span, nil)
	s.observe(ctx, "flatten", start, nil)

	writeJSON(w, http.StatusOK, map[string]any{
		"channel": ch,
		"pages":   encodeNodes(pages),
	})
}

func (s *Server) handleSidebar(w http.ResponseWriter, r *http.Request) {
	ch, err := nav.ParseChannel(r.URL.Query().Get("channel"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, span := s.startSpan(r.Context(), "sidebar", attribute.String("nav.channel", string(ch)))
	start := time.Now()

	items := s.holder.Load().Sidebar(ch)
	endSpan(span, nil)
	s.observe(ctx, "sidebar", start, nil)

	writeJSON(w, http.StatusOK, map[string]any{
		"channel": ch,
		"items":   encodeNodes(items),
	})
}

func (s *Server) handleBreadcrumb(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing path parameter")
		return
	}

	ctx, span := s.startSpan(r.Context(), "breadcrumb", attribute.String("nav.path", path))
	start := time.Now()

	trail, err := s.holder.Load().Breadcrumb(path)
	endSpan(span, err)
	s.observe(ctx, "breadcrumb", start, err)

	if err != nil {
		writeError(w, http.StatusNotFound, "path not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"path":  path,
		"trail": encodeNodes(trail),
	})
}

func (s *Server) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing path parameter")
		return
	}
	ch, err := nav.ParseChannel(r.URL.Query().Get("channel"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, span := s.startSpan(r.Context(), "neighbors",
		attribute.String("nav.path", path),
		attribute.String("nav.channel", string(ch)))
	start := time.Now()

	prev, next, err := s.holder.Load().Neighbors(path, ch)
	endSpan(span, err)
	s.observe(ctx, "neighbors", start, err)

	if err != nil {
		writeError(w, http.StatusNotFound, "path not found on channel")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"prev": encodeNode(prev),
		"next": encodeNode(next),
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if s.content == nil {
		writeError(w, http.StatusNotFound, "content serving not configured")
		return
	}
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing path parameter")
		return
	}

	ctx, span := s.startSpan(r.Context(), "page", attribute.String("nav.path", path))
	start := time.Now()

	node, err := s.holder.Load().Lookup(path)
	if err != nil {
		endSpan(span, err)
		s.observe(ctx, "page", start, err)
		writeError(w, http.StatusNotFound, "path not found")
		return
	}

	body, err := s.content.Resolve(ctx, node.Path())
	endSpan(span, err)
	s.observe(ctx, "page", start, err)

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeError(w, http.StatusNotFound, "no content authored for path")
			return
		}
		s.logger.Error("content resolve failed", "path", node.Path(), "error", err)
		writeError(w, http.StatusInternalServerError, "content unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ix := s.holder.Load()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"stable_pages": len(ix.Flatten(nav.ChannelStable)),
		"canary_pages": len(ix.Flatten(nav.ChannelCanary)),
	})
}

// observe records one completed query in the metrics.
func (s *Server) observe(_ context.Context, operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		if errors.Is(err, nav.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			status = "not_found"
		} else {
			status = "error"
		}
	}
	s.metrics.recordQuery(operation, status, time.Since(start).Seconds())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
