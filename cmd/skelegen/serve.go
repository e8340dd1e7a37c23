package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/yacobolo/skelegen/internal/skelegen"
)

// maxWorkspaceBytes bounds request bodies
const maxWorkspaceBytes = 8 << 20

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve compile and live-preview endpoints for the token editor",
	Long: `Start an HTTP server that compiles posted workspaces and, when started with
--workspace, edits its components through a draft that is only written back
on save.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		config := buildServeConfig()
		logger := log.FromContext(cmd.Context())

		fluid, err := skelegen.ParseFluidStrategy(config.Fluid, "")
		if err != nil {
			return err
		}

		srv := &server{logger: logger, fluid: fluid, raw: !config.Pretty, path: config.Workspace}
		if config.Workspace != "" {
			ws, err := skelegen.LoadWorkspace(config.Workspace)
			if err != nil {
				return err
			}
			srv.setWorkspace(ws)
		}

		httpServer := &http.Server{
			Addr:              config.Addr,
			Handler:           srv.routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		logger.Info("listening", "addr", config.Addr, "workspace", config.Workspace)
		return httpServer.ListenAndServe()
	},
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", "127.0.0.1:7420", "Listen address")
	f.String("workspace", "", "Workspace file whose components can be edited")
	f.String("fluid", "", "Fluid formula: explicit-vw|calc (default: per target)")
	f.Bool("pretty", true, "Pretty-print generated CSS")
}

// server compiles posted workspaces and edits the components of a loaded one
type server struct {
	logger *log.Logger
	fluid  skelegen.FluidStrategy
	raw    bool

	mu    sync.Mutex // guards ws and path writes
	path  string
	ws    skelegen.Workspace
	store *skelegen.ComponentStore
}

func (s *server) setWorkspace(ws skelegen.Workspace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ws = ws
	s.store = skelegen.NewComponentStore(ws.Components)
}

func (s *server) options(target skelegen.Target) skelegen.AssembleOptions {
	fluid := s.fluid
	if fluid == "" {
		fluid = target.DefaultFluid()
	}
	return skelegen.AssembleOptions{Fluid: fluid, Raw: s.raw, Logger: s.logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/compile", s.handleCompile(skelegen.TargetCSS))
	r.Post("/compile/dialect", s.handleCompile(skelegen.TargetDialect))
	r.Post("/components/{id}/preview", s.handlePostedPreview)

	r.Route("/workspace", func(r chi.Router) {
		r.Use(s.requireWorkspace)
		r.Get("/stylesheet", s.handleWorkspaceStylesheet)
		r.Get("/components", s.handleListComponents)
		r.Post("/components/{id}/edit", s.handleEdit)
		r.Get("/draft", s.handleGetDraft)
		r.Put("/draft", s.handlePutDraft)
		r.Get("/draft/preview", s.handleDraftPreview)
		r.Post("/draft/save", s.handleSave)
		r.Delete("/draft", s.handleDiscard)
	})

	return r
}

func (s *server) requireWorkspace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.store == nil {
			httpError(w, http.StatusNotFound, errors.New("no workspace loaded (start with --workspace)"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) handleCompile(target skelegen.Target) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := decodeWorkspace(r)
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}
		writeCSS(w, skelegen.CompileTarget(ws, target, s.options(target)).CSS)
	}
}

func (s *server) handlePostedPreview(w http.ResponseWriter, r *http.Request) {
	ws, err := decodeWorkspace(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}
	id := chi.URLParam(r, "id")
	component, ok := ws.FindComponent(id)
	if !ok {
		httpError(w, http.StatusNotFound, fmt.Errorf("component %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, skelegen.ScopeComponent(ws, component, s.options(skelegen.TargetCSS)))
}

// snapshot returns the loaded workspace with the committed components
func (s *server) snapshot() skelegen.Workspace {
	s.mu.Lock()
	ws := s.ws
	s.mu.Unlock()
	ws.Components = s.store.Components()
	return ws
}

func (s *server) handleWorkspaceStylesheet(w http.ResponseWriter, _ *http.Request) {
	writeCSS(w, skelegen.Assemble(s.snapshot(), s.options(skelegen.TargetCSS)))
}

func (s *server) handleListComponents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Components())
}

func (s *server) handleEdit(w http.ResponseWriter, r *http.Request) {
	draft, err := s.store.Edit(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (s *server) handleGetDraft(w http.ResponseWriter, _ *http.Request) {
	draft, ok := s.store.Draft()
	if !ok {
		httpError(w, http.StatusConflict, skelegen.ErrNoDraft)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// handlePutDraft replaces the draft's content; the id is kept so the draft
// still saves over the component it was opened from
func (s *server) handlePutDraft(w http.ResponseWriter, r *http.Request) {
	var next skelegen.Component
	if err := json.NewDecoder(io.LimitReader(r.Body, maxWorkspaceBytes)).Decode(&next); err != nil {
		httpError(w, http.StatusBadRequest, fmt.Errorf("decode component: %w", err))
		return
	}

	err := s.store.UpdateDraft(func(c *skelegen.Component) {
		id := c.ID
		*c = next.Clone()
		c.ID = id
	})
	if err != nil {
		httpError(w, http.StatusConflict, err)
		return
	}
	draft, _ := s.store.Draft()
	writeJSON(w, http.StatusOK, draft)
}

func (s *server) handleDraftPreview(w http.ResponseWriter, _ *http.Request) {
	draft, ok := s.store.Draft()
	if !ok {
		httpError(w, http.StatusConflict, skelegen.ErrNoDraft)
		return
	}
	writeJSON(w, http.StatusOK, skelegen.ScopeComponent(s.snapshot(), draft, s.options(skelegen.TargetCSS)))
}

// handleSave commits the draft and writes the workspace back to disk
func (s *server) handleSave(w http.ResponseWriter, _ *http.Request) {
	saved, err := s.store.Save()
	if err != nil {
		httpError(w, http.StatusConflict, err)
		return
	}

	if s.path != "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		ws := s.ws
		ws.Components = s.store.Components()
		if err := skelegen.SaveWorkspace(s.path, ws); err != nil {
			s.logger.Error("saving workspace failed", "path", s.path, "err", err)
			httpError(w, http.StatusInternalServerError, err)
			return
		}
		s.logger.Debug("workspace saved", "path", s.path, "component", saved.ID)
	}

	writeJSON(w, http.StatusOK, saved)
}

func (s *server) handleDiscard(w http.ResponseWriter, _ *http.Request) {
	s.store.Discard()
	w.WriteHeader(http.StatusNoContent)
}

func decodeWorkspace(r *http.Request) (skelegen.Workspace, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxWorkspaceBytes))
	if err != nil {
		return skelegen.Workspace{}, fmt.Errorf("read body: %w", err)
	}
	return skelegen.DecodeWorkspace(data, "json")
}

func writeCSS(w http.ResponseWriter, css string) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = io.WriteString(w, css)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
