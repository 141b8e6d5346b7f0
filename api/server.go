// Package api serves the browser front end. Every websocket connection owns
// one session, the canvas page draws the ops the session renders and sends
// clicks and key events back.
package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/battlesnakeio/lightcycles/config"
	"github.com/battlesnakeio/lightcycles/session"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/skip2/go-qrcode"
	log "github.com/sirupsen/logrus"
)

// ErrSessionNotFound is returned when looking up an unknown session.
var ErrSessionNotFound = errors.New("api: session not found")

const (
	timeout = 10 * time.Second
	qrSize  = 256
)

//go:embed static/index.html
var indexHTML []byte

// Server is the web front end.
type Server struct {
	cfg config.Config
	hs  *http.Server

	mu       sync.Mutex
	sessions map[string]entry
}

// entry is a live session and the socket driving it.
type entry struct {
	sess   *session.Session
	client *client
}

// New creates a server listening on addr. Every session it creates uses cfg.
func New(addr string, cfg config.Config) *Server {
	s := &Server{
		cfg:      cfg,
		sessions: map[string]entry{},
	}

	router := httprouter.New()
	router.GET("/", s.index)
	router.GET("/socket", s.socket)
	router.GET("/sessions", s.listSessions)
	router.GET("/sessions/:id", s.sessionStatus)
	router.GET("/healthz", s.healthz)
	router.GET("/qr", s.qr)

	s.hs = &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(router),
		ReadHeaderTimeout: timeout,
	}
	return s
}

// Handler returns the root handler of the server.
func (s *Server) Handler() http.Handler {
	return s.hs.Handler
}

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() error {
	err := s.hs.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "unable to serve")
	}
	return nil
}

// Shutdown stops accepting connections, closes every session and drops its
// socket so the read loop ends right away.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.hs.Shutdown(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.sessions {
		e.sess.Close()
		e.client.close()
		delete(s.sessions, id)
	}
	return err
}

// Session returns the session with the given id.
func (s *Server) Session(id string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e.sess, nil
}

func (s *Server) add(sess *session.Session, c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = entry{sess: sess, client: c}
}

func (s *Server) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Server) index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	sort.Strings(ids)
	writeJSON(w, http.StatusOK, ids)
}

func (s *Server) sessionStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, err := s.Session(ps.ByName("id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sess.Status())
}

// qr renders a QR code pointing at the canvas page so a second device can
// join quickly.
func (s *Server) qr(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	png, err := qrcode.Encode(scheme+"://"+r.Host+"/", qrcode.Medium, qrSize)
	if err != nil {
		log.WithError(err).Warn("unable to encode qr code")
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("unable to write response")
	}
}
