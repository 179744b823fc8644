package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"kleo/generator"
	"kleo/profile"
	"kleo/styledtext"
)

// Server exposes the studio over HTTP. The browser UI is an external
// collaborator: it renders whatever state these endpoints return and
// never sees generation-layer failures as 5xx responses.
type Server struct {
	orch       *generator.Orchestrator
	classifier generator.Classifier
	profiles   profile.Store
	store      *sessionStore
	log        *logrus.Logger
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*generator.Session
}

func newStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*generator.Session)}
}

func (s *sessionStore) set(id string, sess *generator.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *sessionStore) get(id string) (*generator.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func New(orch *generator.Orchestrator, profiles profile.Store, log *logrus.Logger) (*Server, error) {
	if orch == nil {
		return nil, errors.New("orchestrator required")
	}
	if profiles == nil {
		return nil, errors.New("profile store required")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{
		orch:       orch,
		classifier: generator.KeywordClassifier{},
		profiles:   profiles,
		store:      newStore(),
		log:        log,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sessions", s.handleSessionCreate)
	mux.HandleFunc("/api/sessions/", s.handleSessionByID)
	mux.HandleFunc("/api/voices", s.handleVoices)
	mux.HandleFunc("/api/profile", s.handleProfile)
	return s.logMiddleware(mux)
}

// --- Handlers ---

type sessionResp struct {
	SessionID string                     `json:"session_id"`
	Document  generator.PostDocument     `json:"document"`
	Messages  []generator.ChatMessage    `json:"messages"`
	Hooks     []generator.HookSuggestion `json:"hooks"`
	Voice     generator.VoiceProfile     `json:"voice"`
}

type chatReq struct {
	Message string `json:"message"`
}

type hooksReq struct {
	Topic string `json:"topic"`
}

type applyHookReq struct {
	Text string `json:"text"`
}

type voiceReq struct {
	ID string `json:"id"`
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := uuid.NewString()
	sess := generator.NewSession(id, s.orch, s.classifier, s.log)
	s.store.set(id, sess)
	s.writeSession(w, sess)
}

func (s *Server) handleSessionByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	sess, ok := s.store.get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	switch action {
	case "":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.writeSession(w, sess)
	case "chat":
		s.handleChat(w, r, sess)
	case "carousel":
		s.handleCarousel(w, r, sess)
	case "hooks":
		s.handleHooks(w, r, sess)
	case "hooks/apply":
		s.handleApplyHook(w, r, sess)
	case "score":
		s.handleScore(w, r, sess)
	case "voice":
		s.handleVoiceSelect(w, r, sess)
	case "export":
		s.handleExport(w, r, sess)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request, sess *generator.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req chatReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()
	sess.Chat(ctx, req.Message, s.brand(ctx))
	s.writeSession(w, sess)
}

func (s *Server) handleCarousel(w http.ResponseWriter, r *http.Request, sess *generator.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	// Deck text plus one image call per slide; give the fan-out room.
	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()
	sess.BuildCarousel(ctx)
	s.writeSession(w, sess)
}

func (s *Server) handleHooks(w http.ResponseWriter, r *http.Request, sess *generator.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req hooksReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()
	sess.RefreshHooks(ctx, req.Topic)
	s.writeSession(w, sess)
}

func (s *Server) handleApplyHook(w http.ResponseWriter, r *http.Request, sess *generator.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req applyHookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess.ApplyHook(req.Text)
	s.writeSession(w, sess)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request, sess *generator.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()
	sess.RefreshScore(ctx)
	s.writeSession(w, sess)
}

func (s *Server) handleVoiceSelect(w http.ResponseWriter, r *http.Request, sess *generator.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req voiceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := sess.SelectVoice(req.ID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.writeSession(w, sess)
}

// handleExport returns the draft as plain text. The default is the
// verbatim draft (what the copy button puts on the clipboard);
// ?format=feed runs it through the styled-text formatter first.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, sess *generator.Session) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	text := sess.ExportText()
	if r.URL.Query().Get("format") == "feed" {
		formatted, err := styledtext.FormatForFeed(text)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		text = formatted
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

func (s *Server) handleVoices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, generator.Voices)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		p, err := s.profiles.Load(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, p)
	case http.MethodPut:
		var p generator.BrandProfile
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.profiles.Save(r.Context(), p); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, p)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// --- Helpers ---

// brand loads the persisted profile; generation degrades to the seeded
// defaults rather than failing the user action.
func (s *Server) brand(ctx context.Context) generator.BrandProfile {
	p, err := s.profiles.Load(ctx)
	if err != nil {
		s.log.WithError(err).Warn("brand profile load failed, using defaults")
		return profile.Default()
	}
	return p
}

func (s *Server) writeSession(w http.ResponseWriter, sess *generator.Session) {
	doc, msgs, hooks, voice := sess.Snapshot()
	writeJSON(w, sessionResp{
		SessionID: sess.ID,
		Document:  doc,
		Messages:  msgs,
		Hooks:     hooks,
		Voice:     voice,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"elapsed": time.Since(start).Round(time.Millisecond).String(),
		}).Info("request")
	})
}
