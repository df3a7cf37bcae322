// Package stubserver is an in-memory stand-in for the promo admin
// backend. Integration tests and local console development run against
// it; it mimics the real API's observable quirks, including the mixed
// list response shapes and the bearer-token auth boundary.
package stubserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Resources served by the stub, with the wrapper key each list response
// uses. An empty key means the list is returned as a bare array, which
// is exactly the inconsistency the real backend exhibits.
var listWrappers = map[string]string{
	"ads":          "",
	"tagline":      "",
	"testimonials": "data",
	"blogs":        "blogs",
	"users":        "",
	"freebies":     "data",
}

// Credentials is the single operator account the stub accepts.
type Credentials struct {
	Email    string
	Password string
}

// DefaultCredentials matches the seeded development account.
var DefaultCredentials = Credentials{
	Email:    "admin@example.com",
	Password: "admin123",
}

// record is one stored item. Items keep insertion order per resource.
type record map[string]any

// Server is the in-memory backend.
type Server struct {
	router      chi.Router
	logger      *zap.Logger
	secret      []byte
	credentials Credentials
	tokenTTL    time.Duration

	mu          sync.Mutex
	collections map[string][]record
}

// Option tweaks server construction.
type Option func(*Server)

// WithCredentials overrides the accepted login account.
func WithCredentials(c Credentials) Option {
	return func(s *Server) { s.credentials = c }
}

// WithTokenTTL overrides the lifetime of minted tokens. Tests use a
// negative TTL to mint already-expired tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) { s.tokenTTL = ttl }
}

// New creates a stub server with empty collections.
func New(logger *zap.Logger, opts ...Option) *Server {
	s := &Server{
		logger:      logger,
		secret:      []byte("stub-signing-secret"),
		credentials: DefaultCredentials,
		tokenTTL:    time.Hour,
		collections: make(map[string][]record),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))

	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		for resource := range listWrappers {
			resource := resource
			r.Route("/"+resource, func(r chi.Router) {
				r.Get("/", s.handleList(resource))
				r.Post("/", s.handleCreate(resource))
				r.Put("/{id}", s.handleUpdate(resource))
				r.Put("/{id}/status", s.handleStatus(resource))
				r.Delete("/{id}", s.handleDelete(resource))
			})
		}
	})

	s.router = r
	return s
}

// ServeHTTP makes the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Seed inserts an item directly, bypassing HTTP. Returns the assigned id.
func (s *Server) Seed(resource string, fields map[string]any) string {
	rec := make(record, len(fields)+2)
	for k, v := range fields {
		rec[k] = v
	}
	id := uuid.New().String()
	rec["_id"] = id
	rec["createdAt"] = time.Now().UTC().Format(time.RFC3339)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[resource] = append(s.collections[resource], rec)
	return id
}

// Items returns a copy of a resource's stored records in insertion order.
func (s *Server) Items(resource string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.collections[resource]))
	for _, rec := range s.collections[resource] {
		clone := make(map[string]any, len(rec))
		for k, v := range rec {
			clone[k] = v
		}
		out = append(out, clone)
	}
	return out
}

// MintToken issues a signed token the same way login does. Tests use it
// to fabricate sessions without the login round trip.
func (s *Server) MintToken(ttl time.Duration) string {
	claims := jwt.MapClaims{
		"sub": s.credentials.Email,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		panic(fmt.Sprintf("stubserver: signing token: %v", err))
	}
	return token
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Email != s.credentials.Email || body.Password != s.credentials.Password {
		s.respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"token": s.MintToken(s.tokenTTL),
		"user": map[string]any{
			"_id":   "operator-1",
			"name":  "Admin",
			"email": s.credentials.Email,
		},
	})
}

func (s *Server) handleList(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := s.Items(resource)
		if items == nil {
			items = []map[string]any{}
		}

		if key := listWrappers[resource]; key != "" {
			s.respondJSON(w, http.StatusOK, map[string]any{key: items})
			return
		}
		s.respondJSON(w, http.StatusOK, items)
	}
}

func (s *Server) handleCreate(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := decodeFields(r)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if len(fields) == 0 {
			s.respondError(w, http.StatusBadRequest, "empty payload")
			return
		}

		id := s.Seed(resource, fields)
		s.mu.Lock()
		rec := s.find(resource, id)
		s.mu.Unlock()
		s.respondJSON(w, http.StatusCreated, rec)
	}
}

func (s *Server) handleUpdate(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := decodeFields(r)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		id := chi.URLParam(r, "id")
		s.mu.Lock()
		rec := s.find(resource, id)
		if rec != nil {
			for k, v := range fields {
				if k == "_id" || k == "createdAt" {
					continue
				}
				rec[k] = v
			}
		}
		s.mu.Unlock()

		if rec == nil {
			s.respondError(w, http.StatusNotFound, resource+" entry not found")
			return
		}
		s.respondJSON(w, http.StatusOK, map[string]any{"data": rec})
	}
}

// handleStatus flips or sets the item's boolean flag. With a body the
// flag is set explicitly ({"isActive": true}); without one it toggles,
// the way the real testimonial and blog endpoints behave.
func (s *Server) handleStatus(resource string) http.HandlerFunc {
	flagKey := "isActive"
	if resource == "testimonials" || resource == "blogs" {
		flagKey = "status"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			IsActive *bool `json:"isActive"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		id := chi.URLParam(r, "id")
		s.mu.Lock()
		rec := s.find(resource, id)
		if rec != nil {
			if body.IsActive != nil {
				rec[flagKey] = *body.IsActive
			} else {
				current, _ := rec[flagKey].(bool)
				rec[flagKey] = !current
			}
		}
		s.mu.Unlock()

		if rec == nil {
			s.respondError(w, http.StatusNotFound, resource+" entry not found")
			return
		}
		s.respondJSON(w, http.StatusOK, map[string]any{"data": rec})
	}
}

func (s *Server) handleDelete(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		s.mu.Lock()
		items := s.collections[resource]
		deleted := false
		for i, rec := range items {
			if rec["_id"] == id {
				s.collections[resource] = append(items[:i], items[i+1:]...)
				deleted = true
				break
			}
		}
		s.mu.Unlock()

		if !deleted {
			s.respondError(w, http.StatusNotFound, resource+" entry not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// find returns the live record with the given id. Callers hold s.mu.
func (s *Server) find(resource, id string) record {
	for _, rec := range s.collections[resource] {
		if rec["_id"] == id {
			return rec
		}
	}
	return nil
}

// decodeFields reads a create/update payload from either a JSON body or
// a multipart form. Multipart file parts are stored by filename, the way
// the real backend exposes an uploaded image as a URL-ish string.
func decodeFields(r *http.Request) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, fmt.Errorf("invalid multipart body")
		}
		fields := make(map[string]any)
		for name, values := range r.MultipartForm.Value {
			if len(values) > 0 {
				fields[name] = values[0]
			}
		}
		for name, files := range r.MultipartForm.File {
			if len(files) > 0 {
				fields[mapFileField(name)] = "/uploads/" + files[0].Filename
			}
		}
		return fields, nil
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return nil, fmt.Errorf("invalid request body")
	}
	return fields, nil
}

// mapFileField maps an upload part name to the stored field name.
func mapFileField(name string) string {
	if name == "image" {
		return "imageUrl"
	}
	return name
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"message":%q}`, message)
}
