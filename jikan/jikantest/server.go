// Package jikantest provides an in-process fake of the Jikan API for tests.
package jikantest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/anisan-cli/jikancsv/jikan"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

// json matches the codec the client decodes with.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Fixture is the data served by a Server.
type Fixture struct {
	// Anime is the full search result, paginated by the server honoring page and limit.
	Anime      []jikan.Anime
	Characters map[int][]jikan.CharacterRole
	Details    map[int]jikan.Character
	Genres     []jikan.Genre
}

// Server is a fake Jikan API. Unknown ids answer 404.
type Server struct {
	*httptest.Server

	fixture  Fixture
	mu       sync.Mutex
	requests []*http.Request
	failures map[string][]int
}

// NewServer starts a server serving the fixture. Callers must Close it.
func NewServer(f Fixture) *Server {
	s := &Server{fixture: f, failures: make(map[string][]int)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /anime", s.searchAnime)
	mux.HandleFunc("GET /anime/{id}/characters", s.animeCharacters)
	mux.HandleFunc("GET /characters/{id}", s.character)
	mux.HandleFunc("GET /genres/anime", s.genres)

	s.Server = httptest.NewServer(s.intercept(mux))
	return s
}

// FailNext makes the next requests to path answer the given status codes, in order.
func (s *Server) FailNext(path string, statuses ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = append(s.failures[path], statuses...)
}

// Requests returns how many requests were made to path.
func (s *Server) Requests(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.CountBy(s.requests, func(r *http.Request) bool {
		return r.URL.Path == path
	})
}

// Queries returns the query strings sent to path, in request order.
func (s *Server) Queries(path string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.FilterMap(s.requests, func(r *http.Request, _ int) (string, bool) {
		return r.URL.RawQuery, r.URL.Path == path
	})
}

func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Clone(r.Context()))
		var status int
		if queued := s.failures[r.URL.Path]; len(queued) > 0 {
			status, s.failures[r.URL.Path] = queued[0], queued[1:]
		}
		s.mu.Unlock()

		if status != 0 {
			http.Error(w, fmt.Sprintf(`{"status":%d,"type":"fake","message":"injected"}`, status), status)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) searchAnime(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 25)

	start := (page - 1) * limit
	end := start + limit
	total := len(s.fixture.Anime)

	var data []jikan.Anime
	if start < total {
		data = s.fixture.Anime[start:min(end, total)]
	}

	resp := jikan.AnimeSearchResponse{Data: lo.Ternary(data == nil, []jikan.Anime{}, data)}
	resp.Pagination.CurrentPage = page
	resp.Pagination.HasNextPage = end < total
	resp.Pagination.LastVisiblePage = max((total+limit-1)/limit, 1)
	resp.Pagination.Items.Count = len(data)
	resp.Pagination.Items.Total = total
	resp.Pagination.Items.PerPage = limit

	writeJSON(w, resp)
}

func (s *Server) animeCharacters(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	roles, ok := s.fixture.Characters[id]
	if !ok {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, jikan.CharactersResponse{Data: roles})
}

func (s *Server) character(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	detail, ok := s.fixture.Details[id]
	if !ok {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, jikan.CharacterResponse{Data: detail})
}

func (s *Server) genres(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, jikan.GenresResponse{Data: s.fixture.Genres})
}

func queryInt(r *http.Request, name string, fallback int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
