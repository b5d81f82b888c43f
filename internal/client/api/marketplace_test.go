package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/shiftboard/internal/client/models"
)

// marketplace is an in-memory stand-in for the REST backend.
type marketplace struct {
	mu       sync.Mutex
	users    map[string]*mpUser
	sessions map[string]*mpUser
	postings []*models.JobPosting
	pageSize int

	// lastQuery is the raw query of the last listing request.
	lastQuery string
}

type mpUser struct {
	id       string
	username string
	password string
	business bool
}

func newMarketplace(t *testing.T) (*marketplace, *httptest.Server) {
	t.Helper()

	m := &marketplace{
		users:    map[string]*mpUser{},
		sessions: map[string]*mpUser{},
		pageSize: 10,
	}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", m.register)
		r.Post("/auth/login", m.login)

		r.Get("/jobs/", m.listPostings)
		r.Post("/jobs/create", m.createPosting)
		r.Get("/jobs/applications/mine", m.mine)
		r.Post("/jobs/{shiftId}/apply/", m.apply)
		r.Post("/jobs/{shiftId}/applications/{workerId}/accept", m.accept)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return m, srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (m *marketplace) caller(r *http.Request) *mpUser {
	tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[tok]
}

func (m *marketplace) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad body"})
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[req.Username]; ok {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "username taken"})
		return
	}
	m.users[req.Username] = &mpUser{
		id:       uuid.NewString(),
		username: req.Username,
		password: req.Password,
		business: req.Business,
	}
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte("created"))
}

func (m *marketplace) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad body"})
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[creds.Username]
	if !ok || u.password != creds.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
		return
	}
	tok := uuid.NewString()
	m.sessions[tok] = u
	writeJSON(w, http.StatusOK, models.LoginResponse{Token: tok})
}

func (m *marketplace) listPostings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastQuery = r.URL.RawQuery

	out := []models.JobPosting{}
	for _, p := range m.postings {
		if jid := q.Get("jid"); jid != "" && p.ID != jid {
			continue
		}
		if bid := q.Get("bid"); bid != "" && p.BusinessID != bid {
			continue
		}
		out = append(out, *p)
	}

	from := page * m.pageSize
	if from >= len(out) {
		out = []models.JobPosting{}
	} else {
		out = out[from:min(from+m.pageSize, len(out))]
	}
	writeJSON(w, http.StatusOK, out)
}

func (m *marketplace) createPosting(w http.ResponseWriter, r *http.Request) {
	u := m.caller(r)
	if u == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}
	if !u.business {
		writeJSON(w, http.StatusForbidden, map[string]string{"message": "businesses only"})
		return
	}

	var req models.CreatePostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad body"})
		return
	}

	p := &models.JobPosting{
		ID:              uuid.NewString(),
		BusinessID:      u.id,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		JobRequirements: req.JobRequirements,
		Tags:            req.Tags,
	}
	for _, s := range req.Shifts {
		available := true
		p.Shifts = append(p.Shifts, models.Shift{
			ID:          uuid.NewString(),
			Date:        s.Date,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			HourlyRate:  s.HourlyRate,
			FixedAmount: s.FixedAmount,
			Available:   &available,
		})
	}

	m.mu.Lock()
	m.postings = append(m.postings, p)
	m.mu.Unlock()

	writeJSON(w, http.StatusCreated, p)
}

// findShift must be called with m.mu held.
func (m *marketplace) findShift(id string) (*models.JobPosting, *models.Shift) {
	for _, p := range m.postings {
		for i := range p.Shifts {
			if p.Shifts[i].ID == id {
				return p, &p.Shifts[i]
			}
		}
	}
	return nil, nil
}

func (m *marketplace) apply(w http.ResponseWriter, r *http.Request) {
	u := m.caller(r)
	if u == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	var req models.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad body"})
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_, s := m.findShift(chi.URLParam(r, "shiftId"))
	if s == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}
	for _, a := range s.JobApplications {
		if a.WorkerID == u.id {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "already applied"})
			return
		}
	}
	s.JobApplications = append(s.JobApplications, models.Application{WorkerID: u.id, CoverMessage: req.CoverMessage})
	w.WriteHeader(http.StatusNoContent)
}

func (m *marketplace) mine(w http.ResponseWriter, r *http.Request) {
	u := m.caller(r)
	if u == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.WorkerApplicationSummary{}
	for _, p := range m.postings {
		for _, s := range p.Shifts {
			for _, a := range s.JobApplications {
				if a.WorkerID != u.id {
					continue
				}
				out = append(out, models.WorkerApplicationSummary{
					ShiftID:   s.ID,
					PostingID: p.ID,
					Title:     p.Title,
					Date:      s.Date,
					StartTime: s.StartTime,
					EndTime:   s.EndTime,
					Accepted:  a.Accepted,
				})
			}
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (m *marketplace) accept(w http.ResponseWriter, r *http.Request) {
	u := m.caller(r)
	if u == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	p, s := m.findShift(chi.URLParam(r, "shiftId"))
	if s == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}
	if p.BusinessID != u.id {
		writeJSON(w, http.StatusForbidden, map[string]string{"message": "not your posting"})
		return
	}

	worker := chi.URLParam(r, "workerId")
	for i := range s.JobApplications {
		if s.JobApplications[i].WorkerID == worker {
			s.JobApplications[i].Accepted = true
			available := false
			s.Available = &available
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "application not found"})
}

// userID looks up the id assigned to username at registration.
func (m *marketplace) userID(username string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[username]; ok {
		return u.id
	}
	return ""
}

func (m *marketplace) query() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastQuery
}
