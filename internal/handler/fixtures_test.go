package handler

// In-memory store implementations backing the handler tests.  They mirror
// the repository contracts closely enough to exercise the handlers' status
// mapping without a database: duplicate emails surface ErrEmailExists, a
// missing profile surfaces ErrNotFound, and passwords are stored hashed.

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/openlot/account-service/internal/queue"
	"github.com/openlot/account-service/internal/repository"
	"github.com/openlot/account-service/internal/utils"
)

type memUsers struct {
	mu     sync.Mutex
	nextID uint64
	byMail map[string]repository.User
}

func newMemUsers() *memUsers {
	return &memUsers{byMail: map[string]repository.User{}}
}

func (m *memUsers) Create(_ context.Context, email, password, role string, cost int) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	email = repository.NormalizeEmail(email)
	if _, ok := m.byMail[email]; ok {
		return 0, repository.ErrEmailExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	m.nextID++
	m.byMail[email] = repository.User{ID: m.nextID, Email: email, PasswordHash: hash, Role: role}
	return m.nextID, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (repository.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byMail[repository.NormalizeEmail(email)]
	if !ok {
		return repository.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByID(_ context.Context, id uint64) (repository.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byMail {
		if u.ID == id {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrNotFound
}

type memProfiles struct {
	mu     sync.Mutex
	nextID uint64
	byUser map[uint64]repository.SalespersonProfile
}

func newMemProfiles() *memProfiles {
	return &memProfiles{byUser: map[uint64]repository.SalespersonProfile{}}
}

func (m *memProfiles) GetByUserID(_ context.Context, userID uint64) (repository.SalespersonProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byUser[userID]
	if !ok {
		return repository.SalespersonProfile{}, repository.ErrNotFound
	}
	return p, nil
}

func (m *memProfiles) Upsert(_ context.Context, p *repository.SalespersonProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.byUser[p.UserID]
	if ok {
		p.ID = existing.ID
	} else {
		m.nextID++
		p.ID = m.nextID
	}
	m.byUser[p.UserID] = *p
	return nil
}

func (m *memProfiles) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byUser)
}

type memDealerships struct {
	mu   sync.Mutex
	rows []repository.Dealership
}

func (m *memDealerships) Create(_ context.Context, d *repository.Dealership) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = uint64(len(m.rows) + 1)
	m.rows = append(m.rows, *d)
	return nil
}

type memSubscriptions struct {
	mu   sync.Mutex
	rows []repository.Subscription
}

func (m *memSubscriptions) Create(_ context.Context, s *repository.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = uint64(len(m.rows) + 1)
	m.rows = append(m.rows, *s)
	return nil
}

// recordingEvents captures published envelopes instead of talking to a broker.
type recordingEvents struct {
	mu        sync.Mutex
	published []queue.Envelope
}

func (r *recordingEvents) Publish(_ context.Context, env queue.Envelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, env)
	return nil
}

// newTestDenylist backs a real denylist with an in-process Redis.
func newTestDenylist(t *testing.T) (*repository.TokenDenylist, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return repository.NewTokenDenylist(rdb), mr
}

// jsonRequest builds an echo context carrying a JSON body.
func jsonRequest(t *testing.T, method string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, "/", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}
