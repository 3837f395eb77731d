package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubsite/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	userID string
	role   string
	err    error
}

func (f fakeVerifier) Verify(token string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return f.userID, f.role, nil
}

func TestRequireAuth_SetsIdentity(t *testing.T) {
	wrap := RequireAuth(fakeVerifier{userID: "u1", role: domain.RoleAdmin})

	var gotID, gotRole string
	handler := wrap(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
		gotRole, _ = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", gotID)
	assert.Equal(t, domain.RoleAdmin, gotRole)
}

func TestRequireAuth_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		verifier fakeVerifier
	}{
		{"missing header", "", fakeVerifier{}},
		{"not bearer", "Basic abc", fakeVerifier{}},
		{"empty token", "Bearer   ", fakeVerifier{}},
		{"invalid token", "Bearer bad", fakeVerifier{err: errors.New("expired")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := RequireAuth(tt.verifier)(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin()(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	req = req.WithContext(SetIdentity(req.Context(), "u1", domain.RoleAdmin))
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/events", nil)
	req = req.WithContext(SetIdentity(req.Context(), "u2", domain.RoleMember))
	rec = httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No identity in context at all.
	req = httptest.NewRequest(http.MethodPost, "/events", nil)
	rec = httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
