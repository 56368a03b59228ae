package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/tailoring-webclient/internal/config"
	"github.com/spec-kit/tailoring-webclient/internal/observability"
	"github.com/spec-kit/tailoring-webclient/internal/upstream"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

func newClient(baseURL string) *upstream.Client {
	return upstream.NewClient(config.UpstreamConfig{BaseURL: baseURL, TimeoutSeconds: 2}, zap.NewNop(), observability.NewMetrics())
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login/json", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.test", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token":  "tok",
			"refresh_token": "ref",
			"token_type":    "bearer",
			"role":          "customer",
		})
	}))
	defer srv.Close()

	resp, err := newClient(srv.URL).Login(context.Background(), "a@b.test", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, "customer", resp.Role)
}

func TestClient_LoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Login(context.Background(), "a@b.test", "wrong")
	require.Error(t, err)
	assert.True(t, util.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "Incorrect email or password")
}

func TestClient_AvailabilityCarriesSelectionKey(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/appointments/availability/slots", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "7", r.URL.Query().Get("tailor_id"))
		require.Equal(t, "1", r.URL.Query().Get("branch_id"))
		require.Equal(t, day.Format(time.RFC3339), r.URL.Query().Get("date"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"date":      day,
			"branch_id": 1,
			"available_slots": []map[string]any{{
				"start_time":   "2024-06-01T10:00:00Z",
				"end_time":     "2024-06-01T10:30:00Z",
				"tailor_id":    7,
				"tailor_name":  "Asha",
				"is_available": true,
			}},
		})
	}))
	defer srv.Close()

	slots, err := newClient(srv.URL).Availability(context.Background(), "tok", 7, 1, day)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "10:00", slots[0].Label())
	assert.True(t, slots[0].IsAvailable)
}

func TestClient_CreateAppointmentConflict(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Time slot already booked"})
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).CreateAppointment(context.Background(), "tok", upstream.AppointmentCreateRequest{
		TailorID:        7,
		BranchID:        1,
		ScheduledDate:   time.Now(),
		DurationMinutes: 30,
	})
	require.Error(t, err)
	assert.True(t, util.IsConflict(err))
}

func TestClient_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		code   string
	}{
		{http.StatusForbidden, "FORBIDDEN"},
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusBadRequest, "VALIDATION_FAILED"},
		{http.StatusUnprocessableEntity, "VALIDATION_FAILED"},
		{http.StatusInternalServerError, "UPSTREAM_UNAVAILABLE"},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))

		_, err := newClient(srv.URL).UnreadCount(context.Background(), "tok")
		require.Error(t, err, "status %d", tc.status)
		domainErr := util.ToDomainError(err)
		assert.Equal(t, tc.code, domainErr.Code, "status %d", tc.status)
		srv.Close()
	}
}

func TestClient_UnreachableUpstream(t *testing.T) {
	t.Parallel()

	// Nothing listens here.
	_, err := newClient("http://127.0.0.1:1").UnreadCount(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", util.ToDomainError(err).Code)
}
