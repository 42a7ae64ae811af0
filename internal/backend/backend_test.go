package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventtix/eventtix/internal/backend"
	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/checkout"
	"github.com/eventtix/eventtix/pkg/errors"
	"github.com/eventtix/eventtix/pkg/session"
	"github.com/eventtix/eventtix/pkg/tickets"
)

func TestListEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/events", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		json.NewEncoder(w).Encode([]catalogue.Event{
			{ID: 1, Artist: "The Midnight Ravens", Genre: "Rock"},
			{ID: 2, Artist: "Kutumba", Genre: "Folk"},
		})
	}))
	defer srv.Close()

	client := backend.New(srv.URL, "anon-key")
	events, err := client.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Kutumba", events[1].Artist)
}

func TestListEventsBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := backend.New(srv.URL, "anon-key")
	_, err := client.ListEvents(context.Background())
	assert.True(t, errors.IsBackendUnavailable(err))
}

func TestSignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ram@example.com", creds.Email)

		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "tok-123",
			"refresh_token": "ref-456",
			"expires_in":    3600,
			"user":          session.User{ID: "user-1", Email: creds.Email},
		})
	}))
	defer srv.Close()

	client := backend.New(srv.URL, "anon-key")
	sess, err := client.SignIn(context.Background(), "ram@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", sess.AccessToken)
	assert.Equal(t, "user-1", sess.User.ID)
	assert.True(t, sess.Valid())
}

func TestSignInRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	client := backend.New(srv.URL, "anon-key")
	_, err := client.SignIn(context.Background(), "ram@example.com", "wrong")
	require.Error(t, err)

	var authErr *errors.AuthenticationError
	assert.ErrorAs(t, err, &authErr)
}

func TestSignInRequiresCredentials(t *testing.T) {
	client := backend.New("http://unused", "anon-key")
	_, err := client.SignIn(context.Background(), "", "")
	assert.True(t, errors.IsValidationError(err))
}

func TestSignUpCarriesDisplayName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)

		var body struct {
			Email string `json:"email"`
			Data  struct {
				DisplayName string `json:"display_name"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sita@example.com", body.Email)
		assert.Equal(t, "Sita", body.Data.DisplayName)

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-789",
			"expires_in":   3600,
			"user": map[string]any{
				"id":            "user-2",
				"email":         body.Email,
				"user_metadata": map[string]any{"display_name": body.Data.DisplayName},
			},
		})
	}))
	defer srv.Close()

	client := backend.New(srv.URL, "anon-key")
	sess, err := client.SignUp(context.Background(), "sita@example.com", "hunter2", "Sita")
	require.NoError(t, err)
	assert.Equal(t, "Sita", sess.User.DisplayName)
	assert.Equal(t, "Sita", sess.User.Name())
}

func TestSignUpRejectsOneCharacterName(t *testing.T) {
	client := backend.New("http://unused", "anon-key")
	_, err := client.SignUp(context.Background(), "sita@example.com", "hunter2", "S")
	assert.True(t, errors.IsValidationError(err))
}

func TestListTicketsSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/tickets", r.URL.Path)
		assert.Equal(t, "eq.user-1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode([]tickets.Ticket{
			{ID: "t-1", UserID: "user-1", EventName: "Kutumba", Status: tickets.StatusActive},
		})
	}))
	defer srv.Close()

	client := backend.New(srv.URL, "anon-key",
		backend.WithTokenFunc(func() string { return "tok-123" }))

	owned, err := client.ListTickets(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.True(t, owned[0].Usable())
}

func TestRecordPurchase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/tickets", r.URL.Path)

		var row tickets.Ticket
		require.NoError(t, json.NewDecoder(r.Body).Decode(&row))
		assert.Equal(t, "user-1", row.UserID)
		assert.Equal(t, int64(3), row.EventID)
		assert.Equal(t, tickets.StatusActive, row.Status)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := backend.New(srv.URL, "anon-key")
	event := catalogue.Event{ID: 3, Artist: "Kutumba", Venue: "Patan Durbar Square", Date: "2026-09-12"}
	intent := checkout.Intent{
		Reference: "ref-1",
		EventID:   3,
		TierType:  "General",
		Quantity:  2,
		Quote:     checkout.NewQuote(1500, 2),
	}

	ticket, err := client.RecordPurchase(context.Background(), session.User{ID: "user-1"}, event, intent)
	require.NoError(t, err)
	assert.Equal(t, "Kutumba", ticket.EventName)
	assert.Equal(t, 3300.00, ticket.Total)
	assert.Equal(t, "ref-1", ticket.Reference)
}

func TestSignOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := backend.New(srv.URL, "anon-key")
	assert.NoError(t, client.SignOut(context.Background()))
}
