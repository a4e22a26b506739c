package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/internship-hub-portal/internal/apiclient"
	"github.com/internship-hub-portal/internal/kvstore"
	"github.com/internship-hub-portal/internal/models"
	"github.com/rs/zerolog"
)

func newClient(t *testing.T, handler http.HandlerFunc) (*apiclient.Client, *kvstore.Memory) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := kvstore.NewMemory()
	return apiclient.New(srv.URL, srv.Client(), store, zerolog.Nop()), store
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, store := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Do(context.Background(), apiclient.Request{Path: "/ping"}, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Expected no Authorization header without a token, got %q", gotAuth)
	}

	store.Set(context.Background(), kvstore.KeyAuthToken, "tok-123")
	if err := client.Do(context.Background(), apiclient.Request{Path: "/ping"}, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Expected bearer token, got %q", gotAuth)
	}
}

func TestDo_JSONBody(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected application/json, got %q", ct)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]string{"echo": body["name"]})
	})

	var out map[string]string
	err := client.Do(context.Background(), apiclient.Request{
		Method: http.MethodPost,
		Path:   "/echo",
		Body:   map[string]string{"name": "Ada"},
	}, &out)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if out["echo"] != "Ada" {
		t.Errorf("Expected echo Ada, got %v", out)
	}
}

func TestDo_NoContentSkipsDecode(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	out := map[string]string{"keep": "me"}
	if err := client.Do(context.Background(), apiclient.Request{Path: "/empty"}, &out); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if out["keep"] != "me" {
		t.Error("204 must leave the output untouched")
	}
}

func TestDo_RequestFailedWithMessage(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token expired"}`))
	})

	err := client.Do(context.Background(), apiclient.Request{Path: "/auth/me"}, nil)
	if !errors.Is(err, apiclient.ErrRequestFailed) {
		t.Fatalf("Expected ErrRequestFailed, got %v", err)
	}
	if errors.Is(err, apiclient.ErrNetworkUnavailable) {
		t.Error("RequestFailed must not match NetworkUnavailable")
	}
	var reqErr *apiclient.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("Expected *RequestError, got %T", err)
	}
	if reqErr.Status != http.StatusUnauthorized || reqErr.Message != "Token expired" {
		t.Errorf("Unexpected error fields: %+v", reqErr)
	}
}

func TestDo_RequestFailedFallbackMessage(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	err := client.Do(context.Background(), apiclient.Request{Path: "/students/pending"}, nil)
	if got := apiclient.UserMessage(err); got != "Request failed: 502 Bad Gateway" {
		t.Errorf("Unexpected fallback message %q", got)
	}
}

func TestDo_NetworkUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := apiclient.New(url, nil, nil, zerolog.Nop())
	err := client.Do(context.Background(), apiclient.Request{Path: "/auth/me"}, nil)
	if !errors.Is(err, apiclient.ErrNetworkUnavailable) {
		t.Fatalf("Expected ErrNetworkUnavailable, got %v", err)
	}
	if errors.Is(err, apiclient.ErrRequestFailed) {
		t.Error("NetworkUnavailable must not match RequestFailed")
	}
}

func TestDo_CancelledContext(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := client.Do(ctx, apiclient.Request{Path: "/auth/me"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if errors.Is(err, apiclient.ErrNetworkUnavailable) {
		t.Error("Cancellation must not be reported as NetworkUnavailable")
	}
}

func TestMe_Payloads(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantNil bool
		wantID  string
	}{
		{name: "bare profile", body: `{"id":"u1","email":"a@uni.edu","role":"student"}`, wantID: "u1"},
		{name: "wrapped profile", body: `{"user":{"id":7,"email":"b@uni.edu","role":"hod"}}`, wantID: "7"},
		{name: "null", body: `null`, wantNil: true},
		{name: "empty object", body: `{}`, wantNil: true},
		{name: "null user", body: `{"user":null}`, wantNil: true},
		{name: "empty body", body: ``, wantNil: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/auth/me" {
					t.Errorf("Unexpected path %s", r.URL.Path)
				}
				w.Write([]byte(tc.body))
			})
			user, err := client.Me(context.Background())
			if err != nil {
				t.Fatalf("Me failed: %v", err)
			}
			if tc.wantNil {
				if user != nil {
					t.Errorf("Expected nil user, got %+v", user)
				}
				return
			}
			if user == nil || string(user.ID) != tc.wantID {
				t.Errorf("Expected id %s, got %+v", tc.wantID, user)
			}
		})
	}
}

func TestMe_MalformedPayload(t *testing.T) {
	for _, body := range []string{`<html>maintenance</html>`, `{"id":["u1"],"role":"student"}`} {
		client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		user, err := client.Me(context.Background())
		if !errors.Is(err, apiclient.ErrInvalidResponse) {
			t.Errorf("%s: expected ErrInvalidResponse, got %v", body, err)
		}
		if errors.Is(err, apiclient.ErrRequestFailed) {
			t.Errorf("%s: a 2xx body must not match ErrRequestFailed", body)
		}
		if user != nil {
			t.Errorf("%s: expected nil user, got %+v", body, user)
		}
	}
}

func TestLogin(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if r.Method != http.MethodPost || req.Email != "ada@uni.edu" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"user":{"id":"u1","email":"ada@uni.edu","role":"lecturer"},"session":{"access_token":"tok"}}`))
	})

	resp, err := client.Login(context.Background(), "ada@uni.edu", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Session.AccessToken != "tok" || resp.User.Role != "lecturer" {
		t.Errorf("Unexpected login response: %+v", resp)
	}
}

func TestPendingStudents(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"email":"s1@uni.edu"},{"id":2,"email":"s2@uni.edu"}]`))
	})

	students, err := client.PendingStudents(context.Background())
	if err != nil {
		t.Fatalf("PendingStudents failed: %v", err)
	}
	if len(students) != 2 || students[1].ID != "2" {
		t.Errorf("Unexpected students: %+v", students)
	}
}
