package hub_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/hubsync/pkg/infra/hub"
)

func TestUpdateDescription(t *testing.T) {
	var loginBody map[string]string
	var updateBody map[string]string
	var updateAuth string
	var updatePath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2/users/login":
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&loginBody))
			w.Header().Set("Content-Type", "application/json")
			gt.NoError(t, json.NewEncoder(w).Encode(map[string]string{"token": "jwt-token"}))

		case r.Method == http.MethodPatch:
			updatePath = r.URL.Path
			updateAuth = r.Header.Get("Authorization")
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&updateBody))
			w.Header().Set("Content-Type", "application/json")
			gt.NoError(t, json.NewEncoder(w).Encode(map[string]string{"name": "repo"}))

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := hub.NewClient("myuser", "access-token", hub.WithBaseURL(srv.URL))

	err := client.UpdateDescription(context.Background(), "myuser/repo", "short text", "# Full README")
	gt.NoError(t, err)

	gt.Equal(t, loginBody["username"], "myuser")
	gt.Equal(t, loginBody["password"], "access-token")

	gt.Equal(t, updatePath, "/v2/repositories/myuser/repo/")
	gt.Equal(t, updateAuth, "JWT jwt-token")
	gt.Equal(t, updateBody["description"], "short text")
	gt.Equal(t, updateBody["full_description"], "# Full README")
}

func TestUpdateDescription_LoginFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := hub.NewClient("myuser", "bad-token", hub.WithBaseURL(srv.URL))

	err := client.UpdateDescription(context.Background(), "myuser/repo", "short", "full")
	gt.Error(t, err)
}

func TestUpdateDescription_UpdateFailure(t *testing.T) {
	var patchCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			gt.NoError(t, json.NewEncoder(w).Encode(map[string]string{"token": "jwt-token"}))
			return
		}
		patchCalls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := hub.NewClient("myuser", "access-token", hub.WithBaseURL(srv.URL))

	err := client.UpdateDescription(context.Background(), "other/repo", "short", "full")
	gt.Error(t, err)

	// No retry: a failed update is attempted exactly once
	gt.Equal(t, patchCalls, 1)
}

func TestUpdateDescription_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewEncoder(w).Encode(map[string]string{"token": ""}))
	}))
	defer srv.Close()

	client := hub.NewClient("myuser", "access-token", hub.WithBaseURL(srv.URL))

	err := client.UpdateDescription(context.Background(), "myuser/repo", "short", "full")
	gt.Error(t, err)
}
