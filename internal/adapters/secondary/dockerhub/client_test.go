package dockerhub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlflow-packer/internal/config"
)

func newTestClient(host string) *Client {
	return NewClient(config.HubConfig{
		Host:    host,
		User:    "packer",
		Token:   "secret",
		Org:     "acme",
		Timeout: 5 * time.Second,
	})
}

func TestListTags(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "packer", creds["username"])
		assert.Equal(t, "secret", creds["password"])

		json.NewEncoder(w).Encode(map[string]string{"token": "jwt-abc"})
	})
	mux.HandleFunc("/repositories/acme/churn-model/tags", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "JWT jwt-abc", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]string{{"name": "1"}, {"name": "2"}},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	tags, err := newTestClient(srv.URL).ListTags(context.Background(), "churn-model")
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, tags)
}

func TestListTags_Paginated(t *testing.T) {
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "jwt-abc"})
	})
	mux.HandleFunc("/repositories/acme/base/tags", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []map[string]string{{"name": "3.9.7-def"}},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"next":    fmt.Sprintf("%s/repositories/acme/base/tags?page=2", srv.URL),
			"results": []map[string]string{{"name": "3.9.7-abc"}},
		})
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	tags, err := newTestClient(srv.URL).ListTags(context.Background(), "base")
	assert.NoError(t, err)
	assert.Equal(t, []string{"3.9.7-abc", "3.9.7-def"}, tags)
}

func TestListTags_LoginRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListTags(context.Background(), "churn-model")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestListTags_UnknownRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "jwt-abc"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListTags(context.Background(), "missing")
	assert.Error(t, err)
}
