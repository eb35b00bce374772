package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/usersvc/internal/client/config"
)

func newTestClient(srvURL string) *Client {
	return NewClient(&config.Config{BaseURL: srvURL + "/", Timeout: 2 * time.Second})
}

func TestListUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/usuarios", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": [{"id": 1, "nombre": "Ana"}]}`))
	}))
	defer srv.Close()

	env, status, err := newTestClient(srv.URL).ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Len(t, users, 1)
	assert.Equal(t, "Ana", users[0]["nombre"])
}

func TestCreateUserSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true, "message": "Usuario creado correctamente"}`))
	}))
	defer srv.Close()

	fields := map[string]any{"nombre": "Ana", "email": "ana@example.com"}
	env, status, err := newTestClient(srv.URL).CreateUser(context.Background(), fields)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Usuario creado correctamente", env.Message)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Ana", gotBody["nombre"])
}

func TestGetUserFailureEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/usuarios/99", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "error": "Usuario no encontrado"}`))
	}))
	defer srv.Close()

	env, status, err := newTestClient(srv.URL).GetUser(context.Background(), 99)

	require.NoError(t, err, "a failure envelope is not a transport error")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Usuario no encontrado", env.Error)
}

func TestPaginateUsersQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/usuarios/paginado", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("pagina"))
		assert.Equal(t, "5", r.URL.Query().Get("limite"))
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	_, status, err := newTestClient(srv.URL).PaginateUsers(context.Background(), 2, 5)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}

func TestMergeUserMethod(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		w.Write([]byte(`{"success": true, "message": "Actualización parcial exitosa de 1 campo(s)"}`))
	}))
	defer srv.Close()

	env, _, err := newTestClient(srv.URL).MergeUser(context.Background(), 7, map[string]any{"ciudad": "Madrid"})

	require.NoError(t, err)
	assert.Equal(t, "Actualización parcial exitosa de 1 campo(s)", env.Message)
}

// TestUserLifecycleFlow drives create, get, delete and get-again against a
// stateful stub server, mirroring a real session.
func TestUserLifecycleFlow(t *testing.T) {
	var deleted bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/usuarios":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success": true, "data": {"id": 1, "nombre": "Ana"}, "message": "Usuario creado correctamente"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/usuarios/1" && !deleted:
			w.Write([]byte(`{"success": true, "data": {"id": 1, "nombre": "Ana"}}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/usuarios/1":
			deleted = true
			w.Write([]byte(`{"success": true, "message": "Usuario Ana eliminado correctamente"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success": false, "error": "Usuario no encontrado"}`))
		}
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	ctx := context.Background()

	env, status, err := client.CreateUser(ctx, map[string]any{"nombre": "Ana", "email": "ana@example.com"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)

	env, status, err = client.GetUser(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	env, _, err = client.DeleteUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Usuario Ana eliminado correctamente", env.Message)

	env, status, err = client.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
}

func TestPingUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := newTestClient(srv.URL).Ping(context.Background())

	assert.Error(t, err)
}

func TestNonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).ListUsers(context.Background())

	assert.Error(t, err)
}
