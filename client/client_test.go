package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redakce-cms/models"
)

// fakeServer answers like the real API: an {ok:true,...} envelope on
// success, {ok:false,error} otherwise.
func fakeServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, status int, payload map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func TestLoginStoresToken(t *testing.T) {
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req models.APILoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "editorka", req.Username)
		assert.Equal(t, "Passw0rd", req.Password)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"ok": true, "token": "abc123", "role": "editor", "username": "editorka",
		})
	})

	resp, err := c.Login("editorka", "Passw0rd")
	require.NoError(t, err)
	assert.Equal(t, "abc123", resp.Token)
	assert.Equal(t, models.RoleEditor, resp.Role)
	assert.Equal(t, "abc123", c.Token)
}

func TestLoginFailureKeepsMessage(t *testing.T) {
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"ok": false, "error": "Špatné jméno nebo heslo.",
		})
	})

	_, err := c.Login("editorka", "spatne")
	require.Error(t, err)
	assert.Equal(t, "Špatné jméno nebo heslo.", err.Error())
	assert.Empty(t, c.Token)
}

func TestAuthorizationHeaderOnCalls(t *testing.T) {
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"ok": true, "articles": []map[string]interface{}{},
		})
	})
	c.Token = "abc123"

	_, err := c.ListArticles()
	require.NoError(t, err)
}

func TestListArticles(t *testing.T) {
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/articles", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"ok": true,
			"articles": []map[string]interface{}{
				{"id": 2, "title": "Novější", "author_id": 1},
				{"id": 1, "title": "Starší", "author_id": 1},
			},
		})
	})

	articles, err := c.ListArticles()
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, uint(2), articles[0].ID)
	assert.Equal(t, "Novější", articles[0].Title)
}

func TestGetArticle(t *testing.T) {
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/articles/7", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"ok": true,
			"article": map[string]interface{}{
				"id": 7, "title": "T", "perex": "<b>p</b>", "content": "<p>hi</p>", "author_id": 3,
			},
		})
	})

	article, err := c.GetArticle(7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), article.ID)
	assert.Equal(t, "<p>hi</p>", article.Content)
}

func TestCreateUpdateDelete(t *testing.T) {
	var gotMethod, gotPath string
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "id": 9})
	})

	id, err := c.CreateArticle("T", "", "<p>hi</p>")
	require.NoError(t, err)
	assert.Equal(t, uint(9), id)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/articles", gotPath)

	require.NoError(t, c.UpdateArticle(9, "T2", "", "<p>zmena</p>"))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/articles/9", gotPath)

	require.NoError(t, c.DeleteArticle(9))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/articles/9", gotPath)
}

func TestForbiddenSurfacesServerMessage(t *testing.T) {
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]interface{}{
			"ok": false, "error": "Nemáš oprávnění upravit tento článek.",
		})
	})

	err := c.UpdateArticle(9, "T", "", "x")
	require.Error(t, err)
	assert.Equal(t, "Nemáš oprávnění upravit tento článek.", err.Error())
}

func TestNonJSONResponseIsAToast(t *testing.T) {
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>Bad Gateway</html>"))
	})

	_, err := c.ListArticles()
	require.Error(t, err)
	assert.Equal(t, "Neplatná odpověď serveru (HTTP 502).", err.Error())
}

func TestUploadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foto.png")
	require.NoError(t, os.WriteFile(path, []byte("obrazek"), 0o644))

	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/upload", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "foto.png", header.Filename)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"ok": true, "url": "/static/uploads/1700000000_foto.png",
		})
	})
	c.Token = "abc123"

	url, err := c.UploadImage(path)
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/1700000000_foto.png", url)
}

func TestUploadMissingFile(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.UploadImage("/neexistuje/foto.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Soubor se nepodařilo otevřít")
}
