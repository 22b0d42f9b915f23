package rpcstore_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/rpcstore"
	"complaintdesk/backend/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sec", r.URL.Query().Get("search"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"data": []models.Category{
					{Base: models.Base{ID: 2}, Name: "Security"},
					{Base: models.Base{ID: 1}, Name: "Secrecy"},
				},
				"meta": map[string]any{"total": 2, "perPage": 10, "currentPage": 1},
			},
		})
	})

	mux.HandleFunc("GET /categories/7", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": models.Category{Base: models.Base{ID: 7}, Name: "Noise"},
		})
	})

	mux.HandleFunc("GET /categories/99", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"error": "category not found"})
	})

	mux.HandleFunc("POST /categories", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		var in models.Category
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 11
		json.NewEncoder(w).Encode(map[string]any{"data": in, "message": "category created"})
	})

	mux.HandleFunc("PUT /categories/11", func(w http.ResponseWriter, r *http.Request) {
		var in models.Category
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 11
		json.NewEncoder(w).Encode(map[string]any{"data": in, "message": "category updated"})
	})

	mux.HandleFunc("DELETE /categories/11", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data":    models.Category{Base: models.Base{ID: 11}, Name: "Gone"},
			"message": "category deleted",
		})
	})

	mux.HandleFunc("POST /conflict", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		mux.ServeHTTP(w, r)
	}))
}

func TestRemoteStore_FindPage(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	store := rpcstore.New[models.Category](srv.URL, "token-abc", "categories")
	page, err := store.FindPage(context.Background(), models.Filter{Search: "sec"})

	assert.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, "Security", page.Items[0].Name)
}

func TestRemoteStore_FindOne(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	store := rpcstore.New[models.Category](srv.URL, "token-abc", "categories")

	got, err := store.FindOne(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "Noise", got.Name)

	_, err = store.FindOne(context.Background(), 99)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRemoteStore_CreateAssignsID(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	store := rpcstore.New[models.Category](srv.URL, "token-abc", "categories")
	entity := models.Category{Name: "Security"}

	assert.NoError(t, store.Create(context.Background(), &entity))
	assert.Equal(t, uint(11), entity.ID, "server-assigned id lands back on the entity")
}

func TestRemoteStore_UpdateAndDelete(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	store := rpcstore.New[models.Category](srv.URL, "token-abc", "categories")

	updated, err := store.Update(context.Background(), 11, &models.Category{Name: "Renamed"})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	deleted, err := store.Delete(context.Background(), 11)
	assert.NoError(t, err)
	assert.Equal(t, "Gone", deleted.Name)
}

func TestRemoteStore_ConflictStatus(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	store := rpcstore.New[models.Category](srv.URL, "", "conflict")
	err := store.Create(context.Background(), &models.Category{Name: "Dup"})
	assert.ErrorIs(t, err, storage.ErrConflict)
}

func TestRemoteStore_DeadServerIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	store := rpcstore.New[models.Category](url, "", "categories")
	_, err := store.FindPage(context.Background(), models.Filter{})
	assert.ErrorIs(t, err, storage.ErrTransport)
}
