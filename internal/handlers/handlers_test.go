package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"unhinged-listings/internal/config"
	"unhinged-listings/internal/models"
	"unhinged-listings/internal/repository"
	"unhinged-listings/internal/routes"
)

const testPassword = "sekret"

// fakeListingStore replica en memoria el comportamiento documentado del
// repositorio de anuncios, incluida la asignación de sortOrder.
type fakeListingStore struct {
	mu       sync.Mutex
	listings []models.Listing
}

func (f *fakeListingStore) List(_ context.Context, category string) ([]models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Listing, 0)
	for _, listing := range f.listings {
		if category != "" && category != "all" && listing.Category != category {
			continue
		}
		listing.Normalize()
		out = append(out, listing)
	}
	sort.SliceStable(out, func(i, j int) bool { return *out[i].SortOrder < *out[j].SortOrder })
	if len(out) > 200 {
		out = out[:200]
	}
	return out, nil
}

func (f *fakeListingStore) Get(_ context.Context, id string) (*models.Listing, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrNotFound
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, listing := range f.listings {
		if listing.ID.Hex() == id {
			listing.Normalize()
			return &listing, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeListingStore) Create(_ context.Context, listing *models.Listing) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	order := 0
	if len(f.listings) > 0 {
		order = 1
		for _, existing := range f.listings {
			if existing.SortOrder != nil && *existing.SortOrder+1 > order {
				order = *existing.SortOrder + 1
			}
		}
	}

	listing.ID = primitive.NewObjectID()
	listing.SortOrder = &order
	f.listings = append(f.listings, *listing)
	return nil
}

func (f *fakeListingStore) Update(_ context.Context, id string, fields bson.M) (*models.Listing, error) {
	if len(fields) == 0 {
		return nil, repository.ErrNoFields
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrNotFound
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.listings {
		if f.listings[i].ID.Hex() != id {
			continue
		}
		listing := &f.listings[i]
		for key, value := range fields {
			switch key {
			case "title":
				listing.Title = value.(string)
			case "price":
				listing.Price = value.(float64)
			case "status":
				listing.Status = value.(string)
			case "image":
				listing.Image = value.(string)
			case "excerpt":
				listing.Excerpt = value.(string)
			case "fullText":
				listing.FullText = value.(string)
			case "facebookUrl":
				listing.FacebookURL = value.(string)
			case "category":
				listing.Category = value.(string)
			case "location":
				listing.Location = value.(string)
			}
		}
		listing.UpdatedAt = time.Now().UTC()

		updated := *listing
		updated.Normalize()
		return &updated, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeListingStore) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrNotFound
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.listings {
		if f.listings[i].ID.Hex() == id {
			f.listings = append(f.listings[:i], f.listings[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeListingStore) Reorder(_ context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// los ids mal formados se saltan pero consumen su posición
	for position, id := range ids {
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			continue
		}
		for i := range f.listings {
			if f.listings[i].ID.Hex() == id {
				order := position
				f.listings[i].SortOrder = &order
			}
		}
	}
	return nil
}

type fakeSettingsStore struct {
	mu     sync.Mutex
	stored bson.M
}

func (f *fakeSettingsStore) Get(_ context.Context) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stored == nil {
		return models.DefaultSettings(), nil
	}
	return models.MergeDefaults(f.stored), nil
}

func (f *fakeSettingsStore) Update(_ context.Context, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stored == nil {
		f.stored = bson.M{}
	}
	for key, value := range fields {
		f.stored[key] = value
	}
	f.stored["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
	return nil
}

func (f *fakeSettingsStore) Categories(ctx context.Context) (interface{}, error) {
	settings, err := f.Get(ctx)
	if err != nil {
		return nil, err
	}
	return settings["categories"], nil
}

func newTestServer(t *testing.T) (*gin.Engine, *fakeListingStore, *fakeSettingsStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>spa</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log('app')"), 0o644))

	cfg := &config.Config{AdminPassword: testPassword, StaticDir: staticDir}
	listings := &fakeListingStore{}
	settings := &fakeSettingsStore{}

	router := gin.New()
	routes.RegisterRoutes(router, cfg, listings, settings)
	return router, listings, settings
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createListing(t *testing.T, router *gin.Engine, fields map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/admin/listings?password="+testPassword, fields)
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)
}
