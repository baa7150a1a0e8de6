package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"sentiment-service/internal/models"
	"sentiment-service/internal/repository"
	"sentiment-service/internal/sentiment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeItemRepo is an in-memory ItemRepository for handler tests.
type fakeItemRepo struct {
	mu      sync.Mutex
	items   []models.Item
	nextID  int64
	err     error // returned by Create/List/GetByID when set
	pingErr error
}

func (f *fakeItemRepo) Create(name, description string) (*models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	item := models.Item{
		ID:          f.nextID,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	f.items = append(f.items, item)
	return &item, nil
}

func (f *fakeItemRepo) List() ([]models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Item, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeItemRepo) GetByID(id int64) (*models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, item := range f.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, repository.ErrItemNotFound
}

func (f *fakeItemRepo) Ping() error { return f.pingErr }

func newTestServer(t *testing.T, repo *fakeItemRepo, holder *sentiment.Holder) *gin.Engine {
	t.Helper()
	return NewServer(repo, holder, zap.NewNop()).Router()
}

func emptyHolder() *sentiment.Holder {
	return sentiment.NewHolder(nil, "models/sentiment_model.gob")
}

func trainedHolder(t *testing.T) *sentiment.Holder {
	t.Helper()
	model, err := sentiment.Train(
		[]string{
			"this is great and amazing",
			"excellent quality, love it",
			"wonderful product, highly recommend",
			"fantastic, works great",
			"this is terrible and awful",
			"poor quality, hate it",
			"horrible product, do not buy",
			"worst purchase, very disappointed",
		},
		[]int{1, 1, 1, 1, 0, 0, 0, 0},
	)
	require.NoError(t, err)
	return sentiment.NewHolder(model, "in-memory")
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRootEndpoint(t *testing.T) {
	router := newTestServer(t, &fakeItemRepo{}, emptyHolder())

	w := doJSON(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, "sentiment-service", body["service"])
	assert.NotEmpty(t, body["version"])
}

func TestCreateItem(t *testing.T) {
	router := newTestServer(t, &fakeItemRepo{}, emptyHolder())

	w := doJSON(router, http.MethodPost, "/items",
		`{"name":"Test Item","description":"Test Description"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var item models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Positive(t, item.ID)
	assert.Equal(t, "Test Item", item.Name)
	assert.Equal(t, "Test Description", item.Description)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestCreateItemValidation(t *testing.T) {
	router := newTestServer(t, &fakeItemRepo{}, emptyHolder())

	cases := []string{
		`{}`,
		`{"name":"","description":"d"}`,
		`{"name":"n"}`,
		`{"name":123,"description":"d"}`,
		`not json`,
	}
	for _, body := range cases {
		w := doJSON(router, http.MethodPost, "/items", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.Contains(t, w.Body.String(), "error", "body %q", body)
	}
}

func TestCreateItemStorageFailure(t *testing.T) {
	repo := &fakeItemRepo{err: errors.New("connection reset")}
	router := newTestServer(t, repo, emptyHolder())

	w := doJSON(router, http.MethodPost, "/items", `{"name":"n","description":"d"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListItems(t *testing.T) {
	repo := &fakeItemRepo{}
	router := newTestServer(t, repo, emptyHolder())

	w := doJSON(router, http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	for _, name := range []string{"first", "second", "third"} {
		w := doJSON(router, http.MethodPost, "/items", `{"name":"`+name+`","description":"d"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = doJSON(router, http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 3)
	names := []string{items[0].Name, items[1].Name, items[2].Name}
	assert.ElementsMatch(t, []string{"first", "second", "third"}, names)
}

func TestGetItemByID(t *testing.T) {
	repo := &fakeItemRepo{}
	router := newTestServer(t, repo, emptyHolder())

	w := doJSON(router, http.MethodPost, "/items", `{"name":"wanted","description":"d"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodGet, "/items/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "wanted", got.Name)
}

func TestGetItemNotFound(t *testing.T) {
	router := newTestServer(t, &fakeItemRepo{}, emptyHolder())

	w := doJSON(router, http.MethodGet, "/items/99999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestGetItemInvalidID(t *testing.T) {
	router := newTestServer(t, &fakeItemRepo{}, emptyHolder())

	w := doJSON(router, http.MethodGet, "/items/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredictModelUnloaded(t *testing.T) {
	router := newTestServer(t, &fakeItemRepo{}, emptyHolder())

	w := doJSON(router, http.MethodPost, "/predict", `{"text":"any text at all"}`)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Model not loaded")
}

func TestPredictLoaded(t *testing.T) {
	router := newTestServer(t, &fakeItemRepo{}, trainedHolder(t))

	w := doJSON(router, http.MethodPost, "/predict", `{"text":"This is great!"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PredictionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "This is great!", resp.Text)
	assert.Equal(t, sentiment.SentimentPositive, resp.Sentiment)
	assert.GreaterOrEqual(t, resp.Confidence, 0.5)
	assert.LessOrEqual(t, resp.Confidence, 1.0)
}

func TestPredictValidation(t *testing.T) {
	router := newTestServer(t, &fakeItemRepo{}, trainedHolder(t))

	for _, body := range []string{`{}`, `{"text":""}`, `{"text":42}`} {
		w := doJSON(router, http.MethodPost, "/predict", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(t, &fakeItemRepo{}, emptyHolder())

	w := doJSON(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "not_loaded", body["model"])
}

func TestHealthEndpointStoreDown(t *testing.T) {
	repo := &fakeItemRepo{pingErr: errors.New("dial tcp: connection refused")}
	router := newTestServer(t, repo, trainedHolder(t))

	w := doJSON(router, http.MethodGet, "/health", "")
	// Health must answer 200 even when the store is unreachable.
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "disconnected", body["database"])
	assert.Contains(t, body["error"], "connection refused")
}

func TestModelInfo(t *testing.T) {
	router := newTestServer(t, &fakeItemRepo{}, emptyHolder())

	w := doJSON(router, http.MethodGet, "/model/info", "")
	require.Equal(t, http.StatusOK, w.Code)
	var info sentiment.Info
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.False(t, info.Loaded)

	router = newTestServer(t, &fakeItemRepo{}, trainedHolder(t))
	w = doJSON(router, http.MethodGet, "/model/info", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.True(t, info.Loaded)
	assert.Positive(t, info.VocabularySize)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestServer(t, &fakeItemRepo{}, emptyHolder())

	// Generate at least one observation before scraping.
	doJSON(router, http.MethodGet, "/", "")

	w := doJSON(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
