package audit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"ledgerly/internal/config"
	"ledgerly/internal/models"
	"ledgerly/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

// fakeTransport answers like an Elasticsearch node that has no indices yet.
type fakeTransport struct {
	mu       sync.Mutex
	requests []recordedRequest
	indexErr bool
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		body = string(b)
	}

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: req.Method, Path: req.URL.Path, Body: body})
	f.mu.Unlock()

	status := http.StatusOK
	respBody := `{"acknowledged":true}`
	switch {
	case req.Method == http.MethodHead:
		status = http.StatusNotFound
		respBody = ""
	case strings.Contains(req.URL.Path, "/_doc/"):
		if f.indexErr {
			status = http.StatusBadRequest
			respBody = `{"error":"mapper_parsing_exception"}`
		} else {
			status = http.StatusCreated
			respBody = `{"result":"created"}`
		}
	}

	header := http.Header{}
	header.Set("X-Elastic-Product", "Elasticsearch")
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(respBody)),
		Request:    req,
	}, nil
}

func (f *fakeTransport) calls() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func testESConfig() config.ElasticsearchConfig {
	return config.ElasticsearchConfig{URL: "http://es.local:9200", IndexPrefix: "test"}
}

func TestElasticsearchRecorder_CreatesIndexAndIndexesFailure(t *testing.T) {
	transport := &fakeTransport{}
	rec, err := newElasticsearchRecorder(context.Background(), testESConfig(), transport)
	require.NoError(t, err)
	assert.Equal(t, "test_cascade_failures", rec.Index())

	failure := &models.CascadeFailure{
		Operation: models.CascadeWalletDelete,
		SubjectID: "wallet-1",
		ActorID:   "user-1",
		Step:      "delete entries",
		Error:     "connection reset",
	}
	require.NoError(t, rec.RecordCascadeFailure(context.Background(), failure))
	assert.NotEmpty(t, failure.ID)

	calls := transport.calls()
	require.Len(t, calls, 3)
	assert.Equal(t, http.MethodHead, calls[0].Method)
	assert.Equal(t, http.MethodPut, calls[1].Method)
	assert.Equal(t, "/test_cascade_failures", calls[1].Path)
	assert.Contains(t, calls[1].Body, `"subjectId"`)

	assert.Equal(t, "/test_cascade_failures/_doc/"+failure.ID, calls[2].Path)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(calls[2].Body), &doc))
	assert.Equal(t, "wallet.delete", doc["operation"])
	assert.Equal(t, "delete entries", doc["step"])
}

func TestElasticsearchRecorder_IndexError(t *testing.T) {
	transport := &fakeTransport{indexErr: true}
	rec, err := newElasticsearchRecorder(context.Background(), testESConfig(), transport)
	require.NoError(t, err)

	err = rec.RecordCascadeFailure(context.Background(), &models.CascadeFailure{
		Operation: models.CascadeAccountDelete,
		SubjectID: "user-1",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error indexing cascade failure")
}

func TestGormRecorder_PersistsFailure(t *testing.T) {
	db := testutil.NewDB(t)
	rec := NewGormRecorder(db)

	err := rec.RecordCascadeFailure(context.Background(), &models.CascadeFailure{
		Operation: models.CascadeAccountDelete,
		SubjectID: "user-1",
		Step:      "delete wallets",
		Error:     "boom",
		Details:   models.JSON{"walletIds": []string{"w1", "w2"}},
	})
	require.NoError(t, err)

	var stored []models.CascadeFailure
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "user-1", stored[0].SubjectID)
	assert.Equal(t, "delete wallets", stored[0].Step)
	assert.False(t, stored[0].CreatedAt.IsZero())
}

func TestNewRecorder_WithoutURLUsesDatabase(t *testing.T) {
	db := testutil.NewDB(t)
	rec := NewRecorder(context.Background(), config.ElasticsearchConfig{}, db)
	_, ok := rec.(*GormRecorder)
	assert.True(t, ok)
}
