package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ledgerly/internal/config"
	"ledgerly/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
)

const cascadeFailureMapping = `{
	"mappings": {
		"properties": {
			"id": { "type": "keyword" },
			"operation": { "type": "keyword" },
			"subjectId": { "type": "keyword" },
			"actorId": { "type": "keyword" },
			"step": { "type": "keyword" },
			"error": { "type": "text" },
			"details": { "type": "object", "enabled": false },
			"createdAt": { "type": "date" }
		}
	}
}`

// ElasticsearchRecorder indexes cascade failures into <prefix>_cascade_failures.
type ElasticsearchRecorder struct {
	client *elasticsearch.Client
	index  string
}

// NewElasticsearchRecorder connects and creates the index when it is missing.
func NewElasticsearchRecorder(ctx context.Context, cfg config.ElasticsearchConfig) (*ElasticsearchRecorder, error) {
	return newElasticsearchRecorder(ctx, cfg, nil)
}

func newElasticsearchRecorder(ctx context.Context, cfg config.ElasticsearchConfig, transport http.RoundTripper) (*ElasticsearchRecorder, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Transport: transport,
	}
	if cfg.Username != "" && cfg.Password != "" {
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	prefix := cfg.IndexPrefix
	if prefix == "" {
		prefix = "ledgerly"
	}

	r := &ElasticsearchRecorder{client: client, index: prefix + "_cascade_failures"}
	if err := r.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ElasticsearchRecorder) ensureIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if %s exists: %w", r.index, err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		return nil
	}

	req := esapi.IndicesCreateRequest{
		Index: r.index,
		Body:  bytes.NewReader([]byte(cascadeFailureMapping)),
	}
	res, err = req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", r.index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating %s: %s", r.index, res.String())
	}
	return nil
}

func (r *ElasticsearchRecorder) RecordCascadeFailure(ctx context.Context, failure *models.CascadeFailure) error {
	if failure.ID == "" {
		failure.ID = uuid.NewString()
	}
	if failure.CreatedAt.IsZero() {
		failure.CreatedAt = time.Now()
	}

	body, err := json.Marshal(failure)
	if err != nil {
		return fmt.Errorf("error encoding cascade failure: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: failure.ID,
		Body:       bytes.NewReader(body),
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error indexing cascade failure: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing cascade failure: %s", res.String())
	}
	return nil
}

// Index is the name of the target index.
func (r *ElasticsearchRecorder) Index() string {
	return r.index
}
