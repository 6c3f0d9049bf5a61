package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/pkg/dataflow"
	"github.com/olivere/elastic/v7"
)

const recordMapping = `{
	"settings": {
		"analysis": {
			"normalizer": {
				"lowercase": {"type": "custom", "filter": ["lowercase"]}
			}
		}
	},
	"mappings": {
		"properties": {
			"id":        {"type": "keyword"},
			"staffId":   {"type": "keyword"},
			"staffName": {
				"type": "text",
				"fields": {
					"keyword": {"type": "keyword"},
					"lower":   {"type": "keyword", "normalizer": "lowercase"}
				}
			},
			"date":      {"type": "keyword"},
			"checkIn":   {"type": "keyword"},
			"checkOut":  {"type": "keyword"},
			"status":    {"type": "keyword"}
		}
	}
}`

// ElasticSearchClient mirrors attendance records into an index for name search.
type ElasticSearchClient struct {
	client   *elastic.Client
	index    string
	pageSize int
}

// NewElasticSearchClient connects to url and creates index if missing.
func NewElasticSearchClient(ctx context.Context, url, index string) (*ElasticSearchClient, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(url),
		elastic.SetSniff(false), // Essential when using Docker or cloud
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	es := &ElasticSearchClient{client: client, index: index, pageSize: searchPageSize}
	if err := es.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return es, nil
}

func (es *ElasticSearchClient) ensureIndex(ctx context.Context) error {
	exists, err := es.client.IndexExists(es.index).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check index %s: %w", es.index, err)
	}
	if exists {
		return nil
	}
	if _, err := es.client.CreateIndex(es.index).BodyString(recordMapping).Do(ctx); err != nil {
		return fmt.Errorf("failed to create index %s: %w", es.index, err)
	}
	return nil
}

// Bulk indexing limits
const (
	bulkBatchSize  = 500
	bulkWorkers    = 2
	bulkMaxRetries = 3
	searchPageSize = 1000
)

// IndexRecords upserts records by id in bulk batches. A failing batch is retried with backoff.
func (es *ElasticSearchClient) IndexRecords(ctx context.Context, records []domain.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}

	requests := dataflow.Map(ctx, dataflow.From(ctx, records...), func(r domain.AttendanceRecord) (elastic.BulkableRequest, error) {
		return elastic.NewBulkIndexRequest().Index(es.index).Id(r.ID).Doc(r), nil
	}, dataflow.WithBufferSize(bulkBatchSize))
	batches := dataflow.Batch(ctx, requests, bulkBatchSize)

	return dataflow.ForEach(ctx, batches, func(batch []elastic.BulkableRequest) error {
		return es.sendBulk(ctx, batch)
	},
		dataflow.WithWorkers(bulkWorkers),
		dataflow.WithRetry(bulkMaxRetries, func(attempt int) time.Duration {
			return time.Duration(attempt) * 200 * time.Millisecond
		}),
	)
}

func (es *ElasticSearchClient) sendBulk(ctx context.Context, batch []elastic.BulkableRequest) error {
	bulkResponse, err := es.client.Bulk().Add(batch...).Refresh("true").Do(ctx)
	if err != nil {
		return fmt.Errorf("bulk index failed: %w", err)
	}
	if bulkResponse.Errors {
		failed := bulkResponse.Failed()
		if len(failed) > 0 && failed[0].Error != nil {
			return fmt.Errorf("bulk index had %d failures, first: %s", len(failed), failed[0].Error.Reason)
		}
		return fmt.Errorf("bulk index had %d failures", len(failed))
	}
	return nil
}

// SearchIDs returns the ids of records on date whose staff name contains query,
// ignoring case. Results are paged with search_after so no hit is dropped.
func (es *ElasticSearchClient) SearchIDs(ctx context.Context, date, query string) ([]string, error) {
	pattern := "*" + wildcardEscaper.Replace(strings.ToLower(query)) + "*"
	q := elastic.NewBoolQuery().
		Filter(elastic.NewTermQuery("date", date)).
		Filter(elastic.NewWildcardQuery("staffName.lower", pattern))

	ids := []string{}
	var after []interface{}
	for {
		search := es.client.Search().
			Index(es.index).
			Query(q).
			FetchSource(false).
			Sort("id", true).
			Size(es.pageSize)
		if after != nil {
			search = search.SearchAfter(after...)
		}

		searchResult, err := search.Do(ctx)
		if err != nil {
			return nil, fmt.Errorf("search failed: %w", err)
		}
		if searchResult.Hits == nil {
			return ids, nil
		}

		hits := searchResult.Hits.Hits
		for _, hit := range hits {
			ids = append(ids, hit.Id)
		}
		if len(hits) < es.pageSize {
			return ids, nil
		}
		after = hits[len(hits)-1].Sort
		if len(after) == 0 {
			return nil, fmt.Errorf("search page for %s has no sort values", date)
		}
	}
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`)
