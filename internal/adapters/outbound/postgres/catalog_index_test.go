package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/visionffe/visionffe-api/internal/domain"
	domain_mocks "github.com/visionffe/visionffe-api/internal/domain/mocks"
)

const (
	upsertCatalogItemSQL = "INSERT INTO catalog_items (namespace,id,embedding,metadata) VALUES ($1,$2,$3,$4) ON CONFLICT (namespace, id) DO UPDATE SET embedding = EXCLUDED.embedding, metadata = EXCLUDED.metadata, updated_at = NOW()"
	describeCatalogSQL   = "SELECT namespace, COUNT(*) FROM catalog_items GROUP BY namespace ORDER BY namespace"
)

func TestCatalogIndex_Upsert(t *testing.T) {
	entry := domain.IndexEntry{
		ID:       "3f2a.jpg",
		Vector:   domain.EmbeddingVector{0.6, 0.8},
		Metadata: domain.Metadata{"category": "Sofas"},
	}

	tests := map[string]struct {
		entry       domain.IndexEntry
		expect      func(sqlmock.Sqlmock)
		expectedErr bool
	}{
		"success-default-namespace": {
			entry: entry,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(upsertCatalogItemSQL).
					WithArgs(
						domain.DefaultIndexNamespace,
						"3f2a.jpg",
						pgvector.NewVector([]float32{0.6, 0.8}),
						[]byte(`{"category":"Sofas"}`),
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"nil-metadata-stored-as-empty-object": {
			entry: domain.IndexEntry{ID: "a.png", Namespace: "other", Vector: domain.EmbeddingVector{1, 0}},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(upsertCatalogItemSQL).
					WithArgs("other", "a.png", pgvector.NewVector([]float32{1, 0}), []byte(`{}`)).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"dimension-mismatch": {
			entry:       domain.IndexEntry{ID: "a.png", Vector: domain.EmbeddingVector{1, 0, 0}},
			expect:      func(m sqlmock.Sqlmock) {},
			expectedErr: true,
		},
		"db-error": {
			entry: entry,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(upsertCatalogItemSQL).
					WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnError(errors.New("db error"))
			},
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			index := NewCatalogIndex(db, 2, 0)
			err = index.Upsert(context.Background(), tt.entry)
			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCatalogIndex_Query(t *testing.T) {
	vector := domain.EmbeddingVector{0.6, 0.8}
	columns := []string{"id", "score", "metadata"}

	tests := map[string]struct {
		query           domain.IndexQuery
		expect          func(sqlmock.Sqlmock)
		expectedMatches []domain.IndexMatch
		expectedErr     error
	}{
		"with-category-filter": {
			query: domain.IndexQuery{
				Vector:          vector,
				TopK:            2,
				Filter:          domain.MetadataFilter{"category": "Sofas"},
				IncludeMetadata: true,
			},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, 1 - (embedding <=> $1) AS score, metadata FROM catalog_items WHERE namespace = $2 AND metadata @> $3 ORDER BY score DESC, seq ASC LIMIT 2").
					WithArgs(pgvector.NewVector([]float32{0.6, 0.8}), domain.DefaultIndexNamespace, []byte(`{"category":"Sofas"}`)).
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow("a.jpg", 0.98, []byte(`{"category":"Sofas","image_url":"https://cdn/a.jpg"}`)).
						AddRow("b.jpg", 0.71, []byte(`{"category":"Sofas","price":120}`)))
			},
			expectedMatches: []domain.IndexMatch{
				{ID: "a.jpg", Score: 0.98, Metadata: domain.Metadata{"category": "Sofas", "image_url": "https://cdn/a.jpg"}},
				{ID: "b.jpg", Score: 0.71, Metadata: domain.Metadata{"category": "Sofas", "price": 120.0}},
			},
		},
		"top-k-clamped-and-metadata-omitted": {
			query: domain.IndexQuery{Vector: vector, TopK: 500},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, 1 - (embedding <=> $1) AS score, metadata FROM catalog_items WHERE namespace = $2 ORDER BY score DESC, seq ASC LIMIT 100").
					WithArgs(pgvector.NewVector([]float32{0.6, 0.8}), domain.DefaultIndexNamespace).
					WillReturnRows(sqlmock.NewRows(columns).AddRow("a.jpg", 1.0, []byte(`{"category":"Rugs"}`)))
			},
			expectedMatches: []domain.IndexMatch{{ID: "a.jpg", Score: 1.0}},
		},
		"no-rows": {
			query: domain.IndexQuery{Vector: vector, TopK: 0},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, 1 - (embedding <=> $1) AS score, metadata FROM catalog_items WHERE namespace = $2 ORDER BY score DESC, seq ASC LIMIT 1").
					WithArgs(pgvector.NewVector([]float32{0.6, 0.8}), domain.DefaultIndexNamespace).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expectedMatches: []domain.IndexMatch{},
		},
		"filter-key-not-allowed": {
			query:       domain.IndexQuery{Vector: vector, TopK: 5, Filter: domain.MetadataFilter{"image_url": "x"}},
			expect:      func(m sqlmock.Sqlmock) {},
			expectedErr: domain.NewValidationErr(`metadata field "image_url" is not filterable`),
		},
		"dimension-mismatch": {
			query:       domain.IndexQuery{Vector: domain.EmbeddingVector{1}, TopK: 5},
			expect:      func(m sqlmock.Sqlmock) {},
			expectedErr: domain.NewValidationErr("vector dimension 1 does not match index dimension 2"),
		},
		"empty-vector": {
			query:       domain.IndexQuery{TopK: 5},
			expect:      func(m sqlmock.Sqlmock) {},
			expectedErr: domain.NewValidationErr("query vector must not be empty"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			index := NewCatalogIndex(db, 2, 0)
			got, err := index.Query(context.Background(), tt.query)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedMatches, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCatalogIndex_Query_DBError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectQuery("SELECT id, 1 - (embedding <=> $1) AS score, metadata FROM catalog_items WHERE namespace = $2 ORDER BY score DESC, seq ASC LIMIT 5").
		WithArgs(sqlmock.AnyArg(), domain.DefaultIndexNamespace).
		WillReturnError(errors.New("db error"))

	index := NewCatalogIndex(db, 0, 0)
	got, err := index.Query(context.Background(), domain.IndexQuery{Vector: domain.EmbeddingVector{1}, TopK: 5})
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogIndex_Describe(t *testing.T) {
	tests := map[string]struct {
		capacity      int
		expect        func(sqlmock.Sqlmock)
		expectedStats domain.IndexStats
		expectErr     bool
	}{
		"with-capacity": {
			capacity: 100,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(describeCatalogSQL).
					WillReturnRows(sqlmock.NewRows([]string{"namespace", "count"}).
						AddRow("__default__", 20).
						AddRow("staging", 5))
			},
			expectedStats: domain.IndexStats{
				TotalVectorCount: 25,
				Dimension:        2,
				IndexFullness:    0.25,
				Namespaces:       map[string]int{"__default__": 20, "staging": 5},
			},
		},
		"empty-index-without-capacity": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(describeCatalogSQL).
					WillReturnRows(sqlmock.NewRows([]string{"namespace", "count"}))
			},
			expectedStats: domain.IndexStats{
				Dimension:  2,
				Namespaces: map[string]int{},
			},
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(describeCatalogSQL).WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			index := NewCatalogIndex(db, 2, tt.capacity)
			got, err := index.Describe(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStats, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitCatalogIndex_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	embedder := domain_mocks.NewMockImageEmbedder(t)
	embedder.EXPECT().Dimension().Return(1024)

	init := InitCatalogIndex{DB: &sql.DB{}, Embedder: embedder, Backend: BackendName, Capacity: 1000}
	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	index, err := depend.Resolve[domain.VectorIndex]()
	assert.NoError(t, err)
	assert.Equal(t, 1024, index.(CatalogIndex).dimension)
}

func TestInitCatalogIndex_Initialize_OtherBackend(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	init := InitCatalogIndex{Backend: "memory"}
	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.VectorIndex]()
	assert.Error(t, err)
}
