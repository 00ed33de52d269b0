package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docnova/go-docnova-client/docnova/model"
)

func TestSearch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/invoice/search", r.URL.Path)
		require.Equal(t, "tok", r.Header.Get("R-Auth"))

		var q model.SearchQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		assert.Equal(t, model.Outgoing, q.DocumentType)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"invoices": {
				"content": [
					{"id":"a","invoiceNumber":"INV-1","currency":"EUR","taxInclusiveAmount":121.5},
					{"id":"b","invoiceNumber":"INV-2","currency":"TRY","taxInclusiveAmount":250.50}
				],
				"pageable": {"pageNumber":0,"pageSize":20},
				"totalElements": 2
			}
		}`))
	}))
	defer srv.Close()

	svc := NewInvoiceService(New(Dev, WithBaseURL(srv.URL)))
	page, err := svc.Search(context.Background(), model.SearchQuery{DocumentType: model.Outgoing}, "tok")

	require.NoError(t, err)
	require.NotNil(t, page)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "INV-1", page.Content[0].InvoiceNumber)
	assert.Equal(t, "121.5", page.Content[0].TaxInclusiveAmount.String())
	assert.Equal(t, int64(2), page.TotalElements)
	assert.Equal(t, 0, page.Pageable.PageNumber)
}

func TestSearch_NoInvoicesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userMessage":"ok"}`))
	}))
	defer srv.Close()

	svc := NewInvoiceService(New(Dev, WithBaseURL(srv.URL)))
	page, err := svc.Search(context.Background(), model.SearchQuery{}, "tok")

	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestSearch_FailureIsSearchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"down"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewInvoiceService(New(Dev, WithBaseURL(srv.URL)))
	_, err := svc.Search(context.Background(), model.SearchQuery{}, "tok")

	var se *SearchError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, CategoryUnavailable, se.Category)
}

func TestSearchQuery_NullsAreExplicit(t *testing.T) {
	data, err := json.Marshal(model.SearchQuery{})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"type":null`)
	assert.Contains(t, string(data), `"status":null`)
	assert.Contains(t, string(data), `"paymentStatus":null`)
	assert.Contains(t, string(data), `"referenceDocument":""`)
}
