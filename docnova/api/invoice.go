package api

import (
	"context"

	"github.com/go-faster/errors"
	log "github.com/sirupsen/logrus"

	"github.com/docnova/go-docnova-client/docnova/model"
)

type InvoiceService interface {
	// Search runs one page of an invoice search. A nil page with a nil error
	// means the server answered without an invoices key, callers treat that
	// as an empty result.
	Search(ctx context.Context, query model.SearchQuery, token string) (*model.InvoicePage, error)
}

type invoice struct {
	client Client
}

func NewInvoiceService(client Client) InvoiceService {
	return &invoice{client: client}
}

func (i *invoice) Search(ctx context.Context, query model.SearchQuery, token string) (*model.InvoicePage, error) {
	log.Debugf("searching invoices, documentType=%s page=%d size=%d", query.DocumentType, query.Page, query.Size)

	res := &model.SearchResponse{}
	if err := i.client.PostJSON(ctx, "/invoice/search", token, query, res); err != nil {
		var re *RequestError
		if errors.As(err, &re) {
			return nil, &SearchError{RequestError: *re}
		}
		return nil, errors.Wrap(err, "search invoices")
	}

	return res.Invoices, nil
}
