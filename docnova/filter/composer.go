// Package filter translates form input into search queries and active filter
// sets, and applies the client-only filters to already-fetched pages.
package filter

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docnova/go-docnova-client/docnova/model"
)

// DefaultWindow is the trailing date range of the initial search.
const DefaultWindow = 30 * 24 * time.Hour

const (
	DefaultPage = 0
	DefaultSize = 20
)

// Name identifies one filter in the active set.
type Name string

const (
	FilterDateRange       Name = "dateRange"
	FilterDocumentType    Name = "documentType"
	FilterStatus          Name = "status"
	FilterType            Name = "type"
	FilterPaymentStatus   Name = "paymentStatus"
	FilterCustomerCountry Name = "customerCountryCode"
	FilterSupplierCountry Name = "supplierCountryCode"
	FilterCurrency        Name = "currency"
)

// ActiveFilterSet maps the non-default filters of the last submission to their
// displayed values. Owned by the view, regenerated on every submission.
type ActiveFilterSet map[Name]string

// Remove drops exactly one filter from the set. Removal does not re-issue the
// search, the displayed state just narrows differently from then on.
func (f ActiveFilterSet) Remove(name Name) {
	delete(f, name)
}

func (f ActiveFilterSet) Has(name Name) bool {
	_, ok := f[name]
	return ok
}

// DateRange is an inclusive filter window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// FormValues is one submission of the filter form. Zero values mean "not
// entered": the document type keeps its previous value, optional filters mean
// no filter.
type FormValues struct {
	DateRange           *DateRange
	DocumentType        model.DocumentType
	Status              model.InvoiceStatus
	Type                model.InvoiceType
	PaymentStatus       model.PaymentStatus
	CustomerCountryCode string
	SupplierCountryCode string
	Currency            string
}

// DefaultQuery is the initial search: fixed company, outgoing documents over
// the trailing 30 days, first page of 20.
func DefaultQuery(companyID uuid.UUID, now time.Time) model.SearchQuery {
	return model.SearchQuery{
		CompanyID:         companyID,
		DocumentType:      model.Outgoing,
		StartDate:         now.Add(-DefaultWindow),
		EndDate:           now,
		Page:              DefaultPage,
		Size:              DefaultSize,
		ReferenceDocument: "",
		IsDeleted:         false,
	}
}

// Compose merges one form submission into the previous query and derives the
// active filter set. A new submission always resets the page index, the page
// size is retained. Country and currency filters never reach the server, they
// only enter the active set for the client-side pass.
func Compose(prev model.SearchQuery, v FormValues) (model.SearchQuery, ActiveFilterSet) {
	q := prev

	if v.DateRange != nil {
		q.StartDate = v.DateRange.Start
		q.EndDate = v.DateRange.End
	}
	if v.DocumentType != "" {
		q.DocumentType = v.DocumentType
	}
	q.Status = optional(v.Status)
	q.Type = optional(v.Type)
	q.PaymentStatus = optional(v.PaymentStatus)
	q.Page = DefaultPage

	active := ActiveFilterSet{}
	if v.DateRange != nil {
		active[FilterDateRange] = fmt.Sprintf("%s - %s",
			v.DateRange.Start.Format("02/01/06"), v.DateRange.End.Format("02/01/06"))
	}
	if v.DocumentType != "" && v.DocumentType != model.Outgoing {
		active[FilterDocumentType] = string(v.DocumentType)
	}
	if v.Status != "" {
		active[FilterStatus] = string(v.Status)
	}
	if v.Type != "" {
		active[FilterType] = string(v.Type)
	}
	if v.PaymentStatus != "" {
		active[FilterPaymentStatus] = string(v.PaymentStatus)
	}
	if v.CustomerCountryCode != "" {
		active[FilterCustomerCountry] = v.CustomerCountryCode
	}
	if v.SupplierCountryCode != "" {
		active[FilterSupplierCountry] = v.SupplierCountryCode
	}
	if v.Currency != "" {
		active[FilterCurrency] = v.Currency
	}

	return q, active
}

func optional[T ~string](v T) *T {
	if v == "" {
		return nil
	}
	return &v
}

// Clear restores the initial defaults and an empty filter set. The caller
// re-issues the initial search afterwards.
func Clear(companyID uuid.UUID, now time.Time) (model.SearchQuery, ActiveFilterSet) {
	return DefaultQuery(companyID, now), ActiveFilterSet{}
}

// RemoveFilter drops one filter from both the set and its query contribution.
// Dates, pagination and every other filter stay untouched. No search is
// re-issued.
func RemoveFilter(q model.SearchQuery, active ActiveFilterSet, name Name) (model.SearchQuery, ActiveFilterSet) {
	next := ActiveFilterSet{}
	for k, v := range active {
		if k != name {
			next[k] = v
		}
	}

	switch name {
	case FilterDocumentType:
		q.DocumentType = model.Outgoing
	case FilterStatus:
		q.Status = nil
	case FilterType:
		q.Type = nil
	case FilterPaymentStatus:
		q.PaymentStatus = nil
	}
	return q, next
}

// WithPage composes a query identical to the last submitted one except for the
// page position, for pagination changes in the results view.
func WithPage(prev model.SearchQuery, page, size int) model.SearchQuery {
	q := prev
	q.Page = page
	q.Size = size
	return q
}

// Apply runs the client-only pass over a fetched page. Filters are ANDed
// equality checks, server pagination metadata is unaffected.
func Apply(items []model.InvoiceRecord, active ActiveFilterSet) []model.InvoiceRecord {
	filtered := make([]model.InvoiceRecord, 0, len(items))
	for _, it := range items {
		if v, ok := active[FilterCustomerCountry]; ok && it.CustomerCountryCode != v {
			continue
		}
		if v, ok := active[FilterSupplierCountry]; ok && it.SupplierCountryCode != v {
			continue
		}
		if v, ok := active[FilterCurrency]; ok && it.Currency != v {
			continue
		}
		filtered = append(filtered, it)
	}
	return filtered
}
