package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DocumentType string

const (
	Outgoing DocumentType = "OUTGOING"
	Incoming DocumentType = "INCOMING"
)

type InvoiceStatus string

const (
	SavedAsUBL     InvoiceStatus = "SAVED_AS_UBL"
	SavedAsPDF     InvoiceStatus = "SAVED_AS_PDF"
	SavedAsZugferd InvoiceStatus = "SAVED_AS_ZUGFERD"
)

type InvoiceType string

const (
	XRechnung InvoiceType = "XRECHNUNG"
	PDF       InvoiceType = "PDF"
	Zugferd   InvoiceType = "ZUGFERD"
)

type PaymentStatus string

const (
	PaymentSent PaymentStatus = "SENT"
	PaymentLate PaymentStatus = "LATE"
)

// InvoiceStatuses are all statuses the search endpoint accepts as a filter.
var InvoiceStatuses = []InvoiceStatus{SavedAsUBL, SavedAsPDF, SavedAsZugferd}

var InvoiceTypes = []InvoiceType{XRechnung, PDF, Zugferd}

var PaymentStatuses = []PaymentStatus{PaymentSent, PaymentLate}

type PaymentDetails struct {
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
}

// InvoiceRecord is one invoice as returned by the search endpoint. Records are
// immutable snapshots, nothing in this module mutates them after decoding.
type InvoiceRecord struct {
	ID                  string          `json:"id"`
	InvoiceNumber       string          `json:"invoiceNumber"`
	IssueDate           time.Time       `json:"issueDate"`
	DocumentType        DocumentType    `json:"documentType"`
	CreatedTime         time.Time       `json:"createdTime"`
	DueDate             time.Time       `json:"dueDate"`
	SupplierName        string          `json:"supplierName"`
	SupplierVat         string          `json:"supplierVat"`
	SupplierID          string          `json:"supplierId"`
	CustomerName        string          `json:"customerName"`
	CustomerVat         string          `json:"customerVat"`
	CustomerID          string          `json:"customerId"`
	SupplierCountryCode string          `json:"supplierCountryCode"`
	CustomerCountryCode string          `json:"customerCountryCode"`
	TaxInclusiveAmount  decimal.Decimal `json:"taxInclusiveAmount"`
	TaxExclusiveAmount  decimal.Decimal `json:"taxExclusiveAmount"`
	Currency            string          `json:"currency"`
	Type                InvoiceType     `json:"type"`
	Status              InvoiceStatus   `json:"status"`
	DeliveryDate        time.Time       `json:"deliveryDate"`
	ErrorMessage        string          `json:"errorMessage,omitempty"`
	PaymentDetails      *PaymentDetails `json:"paymentDetails,omitempty"`
}

// Pageable is the server-reported page position inside a search response.
type Pageable struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// InvoicePage is one page of search results.
type InvoicePage struct {
	Content       []InvoiceRecord `json:"content"`
	Pageable      *Pageable       `json:"pageable"`
	TotalElements int64           `json:"totalElements"`
}

// SearchResponse is the body of POST /invoice/search. The invoices key may be
// absent entirely, consumers must treat a nil page as an empty result.
type SearchResponse struct {
	Invoices *InvoicePage `json:"invoices"`
}
