package model

import (
	"time"

	"github.com/google/uuid"
)

// SearchQuery is the fully populated request body of POST /invoice/search.
// Optional filters are pointers so that an unset filter is serialized as an
// explicit null, the endpoint expects every field to be present.
type SearchQuery struct {
	CompanyID         uuid.UUID      `json:"companyId"`
	DocumentType      DocumentType   `json:"documentType"`
	StartDate         time.Time      `json:"startDate"`
	EndDate           time.Time      `json:"endDate"`
	Page              int            `json:"page"`
	Size              int            `json:"size"`
	ReferenceDocument string         `json:"referenceDocument"`
	Type              *InvoiceType   `json:"type"`
	Status            *InvoiceStatus `json:"status"`
	PaymentStatus     *PaymentStatus `json:"paymentStatus"`
	IsDeleted         bool           `json:"isDeleted"`
}
