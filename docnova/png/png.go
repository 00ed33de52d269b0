// Package png renders share-link QR codes for invoice detail pages.
package png

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

func Qr(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, 300)
}

// ShareLink builds the browser URL of an invoice detail page.
func ShareLink(appBaseURL, invoiceID string) string {
	return fmt.Sprintf("%s/invoices/%s", strings.TrimRight(appBaseURL, "/"), invoiceID)
}

// InvoiceQr encodes the detail-page link of one invoice.
func InvoiceQr(appBaseURL, invoiceID string) ([]byte, error) {
	return Qr(ShareLink(appBaseURL, invoiceID))
}
