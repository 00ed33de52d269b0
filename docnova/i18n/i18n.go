// Package i18n holds the message and display-name catalogs for the two
// supported locales. Turkish is the default, English the fallback.
package i18n

import (
	"fmt"

	"github.com/go-faster/errors"

	"github.com/docnova/go-docnova-client/docnova/api"
	"github.com/docnova/go-docnova-client/docnova/model"
)

type Locale string

const (
	TR Locale = "tr"
	EN Locale = "en"

	Default  = TR
	Fallback = EN
)

// ParseLocale normalizes a locale tag, anything unknown falls back to the
// default. Locale selection itself is an external concern.
func ParseLocale(tag string) Locale {
	switch Locale(tag) {
	case TR:
		return TR
	case EN:
		return EN
	default:
		return Default
	}
}

var categoryMessages = map[api.Category]map[Locale]string{
	api.CategoryInvalidInput: {
		TR: "Geçersiz istek. Lütfen bilgilerinizi kontrol edin.",
		EN: "Invalid request. Please check your input.",
	},
	api.CategorySessionExpired: {
		TR: "Oturum süreniz doldu. Lütfen tekrar giriş yapın.",
		EN: "Your session has expired. Please sign in again.",
	},
	api.CategoryForbidden: {
		TR: "Bu işlem için yetkiniz bulunmuyor.",
		EN: "You are not authorized for this operation.",
	},
	api.CategoryNotFound: {
		TR: "İstenen kaynak bulunamadı.",
		EN: "The requested resource was not found.",
	},
	api.CategoryServerError: {
		TR: "Sunucu hatası. Lütfen daha sonra tekrar deneyin.",
		EN: "Server error. Please try again later.",
	},
	api.CategoryUnavailable: {
		TR: "Servis geçici olarak kullanılamıyor. Lütfen daha sonra tekrar deneyin.",
		EN: "The service is temporarily unavailable. Please try again later.",
	},
	api.CategoryTimeout: {
		TR: "İstek zaman aşımına uğradı. Lütfen tekrar deneyin.",
		EN: "The request timed out. Please try again.",
	},
	api.CategoryConnection: {
		TR: "Bağlantı hatası. İnternet bağlantınızı kontrol edin.",
		EN: "Connection error. Please check your internet connection.",
	},
	api.CategoryGeneric: {
		TR: "Bir hata oluştu. Lütfen tekrar deneyin.",
		EN: "An error occurred. Please try again.",
	},
}

var httpStatusMessage = map[Locale]string{
	TR: "HTTP %d hatası oluştu.",
	EN: "HTTP error %d occurred.",
}

// Localizer resolves categories and errors to user-facing strings for one
// locale.
type Localizer struct {
	locale Locale
}

func New(locale Locale) *Localizer {
	return &Localizer{locale: locale}
}

func (l *Localizer) Locale() Locale { return l.locale }

// Category returns the message for a classification.
func (l *Localizer) Category(c api.Category) string {
	msgs, ok := categoryMessages[c]
	if !ok {
		msgs = categoryMessages[api.CategoryGeneric]
	}
	if m, ok := msgs[l.locale]; ok {
		return m
	}
	return msgs[Fallback]
}

// MessageFor turns any error from the API layer into the message the view
// surfaces verbatim. A generic classification prefers the server-provided
// message when one exists.
func (l *Localizer) MessageFor(err error) string {
	var ve *api.ValidationError
	if errors.As(err, &ve) {
		return l.Category(api.CategoryInvalidInput)
	}

	re := requestError(err)
	if re == nil {
		return l.Category(api.CategoryGeneric)
	}

	if re.Category == api.CategoryGeneric {
		if re.ServerMessage != "" {
			return re.ServerMessage
		}
		if re.StatusCode != 0 {
			return fmt.Sprintf(l.lookup(httpStatusMessage), re.StatusCode)
		}
	}
	return l.Category(re.Category)
}

func (l *Localizer) lookup(msgs map[Locale]string) string {
	if m, ok := msgs[l.locale]; ok {
		return m
	}
	return msgs[Fallback]
}

func requestError(err error) *api.RequestError {
	var (
		ae *api.AuthError
		se *api.SearchError
		re *api.RequestError
	)
	switch {
	case errors.As(err, &ae):
		return &ae.RequestError
	case errors.As(err, &se):
		return &se.RequestError
	case errors.As(err, &re):
		return re
	}
	return nil
}

var simpleMessages = map[string]map[Locale]string{
	"login_success":   {TR: "Giriş başarılı", EN: "Signed in"},
	"invoices_loaded": {TR: "Faturalar başarıyla yüklendi", EN: "Invoices loaded"},
	"not_logged_in":   {TR: "Giriş yapmalısınız.", EN: "You must sign in first."},
	"active_filters":  {TR: "Aktif Filtreler", EN: "Active Filters"},
	"no_data":         {TR: "Fatura bulunamadı", EN: "No invoices found"},
}

var filterLabels = map[string]map[Locale]string{
	"dateRange":           {TR: "Tarih", EN: "Date"},
	"documentType":        {TR: "Belge Türü", EN: "Document Type"},
	"status":              {TR: "Durum", EN: "Status"},
	"type":                {TR: "Fatura Türü", EN: "Invoice Type"},
	"paymentStatus":       {TR: "Ödeme Durumu", EN: "Payment Status"},
	"customerCountryCode": {TR: "Müşteri Ülkesi", EN: "Customer Country"},
	"supplierCountryCode": {TR: "Tedarikçi Ülkesi", EN: "Supplier Country"},
	"currency":            {TR: "Para Birimi", EN: "Currency"},
}

// FilterLabel names a filter chip, falling back to the raw key for anything
// unknown.
func (l *Localizer) FilterLabel(name string) string {
	msgs, ok := filterLabels[name]
	if !ok {
		return name
	}
	return l.lookup(msgs)
}

func (l *Localizer) LoginSuccess() string       { return l.lookup(simpleMessages["login_success"]) }
func (l *Localizer) InvoicesLoaded() string     { return l.lookup(simpleMessages["invoices_loaded"]) }
func (l *Localizer) NotLoggedIn() string        { return l.lookup(simpleMessages["not_logged_in"]) }
func (l *Localizer) ActiveFiltersLabel() string { return l.lookup(simpleMessages["active_filters"]) }
func (l *Localizer) NoData() string             { return l.lookup(simpleMessages["no_data"]) }

var statusDisplay = map[model.InvoiceStatus]map[Locale]string{
	model.SavedAsUBL:     {EN: "Saved as UBL", TR: "UBL Olarak Kaydedildi"},
	model.SavedAsPDF:     {EN: "Saved as PDF", TR: "PDF Olarak Kaydedildi"},
	model.SavedAsZugferd: {EN: "Saved as ZUGFeRD", TR: "ZUGFeRD Olarak Kaydedildi"},
}

var paymentStatusDisplay = map[model.PaymentStatus]map[Locale]string{
	model.PaymentSent: {EN: "Sent", TR: "Gönderildi"},
	model.PaymentLate: {EN: "Late", TR: "Gecikmiş"},
}

type country struct {
	name     map[Locale]string
	currency string
}

var countries = map[string]country{
	"BE": {name: map[Locale]string{EN: "Belgium", TR: "Belçika"}, currency: "EUR"},
	"TR": {name: map[Locale]string{EN: "Turkey", TR: "Türkiye"}, currency: "TRY"},
	"FR": {name: map[Locale]string{EN: "France", TR: "Fransa"}, currency: "EUR"},
	"DE": {name: map[Locale]string{EN: "Germany", TR: "Almanya"}, currency: "EUR"},
}

// CurrencyFor returns the home currency of a known country code.
func CurrencyFor(code string) (string, bool) {
	c, ok := countries[code]
	if !ok {
		return "", false
	}
	return c.currency, true
}

// CountryOptions are the country codes offered as filter values.
var CountryOptions = []string{"BE", "TR", "FR", "DE"}

var Currencies = []string{"EUR", "TRY"}

// StatusDisplay renders an invoice status for the locale, "-" when absent and
// the raw value when unknown.
func (l *Localizer) StatusDisplay(s model.InvoiceStatus) string {
	if s == "" {
		return "-"
	}
	msgs, ok := statusDisplay[s]
	if !ok {
		return string(s)
	}
	return l.lookup(msgs)
}

func (l *Localizer) PaymentStatusDisplay(s model.PaymentStatus) string {
	if s == "" {
		return "-"
	}
	msgs, ok := paymentStatusDisplay[s]
	if !ok {
		return string(s)
	}
	return l.lookup(msgs)
}

func (l *Localizer) CountryName(code string) string {
	if code == "" {
		return "-"
	}
	c, ok := countries[code]
	if !ok {
		return code
	}
	return l.lookup(c.name)
}
