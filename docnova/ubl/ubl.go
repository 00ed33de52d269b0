// Package ubl renders a fetched invoice as a minimal UBL 2.1 document for
// export from the detail view.
package ubl

import (
	"time"

	"github.com/beevik/etree"
	"github.com/go-faster/errors"

	"github.com/docnova/go-docnova-client/docnova/model"
)

const (
	nsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	nsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	nsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	// commercial invoice
	invoiceTypeCode = "380"
)

// Marshal renders one invoice record. The record is a read model, fields the
// search endpoint did not fill are left out of the document.
func Marshal(inv model.InvoiceRecord) ([]byte, error) {
	if inv.InvoiceNumber == "" {
		return nil, errors.New("invoice has no number")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", nsInvoice)
	root.CreateAttr("xmlns:cac", nsCac)
	root.CreateAttr("xmlns:cbc", nsCbc)

	text(root, "cbc:UBLVersionID", "2.1")
	text(root, "cbc:ID", inv.InvoiceNumber)
	date(root, "cbc:IssueDate", inv.IssueDate)
	date(root, "cbc:DueDate", inv.DueDate)
	text(root, "cbc:InvoiceTypeCode", invoiceTypeCode)
	text(root, "cbc:DocumentCurrencyCode", inv.Currency)

	party(root, "cac:AccountingSupplierParty", inv.SupplierName, inv.SupplierVat, inv.SupplierCountryCode)
	party(root, "cac:AccountingCustomerParty", inv.CustomerName, inv.CustomerVat, inv.CustomerCountryCode)

	if !inv.DeliveryDate.IsZero() {
		delivery := root.CreateElement("cac:Delivery")
		date(delivery, "cbc:ActualDeliveryDate", inv.DeliveryDate)
	}

	total := root.CreateElement("cac:LegalMonetaryTotal")
	amount(total, "cbc:TaxExclusiveAmount", inv.TaxExclusiveAmount.String(), inv.Currency)
	amount(total, "cbc:TaxInclusiveAmount", inv.TaxInclusiveAmount.String(), inv.Currency)
	amount(total, "cbc:PayableAmount", inv.TaxInclusiveAmount.String(), inv.Currency)

	doc.Indent(2)
	return doc.WriteToBytes()
}

func text(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(tag).SetText(value)
}

func date(parent *etree.Element, tag string, t time.Time) {
	if t.IsZero() {
		return
	}
	parent.CreateElement(tag).SetText(t.Format("2006-01-02"))
}

func amount(parent *etree.Element, tag, value, currency string) {
	e := parent.CreateElement(tag)
	e.SetText(value)
	if currency != "" {
		e.CreateAttr("currencyID", currency)
	}
}

func party(parent *etree.Element, tag, name, vat, countryCode string) {
	if name == "" && vat == "" && countryCode == "" {
		return
	}
	p := parent.CreateElement(tag).CreateElement("cac:Party")
	if name != "" {
		p.CreateElement("cac:PartyName").CreateElement("cbc:Name").SetText(name)
	}
	if countryCode != "" {
		p.CreateElement("cac:PostalAddress").
			CreateElement("cac:Country").
			CreateElement("cbc:IdentificationCode").SetText(countryCode)
	}
	if vat != "" {
		p.CreateElement("cac:PartyTaxScheme").CreateElement("cbc:CompanyID").SetText(vat)
	}
}
