// Package ubl construye la representación XML (UBL 2.1) de una factura.
package ubl

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/ucarion/c14n"

	appbilling "github.com/jhoicas/Facturacion-api/internal/application/billing"
	domainbilling "github.com/jhoicas/Facturacion-api/internal/domain/billing"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// Namespaces oficiales UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

const (
	ublVersion      = "2.1"
	invoiceTypeCode = "01" // factura de venta
	taxSchemeID     = "IVA"
)

var _ appbilling.InvoiceXMLBuilder = (*XMLBuilderService)(nil)

// XMLBuilderService construye el XML UBL de la factura y lo devuelve canonicalizado (C14N),
// de modo que la misma factura produce siempre los mismos bytes.
type XMLBuilderService struct {
	currency string
}

// NewXMLBuilderService crea el servicio. currency es el código ISO 4217 de los montos.
func NewXMLBuilderService(currency string) *XMLBuilderService {
	if currency == "" {
		currency = "USD"
	}
	return &XMLBuilderService{currency: currency}
}

// Build genera el documento Invoice.
func (s *XMLBuilderService) Build(inv *entity.Invoice) ([]byte, error) {
	if inv == nil {
		return nil, fmt.Errorf("ubl: factura nula")
	}
	doc := etree.NewDocument()
	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	cbc(root, "UBLVersionID", ublVersion)
	cbc(root, "ID", inv.ID)
	cbc(root, "IssueDate", inv.CreatedAt.Format("2006-01-02"))
	cbc(root, "IssueTime", inv.CreatedAt.Format("15:04:05Z07:00"))
	cbc(root, "InvoiceTypeCode", invoiceTypeCode)
	cbc(root, "Note", string(inv.Status))
	cbc(root, "DocumentCurrencyCode", s.currency)
	cbc(root, "LineCountNumeric", strconv.Itoa(len(inv.Products)))

	s.writeCustomer(root, inv.Client)
	s.writeTaxTotal(root, inv)
	s.writeMonetaryTotal(root, inv)
	for i, p := range inv.Products {
		s.writeLine(root, i+1, p)
	}

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("ubl: serializar XML: %w", err)
	}
	return canonicalizeXML(raw)
}

// writeCustomer cac:AccountingCustomerParty con los datos del cliente.
func (s *XMLBuilderService) writeCustomer(root *etree.Element, client entity.Client) {
	party := cac(cac(root, "AccountingCustomerParty"), "Party")
	id := cbc(cac(party, "PartyIdentification"), "ID", client.Cedula)
	id.CreateAttr("schemeName", "cedula")
	cbc(cac(party, "PartyName"), "Name", client.Name)
	cbc(cac(cac(party, "PostalAddress"), "AddressLine"), "Line", client.Address)
	cbc(cac(party, "Contact"), "ElectronicMail", client.Email)
}

// writeTaxTotal cac:TaxTotal con un único subtotal de IVA.
func (s *XMLBuilderService) writeTaxTotal(root *etree.Element, inv *entity.Invoice) {
	subtotal := domainbilling.CalculateSubtotal(inv.Products)
	tax := domainbilling.CalculateTax(inv.Products, inv.IVARate)

	taxTotal := cac(root, "TaxTotal")
	s.amount(taxTotal, "TaxAmount", tax)
	taxSub := cac(taxTotal, "TaxSubtotal")
	s.amount(taxSub, "TaxableAmount", subtotal)
	s.amount(taxSub, "TaxAmount", tax)
	category := cac(taxSub, "TaxCategory")
	cbc(category, "Percent", inv.IVARate.String())
	cbc(cac(category, "TaxScheme"), "ID", taxSchemeID)
}

// writeMonetaryTotal cac:LegalMonetaryTotal. PrepaidAmount = lo ya abonado; PayableAmount = saldo.
func (s *XMLBuilderService) writeMonetaryTotal(root *etree.Element, inv *entity.Invoice) {
	total := cac(root, "LegalMonetaryTotal")
	s.amount(total, "LineExtensionAmount", domainbilling.CalculateSubtotal(inv.Products))
	s.amount(total, "TaxInclusiveAmount", inv.Total)
	s.amount(total, "PrepaidAmount", inv.Total.Sub(inv.RemainingBalance))
	s.amount(total, "PayableAmount", inv.RemainingBalance)
}

// writeLine cac:InvoiceLine por producto.
func (s *XMLBuilderService) writeLine(root *etree.Element, n int, p entity.Product) {
	line := cac(root, "InvoiceLine")
	cbc(line, "ID", strconv.Itoa(n))
	qty := cbc(line, "InvoicedQuantity", strconv.FormatInt(p.Quantity, 10))
	qty.CreateAttr("unitCode", "94") // unidad
	s.amount(line, "LineExtensionAmount", p.LineTotal())
	cbc(cac(line, "Item"), "Description", p.Name)
	s.amount(cac(line, "Price"), "PriceAmount", p.Price)
}

func (s *XMLBuilderService) amount(parent *etree.Element, name string, v decimal.Decimal) *etree.Element {
	el := cbc(parent, name, v.StringFixed(2))
	el.CreateAttr("currencyID", s.currency)
	return el
}

func cbc(parent *etree.Element, name, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + name)
	el.SetText(value)
	return el
}

func cac(parent *etree.Element, name string) *etree.Element {
	return parent.CreateElement("cac:" + name)
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	out, err := c14n.Canonicalize(dec)
	if err != nil {
		return nil, fmt.Errorf("ubl: canonicalizar XML: %w", err)
	}
	return out, nil
}
