package wire

import (
	"encoding/base64"
	"fmt"
	"iter"
	"os"

	"github.com/beevik/etree"

	"github.com/nvmock/backend/internal/domain/records"
)

// timestampLayout matches the DD.MM.YYYY HH:MM:SS format of the real
// service's response envelopes.
const timestampLayout = "02.01.2006 15:04:05"

// Placeholder values for invoice fields the mock does not model. Fixed
// literals are part of the contract; client fixtures assert on them.
const (
	placeholderInvoiceNumber = "5000001"
	placeholderInvoiceAmount = "12345"
	invoiceCountryCode       = "FINLAND"
)

// Codec builds the outbound XML response documents. The base URL feeds the
// Uri elements of customer-list responses; the PDF path backs the optional
// embedded invoice image.
type Codec struct {
	baseURL string
	pdfPath string
	clock   Clock
}

// NewCodec creates a codec. A nil clock defaults to the system clock.
func NewCodec(baseURL, pdfPath string, clock Clock) *Codec {
	if clock == nil {
		clock = SystemClock()
	}
	return &Codec{baseURL: baseURL, pdfPath: pdfPath, clock: clock}
}

func (c *Codec) newResponse() (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	root := doc.CreateElement("Root")
	status := root.CreateElement("ResponseStatus")
	addText(status, "Status", "OK")
	addText(status, "TimeStamp", c.clock.Now().Format(timestampLayout))
	return doc, root
}

// addText appends a child element carrying the given text. Empty text
// yields a self-closing element, matching the original service's output.
func addText(parent *etree.Element, tag, text string) *etree.Element {
	el := parent.CreateElement(tag)
	if text != "" {
		el.SetText(text)
	}
	return el
}

// EncodeCustomerList builds the customerlist.nv response document. Entry
// order follows the sequence.
func (c *Codec) EncodeCustomerList(customers iter.Seq2[string, records.Customer]) ([]byte, error) {
	doc, root := c.newResponse()
	list := root.CreateElement("Customerlist")
	for id, customer := range customers {
		entry := list.CreateElement("Customer")
		addText(entry, "Netvisorkey", id)
		addText(entry, "Name", customer.Name())
		addText(entry, "Code", customer.Code())
		addText(entry, "OrganisationIdentifier", customer.BusinessID())
		addText(entry, "Uri", fmt.Sprintf("%s/getcustomer.nv?id=%s", c.baseURL, id))
	}
	doc.Indent(2)
	return doc.WriteToBytes()
}

// EncodeSalesInvoice builds the getsalesinvoice.nv response document for an
// invoice and its resolved customer. Fields the mock does not model are
// emitted as fixed placeholders. When withPDF is set, the configured local
// document is embedded base64-encoded; ErrResourceUnavailable when it
// cannot be read.
func (c *Codec) EncodeSalesInvoice(id string, invoice records.SalesInvoice, customerID string, customer records.Customer, withPDF bool) ([]byte, error) {
	doc, root := c.newResponse()
	inv := root.CreateElement("SalesInvoice")
	addText(inv, "SalesInvoiceNetvisorKey", id)
	addText(inv, "SalesInvoiceNumber", placeholderInvoiceNumber)
	addText(inv, "SalesInvoiceDate", invoice.Date())
	addText(inv, "SalesInvoiceValueDate", invoice.ValueDate())
	addText(inv, "SalesInvoiceDeliveryDate", invoice.Date())
	addText(inv, "SalesInvoiceDueDate", invoice.DueDate())
	addText(inv, "SalesInvoiceReferenceNumber", invoice.ReferenceNumber())
	addText(inv, "SalesInvoiceAmount", placeholderInvoiceAmount)
	seller := addText(inv, "SellerIdentifier", invoice.SellerIdentifier())
	seller.CreateAttr("type", "name")
	addText(inv, "InvoiceStatus", invoice.Status())
	addText(inv, "SalesInvoiceFreeTextBeforeLines", "")
	addText(inv, "SalesInvoiceFreeTextAfterLines", "")
	addText(inv, "SalesInvoiceOurReference", invoice.OurReference())
	addText(inv, "SalesInvoiceYourReference", invoice.YourReference())
	addText(inv, "SalesInvoicePrivateComment", "")
	addText(inv, "SalesInvoiceAgreementIdentifier", "")
	addText(inv, "InvoicingCustomerName", customer.Name())
	addText(inv, "InvoicingCustomerNameExtension", customer.NameExtension())
	addText(inv, "InvoicingCustomerNetvisorKey", customerID)
	addText(inv, "InvoicingCustomerOrganisationIdentifier", customer.BusinessID())
	addText(inv, "InvoicingCustomerAddressLine", customer.StreetAddress())
	addText(inv, "InvoicingCustomerAdditionalAddressLine", customer.AdditionalAddressLine())
	addText(inv, "InvoicingCustomerPostnumber", customer.PostNumber())
	addText(inv, "InvoicingCustomerTown", customer.City())
	addText(inv, "InvoicingCustomerCountryCode", invoiceCountryCode)
	addText(inv, "MatchPartialPaymentsByDefault", "No")

	if withPDF {
		pdf, err := c.encodeInvoicePDF()
		if err != nil {
			return nil, err
		}
		addText(inv, "LastSentInvoicePDFBase64Data", pdf)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// EncodeInsertedData builds the reply document returned after every create
// or edit operation.
func (c *Codec) EncodeInsertedData(id string) ([]byte, error) {
	doc, root := c.newResponse()
	replies := root.CreateElement("Replies")
	addText(replies, "InsertedDataIdentifier", id)
	return doc.WriteToBytes()
}

func (c *Codec) encodeInvoicePDF() (string, error) {
	data, err := os.ReadFile(c.pdfPath)
	if err != nil {
		return "", records.NewDomainError(records.ErrResourceUnavailable.Code,
			fmt.Sprintf("read invoice document: %v", err))
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
