package records

// SalesInvoice is a typed view over a stored sales-invoice field mapping.
type SalesInvoice struct {
	fields *FieldMap
}

// SalesInvoiceFromFields wraps a stored sales-invoice field mapping.
func SalesInvoiceFromFields(fields *FieldMap) SalesInvoice {
	return SalesInvoice{fields: fields}
}

// Fields returns the underlying field mapping.
func (s SalesInvoice) Fields() *FieldMap {
	return s.fields
}

// CustomerID extracts the referenced customer id from the nested
// invoicingcustomeridentifier element. The reference is validated lazily:
// this only reports ErrMissingField when a response actually needs it.
func (s SalesInvoice) CustomerID() (string, error) {
	id := s.fields.Text("invoicingcustomeridentifier")
	if id == "" {
		return "", ErrMissingField
	}
	return id, nil
}

// Date returns the invoice date, or "" when absent.
func (s SalesInvoice) Date() string {
	return s.fields.Text("salesinvoicedate")
}

// ValueDate returns the value date, or "" when absent.
func (s SalesInvoice) ValueDate() string {
	return s.fields.Text("salesinvoicevaluedate")
}

// DueDate returns the due date, or "" when absent.
func (s SalesInvoice) DueDate() string {
	return s.fields.Text("salesinvoiceduedate")
}

// ReferenceNumber returns the bank reference number, or "" when absent.
func (s SalesInvoice) ReferenceNumber() string {
	return s.fields.Text("salesinvoicereferencenumber")
}

// SellerIdentifier returns the seller identifier, or "" when absent.
func (s SalesInvoice) SellerIdentifier() string {
	return s.fields.Text("selleridentifier")
}

// Status returns the invoice status, defaulting to OPEN when the payload
// never carried one.
func (s SalesInvoice) Status() string {
	if _, ok := s.fields.Get("invoicestatus"); !ok {
		return "OPEN"
	}
	return s.fields.Text("invoicestatus")
}

// OurReference returns the our-reference text, or "" when absent.
func (s SalesInvoice) OurReference() string {
	return s.fields.Text("salesinvoiceourreference")
}

// YourReference returns the your-reference text, or "" when absent.
func (s SalesInvoice) YourReference() string {
	return s.fields.Text("salesinvoiceyourreference")
}
