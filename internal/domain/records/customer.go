package records

// Customer is a typed view over a stored customer field mapping. The store
// keeps customers as opaque FieldMaps; this view exposes only the fields
// the wire codec reads.
type Customer struct {
	fields *FieldMap
}

// CustomerFromFields wraps a stored customer field mapping.
func CustomerFromFields(fields *FieldMap) Customer {
	return Customer{fields: fields}
}

// Fields returns the underlying field mapping.
func (c Customer) Fields() *FieldMap {
	return c.fields
}

// BaseInformation returns the customerbaseinformation block, or nil when the
// payload never carried one.
func (c Customer) BaseInformation() *FieldMap {
	return c.fields.Map("customerbaseinformation")
}

// BusinessID returns the business identifier from the base information
// block, or "" when absent.
func (c Customer) BusinessID() string {
	return c.BaseInformation().Text("externalidentifier")
}

// ExternalIdentifier extracts the business identifier from the base
// information block. Returns ErrMissingField when absent.
func (c Customer) ExternalIdentifier() (string, error) {
	id := c.BusinessID()
	if id == "" {
		return "", ErrMissingField
	}
	return id, nil
}

// Name returns the customer name, or "" when absent.
func (c Customer) Name() string {
	return c.BaseInformation().Text("name")
}

// Code returns the customer code, or "" when absent.
func (c Customer) Code() string {
	return c.BaseInformation().Text("code")
}

// NameExtension returns the invoicing name extension, or "" when absent.
func (c Customer) NameExtension() string {
	return c.BaseInformation().Text("invoicingcustomernameextension")
}

// StreetAddress returns the street address, or "" when absent.
func (c Customer) StreetAddress() string {
	return c.BaseInformation().Text("streetaddress")
}

// AdditionalAddressLine returns the additional address line, or "" when
// absent.
func (c Customer) AdditionalAddressLine() string {
	return c.BaseInformation().Text("additionaladdressline")
}

// PostNumber returns the postal code, or "" when absent.
func (c Customer) PostNumber() string {
	return c.BaseInformation().Text("postnumber")
}

// City returns the city, or "" when absent.
func (c Customer) City() string {
	return c.BaseInformation().Text("city")
}
