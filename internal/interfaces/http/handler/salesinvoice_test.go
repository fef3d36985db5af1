package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesInvoiceAdd(t *testing.T) {
	engine, store := newTestEngine(t)

	w := doRequest(engine, http.MethodPost, "/customer.nv?method=add", customerXML("1234567-8", "Acme"))
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(engine, http.MethodPost, "/salesinvoice.nv?method=add", invoiceXML("1"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<InsertedDataIdentifier>1</InsertedDataIdentifier>")

	invoice, err := store.GetSalesInvoice("1")
	require.NoError(t, err)
	id, err := invoice.CustomerID()
	require.NoError(t, err)
	assert.Equal(t, "1", id)
}

func TestSalesInvoiceAddUnsupportedMethod(t *testing.T) {
	engine, store := newTestEngine(t)

	for _, target := range []string{"/salesinvoice.nv", "/salesinvoice.nv?method=edit"} {
		w := doRequest(engine, http.MethodPost, target, invoiceXML("1"))
		assert.Equal(t, http.StatusNoContent, w.Code, "target %s", target)
		assert.Empty(t, w.Body.String())
	}

	_, err := store.GetSalesInvoice("1")
	assert.Error(t, err)
}

func TestSalesInvoiceGet(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doRequest(engine, http.MethodPost, "/customer.nv?method=add", customerXML("1234567-8", "Acme"))
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(engine, http.MethodPost, "/salesinvoice.nv?method=add", invoiceXML("1"))
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(engine, http.MethodGet, "/getsalesinvoice.nv?netvisorkey=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html", w.Header().Get("Content-Type"))

	out := w.Body.String()
	assert.Contains(t, out, "<SalesInvoiceNetvisorKey>1</SalesInvoiceNetvisorKey>")
	assert.Contains(t, out, "<InvoicingCustomerName>Acme</InvoicingCustomerName>")
	assert.Contains(t, out, "<InvoicingCustomerNetvisorKey>1</InvoicingCustomerNetvisorKey>")
	assert.Contains(t, out, "<SalesInvoiceDate>2026-08-01</SalesInvoiceDate>")
	assert.Contains(t, out, "<InvoiceStatus>OPEN</InvoiceStatus>")
	assert.NotContains(t, out, "LastSentInvoicePDFBase64Data")
}

func TestSalesInvoiceGetWithPDF(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doRequest(engine, http.MethodPost, "/customer.nv?method=add", customerXML("1234567-8", "Acme"))
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(engine, http.MethodPost, "/salesinvoice.nv?method=add", invoiceXML("1"))
	require.Equal(t, http.StatusOK, w.Code)

	// Any non-empty value requests the embedded document
	for _, q := range []string{"true", "1", "no"} {
		w = doRequest(engine, http.MethodGet, "/getsalesinvoice.nv?netvisorkey=1&pdfimage="+q, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<LastSentInvoicePDFBase64Data>", "pdfimage=%s", q)
	}

	w = doRequest(engine, http.MethodGet, "/getsalesinvoice.nv?netvisorkey=1&pdfimage=", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "LastSentInvoicePDFBase64Data")
}

func TestSalesInvoiceGetUnknownKey(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doRequest(engine, http.MethodGet, "/getsalesinvoice.nv?netvisorkey=99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestSalesInvoiceGetBrokenReference(t *testing.T) {
	engine, _ := newTestEngine(t)

	// Invoice pointing at a customer that was never created
	w := doRequest(engine, http.MethodPost, "/salesinvoice.nv?method=add", invoiceXML("42"))
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(engine, http.MethodGet, "/getsalesinvoice.nv?netvisorkey=1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
