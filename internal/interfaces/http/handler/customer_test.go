package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerAdd(t *testing.T) {
	engine, store := newTestEngine(t)

	w := doRequest(engine, http.MethodPost, "/customer.nv?method=add", customerXML("1234567-8", "Acme"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<InsertedDataIdentifier>1</InsertedDataIdentifier>")

	customer, err := store.GetCustomer("1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", customer.Name())
}

func TestCustomerAddMissingBusinessID(t *testing.T) {
	engine, _ := newTestEngine(t)

	body := `<root><customer><customerbaseinformation><name>Acme</name></customerbaseinformation></customer></root>`
	w := doRequest(engine, http.MethodPost, "/customer.nv?method=add", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Body.String())

	// A rejected create must not consume an identifier
	w = doRequest(engine, http.MethodPost, "/customer.nv?method=add", customerXML("1234567-8", "Acme"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<InsertedDataIdentifier>1</InsertedDataIdentifier>")
}

func TestCustomerAddMalformedXML(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doRequest(engine, http.MethodPost, "/customer.nv?method=add", "not xml at all")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerEdit(t *testing.T) {
	engine, store := newTestEngine(t)

	w := doRequest(engine, http.MethodPost, "/customer.nv?method=add", customerXML("1234567-8", "Acme"))
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(engine, http.MethodPost, "/customer.nv?method=edit&id=1", customerXML("1234567-8", "Acme Renamed"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<InsertedDataIdentifier>1</InsertedDataIdentifier>")

	customer, err := store.GetCustomer("1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed", customer.Name())
}

func TestCustomerEditWithoutID(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doRequest(engine, http.MethodPost, "/customer.nv?method=edit", customerXML("1234567-8", "Acme"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerList(t *testing.T) {
	engine, _ := newTestEngine(t)

	for _, c := range [][2]string{{"1234567-8", "Acme"}, {"7654321-8", "Other"}} {
		w := doRequest(engine, http.MethodPost, "/customer.nv?method=add", customerXML(c[0], c[1]))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(engine, http.MethodGet, "/customerlist.nv", "")
	require.Equal(t, http.StatusOK, w.Code)
	out := w.Body.String()
	assert.Contains(t, out, "<Name>Acme</Name>")
	assert.Contains(t, out, "<Name>Other</Name>")
	assert.Contains(t, out, "<Netvisorkey>1</Netvisorkey>")
	assert.Contains(t, out, "<Netvisorkey>2</Netvisorkey>")
	assert.Contains(t, out, "<Uri>"+testBaseURL+"/getcustomer.nv?id=1</Uri>")
}

func TestCustomerListKeyword(t *testing.T) {
	engine, _ := newTestEngine(t)

	for _, c := range [][2]string{{"1234567-8", "Acme"}, {"7654321-8", "Other"}} {
		w := doRequest(engine, http.MethodPost, "/customer.nv?method=add", customerXML(c[0], c[1]))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(engine, http.MethodGet, "/customerlist.nv?keyword=7654321-8", "")
	require.Equal(t, http.StatusOK, w.Code)
	out := w.Body.String()
	assert.Contains(t, out, "<Name>Other</Name>")
	assert.NotContains(t, out, "<Name>Acme</Name>")

	w = doRequest(engine, http.MethodGet, "/customerlist.nv?keyword=no-such-id", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<Customerlist/>")
}

func TestCustomerListEmpty(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doRequest(engine, http.MethodGet, "/customerlist.nv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<Customerlist/>")
	assert.Contains(t, w.Body.String(), "<Status>OK</Status>")
}
