package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	recordsapp "github.com/nvmock/backend/internal/application/records"
	"github.com/nvmock/backend/internal/infrastructure/persistence"
	"github.com/nvmock/backend/internal/interfaces/http/router"
	"github.com/nvmock/backend/internal/interfaces/wire"
)

const testBaseURL = "http://0.0.0.0:5001"

// newTestEngine wires the full handler stack against a temp-dir snapshot
// and a fixed clock.
func newTestEngine(t *testing.T) (*gin.Engine, *recordsapp.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store, err := recordsapp.NewStore(persistence.NewSnapshotFile(filepath.Join(dir, "data.json")))
	require.NoError(t, err)

	pdfPath := filepath.Join(dir, "invoice.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4 mock"), 0o644))

	clock := wire.FixedClock(time.Date(2026, time.August, 30, 12, 34, 56, 0, time.UTC))
	codec := wire.NewCodec(testBaseURL, pdfPath, clock)

	engine := gin.New()
	router.NewRouter(engine).
		Register(NewSystemHandler(store)).
		Register(NewCustomerHandler(store, codec)).
		Register(NewSalesInvoiceHandler(store, codec)).
		Setup()
	return engine, store
}

func doRequest(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func customerXML(businessID, name string) string {
	return `<root><customer><customerbaseinformation>` +
		`<externalidentifier>` + businessID + `</externalidentifier>` +
		`<name>` + name + `</name>` +
		`</customerbaseinformation></customer></root>`
}

func invoiceXML(customerID string) string {
	return `<root><salesinvoice>` +
		`<invoicingcustomeridentifier type="netvisor">` + customerID + `</invoicingcustomeridentifier>` +
		`<salesinvoicedate>2026-08-01</salesinvoicedate>` +
		`</salesinvoice></root>`
}
