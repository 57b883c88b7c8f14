package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/dashboard"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const balancesCSV = `account,date,balance
Bank,01/01/2024,100
Bank,03/01/2024,200
Broker,01/01/2024,1000
Broker,03/01/2024,1200
Card,02/01/2024,-5
Card,03/01/2024,-5
Ghost,01/01/2024,7
`

const accountsCSV = `account,type
Bank,checking
Broker,Stocks
Card,Checking
`

func loadSample() (*dashboard.Dashboard, error) {
	today := dashboard.NewDate(2024, 1, 3)
	return dashboard.Load(strings.NewReader(balancesCSV), strings.NewReader(accountsCSV),
		dashboard.WithClock(func() dashboard.Date { return today }))
}

func newTestServer(t *testing.T, loader Loader) *Server {
	t.Helper()
	s, err := New(Config{Port: 0, Loader: loader, Log: zerolog.Nop()})
	require.NoError(t, err)
	return s
}

// get performs the request and decodes the json answer.
func get(t *testing.T, s *Server, method, target string) (int, any) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var body any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return rec.Code, body
}

func path(t *testing.T, body any, p string) any {
	t.Helper()
	v, err := jsonpath.Get(p, body)
	require.NoError(t, err, "path %s", p)
	return v
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, loadSample)

	code, body := get(t, s, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", path(t, body, "$.status"))
	assert.Equal(t, "2024-01-01", path(t, body, "$.from"))
	assert.Equal(t, "2024-01-03", path(t, body, "$.to"))
}

func TestServer_Totals(t *testing.T) {
	s := newTestServer(t, loadSample)

	code, body := get(t, s, http.MethodGet, "/api/totals?range=all")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body, 3)
	assert.Equal(t, "2024-01-01", path(t, body, "$[0].date"))
	assert.Equal(t, 1100.0, path(t, body, "$[0].total_balance"))
	assert.Equal(t, 1245.0, path(t, body, "$[1].total_balance"))
	assert.Equal(t, 1395.0, path(t, body, "$[2].total_balance"))

	// an unknown token means everything
	_, bogus := get(t, s, http.MethodGet, "/api/totals?range=bogus")
	assert.Equal(t, body, bogus)
}

func TestServer_Types(t *testing.T) {
	s := newTestServer(t, loadSample)

	code, body := get(t, s, http.MethodGet, "/api/types?range=YTD")
	require.Equal(t, http.StatusOK, code)
	// 3 dates, 2 categories each.
	require.Len(t, body, 6)
	assert.Equal(t, "Checking", path(t, body, "$[0].type"))
	assert.Equal(t, 100.0, path(t, body, "$[0].balance"))
	assert.Equal(t, "Stocks", path(t, body, "$[1].type"))
	assert.Equal(t, 1000.0, path(t, body, "$[1].balance"))
}

func TestServer_Composition(t *testing.T) {
	s := newTestServer(t, loadSample)

	code, body := get(t, s, http.MethodGet, "/api/composition")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "2024-01-03", path(t, body, "$.date"))
	assert.Equal(t, 1400.0, path(t, body, "$.total_balance"))
	assert.Equal(t, true, path(t, body, "$.has_excluded_negative"))
	assert.Equal(t, "Bank", path(t, body, "$.entries[0].account"))
	assert.Equal(t, "Broker", path(t, body, "$.entries[1].account"))
	assert.Equal(t, "Card", path(t, body, "$.excluded[0].account"))

	// the area pick wins over the totals pick.
	_, body = get(t, s, http.MethodGet, "/api/composition?area=2024-01-02&totals=2024-01-01")
	assert.Equal(t, "2024-01-02", path(t, body, "$.date"))
	assert.Equal(t, 150.0, path(t, body, "$.entries[0].balance"))

	code, _ = get(t, s, http.MethodGet, "/api/composition?area=yesterday")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestServer_Summary(t *testing.T) {
	s := newTestServer(t, loadSample)

	code, body := get(t, s, http.MethodGet, "/api/summary")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "2024-01-03", path(t, body, "$.date"))
	assert.Equal(t, 1395.0, path(t, body, "$.total_balance"))
	assert.Equal(t, 195.0, path(t, body, "$.by_type[0].balance"))
	assert.Equal(t, "Stocks", path(t, body, "$.by_type[1].type"))
}

func TestServer_Accounts(t *testing.T) {
	s := newTestServer(t, loadSample)

	code, body := get(t, s, http.MethodGet, "/api/accounts")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Bank", path(t, body, "$.accounts[0].account"))
	assert.Equal(t, "Card", path(t, body, "$.accounts[1].account"))
	assert.Equal(t, "Broker", path(t, body, "$.accounts[2].account"))
	assert.Equal(t, "Ghost", path(t, body, "$.dropped[0]"))

	code, body = get(t, s, http.MethodGet, "/api/accounts/Bank")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body, 3)
	assert.Equal(t, true, path(t, body, "$[0].observed"))
	assert.Equal(t, false, path(t, body, "$[1].observed"))
	assert.Equal(t, 150.0, path(t, body, "$[1].balance"))

	code, _ = get(t, s, http.MethodGet, "/api/accounts/Ghost")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServer_Reload(t *testing.T) {
	fail := false
	loader := func() (*dashboard.Dashboard, error) {
		if fail {
			return nil, errors.New("broken input")
		}
		return loadSample()
	}
	s := newTestServer(t, loader)

	code, body := get(t, s, http.MethodPost, "/api/reload")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "reloaded", path(t, body, "$.status"))

	fail = true
	code, body = get(t, s, http.MethodPost, "/api/reload")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, path(t, body, "$.error"), "broken input")

	// the previous dashboard keeps serving.
	code, _ = get(t, s, http.MethodGet, "/api/summary")
	assert.Equal(t, http.StatusOK, code)
}

func TestNew_LoadError(t *testing.T) {
	_, err := New(Config{Loader: func() (*dashboard.Dashboard, error) {
		return nil, errors.New("no data")
	}, Log: zerolog.Nop()})
	assert.Error(t, err)
}
