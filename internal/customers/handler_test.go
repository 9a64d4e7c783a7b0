package customers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newCustomerServer(t *testing.T) (*memoryRepo, *httptest.Server) {
	t.Helper()

	repo := newMemoryRepo()
	handler := NewHandler(slog.Default(), NewService(repo))

	r := chi.NewRouter()
	r.Route("/customers", handler.MountRoutes)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return repo, server
}

func doRequest(t *testing.T, server *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandlerCreateCustomer(t *testing.T) {
	_, server := newCustomerServer(t)

	resp := doRequest(t, server, http.MethodPost, "/customers", `{
		"name": "Margaret Olsen",
		"monthly_rate": 1200,
		"daily_rate": 40,
		"daily_rate_days": 5,
		"additional_line_1_desc": "Laundry",
		"additional_line_1_amount": 75
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	require.True(t, created.IsActive)
	require.Equal(t, "Laundry", *created.Line1Desc)
}

func TestHandlerCreateCustomerValidation(t *testing.T) {
	_, server := newCustomerServer(t)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{"missing name", `{"monthly_rate": 1200}`, http.StatusUnprocessableEntity},
		{"negative rate", `{"name": "X", "monthly_rate": -5}`, http.StatusUnprocessableEntity},
		{"bad email", `{"name": "X", "monthly_rate": 1200, "email": "nope"}`, http.StatusUnprocessableEntity},
		{"rate without days", `{"name": "X", "monthly_rate": 1200, "daily_rate": 40}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, server, http.MethodPost, "/customers", tc.body)
			require.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestHandlerShowAndList(t *testing.T) {
	repo, server := newCustomerServer(t)

	resp := doRequest(t, server, http.MethodPost, "/customers", `{"name": "Alice Ward", "monthly_rate": 900}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = doRequest(t, server, http.MethodGet, "/customers/"+created.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, server, http.MethodGet, "/customers/missing", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, server, http.MethodGet, "/customers?filter=active", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page struct {
		Customers []Customer `json:"customers"`
		Total     int        `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Equal(t, 1, page.Total)
	require.Len(t, repo.customers, 1)
}

func TestHandlerUpdateCustomer(t *testing.T) {
	_, server := newCustomerServer(t)

	resp := doRequest(t, server, http.MethodPost, "/customers", `{"name": "Alice Ward", "monthly_rate": 900}`)
	var created Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = doRequest(t, server, http.MethodPut, "/customers/"+created.ID, `{"monthly_rate": 950}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	require.Equal(t, 950.0, updated.MonthlyRate)

	resp = doRequest(t, server, http.MethodPut, "/customers/"+created.ID, `{"daily_rate": 40}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandlerUpdateNames(t *testing.T) {
	_, server := newCustomerServer(t)

	resp := doRequest(t, server, http.MethodPost, "/customers", `{"name": "Olsen", "monthly_rate": 900}`)
	var created Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = doRequest(t, server, http.MethodPost, "/customers/"+created.ID+"/name", `{"first_name": "Margaret", "last_name": "Olsen"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	require.Equal(t, "Margaret Olsen", updated.Name)

	resp = doRequest(t, server, http.MethodPost, "/customers/"+created.ID+"/name", `{"first_name": "Margaret"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandlerSetActiveAndDelete(t *testing.T) {
	repo, server := newCustomerServer(t)

	resp := doRequest(t, server, http.MethodPost, "/customers", `{"name": "Alice Ward", "monthly_rate": 900}`)
	var created Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = doRequest(t, server, http.MethodPost, "/customers/"+created.ID+"/active", `{"is_active": false}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	require.False(t, updated.IsActive)

	resp = doRequest(t, server, http.MethodDelete, "/customers/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Empty(t, repo.customers)

	resp = doRequest(t, server, http.MethodDelete, "/customers/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
