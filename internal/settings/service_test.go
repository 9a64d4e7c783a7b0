package settings

import (
	"context"
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

type memoryRepo struct {
	row *FacilitySettings
}

func (r *memoryRepo) Get(ctx context.Context) (*FacilitySettings, error) {
	if r.row == nil {
		return nil, ErrNotFound
	}
	copied := *r.row
	return &copied, nil
}

func (r *memoryRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if r.row == nil || r.row.ID != id {
		return ErrNotFound
	}
	for col, v := range updates {
		s := v.(string)
		switch col {
		case "name":
			r.row.Name = s
		case "address":
			r.row.Address = s
		case "city_state_zip":
			r.row.CityStateZip = s
		case "phone":
			r.row.Phone = &s
		case "fax":
			r.row.Fax = &s
		case "email":
			r.row.Email = &s
		case "website":
			r.row.Website = &s
		case "thank_you_note":
			r.row.ThankYouNote = &s
		}
	}
	return nil
}

func seededRepo() *memoryRepo {
	return &memoryRepo{row: &FacilitySettings{
		ID:           "settings-1",
		Name:         "Care Garden Assisted Living",
		Address:      "500 Meadow Lane",
		CityStateZip: "Springfield, IL 62704",
	}}
}

func sptr(v string) *string { return &v }

func TestUpdateSettings(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	updated, err := svc.Update(context.Background(), UpdateSettingsRequest{
		Phone:        sptr("555-0100"),
		ThankYouNote: sptr("Thank you for choosing Care Garden"),
	})
	require.NoError(t, err)
	require.Equal(t, "555-0100", *updated.Phone)
	require.Equal(t, "Thank you for choosing Care Garden", *updated.ThankYouNote)
	require.Equal(t, "Care Garden Assisted Living", updated.Name, "untouched fields survive")
}

func TestUpdateSettingsNoChanges(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	updated, err := svc.Update(context.Background(), UpdateSettingsRequest{})
	require.NoError(t, err)
	require.Equal(t, repo.row.Name, updated.Name)
}

func TestUpdateSettingsMissingRow(t *testing.T) {
	svc := NewService(&memoryRepo{})
	_, err := svc.Update(context.Background(), UpdateSettingsRequest{Name: sptr("X")})
	require.ErrorIs(t, err, ErrNotFound)
}

func newSettingsServer(t *testing.T, repo Repository) *httptest.Server {
	t.Helper()
	handler := NewHandler(slog.Default(), NewService(repo))
	r := chi.NewRouter()
	r.Route("/settings", handler.MountRoutes)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
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

func TestHandlerShowSettings(t *testing.T) {
	server := newSettingsServer(t, seededRepo())

	resp := doRequest(t, server, http.MethodGet, "/settings", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var s FacilitySettings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	require.Equal(t, "Care Garden Assisted Living", s.Name)
}

func TestHandlerShowSettingsMissing(t *testing.T) {
	server := newSettingsServer(t, &memoryRepo{})
	resp := doRequest(t, server, http.MethodGet, "/settings", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandlerUpdateSettings(t *testing.T) {
	server := newSettingsServer(t, seededRepo())

	resp := doRequest(t, server, http.MethodPut, "/settings", `{"phone": "555-0100"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var s FacilitySettings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	require.Equal(t, "555-0100", *s.Phone)

	resp = doRequest(t, server, http.MethodPut, "/settings", `{"email": "not-an-email"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = doRequest(t, server, http.MethodPut, "/settings", `{`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
