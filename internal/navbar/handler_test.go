package navbar_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsenhance/skillsenhance/internal/navbar"
)

func newNavbarRouter() (*navbar.Store, chi.Router) {
	store := navbar.NewStore()
	r := chi.NewRouter()
	navbar.NewHandler(nil, store).MountRoutes(r)
	return store, r
}

func TestGetConfigDefaults(t *testing.T) {
	_, r := newNavbarRouter()

	res := httptest.NewRecorder()
	r.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, res.Code)

	var cfg navbar.Config
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &cfg))
	assert.Equal(t, "top", cfg.Position)
	assert.True(t, cfg.Visible)
	assert.Equal(t, "Skills Enhance", cfg.LogoText)
	assert.True(t, cfg.PagesEnabled.ExamVoucher)
}

func TestUpdateConfigShallowMerge(t *testing.T) {
	store, r := newNavbarRouter()

	body := `{"position":"side","pagesEnabled":{"liveEvents":false}}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)

	var out struct {
		Success bool          `json:"success"`
		Config  navbar.Config `json:"config"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, "side", out.Config.Position)
	// Untouched fields keep their values; the pages block merges per key.
	assert.True(t, out.Config.Visible)
	assert.False(t, out.Config.PagesEnabled.LiveEvents)
	assert.True(t, out.Config.PagesEnabled.FreeWebinars)
	assert.Equal(t, "Skills Enhance", out.Config.LogoText)

	assert.Equal(t, out.Config, store.Get())
}

func TestUpdateConfigInvalidPosition(t *testing.T) {
	store, r := newNavbarRouter()

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"position":"bottom"}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "invalid position value")
	assert.Equal(t, "top", store.Get().Position)
}

func TestUpdateConfigEmptyLogoTextIgnored(t *testing.T) {
	store, r := newNavbarRouter()

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"logoText":""}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Skills Enhance", store.Get().LogoText)
}
