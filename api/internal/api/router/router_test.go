package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/api/handlers"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/api/middleware"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/api/router"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/services"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/storage/jsonfile"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/storage/uploads"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/telemetry"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/web"
)

const testPassword = "correct horse"

// pngHeader is enough for content sniffing to classify the body as image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

type testEnv struct {
	mux       *chi.Mux
	dataDir   string
	publicDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dataDir := filepath.Join(t.TempDir(), "data")
	publicDir := filepath.Join(t.TempDir(), "public")

	data := jsonfile.NewStore(dataDir, logger)
	hub := telemetry.NewHub()
	info := services.NewSiteInfoService(data, hub, logger)
	tariffs := services.NewTariffService(data, hub, logger)

	site, err := web.New(info, tariffs, logger)
	require.NoError(t, err)

	tokens := services.NewTokenService("router-test-secret-router-test-secret")
	auth, err := services.NewAuthService(testPassword, "", tokens, logger)
	require.NoError(t, err)

	mux := router.NewRouter(router.RouterConfig{
		PublicDir:       publicDir,
		SiteInfoHandler: handlers.NewSiteInfoHandler(info),
		TariffHandler:   handlers.NewTariffHandler(tariffs),
		AuthHandler:     handlers.NewAuthHandler(auth, false),
		UploadHandler:   handlers.NewUploadHandler(uploads.NewStore(filepath.Join(publicDir, "uploads"), "/uploads"), hub, logger),
		EventsHandler:   handlers.NewEventsHandler(hub, nil, logger),
		HealthHandler:   handlers.NewHealthHandler(data),
		AuthMiddleware:  middleware.NewAuthMiddleware(auth, handlers.SessionCookieName, logger),
		LoginLimiter:    middleware.NewRateLimiter(rate.Every(time.Minute), 3),
		WriteLimiter:    middleware.NewRateLimiter(rate.Inf, 1),
		Site:            site,
		Logger:          logger,
	})

	return &testEnv{mux: mux, dataDir: dataDir, publicDir: publicDir}
}

func (e *testEnv) do(t *testing.T, method, target string, body io.Reader, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/admin/auth", strings.NewReader(`{"password":"`+testPassword+`"}`), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == handlers.SessionCookieName {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	t.Run("wrong password", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/admin/auth", strings.NewReader(`{"password":"nope"}`), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid password", decode[handlers.ErrorResponse](t, rec).Error)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("correct password", func(t *testing.T) {
		cookie := env.login(t)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

		rec := env.do(t, http.MethodGet, "/api/admin/session", nil, cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decode[map[string]any](t, rec)["authenticated"])
	})

	t.Run("rate limited", func(t *testing.T) {
		limited := newTestEnv(t)
		var last int
		for i := 0; i < 4; i++ {
			last = limited.do(t, http.MethodPost, "/api/admin/auth", strings.NewReader(`{"password":"nope"}`), nil).Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})
}

func TestMutationsRequireSession(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		method, target, body string
	}{
		{http.MethodPut, "/api/site-info", `{"brand":{"name":"X"}}`},
		{http.MethodPost, "/api/tariffs", `{"name":"Pro"}`},
		{http.MethodPut, "/api/tariffs/1", `{"name":"Pro"}`},
		{http.MethodDelete, "/api/tariffs/1", ``},
		{http.MethodPost, "/api/upload", ``},
		{http.MethodGet, "/api/admin/session", ``},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := env.do(t, tc.method, tc.target, strings.NewReader(tc.body), nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	_, err := os.Stat(filepath.Join(env.dataDir, "site-info.json"))
	assert.True(t, os.IsNotExist(err), "rejected writes must not touch storage")
}

func TestTariffLifecycle(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/tariffs", strings.NewReader(`{"name":"Pro","price":999}`), cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[domain.Tariff](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Pro", created.Name)
	assert.Equal(t, 999.0, created.Price)
	assert.Equal(t, "RUB", created.Currency)
	assert.Equal(t, "1 месяц", created.Period)
	assert.Equal(t, 4, created.SortOrder)

	list := decode[[]domain.Tariff](t, env.do(t, http.MethodGet, "/api/tariffs", nil, nil))
	require.Len(t, list, 4)
	assert.Equal(t, created.ID, list[3].ID)

	rec = env.do(t, http.MethodPut, "/api/tariffs/"+created.ID, strings.NewReader(`{"price":499,"popular":true}`), cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[domain.Tariff](t, rec)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Pro", updated.Name)
	assert.Equal(t, 499.0, updated.Price)
	assert.True(t, updated.Popular)

	rec = env.do(t, http.MethodPut, "/api/tariffs/"+created.ID, strings.NewReader(`{"currency":"XXX"}`), cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/tariffs/"+created.ID, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]bool{"success": true}, decode[map[string]bool](t, rec))

	assert.Len(t, decode[[]domain.Tariff](t, env.do(t, http.MethodGet, "/api/tariffs", nil, nil)), 3)
}

func TestUnknownTariff(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		rec := env.do(t, method, "/api/tariffs/missing", strings.NewReader(`{"name":"x"}`), cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
	}
}

func TestSiteInfoUpdateKeepsTheme(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	before := decode[domain.SiteInfo](t, env.do(t, http.MethodGet, "/api/site-info", nil, nil))

	rec := env.do(t, http.MethodPut, "/api/site-info", strings.NewReader(`{"theme":{"accentColor":"#ff0000"}}`), cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	after := decode[domain.SiteInfo](t, env.do(t, http.MethodGet, "/api/site-info", nil, nil))
	assert.Equal(t, "#ff0000", after.Theme.AccentColor)
	assert.Equal(t, before.Theme.PrimaryColor, after.Theme.PrimaryColor)
	assert.Equal(t, before.Brand, after.Brand)

	rec = env.do(t, http.MethodPut, "/api/site-info", strings.NewReader(`[1,2]`), cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	t.Run("missing file", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("other", "x"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		env.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No file", decode[handlers.ErrorResponse](t, rec).Error)
	})

	t.Run("png is stored and served", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("file", "my logo.png")
		require.NoError(t, err)
		_, err = part.Write(pngHeader)
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		env.mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		url := decode[map[string]string](t, rec)["url"]
		assert.Regexp(t, `^/uploads/logo-\d+\.png$`, url)

		served := env.do(t, http.MethodGet, url, nil, nil)
		assert.Equal(t, http.StatusOK, served.Code)
		assert.Equal(t, pngHeader, served.Body.Bytes())
	})
}

func TestPagesAndHealth(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{"/", "/instructions", "/contacts", "/offerta", "/agreement", "/admin"} {
		rec := env.do(t, http.MethodGet, target, nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html", target)
	}

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/sitemap.xml", nil, nil).Code)
	assert.Contains(t, env.do(t, http.MethodGet, "/robots.txt", nil, nil).Body.String(), "Disallow: /admin")
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/static/site.css", nil, nil).Code)

	rec := env.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", rec.Body.String())
}

func TestPublicRootAssets(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.MkdirAll(env.publicDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.publicDir, "logo.png"), pngHeader, 0o644))

	rec := env.do(t, http.MethodGet, "/logo.png", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pngHeader, rec.Body.Bytes())

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/missing.png", nil, nil).Code)
}
