package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/content"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testServer struct {
	app    *app
	router *gin.Engine
}

func newTestServer(t *testing.T, mutate func(*Config)) *testServer {
	t.Helper()
	cfg := defaultConfig()
	cfg.Env = "test"
	if mutate != nil {
		mutate(&cfg)
	}

	site, err := content.Load(content.Embedded())
	require.NoError(t, err)

	a, closeApp, err := newApp(context.Background(), &cfg, zerolog.Nop(), content.NewStore(site))
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeApp() })

	return &testServer{app: a, router: newRouter(a)}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func TestIndexPage(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.get("/")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "<title>Aman Devrani | Data Science, AI &amp; ML Enthusiast | Software Engineer</title>")
	for _, id := range []string{"hero", "skills", "projects", "experience", "achievements", "certifications", "contact"} {
		assert.Contains(t, body, `id="`+id+`"`)
	}
	assert.Contains(t, body, `data-nav="hero" class="is-active" aria-current="page"`)
	assert.Contains(t, body, `data-nav-lookahead="100"`)
	assert.Contains(t, body, `data-visibility-threshold="0.1"`)
	assert.Contains(t, body, `data-base-duration="500"`)
	assert.Contains(t, body, `data-copy="aman.devrani6921@gmail.com"`)
	assert.Contains(t, body, "@AMAN6921")
	assert.Contains(t, body, `<link rel="canonical" href="https://amandevrani.com/">`)
	assert.Contains(t, body, "Accuracy: 93%")
}

func TestIndexPage_ConfiguredLookahead(t *testing.T) {
	s := newTestServer(t, func(c *Config) { c.NavLookahead = 150 })
	assert.Contains(t, s.get("/").Body.String(), `data-nav-lookahead="150"`)
}

func TestLegalPages(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.get("/privacy")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Privacy Policy | Aman Devrani")
	assert.Contains(t, w.Body.String(), "Do Not Track")

	w = s.get("/terms")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Use License")
	assert.Contains(t, w.Body.String(), "mailto:aman.devrani6921@gmail.com")
}

func TestAPI(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.get("/api/sections")
	require.Equal(t, http.StatusOK, w.Code)
	var sections []content.NavItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sections))
	require.Len(t, sections, 7)
	assert.Equal(t, "hero", sections[0].ID)
	assert.Equal(t, "contact", sections[6].ID)

	w = s.get("/api/content")
	require.Equal(t, http.StatusOK, w.Code)
	var site content.Site
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &site))
	assert.Equal(t, "Aman Devrani", site.Profile.Name)
	assert.Len(t, site.Projects, 3)

	w = s.get("/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.get("/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "does not exist")

	w = s.get("/api/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.get("/static/site.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "--motion-duration")
}

func TestVisitTracking(t *testing.T) {
	s := newTestServer(t, nil)

	s.get("/")
	s.get("/")
	s.get("/static/site.css")
	s.get("/privacy")
	s.get("/api/sections")

	dnt := httptest.NewRequest(http.MethodGet, "/", nil)
	dnt.Header.Set("DNT", "1")
	s.do(dnt)

	s.get("/missing")

	s.app.analytics.Flush()
	stats, err := s.app.analytics.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalVisits)
	assert.Equal(t, []PathStat{{Path: "/", Visits: 2}}, stats.TopPaths)
}

func TestAnalyticsDisabled(t *testing.T) {
	s := newTestServer(t, func(c *Config) {
		c.AnalyticsEnabled = false
		c.AdminPassword = "secret"
	})
	assert.Nil(t, s.app.analytics)
	assert.NotNil(t, s.app.admin)
	assert.False(t, s.app.adminMounted())
	assert.Equal(t, http.StatusOK, s.get("/").Code)
	assert.Equal(t, http.StatusNotFound, s.get("/admin/login").Code)
}

func loginForm(user, pass string) *http.Request {
	form := url.Values{"username": {user}, "password": {pass}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAdmin(t *testing.T) {
	s := newTestServer(t, func(c *Config) {
		c.AdminUsername = "owner"
		c.AdminPassword = "s3cret"
	})

	w := s.get("/admin/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	assert.Equal(t, http.StatusOK, s.get("/admin/login").Code)

	w = s.do(loginForm("owner", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = s.do(loginForm("owner", "s3cret"))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	session := cookies[0]
	assert.Equal(t, adminCookie, session.Name)
	assert.True(t, session.HttpOnly)

	s.get("/")
	s.app.analytics.Flush()

	authed := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.AddCookie(session)
		return s.do(req)
	}

	w = authed(http.MethodGet, "/admin/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Total visits: 1")

	w = authed(http.MethodGet, "/admin/api/stats")
	require.Equal(t, http.StatusOK, w.Code)
	var stats Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalVisits)

	w = authed(http.MethodGet, "/admin/export/stats")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "visit-stats.json")

	w = authed(http.MethodPost, "/admin/privacy/cleanup")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"removed":0}`, w.Body.String())

	w = authed(http.MethodGet, "/admin/logout")
	assert.Equal(t, http.StatusFound, w.Code)
}
