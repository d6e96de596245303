package webserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	recipeapp "github.com/hauqxngo/NomNom/internal/application/recipe"
	userapp "github.com/hauqxngo/NomNom/internal/application/user"
	"github.com/hauqxngo/NomNom/internal/infrastructure/config"
	"github.com/hauqxngo/NomNom/internal/infrastructure/http/webserver"
	gormrepo "github.com/hauqxngo/NomNom/internal/infrastructure/persistence/gorm"
	"github.com/hauqxngo/NomNom/internal/infrastructure/persistence/sqlite"
	"github.com/hauqxngo/NomNom/internal/infrastructure/session"
	"github.com/hauqxngo/NomNom/internal/ports/outbound"
	"github.com/hauqxngo/NomNom/pkg/healthcheck"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// stubSuggestions serves canned suggestions so no network is involved
type stubSuggestions struct {
	suggestion *outbound.Suggestion
	err        error
}

func (s *stubSuggestions) Suggest(_ context.Context, _ string) (*outbound.Suggestion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.suggestion, nil
}

// WebServerTestSuite drives the full HTTP surface over an in-memory
// database and session store.
type WebServerTestSuite struct {
	suite.Suite
	server      *httptest.Server
	suggestions *stubSuggestions
	userService *userapp.Service
}

func (s *WebServerTestSuite) SetupTest() {
	db, err := sqlite.SetupDatabase("", gormlogger.Silent)
	require.NoError(s.T(), err)

	log := zap.NewNop()
	userRepo := gormrepo.NewUserRepository(db)
	recipeRepo := gormrepo.NewRecipeRepository(db)

	s.suggestions = &stubSuggestions{}
	s.userService = userapp.NewService(userRepo, recipeRepo, log)
	recipeService := recipeapp.NewService(recipeRepo, s.suggestions, log)

	store := session.NewMemoryStore()
	s.T().Cleanup(func() { _ = store.Close() })

	cfg := &config.Config{}
	cfg.App.Version = "test"
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Session.CookieName = "nomnom-session"
	cfg.Session.TTL = time.Hour

	sessions := webserver.NewSessionManager(store, &cfg.Session, log)
	handlers := webserver.NewHandlers(s.userService, recipeService, sessions, log)
	health := healthcheck.New("test", log)

	srv := webserver.NewServer(cfg, handlers, sessions, health, log)
	s.server = httptest.NewServer(srv.Router())
	s.T().Cleanup(s.server.Close)
}

// client returns an HTTP client that keeps cookies but never follows
// redirects, so the tests can observe them.
func (s *WebServerTestSuite) client() *http.Client {
	jar := newCookieJar(s.T())
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (s *WebServerTestSuite) postJSON(c *http.Client, path string, body interface{}) *http.Response {
	raw, err := json.Marshal(body)
	require.NoError(s.T(), err)

	resp, err := c.Post(s.server.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(s.T(), err)
	return resp
}

func (s *WebServerTestSuite) get(c *http.Client, path string) *http.Response {
	resp, err := c.Get(s.server.URL + path)
	require.NoError(s.T(), err)
	return resp
}

func (s *WebServerTestSuite) registerAndLogin(c *http.Client, email string) uint {
	resp := s.postJSON(c, "/register", map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      email,
		"password":   "engine notes",
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.postJSON(c, "/login", map[string]string{
		"email":    email,
		"password": "engine notes",
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	require.NotZero(s.T(), body.Data.ID)
	return body.Data.ID
}

func (s *WebServerTestSuite) createRecipe(c *http.Client, title string) uint {
	resp := s.postJSON(c, "/recipes/new", map[string]interface{}{"title": title})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var body struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return body.Data.ID
}

func (s *WebServerTestSuite) TestAnonymousGatedRoute() {
	c := s.client()

	s.Run("APIClient_Gets401", func() {
		resp := s.get(c, "/recipes/new")
		defer resp.Body.Close()
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	})

	s.Run("Browser_IsRedirectedHome", func() {
		req, err := http.NewRequest(http.MethodGet, s.server.URL+"/recipes/new", nil)
		require.NoError(s.T(), err)
		req.Header.Set("Accept", "text/html")

		resp, err := c.Do(req)
		require.NoError(s.T(), err)
		defer resp.Body.Close()

		s.Equal(http.StatusSeeOther, resp.StatusCode)
		s.Equal("/", resp.Header.Get("Location"))
	})

	s.Run("GatedAction_IsNotExecuted", func() {
		resp := s.postJSON(c, "/recipes/new", map[string]interface{}{"title": "Should not exist"})
		defer resp.Body.Close()
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	})
}

func (s *WebServerTestSuite) TestRegisterLoginLogout() {
	c := s.client()
	userID := s.registerAndLogin(c, "ada@example.com")

	resp := s.get(c, fmt.Sprintf("/users/%d", userID))
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.get(c, "/logout")
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The session is gone after logout
	resp = s.get(c, fmt.Sprintf("/users/%d", userID))
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Logging out while anonymous still succeeds
	resp = s.get(c, "/logout")
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (s *WebServerTestSuite) TestLoginWrongPassword() {
	c := s.client()
	s.registerAndLogin(c, "ada@example.com")
	s.get(c, "/logout").Body.Close()

	resp := s.postJSON(c, "/login", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong",
	})
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *WebServerTestSuite) TestDuplicateRegistrationConflicts() {
	c := s.client()
	s.registerAndLogin(c, "ada@example.com")

	resp := s.postJSON(s.client(), "/register", map[string]string{
		"first_name": "Other",
		"last_name":  "Person",
		"email":      "ada@example.com",
		"password":   "different",
	})
	defer resp.Body.Close()
	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *WebServerTestSuite) TestRecipeLifecycle() {
	c := s.client()
	userID := s.registerAndLogin(c, "ada@example.com")
	recipeID := s.createRecipe(c, "Shakshuka")

	resp := s.get(c, fmt.Sprintf("/recipes/%d", recipeID))
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.get(c, fmt.Sprintf("/users/%d/recipes", userID))
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.get(c, fmt.Sprintf("/recipes/%d/done", recipeID))
	s.Equal(http.StatusOK, resp.StatusCode)
	var toggled struct {
		Data struct {
			Done bool `json:"done"`
		} `json:"data"`
	}
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&toggled))
	resp.Body.Close()
	s.True(toggled.Data.Done)

	resp = s.postJSON(c, fmt.Sprintf("/recipes/%d/edit", recipeID), map[string]interface{}{"title": "Improved Shakshuka"})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.postJSON(c, fmt.Sprintf("/recipes/%d/delete", recipeID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.get(c, fmt.Sprintf("/recipes/%d", recipeID))
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *WebServerTestSuite) TestOwnershipEnforced() {
	owner := s.client()
	s.registerAndLogin(owner, "owner@example.com")
	recipeID := s.createRecipe(owner, "Private Stew")

	intruder := s.client()
	s.registerAndLogin(intruder, "intruder@example.com")

	resp := s.postJSON(intruder, fmt.Sprintf("/recipes/%d/edit", recipeID), map[string]interface{}{"title": "Stolen"})
	s.Equal(http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = s.postJSON(intruder, fmt.Sprintf("/recipes/%d/delete", recipeID), nil)
	s.Equal(http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// The recipe is untouched
	resp = s.get(owner, fmt.Sprintf("/recipes/%d", recipeID))
	s.Equal(http.StatusOK, resp.StatusCode)
	var body struct {
		Data struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	s.Equal("Private Stew", body.Data.Title)
}

func (s *WebServerTestSuite) TestSuggestionSearch() {
	s.suggestions.suggestion = &outbound.Suggestion{
		Title:     "Tacos",
		SourceURL: "https://example.com/tacos",
	}

	resp := s.get(s.client(), "/recipes?tags=mexican")
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("Tacos", body.Data.Title)
}

func (s *WebServerTestSuite) TestSaveRandomRecipeForOtherUserDenied() {
	c := s.client()
	userID := s.registerAndLogin(c, "ada@example.com")

	resp := s.postJSON(c, fmt.Sprintf("/users/%d/recipes/random", userID+1), map[string]interface{}{
		"title": "Not Yours",
	})
	defer resp.Body.Close()
	s.Equal(http.StatusForbidden, resp.StatusCode)
}

func (s *WebServerTestSuite) TestDeleteAccountRemovesRecipes() {
	c := s.client()
	s.registerAndLogin(c, "ada@example.com")
	recipeID := s.createRecipe(c, "Gone Soon")

	resp := s.postJSON(c, "/users/delete", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// A fresh login proves the account is gone
	resp = s.postJSON(c, "/login", map[string]string{
		"email":    "ada@example.com",
		"password": "engine notes",
	})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// And so are their recipes
	other := s.client()
	s.registerAndLogin(other, "other@example.com")
	resp = s.get(other, fmt.Sprintf("/recipes/%d", recipeID))
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *WebServerTestSuite) TestUnknownRouteIs404() {
	resp := s.get(s.client(), "/no/such/page")
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *WebServerTestSuite) TestHealthEndpoint() {
	resp := s.get(s.client(), "/health")
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func newCookieJar(t *testing.T) http.CookieJar {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return jar
}

func TestWebServerTestSuite(t *testing.T) {
	suite.Run(t, new(WebServerTestSuite))
}
