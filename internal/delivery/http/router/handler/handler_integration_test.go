package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ladle/config"
	httpmiddleware "ladle/internal/delivery/http/middleware"
	"ladle/internal/delivery/http/router"
	"ladle/internal/delivery/http/router/handler"
	"ladle/internal/delivery/http/validator"
	"ladle/internal/infra/auth"
	"ladle/internal/infra/persistence/model"
	"ladle/internal/infra/persistence/postgres"
	"ladle/internal/usecase/impl"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testCookieName = "ladle_session"

// newTestServer wires the full stack (handlers, services, repositories) over
// an in-memory database, mirroring the production composition.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.All()...))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		Session: &config.SessionConfig{CookieName: testCookieName},
	}

	users := postgres.NewUserRepository(db)
	credentials := postgres.NewCredentialRepository(db)
	sessions := postgres.NewSessionRepository(db)
	recipes := postgres.NewRecipeRepository(db)
	txManager := postgres.NewTransactionManager(db)

	hasher := auth.NewBcryptHasher(cfg)
	sessionStore := auth.NewDBSessionStore(sessions, logger)

	authService := impl.NewAuthService(txManager, users, credentials, hasher, sessionStore, logger)
	recipeService := impl.NewRecipeService(txManager, recipes, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	router.NewRouter(router.RouterParams{
		AuthHandler:       handler.NewAuthHandler(authService, logger, cfg),
		RecipeHandler:     handler.NewRecipeHandler(recipeService, logger),
		SessionMiddleware: httpmiddleware.NewSessionMiddleware(sessionStore, cfg),
	}).RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")

	return nil
}

func signup(t *testing.T, e *echo.Echo, username, password string) *http.Cookie {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/signup",
		`{"username":"`+username+`","password":"`+password+`"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return sessionCookie(t, rec)
}

func TestSignupFlow(t *testing.T) {
	e := newTestServer(t)

	t.Run("successful signup returns the user and a session cookie", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/signup",
			`{"username":"prabhdip","password":"hunter2","image_url":"https://example.com/p.png","bio":"cooks daily"}`, nil)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "prabhdip", body["username"])
		assert.Equal(t, "https://example.com/p.png", body["image_url"])
		assert.Equal(t, "cooks daily", body["bio"])
		assert.NotEmpty(t, body["id"])
		assert.NotContains(t, rec.Body.String(), "password")

		cookie := sessionCookie(t, rec)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("duplicate username", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/signup",
			`{"username":"prabhdip","password":"different"}`, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"error":"Username already exists"}`, rec.Body.String())
	})

	t.Run("missing password", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/signup", `{"username":"nopass"}`, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"error":"Username and password required"}`, rec.Body.String())
	})

	t.Run("whitespace-only username", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/signup", `{"username":"   ","password":"secret"}`, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"error":"Username and password required"}`, rec.Body.String())
	})

	t.Run("missing username", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/signup", `{"password":"whatever"}`, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"error":"Username and password required"}`, rec.Body.String())
	})
}

func TestCheckSession(t *testing.T) {
	e := newTestServer(t)
	cookie := signup(t, e, "checker", "secret")

	t.Run("valid session", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/check_session", "", cookie)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "checker", body["username"])
	})

	t.Run("no cookie answers an empty object", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/check_session", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("garbage token answers an empty object", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/check_session", "",
			&http.Cookie{Name: testCookieName, Value: "not-a-real-token"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})
}

func TestLoginFlow(t *testing.T) {
	e := newTestServer(t)
	signup(t, e, "returning", "correct-password")

	t.Run("valid credentials", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/login",
			`{"username":"returning","password":"correct-password"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "returning", body["username"])
		sessionCookie(t, rec)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/login",
			`{"username":"returning","password":"wrong"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid username or password"}`, rec.Body.String())
	})

	t.Run("unknown username reads the same as a wrong password", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/login",
			`{"username":"nobody","password":"whatever"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid username or password"}`, rec.Body.String())
	})

	t.Run("each login opens an independent session", func(t *testing.T) {
		first := doJSON(e, http.MethodPost, "/login",
			`{"username":"returning","password":"correct-password"}`, nil)
		second := doJSON(e, http.MethodPost, "/login",
			`{"username":"returning","password":"correct-password"}`, nil)

		firstCookie := sessionCookie(t, first)
		secondCookie := sessionCookie(t, second)
		assert.NotEqual(t, firstCookie.Value, secondCookie.Value)

		// Logging out one leaves the other alive.
		rec := doJSON(e, http.MethodDelete, "/logout", "", firstCookie)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(e, http.MethodGet, "/check_session", "", secondCookie)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	e := newTestServer(t)
	cookie := signup(t, e, "leaver", "secret")

	rec := doJSON(e, http.MethodDelete, "/logout", "", cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	t.Run("session no longer resolves", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/check_session", "", cookie)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("second logout has no session to destroy", func(t *testing.T) {
		rec := doJSON(e, http.MethodDelete, "/logout", "", cookie)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"No active session"}`, rec.Body.String())
	})

	t.Run("logout without any cookie", func(t *testing.T) {
		rec := doJSON(e, http.MethodDelete, "/logout", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"No active session"}`, rec.Body.String())
	})
}

func TestLogoutAll(t *testing.T) {
	e := newTestServer(t)
	first := signup(t, e, "everywhere", "secret")

	login := doJSON(e, http.MethodPost, "/login",
		`{"username":"everywhere","password":"secret"}`, nil)
	second := sessionCookie(t, login)

	rec := doJSON(e, http.MethodDelete, "/logout_all", "", first)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Both logins are gone.
	assert.Equal(t, http.StatusUnauthorized, doJSON(e, http.MethodGet, "/check_session", "", first).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(e, http.MethodGet, "/check_session", "", second).Code)
}

func TestRecipes_RequireSession(t *testing.T) {
	e := newTestServer(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/recipes"},
		{http.MethodPost, "/recipes"},
		{http.MethodGet, "/recipes/00000000-0000-0000-0000-000000000000"},
	} {
		rec := doJSON(e, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	}
}

func TestRecipes_CreateAndList(t *testing.T) {
	e := newTestServer(t)
	cookie := signup(t, e, "chef", "secret")

	t.Run("empty collection serializes as an array", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/recipes", "", cookie)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("valid recipe", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/recipes",
			`{"title":"Onion Soup","instructions":"Slice the onions thin, caramelize them slowly in butter, then simmer in stock.","minutes_to_complete":60}`,
			cookie)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Onion Soup", body["title"])
		assert.EqualValues(t, 60, body["minutes_to_complete"])
		assert.NotEmpty(t, body["user_id"])
	})

	t.Run("invalid recipe reports every violation", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/recipes",
			`{"title":"","instructions":"too short"}`, cookie)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t,
			`{"errors":["Title is required.","Instructions must be at least 50 characters long."]}`,
			rec.Body.String())
	})

	t.Run("listing shows only the owner's recipes", func(t *testing.T) {
		otherCookie := signup(t, e, "rival", "secret")
		rec := doJSON(e, http.MethodPost, "/recipes",
			`{"title":"Rival Dish","instructions":"A recipe belonging to a different account that must stay out of other listings."}`,
			otherCookie)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(e, http.MethodGet, "/recipes", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, "Onion Soup", list[0]["title"])
	})
}

func TestRecipes_Get(t *testing.T) {
	e := newTestServer(t)
	cookie := signup(t, e, "owner", "secret")

	created := doJSON(e, http.MethodPost, "/recipes",
		`{"title":"Khichdi","instructions":"Rinse the rice and lentils, then pressure cook with turmeric, salt and plenty of water."}`,
		cookie)
	require.Equal(t, http.StatusCreated, created.Code)

	var recipe map[string]any
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &recipe))
	recipeID, _ := recipe["id"].(string)
	require.NotEmpty(t, recipeID)

	t.Run("own recipe", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/recipes/"+recipeID, "", cookie)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Khichdi")
	})

	t.Run("someone else's recipe is not found", func(t *testing.T) {
		otherCookie := signup(t, e, "intruder", "secret")

		rec := doJSON(e, http.MethodGet, "/recipes/"+recipeID, "", otherCookie)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Recipe not found"}`, rec.Body.String())
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/recipes/not-a-uuid", "", cookie)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Recipe not found"}`, rec.Body.String())
	})
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
