package middleware

import (
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go-fieldops/pkg/apperrors"
	"go-fieldops/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	mu   sync.Mutex
	seen []recordedRequest
}

func (f *fakeObserver) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, recordedRequest{method: method, route: route, status: status})
}

func newTestApp(observer RequestObserver) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Use(Metrics(observer))
	return app
}

func TestErrorHandlerMapsAppErrors(t *testing.T) {
	app := newTestApp(&fakeObserver{})
	app.Get("/offers/:id", func(c *fiber.Ctx) error {
		return apperrors.ErrOfferNotFound
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return io.ErrUnexpectedEOF
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/offers/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":{"code":"OFFER_NOT_FOUND","message":"offer not found"}}`, string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}`, string(body))
}

func TestMetricsRecordsRouteAndRenderedStatus(t *testing.T) {
	observer := &fakeObserver{}
	app := newTestApp(observer)
	app.Get("/api/ofertas/:id", func(c *fiber.Ctx) error {
		return apperrors.ErrConcurrentModification
	})

	_, err := app.Test(httptest.NewRequest("GET", "/api/ofertas/42", nil))
	require.NoError(t, err)

	require.Len(t, observer.seen, 1)
	assert.Equal(t, recordedRequest{method: "GET", route: "/api/ofertas/:id", status: fiber.StatusConflict}, observer.seen[0])
}

func TestAuthMiddleware(t *testing.T) {
	jwt := utils.NewJWTManager("secret")
	app := newTestApp(&fakeObserver{})
	app.Get("/private", AuthMiddleware(jwt, false), func(c *fiber.Ctx) error {
		claims := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		return c.SendString(claims.UserID)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token, err := jwt.GenerateToken("u-7", "", nil)
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "u-7", string(body))
}

func TestRequireRole(t *testing.T) {
	jwt := utils.NewJWTManager("secret")
	app := newTestApp(&fakeObserver{})
	app.Post("/api/ofertas", AuthMiddleware(jwt, false), RequireRole("admin", "comercial"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	send := func(roles ...string) int {
		token, err := jwt.GenerateToken("u-1", "", roles)
		require.NoError(t, err)
		req := httptest.NewRequest("POST", "/api/ofertas", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusCreated, send("comercial"))
	assert.Equal(t, fiber.StatusForbidden, send("brigadista"))
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(RequestIDKey).(string))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	generated := resp.Header.Get(fiber.HeaderXRequestID)
	assert.NotEmpty(t, generated)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, generated, string(body))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-123")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(fiber.HeaderXRequestID))
}
