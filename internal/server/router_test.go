package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/httptest"
	"github.com/kataras/iris/v12/sessions"
	"github.com/stretchr/testify/require"

	"github.com/orafinite/ecom-fe/internal/infra/cache"
	"github.com/orafinite/ecom-fe/internal/infra/reviewapi"
	"github.com/orafinite/ecom-fe/internal/repository/file"
	"github.com/orafinite/ecom-fe/internal/repository/memory"
	"github.com/orafinite/ecom-fe/internal/service"
)

const testCatalog = `{
  "categories": [
    {
      "name": "Audio",
      "slug": "audio",
      "products": [
        {"title": "Wireless Headphones", "price": 89.99},
        {"title": "Portable Speaker", "price": 49.99}
      ]
    }
  ]
}`

// newStorefront wires the full storefront against a dead review API, the
// availability-first path every handler has to survive.
func newStorefront(t *testing.T) *httptest.Expect {
	t.Helper()
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalog), 0o644))

	catalogRepo, err := file.NewCatalogRepository(catalogPath)
	require.NoError(t, err)

	reviews := service.NewReviewService(
		reviewapi.NewClient("http://127.0.0.1:1"), // nothing listens here
		cache.New(filepath.Join(dir, "cache.json")),
		filepath.Join(dir, "bundled.json"),
	)

	deps := Deps{
		Catalog:  service.NewCatalogService(catalogRepo),
		Carts:    service.NewCartService(),
		Reviews:  reviews,
		Orders:   service.NewOrderService(memory.NewOrderRepository()),
		Sessions: sessions.New(sessions.Config{Cookie: "sessioncookie", Expires: time.Hour}),
	}

	app := iris.New()
	RegisterRoutes(app, deps)
	return httptest.New(t, app)
}

func TestCategoryAndProductLookup(t *testing.T) {
	e := newStorefront(t)

	e.GET("/api/categories").Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Array().Length().IsEqual(1)

	e.GET("/api/categories/audio").Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Object().HasValue("name", "Audio")

	e.GET("/api/categories/audio/products/wireless-headphones").Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Object().HasValue("title", "Wireless Headphones")
}

func TestUnknownSlugsRenderNotFoundWithWayBack(t *testing.T) {
	e := newStorefront(t)

	e.GET("/api/categories/nope").Expect().Status(httptest.StatusNotFound).
		JSON().Object().HasValue("back", "/api/categories")

	e.GET("/api/categories/audio/products/nope").Expect().Status(httptest.StatusNotFound).
		JSON().Object().HasValue("back", "/api/categories/audio")
}

func TestProductSearch(t *testing.T) {
	e := newStorefront(t)

	e.GET("/api/products").WithQuery("q", "speaker").Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Array().Length().IsEqual(1)
}

func TestCartFlow(t *testing.T) {
	e := newStorefront(t)

	add := map[string]any{"id": "p1", "name": "Wireless Headphones", "price": 89.99, "quantity": 2}
	data := e.POST("/api/cart/items").WithJSON(add).Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Object()
	data.Value("items").Array().Length().IsEqual(1)
	data.Value("totals").Object().HasValue("shipping", 0).HasValue("subtotal", 179.98)

	e.PUT("/api/cart/items/p1").WithJSON(map[string]any{"quantity": 1}).Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Object().
		Value("totals").Object().HasValue("shipping", 9.99)

	e.DELETE("/api/cart/items/p1").Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Object().Value("items").Array().IsEmpty()
}

func TestCheckoutClearsCart(t *testing.T) {
	e := newStorefront(t)

	add := map[string]any{"id": "p1", "name": "Portable Speaker", "price": 49.99, "quantity": 1}
	e.POST("/api/cart/items").WithJSON(add).Expect().Status(httptest.StatusOK)

	form := map[string]any{"firstName": "Maya", "lastName": "K", "email": "maya@example.com", "address": "1 Main St"}
	e.POST("/api/checkout").WithJSON(form).Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Object().Value("id").String().NotEmpty()

	e.GET("/api/cart").Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Object().Value("items").Array().IsEmpty()

	e.GET("/api/orders").Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Array().Length().IsEqual(1)
}

func TestCheckoutValidation(t *testing.T) {
	e := newStorefront(t)

	// empty cart first
	form := map[string]any{"firstName": "Maya", "lastName": "K", "email": "maya@example.com", "address": "1 Main St"}
	e.POST("/api/checkout").WithJSON(form).Expect().Status(httptest.StatusBadRequest)

	add := map[string]any{"id": "p1", "name": "Portable Speaker", "price": 49.99, "quantity": 1}
	e.POST("/api/cart/items").WithJSON(add).Expect().Status(httptest.StatusOK)

	// then a missing required field
	e.POST("/api/checkout").WithJSON(map[string]any{"firstName": "Maya"}).
		Expect().Status(httptest.StatusBadRequest)
}

func TestReviewSubmitSurvivesDeadAPI(t *testing.T) {
	e := newStorefront(t)

	body := map[string]any{"name": "Jordan", "rating": 4, "comment": "still works offline"}
	submitted := e.POST("/api/reviews").WithJSON(body).Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Object()
	submitted.HasValue("name", "Jordan")

	list := e.GET("/api/reviews").Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Array()
	list.Length().IsEqual(1)
	list.Value(0).Object().HasValue("name", "Jordan")

	e.GET("/api/reviews/summary").Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Object().HasValue("average", "4.0")
}

func TestReviewSubmitValidationIsRejected(t *testing.T) {
	e := newStorefront(t)

	e.POST("/api/reviews").WithJSON(map[string]any{"name": "", "rating": 4, "comment": "c"}).
		Expect().Status(httptest.StatusBadRequest)

	e.POST("/api/reviews").WithJSON(map[string]any{"name": "n", "rating": 9, "comment": "c"}).
		Expect().Status(httptest.StatusBadRequest)
}

func TestHelpfulToggle(t *testing.T) {
	e := newStorefront(t)

	e.POST("/api/reviews/r1/helpful").Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Object().HasValue("helpful", 1)

	e.POST("/api/reviews/r1/helpful").Expect().Status(httptest.StatusOK).
		JSON().Object().Value("data").Object().HasValue("helpful", 0)
}
