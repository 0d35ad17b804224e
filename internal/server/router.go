package server

import (
	"errors"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/sessions"

	"github.com/orafinite/ecom-fe/internal/datamodels/cart"
	"github.com/orafinite/ecom-fe/internal/datamodels/catalog"
	"github.com/orafinite/ecom-fe/internal/datamodels/order"
	"github.com/orafinite/ecom-fe/internal/datamodels/review"
	"github.com/orafinite/ecom-fe/internal/middleware"
	"github.com/orafinite/ecom-fe/internal/service"
)

// Deps are the wired services the storefront routes run on.
type Deps struct {
	Catalog  *service.CatalogService
	Carts    *service.CartService
	Reviews  *service.ReviewService
	Orders   *service.OrderService
	Sessions *sessions.Sessions
}

// RegisterRoutes registers the storefront HTTP surface.
func RegisterRoutes(app *iris.Application, d Deps) {
	app.UseRouter(middleware.CORS())

	api := app.Party("/api")

	api.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"code": 0, "msg": "ok"})
	})

	// ---------------- catalog ----------------

	api.Get("/categories", func(ctx iris.Context) {
		cats, err := d.Catalog.Categories(ctx.Request().Context())
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": cats})
	})

	api.Get("/categories/{slug}", func(ctx iris.Context) {
		slug := ctx.Params().Get("slug")
		c, err := d.Catalog.CategoryBySlug(ctx.Request().Context(), slug)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				// unknown slug renders as a not-found state with a way back
				ctx.StopWithJSON(404, iris.Map{"code": 404, "msg": "category not found", "back": "/api/categories"})
				return
			}
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": c})
	})

	api.Get("/categories/{slug}/products/{product}", func(ctx iris.Context) {
		slug := ctx.Params().Get("slug")
		productSlug := ctx.Params().Get("product")
		p, err := d.Catalog.Product(ctx.Request().Context(), slug, productSlug)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				ctx.StopWithJSON(404, iris.Map{"code": 404, "msg": "product not found", "back": "/api/categories/" + slug})
				return
			}
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": p})
	})

	api.Get("/products", func(ctx iris.Context) {
		list, err := d.Catalog.Search(ctx.Request().Context(), ctx.URLParam("q"))
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": list})
	})

	// ---------------- cart ----------------

	sessionCart := func(ctx iris.Context) *cart.Store {
		return d.Carts.Store(d.Sessions.Start(ctx).ID())
	}

	cartView := func(c *cart.Store) iris.Map {
		return iris.Map{"items": c.Items(), "totals": c.Totals()}
	}

	api.Get("/cart", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"code": 0, "data": cartView(sessionCart(ctx))})
	})

	api.Post("/cart/items", func(ctx iris.Context) {
		var item cart.Item
		if err := ctx.ReadJSON(&item); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		if item.ID == "" {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": "missing item id"})
			return
		}
		c := sessionCart(ctx)
		c.Add(item, item.Quantity)
		ctx.JSON(iris.Map{"code": 0, "data": cartView(c)})
	})

	api.Put("/cart/items/{id}", func(ctx iris.Context) {
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		c := sessionCart(ctx)
		c.UpdateQuantity(ctx.Params().Get("id"), req.Quantity)
		ctx.JSON(iris.Map{"code": 0, "data": cartView(c)})
	})

	api.Delete("/cart/items/{id}", func(ctx iris.Context) {
		c := sessionCart(ctx)
		c.Remove(ctx.Params().Get("id"))
		ctx.JSON(iris.Map{"code": 0, "data": cartView(c)})
	})

	api.Delete("/cart", func(ctx iris.Context) {
		c := sessionCart(ctx)
		c.Clear()
		ctx.JSON(iris.Map{"code": 0, "data": cartView(c)})
	})

	// ---------------- reviews ----------------

	api.Get("/reviews", func(ctx iris.Context) {
		rating := ctx.URLParamIntDefault("rating", 0)
		sortMode := ctx.URLParamDefault("sort", review.SortNewest)
		ctx.JSON(iris.Map{"code": 0, "data": d.Reviews.Reviews(rating, sortMode)})
	})

	api.Get("/reviews/summary", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"code": 0, "data": d.Reviews.Summary()})
	})

	api.Post("/reviews", func(ctx iris.Context) {
		var req struct {
			Name    string `json:"name"`
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		rv, err := d.Reviews.Submit(ctx.Request().Context(), req.Name, req.Rating, req.Comment)
		if err != nil {
			// only validation can fail here; transport failures degrade to
			// the optimistic local accept inside the service
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": "invalid review"})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": rv})
	})

	api.Post("/reviews/{id}/helpful", func(ctx iris.Context) {
		count := d.Reviews.ToggleHelpful(d.Sessions.Start(ctx).ID(), ctx.Params().Get("id"))
		ctx.JSON(iris.Map{"code": 0, "data": iris.Map{"helpful": count}})
	})

	// ---------------- checkout ----------------

	api.Post("/checkout", func(ctx iris.Context) {
		var info order.ShippingInfo
		if err := ctx.ReadJSON(&info); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		o, err := d.Orders.PlaceOrder(ctx.Request().Context(), sessionCart(ctx), info)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrEmptyCart):
				ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			default:
				ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			}
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": o})
	})

	api.Get("/orders", func(ctx iris.Context) {
		limit := ctx.URLParamIntDefault("limit", 20)
		list, err := d.Orders.ListRecent(ctx.Request().Context(), limit)
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": list})
	})
}
