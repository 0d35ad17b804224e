package server

import (
	"github.com/kataras/iris/v12"

	"github.com/orafinite/ecom-fe/internal/datamodels/review"
	"github.com/orafinite/ecom-fe/internal/middleware"
)

// RegisterReviewRoutes registers the review API: a list route and an
// append route over the file-backed store, CORS open to all origins.
// Error bodies are flat {"error": ...} objects so any client can consume
// them without knowing the storefront envelope.
func RegisterReviewRoutes(app *iris.Application, repo review.Repository) {
	app.UseRouter(middleware.CORS())

	app.Get("/api/reviews", func(ctx iris.Context) {
		list, _ := repo.List(ctx.Request().Context())
		ctx.JSON(list)
	})

	app.Post("/api/reviews", middleware.SubmitRateLimit(), func(ctx iris.Context) {
		var rv review.Review
		if err := ctx.ReadJSON(&rv); err != nil || rv.ID == "" {
			ctx.StopWithJSON(400, iris.Map{"error": "invalid"})
			return
		}
		accepted, err := repo.Append(ctx.Request().Context(), rv)
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"error": "failed"})
			return
		}
		ctx.JSON(accepted)
	})
}
