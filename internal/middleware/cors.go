package middleware

import "github.com/kataras/iris/v12"

// CORS permits all origins, mirroring the local-dev posture of the review
// API. OPTIONS preflights are answered with a bare 200.
func CORS() iris.Handler {
	return func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusOK)
			return
		}
		ctx.Next()
	}
}
