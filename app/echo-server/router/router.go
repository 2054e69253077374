package router

import (
	"glowSkincare/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/refresh", handler.RefreshToken)

	users.GET("/me", handler.Me, authRequired)
	users.PUT("/me", handler.UpdateMe, authRequired)
	users.POST("/logout", handler.Logout, authRequired)

	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, adminOnly)
	users.PUT("/:id", handler.UpdateUser, authRequired, adminOnly)
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupQuestionnaireRoutes(api *echo.Group, handler *rest.QuestionnaireHandler, authOptional echo.MiddlewareFunc) {
	q := api.Group("/questionnaire")

	q.POST("", handler.Start, authOptional)
	q.GET("/:session", handler.Get)
	q.POST("/:session/select", handler.Select)
	q.POST("/:session/next", handler.Next)
	q.POST("/:session/back", handler.Back)
}

func SetupFaceScanRoutes(api *echo.Group, handler *rest.FaceScanHandler, authOptional echo.MiddlewareFunc, bodyLimit echo.MiddlewareFunc, rateLimit echo.MiddlewareFunc) {
	scan := api.Group("/face-scan")

	scan.POST("/analyze", handler.Analyze, rateLimit, bodyLimit)
	scan.POST("/confirm", handler.Confirm, authOptional)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc, authOptional echo.MiddlewareFunc) {
	reco := api.Group("/recommendations")

	reco.POST("", handler.Recommend, authOptional)
	reco.GET("/latest", handler.Latest, authRequired)
}

func SetupSubscriptionRoutes(api *echo.Group, handler *rest.SubscriptionHandler, authRequired echo.MiddlewareFunc) {
	subs := api.Group("/subscriptions")

	subs.GET("/plans", handler.Plans)
	subs.GET("/me", handler.Me, authRequired)
	subs.POST("", handler.Subscribe, authRequired)
	subs.POST("/cancel", handler.Cancel, authRequired)
}

func SetupProfileRoutes(api *echo.Group, handler *rest.ProfileHandler, authRequired echo.MiddlewareFunc) {
	profiles := api.Group("/profiles", authRequired)

	profiles.GET("/latest", handler.Latest)
	profiles.GET("/history", handler.History)
}
