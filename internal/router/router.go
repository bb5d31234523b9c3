// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/soyummy/cookbook-api/internal/config"
	"github.com/soyummy/cookbook-api/internal/handler"
)

// Handlers collects every handler the route table needs.
type Handlers struct {
	User         *handler.UserHandler
	Recipe       *handler.RecipeHandler
	OwnRecipe    *handler.OwnRecipeHandler
	Favorite     *handler.FavoriteHandler
	Ingredient   *handler.IngredientHandler
	ShoppingList *handler.ShoppingListHandler
}

// RegisterRoutes registers the whole route table. auth gates protected
// routes; cache is applied only to reference-data reads whose responses are
// identical for every authenticated user.
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers, auth, cache echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Uploaded files are served from the public directories as absolute URLs.
	e.Static("/avatars", cfg.AvatarDir)
	e.Static("/thumbs", cfg.ThumbDir)

	users := e.Group("/users")
	users.POST("/register", h.User.Register)
	users.POST("/signin", h.User.SignIn)
	users.GET("/verify/:verificationToken", h.User.Verify)
	users.POST("/logout", h.User.Logout, auth)
	users.GET("/current", h.User.Current, auth)
	users.PATCH("/current/name", h.User.UpdateName, auth)
	users.PATCH("/current/avatar", h.User.UpdateAvatar, auth)

	favorites := e.Group("/favorites", auth)
	favorites.GET("", h.Favorite.List)
	favorites.POST("/add", h.Favorite.Add)
	favorites.DELETE("/delete", h.Favorite.Remove)

	e.GET("/ingredients/list", h.Ingredient.List, auth, cache)

	own := e.Group("/ownRecipes", auth)
	own.POST("/add", h.OwnRecipe.Add)
	own.GET("", h.OwnRecipe.List)
	own.DELETE("/:recipeId", h.OwnRecipe.Delete)

	recipes := e.Group("/recipes", auth)
	recipes.GET("/category-list", h.Recipe.CategoryList, cache)
	recipes.GET("/category/:category", h.Recipe.ByCategory)
	recipes.GET("/popular-recipe", h.Recipe.Popular)
	recipes.GET("/main-page", h.Recipe.MainPage)
	recipes.GET("/search", h.Recipe.Search)
	recipes.GET("/:recipeId", h.Recipe.ByID)

	list := e.Group("/shopping-list", auth)
	list.GET("", h.ShoppingList.Get)
	list.POST("/add", h.ShoppingList.Add)
	list.DELETE("/:index", h.ShoppingList.Remove)
}
