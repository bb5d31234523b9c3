package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/soyummy/cookbook-api/internal/config"
	"github.com/soyummy/cookbook-api/internal/database"
	"github.com/soyummy/cookbook-api/internal/handler"
	"github.com/soyummy/cookbook-api/internal/middleware"
	"github.com/soyummy/cookbook-api/internal/queue"
	"github.com/soyummy/cookbook-api/internal/repository"
	"github.com/soyummy/cookbook-api/internal/router"
	"github.com/soyummy/cookbook-api/internal/service"
	"github.com/soyummy/cookbook-api/internal/validate"
	"github.com/soyummy/cookbook-api/pkg/logger"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("database migration failed")
	}

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable; response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	users := repository.NewUserRepo(db)
	recipes := repository.NewRecipeRepo(db)
	favorites := repository.NewFavoriteRepo(db)
	ingredients := repository.NewIngredientRepo(db)
	categories := repository.NewCategoryRepo(db)
	lists := repository.NewShoppingListRepo(db)

	mail := service.NewMailPublisher(cfg.AMQPURL, log)
	go queue.StartMailConsumer(cfg.AMQPURL, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validate.New()
	e.Use(rateMW)

	h := router.Handlers{
		User:         handler.NewUserHandler(cfg, users, mail),
		Recipe:       handler.NewRecipeHandler(recipes, categories),
		OwnRecipe:    handler.NewOwnRecipeHandler(cfg, recipes),
		Favorite:     handler.NewFavoriteHandler(favorites),
		Ingredient:   handler.NewIngredientHandler(ingredients),
		ShoppingList: handler.NewShoppingListHandler(lists),
	}
	router.RegisterRoutes(e, cfg, h, middleware.Auth(cfg.JWTSecret, users), cacheMW)

	addr := ":" + cfg.Port
	log.Infof("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
