// @title           Praedex Holdings Listing API
// @version         1.0
// @description     REST API for the Praedex real-estate storefront. Lists properties, hotels, land and shortlets, optionally ranked by distance from the caller.

// @host      localhost:8080
// @BasePath  /

// @schemes   http
package main

import (
	"net/http"

	"praedex-api/internal/cache"
	"praedex-api/internal/config"
	"praedex-api/internal/handler"
	"praedex-api/internal/location"
	"praedex-api/internal/models"
	"praedex-api/internal/service"
	"praedex-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "praedex-api/docs" // swagger docs
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	gin.SetMode(config.GinMode)

	// Response cache
	var responseCache cache.Cache
	switch config.CacheBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		responseCache = cache.NewRedis(client, config.CacheTTL, log.Logger)
		log.Info().Str("addr", config.RedisAddr).Msg("using redis response cache")
	default:
		responseCache = cache.NewMemory(config.CacheTTL)
	}

	// Listing store; the in-memory seed set always backs the fallback path.
	fallback := store.NewMemory()
	var lister service.Lister = fallback
	if config.ListerBackend == "remote" {
		lister = store.NewRemote(config.RemoteBaseURL, config.RemoteTimeout)
		log.Info().Str("base_url", config.RemoteBaseURL).Msg("using remote listing service")
	}

	resolver := location.NewResolverWithTimeout(
		location.FixedProvider{Coord: models.Coordinate{Latitude: config.FixedLat, Longitude: config.FixedLng}},
		config.GeoTimeout,
	)

	// Initialize layers
	propertyService := service.NewPropertyService(lister, fallback, responseCache, resolver, log.Logger)
	propertyHandler := handler.NewPropertyHandler(propertyService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/properties", propertyHandler.List)
	r.GET("/properties/:id", propertyHandler.GetByID)
	r.GET("/properties/nearest/:limit", propertyHandler.Nearest)
	r.POST("/properties", propertyHandler.Create)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
