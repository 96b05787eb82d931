package extraction

import (
	"crypto/sha256"
	"encoding/hex"
	jsonEncoding "encoding/json"
	"fmt"
	"net/http"
	"time"

	"bitbucket.org/crgw/accessibility-hub/internal/extraction/errors"
	"bitbucket.org/crgw/accessibility-hub/internal/extraction/factory"
	"bitbucket.org/crgw/accessibility-hub/internal/extraction/interfaces"
	extractionMiddleware "bitbucket.org/crgw/accessibility-hub/internal/extraction/middleware"
	"bitbucket.org/crgw/accessibility-hub/internal/schema"
	"bitbucket.org/crgw/accessibility-hub/internal/ssr"
	"bitbucket.org/crgw/accessibility-hub/internal/tools/caching"
	"bitbucket.org/crgw/accessibility-hub/internal/tools/redisfactory"
	"bitbucket.org/crgw/accessibility-hub/internal/tools/responding"
	"bitbucket.org/crgw/accessibility-hub/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const ResponsesCacheTTL = time.Duration(900) * time.Second

type ValidateCodesParams struct {
	Codes []string `json:"codes"`
}

type CodeDescription struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CacheKey identifies one extraction result. Payloads are re-marshalled
// before hashing so differently ordered but equal objects share an entry.
func CacheKey(provider string, operation string, payload map[string]any) string {
	canonical, _ := jsonEncoding.Marshal(payload)
	digest := sha256.Sum256(canonical)

	return fmt.Sprintf("extraction:%s:%s:%s", provider, operation, hex.EncodeToString(digest[:]))
}

func RegisterRoutes(
	router *gin.Engine,
	factory *factory.Factory,
	redisFactory *redisfactory.Factory,
) {
	cache := caching.NewRedisCache(redisFactory.ResponsesCacheClient())

	group := router.Group(
		"/:provider",
		extractionMiddleware.PrepareProvider(factory),
		extractionMiddleware.TapLogger,
	)

	group.POST("/hotel",
		extractionMiddleware.PreparePayload,
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			key := fmt.Sprintf("%s:hotel", ctx.Params.ByName("provider"))
			slowLog.Start(key)

			providerWithHotelExtraction, ok := ctx.MustGet(extractionMiddleware.ProviderKey).(interfaces.WithHotelExtraction)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Hotel extraction not implemented", errors.ErrorNotImplemented)
				return
			}

			payload, ok := ctx.MustGet(extractionMiddleware.PayloadKey).(map[string]any)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request payload", nil)
				return
			}

			cacheKey := CacheKey(ctx.Params.ByName("provider"), "hotel", payload)

			cached := schema.HotelAccessibility{}
			if cache.Fetch(ctx.Request.Context(), cacheKey, &cached) {
				ctx.JSON(http.StatusOK, cached)
				slowLog.Stop(key)
				return
			}

			hotel := providerWithHotelExtraction.ExtractHotelAccessibility(payload)

			err := cache.Store(ctx.Request.Context(), cacheKey, hotel, ResponsesCacheTTL)
			if err != nil {
				logger.Debug().Err(err).Msg("Failed to cache hotel extraction")
			}

			ctx.JSON(http.StatusOK, hotel)

			slowLog.Stop(key)
		},
	)

	group.POST("/flight",
		extractionMiddleware.PreparePayload,
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			key := fmt.Sprintf("%s:flight", ctx.Params.ByName("provider"))
			slowLog.Start(key)

			providerWithFlightExtraction, ok := ctx.MustGet(extractionMiddleware.ProviderKey).(interfaces.WithFlightExtraction)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Flight extraction not implemented", errors.ErrorNotImplemented)
				return
			}

			payload, ok := ctx.MustGet(extractionMiddleware.PayloadKey).(map[string]any)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request payload", nil)
				return
			}

			cacheKey := CacheKey(ctx.Params.ByName("provider"), "flight", payload)

			cached := schema.FlightAccessibility{}
			if cache.Fetch(ctx.Request.Context(), cacheKey, &cached) {
				ctx.JSON(http.StatusOK, cached)
				slowLog.Stop(key)
				return
			}

			flight := providerWithFlightExtraction.ExtractFlightAccessibility(payload)

			err := cache.Store(ctx.Request.Context(), cacheKey, flight, ResponsesCacheTTL)
			if err != nil {
				logger.Debug().Err(err).Msg("Failed to cache flight extraction")
			}

			ctx.JSON(http.StatusOK, flight)

			slowLog.Stop(key)
		},
	)

	router.GET("/ssr-codes", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, ssr.AllCodes())
	})

	router.GET("/ssr-codes/:code", func(ctx *gin.Context) {
		code := ctx.Params.ByName("code")

		description, ok := ssr.Description(code)
		if !ok {
			responding.HandleError(ctx, http.StatusNotFound, "SSR code not found", errors.ErrorUnknownCode)
			return
		}

		ctx.JSON(http.StatusOK, CodeDescription{
			Code:        code,
			Description: description,
		})
	})

	router.POST("/ssr-codes/validate", func(ctx *gin.Context) {
		params := ValidateCodesParams{}

		err := ctx.ShouldBindJSON(&params)
		if err != nil {
			responding.HandleError(ctx, http.StatusBadRequest, "Failed to bind request payload", err)
			return
		}

		validated, err := ssr.ValidateCodes(params.Codes)
		if err != nil {
			responding.HandleError(ctx, http.StatusUnprocessableEntity, "Invalid SSR codes", err)
			return
		}

		ctx.JSON(http.StatusOK, ValidateCodesParams{Codes: validated})
	})
}
