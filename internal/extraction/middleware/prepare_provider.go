package middleware

import (
	"net/http"

	"bitbucket.org/crgw/accessibility-hub/internal/tools/responding"
	"github.com/gin-gonic/gin"
)

type factory interface {
	GetProvider(string) (any, error)
}

const (
	ProviderKey string = "provider"
)

func PrepareProvider(f factory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		providerFromPath := ctx.Params.ByName("provider")

		provider, err := f.GetProvider(providerFromPath)
		if err != nil {
			responding.HandleError(ctx, http.StatusNotFound, "Failed to find extraction provider", err)
			ctx.Abort()
			return
		}

		ctx.Set(ProviderKey, provider)
	}
}
