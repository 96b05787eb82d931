package middleware

import (
	"net/http"

	"bitbucket.org/crgw/accessibility-hub/internal/tools/responding"
	"github.com/gin-gonic/gin"
)

const (
	PayloadKey string = "payload"
)

// PreparePayload binds the request body into the loosely typed shape the
// extractors consume. Only the envelope has to be a JSON object; everything
// inside it is provider data and stays untyped.
func PreparePayload(ctx *gin.Context) {
	payload := map[string]any{}

	err := ctx.ShouldBindJSON(&payload)
	if err != nil {
		responding.HandleError(ctx, http.StatusBadRequest, "Failed to bind request payload", err)
		ctx.Abort()
		return
	}

	ctx.Set(PayloadKey, payload)
}
