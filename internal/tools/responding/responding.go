package responding

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Message string  `json:"message"`
	Detail  *string `json:"detail,omitempty"`
}

// HandleError writes the error envelope and logs it on the request logger
// when one is registered. Callers abort the chain themselves where needed.
func HandleError(ctx *gin.Context, statusCode int, message string, err error) {
	if value, exists := ctx.Get("logger"); exists {
		if logger, ok := value.(*zerolog.Logger); ok {
			event := logger.Warn().
				Str("label", "error").
				Int("code", statusCode)
			if err != nil {
				event = event.Err(err)
			}
			event.Msg(message)
		}
	}

	response := ErrorResponse{
		Message: message,
	}

	if err != nil {
		detail := err.Error()
		response.Detail = &detail
	}

	ctx.JSON(statusCode, response)
}
