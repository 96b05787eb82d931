package web

import (
	"net/http"
	"os"

	"bitbucket.org/crgw/accessibility-hub/internal/tools/responding"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
)

// OpenapiValidator validates incoming requests against the service's
// OpenAPI document. Requests for paths outside the document (pprof, mcp)
// pass through untouched. When the document cannot be loaded the validator
// degrades to a no-op so a broken deploy artifact does not take the
// service down.
func OpenapiValidator() gin.HandlerFunc {
	location := os.Getenv("OPENAPI_LOCATION")
	if location == "" {
		location = "./api/openapi.json"
	}

	noop := func(c *gin.Context) {}

	loader := openapi3.NewLoader()
	document, err := loader.LoadFromFile(location)
	if err != nil {
		return noop
	}

	err = document.Validate(loader.Context)
	if err != nil {
		return noop
	}

	openapiRouter, err := gorillamux.NewRouter(document)
	if err != nil {
		return noop
	}

	return func(c *gin.Context) {
		route, pathParams, err := openapiRouter.FindRoute(c.Request)
		if err != nil {
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
		}

		err = openapi3filter.ValidateRequest(c.Request.Context(), input)
		if err != nil {
			responding.HandleError(c, http.StatusBadRequest, "Request failed OpenAPI validation", err)
			c.Abort()
		}
	}
}
