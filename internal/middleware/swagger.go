// file: internal/middleware/swagger.go
package middleware

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SwaggerDocURL is where the generated OpenAPI document is served
const SwaggerDocURL = "/swagger/doc.json"

// SwaggerHandler serves the Swagger UI and its doc.json from the
// registered swag document.
func SwaggerHandler() http.Handler {
	return httpSwagger.Handler(
		httpSwagger.URL(SwaggerDocURL),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	)
}
