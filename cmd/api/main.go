package main

import (
	_ "lazarus_guide/docs"
	"lazarus_guide/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"
)

// @title           Guides Service API
// @version         1.0
// @description     TISS guide management and audit service with time-windowed analytics.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3011

// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Static service API key.

func main() {
	decimal.MarshalJSONWithoutQuotes = true
	routes.Run()
}
