package main

import (
	_ "gestion_xpto/docs"
	"gestion_xpto/internal/adapter/http/routes"
	"gestion_xpto/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestion XPTO API
// @version         1.0
// @description     Business management API (clients, suppliers, documents, orders, goals, pending accounts) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Setup(logger.FromEnv())
	routes.Run()
}
