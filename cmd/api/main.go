package main

import (
	"aquaops/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           AquaOps Admin API
// @version         1.0
// @description     Back-office API for a pool-service business: customers, properties, pools, estimates, scheduling, communications and deposits. Backed by DynamoDB.

// @contact.name   AquaOps Support
// @contact.email  support@aquaops.example

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
