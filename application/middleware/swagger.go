package middleware

import (
	"fmt"
	"strings"

	"nachna/build"
	"nachna/config"
	"nachna/docs"

	"github.com/gofiber/fiber/v3"
	fiberSwagger "github.com/somprasongd/fiber-swagger"
)

func APIDoc(config config.Config) fiber.Handler {
	//Swagger Doc details
	host := removeProtocol(config.GatewayHost)
	basePath := config.GatewayBasePath
	schemas := []string{"http", "https"}

	if len(host) == 0 {
		host = fmt.Sprintf("localhost:%d", config.HTTPPort)
	}

	if len(basePath) == 0 {
		basePath = "/api/v1"
	}

	docs.SwaggerInfo.Title = "Nachna API"
	docs.SwaggerInfo.Description = "Dance workshop discovery, booking and rewards API."
	docs.SwaggerInfo.Version = build.Version
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Schemes = schemas

	return fiberSwagger.WrapHandler
}

func removeProtocol(url string) string {
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")
	return url
}
