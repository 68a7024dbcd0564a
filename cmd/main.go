// Package main is the entry point for the dish composition service.
//
// @title           Kitchen Chicken Composition API
// @version         1.0.0
// @description     API for composing custom dishes from catalog ingredients.
//
//	Customers build a dish step by step (bread, protein, sauce, ...); the
//	service validates compositions, derives price and calorie totals from
//	the catalog, and supports single-ingredient edits on placed dishes.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/tanphat1102/kitchen-chicken-sub000
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token for staff endpoints.
//
// @tag.name        Dishes
// @tag.description Custom dish composition and mutation operations
//
// @tag.name        Catalog
// @tag.description Customization catalog endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/tanphat1102/kitchen-chicken-sub000/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/tanphat1102/kitchen-chicken-sub000/config"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
