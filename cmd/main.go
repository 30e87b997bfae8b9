package main

import (
	"log"

	"github.com/Prashant8008/Fitness-Ai/config"
	"github.com/Prashant8008/Fitness-Ai/routes"
	"github.com/Prashant8008/Fitness-Ai/services"
)

func main() {
	cfg := config.Load()
	db := config.InitDB(cfg)

	adviser := services.NewAdviceService(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)

	r := routes.SetupRouter(db, cfg, adviser)
	log.Fatal(r.Run(":" + cfg.Port))
}
