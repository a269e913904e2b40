package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"unhinged-listings/internal/config"
	"unhinged-listings/internal/database"
	"unhinged-listings/internal/repository"
	"unhinged-listings/internal/routes"
	"unhinged-listings/internal/seed"
)

func main() {
	cfg := config.LoadConfig()

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURL)
	if err != nil {
		logrus.Fatal("❌ Could not connect to MongoDB: ", err)
	}
	defer client.Disconnect(ctx)
	logrus.Info("Connected to MongoDB")

	db := client.Database(cfg.DBName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logrus.Fatal("❌ Could not create indexes: ", err)
	}
	if err := seed.SeedIfEmpty(ctx, db); err != nil {
		logrus.Fatal("❌ Could not seed initial data: ", err)
	}

	listings := repository.NewListingRepository(db)
	settings := repository.NewSettingsRepository(db)

	router := gin.Default()
	routes.RegisterRoutes(router, cfg, listings, settings)

	logrus.Info("🚀 Server running on port ", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal(err)
	}
}
