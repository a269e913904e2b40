package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"unhinged-listings/internal/config"
	"unhinged-listings/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, cfg *config.Config, listings handlers.ListingStore, settings handlers.SettingsStore) {
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
	}))

	lh := handlers.NewListingHandler(listings)
	sh := handlers.NewSettingsHandler(settings)
	ah := handlers.NewAdminHandler(cfg.AdminPassword)

	api := router.Group("/api")
	{
		api.GET("/listings", lh.ListListings)
		api.GET("/listings/:id", lh.GetListing)
		api.GET("/categories", sh.GetCategories)
		api.GET("/settings", sh.GetSettings)
		api.POST("/admin/verify", ah.Verify)

		admin := api.Group("/admin", handlers.RequireAdmin(cfg.AdminPassword))
		{
			admin.POST("/listings", lh.CreateListing)
			admin.PUT("/listings/:id", lh.UpdateListing)
			admin.DELETE("/listings/:id", lh.DeleteListing)
			admin.PUT("/reorder", lh.ReorderListings)
			admin.PUT("/settings", sh.UpdateSettings)
		}
	}

	router.NoRoute(serveFrontend(cfg.StaticDir))
}

// serveFrontend resuelve cualquier ruta no-API contra el bundle estático.
// Si no hay archivo se sirve index.html (routing del lado del cliente).
func serveFrontend(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		c.File(filepath.Join(staticDir, "index.html"))
	}
}
