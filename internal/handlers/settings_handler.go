package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SettingsStore es lo que el handler necesita del repositorio de configuración
type SettingsStore interface {
	Get(ctx context.Context) (map[string]interface{}, error)
	Update(ctx context.Context, fields map[string]interface{}) error
	Categories(ctx context.Context) (interface{}, error)
}

type SettingsHandler struct {
	store SettingsStore
}

func NewSettingsHandler(store SettingsStore) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// GetSettings devuelve la configuración con los valores por defecto rellenados
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.store.Get(c.Request.Context())
	if err != nil {
		logrus.Error("failed to get settings: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings hace merge superficial de los campos enviados.
// Se acepta cualquier par clave/valor, sin validación de esquema.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.Update(c.Request.Context(), fields); err != nil {
		logrus.Error("failed to update settings: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetCategories devuelve solo la lista de categorías
func (h *SettingsHandler) GetCategories(c *gin.Context) {
	categories, err := h.store.Categories(c.Request.Context())
	if err != nil {
		logrus.Error("failed to get categories: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}
