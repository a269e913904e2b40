package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"unhinged-listings/internal/models"
	"unhinged-listings/internal/repository"
)

// ListingStore es lo que el handler necesita del repositorio de anuncios
type ListingStore interface {
	List(ctx context.Context, category string) ([]models.Listing, error)
	Get(ctx context.Context, id string) (*models.Listing, error)
	Create(ctx context.Context, listing *models.Listing) error
	Update(ctx context.Context, id string, fields bson.M) (*models.Listing, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

type ListingHandler struct {
	store ListingStore
}

func NewListingHandler(store ListingStore) *ListingHandler {
	return &ListingHandler{store: store}
}

// ListListings lista anuncios, opcionalmente filtrados por categoría
func (h *ListingHandler) ListListings(c *gin.Context) {
	listings, err := h.store.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		logrus.Error("failed to list listings: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list listings"})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GetListing obtiene un anuncio por ID
func (h *ListingHandler) GetListing(c *gin.Context) {
	listing, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		logrus.Error("failed to get listing: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get listing"})
		return
	}
	c.JSON(http.StatusOK, listing)
}

// CreateListing crea un anuncio nuevo al final del orden de visualización
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var req models.ListingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	listing := models.NewListing(&req, time.Now().UTC())
	if err := h.store.Create(c.Request.Context(), listing); err != nil {
		logrus.Error("failed to create listing: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// UpdateListing actualiza parcialmente un anuncio
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	var req models.ListingUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing, err := h.store.Update(c.Request.Context(), c.Param("id"), req.Fields())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		default:
			logrus.Error("failed to update listing: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update listing"})
		}
		return
	}

	c.JSON(http.StatusOK, listing)
}

// DeleteListing elimina un anuncio
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		logrus.Error("failed to delete listing: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": id})
}

type reorderRequest struct {
	Order []string `json:"order"`
}

// ReorderListings asigna sortOrder según la posición en la secuencia enviada
func (h *ListingHandler) ReorderListings(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.Reorder(c.Request.Context(), req.Order); err != nil {
		logrus.Error("failed to reorder listings: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reorder listings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
