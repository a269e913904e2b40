package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultStatus   = "In Stock"
	DefaultLocation = "Colorado Springs, CO"

	// sortOrder para documentos antiguos que no tienen el campo
	missingSortOrder = 999
)

// Listing representa un anuncio clasificado
type Listing struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Price       float64            `json:"price" bson:"price"`
	Status      string             `json:"status" bson:"status"`
	Image       string             `json:"image" bson:"image"`
	Excerpt     string             `json:"excerpt" bson:"excerpt"`
	FullText    string             `json:"fullText" bson:"fullText"`
	FacebookURL string             `json:"facebookUrl" bson:"facebookUrl"`
	Category    string             `json:"category" bson:"category"`
	Location    string             `json:"location" bson:"location"`
	PostedDate  time.Time          `json:"postedDate" bson:"postedDate"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"-" bson:"updatedAt"`
	SortOrder   *int               `json:"sortOrder" bson:"sortOrder,omitempty"`
}

// Normalize rellena los campos que pueden faltar en documentos almacenados
func (l *Listing) Normalize() {
	if l.SortOrder == nil {
		order := missingSortOrder
		l.SortOrder = &order
	}
	if l.Location == "" {
		l.Location = DefaultLocation
	}
}

// ListingCreate es el payload de creación de un anuncio
type ListingCreate struct {
	Title       string   `json:"title" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Status      string   `json:"status"`
	Image       string   `json:"image"`
	Excerpt     string   `json:"excerpt" binding:"required"`
	FullText    string   `json:"fullText" binding:"required"`
	FacebookURL string   `json:"facebookUrl"`
	Category    string   `json:"category" binding:"required"`
	Location    string   `json:"location"`
	PostedDate  string   `json:"postedDate"`
}

// NewListing construye un Listing aplicando los valores por defecto
func NewListing(req *ListingCreate, now time.Time) *Listing {
	listing := &Listing{
		Title:       req.Title,
		Price:       *req.Price,
		Status:      req.Status,
		Image:       req.Image,
		Excerpt:     req.Excerpt,
		FullText:    req.FullText,
		FacebookURL: req.FacebookURL,
		Category:    req.Category,
		Location:    req.Location,
		PostedDate:  parsePostedDate(req.PostedDate, now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if listing.Status == "" {
		listing.Status = DefaultStatus
	}
	if listing.Location == "" {
		listing.Location = DefaultLocation
	}
	return listing
}

// parsePostedDate acepta fechas ISO-8601; si falla usa la hora actual
func parsePostedDate(value string, now time.Time) time.Time {
	if value == "" {
		return now
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return now
}

// ListingUpdate representa los campos actualizables de un anuncio.
// Un puntero nil significa "no cambiar", nunca "borrar".
type ListingUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Excerpt     *string  `json:"excerpt,omitempty"`
	FullText    *string  `json:"fullText,omitempty"`
	FacebookURL *string  `json:"facebookUrl,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Location    *string  `json:"location,omitempty"`
}

// Fields devuelve solo los campos explícitamente enviados
func (u *ListingUpdate) Fields() bson.M {
	fields := bson.M{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	if u.Status != nil {
		fields["status"] = *u.Status
	}
	if u.Image != nil {
		fields["image"] = *u.Image
	}
	if u.Excerpt != nil {
		fields["excerpt"] = *u.Excerpt
	}
	if u.FullText != nil {
		fields["fullText"] = *u.FullText
	}
	if u.FacebookURL != nil {
		fields["facebookUrl"] = *u.FacebookURL
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Location != nil {
		fields["location"] = *u.Location
	}
	return fields
}
