package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"unhinged-listings/internal/models"
)

var (
	// ErrNotFound cubre tanto ids inexistentes como ids mal formados
	ErrNotFound = errors.New("listing not found")
	// ErrNoFields se devuelve cuando un update parcial no trae ningún campo
	ErrNoFields = errors.New("no fields to update")
)

const (
	defaultTimeout = 5 * time.Second
	queryTimeout   = 10 * time.Second

	// tope de resultados del listado público
	listLimit = 200
)

type ListingRepository struct {
	collection *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{
		collection: db.Collection("listings"),
	}
}

// List devuelve los anuncios ordenados por sortOrder ascendente.
// category vacío o "all" significa sin filtro.
func (r *ListingRepository) List(ctx context.Context, category string) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	if category != "" && category != "all" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "sortOrder", Value: 1}}).
		SetLimit(listLimit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := make([]models.Listing, 0)
	if err = cursor.All(ctx, &listings); err != nil {
		return nil, err
	}

	for i := range listings {
		listings[i].Normalize()
	}
	return listings, nil
}

// Get obtiene un anuncio por ID
func (r *ListingRepository) Get(ctx context.Context, id string) (*models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var listing models.Listing
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&listing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	listing.Normalize()
	return &listing, nil
}

// Create inserta un anuncio nuevo al final del orden de visualización
func (r *ListingRepository) Create(ctx context.Context, listing *models.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	order, err := r.nextSortOrder(ctx)
	if err != nil {
		return err
	}

	listing.ID = primitive.NewObjectID()
	listing.SortOrder = &order

	_, err = r.collection.InsertOne(ctx, listing)
	return err
}

// nextSortOrder calcula el sortOrder siguiente: máximo actual + 1, o 0 si no hay anuncios
func (r *ListingRepository) nextSortOrder(ctx context.Context) (int, error) {
	var top struct {
		SortOrder *int `bson:"sortOrder"`
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "sortOrder", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&top)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if top.SortOrder == nil {
		return 1, nil
	}
	return *top.SortOrder + 1, nil
}

// Update aplica solo los campos enviados y refresca updatedAt
func (r *ListingRepository) Update(ctx context.Context, id string, fields bson.M) (*models.Listing, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	fields["updatedAt"] = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var listing models.Listing
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&listing); err != nil {
		return nil, err
	}
	listing.Normalize()
	return &listing, nil
}

// Delete elimina un anuncio. No renumera los sortOrder restantes.
func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder asigna sortOrder = posición en la secuencia recibida.
// Los ids mal formados se saltan sin error pero consumen su posición.
// Cada documento se actualiza de forma independiente: no hay atomicidad
// entre posiciones, un fallo a mitad deja un orden parcial.
func (r *ListingRepository) Reorder(ctx context.Context, ids []string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	for position, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		_, err = r.collection.UpdateOne(
			ctx,
			bson.M{"_id": objID},
			bson.M{"$set": bson.M{"sortOrder": position}},
		)
		if err != nil {
			return err
		}
	}
	return nil
}
