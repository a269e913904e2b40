package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"unhinged-listings/internal/models"
)

type SettingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection("site_settings"),
	}
}

// Get lee el documento singleton y rellena las claves ausentes con los
// valores por defecto. La lectura nunca modifica el documento almacenado.
func (r *SettingsRepository) Get(ctx context.Context) (map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var stored bson.M
	err := r.collection.FindOne(ctx, bson.M{"_id": models.SettingsID}).Decode(&stored)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}

	return models.MergeDefaults(stored), nil
}

// Update hace un merge superficial vía upsert: los campos enviados
// sobrescriben, los omitidos quedan intactos. No se valida el esquema.
func (r *SettingsRepository) Update(ctx context.Context, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	fields["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": models.SettingsID},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	return err
}

// Categories devuelve solo la lista de categorías de la configuración fusionada
func (r *SettingsRepository) Categories(ctx context.Context) (interface{}, error) {
	settings, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	return settings["categories"], nil
}
