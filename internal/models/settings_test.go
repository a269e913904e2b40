package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDefaultSettingsReturnsFreshCopy(t *testing.T) {
	first := DefaultSettings()
	first["siteTitle"] = "mutated"

	assert.Equal(t, "unhinged listings", DefaultSettings()["siteTitle"])
}

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()

	assert.Len(t, categories, 5)
	assert.Equal(t, "all", categories[0].ID)
	assert.Equal(t, "All Listings", categories[0].Name)
}

func TestMergeDefaultsBackfillsMissingKeys(t *testing.T) {
	stored := bson.M{"_id": SettingsID, "siteTitle": "X"}

	merged := MergeDefaults(stored)

	assert.Equal(t, "X", merged["siteTitle"])
	assert.Equal(t, DefaultSettings()["subtitle"], merged["subtitle"])
	assert.Equal(t, DefaultSettings()["tagline"], merged["tagline"])
	assert.NotContains(t, merged, "_id")
}

func TestMergeDefaultsKeepsStoredExtras(t *testing.T) {
	stored := bson.M{"customKey": "custom value", "updatedAt": "2024-06-01T00:00:00Z"}

	merged := MergeDefaults(stored)

	assert.Equal(t, "custom value", merged["customKey"])
	assert.Equal(t, "2024-06-01T00:00:00Z", merged["updatedAt"])
}

func TestMergeDefaultsDoesNotMutateStored(t *testing.T) {
	stored := bson.M{"siteTitle": "X"}

	MergeDefaults(stored)

	assert.Len(t, stored, 1)
}
