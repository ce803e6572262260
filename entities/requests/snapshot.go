package requests

import (
	"api/database"
	"api/schemas"
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// FetchAll reads the full request collection and normalizes every document.
// Server-side filtering is deliberately coarse (no composite indexes are
// assumed); callers post-filter the snapshot in memory.
func FetchAll(ctx context.Context, client *mongo.Client) ([]schemas.Request, error) {
	collection := client.Database(database.GetDB()).Collection(database.COLLECTION_REQUESTS)

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	collectionDocs := []bson.M{}
	if err := cursor.All(ctx, &collectionDocs); err != nil {
		return nil, err
	}

	normalized := make([]schemas.Request, 0, len(collectionDocs))
	for _, doc := range collectionDocs {
		normalized = append(normalized, schemas.RequestFromDocument(doc))
	}

	SortNewestFirst(normalized)
	return normalized, nil
}
