package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// nextSequence atomically increments and returns the named integer sequence.
// Users and wizards carry store-assigned integer ids, which MongoDB does not
// provide natively, so a counters collection stands in for auto-increment.
func nextSequence(ctx context.Context, db *mongo.Database, name string) (int, error) {
	var doc struct {
		Seq int `bson:"seq"`
	}

	err := db.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", name, err)
	}

	return doc.Seq, nil
}
