package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

const artifactsCollection = "artifacts"

type ArtifactRepository struct {
	coll *mongo.Collection
}

func NewArtifactRepository(db *mongo.Database) *ArtifactRepository {
	return &ArtifactRepository{coll: db.Collection(artifactsCollection)}
}

type artifactDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	ImageURL    string    `bson:"image_url"`
	CreatedAt   time.Time `bson:"created_at"`
	OwnerID     *int      `bson:"owner_id,omitempty"`
}

func toArtifactDoc(a *domain.Artifact) artifactDoc {
	return artifactDoc{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		CreatedAt:   a.CreatedAt,
		OwnerID:     a.OwnerID,
	}
}

func (d artifactDoc) toDomain() *domain.Artifact {
	return &domain.Artifact{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		CreatedAt:   d.CreatedAt.UTC(),
		OwnerID:     d.OwnerID,
	}
}

func (r *ArtifactRepository) FindByID(ctx context.Context, id string) (*domain.Artifact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc artifactDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("artifact", id)
		}
		return nil, fmt.Errorf("find artifact: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ArtifactRepository) Create(ctx context.Context, artifact *domain.Artifact) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toArtifactDoc(artifact)); err != nil {
		return fmt.Errorf("insert artifact: %w", err)
	}
	return nil
}

func (r *ArtifactRepository) Update(ctx context.Context, artifact *domain.Artifact) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": artifact.ID}, toArtifactDoc(artifact))
	if err != nil {
		return fmt.Errorf("update artifact: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.NotFound("artifact", artifact.ID)
	}
	return nil
}

func (r *ArtifactRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete artifact: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.NotFound("artifact", id)
	}
	return nil
}

func (r *ArtifactRepository) List(ctx context.Context, filter ports.ListArtifactsFilter) ([]*domain.Artifact, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildArtifactQuery(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count artifacts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list artifacts: %w", err)
	}
	defer cursor.Close(ctx)

	artifacts, err := decodeArtifacts(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}
	return artifacts, total, nil
}

func (r *ArtifactRepository) ListAll(ctx context.Context) ([]*domain.Artifact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeArtifacts(ctx, cursor)
}

func (r *ArtifactRepository) SetOwner(ctx context.Context, id string, ownerID *int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var update bson.M
	if ownerID == nil {
		update = bson.M{"$unset": bson.M{"owner_id": ""}}
	} else {
		update = bson.M{"$set": bson.M{"owner_id": *ownerID}}
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("set artifact owner: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.NotFound("artifact", id)
	}
	return nil
}

func (r *ArtifactRepository) DetachAllFromOwner(ctx context.Context, ownerID int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.UpdateMany(ctx,
		bson.M{"owner_id": ownerID},
		bson.M{"$unset": bson.M{"owner_id": ""}},
	)
	if err != nil {
		return fmt.Errorf("detach artifacts: %w", err)
	}
	return nil
}

func (r *ArtifactRepository) CountByOwner(ctx context.Context, ownerID int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("count artifacts by owner: %w", err)
	}
	return count, nil
}

func (r *ArtifactRepository) ListByOwner(ctx context.Context, ownerID int) ([]*domain.Artifact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list artifacts by owner: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeArtifacts(ctx, cursor)
}

// EnsureIndexes creates the owner index used by count and detach queries.
func (r *ArtifactRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}

func buildArtifactQuery(filter ports.ListArtifactsFilter) bson.M {
	query := bson.M{}
	if filter.ID != "" {
		query["_id"] = filter.ID
	}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": escapeRegex(filter.Name), "$options": "i"}
	}
	if filter.Description != "" {
		query["description"] = bson.M{"$regex": escapeRegex(filter.Description), "$options": "i"}
	}
	if len(filter.OwnerIDs) > 0 {
		query["owner_id"] = bson.M{"$in": filter.OwnerIDs}
	}
	return query
}

func decodeArtifacts(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Artifact, error) {
	var artifacts []*domain.Artifact
	for cursor.Next(ctx) {
		var doc artifactDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode artifact: %w", err)
		}
		artifacts = append(artifacts, doc.toDomain())
	}
	return artifacts, cursor.Err()
}

// escapeRegex neutralises regex metacharacters in user-supplied criteria.
func escapeRegex(s string) string {
	return regexp.QuoteMeta(s)
}
