package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
)

const wizardsCollection = "wizards"

type WizardRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewWizardRepository(db *mongo.Database) *WizardRepository {
	return &WizardRepository{db: db, coll: db.Collection(wizardsCollection)}
}

type wizardDoc struct {
	ID       int                `bson:"_id"`
	Name     string             `bson:"name"`
	Birthday primitive.DateTime `bson:"birthday"`
}

func toWizardDoc(w *domain.Wizard) wizardDoc {
	return wizardDoc{
		ID:       w.ID,
		Name:     w.Name,
		Birthday: primitive.NewDateTimeFromTime(w.Birthday),
	}
}

func (d wizardDoc) toDomain() *domain.Wizard {
	return &domain.Wizard{
		ID:       d.ID,
		Name:     d.Name,
		Birthday: d.Birthday.Time().UTC(),
	}
}

func (r *WizardRepository) FindByID(ctx context.Context, id int) (*domain.Wizard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc wizardDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("wizard", id)
		}
		return nil, fmt.Errorf("find wizard: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *WizardRepository) FindIDsByName(ctx context.Context, name string) ([]int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"name": bson.M{"$regex": "^" + escapeRegex(name) + "$", "$options": "i"}}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("find wizards by name: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []int
	for cursor.Next(ctx) {
		var doc struct {
			ID int `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode wizard id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

func (r *WizardRepository) Create(ctx context.Context, wizard *domain.Wizard) (*domain.Wizard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, wizardsCollection)
	if err != nil {
		return nil, err
	}

	doc := toWizardDoc(wizard)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert wizard: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *WizardRepository) Update(ctx context.Context, wizard *domain.Wizard) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": wizard.ID}, toWizardDoc(wizard))
	if err != nil {
		return fmt.Errorf("update wizard: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.NotFound("wizard", wizard.ID)
	}
	return nil
}

func (r *WizardRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete wizard: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.NotFound("wizard", id)
	}
	return nil
}

func (r *WizardRepository) ListAll(ctx context.Context) ([]*domain.Wizard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list wizards: %w", err)
	}
	defer cursor.Close(ctx)

	var wizards []*domain.Wizard
	for cursor.Next(ctx) {
		var doc wizardDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode wizard: %w", err)
		}
		wizards = append(wizards, doc.toDomain())
	}
	return wizards, cursor.Err()
}
