package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
)

// Seed loads the development fixture data: three wizards, eight artifacts
// (five of them owned) and two users. It is a no-op when users already exist.
func Seed(ctx context.Context, db *mongo.Database, logger zerolog.Logger) error {
	users := NewUserRepository(db)
	wizards := NewWizardRepository(db)
	artifacts := NewArtifactRepository(db)

	count, err := db.Collection(usersCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if count > 0 {
		logger.Debug().Msg("seed skipped, users already present")
		return nil
	}

	seedUsers := []struct {
		username string
		password string
		roles    string
	}{
		{"john", "Admin123", "admin user"},
		{"eric", "User1234", "user"},
	}
	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := users.Create(ctx, &domain.User{
			Username: u.username,
			Password: string(hash),
			Enabled:  true,
			Roles:    u.roles,
		}); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}

	seedWizards := []struct {
		name     string
		birthday time.Time
	}{
		{"SuperMan", time.Date(1901, 2, 24, 18, 30, 0, 0, time.UTC)},
		{"WonderWoman", time.Date(1730, 10, 22, 4, 51, 0, 0, time.UTC)},
		{"SpiderMan", time.Date(2001, 7, 1, 6, 10, 0, 0, time.UTC)},
	}
	wizardIDs := make([]int, 0, len(seedWizards))
	for _, w := range seedWizards {
		created, err := wizards.Create(ctx, &domain.Wizard{Name: w.name, Birthday: w.birthday})
		if err != nil {
			return fmt.Errorf("seed wizard %s: %w", w.name, err)
		}
		wizardIDs = append(wizardIDs, created.ID)
	}

	seedArtifacts := []struct {
		id          string
		name        string
		description string
		ownerIdx    int // index into wizardIDs, -1 for unowned
	}{
		{"12301", "First Artifact", "First Artifact hide", 0},
		{"12302", "Second Artifact", "Second Artifact get small", 0},
		{"12303", "Third Artifact", "Third Artifact get large", 1},
		{"12304", "Fourth Artifact", "Fourth Artifact fly", 1},
		{"12305", "Fifth Artifact", "Fifth Artifact money", 2},
		{"12306", "Sixth Artifact", "Sixth Artifact brain", -1},
		{"12307", "Seventh Artifact", "Seventh Artifact culture", -1},
		{"12308", "Eighth Artifact", "Eighth Artifact keyboard", -1},
	}
	for _, a := range seedArtifacts {
		artifact := &domain.Artifact{
			ID:          a.id,
			Name:        a.name,
			Description: a.description,
			ImageURL:    "image",
			CreatedAt:   time.Now().UTC(),
		}
		if a.ownerIdx >= 0 {
			owner := wizardIDs[a.ownerIdx]
			artifact.OwnerID = &owner
		}
		if err := artifacts.Create(ctx, artifact); err != nil {
			return fmt.Errorf("seed artifact %s: %w", a.id, err)
		}
	}

	logger.Info().
		Int("users", len(seedUsers)).
		Int("wizards", len(seedWizards)).
		Int("artifacts", len(seedArtifacts)).
		Msg("development data seeded")
	return nil
}
