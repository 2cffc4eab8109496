package migrations

import (
	"context"
	"fmt"
	"log"
	"time"

	"twohtsounds/db"
	"twohtsounds/sitesettings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Migration is a one-off data fix. Applied IDs are recorded in the
// migrations collection, so running the registry repeatedly is a no-op.
type Migration struct {
	ID   string
	Name string
	Run  func(ctx context.Context) error
}

type ledgerEntry struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	AppliedAt time.Time `bson:"applied_at"`
}

var registry = []Migration{
	{
		ID:   "001",
		Name: "backfill isPublic and bookingId on events",
		Run:  backfillEventVisibility,
	},
	{
		ID:   "002",
		Name: "seed default site settings",
		Run:  seedSiteSettings,
	},
}

// Run applies every unapplied migration in registry order.
func Run(ctx context.Context) error {
	for _, m := range registry {
		applied, err := isApplied(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("migration ledger read: %w", err)
		}
		if applied {
			continue
		}

		log.Printf("applying migration %s: %s", m.ID, m.Name)
		if err := m.Run(ctx); err != nil {
			return fmt.Errorf("migration %s: %w", m.ID, err)
		}

		entry := ledgerEntry{ID: m.ID, Name: m.Name, AppliedAt: time.Now().UTC()}
		if _, err := db.MigrationsCollection.InsertOne(ctx, entry); err != nil {
			// A concurrent instance may have recorded it first.
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return fmt.Errorf("migration %s ledger write: %w", m.ID, err)
		}
	}
	return nil
}

func isApplied(ctx context.Context, id string) (bool, error) {
	err := db.MigrationsCollection.FindOne(ctx, bson.M{"_id": id}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// backfillEventVisibility stamps isPublic=true on events written before
// the visibility flag existed and materializes a null bookingId.
func backfillEventVisibility(ctx context.Context) error {
	result, err := db.EventsCollection.UpdateMany(ctx,
		bson.M{"ispublic": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"ispublic": true}},
	)
	if err != nil {
		return err
	}
	if result.ModifiedCount > 0 {
		log.Printf("migration 001: marked %d pre-existing events public", result.ModifiedCount)
	}
	return nil
}

// seedSiteSettings creates the settings singleton up front so the first
// page load never has to take the lazy-create path.
func seedSiteSettings(ctx context.Context) error {
	_, err := sitesettings.GetOrCreate(ctx)
	return err
}
