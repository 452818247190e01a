// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/resources"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/store/courses"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/store/oauthstate"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/normalize"
	"github.com/jutionck/enigma-upskilling-platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if appCfg.AdminEmail != "" {
		if err := ensureAdmin(ctx, deps, appCfg.AdminEmail, appCfg.AdminName, logger); err != nil {
			return fmt.Errorf("ensure admin: %w", err)
		}
	}

	if err := courses.New(deps.MongoDatabase).SeedDefault(ctx); err != nil {
		return fmt.Errorf("seed courses: %w", err)
	}

	// TTL indexes lag by up to a minute; sweep once so a restart doesn't
	// start with a backlog of dead states.
	if removed, err := oauthstate.New(deps.MongoDatabase).CleanupExpired(ctx); err != nil {
		logger.Warn("oauth state cleanup failed", zap.Error(err))
	} else if removed > 0 {
		logger.Info("removed expired oauth states", zap.Int64("count", removed))
	}

	return nil
}

// ensureAdmin creates or promotes the configured admin record. Under the
// deny-unregistered policy somebody has to be registered before the first
// sign-in, and this is how that somebody gets in.
func ensureAdmin(ctx context.Context, deps DBDeps, email, name string, logger *zap.Logger) error {
	db := deps.MongoDatabase
	emailCI := text.Fold(normalize.Email(email))

	var existing models.User
	err := db.Collection("users").FindOne(ctx, bson.M{"email_ci": emailCI}).Decode(&existing)
	switch {
	case err == mongo.ErrNoDocuments:
		now := time.Now().UTC()
		user := models.User{
			ID:        primitive.NewObjectID(),
			FullName:  name,
			Email:     normalize.Email(email),
			EmailCI:   emailCI,
			Role:      models.RoleAdmin,
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := db.Collection("users").InsertOne(ctx, user); err != nil {
			return err
		}
		logger.Info("created admin user", zap.String("email", user.Email))
		return nil

	case err != nil:
		return err
	}

	if existing.Role == models.RoleAdmin && existing.Status == "active" {
		return nil
	}

	_, err = db.Collection("users").UpdateOne(ctx,
		bson.M{"_id": existing.ID},
		bson.M{"$set": bson.M{
			"role":       models.RoleAdmin,
			"status":     "active",
			"updated_at": time.Now().UTC(),
		}})
	if err != nil {
		return err
	}
	logger.Info("promoted existing user to admin", zap.String("email", existing.Email))
	return nil
}
