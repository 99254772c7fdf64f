package contact

import (
	"context"

	"github.com/matzehuels/showcase/pkg/config"
	"github.com/matzehuels/showcase/pkg/errors"
)

// Open creates the store selected by cfg.Store.
func Open(ctx context.Context, cfg config.Contact) (Store, error) {
	switch cfg.Store {
	case config.StoreMemory, "":
		return NewMemoryStore(), nil
	case config.StoreSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = "contacts.db"
		}
		return NewSQLiteStore(ctx, path)
	case config.StoreMongo:
		if cfg.MongoURI == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "contact.mongo_uri is required for the mongo store")
		}
		return NewMongoStore(ctx, cfg.MongoURI, cfg.Database, cfg.Collection)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown contact store %q", cfg.Store)
	}
}
