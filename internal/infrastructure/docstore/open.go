package docstore

import (
	"context"
	"fmt"

	"qbrain-backend/internal/config"
)

// Open connects the backend selected by STORE_DRIVER
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		dbCfg, err := config.LoadDatabaseConfig()
		if err != nil {
			return nil, err
		}
		return connectPostgres(ctx, dbCfg)
	case "mongo":
		return NewMongoStore(ctx, cfg.Store.MongoURI, cfg.Store.MongoDB)
	case "sqlite":
		return NewSQLiteStore(cfg.Store.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
