package db

import (
	"context"
	"fmt"

	"task-service/internal/config"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure/db/mongodb"
	"task-service/internal/infrastructure/db/relational"
)

// Stores bundles the user and task repositories of one backend.
type Stores struct {
	Users repositories.UserRepository
	Tasks repositories.TaskRepository

	close func(ctx context.Context) error
}

// Open connects the backend selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.StoreDriver {
	case "mongo":
		client, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		database := client.Database(cfg.MongoDatabase)
		if err := mongodb.EnsureIndexes(ctx, database); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &Stores{
			Users: mongodb.NewUserRepository(database),
			Tasks: mongodb.NewTaskRepository(database),
			close: client.Disconnect,
		}, nil

	case "postgres", "sqlite":
		dsn := cfg.PostgreSQL
		if cfg.StoreDriver == "sqlite" {
			dsn = cfg.SQLitePath
		}
		gormDB, err := relational.Open(cfg.StoreDriver, dsn)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("unwrap %s pool: %w", cfg.StoreDriver, err)
		}
		return &Stores{
			Users: relational.NewUserRepository(gormDB),
			Tasks: relational.NewTaskRepository(gormDB),
			close: func(context.Context) error { return sqlDB.Close() },
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
