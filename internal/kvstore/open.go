package kvstore

import (
	"fmt"

	"github.com/internship-hub-portal/internal/config"
	"github.com/internship-hub-portal/internal/database"
	"github.com/rs/zerolog"
)

// Open builds the store selected by cfg.Store.Driver. The returned close
// function releases the backend connection.
func Open(cfg *config.Config, log zerolog.Logger) (Store, func() error, error) {
	noClose := func() error { return nil }

	switch cfg.Store.Driver {
	case config.StoreMemory:
		return NewMemory(), noClose, nil
	case config.StoreNone:
		return Nop{}, noClose, nil
	case config.StoreRedis:
		store, err := NewRedis(cfg.Redis.URL, cfg.Store.Prefix)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.StorePostgres:
		db, err := database.New(&cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return NewPostgres(db, cfg.Store.Prefix), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
