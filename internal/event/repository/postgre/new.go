package postgre

import (
	"database/sql"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"zenned/internal/event/repository"
	"zenned/pkg/log"
)

// ensuredCacheSize bounds how many per-user tables are remembered as created.
const ensuredCacheSize = 4096

type implRepository struct {
	db      *sql.DB
	l       log.Logger
	ensured *lru.Cache[string, struct{}]
}

// New creates a PostgreSQL-backed events Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("event/repository/postgre: db is required")
	}
	ensured, err := lru.New[string, struct{}](ensuredCacheSize)
	if err != nil {
		panic(fmt.Sprintf("event/repository/postgre: %v", err))
	}
	return &implRepository{db: db, l: l, ensured: ensured}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/postgre.%s", method)
}
