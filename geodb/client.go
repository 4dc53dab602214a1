// Package geodb persists the imported Borgarlína analysis datasets (small
// areas, population figures, schools, station layouts) in SQLite and
// exposes typed queries over them.
package geodb

import (
	"database/sql"
	"fmt"
)

// Client is the main entry point for the dataset store.
type Client struct {
	config  Config
	DB      *sql.DB
	Queries *Queries
}

// NewClient opens the database, creates the schema and returns a ready
// client.
func NewClient(config Config) (*Client, error) {
	db, err := initDB(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create dataset database: %w", err)
	}

	return &Client{
		config:  config,
		DB:      db,
		Queries: New(db),
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}
