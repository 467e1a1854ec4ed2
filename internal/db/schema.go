package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Schema DDL kept to the dialect subset both drivers accept.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS regions (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL UNIQUE,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		display_name VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_regions (
		user_id VARCHAR(36) NOT NULL,
		region_id VARCHAR(36) NOT NULL,
		UNIQUE (user_id, region_id),
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (region_id) REFERENCES regions(id)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id VARCHAR(36) PRIMARY KEY,
		region_id VARCHAR(36) NOT NULL,
		timestamp DATETIME NOT NULL,
		category VARCHAR(255) NOT NULL,
		sentiment_score DOUBLE NOT NULL,
		source_url VARCHAR(2048) NOT NULL,
		raw_data TEXT,
		title VARCHAR(512) NOT NULL,
		summary TEXT NOT NULL,
		FOREIGN KEY (region_id) REFERENCES regions(id)
	)`,
	`CREATE TABLE IF NOT EXISTS event_likes (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) NOT NULL,
		event_id VARCHAR(36) NOT NULL,
		UNIQUE (user_id, event_id),
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (event_id) REFERENCES events(id)
	)`,
	`CREATE TABLE IF NOT EXISTS event_comments (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) NOT NULL,
		event_id VARCHAR(36) NOT NULL,
		text TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (event_id) REFERENCES events(id)
	)`,
	`CREATE TABLE IF NOT EXISTS event_attending (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) NOT NULL,
		event_id VARCHAR(36) NOT NULL,
		UNIQUE (user_id, event_id),
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (event_id) REFERENCES events(id)
	)`,
}

const (
	seedRegionName = "San Diego"
	seedRegionSlug = "san-diego"
)

// InitSchema creates all tables if they do not exist and seeds the
// default region. Safe to run on every startup.
func InitSchema(ctx context.Context, dbConn *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := dbConn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema init failed: %w", err)
		}
	}
	return seedDefaultRegion(ctx, dbConn)
}

func seedDefaultRegion(ctx context.Context, dbConn *sqlx.DB) error {
	var count int
	if err := dbConn.GetContext(ctx, &count, `SELECT COUNT(*) FROM regions WHERE slug = ?`, seedRegionSlug); err != nil {
		return fmt.Errorf("seed region lookup failed: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := dbConn.ExecContext(ctx,
		`INSERT INTO regions (id, name, slug, created_at) VALUES (?, ?, ?, ?)`,
		uuid.New().String(), seedRegionName, seedRegionSlug, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("seed region insert failed: %w", err)
	}
	return nil
}
