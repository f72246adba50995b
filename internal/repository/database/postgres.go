package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
)

// Pool is the part of pgxpool.Pool the repositories rely on.
type Pool interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type DBObject struct {
	pool Pool
}

func NewPostgresConnection(cfg configs.DatabaseConfig) (*DBObject, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	connectionString := buildConnectionString(cfg)
	poolConfig, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		log.Printf("[DEBUG] [Ads-Service] Failed to parse Postgres-connection string: %v", err)
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Printf("[DEBUG] [Ads-Service] Failed to create Postgres-connection pool: %v", err)
		return nil, err
	}
	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		log.Printf("[DEBUG] [Ads-Service] Postgre-Client-Ping error: %v", err)
		return nil, err
	}
	db := &DBObject{pool: pool}
	if err := db.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Println("[DEBUG] [Ads-Service] Successful connect to Postgres-Client")
	return db, nil
}

// NewDBObject wraps an already opened pool.
func NewDBObject(pool Pool) *DBObject {
	return &DBObject{pool: pool}
}
func (db *DBObject) Close() {
	db.pool.Close()
	log.Println("[DEBUG] [Ads-Service] Successful close Postgre-Client")
}
func (db *DBObject) Ping(ctx context.Context) error {
	err := db.pool.Ping(ctx)
	if err != nil {
		log.Printf("[DEBUG] [Ads-Service] Postgre-Client-Ping error: %v", err)
		return err
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	userid       UUID PRIMARY KEY,
	username     TEXT NOT NULL,
	useremail    TEXT NOT NULL UNIQUE,
	userpassword TEXT NOT NULL,
	userphone    TEXT,
	userstate    TEXT
);
CREATE TABLE IF NOT EXISTS listings (
	listingid   UUID PRIMARY KEY,
	userid      UUID NOT NULL REFERENCES users(userid) ON DELETE CASCADE,
	title       TEXT,
	description TEXT,
	price       DOUBLE PRECISION,
	photos      TEXT[],
	uploaded    TEXT[],
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
ALTER TABLE listings ADD COLUMN IF NOT EXISTS uploaded TEXT[];
CREATE INDEX IF NOT EXISTS listings_userid_idx ON listings (userid);`

func (db *DBObject) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, schema)
	if err != nil {
		log.Printf("[DEBUG] [Ads-Service] Failed to apply Postgres schema: %v", err)
		return err
	}
	return nil
}
func buildConnectionString(cfg configs.DatabaseConfig) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode)
}
func DBMetrics(place string, start time.Time) {
	metrics.AdsDBQueriesTotal.WithLabelValues(place).Inc()
	duration := time.Since(start).Seconds()
	metrics.AdsDBQueryDuration.WithLabelValues(place).Observe(duration)
}
