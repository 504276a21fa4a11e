package storage

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresDB struct {
	*gorm.DB
}

// NewPostgresDB 連線到 Supabase 託管的 PostgreSQL
// dbURL 為資料庫主機位址，serviceKey 作為 postgres 使用者的密碼
// 資料表結構由外部管理，這裡不做任何遷移
func NewPostgresDB(dbURL, serviceKey string) (*PostgresDB, error) {
	host := strings.TrimPrefix(strings.TrimPrefix(dbURL, "postgres://"), "https://")

	dsn := fmt.Sprintf("host=%s user=postgres password=%s dbname=postgres port=5432 sslmode=require",
		host, serviceKey)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	return &PostgresDB{DB: db}, nil
}

func (db *PostgresDB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
