package database

import (
	"log"
)

// Close đóng connection pool; an toàn khi gọi nhiều lần
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	stats := db.Pool.Stat()
	log.Printf("[DATABASE] Closing pool (total: %d, idle: %d, acquired: %d)",
		stats.TotalConns(), stats.IdleConns(), stats.AcquiredConns())

	db.Pool.Close()
	db.Pool = nil
	return nil
}
