package sqlc

import "time"

// Bounds every analytics query issued from a game session.
const QuerierCtxTimeout = time.Second * 10

// DbManager groups the query sets built on one connection pool. Only
// the game counters exist today.
type DbManager struct {
	Analytics *AnalyticsManager
}

// NewDbManager accepts a *sql.DB, a *sql.Tx or a sqlmock connection.
func NewDbManager(db DBTX) DbManager {
	return DbManager{Analytics: NewAnalyticsManager(New(db))}
}
