package constants

import "time"

const (
	InitialBudget int64 = 9_000_000
	MaxTeamSize         = 11
	ValueStep     int64 = 50_000
)

const (
	CatalogCacheTTL = 5 * time.Minute
	CatalogCacheKey = "spirit11:catalog:v1"
)

const (
	ExternalAPITimeout = 30 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 45 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	TeamUpdateMaxRetries = 5
	TeamUpdateBackoff    = 15 * time.Millisecond
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	LeaderboardDefaultLimit = 10
	LeaderboardMaxLimit     = 100
	MaxImportBodyBytes      = 4 << 20
)
