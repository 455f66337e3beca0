package user_service

import (
	"time"

	"github.com/bighasbula/ITEENS/internal/database"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	userCacheSize = 1024
	userCacheTTL  = 30 * time.Second

	recentSubmissionsLimit = 10
)

type UserService struct {
	DB *database.Queries

	// cache of user rows keyed by external user id. short ttl, the
	// recorder invalidates on write anyway.
	userCache *expirable.LRU[string, database.User]
}

// UserProfile is the dashboard shape: the aggregate row plus recent history.
type UserProfile struct {
	database.User
	TotalSubmissions  int64                 `json:"total_submissions"`
	RecentSubmissions []database.Submission `json:"recent_submissions"`
}
