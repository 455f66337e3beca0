package user_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bighasbula/ITEENS/internal/database"
	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	"github.com/bighasbula/ITEENS/internal/service"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

func (u *UserService) InitializeUserService() error {
	if u.DB == nil {
		return fmt.Errorf("%w, user service expects a non-nil db", iteens_errors.ErrInternal)
	}
	u.userCache = expirable.NewLRU[string, database.User](userCacheSize, nil, userCacheTTL)
	log.Info("initialized user service")
	return nil
}

// GetOrCreate resolves the caller's user row from the session claims,
// creating it on first authenticated access. New rows start with zero
// aggregates and no streak history.
func (u *UserService) GetOrCreate(ctx context.Context) (database.User, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return database.User{}, err
	}

	user, err := u.FetchUserByUserID(ctx, claims.UserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, iteens_errors.ErrUserNotFound) {
		return database.User{}, err
	}

	var username *string
	if claims.Username != "" {
		username = &claims.Username
	}

	user, dbErr := u.DB.CreateUser(ctx, database.CreateUserParams{
		UserID:   claims.UserID,
		Username: username,
	})
	if dbErr != nil {
		return database.User{}, iteens_errors.HandleDBErrors(
			dbErr,
			errMsgs,
			fmt.Sprintf("cannot create user record for %s", claims.UserID),
		)
	}

	log.WithField("user_id", user.UserID).Info("created user record on first access")
	u.userCache.Add(user.UserID, user)
	return user, nil
}

func (u *UserService) FetchUserByUserID(
	ctx context.Context,
	userID string,
) (database.User, error) {
	if cached, ok := u.userCache.Get(userID); ok {
		return cached, nil
	}

	user, dbErr := u.DB.GetUserByUserID(ctx, userID)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			return database.User{}, fmt.Errorf(
				"%w, no user exist with id %s",
				iteens_errors.ErrUserNotFound,
				userID,
			)
		}
		log.Errorf("failed to get user by user_id. %v", dbErr)
		return database.User{}, errors.Join(iteens_errors.ErrInternal, dbErr)
	}

	u.userCache.Add(userID, user)
	return user, nil
}

func (u *UserService) FetchUserByUsername(
	ctx context.Context,
	username string,
) (database.User, error) {
	user, dbErr := u.DB.GetUserByUsername(ctx, username)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			return database.User{}, fmt.Errorf(
				"%w, no user exist with username %s",
				iteens_errors.ErrUserNotFound,
				username,
			)
		}
		log.Errorf("failed to get user by username. %v", dbErr)
		return database.User{}, errors.Join(iteens_errors.ErrInternal, dbErr)
	}
	return user, nil
}

// GetMe builds the caller's profile, lazily creating the user row.
func (u *UserService) GetMe(ctx context.Context) (UserProfile, error) {
	user, err := u.GetOrCreate(ctx)
	if err != nil {
		return UserProfile{}, err
	}

	count, dbErr := u.DB.CountSubmissionsByUser(ctx, user.UserID)
	if dbErr != nil {
		return UserProfile{}, iteens_errors.HandleDBErrors(
			dbErr,
			nil,
			fmt.Sprintf("cannot count submissions of user %s", user.UserID),
		)
	}

	recent, dbErr := u.DB.GetRecentSubmissionsByUser(
		ctx,
		database.GetRecentSubmissionsByUserParams{
			UserID: user.UserID,
			Limit:  recentSubmissionsLimit,
		},
	)
	if dbErr != nil {
		return UserProfile{}, iteens_errors.HandleDBErrors(
			dbErr,
			nil,
			fmt.Sprintf("cannot fetch recent submissions of user %s", user.UserID),
		)
	}

	return UserProfile{
		User:              user,
		TotalSubmissions:  count,
		RecentSubmissions: recent,
	}, nil
}

// InvalidateCache drops the cached row for a user after their aggregates
// change.
func (u *UserService) InvalidateCache(userID string) {
	u.userCache.Remove(userID)
}

var (
	msgUniqueKey = map[string]string{
		"users_pkey":        "user with that id already exist",
		"uq_users_username": "user with that username already exist",
	}

	errMsgs = map[string]map[string]string{
		iteens_errors.CodeUniqueConstraint: msgUniqueKey,
	}
)
