package service

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

type contextKey string

const (
	KeyJWTSecret                    = "JWT_SECRET"
	KeyCtxUserCredClaims contextKey = "UserCredClaims"
)

var (
	validate *validator.Validate
	pool     *pgxpool.Pool
)

// InitializeServices must be called once at startup before any service is
// used. The pool may be nil in tests that never touch the database.
func InitializeServices(dbPool *pgxpool.Pool) {
	validate = initValidator() // used for validating struct fields
	pool = dbPool
}

func initValidator() *validator.Validate {
	log.Info("initializing validator")
	validate := validator.New(validator.WithRequiredStructEnabled())

	// This makes error.Field() return "problem_id" instead of "ProblemID"
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

func GetClaimsFromContext(
	ctx context.Context,
) (claims UserCredentialClaims, err error) {
	claimsValue := ctx.Value(KeyCtxUserCredClaims)
	claims, ok := claimsValue.(UserCredentialClaims)
	if !ok {
		err = fmt.Errorf(
			"%w, unable to parse claims to service.UserCredentialClaims, type of claims found is %T",
			iteens_errors.ErrInternal,
			claimsValue,
		)
		log.Error(err)
	}
	return
}

func GetNewTransaction(ctx context.Context) (pgx.Tx, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		err = fmt.Errorf(
			"%w, cannot begin a database transaction, %w",
			iteens_errors.ErrInternal,
			err,
		)
		log.Error(err)
		return nil, err
	}
	return tx, nil
}
