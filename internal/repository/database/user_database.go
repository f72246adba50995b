package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserDatabase struct {
	databaseclient *DBObject
}

func NewUserDatabase(db *DBObject) *UserDatabase {
	return &UserDatabase{databaseclient: db}
}

const (
	insertUserQuery         = `INSERT INTO users (userid, username, useremail, userpassword, userphone, userstate) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (useremail) DO NOTHING RETURNING userid`
	selectUserGetQuery      = `SELECT userid, userpassword FROM users WHERE useremail = $1`
	selectUserPasswordQuery = `SELECT userpassword FROM users WHERE userid = $1`
	deleteUserQuery         = `DELETE FROM users WHERE userid = $1`
	selectUserGetProfile    = `SELECT useremail, username, userphone, userstate FROM users WHERE userid = $1`
)

func (repoap *UserDatabase) CreateUser(ctx context.Context, user *model.User) *repository.RepositoryResponse {
	const place = repository.CreateUser
	start := time.Now()
	defer DBMetrics(place, start)
	var insertedID uuid.UUID
	err := repoap.databaseclient.pool.QueryRow(ctx, insertUserQuery, user.Id, user.Name, user.Email, user.Password, nullable(user.Phone), nullable(user.State)).Scan(&insertedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.AdsDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "INSERT").Inc()
			return repository.BadResponse(erro.ClientError(erro.ErrorUniqueEmail), place)
		}
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "INSERT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqUsers, err)), place)
	}
	return repository.SuccessResponse(repository.Data{UserID: insertedID.String()}, place, "Successful create user in database")
}
func (repoap *UserDatabase) GetUser(ctx context.Context, useremail, userpassword string) *repository.RepositoryResponse {
	const place = repository.GetUser
	start := time.Now()
	defer DBMetrics(place, start)
	var hashpass string
	var userId uuid.UUID
	err := repoap.databaseclient.pool.QueryRow(ctx, selectUserGetQuery, useremail).Scan(&userId, &hashpass)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.AdsDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "SELECT").Inc()
			return repository.BadResponse(erro.ClientError(erro.ErrorEmailNotRegister), place)
		}
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqUsers, err)), place)
	}
	err = bcrypt.CompareHashAndPassword([]byte(hashpass), []byte(userpassword))
	if err != nil {
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "CompareHashAndPassword").Inc()
		return repository.BadResponse(erro.ClientError(erro.ErrorIncorrectPassword), place)
	}
	return repository.SuccessResponse(repository.Data{UserID: userId.String()}, place, "Successful get user from database")
}
func (repoap *UserDatabase) GetProfileById(ctx context.Context, userid uuid.UUID) *repository.RepositoryResponse {
	const place = repository.GetProfileById
	start := time.Now()
	defer DBMetrics(place, start)
	var email, name string
	var phone, state *string
	err := repoap.databaseclient.pool.QueryRow(ctx, selectUserGetProfile, userid).Scan(&email, &name, &phone, &state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.AdsDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "SELECT").Inc()
			return repository.BadResponse(erro.ClientError(erro.ErrorIDNotRegister), place)
		}
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqUsers, err)), place)
	}
	user := &model.User{Id: userid, Name: name, Email: email, Phone: deref(phone), State: deref(state)}
	return repository.SuccessResponse(repository.Data{User: user}, place, "Successful get profile by id from database")
}
func (repoap *UserDatabase) DeleteUser(ctx context.Context, tx pgx.Tx, userId uuid.UUID, password string) *repository.RepositoryResponse {
	const place = repository.DeleteUser
	start := time.Now()
	defer DBMetrics(place, start)
	var hashpass string
	err := tx.QueryRow(ctx, selectUserPasswordQuery, userId).Scan(&hashpass)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.AdsDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "SELECT").Inc()
			return repository.BadResponse(erro.ClientError(erro.ErrorIDNotRegister), place)
		}
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqUsers, err)), place)
	}
	err = bcrypt.CompareHashAndPassword([]byte(hashpass), []byte(password))
	if err != nil {
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "CompareHashAndPassword").Inc()
		return repository.BadResponse(erro.ClientError(erro.ErrorIncorrectPassword), place)
	}
	_, err = tx.Exec(ctx, deleteUserQuery, userId)
	if err != nil {
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqUsers, err)), place)
	}
	return repository.SuccessResponse(repository.Data{}, place, "Successful delete user from database")
}
func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
