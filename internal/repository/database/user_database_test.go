package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserRepo(t *testing.T) (pgxmock.PgxPoolIface, *UserDatabase) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock, NewUserDatabase(NewDBObject(mock))
}
func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}
func TestCreateUser(t *testing.T) {
	userid := uuid.New()
	user := &model.User{Id: userid, Name: "maria", Email: "maria@mail.com", Password: "hash", State: "SP"}
	tests := []struct {
		testname    string
		setup       func(mock pgxmock.PgxPoolIface)
		success     bool
		expectedErr *erro.CustomError
	}{
		{
			testname: "Success",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(insertUserQuery)).
					WithArgs(userid, user.Name, user.Email, user.Password, pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"userid"}).AddRow(userid))
			},
			success: true,
		},
		{
			testname: "UniqueEmail",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(insertUserQuery)).
					WithArgs(userid, user.Name, user.Email, user.Password, pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: erro.ClientError(erro.ErrorUniqueEmail),
		},
		{
			testname: "DatabaseError",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(insertUserQuery)).
					WithArgs(userid, user.Name, user.Email, user.Password, pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("db down"))
			},
			expectedErr: erro.ServerError("Error after request into users: db down"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.testname, func(t *testing.T) {
			mock, repo := newUserRepo(t)
			defer mock.Close()
			tt.setup(mock)
			response := repo.CreateUser(context.Background(), user)
			require.Equal(t, tt.success, response.Success)
			require.Equal(t, tt.expectedErr, response.Errors)
			if tt.success {
				require.Equal(t, userid.String(), response.Data.UserID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
func TestGetUser(t *testing.T) {
	userid := uuid.New()
	hash := hashPassword(t, "secret1")
	tests := []struct {
		testname    string
		password    string
		setup       func(mock pgxmock.PgxPoolIface)
		success     bool
		expectedErr *erro.CustomError
	}{
		{
			testname: "Success",
			password: "secret1",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserGetQuery)).WithArgs("maria@mail.com").
					WillReturnRows(pgxmock.NewRows([]string{"userid", "userpassword"}).AddRow(userid, hash))
			},
			success: true,
		},
		{
			testname: "IncorrectPassword",
			password: "wrong12",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserGetQuery)).WithArgs("maria@mail.com").
					WillReturnRows(pgxmock.NewRows([]string{"userid", "userpassword"}).AddRow(userid, hash))
			},
			expectedErr: erro.ClientError(erro.ErrorIncorrectPassword),
		},
		{
			testname: "EmailNotRegistered",
			password: "secret1",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserGetQuery)).WithArgs("maria@mail.com").WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: erro.ClientError(erro.ErrorEmailNotRegister),
		},
	}
	for _, tt := range tests {
		t.Run(tt.testname, func(t *testing.T) {
			mock, repo := newUserRepo(t)
			defer mock.Close()
			tt.setup(mock)
			response := repo.GetUser(context.Background(), "maria@mail.com", tt.password)
			require.Equal(t, tt.success, response.Success)
			require.Equal(t, tt.expectedErr, response.Errors)
			if tt.success {
				require.Equal(t, userid.String(), response.Data.UserID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
func TestGetProfileById(t *testing.T) {
	mock, repo := newUserRepo(t)
	defer mock.Close()
	userid := uuid.New()
	phone := "11999990000"
	mock.ExpectQuery(regexp.QuoteMeta(selectUserGetProfile)).WithArgs(userid).
		WillReturnRows(pgxmock.NewRows([]string{"useremail", "username", "userphone", "userstate"}).
			AddRow("maria@mail.com", "maria", &phone, nil))
	response := repo.GetProfileById(context.Background(), userid)
	require.True(t, response.Success)
	require.Equal(t, &model.User{Id: userid, Name: "maria", Email: "maria@mail.com", Phone: phone}, response.Data.User)
	mock.ExpectQuery(regexp.QuoteMeta(selectUserGetProfile)).WithArgs(userid).WillReturnError(pgx.ErrNoRows)
	response = repo.GetProfileById(context.Background(), userid)
	require.False(t, response.Success)
	require.Equal(t, erro.ClientError(erro.ErrorIDNotRegister), response.Errors)
	require.NoError(t, mock.ExpectationsWereMet())
}
func TestDeleteUser(t *testing.T) {
	userid := uuid.New()
	hash := hashPassword(t, "secret1")
	tests := []struct {
		testname    string
		password    string
		setup       func(mock pgxmock.PgxPoolIface)
		success     bool
		expectedErr *erro.CustomError
	}{
		{
			testname: "Success",
			password: "secret1",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserPasswordQuery)).WithArgs(userid).
					WillReturnRows(pgxmock.NewRows([]string{"userpassword"}).AddRow(hash))
				mock.ExpectExec(regexp.QuoteMeta(deleteUserQuery)).WithArgs(userid).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			success: true,
		},
		{
			testname: "IncorrectPassword",
			password: "other12",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserPasswordQuery)).WithArgs(userid).
					WillReturnRows(pgxmock.NewRows([]string{"userpassword"}).AddRow(hash))
			},
			expectedErr: erro.ClientError(erro.ErrorIncorrectPassword),
		},
		{
			testname: "DeleteError",
			password: "secret1",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserPasswordQuery)).WithArgs(userid).
					WillReturnRows(pgxmock.NewRows([]string{"userpassword"}).AddRow(hash))
				mock.ExpectExec(regexp.QuoteMeta(deleteUserQuery)).WithArgs(userid).
					WillReturnError(errors.New("lock timeout"))
			},
			expectedErr: erro.ServerError("Error after request into users: lock timeout"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.testname, func(t *testing.T) {
			mock, repo := newUserRepo(t)
			defer mock.Close()
			mock.ExpectBegin()
			tt.setup(mock)
			mock.ExpectRollback()
			txman := NewTxManager(repo.databaseclient)
			tx, err := txman.BeginTx(context.Background())
			require.NoError(t, err)
			response := repo.DeleteUser(context.Background(), tx, userid, tt.password)
			require.Equal(t, tt.success, response.Success)
			require.Equal(t, tt.expectedErr, response.Errors)
			require.NoError(t, txman.RollbackTx(context.Background(), tx))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
