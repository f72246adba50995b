package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/require"
)

var listingRowColumns = []string{"listingid", "userid", "title", "description", "price", "photos", "uploaded", "created_at", "useremail", "userphone", "userstate"}

func newListingRepo(t *testing.T) (pgxmock.PgxPoolIface, *ListingDatabase) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock, NewListingDatabase(NewDBObject(mock))
}
func TestCreateListing_Success(t *testing.T) {
	mock, repo := newListingRepo(t)
	defer mock.Close()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	listing := &model.Listing{Id: uuid.New(), OwnerId: uuid.New(), Title: "Gol", Description: "1.0", Price: 20000, Photos: []string{"p1", "pasted"}, Uploaded: []string{"p1"}}
	mock.ExpectQuery(regexp.QuoteMeta(insertListingQuery)).
		WithArgs(listing.Id, listing.OwnerId, listing.Title, listing.Description, listing.Price, listing.Photos, listing.Uploaded).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))
	response := repo.CreateListing(context.Background(), listing)
	require.True(t, response.Success)
	require.Equal(t, created, response.Data.Listing.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
func TestCreateListing_DatabaseError(t *testing.T) {
	mock, repo := newListingRepo(t)
	defer mock.Close()
	listing := &model.Listing{Id: uuid.New(), OwnerId: uuid.New()}
	mock.ExpectQuery(regexp.QuoteMeta(insertListingQuery)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))
	response := repo.CreateListing(context.Background(), listing)
	require.False(t, response.Success)
	require.Equal(t, erro.ServerErrorType, response.Errors.Type)
	require.NoError(t, mock.ExpectationsWereMet())
}
func TestGetListing(t *testing.T) {
	listingid := uuid.New()
	ownerid := uuid.New()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		testname     string
		setup        func(mock pgxmock.PgxPoolIface)
		success      bool
		expectedErr  *erro.CustomError
		expectedData *model.Listing
	}{
		{
			testname: "Success",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectListingQuery)).WithArgs(listingid).
					WillReturnRows(pgxmock.NewRows(listingRowColumns).
						AddRow(listingid, ownerid, "Uno", "", float64(15000), []string{"p1", "p2"}, []string{"p2"}, created, "a@b.com", "", "MG"))
			},
			success: true,
			expectedData: &model.Listing{
				Id: listingid, OwnerId: ownerid, Title: "Uno", Price: 15000, Photos: []string{"p1", "p2"}, Uploaded: []string{"p2"}, CreatedAt: created,
				Owner: model.Contact{Email: "a@b.com", State: "MG"},
			},
		},
		{
			testname: "NotFound",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectListingQuery)).WithArgs(listingid).WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: erro.ClientError(erro.ErrorListingNotFound),
		},
		{
			testname: "DatabaseError",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectListingQuery)).WithArgs(listingid).WillReturnError(errors.New("timeout"))
			},
			expectedErr: erro.ServerError("Error after request into listings: timeout"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.testname, func(t *testing.T) {
			mock, repo := newListingRepo(t)
			defer mock.Close()
			tt.setup(mock)
			response := repo.GetListing(context.Background(), listingid)
			require.Equal(t, tt.success, response.Success)
			require.Equal(t, tt.expectedErr, response.Errors)
			if tt.expectedData != nil {
				require.Equal(t, tt.expectedData, response.Data.Listing)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
func TestGetListings_Success(t *testing.T) {
	mock, repo := newListingRepo(t)
	defer mock.Close()
	created := time.Now().UTC()
	first := uuid.New()
	second := uuid.New()
	owner := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(selectListingsQuery)).
		WillReturnRows(pgxmock.NewRows(listingRowColumns).
			AddRow(first, owner, "A", "a", float64(1), []string{}, []string{}, created, "", "", "").
			AddRow(second, owner, "B", "b", float64(2), []string{"x"}, []string{"x"}, created, "", "", ""))
	response := repo.GetListings(context.Background())
	require.True(t, response.Success)
	require.Len(t, response.Data.Listings, 2)
	require.Equal(t, first, response.Data.Listings[0].Id)
	require.Equal(t, second, response.Data.Listings[1].Id)
	require.NoError(t, mock.ExpectationsWereMet())
}
func TestUpdateListing_NoRows(t *testing.T) {
	mock, repo := newListingRepo(t)
	defer mock.Close()
	listing := &model.Listing{Id: uuid.New(), OwnerId: uuid.New(), Title: "T", Photos: []string{}}
	mock.ExpectExec(regexp.QuoteMeta(updateListingQuery)).
		WithArgs(listing.Title, listing.Description, listing.Price, listing.Photos, listing.Uploaded, listing.Id, listing.OwnerId).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	response := repo.UpdateListing(context.Background(), listing)
	require.False(t, response.Success)
	require.Equal(t, erro.ClientError(erro.ErrorListingNotFound), response.Errors)
	require.NoError(t, mock.ExpectationsWereMet())
}
func TestUpdateListing_Success(t *testing.T) {
	mock, repo := newListingRepo(t)
	defer mock.Close()
	listing := &model.Listing{Id: uuid.New(), OwnerId: uuid.New(), Title: "T", Photos: []string{"p"}}
	mock.ExpectExec(regexp.QuoteMeta(updateListingQuery)).
		WithArgs(listing.Title, listing.Description, listing.Price, listing.Photos, listing.Uploaded, listing.Id, listing.OwnerId).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	response := repo.UpdateListing(context.Background(), listing)
	require.True(t, response.Success)
	require.NoError(t, mock.ExpectationsWereMet())
}
func TestDeleteListing(t *testing.T) {
	mock, repo := newListingRepo(t)
	defer mock.Close()
	userid := uuid.New()
	listingid := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(deleteListingQuery)).WithArgs(listingid, userid).
		WillReturnRows(pgxmock.NewRows([]string{"uploaded"}).AddRow([]string{"p1", "p2"}))
	response := repo.DeleteListing(context.Background(), userid, listingid)
	require.True(t, response.Success)
	require.Equal(t, []string{"p1", "p2"}, response.Data.Photos)
	mock.ExpectQuery(regexp.QuoteMeta(deleteListingQuery)).WithArgs(listingid, userid).WillReturnError(pgx.ErrNoRows)
	response = repo.DeleteListing(context.Background(), userid, listingid)
	require.False(t, response.Success)
	require.Equal(t, erro.ClientError(erro.ErrorListingNotFound), response.Errors)
	require.NoError(t, mock.ExpectationsWereMet())
}
func TestDeleteUserListings(t *testing.T) {
	mock, repo := newListingRepo(t)
	defer mock.Close()
	userid := uuid.New()
	first := uuid.New()
	second := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(deleteUserListingsQuery)).WithArgs(userid).
		WillReturnRows(pgxmock.NewRows([]string{"listingid", "uploaded"}).
			AddRow(first, []string{"p1"}).
			AddRow(second, []string{"p2", "p3"}))
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	response := repo.DeleteUserListings(context.Background(), tx, userid)
	require.True(t, response.Success)
	require.Len(t, response.Data.Listings, 2)
	require.Equal(t, []string{"p1", "p2", "p3"}, response.Data.Photos)
	require.NoError(t, mock.ExpectationsWereMet())
}
