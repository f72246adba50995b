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
)

type ListingDatabase struct {
	databaseclient *DBObject
}

func NewListingDatabase(db *DBObject) *ListingDatabase {
	return &ListingDatabase{databaseclient: db}
}

const listingColumns = `l.listingid, l.userid, COALESCE(l.title, ''), COALESCE(l.description, ''), COALESCE(l.price, 0), COALESCE(l.photos, '{}'), COALESCE(l.uploaded, '{}'), l.created_at, COALESCE(u.useremail, ''), COALESCE(u.userphone, ''), COALESCE(u.userstate, '')`

const (
	insertListingQuery      = `INSERT INTO listings (listingid, userid, title, description, price, photos, uploaded) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	selectListingQuery      = `SELECT ` + listingColumns + ` FROM listings l LEFT JOIN users u ON u.userid = l.userid WHERE l.listingid = $1`
	selectListingsQuery     = `SELECT ` + listingColumns + ` FROM listings l LEFT JOIN users u ON u.userid = l.userid ORDER BY l.created_at DESC`
	updateListingQuery      = `UPDATE listings SET title = $1, description = $2, price = $3, photos = $4, uploaded = $5 WHERE listingid = $6 AND userid = $7`
	deleteListingQuery      = `DELETE FROM listings WHERE listingid = $1 AND userid = $2 RETURNING COALESCE(uploaded, '{}')`
	deleteUserListingsQuery = `DELETE FROM listings WHERE userid = $1 RETURNING listingid, COALESCE(uploaded, '{}')`
)

func scanListing(row pgx.Row) (*model.Listing, error) {
	var listing model.Listing
	err := row.Scan(&listing.Id, &listing.OwnerId, &listing.Title, &listing.Description, &listing.Price, &listing.Photos, &listing.Uploaded, &listing.CreatedAt,
		&listing.Owner.Email, &listing.Owner.Phone, &listing.Owner.State)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}
func (repoap *ListingDatabase) CreateListing(ctx context.Context, listing *model.Listing) *repository.RepositoryResponse {
	const place = repository.CreateListing
	start := time.Now()
	defer DBMetrics(place, start)
	var created time.Time
	err := repoap.databaseclient.pool.QueryRow(ctx, insertListingQuery, listing.Id, listing.OwnerId, listing.Title, listing.Description, listing.Price, listing.Photos, listing.Uploaded).Scan(&created)
	if err != nil {
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "INSERT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqListings, err)), place)
	}
	listing.CreatedAt = created
	return repository.SuccessResponse(repository.Data{Listing: listing}, place, "Successful create listing in database")
}
func (repoap *ListingDatabase) GetListing(ctx context.Context, listingid uuid.UUID) *repository.RepositoryResponse {
	const place = repository.GetListing
	start := time.Now()
	defer DBMetrics(place, start)
	listing, err := scanListing(repoap.databaseclient.pool.QueryRow(ctx, selectListingQuery, listingid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.AdsDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "SELECT").Inc()
			return repository.BadResponse(erro.ClientError(erro.ErrorListingNotFound), place)
		}
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqListings, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Listing: listing}, place, "Successful get listing from database")
}
func (repoap *ListingDatabase) GetListings(ctx context.Context) *repository.RepositoryResponse {
	const place = repository.GetListings
	start := time.Now()
	defer DBMetrics(place, start)
	rows, err := repoap.databaseclient.pool.Query(ctx, selectListingsQuery)
	if err != nil {
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqListings, err)), place)
	}
	defer rows.Close()
	listings := []*model.Listing{}
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqListings, err)), place)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqListings, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Listings: listings}, place, fmt.Sprintf("Successful get %d listings from database", len(listings)))
}
func (repoap *ListingDatabase) UpdateListing(ctx context.Context, listing *model.Listing) *repository.RepositoryResponse {
	const place = repository.UpdateListing
	start := time.Now()
	defer DBMetrics(place, start)
	tag, err := repoap.databaseclient.pool.Exec(ctx, updateListingQuery, listing.Title, listing.Description, listing.Price, listing.Photos, listing.Uploaded, listing.Id, listing.OwnerId)
	if err != nil {
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqListings, err)), place)
	}
	if tag.RowsAffected() == 0 {
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "UPDATE").Inc()
		return repository.BadResponse(erro.ClientError(erro.ErrorListingNotFound), place)
	}
	return repository.SuccessResponse(repository.Data{Listing: listing}, place, "Successful update listing in database")
}
// DeleteListing removes an owned listing and reports the photos uploaded for it.
func (repoap *ListingDatabase) DeleteListing(ctx context.Context, userid uuid.UUID, listingid uuid.UUID) *repository.RepositoryResponse {
	const place = repository.DeleteListing
	start := time.Now()
	defer DBMetrics(place, start)
	var uploaded []string
	err := repoap.databaseclient.pool.QueryRow(ctx, deleteListingQuery, listingid, userid).Scan(&uploaded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.AdsDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "DELETE").Inc()
			return repository.BadResponse(erro.ClientError(erro.ErrorListingNotFound), place)
		}
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqListings, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Photos: uploaded}, place, "Successful delete listing from database")
}

// DeleteUserListings removes every listing of the user inside tx and reports their ids and uploaded photos.
func (repoap *ListingDatabase) DeleteUserListings(ctx context.Context, tx pgx.Tx, userid uuid.UUID) *repository.RepositoryResponse {
	const place = repository.DeleteUserListings
	start := time.Now()
	defer DBMetrics(place, start)
	rows, err := tx.Query(ctx, deleteUserListingsQuery, userid)
	if err != nil {
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqListings, err)), place)
	}
	defer rows.Close()
	listings := []*model.Listing{}
	photos := []string{}
	for rows.Next() {
		listing := &model.Listing{OwnerId: userid}
		if err := rows.Scan(&listing.Id, &listing.Uploaded); err != nil {
			metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqListings, err)), place)
		}
		listings = append(listings, listing)
		photos = append(photos, listing.Uploaded...)
	}
	if err := rows.Err(); err != nil {
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqListings, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Listings: listings, Photos: photos}, place, fmt.Sprintf("Successful delete %d listings of user from database", len(listings)))
}
