package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/repository"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type DBUserRepos interface {
	CreateUser(ctx context.Context, user *model.User) *repository.RepositoryResponse
	GetUser(ctx context.Context, useremail, userpassword string) *repository.RepositoryResponse
	GetProfileById(ctx context.Context, userid uuid.UUID) *repository.RepositoryResponse
	DeleteUser(ctx context.Context, tx pgx.Tx, userId uuid.UUID, password string) *repository.RepositoryResponse
}
type DBListingRepos interface {
	CreateListing(ctx context.Context, listing *model.Listing) *repository.RepositoryResponse
	GetListing(ctx context.Context, listingid uuid.UUID) *repository.RepositoryResponse
	GetListings(ctx context.Context) *repository.RepositoryResponse
	UpdateListing(ctx context.Context, listing *model.Listing) *repository.RepositoryResponse
	DeleteListing(ctx context.Context, userid uuid.UUID, listingid uuid.UUID) *repository.RepositoryResponse
	DeleteUserListings(ctx context.Context, tx pgx.Tx, userid uuid.UUID) *repository.RepositoryResponse
}
type DBTxManager interface {
	BeginTx(ctx context.Context) (pgx.Tx, error)
	RollbackTx(ctx context.Context, tx pgx.Tx) error
	CommitTx(ctx context.Context, tx pgx.Tx) error
}
type SessionCache interface {
	SetSession(ctx context.Context, session *model.Session) *repository.RepositoryResponse
	GetSession(ctx context.Context, sessionid string) *repository.RepositoryResponse
	DeleteSession(ctx context.Context, sessionid string) *repository.RepositoryResponse
}
type DraftCache interface {
	SetDraft(ctx context.Context, draft *model.Draft) *repository.RepositoryResponse
	GetDraft(ctx context.Context, draftid string) *repository.RepositoryResponse
	DeleteDraft(ctx context.Context, draftid string) *repository.RepositoryResponse
}
type ListingCache interface {
	AddListingCache(ctx context.Context, listing *model.Listing) *repository.RepositoryResponse
	GetListingCache(ctx context.Context, listingid string) *repository.RepositoryResponse
	DeleteListingCache(ctx context.Context, listingid string) *repository.RepositoryResponse
	DeleteListingsCache(ctx context.Context, listingids []string) *repository.RepositoryResponse
}
type CloudPhotoStorage interface {
	UploadFile(ctx context.Context, localfilepath string, photoid string) *repository.RepositoryResponse
	DeleteFile(ctx context.Context, link string) *repository.RepositoryResponse
}
type EventProducer interface {
	NewAdsEvent(ctx context.Context, routingKey string, event *model.AdsEvent, place string) error
}
type LogProducer interface {
	NewAdsLog(level, place, traceid, msg string)
}

const (
	UseCase_Register          = "UseCase-Register"
	UseCase_Login             = "UseCase-Login"
	UseCase_Logout            = "UseCase-Logout"
	UseCase_Authorize         = "UseCase-Authorize"
	UseCase_GetProfile        = "UseCase-GetProfile"
	UseCase_DeleteAccount     = "UseCase-DeleteAccount"
	UseCase_OpenDraft         = "UseCase-OpenDraft"
	UseCase_OpenEditDraft     = "UseCase-OpenEditDraft"
	UseCase_GetDraft          = "UseCase-GetDraft"
	UseCase_UpdateDraft       = "UseCase-UpdateDraft"
	UseCase_AddPhotos         = "UseCase-AddPhotos"
	UseCase_UploadPhotos      = "UseCase-UploadPhotos"
	UseCase_RemovePhoto       = "UseCase-RemovePhoto"
	UseCase_SubmitDraft       = "UseCase-SubmitDraft"
	UseCase_DiscardDraft      = "UseCase-DiscardDraft"
	UseCase_GetListing        = "UseCase-GetListing"
	UseCase_Feed              = "UseCase-Feed"
	UseCase_UpdateListing     = "UseCase-UpdateListing"
	UseCase_DeleteListing     = "UseCase-DeleteListing"
	UseCase_Browse            = "UseCase-Browse"
	UseCase_CleanupUserData   = "UseCase-CleanupUserData"
	UseCase_InvalidateListing = "UseCase-InvalidateListing"
	DeletePhotoCloud          = "DeletePhotoCloud"
	UnloadPhotoCloud          = "UnloadPhotoCloud"
)
const MaxFileSize = 10 << 20

type ServiceResponse struct {
	Success bool
	Data    Data
	Errors  *erro.CustomError
}
type Data struct {
	UserID   string
	Session  *model.Session
	Profile  *model.ProfileView
	Draft    *model.Draft
	Listing  *model.ListingView
	Listings []*model.ListingView
	Carousel *model.CarouselView
}
