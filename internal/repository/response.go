package repository

import (
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
)

const (
	CreateUser     = "Repository-CreateUser"
	GetUser        = "Repository-GetUser"
	GetProfileById = "Repository-GetProfileById"
	DeleteUser     = "Repository-DeleteUser"

	CreateListing      = "Repository-CreateListing"
	GetListing         = "Repository-GetListing"
	GetListings        = "Repository-GetListings"
	UpdateListing      = "Repository-UpdateListing"
	DeleteListing      = "Repository-DeleteListing"
	DeleteUserListings = "Repository-DeleteUserListings"

	SetSession    = "Repository-SetSession"
	GetSession    = "Repository-GetSession"
	DeleteSession = "Repository-DeleteSession"

	SetDraft    = "Repository-SetDraft"
	GetDraft    = "Repository-GetDraft"
	DeleteDraft = "Repository-DeleteDraft"

	AddListingCache     = "Repository-AddListingCache"
	GetListingCache     = "Repository-GetListingCache"
	DeleteListingCache  = "Repository-DeleteListingCache"
	DeleteListingsCache = "Repository-DeleteListingsCache"

	UploadFile = "Repository-UploadFile"
	DeleteFile = "Repository-DeleteFile"
)

type RepositoryResponse struct {
	Success        bool
	SuccessMessage string
	Place          string
	Data           Data
	Errors         *erro.CustomError
}
type Data struct {
	UserID   string
	User     *model.User
	Session  *model.Session
	Draft    *model.Draft
	Listing  *model.Listing
	Listings []*model.Listing
	Photos   []string
	PhotoURL string
}

func BadResponse(err *erro.CustomError, place string) *RepositoryResponse {
	return &RepositoryResponse{
		Success: false,
		Errors:  err,
		Place:   place,
	}
}
func SuccessResponse(data Data, place string, succmessage string) *RepositoryResponse {
	return &RepositoryResponse{
		Success:        true,
		Data:           data,
		Place:          place,
		SuccessMessage: succmessage,
	}
}
