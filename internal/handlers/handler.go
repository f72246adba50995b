package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go
type UserService interface {
	Register(ctx context.Context, req *model.RegistrationRequest) *service.ServiceResponse
	Login(ctx context.Context, req *model.AuthenticationRequest) *service.ServiceResponse
	Logout(ctx context.Context, sessionid string) *service.ServiceResponse
	GetProfile(ctx context.Context, userid string) *service.ServiceResponse
	DeleteAccount(ctx context.Context, sessionid string, userid string, req *model.DeletionRequest) *service.ServiceResponse
}
type ListingService interface {
	GetListing(ctx context.Context, userid string, listingid string) *service.ServiceResponse
	Feed(ctx context.Context, userid string, showOwn bool) *service.ServiceResponse
	UpdateListing(ctx context.Context, userid string, listingid string, req *model.ListingUpdateRequest) *service.ServiceResponse
	DeleteListing(ctx context.Context, userid string, listingid string) *service.ServiceResponse
	Browse(ctx context.Context, userid string, listingid string, req *model.CarouselRequest) *service.ServiceResponse
}
type DraftService interface {
	OpenDraft(ctx context.Context, userid string) *service.ServiceResponse
	OpenEditDraft(ctx context.Context, userid string, listingid string) *service.ServiceResponse
	GetDraft(ctx context.Context, userid string, draftid string) *service.ServiceResponse
	UpdateDraft(ctx context.Context, userid string, draftid string, req *model.DraftUpdateRequest) *service.ServiceResponse
	AddPhotos(ctx context.Context, userid string, draftid string, req *model.PhotoBatchRequest) *service.ServiceResponse
	UploadPhotos(ctx context.Context, userid string, draftid string, files [][]byte) *service.ServiceResponse
	RemovePhoto(ctx context.Context, userid string, draftid string, index int) *service.ServiceResponse
	Submit(ctx context.Context, userid string, draftid string) *service.ServiceResponse
	Discard(ctx context.Context, userid string, draftid string) *service.ServiceResponse
}
type MiddlewareService interface {
	Logging(next http.Handler) http.Handler
	RateLimiter(next http.Handler) http.Handler
	Authorized(next http.Handler) http.Handler
	AuthorizedNot(next http.Handler) http.Handler
}
type LogProducer interface {
	NewAdsLog(level, place, traceid, msg string)
}

const (
	Register      = "API-Register"
	Login         = "API-Login"
	Logout        = "API-Logout"
	MyProfile     = "API-MyProfile"
	DeleteAccount = "API-DeleteAccount"
	Feed          = "API-Feed"
	GetListing    = "API-GetListing"
	UpdateListing = "API-UpdateListing"
	DeleteListing = "API-DeleteListing"
	Carousel      = "API-Carousel"
	OpenDraft     = "API-OpenDraft"
	OpenEditDraft = "API-OpenEditDraft"
	GetDraft      = "API-GetDraft"
	UpdateDraft   = "API-UpdateDraft"
	AddPhotos     = "API-AddPhotos"
	RemovePhoto   = "API-RemovePhoto"
	SubmitDraft   = "API-SubmitDraft"
	DiscardDraft  = "API-DiscardDraft"
)

type Handler struct {
	Users       UserService
	Listings    ListingService
	Drafts      DraftService
	Middlewares MiddlewareService
	LogProducer LogProducer
}

func NewHandler(users UserService, listings ListingService, drafts DraftService, middleware MiddlewareService, logproducer LogProducer) *Handler {
	return &Handler{Users: users, Listings: listings, Drafts: drafts, Middlewares: middleware, LogProducer: logproducer}
}
func (h *Handler) InitRoutes() *mux.Router {
	m := mux.NewRouter()
	m.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	api := m.PathPrefix("/api").Subrouter()
	api.Use(h.Middlewares.Logging, h.Middlewares.RateLimiter)

	authNotGroup := api.NewRoute().Subrouter()
	authNotGroup.Use(h.Middlewares.AuthorizedNot)
	authNotGroup.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	authNotGroup.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	authGroup := api.NewRoute().Subrouter()
	authGroup.Use(h.Middlewares.Authorized)
	authGroup.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodDelete)
	authGroup.HandleFunc("/users/me", h.MyProfile).Methods(http.MethodGet)
	authGroup.HandleFunc("/users/me", h.DeleteAccount).Methods(http.MethodDelete)

	authGroup.HandleFunc("/listings", h.Feed).Methods(http.MethodGet)
	authGroup.HandleFunc("/listings/{id}", h.GetListing).Methods(http.MethodGet)
	authGroup.HandleFunc("/listings/{id}", h.UpdateListing).Methods(http.MethodPatch)
	authGroup.HandleFunc("/listings/{id}", h.DeleteListing).Methods(http.MethodDelete)
	authGroup.HandleFunc("/listings/{id}/carousel", h.Carousel).Methods(http.MethodPost)
	authGroup.HandleFunc("/listings/{id}/drafts", h.OpenEditDraft).Methods(http.MethodPost)

	authGroup.HandleFunc("/drafts", h.OpenDraft).Methods(http.MethodPost)
	authGroup.HandleFunc("/drafts/{id}", h.GetDraft).Methods(http.MethodGet)
	authGroup.HandleFunc("/drafts/{id}", h.UpdateDraft).Methods(http.MethodPatch)
	authGroup.HandleFunc("/drafts/{id}", h.DiscardDraft).Methods(http.MethodDelete)
	authGroup.HandleFunc("/drafts/{id}/photos", h.AddPhotos).Methods(http.MethodPost)
	authGroup.HandleFunc("/drafts/{id}/photos/{index}", h.RemovePhoto).Methods(http.MethodDelete)
	authGroup.HandleFunc("/drafts/{id}/submit", h.SubmitDraft).Methods(http.MethodPost)
	return m
}
