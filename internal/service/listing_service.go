package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/feed"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/gallery"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
)

type ListingService struct {
	Listingrepo  DBListingRepos
	Listingcache ListingCache
	Cloud        CloudPhotoStorage
	Events       EventProducer
	Logproducer  LogProducer
	Validator    *validator.Validate
	Pool         *TaskPool
}

func NewListingService(listingrepo DBListingRepos, listingcache ListingCache, cloud CloudPhotoStorage, events EventProducer, logproducer LogProducer, pool *TaskPool) *ListingService {
	return &ListingService{
		Listingrepo:  listingrepo,
		Listingcache: listingcache,
		Cloud:        cloud,
		Events:       events,
		Logproducer:  logproducer,
		Validator:    NewValidator(),
		Pool:         pool,
	}
}

// loadListing reads through the listing cache; cache failures fall back to the database.
func (ls *ListingService) loadListing(ctx context.Context, listingidstr string, traceid string, place string) (*model.Listing, *ServiceResponse) {
	listingid, serviceresponse := parsingUUID(listingidstr, erro.ErrorInvalidListingIDFormat, traceid, place, ls.Logproducer)
	if serviceresponse != nil {
		return nil, serviceresponse
	}
	cacheresponse := ls.Listingcache.GetListingCache(ctx, listingidstr)
	if cacheresponse.Success {
		ls.Logproducer.NewAdsLog(kafka.LogLevelInfo, cacheresponse.Place, traceid, cacheresponse.SuccessMessage)
		return cacheresponse.Data.Listing, nil
	}
	if cacheresponse.Errors != nil {
		ls.Logproducer.NewAdsLog(kafka.LogLevelError, cacheresponse.Place, traceid, cacheresponse.Errors.Message)
	}
	bdresponse, serviceresponse := requestToRepository(ls.Listingrepo.GetListing(ctx, listingid), traceid, ls.Logproducer)
	if serviceresponse != nil {
		return nil, serviceresponse
	}
	logOnly(ls.Listingcache.AddListingCache(ctx, bdresponse.Data.Listing), traceid, ls.Logproducer)
	return bdresponse.Data.Listing, nil
}

// ownListing loads the listing from the database and checks that userid owns it.
func (ls *ListingService) ownListing(ctx context.Context, useridstr string, listingidstr string, traceid string, place string) (*model.Listing, *ServiceResponse) {
	listingid, serviceresponse := parsingUUID(listingidstr, erro.ErrorInvalidListingIDFormat, traceid, place, ls.Logproducer)
	if serviceresponse != nil {
		return nil, serviceresponse
	}
	bdresponse, serviceresponse := requestToRepository(ls.Listingrepo.GetListing(ctx, listingid), traceid, ls.Logproducer)
	if serviceresponse != nil {
		return nil, serviceresponse
	}
	listing := bdresponse.Data.Listing
	if listing.OwnerId.String() != useridstr {
		ls.Logproducer.NewAdsLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s tried to change listing %s", useridstr, listingidstr))
		return nil, &ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorForeignListing)}
	}
	return listing, nil
}
func (ls *ListingService) GetListing(ctx context.Context, userid string, listingid string) *ServiceResponse {
	const place = UseCase_GetListing
	traceid := traceID(ctx)
	listing, serviceresponse := ls.loadListing(ctx, listingid, traceid, place)
	if serviceresponse != nil {
		return serviceresponse
	}
	return &ServiceResponse{Success: true, Data: Data{Listing: model.NewListingView(listing, userid)}}
}

// Feed returns the user's own listings first when showOwn is set, otherwise only the others'.
func (ls *ListingService) Feed(ctx context.Context, userid string, showOwn bool) *ServiceResponse {
	const place = UseCase_Feed
	traceid := traceID(ctx)
	bdresponse, serviceresponse := requestToRepository(ls.Listingrepo.GetListings(ctx), traceid, ls.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	composed := feed.Compose(bdresponse.Data.Listings, userid, showOwn)
	views := make([]*model.ListingView, 0, len(composed))
	for _, listing := range composed {
		views = append(views, model.NewListingView(listing, userid))
	}
	ls.Logproducer.NewAdsLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Feed composed with %d listings (own=%t)", len(views), showOwn))
	return &ServiceResponse{Success: true, Data: Data{Listings: views}}
}
// UpdateListing applies the given fields. Photos dropped by the patch are deleted from the cloud
// only when they were uploaded for this listing; pasted references are never deleted.
func (ls *ListingService) UpdateListing(ctx context.Context, userid string, listingid string, req *model.ListingUpdateRequest) *ServiceResponse {
	const place = UseCase_UpdateListing
	traceid := traceID(ctx)
	if errv := validateData(ls.Validator, req, traceid, place, ls.Logproducer); errv != nil {
		return &ServiceResponse{Success: false, Errors: errv}
	}
	listing, serviceresponse := ls.ownListing(ctx, userid, listingid, traceid, place)
	if serviceresponse != nil {
		return serviceresponse
	}
	owned := listing.Uploaded
	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Price != nil {
		listing.Price = *req.Price
	}
	if req.Photos != nil {
		listing.Photos = gallery.NewPhotoSet(*req.Photos).Refs()
		listing.Uploaded = shared(owned, listing.Photos)
	}
	_, serviceresponse = requestToRepository(ls.Listingrepo.UpdateListing(ctx, listing), traceid, ls.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	logOnly(ls.Listingcache.DeleteListingCache(ctx, listingid), traceid, ls.Logproducer)
	if removed := orphans(owned, listing.Photos); len(removed) > 0 {
		deletePhotosCloud(ctx, ls.Pool, ls.Cloud, removed, traceid, ls.Logproducer)
	}
	return &ServiceResponse{Success: true, Data: Data{Listing: model.NewListingView(listing, userid)}}
}

// DeleteListing removes the listing; the store reports back only the photos uploaded for it.
func (ls *ListingService) DeleteListing(ctx context.Context, userid string, listingid string) *ServiceResponse {
	const place = UseCase_DeleteListing
	traceid := traceID(ctx)
	listing, serviceresponse := ls.ownListing(ctx, userid, listingid, traceid, place)
	if serviceresponse != nil {
		return serviceresponse
	}
	bdresponse, serviceresponse := requestToRepository(ls.Listingrepo.DeleteListing(ctx, listing.OwnerId, listing.Id), traceid, ls.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	logOnly(ls.Listingcache.DeleteListingCache(ctx, listingid), traceid, ls.Logproducer)
	if len(bdresponse.Data.Photos) > 0 {
		deletePhotosCloud(ctx, ls.Pool, ls.Cloud, bdresponse.Data.Photos, traceid, ls.Logproducer)
	}
	publishEvent(ctx, ls.Events, model.ListingDeletedKey, &model.AdsEvent{UserID: userid, ListingID: listingid, Traceid: traceid}, place, ls.Logproducer)
	return &ServiceResponse{Success: true}
}

// Browse applies one carousel transition to the listing's photos starting from the client's index.
func (ls *ListingService) Browse(ctx context.Context, userid string, listingid string, req *model.CarouselRequest) *ServiceResponse {
	const place = UseCase_Browse
	traceid := traceID(ctx)
	if errv := validateData(ls.Validator, req, traceid, place, ls.Logproducer); errv != nil {
		return &ServiceResponse{Success: false, Errors: errv}
	}
	listing, serviceresponse := ls.loadListing(ctx, listingid, traceid, place)
	if serviceresponse != nil {
		return serviceresponse
	}
	carousel := gallery.Resume(req.Index, len(listing.Photos))
	if req.Gesture != nil {
		carousel = carousel.Swipe(gallery.Gesture{Displacement: req.Gesture.Displacement, Phase: gallery.Phase(req.Gesture.Phase)})
	} else {
		carousel = carousel.Apply(gallery.Command(req.Command))
	}
	photo, _ := carousel.Current(listing.Photos)
	view := &model.CarouselView{Index: carousel.Index, Count: carousel.Count, Position: carousel.Position(), Photo: photo}
	return &ServiceResponse{Success: true, Data: Data{Carousel: view}}
}

// CleanupUserData handles user.delete: cached listings are dropped and cloud photos scheduled for deletion.
func (ls *ListingService) CleanupUserData(ctx context.Context, event *model.AdsEvent) *ServiceResponse {
	const place = UseCase_CleanupUserData
	traceid := event.Traceid
	_, serviceresponse := requestToRepository(ls.Listingcache.DeleteListingsCache(ctx, event.Listings), traceid, ls.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	if len(event.Photos) > 0 {
		if resp := deletePhotosCloud(ctx, ls.Pool, ls.Cloud, event.Photos, traceid, ls.Logproducer); !resp.Success {
			return resp
		}
	}
	ls.Logproducer.NewAdsLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Cleanup of user %s scheduled for %d photos", event.UserID, len(event.Photos)))
	return &ServiceResponse{Success: true}
}

// InvalidateListing handles listing.deleted for every instance sharing the cache.
func (ls *ListingService) InvalidateListing(ctx context.Context, event *model.AdsEvent) *ServiceResponse {
	const place = UseCase_InvalidateListing
	traceid := event.Traceid
	if _, serviceresponse := parsingUUID(event.ListingID, erro.ErrorInvalidListingIDFormat, traceid, place, ls.Logproducer); serviceresponse != nil {
		return serviceresponse
	}
	_, serviceresponse := requestToRepository(ls.Listingcache.DeleteListingCache(ctx, event.ListingID), traceid, ls.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	return &ServiceResponse{Success: true}
}
