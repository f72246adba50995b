package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/gallery"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
)

// DraftService edits listings before they are published. A draft belongs to the user who opened it.
type DraftService struct {
	Draftcache   DraftCache
	Listingrepo  DBListingRepos
	Listingcache ListingCache
	Cloud        CloudPhotoStorage
	Events       EventProducer
	Logproducer  LogProducer
	Validator    *validator.Validate
	Pool         *TaskPool
}

func NewDraftService(draftcache DraftCache, listingrepo DBListingRepos, listingcache ListingCache, cloud CloudPhotoStorage, events EventProducer, logproducer LogProducer, pool *TaskPool) *DraftService {
	return &DraftService{
		Draftcache:   draftcache,
		Listingrepo:  listingrepo,
		Listingcache: listingcache,
		Cloud:        cloud,
		Events:       events,
		Logproducer:  logproducer,
		Validator:    NewValidator(),
		Pool:         pool,
	}
}
func (ds *DraftService) loadDraft(ctx context.Context, userid string, draftid string, traceid string, place string) (*model.Draft, *ServiceResponse) {
	cacheresponse, serviceresponse := requestToRepository(ds.Draftcache.GetDraft(ctx, draftid), traceid, ds.Logproducer)
	if serviceresponse != nil {
		return nil, serviceresponse
	}
	draft := cacheresponse.Data.Draft
	if draft.OwnerId != userid {
		ds.Logproducer.NewAdsLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s requested draft %s of another user", userid, draftid))
		return nil, &ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorDraftNotFound)}
	}
	return draft, nil
}
func (ds *DraftService) saveDraft(ctx context.Context, draft *model.Draft, traceid string) *ServiceResponse {
	_, serviceresponse := requestToRepository(ds.Draftcache.SetDraft(ctx, draft), traceid, ds.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	return &ServiceResponse{Success: true, Data: Data{Draft: draft}}
}
func (ds *DraftService) OpenDraft(ctx context.Context, userid string) *ServiceResponse {
	traceid := traceID(ctx)
	draft := &model.Draft{Id: uuid.New().String(), OwnerId: userid, Photos: []string{}}
	return ds.saveDraft(ctx, draft, traceid)
}

// OpenEditDraft copies an owned listing into a new draft.
func (ds *DraftService) OpenEditDraft(ctx context.Context, userid string, listingidstr string) *ServiceResponse {
	const place = UseCase_OpenEditDraft
	traceid := traceID(ctx)
	listing, serviceresponse := ds.ownListing(ctx, userid, listingidstr, traceid, place)
	if serviceresponse != nil {
		return serviceresponse
	}
	draft := &model.Draft{
		Id:          uuid.New().String(),
		OwnerId:     userid,
		ListingId:   listing.Id.String(),
		Title:       listing.Title,
		Description: listing.Description,
		Price:       listing.Price,
		Photos:      gallery.NewPhotoSet(listing.Photos).Refs(),
	}
	return ds.saveDraft(ctx, draft, traceid)
}
func (ds *DraftService) ownListing(ctx context.Context, userid string, listingidstr string, traceid string, place string) (*model.Listing, *ServiceResponse) {
	listingid, serviceresponse := parsingUUID(listingidstr, erro.ErrorInvalidListingIDFormat, traceid, place, ds.Logproducer)
	if serviceresponse != nil {
		return nil, serviceresponse
	}
	bdresponse, serviceresponse := requestToRepository(ds.Listingrepo.GetListing(ctx, listingid), traceid, ds.Logproducer)
	if serviceresponse != nil {
		return nil, serviceresponse
	}
	if bdresponse.Data.Listing.OwnerId.String() != userid {
		ds.Logproducer.NewAdsLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s tried to edit listing %s", userid, listingidstr))
		return nil, &ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorForeignListing)}
	}
	return bdresponse.Data.Listing, nil
}
func (ds *DraftService) GetDraft(ctx context.Context, userid string, draftid string) *ServiceResponse {
	const place = UseCase_GetDraft
	traceid := traceID(ctx)
	draft, serviceresponse := ds.loadDraft(ctx, userid, draftid, traceid, place)
	if serviceresponse != nil {
		return serviceresponse
	}
	return &ServiceResponse{Success: true, Data: Data{Draft: draft}}
}
func (ds *DraftService) UpdateDraft(ctx context.Context, userid string, draftid string, req *model.DraftUpdateRequest) *ServiceResponse {
	const place = UseCase_UpdateDraft
	traceid := traceID(ctx)
	if errv := validateData(ds.Validator, req, traceid, place, ds.Logproducer); errv != nil {
		return &ServiceResponse{Success: false, Errors: errv}
	}
	draft, serviceresponse := ds.loadDraft(ctx, userid, draftid, traceid, place)
	if serviceresponse != nil {
		return serviceresponse
	}
	if req.Title != nil {
		draft.Title = *req.Title
	}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.Price != nil {
		draft.Price = *req.Price
	}
	return ds.saveDraft(ctx, draft, traceid)
}

// AddPhotos appends already hosted references. An empty batch leaves the draft as it is.
func (ds *DraftService) AddPhotos(ctx context.Context, userid string, draftid string, req *model.PhotoBatchRequest) *ServiceResponse {
	const place = UseCase_AddPhotos
	traceid := traceID(ctx)
	if errv := validateData(ds.Validator, req, traceid, place, ds.Logproducer); errv != nil {
		return &ServiceResponse{Success: false, Errors: errv}
	}
	draft, serviceresponse := ds.loadDraft(ctx, userid, draftid, traceid, place)
	if serviceresponse != nil {
		return serviceresponse
	}
	if len(req.Photos) == 0 {
		return &ServiceResponse{Success: true, Data: Data{Draft: draft}}
	}
	draft.Photos = gallery.PhotoSet(draft.Photos).Append(req.Photos).Refs()
	return ds.saveDraft(ctx, draft, traceid)
}

// UploadPhotos publishes the files to the cloud and appends their links as one batch.
// Files past the free slots of the draft are not uploaded. Any failure leaves the draft unchanged.
// The links are remembered in draft.Uploaded: only those may ever be deleted from the cloud.
func (ds *DraftService) UploadPhotos(ctx context.Context, userid string, draftid string, files [][]byte) *ServiceResponse {
	const place = UseCase_UploadPhotos
	traceid := traceID(ctx)
	if len(files) == 0 {
		ds.Logproducer.NewAdsLog(kafka.LogLevelWarn, place, traceid, erro.ErrorEmptyPhotoBatch)
		metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		return &ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorEmptyPhotoBatch)}
	}
	for i, file := range files {
		if errc := checkPhoto(file); errc != nil {
			ds.Logproducer.NewAdsLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("File %d rejected: %s", i, errc.Message))
			metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			return &ServiceResponse{Success: false, Errors: errc}
		}
	}
	draft, serviceresponse := ds.loadDraft(ctx, userid, draftid, traceid, place)
	if serviceresponse != nil {
		return serviceresponse
	}
	photos := gallery.PhotoSet(draft.Photos)
	if free := photos.Free(); len(files) > free {
		ds.Logproducer.NewAdsLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("%d of %d files exceed the photo limit and are skipped", len(files)-free, len(files)))
		files = files[:free]
	}
	links := make([]string, 0, len(files))
	for _, file := range files {
		link, serviceresponse := ds.unloadPhotoCloud(ctx, file, traceid)
		if serviceresponse != nil {
			deletePhotosCloud(ctx, ds.Pool, ds.Cloud, links, traceid, ds.Logproducer)
			return serviceresponse
		}
		links = append(links, link)
	}
	draft.Photos = photos.Append(links).Refs()
	draft.Uploaded = append(draft.Uploaded, links...)
	serviceresponse = ds.saveDraft(ctx, draft, traceid)
	if !serviceresponse.Success {
		deletePhotosCloud(ctx, ds.Pool, ds.Cloud, links, traceid, ds.Logproducer)
	}
	return serviceresponse
}
func (ds *DraftService) unloadPhotoCloud(ctx context.Context, file []byte, traceid string) (string, *ServiceResponse) {
	const place = UnloadPhotoCloud
	prepared, errc := preparePhoto(file)
	if errc != nil {
		if errc.Type == erro.ServerErrorType {
			ds.Logproducer.NewAdsLog(kafka.LogLevelError, place, traceid, errc.Message)
			metrics.AdsErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
			return "", &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AdsServiceUnavalaible)}
		}
		ds.Logproducer.NewAdsLog(kafka.LogLevelWarn, place, traceid, errc.Message)
		metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		return "", &ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorInvalidFileFormat)}
	}
	photoid := uuid.New().String()
	tempFile := filepath.Join(os.TempDir(), photoid+".jpg")
	err := os.WriteFile(tempFile, prepared, 0644)
	if err != nil {
		ds.Logproducer.NewAdsLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Failed to create temp file: %v", err))
		metrics.AdsErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		return "", &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AdsServiceUnavalaible)}
	}
	defer func() {
		if err := os.Remove(tempFile); err != nil {
			ds.Logproducer.NewAdsLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Failed to remove temp file: %v", err))
		}
	}()
	cloudresponse, serviceresponse := requestToRepository(ds.Cloud.UploadFile(ctx, tempFile, photoid), traceid, ds.Logproducer)
	if serviceresponse != nil {
		return "", serviceresponse
	}
	return cloudresponse.Data.PhotoURL, nil
}

// RemovePhoto drops the photo at index. An index outside the draft's photos changes nothing.
func (ds *DraftService) RemovePhoto(ctx context.Context, userid string, draftid string, index int) *ServiceResponse {
	const place = UseCase_RemovePhoto
	traceid := traceID(ctx)
	draft, serviceresponse := ds.loadDraft(ctx, userid, draftid, traceid, place)
	if serviceresponse != nil {
		return serviceresponse
	}
	if index < 0 || index >= len(draft.Photos) {
		ds.Logproducer.NewAdsLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Photo index %d is out of range, draft left unchanged", index))
		return &ServiceResponse{Success: true, Data: Data{Draft: draft}}
	}
	draft.Photos = gallery.PhotoSet(draft.Photos).RemoveAt(index).Refs()
	return ds.saveDraft(ctx, draft, traceid)
}

// Submit publishes the draft: a new listing for create drafts, an update of the source listing otherwise.
// Cloud files are removed only when this service uploaded them for the owner and no photo refers to them anymore.
func (ds *DraftService) Submit(ctx context.Context, userid string, draftid string) *ServiceResponse {
	const place = UseCase_SubmitDraft
	traceid := traceID(ctx)
	draft, serviceresponse := ds.loadDraft(ctx, userid, draftid, traceid, place)
	if serviceresponse != nil {
		return serviceresponse
	}
	if errv := validateData(ds.Validator, draft, traceid, place, ds.Logproducer); errv != nil {
		return &ServiceResponse{Success: false, Errors: errv}
	}
	ownerid, serviceresponse := parsingUUID(userid, erro.ErrorInvalidUserIDFormat, traceid, place, ds.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	var listing *model.Listing
	owned := draft.Uploaded
	if draft.ListingId == "" {
		listing = &model.Listing{Id: uuid.New(), OwnerId: ownerid}
	} else {
		listing, serviceresponse = ds.ownListing(ctx, userid, draft.ListingId, traceid, place)
		if serviceresponse != nil {
			return serviceresponse
		}
		owned = append(append([]string{}, listing.Uploaded...), draft.Uploaded...)
	}
	listing.Title = draft.Title
	listing.Description = draft.Description
	listing.Price = draft.Price
	listing.Photos = gallery.NewPhotoSet(draft.Photos).Refs()
	listing.Uploaded = shared(owned, listing.Photos)
	removed := orphans(owned, listing.Photos)
	if draft.ListingId == "" {
		bdresponse, serviceresponse := requestToRepository(ds.Listingrepo.CreateListing(ctx, listing), traceid, ds.Logproducer)
		if serviceresponse != nil {
			return serviceresponse
		}
		listing = bdresponse.Data.Listing
		publishEvent(ctx, ds.Events, model.ListingCreatedKey, &model.AdsEvent{UserID: userid, ListingID: listing.Id.String(), Traceid: traceid}, place, ds.Logproducer)
	} else {
		_, serviceresponse = requestToRepository(ds.Listingrepo.UpdateListing(ctx, listing), traceid, ds.Logproducer)
		if serviceresponse != nil {
			return serviceresponse
		}
		logOnly(ds.Listingcache.DeleteListingCache(ctx, draft.ListingId), traceid, ds.Logproducer)
	}
	if len(removed) > 0 {
		deletePhotosCloud(ctx, ds.Pool, ds.Cloud, removed, traceid, ds.Logproducer)
	}
	logOnly(ds.Draftcache.DeleteDraft(ctx, draftid), traceid, ds.Logproducer)
	return &ServiceResponse{Success: true, Data: Data{Listing: model.NewListingView(listing, userid)}}
}

// Discard drops the draft together with its own uploads that the source listing does not use.
// A source listing that can no longer be read because of a server error keeps the draft for a retry.
func (ds *DraftService) Discard(ctx context.Context, userid string, draftid string) *ServiceResponse {
	const place = UseCase_DiscardDraft
	traceid := traceID(ctx)
	draft, serviceresponse := ds.loadDraft(ctx, userid, draftid, traceid, place)
	if serviceresponse != nil {
		return serviceresponse
	}
	unused := draft.Uploaded
	if draft.ListingId != "" {
		listing, serviceresponse := ds.ownListing(ctx, userid, draft.ListingId, traceid, place)
		switch {
		case serviceresponse == nil:
			unused = orphans(draft.Uploaded, listing.Photos)
		case serviceresponse.Errors != nil && serviceresponse.Errors.Type == erro.ServerErrorType:
			return serviceresponse
		default:
			ds.Logproducer.NewAdsLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Source listing %s of draft %s is gone, its uploads are dropped", draft.ListingId, draftid))
		}
	}
	_, serviceresponse = requestToRepository(ds.Draftcache.DeleteDraft(ctx, draftid), traceid, ds.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	if len(unused) > 0 {
		deletePhotosCloud(ctx, ds.Pool, ds.Cloud, unused, traceid, ds.Logproducer)
	}
	return &ServiceResponse{Success: true}
}
