package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Userrepo     DBUserRepos
	Listingrepo  DBListingRepos
	Txmanager    DBTxManager
	Sessions     SessionCache
	Listingcache ListingCache
	Events       EventProducer
	Logproducer  LogProducer
	Validator    *validator.Validate
	SessionTTL   time.Duration
}

func NewUserService(userrepo DBUserRepos, listingrepo DBListingRepos, txmanager DBTxManager, sessions SessionCache, listingcache ListingCache, events EventProducer, logproducer LogProducer, sessionTTL time.Duration) *UserService {
	return &UserService{
		Userrepo:     userrepo,
		Listingrepo:  listingrepo,
		Txmanager:    txmanager,
		Sessions:     sessions,
		Listingcache: listingcache,
		Events:       events,
		Logproducer:  logproducer,
		Validator:    NewValidator(),
		SessionTTL:   sessionTTL,
	}
}
func (us *UserService) Register(ctx context.Context, req *model.RegistrationRequest) *ServiceResponse {
	const place = UseCase_Register
	traceid := traceID(ctx)
	if errv := validateData(us.Validator, req, traceid, place, us.Logproducer); errv != nil {
		return &ServiceResponse{Success: false, Errors: errv}
	}
	hashpass, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		us.Logproducer.NewAdsLog(kafka.LogLevelError, place, traceid, fmt.Sprintf(erro.ErrorGenerateHashPassword, err))
		metrics.AdsErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AdsServiceUnavalaible)}
	}
	user := &model.User{Id: uuid.New(), Name: req.Name, Email: req.Email, Password: string(hashpass), Phone: req.Phone, State: req.State}
	bdresponse, serviceresponse := requestToRepository(us.Userrepo.CreateUser(ctx, user), traceid, us.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	return us.createSession(ctx, bdresponse.Data.UserID, traceid)
}
func (us *UserService) Login(ctx context.Context, req *model.AuthenticationRequest) *ServiceResponse {
	const place = UseCase_Login
	traceid := traceID(ctx)
	if errv := validateData(us.Validator, req, traceid, place, us.Logproducer); errv != nil {
		return &ServiceResponse{Success: false, Errors: errv}
	}
	bdresponse, serviceresponse := requestToRepository(us.Userrepo.GetUser(ctx, req.Email, req.Password), traceid, us.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	return us.createSession(ctx, bdresponse.Data.UserID, traceid)
}
func (us *UserService) createSession(ctx context.Context, userid string, traceid string) *ServiceResponse {
	session := &model.Session{SessionID: uuid.New().String(), UserID: userid, ExpirationTime: time.Now().Add(us.SessionTTL)}
	_, serviceresponse := requestToRepository(us.Sessions.SetSession(ctx, session), traceid, us.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	return &ServiceResponse{Success: true, Data: Data{UserID: userid, Session: session}}
}

// Authorize resolves a session cookie value to the user it belongs to.
func (us *UserService) Authorize(ctx context.Context, sessionid string) *ServiceResponse {
	const place = UseCase_Authorize
	traceid := traceID(ctx)
	if _, err := uuid.Parse(sessionid); err != nil {
		us.Logproducer.NewAdsLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("UUID-parse Error: %v", err))
		return &ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorInvalidSession)}
	}
	cacheresponse, serviceresponse := requestToRepository(us.Sessions.GetSession(ctx, sessionid), traceid, us.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	return &ServiceResponse{Success: true, Data: Data{UserID: cacheresponse.Data.Session.UserID, Session: cacheresponse.Data.Session}}
}
func (us *UserService) Logout(ctx context.Context, sessionid string) *ServiceResponse {
	traceid := traceID(ctx)
	_, serviceresponse := requestToRepository(us.Sessions.DeleteSession(ctx, sessionid), traceid, us.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	return &ServiceResponse{Success: true}
}
func (us *UserService) GetProfile(ctx context.Context, useridstr string) *ServiceResponse {
	const place = UseCase_GetProfile
	traceid := traceID(ctx)
	userid, serviceresponse := parsingUUID(useridstr, erro.ErrorInvalidUserIDFormat, traceid, place, us.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	bdresponse, serviceresponse := requestToRepository(us.Userrepo.GetProfileById(ctx, userid), traceid, us.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	return &ServiceResponse{Success: true, Data: Data{Profile: model.NewProfileView(bdresponse.Data.User)}}
}

// DeleteAccount removes the user together with their listings; cloud photos are cleaned up by the user.delete consumer.
func (us *UserService) DeleteAccount(ctx context.Context, sessionid string, useridstr string, req *model.DeletionRequest) *ServiceResponse {
	const place = UseCase_DeleteAccount
	traceid := traceID(ctx)
	if errv := validateData(us.Validator, req, traceid, place, us.Logproducer); errv != nil {
		return &ServiceResponse{Success: false, Errors: errv}
	}
	userid, serviceresponse := parsingUUID(useridstr, erro.ErrorInvalidUserIDFormat, traceid, place, us.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	tx, serviceresponse := beginTransaction(ctx, us.Txmanager, traceid, place, us.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	committed := false
	defer func() {
		if !committed {
			rollbackTransaction(ctx, us.Txmanager, tx, traceid, place, us.Logproducer)
		}
	}()
	listingsresponse, serviceresponse := requestToRepository(us.Listingrepo.DeleteUserListings(ctx, tx, userid), traceid, us.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	_, serviceresponse = requestToRepository(us.Userrepo.DeleteUser(ctx, tx, userid, req.Password), traceid, us.Logproducer)
	if serviceresponse != nil {
		return serviceresponse
	}
	if serviceresponse = commitTransaction(ctx, us.Txmanager, tx, traceid, place, us.Logproducer); serviceresponse != nil {
		return serviceresponse
	}
	committed = true
	logOnly(us.Sessions.DeleteSession(ctx, sessionid), traceid, us.Logproducer)
	listingids := make([]string, 0, len(listingsresponse.Data.Listings))
	for _, listing := range listingsresponse.Data.Listings {
		listingids = append(listingids, listing.Id.String())
	}
	logOnly(us.Listingcache.DeleteListingsCache(ctx, listingids), traceid, us.Logproducer)
	publishEvent(ctx, us.Events, model.UserDeleteKey, &model.AdsEvent{
		UserID:   useridstr,
		Listings: listingids,
		Photos:   listingsresponse.Data.Photos,
		Traceid:  traceid,
	}, place, us.Logproducer)
	return &ServiceResponse{Success: true}
}
