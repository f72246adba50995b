package handlers

import (
	"fmt"
	"net/http"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	const place = Register
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	var regreq model.RegistrationRequest
	if !getAllData(r, w, traceID, place, &regreq, h.LogProducer) {
		return
	}
	regresponse := h.Users.Register(r.Context(), &regreq)
	if !h.serviceResponse(regresponse, r, w, traceID, place) {
		return
	}
	session := regresponse.Data.Session
	response.AddSessionCookie(w, session.SessionID, session.ExpirationTime)
	h.LogProducer.NewAdsLog(kafka.LogLevelInfo, place, traceID, fmt.Sprintf("Person with id %v has successfully registered", regresponse.Data.UserID))
	response.OkResponse(r, w, map[string]any{response.KeyMessage: "You have successfully registered", response.KeyUserID: regresponse.Data.UserID}, traceID, place, h.LogProducer)
}
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	const place = Login
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	var aureq model.AuthenticationRequest
	if !getAllData(r, w, traceID, place, &aureq, h.LogProducer) {
		return
	}
	auresponse := h.Users.Login(r.Context(), &aureq)
	if !h.serviceResponse(auresponse, r, w, traceID, place) {
		return
	}
	session := auresponse.Data.Session
	response.AddSessionCookie(w, session.SessionID, session.ExpirationTime)
	h.LogProducer.NewAdsLog(kafka.LogLevelInfo, place, traceID, fmt.Sprintf("Person with id %v has successfully login", auresponse.Data.UserID))
	response.OkResponse(r, w, map[string]any{response.KeyMessage: "You have successfully login", response.KeyUserID: auresponse.Data.UserID}, traceID, place, h.LogProducer)
}
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	const place = Logout
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	persondata, ok := h.getPersonality(r, w, traceID, place)
	if !ok {
		return
	}
	logresponse := h.Users.Logout(r.Context(), persondata["sessionID"])
	if !h.serviceResponse(logresponse, r, w, traceID, place) {
		return
	}
	response.DeleteSessionCookie(w)
	h.LogProducer.NewAdsLog(kafka.LogLevelInfo, place, traceID, fmt.Sprintf("Person with id %v has successfully logout", persondata["userID"]))
	response.OkResponse(r, w, map[string]any{response.KeyMessage: "You have successfully logout"}, traceID, place, h.LogProducer)
}
func (h *Handler) MyProfile(w http.ResponseWriter, r *http.Request) {
	const place = MyProfile
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	persondata, ok := h.getPersonality(r, w, traceID, place)
	if !ok {
		return
	}
	profileresponse := h.Users.GetProfile(r.Context(), persondata["userID"])
	if !h.serviceResponse(profileresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyProfile: profileresponse.Data.Profile}, traceID, place, h.LogProducer)
}
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	const place = DeleteAccount
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	persondata, ok := h.getPersonality(r, w, traceID, place)
	if !ok {
		return
	}
	var delreq model.DeletionRequest
	if !getAllData(r, w, traceID, place, &delreq, h.LogProducer) {
		return
	}
	delresponse := h.Users.DeleteAccount(r.Context(), persondata["sessionID"], persondata["userID"], &delreq)
	if !h.serviceResponse(delresponse, r, w, traceID, place) {
		return
	}
	response.DeleteSessionCookie(w)
	h.LogProducer.NewAdsLog(kafka.LogLevelInfo, place, traceID, fmt.Sprintf("Person with id %v has successfully deleted account", persondata["userID"]))
	response.OkResponse(r, w, map[string]any{response.KeyMessage: "You have successfully deleted account"}, traceID, place, h.LogProducer)
}
