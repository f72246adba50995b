package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
)

func (h *Handler) OpenDraft(w http.ResponseWriter, r *http.Request) {
	const place = OpenDraft
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	persondata, ok := h.getPersonality(r, w, traceID, place)
	if !ok {
		return
	}
	draftresponse := h.Drafts.OpenDraft(r.Context(), persondata["userID"])
	if !h.serviceResponse(draftresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyDraft: draftresponse.Data.Draft}, traceID, place, h.LogProducer)
}
func (h *Handler) OpenEditDraft(w http.ResponseWriter, r *http.Request) {
	const place = OpenEditDraft
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	persondata, ok := h.getPersonality(r, w, traceID, place)
	if !ok {
		return
	}
	listingID, ok := h.getPathParameter(r, w, traceID, place, "id")
	if !ok {
		return
	}
	draftresponse := h.Drafts.OpenEditDraft(r.Context(), persondata["userID"], listingID)
	if !h.serviceResponse(draftresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyDraft: draftresponse.Data.Draft}, traceID, place, h.LogProducer)
}
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	const place = GetDraft
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	persondata, ok := h.getPersonality(r, w, traceID, place)
	if !ok {
		return
	}
	draftID, ok := h.getPathParameter(r, w, traceID, place, "id")
	if !ok {
		return
	}
	draftresponse := h.Drafts.GetDraft(r.Context(), persondata["userID"], draftID)
	if !h.serviceResponse(draftresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyDraft: draftresponse.Data.Draft}, traceID, place, h.LogProducer)
}
func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	const place = UpdateDraft
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	persondata, ok := h.getPersonality(r, w, traceID, place)
	if !ok {
		return
	}
	draftID, ok := h.getPathParameter(r, w, traceID, place, "id")
	if !ok {
		return
	}
	var updatereq model.DraftUpdateRequest
	if !getAllData(r, w, traceID, place, &updatereq, h.LogProducer) {
		return
	}
	draftresponse := h.Drafts.UpdateDraft(r.Context(), persondata["userID"], draftID, &updatereq)
	if !h.serviceResponse(draftresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyDraft: draftresponse.Data.Draft}, traceID, place, h.LogProducer)
}

// AddPhotos appends references from a JSON body or uploads the files of a multipart body.
func (h *Handler) AddPhotos(w http.ResponseWriter, r *http.Request) {
	const place = AddPhotos
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	persondata, ok := h.getPersonality(r, w, traceID, place)
	if !ok {
		return
	}
	draftID, ok := h.getPathParameter(r, w, traceID, place, "id")
	if !ok {
		return
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		files, ok := h.readPhotoFiles(r, w, traceID, place)
		if !ok {
			return
		}
		uploadresponse := h.Drafts.UploadPhotos(r.Context(), persondata["userID"], draftID, files)
		if !h.serviceResponse(uploadresponse, r, w, traceID, place) {
			return
		}
		h.LogProducer.NewAdsLog(kafka.LogLevelInfo, place, traceID, fmt.Sprintf("Draft %s now has %d photos", draftID, len(uploadresponse.Data.Draft.Photos)))
		response.OkResponse(r, w, map[string]any{response.KeyDraft: uploadresponse.Data.Draft}, traceID, place, h.LogProducer)
		return
	}
	var batchreq model.PhotoBatchRequest
	if !getAllData(r, w, traceID, place, &batchreq, h.LogProducer) {
		return
	}
	draftresponse := h.Drafts.AddPhotos(r.Context(), persondata["userID"], draftID, &batchreq)
	if !h.serviceResponse(draftresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyDraft: draftresponse.Data.Draft}, traceID, place, h.LogProducer)
}
func (h *Handler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	const place = RemovePhoto
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	persondata, ok := h.getPersonality(r, w, traceID, place)
	if !ok {
		return
	}
	draftID, ok := h.getPathParameter(r, w, traceID, place, "id")
	if !ok {
		return
	}
	index, ok := h.getIndexParameter(r, w, traceID, place)
	if !ok {
		return
	}
	draftresponse := h.Drafts.RemovePhoto(r.Context(), persondata["userID"], draftID, index)
	if !h.serviceResponse(draftresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyDraft: draftresponse.Data.Draft}, traceID, place, h.LogProducer)
}
func (h *Handler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	const place = SubmitDraft
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	persondata, ok := h.getPersonality(r, w, traceID, place)
	if !ok {
		return
	}
	draftID, ok := h.getPathParameter(r, w, traceID, place, "id")
	if !ok {
		return
	}
	submitresponse := h.Drafts.Submit(r.Context(), persondata["userID"], draftID)
	if !h.serviceResponse(submitresponse, r, w, traceID, place) {
		return
	}
	h.LogProducer.NewAdsLog(kafka.LogLevelInfo, place, traceID, fmt.Sprintf("Person with id %v has successfully published listing %s", persondata["userID"], submitresponse.Data.Listing.Id))
	response.OkResponse(r, w, map[string]any{response.KeyListing: submitresponse.Data.Listing}, traceID, place, h.LogProducer)
}
func (h *Handler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	const place = DiscardDraft
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	persondata, ok := h.getPersonality(r, w, traceID, place)
	if !ok {
		return
	}
	draftID, ok := h.getPathParameter(r, w, traceID, place, "id")
	if !ok {
		return
	}
	discardresponse := h.Drafts.Discard(r.Context(), persondata["userID"], draftID)
	if !h.serviceResponse(discardresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyMessage: "Draft has been discarded"}, traceID, place, h.LogProducer)
}
