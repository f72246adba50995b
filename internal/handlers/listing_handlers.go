package handlers

import (
	"net/http"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
)

// Feed lists other users' listings; with own=true the caller's listings come first.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	const place = Feed
	defer r.Body.Close()
	traceID := r.Context().Value("traceID").(string)
	persondata, ok := h.getPersonality(r, w, traceID, place)
	if !ok {
		return
	}
	own, ok := h.getOwnParameter(r, w, traceID, place)
	if !ok {
		return
	}
	feedresponse := h.Listings.Feed(r.Context(), persondata["userID"], own)
	if !h.serviceResponse(feedresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyListings: feedresponse.Data.Listings}, traceID, place, h.LogProducer)
}
func (h *Handler) GetListing(w http.ResponseWriter, r *http.Request) {
	const place = GetListing
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
	listingresponse := h.Listings.GetListing(r.Context(), persondata["userID"], listingID)
	if !h.serviceResponse(listingresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyListing: listingresponse.Data.Listing}, traceID, place, h.LogProducer)
}
func (h *Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	const place = UpdateListing
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
	var updatereq model.ListingUpdateRequest
	if !getAllData(r, w, traceID, place, &updatereq, h.LogProducer) {
		return
	}
	updateresponse := h.Listings.UpdateListing(r.Context(), persondata["userID"], listingID, &updatereq)
	if !h.serviceResponse(updateresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyListing: updateresponse.Data.Listing}, traceID, place, h.LogProducer)
}
func (h *Handler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	const place = DeleteListing
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
	deleteresponse := h.Listings.DeleteListing(r.Context(), persondata["userID"], listingID)
	if !h.serviceResponse(deleteresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyMessage: "You have successfully deleted listing"}, traceID, place, h.LogProducer)
}

// Carousel applies one navigation command or gesture to the listing's photo position.
func (h *Handler) Carousel(w http.ResponseWriter, r *http.Request) {
	const place = Carousel
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
	var carouselreq model.CarouselRequest
	if !getAllData(r, w, traceID, place, &carouselreq, h.LogProducer) {
		return
	}
	carouselresponse := h.Listings.Browse(r.Context(), persondata["userID"], listingID, &carouselreq)
	if !h.serviceResponse(carouselresponse, r, w, traceID, place) {
		return
	}
	response.OkResponse(r, w, map[string]any{response.KeyCarousel: carouselresponse.Data.Carousel}, traceID, place, h.LogProducer)
}
