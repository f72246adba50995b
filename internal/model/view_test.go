package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/stretchr/testify/require"
)

func TestNewListingView_Defaults(t *testing.T) {
	listing := &model.Listing{Id: uuid.New(), OwnerId: uuid.New()}
	view := model.NewListingView(listing, "")
	require.Equal(t, model.DefaultTitle, view.Title)
	require.Equal(t, model.DefaultDescription, view.Description)
	require.Equal(t, float64(0), view.Price)
	require.NotNil(t, view.Photos)
	require.Empty(t, view.Photos)
	require.Equal(t, model.DefaultEmail, view.Email)
	require.Equal(t, model.DefaultPhone, view.Phone)
	require.Equal(t, model.DefaultState, view.State)
	require.Empty(t, view.CreatedAt)
	require.False(t, view.Own)
}
func TestNewListingView_Filled(t *testing.T) {
	owner := uuid.New()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	listing := &model.Listing{
		Id:          uuid.New(),
		OwnerId:     owner,
		Title:       "Fusca 1972",
		Description: "Original paint",
		Price:       35000,
		Photos:      []string{"p1", "p2"},
		CreatedAt:   created,
		Owner:       model.Contact{Email: "seller@mail.com", Phone: "11999990000", State: "SP"},
	}
	view := model.NewListingView(listing, owner.String())
	require.Equal(t, "Fusca 1972", view.Title)
	require.Equal(t, "São Paulo", view.State)
	require.Equal(t, []string{"p1", "p2"}, view.Photos)
	require.Equal(t, "2024-05-01T10:00:00Z", view.CreatedAt)
	require.True(t, view.Own)
	view.Photos[0] = "changed"
	require.Equal(t, "p1", listing.Photos[0])
}
func TestNewListingView_UnknownStateKept(t *testing.T) {
	listing := &model.Listing{Owner: model.Contact{State: "XX"}}
	require.Equal(t, "XX", model.NewListingView(listing, "").State)
}
func TestNewProfileView(t *testing.T) {
	view := model.NewProfileView(&model.User{Email: "a@b.com", State: "RJ"})
	require.Equal(t, "a@b.com", view.Email)
	require.Equal(t, model.NotInformed, view.Name)
	require.Equal(t, model.NotInformed, view.Phone)
	require.Equal(t, "Rio de Janeiro", view.State)
	require.Equal(t, model.NotInformed, model.NewProfileView(&model.User{}).State)
}
