package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/repository"
	"github.com/redis/go-redis/v9"
)

const KeyListing = "listing:%s"

type ListingCache struct {
	cacheclient *CacheObject
}

func NewListingCache(red *CacheObject) *ListingCache {
	return &ListingCache{cacheclient: red}
}
func (redisrepo *ListingCache) AddListingCache(ctx context.Context, listing *model.Listing) *repository.RepositoryResponse {
	const place = repository.AddListingCache
	start := time.Now()
	jsondata, err := json.Marshal(listing)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorMarshal, err)), place)
	}
	defer CacheMetrics(place, start)
	err = redisrepo.cacheclient.connect.Set(ctx, fmt.Sprintf(KeyListing, listing.Id), jsondata, 1*time.Hour).Err()
	if err != nil {
		metrics.AdsCacheErrorsTotal.WithLabelValues("SET").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorSetListing, err)), place)
	}
	return repository.SuccessResponse(repository.Data{}, place, "Successful add listing in cache")
}

// GetListingCache reports a miss as an unsuccessful response without errors.
func (redisrepo *ListingCache) GetListingCache(ctx context.Context, listingid string) *repository.RepositoryResponse {
	const place = repository.GetListingCache
	start := time.Now()
	defer CacheMetrics(place, start)
	result, err := redisrepo.cacheclient.connect.Get(ctx, fmt.Sprintf(KeyListing, listingid)).Result()
	if err != nil {
		if err == redis.Nil {
			return &repository.RepositoryResponse{Success: false, SuccessMessage: "Listing was not found in the cache", Place: place}
		}
		metrics.AdsCacheErrorsTotal.WithLabelValues("GET").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorGetListing, err)), place)
	}
	var listing model.Listing
	err = json.Unmarshal([]byte(result), &listing)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorUnmarshal, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Listing: &listing}, place, "Successful get listing from cache")
}
func (redisrepo *ListingCache) DeleteListingCache(ctx context.Context, listingid string) *repository.RepositoryResponse {
	const place = repository.DeleteListingCache
	start := time.Now()
	defer CacheMetrics(place, start)
	num, err := redisrepo.cacheclient.connect.Del(ctx, fmt.Sprintf(KeyListing, listingid)).Result()
	if err != nil {
		metrics.AdsCacheErrorsTotal.WithLabelValues("DEL").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorDelListing, err)), place)
	}
	if num == 0 {
		return repository.SuccessResponse(repository.Data{}, place, "Listing was not found in the cache")
	}
	return repository.SuccessResponse(repository.Data{}, place, "Successful delete listing from cache")
}
func (redisrepo *ListingCache) DeleteListingsCache(ctx context.Context, listingids []string) *repository.RepositoryResponse {
	const place = repository.DeleteListingsCache
	start := time.Now()
	defer CacheMetrics(place, start)
	if len(listingids) == 0 {
		return repository.SuccessResponse(repository.Data{}, place, "No listings to delete from cache")
	}
	pipe := redisrepo.cacheclient.connect.TxPipeline()
	defer pipe.Discard()
	for _, id := range listingids {
		pipe.Del(ctx, fmt.Sprintf(KeyListing, id))
	}
	_, err := pipe.Exec(ctx)
	if err != nil {
		metrics.AdsCacheErrorsTotal.WithLabelValues("DEL").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorPipeExec, err)), place)
	}
	return repository.SuccessResponse(repository.Data{}, place, fmt.Sprintf("Successful delete %d listings from cache", len(listingids)))
}

