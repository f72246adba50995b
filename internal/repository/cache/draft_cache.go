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

const KeyDraft = "draft:%s"

// DraftCache keeps unsubmitted listing drafts; every write refreshes the ttl.
type DraftCache struct {
	cacheclient *CacheObject
	ttl         time.Duration
}

func NewDraftCache(red *CacheObject, ttl time.Duration) *DraftCache {
	return &DraftCache{cacheclient: red, ttl: ttl}
}
func (redisrepo *DraftCache) SetDraft(ctx context.Context, draft *model.Draft) *repository.RepositoryResponse {
	const place = repository.SetDraft
	start := time.Now()
	jsondata, err := json.Marshal(draft)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorMarshal, err)), place)
	}
	defer CacheMetrics(place, start)
	err = redisrepo.cacheclient.connect.Set(ctx, fmt.Sprintf(KeyDraft, draft.Id), jsondata, redisrepo.ttl).Err()
	if err != nil {
		metrics.AdsCacheErrorsTotal.WithLabelValues("SET").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorSetDraft, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Draft: draft}, place, "Successful set draft in cache")
}
func (redisrepo *DraftCache) GetDraft(ctx context.Context, draftid string) *repository.RepositoryResponse {
	const place = repository.GetDraft
	start := time.Now()
	defer CacheMetrics(place, start)
	result, err := redisrepo.cacheclient.connect.Get(ctx, fmt.Sprintf(KeyDraft, draftid)).Result()
	if err != nil {
		if err == redis.Nil {
			return repository.BadResponse(erro.ClientError(erro.ErrorDraftNotFound), place)
		}
		metrics.AdsCacheErrorsTotal.WithLabelValues("GET").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorGetDraft, err)), place)
	}
	var draft model.Draft
	err = json.Unmarshal([]byte(result), &draft)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorUnmarshal, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Draft: &draft}, place, "Successful get draft from cache")
}
func (redisrepo *DraftCache) DeleteDraft(ctx context.Context, draftid string) *repository.RepositoryResponse {
	const place = repository.DeleteDraft
	start := time.Now()
	defer CacheMetrics(place, start)
	num, err := redisrepo.cacheclient.connect.Del(ctx, fmt.Sprintf(KeyDraft, draftid)).Result()
	if err != nil {
		metrics.AdsCacheErrorsTotal.WithLabelValues("DEL").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorDelDraft, err)), place)
	}
	if num == 0 {
		return repository.BadResponse(erro.ClientError(erro.ErrorDraftNotFound), place)
	}
	return repository.SuccessResponse(repository.Data{}, place, "Successful delete draft from cache")
}
