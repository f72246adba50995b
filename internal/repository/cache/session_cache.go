package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/repository"
)

const KeySession = "session:%s"

type SessionCache struct {
	cacheclient *CacheObject
}

func NewSessionCache(red *CacheObject) *SessionCache {
	return &SessionCache{cacheclient: red}
}
func (redisrepo *SessionCache) SetSession(ctx context.Context, session *model.Session) *repository.RepositoryResponse {
	const place = repository.SetSession
	start := time.Now()
	defer CacheMetrics(place, start)
	key := fmt.Sprintf(KeySession, session.SessionID)
	pipe := redisrepo.cacheclient.connect.TxPipeline()
	defer pipe.Discard()
	pipe.HSet(ctx, key, map[string]interface{}{
		"UserID":         session.UserID,
		"ExpirationTime": session.ExpirationTime.Format(time.RFC3339),
	})
	pipe.Expire(ctx, key, time.Until(session.ExpirationTime))
	_, err := pipe.Exec(ctx)
	if err != nil {
		metrics.AdsCacheErrorsTotal.WithLabelValues("HSET").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorSetSession, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Session: session}, place, "Successful set session in cache")
}
func (redisrepo *SessionCache) GetSession(ctx context.Context, sessionid string) *repository.RepositoryResponse {
	const place = repository.GetSession
	start := time.Now()
	defer CacheMetrics(place, start)
	result, err := redisrepo.cacheclient.connect.HGetAll(ctx, fmt.Sprintf(KeySession, sessionid)).Result()
	if err != nil {
		metrics.AdsCacheErrorsTotal.WithLabelValues("HGETALL").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorGetSession, err)), place)
	}
	if len(result) == 0 {
		return repository.BadResponse(erro.ClientError(erro.ErrorInvalidSession), place)
	}
	userid, err := uuid.Parse(result["UserID"])
	if err != nil {
		return repository.BadResponse(erro.ClientError(erro.ErrorInvalidSession), place)
	}
	expiration, err := time.Parse(time.RFC3339, result["ExpirationTime"])
	if err != nil {
		return repository.BadResponse(erro.ClientError(erro.ErrorInvalidSession), place)
	}
	session := &model.Session{SessionID: sessionid, UserID: userid.String(), ExpirationTime: expiration}
	return repository.SuccessResponse(repository.Data{Session: session, UserID: session.UserID}, place, "Successful get session from cache")
}
func (redisrepo *SessionCache) DeleteSession(ctx context.Context, sessionid string) *repository.RepositoryResponse {
	const place = repository.DeleteSession
	start := time.Now()
	defer CacheMetrics(place, start)
	num, err := redisrepo.cacheclient.connect.Del(ctx, fmt.Sprintf(KeySession, sessionid)).Result()
	if err != nil {
		metrics.AdsCacheErrorsTotal.WithLabelValues("DEL").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorDelSession, err)), place)
	}
	if num == 0 {
		return repository.SuccessResponse(repository.Data{}, place, "Session was not found in the cache")
	}
	return repository.SuccessResponse(repository.Data{}, place, "Successful delete session from cache")
}
