package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/providers"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/repositories"
)

// CachedRoomAdapter wraps a RoomRepository with read-through caching.
// Public listing pages hit the district and detail reads hardest, so
// those are cached; every mutation invalidates the room keyspace.
type CachedRoomAdapter struct {
	adapter repositories.RoomRepository
	cache   providers.CacheProvider
}

// NewCachedRoomAdapter creates a new cached room adapter
func NewCachedRoomAdapter(adapter repositories.RoomRepository, cache providers.CacheProvider) repositories.RoomRepository {
	return &CachedRoomAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	roomByIDTTL     = 300
	roomListTTL     = 180
	roomDistrictTTL = 180
)

func roomCacheKey(id string) string {
	return fmt.Sprintf("rooms:id:%s", id)
}

func roomListCacheKey() string {
	return "rooms:list:all"
}

func roomDistrictCacheKey(district string) string {
	return fmt.Sprintf("rooms:district:%s", district)
}

// GetByID retrieves a room by ID with caching
func (a *CachedRoomAdapter) GetByID(ctx context.Context, id string) (*entities.Room, error) {
	cacheKey := roomCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var room entities.Room
		if unmarshalErr := json.Unmarshal(cached, &room); unmarshalErr != nil {
			log.Warn().Err(unmarshalErr).Str("key", cacheKey).Msg("failed to unmarshal cached room")
		} else {
			return &room, nil
		}
	}

	room, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(room); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, roomByIDTTL); err != nil {
				log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache room")
			}
		}
	}()

	return room, nil
}

// List retrieves all rooms with caching
func (a *CachedRoomAdapter) List(ctx context.Context) ([]*entities.Room, error) {
	return a.cachedList(ctx, roomListCacheKey(), roomListTTL, func() ([]*entities.Room, error) {
		return a.adapter.List(ctx)
	})
}

// ListByDistrict retrieves rooms for a district with caching
func (a *CachedRoomAdapter) ListByDistrict(ctx context.Context, district string) ([]*entities.Room, error) {
	return a.cachedList(ctx, roomDistrictCacheKey(district), roomDistrictTTL, func() ([]*entities.Room, error) {
		return a.adapter.ListByDistrict(ctx, district)
	})
}

func (a *CachedRoomAdapter) cachedList(ctx context.Context, cacheKey string, ttl int, fetch func() ([]*entities.Room, error)) ([]*entities.Room, error) {
	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var rooms []*entities.Room
		if unmarshalErr := json.Unmarshal(cached, &rooms); unmarshalErr != nil {
			log.Warn().Err(unmarshalErr).Str("key", cacheKey).Msg("failed to unmarshal cached room list")
		} else {
			return rooms, nil
		}
	}

	rooms, err := fetch()
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(rooms); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, ttl); err != nil {
				log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache room list")
			}
		}
	}()

	return rooms, nil
}

// Create creates a room and invalidates the room caches
func (a *CachedRoomAdapter) Create(ctx context.Context, room *entities.Room) error {
	if err := a.adapter.Create(ctx, room); err != nil {
		return err
	}
	a.invalidate(room.ID)
	return nil
}

// UpdateFields patches a room and invalidates the room caches
func (a *CachedRoomAdapter) UpdateFields(ctx context.Context, id string, patch repositories.RoomPatch) (*entities.UpdateAck, error) {
	ack, err := a.adapter.UpdateFields(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	a.invalidate(id)
	return ack, nil
}

// Delete removes a room and invalidates the room caches
func (a *CachedRoomAdapter) Delete(ctx context.Context, id string) (*entities.DeleteAck, error) {
	ack, err := a.adapter.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	a.invalidate(id)
	return ack, nil
}

func (a *CachedRoomAdapter) invalidate(id string) {
	go func() {
		bgCtx := context.Background()
		if id != "" {
			if err := a.cache.Delete(bgCtx, roomCacheKey(id)); err != nil {
				log.Warn().Err(err).Str("room_id", id).Msg("failed to invalidate room cache")
			}
		}
		if err := a.cache.DeletePattern(bgCtx, "rooms:list:*"); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate room list cache")
		}
		if err := a.cache.DeletePattern(bgCtx, "rooms:district:*"); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate room district cache")
		}
	}()
}
