package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Mahesh-gd/google-flights-demo/internal/models"
)

// Cache stores live search results keyed by criteria. Sample-data results
// are never written here.
type Cache interface {
	Get(ctx context.Context, criteria models.SearchCriteria) ([]models.Itinerary, bool)
	Set(ctx context.Context, criteria models.SearchCriteria, itineraries []models.Itinerary) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, criteria models.SearchCriteria) ([]models.Itinerary, bool) {
	data, err := c.client.Get(ctx, Key(criteria)).Bytes()
	if err != nil {
		return nil, false
	}

	var itineraries []models.Itinerary
	if err := json.Unmarshal(data, &itineraries); err != nil {
		return nil, false
	}

	return itineraries, true
}

func (c *RedisCache) Set(ctx context.Context, criteria models.SearchCriteria, itineraries []models.Itinerary) error {
	data, err := json.Marshal(itineraries)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, Key(criteria), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, criteria models.SearchCriteria) ([]models.Itinerary, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, criteria models.SearchCriteria, itineraries []models.Itinerary) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// Key hashes the fetch-relevant criteria fields. Sort order is excluded: the
// pipeline reorders cached lists on the way out.
func Key(criteria models.SearchCriteria) string {
	keyData := struct {
		TripType    string
		Origin      string
		Destination string
		DepartDate  string
		ReturnDate  string
		Passengers  string
		TravelClass string
	}{
		TripType:    criteria.TripType,
		Origin:      criteria.Origin,
		Destination: criteria.Destination,
		DepartDate:  criteria.DepartDate,
		ReturnDate:  criteria.ReturnDate,
		Passengers:  criteria.Passengers,
		TravelClass: criteria.TravelClass,
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "flight:" + hex.EncodeToString(hash[:])
}
