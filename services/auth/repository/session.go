package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/piresc/groomer/internal/pkg/constants"
	"github.com/piresc/groomer/internal/pkg/database"
	"github.com/piresc/groomer/internal/pkg/models"
)

// DefaultKeyPrefix namespaces the session keys
const DefaultKeyPrefix = constants.DefaultSessionPrefix

// ErrCorruptSession is returned when the stored profile cannot be decoded
var ErrCorruptSession = errors.New("stored session is corrupt")

// Keys lists the storage keys of one session namespace
type Keys struct {
	Token        string
	GroomerData  string
	RefreshToken string
}

// KeysFor derives the session keys for prefix
func KeysFor(prefix string) Keys {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return Keys{
		Token:        fmt.Sprintf(constants.KeySessionToken, prefix),
		GroomerData:  fmt.Sprintf(constants.KeySessionGroomerData, prefix),
		RefreshToken: fmt.Sprintf(constants.KeySessionRefreshToken, prefix),
	}
}

// RedisSessionRepo keeps the session in Redis
type RedisSessionRepo struct {
	redisClient *database.RedisClient
	keys        Keys
}

// NewRedisSessionRepo creates a new Redis backed session repository
func NewRedisSessionRepo(redisClient *database.RedisClient, prefix string) *RedisSessionRepo {
	return &RedisSessionRepo{
		redisClient: redisClient,
		keys:        KeysFor(prefix),
	}
}

// SaveSession stores the token and the serialized profile
func (r *RedisSessionRepo) SaveSession(ctx context.Context, session *models.AuthSession) error {
	data, err := json.Marshal(session.Groomer)
	if err != nil {
		return fmt.Errorf("failed to marshal groomer data: %w", err)
	}

	if err := r.redisClient.SetMany(ctx, r.keys.Token, session.Token, r.keys.GroomerData, string(data)); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// LoadSession reads the stored session
func (r *RedisSessionRepo) LoadSession(ctx context.Context) (*models.AuthSession, error) {
	values, err := r.redisClient.GetMany(ctx, r.keys.Token, r.keys.GroomerData)
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return nil, models.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return decodeSession(values[0], []byte(values[1]))
}

// ClearSession removes every session key
func (r *RedisSessionRepo) ClearSession(ctx context.Context) error {
	if err := r.redisClient.Delete(ctx, r.keys.Token, r.keys.GroomerData, r.keys.RefreshToken); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func decodeSession(token string, data []byte) (*models.AuthSession, error) {
	var groomer models.Groomer
	if err := json.Unmarshal(data, &groomer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if token == "" {
		return nil, models.ErrSessionNotFound
	}
	return &models.AuthSession{Groomer: &groomer, Token: token}, nil
}
