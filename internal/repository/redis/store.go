package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"kinogate/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const (
	usersKey    = "kinogate:users"
	channelsKey = "kinogate:channels"
	mediaKey    = "kinogate:media"
)

// Store implements repository.Store with one Redis hash or set per record kind.
// HSETNX and SADD give per-key atomic conflict detection.
type Store struct {
	client *goredis.Client
	now    func() time.Time
}

type userRecord struct {
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

type mediaRecord struct {
	Kind      domain.MediaKind `json:"kind"`
	FileID    string           `json:"file_id"`
	CreatedAt time.Time        `json:"created_at"`
}

// Connect parses a redis:// URL and verifies the connection with a ping
func Connect(ctx context.Context, url string) (*Store, error) {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}

	c := goredis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return NewStore(c), nil
}

// NewStore wraps an existing client
func NewStore(client *goredis.Client) *Store {
	return &Store{client: client, now: time.Now}
}

// Close releases the client
func (s *Store) Close() error {
	return s.client.Close()
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageFailure, err)
}

// EnsureUser creates the user record unless one already exists
func (s *Store) EnsureUser(ctx context.Context, user domain.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	data, err := encodeUser(user)
	if err != nil {
		return storageError("ensure user", err)
	}

	field := strconv.FormatInt(user.UserID, 10)
	if err := s.client.HSetNX(ctx, usersKey, field, data).Err(); err != nil {
		return storageError("ensure user", err)
	}
	return nil
}

// GetUser returns the user record or domain.ErrNotFound
func (s *Store) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	data, err := s.client.HGet(ctx, usersKey, strconv.FormatInt(userID, 10)).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, storageError("get user", err)
	}

	u, err := decodeUser(userID, data)
	if err != nil {
		return nil, storageError("get user", err)
	}
	return u, nil
}

// CountUsers returns the number of known users
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	n, err := s.client.HLen(ctx, usersKey).Result()
	if err != nil {
		return 0, storageError("count users", err)
	}
	return int(n), nil
}

// AddChannel adds a required channel, domain.ErrDuplicateChannel if present
func (s *Store) AddChannel(ctx context.Context, handle string) error {
	added, err := s.client.SAdd(ctx, channelsKey, handle).Result()
	if err != nil {
		return storageError("add channel", err)
	}
	if added == 0 {
		return domain.ErrDuplicateChannel
	}
	return nil
}

// RemoveChannel removes a required channel, domain.ErrNotFound if absent
func (s *Store) RemoveChannel(ctx context.Context, handle string) error {
	removed, err := s.client.SRem(ctx, channelsKey, handle).Result()
	if err != nil {
		return storageError("remove channel", err)
	}
	if removed == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListChannels returns channels sorted by handle; Redis sets are unordered
func (s *Store) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	handles, err := s.client.SMembers(ctx, channelsKey).Result()
	if err != nil {
		return nil, storageError("list channels", err)
	}
	sort.Strings(handles)

	var channels []domain.Channel
	for _, h := range handles {
		channels = append(channels, domain.Channel{Handle: h})
	}
	return channels, nil
}

// AddMedia stores a new entry, domain.ErrDuplicateCode if the code is taken
func (s *Store) AddMedia(ctx context.Context, entry domain.MediaEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	data, err := encodeMedia(entry)
	if err != nil {
		return storageError("add media", err)
	}

	ok, err := s.client.HSetNX(ctx, mediaKey, entry.Code, data).Result()
	if err != nil {
		return storageError("add media", err)
	}
	if !ok {
		return domain.ErrDuplicateCode
	}
	return nil
}

// GetMedia returns the entry for code or domain.ErrNotFound
func (s *Store) GetMedia(ctx context.Context, code string) (*domain.MediaEntry, error) {
	data, err := s.client.HGet(ctx, mediaKey, code).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, storageError("get media", err)
	}

	e, err := decodeMedia(code, data)
	if err != nil {
		return nil, storageError("get media", err)
	}
	return e, nil
}

// CountMedia returns the number of stored entries
func (s *Store) CountMedia(ctx context.Context) (int, error) {
	n, err := s.client.HLen(ctx, mediaKey).Result()
	if err != nil {
		return 0, storageError("count media", err)
	}
	return int(n), nil
}

func encodeUser(u domain.User) (string, error) {
	data, err := json.Marshal(userRecord{Role: u.Role, CreatedAt: u.CreatedAt})
	return string(data), err
}

func decodeUser(userID int64, data string) (*domain.User, error) {
	var rec userRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, err
	}
	return &domain.User{UserID: userID, Role: rec.Role, CreatedAt: rec.CreatedAt}, nil
}

func encodeMedia(e domain.MediaEntry) (string, error) {
	data, err := json.Marshal(mediaRecord{Kind: e.Media.Kind, FileID: e.Media.FileID, CreatedAt: e.CreatedAt})
	return string(data), err
}

func decodeMedia(code, data string) (*domain.MediaEntry, error) {
	var rec mediaRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, err
	}
	return &domain.MediaEntry{
		Code:      code,
		Media:     domain.MediaRef{Kind: rec.Kind, FileID: rec.FileID},
		CreatedAt: rec.CreatedAt,
	}, nil
}
