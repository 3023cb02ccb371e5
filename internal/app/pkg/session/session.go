// Package session keeps the state of one diagnosis conversation in Redis so
// a chat client does not have to resend everything it was told.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "triage:session:"

// Diagnosis is what the server remembers between categorize calls.
type Diagnosis struct {
	Descriptions       []string  `json:"descriptions"`
	RejectedCategories []string  `json:"rejected_categories"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Merge adds rejected categories not already present, ignoring case.
func (d *Diagnosis) Merge(rejected []string) {
	for _, r := range rejected {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		found := false
		for _, have := range d.RejectedCategories {
			if strings.EqualFold(have, r) {
				found = true
				break
			}
		}
		if !found {
			d.RejectedCategories = append(d.RejectedCategories, r)
		}
	}
}

// Store manages diagnosis sessions in Redis.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(host string, port int, password string, db int, ttl time.Duration) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return NewStoreWithClient(client, ttl), nil
}

func NewStoreWithClient(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

// Get returns the session, or an empty one when it does not exist or expired.
func (s *Store) Get(ctx context.Context, id string) (*Diagnosis, error) {
	val, err := s.client.Get(ctx, keyPrefix+id).Result()
	if err == redis.Nil {
		return &Diagnosis{}, nil
	}
	if err != nil {
		return nil, err
	}

	var d Diagnosis
	if err := json.Unmarshal([]byte(val), &d); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &d, nil
}

// Save writes the session and restarts its TTL.
func (s *Store) Save(ctx context.Context, id string, d *Diagnosis) error {
	d.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+id, data, s.ttl).Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
