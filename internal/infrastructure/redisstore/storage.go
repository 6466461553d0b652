// Package redisstore adapta go-redis al contrato fiber.Storage para que las
// sesiones sobrevivan reinicios del proceso cuando hay Redis configurado.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cafetero:sess:"

// Storage implementa fiber.Storage sobre un cliente Redis.
type Storage struct {
	client *redis.Client
}

// New conecta a Redis usando una URL (redis://...) y verifica con PING.
func New(url string) (*Storage, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Storage{client: client}, nil
}

// Get retorna nil sin error cuando la llave no existe, como exige fiber.Storage.
func (s *Storage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), keyPrefix+key, val, exp).Err()
}

func (s *Storage) Delete(key string) error {
	return s.client.Del(context.Background(), keyPrefix+key).Err()
}

// Reset elimina solo las llaves del prefijo de sesión, no toda la base.
func (s *Storage) Reset() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *Storage) Close() error {
	return s.client.Close()
}
