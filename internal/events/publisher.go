// Package events delivers completion events to downstream collaborators
// (achievements, notifications). Delivery is at-least-once via a Redis
// list; consumers own their idempotence and are never awaited by the
// completion path.
package events

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/limbo/cadence/pkg/cleanup"
	"github.com/limbo/cadence/pkg/entity"
)

const completionList = "cadence:completion_events"

type PublisherI interface {
	Publish(ctx context.Context, event entity.CompletionEvent) error
}

type RedisPublisher struct {
	client *redis.Client
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisPublisher(cfg RedisCfg) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("error while pinging redis for event publisher: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &RedisPublisher{
		client: client,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, event entity.CompletionEvent) error {
	payload, err := sonic.ConfigDefault.Marshal(event)
	if err != nil {
		return errors.New("encoding completion event error: " + err.Error())
	}
	if err := p.client.LPush(ctx, completionList, payload).Err(); err != nil {
		return errors.New("pushing completion event error: " + err.Error())
	}
	return nil
}
