package database

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mehrsalabs/leadbot/internal/entity"
)

const leadKeyPrefix = "lead:"

// NewRedisClient builds the client and proves the connection with a ping.
func NewRedisClient(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// RedisLeadStateRepository stores one hash per identity. HSetNX keeps
// registration_date immutable, conditional HSet gives merge-on-write.
type RedisLeadStateRepository struct {
	Client *redis.Client
}

func NewRedisLeadStateRepository(client *redis.Client) *RedisLeadStateRepository {
	return &RedisLeadStateRepository{Client: client}
}

func leadKey(identity string) string {
	return leadKeyPrefix + identity
}

func (r *RedisLeadStateRepository) Load(ctx context.Context, identity string) (*entity.LeadState, error) {
	fields, err := r.Client.HGetAll(ctx, leadKey(identity)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return entity.DefaultLeadState(identity), nil
	}

	state := &entity.LeadState{
		Identity: identity,
		Language: fields["lang"],
		Name:     fields["name"],
		Phone:    fields["phone"],
		Step:     entity.Step(fields["step"]),
	}
	if ts, err := strconv.ParseInt(fields["registration_date"], 10, 64); err == nil {
		state.RegisteredAt = time.Unix(ts, 0)
	}
	return state, nil
}

func (r *RedisLeadStateRepository) Save(ctx context.Context, identity, language, name, phone string, step entity.Step) error {
	key := leadKey(identity)

	pipe := r.Client.TxPipeline()
	pipe.HSetNX(ctx, key, "registration_date", time.Now().Unix())
	if language != "" {
		pipe.HSet(ctx, key, "lang", language)
	}
	if name != "" {
		pipe.HSet(ctx, key, "name", name)
	}
	if phone != "" {
		pipe.HSet(ctx, key, "phone", phone)
	}
	pipe.HSet(ctx, key, "step", string(step))

	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisLeadStateRepository) Reset(ctx context.Context, identity string) error {
	key := leadKey(identity)

	pipe := r.Client.TxPipeline()
	pipe.HSetNX(ctx, key, "registration_date", time.Now().Unix())
	pipe.HDel(ctx, key, "lang", "name", "phone")
	pipe.HSet(ctx, key, "step", string(entity.StepAwaitingLangSelection))

	_, err := pipe.Exec(ctx)
	return err
}
