package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/battler-opacity/internal/entities"
	apperr "github.com/KirkDiggler/battler-opacity/internal/errors"
)

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed record repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

func recordKey(kind entities.RecordKind, id int) string {
	return fmt.Sprintf("record:%s:%d", kind, id)
}

func kindKey(kind entities.RecordKind) string {
	return fmt.Sprintf("records:%s", kind)
}

func (r *redisRepo) Put(ctx context.Context, record *entities.Record) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	jsonData, err := json.Marshal(toData(record))
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to marshal record")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, recordKey(record.Kind, record.ID), string(jsonData), 0)
	pipe.SAdd(ctx, kindKey(record.Kind), strconv.Itoa(record.ID))
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to store record in Redis")
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, kind entities.RecordKind, id int) (*entities.Record, error) {
	if err := validateKey(kind, id); err != nil {
		return nil, err
	}

	jsonData, err := r.client.Get(ctx, recordKey(kind, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, newNotFoundError(kind, id)
		}
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get record from Redis")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to unmarshal record").
			WithMeta("key", recordKey(kind, id))
	}

	return toRecord(&data), nil
}

func (r *redisRepo) GetMany(ctx context.Context, kind entities.RecordKind, ids []int) ([]*entities.Record, error) {
	out := make([]*entities.Record, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			record, err := r.Get(ctx, kind, id)
			if err != nil {
				return apperr.Wrapf(err, "failed to get %s %d", kind, id)
			}
			out[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *redisRepo) ListByKind(ctx context.Context, kind entities.RecordKind) ([]*entities.Record, error) {
	if !kind.Valid() {
		return nil, apperr.InvalidArgumentf("unknown record kind %q", kind)
	}

	members, err := r.client.SMembers(ctx, kindKey(kind)).Result()
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to list records from Redis")
	}

	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			log.Printf("Skipping malformed %s ID %q in %s", kind, m, kindKey(kind))
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return r.GetMany(ctx, kind, ids)
}

func (r *redisRepo) Delete(ctx context.Context, kind entities.RecordKind, id int) error {
	if err := validateKey(kind, id); err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, recordKey(kind, id))
	pipe.SRem(ctx, kindKey(kind), strconv.Itoa(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to delete record from Redis")
	}

	if del.Val() == 0 {
		return newNotFoundError(kind, id)
	}

	return nil
}
