package battler

import (
	"context"
	"log"

	"github.com/KirkDiggler/battler-opacity/internal/entities"
	apperr "github.com/KirkDiggler/battler-opacity/internal/errors"
	"github.com/KirkDiggler/battler-opacity/internal/repositories/records"
	"github.com/KirkDiggler/battler-opacity/internal/uuid"
)

// ActorInput names the records that make up a party member.
// A zero entry in WeaponIDs or ArmorIDs is an empty slot.
type ActorInput struct {
	ActorID   int
	ClassID   int
	WeaponIDs []int
	ArmorIDs  []int
	StateIDs  []int
}

// EnemyInput names the records that make up an enemy
type EnemyInput struct {
	EnemyID  int
	StateIDs []int
}

// Service builds battlers from stored trait records
type Service interface {
	LoadActor(ctx context.Context, input *ActorInput) (*entities.Battler, error)
	LoadEnemy(ctx context.Context, input *EnemyInput) (*entities.Battler, error)

	// AddState loads a state record and applies it to the battler
	AddState(ctx context.Context, b *entities.Battler, stateID int) error
	RemoveState(b *entities.Battler, stateID int)
}

// ServiceConfig holds dependencies for the battler service
type ServiceConfig struct {
	Repository    records.Repository
	UUIDGenerator uuid.Generator
}

type service struct {
	repository    records.Repository
	uuidGenerator uuid.Generator
}

// NewService creates a new battler service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("record repository is required")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &service{
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

func (s *service) LoadActor(ctx context.Context, input *ActorInput) (*entities.Battler, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("actor input cannot be nil")
	}

	base, err := s.repository.Get(ctx, entities.RecordKindActor, input.ActorID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load actor %d", input.ActorID)
	}

	var class *entities.Record
	if input.ClassID != 0 {
		class, err = s.repository.Get(ctx, entities.RecordKindClass, input.ClassID)
		if err != nil {
			return nil, apperr.Wrapf(err, "failed to load class %d", input.ClassID)
		}
	}

	weapons, err := s.loadSlots(ctx, entities.RecordKindWeapon, input.WeaponIDs)
	if err != nil {
		return nil, err
	}
	armors, err := s.loadSlots(ctx, entities.RecordKindArmor, input.ArmorIDs)
	if err != nil {
		return nil, err
	}

	actor := entities.NewActor(s.uuidGenerator.New(), base, class, append(weapons, armors...))
	if err := s.addStates(ctx, actor, input.StateIDs); err != nil {
		return nil, err
	}

	log.Printf("Loaded actor %s as battler %s (%d trait records)", base.Name, actor.ID, len(actor.TraitRecords()))
	return actor, nil
}

func (s *service) LoadEnemy(ctx context.Context, input *EnemyInput) (*entities.Battler, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("enemy input cannot be nil")
	}

	base, err := s.repository.Get(ctx, entities.RecordKindEnemy, input.EnemyID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load enemy %d", input.EnemyID)
	}

	enemy := entities.NewEnemy(s.uuidGenerator.New(), base)
	if err := s.addStates(ctx, enemy, input.StateIDs); err != nil {
		return nil, err
	}

	log.Printf("Loaded enemy %s as battler %s", base.Name, enemy.ID)
	return enemy, nil
}

func (s *service) AddState(ctx context.Context, b *entities.Battler, stateID int) error {
	if b == nil {
		return apperr.InvalidArgument("battler cannot be nil")
	}

	state, err := s.repository.Get(ctx, entities.RecordKindState, stateID)
	if err != nil {
		return apperr.Wrapf(err, "failed to load state %d", stateID)
	}

	b.AddState(state)
	return nil
}

func (s *service) RemoveState(b *entities.Battler, stateID int) {
	if b == nil {
		return
	}
	b.RemoveState(stateID)
}

// loadSlots resolves equipment IDs, keeping zero IDs as empty slots
func (s *service) loadSlots(ctx context.Context, kind entities.RecordKind, ids []int) ([]*entities.Record, error) {
	filled := make([]int, 0, len(ids))
	for _, id := range ids {
		if id != 0 {
			filled = append(filled, id)
		}
	}
	if len(filled) == 0 {
		return make([]*entities.Record, len(ids)), nil
	}

	loaded, err := s.repository.GetMany(ctx, kind, filled)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load %s slots", kind)
	}

	slots := make([]*entities.Record, len(ids))
	next := 0
	for i, id := range ids {
		if id == 0 {
			continue
		}
		slots[i] = loaded[next]
		next++
	}
	return slots, nil
}

func (s *service) addStates(ctx context.Context, b *entities.Battler, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	states, err := s.repository.GetMany(ctx, entities.RecordKindState, ids)
	if err != nil {
		return apperr.Wrapf(err, "failed to load states for %s", b.Base.Name)
	}
	for _, st := range states {
		b.AddState(st)
	}
	return nil
}
