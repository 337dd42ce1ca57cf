package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/battler-opacity/internal/config"
	"github.com/KirkDiggler/battler-opacity/internal/entities"
	"github.com/KirkDiggler/battler-opacity/internal/opacity"
	"github.com/KirkDiggler/battler-opacity/internal/render"
	"github.com/KirkDiggler/battler-opacity/internal/repositories/records"
	"github.com/KirkDiggler/battler-opacity/internal/services"
	"github.com/KirkDiggler/battler-opacity/internal/services/battler"
)

type options struct {
	seedFile string
	enemyID  int
	actorID  int
	classID  int
	weapons  string
	armors   string
	states   string
	hidden   bool
	effect   string
	ticks    int
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := options{}
	flag.StringVar(&opts.seedFile, "seed", cfg.Records.SeedFile, "JSON file of records to import first")
	flag.IntVar(&opts.enemyID, "enemy", 0, "enemy ID to preview")
	flag.IntVar(&opts.actorID, "actor", 0, "actor ID to preview")
	flag.IntVar(&opts.classID, "class", 0, "class ID for the actor")
	flag.StringVar(&opts.weapons, "weapons", "", "comma separated weapon IDs per slot (0 = empty)")
	flag.StringVar(&opts.armors, "armors", "", "comma separated armor IDs per slot (0 = empty)")
	flag.StringVar(&opts.states, "states", "", "comma separated state IDs")
	flag.BoolVar(&opts.hidden, "hidden", false, "enemy has not appeared yet")
	flag.StringVar(&opts.effect, "effect", "", "sprite effect to start before ticking (appear, disappear, whiten, blink, collapse)")
	flag.IntVar(&opts.ticks, "ticks", 1, "frames to run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, closeRepo := openRepository(ctx, cfg)
	defer closeRepo()

	if err := run(ctx, repo, opts, os.Stdout); err != nil {
		log.Fatalf("Preview failed: %v", err)
	}
}

// openRepository connects to Redis when configured, falling back to memory
func openRepository(ctx context.Context, cfg *config.Config) (records.Repository, func()) {
	noop := func() {}
	if !cfg.Redis.UseRedis() {
		log.Println("No REDIS_URL found, using in-memory records")
		return records.NewInMemory(), noop
	}

	redisOpts, err := cfg.Redis.Options()
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory records")
		return records.NewInMemory(), noop
	}

	client := redis.NewClient(redisOpts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		log.Printf("Failed to connect to Redis: %v", pingErr)
		log.Println("Falling back to in-memory records")
		_ = client.Close()
		return records.NewInMemory(), noop
	}

	log.Printf("Using Redis records at %s", redisOpts.Addr)
	return records.NewRedis(client), func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Failed to close Redis connection: %v", closeErr)
		}
	}
}

func run(ctx context.Context, repo records.Repository, opts options, out io.Writer) error {
	if opts.seedFile != "" {
		f, err := os.Open(opts.seedFile)
		if err != nil {
			return fmt.Errorf("failed to open seed file: %w", err)
		}
		_, err = records.Import(ctx, repo, f)
		_ = f.Close()
		if err != nil {
			return err
		}
	}

	provider := services.NewProvider(&services.ProviderConfig{RecordRepository: repo})

	b, err := loadBattler(ctx, provider.BattlerService, opts)
	if err != nil {
		return err
	}

	sprite := render.NewSprite(b, opts.hidden)
	if opts.effect != "" {
		sprite.StartEffect(render.EffectType(opts.effect))
	}

	driver := render.NewDriver()
	driver.AfterVisibility(render.ApplyOpacity)
	for i := 0; i < max(opts.ticks, 1); i++ {
		driver.Tick(sprite)
	}

	printReport(out, b, sprite)
	return nil
}

func loadBattler(ctx context.Context, svc battler.Service, opts options) (*entities.Battler, error) {
	states, err := parseIDs(opts.states)
	if err != nil {
		return nil, fmt.Errorf("invalid -states: %w", err)
	}

	if opts.enemyID != 0 {
		return svc.LoadEnemy(ctx, &battler.EnemyInput{EnemyID: opts.enemyID, StateIDs: states})
	}
	if opts.actorID == 0 {
		return nil, fmt.Errorf("one of -enemy or -actor is required")
	}

	weapons, err := parseIDs(opts.weapons)
	if err != nil {
		return nil, fmt.Errorf("invalid -weapons: %w", err)
	}
	armors, err := parseIDs(opts.armors)
	if err != nil {
		return nil, fmt.Errorf("invalid -armors: %w", err)
	}

	return svc.LoadActor(ctx, &battler.ActorInput{
		ActorID:   opts.actorID,
		ClassID:   opts.classID,
		WeaponIDs: weapons,
		ArmorIDs:  armors,
		StateIDs:  states,
	})
}

func parseIDs(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printReport(out io.Writer, b *entities.Battler, sprite *render.Sprite) {
	fmt.Fprintf(out, "Battler: %s (%s)\n", b.Base.Name, b.Type)
	for _, rec := range b.TraitRecords() {
		fmt.Fprintf(out, "  %-32s %6.1f\n", rec, opacity.ReadTagValue(rec))
	}
	fmt.Fprintf(out, "Effect: %q (%d ticks left)\n", sprite.EffectType, sprite.EffectDuration)
	fmt.Fprintf(out, "Visible: %t\n", sprite.Visible)
	fmt.Fprintf(out, "Opacity: %d\n", sprite.Opacity)
}
