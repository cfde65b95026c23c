package generator

//go:generate mockgen -destination=mock/mock_service.go -package=mockgenerator -source=service.go

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Tenvid/Frikibot/internal/clients/pokeapi"
	"github.com/Tenvid/Frikibot/internal/clock"
	"github.com/Tenvid/Frikibot/internal/dice"
	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
	"github.com/Tenvid/Frikibot/internal/repositories/pokemons"
	"github.com/Tenvid/Frikibot/internal/repositories/trainers"
	"github.com/Tenvid/Frikibot/internal/uuid"
)

const (
	// DefaultMaxIndex is the highest national dex number requested
	DefaultMaxIndex = 1010
	// DefaultNatureCount is how many natures PokeAPI serves, ids start at 1
	DefaultNatureCount = 25
)

// State is a step of a generation
type State string

const (
	StateStart               State = "start"
	StateFetchSpecies        State = "fetch_species"
	StateSelectVariety       State = "select_variety"
	StateFetchVarietyDetails State = "fetch_variety_details"
	StateFetchNature         State = "fetch_nature"
	StateBuild               State = "build"
	StatePersist             State = "persist"
	StateFormat              State = "format"
	StateDone                State = "done"

	StateFetchFailed State = "fetch_failed"
	StateBuildFailed State = "build_failed"
)

// IsFailure reports whether the state is a terminal failure
func (s State) IsFailure() bool {
	return s == StateFetchFailed || s == StateBuildFailed
}

// Service generates random pokemon for trainers
type Service interface {
	// Generate runs one generation. The returned error is only set for invalid input;
	// generation failures are reported through Result.
	Generate(ctx context.Context, input *GenerateInput) (*Result, error)

	// ListByOwner returns the pokemon a trainer has generated, oldest first
	ListByOwner(ctx context.Context, ownerID string) ([]*pokemon.Pokemon, error)
}

// GenerateInput identifies who asked for the pokemon
type GenerateInput struct {
	OwnerID   string
	OwnerName string
}

// Result is the outcome of a generation
type Result struct {
	State   State
	Reply   *Reply
	Pokemon *pokemon.Pokemon
	// Err is the failure that ended a FetchFailed or BuildFailed generation
	Err error
	// PersistErr is set when storing failed; the reply is still usable
	PersistErr error
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client        pokeapi.Client      // Required
	PokemonRepo   pokemons.Repository // Required
	TrainerRepo   trainers.Repository // Required
	Roller        dice.Roller         // Optional
	UUIDGenerator uuid.Generator      // Optional
	Clock         clock.Clock         // Optional
	Logger        *zerolog.Logger     // Optional
	MaxIndex      int                 // Optional, DefaultMaxIndex when zero
	NatureCount   int                 // Optional, DefaultNatureCount when zero
	MaxAttempts   int                 // Optional, bounds re-sampling loops
}

type service struct {
	client      pokeapi.Client
	pokemonRepo pokemons.Repository
	trainerRepo trainers.Repository
	roller      dice.Roller
	ids         uuid.Generator
	clock       clock.Clock
	corrector   *pokemon.NameCorrector
	builder     *pokemon.Builder
	logger      zerolog.Logger
	maxIndex    int
	natureCount int
}

// NewService creates a new generator service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Client == nil {
		panic("pokeapi client is required")
	}
	if cfg.PokemonRepo == nil {
		panic("pokemon repository is required")
	}
	if cfg.TrainerRepo == nil {
		panic("trainer repository is required")
	}

	svc := &service{
		client:      cfg.Client,
		pokemonRepo: cfg.PokemonRepo,
		trainerRepo: cfg.TrainerRepo,
		roller:      cfg.Roller,
		ids:         cfg.UUIDGenerator,
		clock:       cfg.Clock,
		logger:      zerolog.Nop(),
		maxIndex:    cfg.MaxIndex,
		natureCount: cfg.NatureCount,
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.ids == nil {
		svc.ids = uuid.NewGoogleUUIDGenerator()
	}
	if svc.clock == nil {
		svc.clock = clock.New()
	}
	if cfg.Logger != nil {
		svc.logger = cfg.Logger.With().Str("service", "generator").Logger()
	}
	if svc.maxIndex <= 0 {
		svc.maxIndex = DefaultMaxIndex
	}
	if svc.natureCount <= 0 {
		svc.natureCount = DefaultNatureCount
	}

	svc.corrector = pokemon.NewNameCorrector(&pokemon.NameCorrectorConfig{
		Roller:      svc.roller,
		MaxAttempts: cfg.MaxAttempts,
	})
	svc.builder = pokemon.NewBuilder(pokemon.NewSampler(&pokemon.SamplerConfig{
		Roller:        svc.roller,
		MaxStaleDraws: cfg.MaxAttempts,
	}))

	return svc
}

// generation carries the values produced while walking the states
type generation struct {
	input        *GenerateInput
	speciesIndex int
	varieties    []*pokemon.Variety
	variety      *pokemon.Variety
	corrected    *pokemon.Correction
	details      *pokemon.VarietyDetails
	nature       *pokemon.Nature
	color        pokemon.Color
	pokemon      *pokemon.Pokemon
	persistErr   error
	reply        *Reply
}

func (s *service) Generate(ctx context.Context, input *GenerateInput) (*Result, error) {
	if input == nil {
		return nil, boterr.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, boterr.InvalidArgument("owner ID is required")
	}

	logger := s.logger.With().Str("owner_id", input.OwnerID).Logger()
	gen := &generation{input: input}

	state := StateStart
	for state != StateDone {
		next, err := s.step(ctx, state, gen)
		if err != nil {
			failed := failureState(err)
			logger.Error().Err(err).
				Str("state", string(state)).
				Int("species_index", gen.speciesIndex).
				Msg("pokemon generation failed")

			return &Result{
				State: failed,
				Reply: FailureReply(input.OwnerID),
				Err:   err,
			}, nil
		}

		logger.Debug().Str("from", string(state)).Str("to", string(next)).Msg("generation step")
		state = next
	}

	logger.Info().
		Int("species_index", gen.speciesIndex).
		Str("name", gen.pokemon.Name).
		Str("color", string(gen.color)).
		Msg("pokemon generated")

	return &Result{
		State:      StateDone,
		Reply:      gen.reply,
		Pokemon:    gen.pokemon,
		PersistErr: gen.persistErr,
	}, nil
}

// step runs one state and returns the next one
func (s *service) step(ctx context.Context, state State, gen *generation) (State, error) {
	switch state {
	case StateStart:
		return StateFetchSpecies, nil

	case StateFetchSpecies:
		idx, err := dice.Between(s.roller, 1, s.maxIndex)
		if err != nil {
			return state, boterr.Wrap(err, "failed to draw species index")
		}
		gen.speciesIndex = idx

		gen.varieties, err = s.client.ListVarieties(ctx, idx)
		if err != nil {
			return state, err
		}
		return StateSelectVariety, nil

	case StateSelectVariety:
		position, err := dice.Index(s.roller, len(gen.varieties))
		if err != nil {
			return state, boterr.DataFormatf("species %d has no varieties", gen.speciesIndex)
		}

		gen.corrected, err = s.corrector.Correct(gen.varieties[position].Name, gen.varieties, position)
		if err != nil {
			return state, err
		}
		gen.variety = gen.varieties[gen.corrected.Position]
		return StateFetchVarietyDetails, nil

	case StateFetchVarietyDetails:
		details, err := s.client.GetVarietyDetails(ctx, gen.variety.URL)
		if err != nil {
			return state, err
		}
		gen.details = details
		return StateFetchNature, nil

	case StateFetchNature:
		id, err := dice.Between(s.roller, 1, s.natureCount)
		if err != nil {
			return state, boterr.Wrap(err, "failed to draw nature")
		}

		gen.nature, err = s.client.GetNature(ctx, id)
		if err != nil {
			return state, err
		}
		return StateBuild, nil

	case StateBuild:
		color, err := pokemon.RollColor(s.roller)
		if err != nil {
			return state, boterr.Wrap(err, "failed to roll color")
		}
		gen.color = color

		gen.pokemon, err = s.builder.Build(&pokemon.BuildInput{
			SpeciesIndex: gen.speciesIndex,
			OwnerID:      gen.input.OwnerID,
			Variety:      gen.details,
			Nature:       gen.nature,
			Color:        color,
		})
		if err != nil {
			return state, err
		}
		gen.pokemon.ID = s.ids.New()
		gen.pokemon.CreatedAt = s.clock.Now()
		return StatePersist, nil

	case StatePersist:
		gen.persistErr = s.persist(ctx, gen)
		return StateFormat, nil

	case StateFormat:
		gen.reply = FormatReply(gen.pokemon, gen.corrected.Name)
		return StateDone, nil
	}

	return state, boterr.Newf(boterr.CodeInternal, "unknown generation state %q", state)
}

// persist stores the trainer on first use and then the pokemon. Failures are logged, not returned
// to the user.
func (s *service) persist(ctx context.Context, gen *generation) error {
	if err := s.ensureTrainer(ctx, gen.input); err != nil {
		s.logger.Error().Err(err).Str("owner_id", gen.input.OwnerID).Msg("failed to store trainer")
		return err
	}

	if err := s.pokemonRepo.Create(ctx, gen.pokemon); err != nil {
		s.logger.Error().Err(err).Str("owner_id", gen.input.OwnerID).Msg("failed to store pokemon")
		return boterr.Store(err, "failed to store pokemon")
	}

	return nil
}

func (s *service) ensureTrainer(ctx context.Context, input *GenerateInput) error {
	_, err := s.trainerRepo.Get(ctx, input.OwnerID)
	if err == nil {
		return nil
	}
	if !boterr.IsNotFound(err) {
		return boterr.Store(err, "failed to look up trainer")
	}

	err = s.trainerRepo.Create(ctx, &pokemon.Trainer{
		ID:      input.OwnerID,
		Name:    input.OwnerName,
		Enabled: true,
	})
	if err != nil && !boterr.Is(err, boterr.CodeAlreadyExists) {
		return boterr.Store(err, "failed to create trainer")
	}

	return nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*pokemon.Pokemon, error) {
	if ownerID == "" {
		return nil, boterr.InvalidArgument("owner ID is required")
	}

	list, err := s.pokemonRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, boterr.Wrapf(err, "failed to list pokemon for %s", ownerID)
	}

	return list, nil
}

// failureState maps provider errors to FetchFailed and everything else to BuildFailed
func failureState(err error) State {
	var providerErr *pokeapi.ProviderError
	if errors.As(err, &providerErr) {
		return StateFetchFailed
	}
	return StateBuildFailed
}
