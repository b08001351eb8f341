package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/yungbote/exocatalog/internal/data/repos"
	"github.com/yungbote/exocatalog/internal/domain/catalog"
	"github.com/yungbote/exocatalog/internal/ingestion/csvsource"
	"github.com/yungbote/exocatalog/internal/observability"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

// RecordSource yields records in source order and io.EOF at the end. An error
// wrapping csvsource.ErrMalformedRow fails that row only.
type RecordSource interface {
	Next() (csvsource.Record, error)
}

// Observer is called once per processed row, in order.
type Observer func(RowOutcome)

type Service interface {
	Ingest(ctx context.Context, src RecordSource) ([]RowOutcome, error)
}

type service struct {
	log        *logger.Logger
	hosts      repos.HostRepo
	references repos.SystemParameterReferenceRepo
	discovery  repos.DiscoveryRepo
	systems    repos.PlanetarySystemRepo
	planets    repos.PlanetRepo
	metrics    *observability.Metrics
	observers  []Observer
}

type Option func(*service)

func WithObserver(o Observer) Option {
	return func(s *service) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

func WithMetrics(m *observability.Metrics) Option {
	return func(s *service) { s.metrics = m }
}

func NewService(
	log *logger.Logger,
	hostRepo repos.HostRepo,
	referenceRepo repos.SystemParameterReferenceRepo,
	discoveryRepo repos.DiscoveryRepo,
	systemRepo repos.PlanetarySystemRepo,
	planetRepo repos.PlanetRepo,
	opts ...Option,
) Service {
	s := &service{
		log:        log.With("service", "IngestionPipeline"),
		hosts:      hostRepo,
		references: referenceRepo,
		discovery:  discoveryRepo,
		systems:    systemRepo,
		planets:    planetRepo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ingest processes every record of src. Row failures are reported in the
// outcomes; only a source read failure or cancellation stops the run.
func (s *service) Ingest(ctx context.Context, src RecordSource) ([]RowOutcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var outcomes []RowOutcome
	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		var out RowOutcome
		switch {
		case errors.Is(err, csvsource.ErrMalformedRow):
			out = RowOutcome{Row: row, PlanetName: "Unknown", Err: err}
		case err != nil:
			return outcomes, fmt.Errorf("read row %d: %w", row, err)
		default:
			out = s.ingestRecord(dbctx.Context{Ctx: ctx}, row, rec)
		}
		s.emit(out)
		outcomes = append(outcomes, out)
	}
	s.log.Info("Ingestion finished", "rows", len(outcomes))
	return outcomes, nil
}

func (s *service) emit(out RowOutcome) {
	if out.Err != nil {
		s.log.Error("Row import failed", "row", out.Row, "planet", out.PlanetName, "error", out.Err)
	}
	for _, w := range out.Warnings {
		s.log.Warn(w, "row", out.Row)
	}
	s.metrics.ObserveIngestRow(out.Failed(), out.Created(), len(out.Warnings), time.Duration(out.Duration*float64(time.Second)))
	for _, o := range s.observers {
		o(out)
	}
}

// ingestRecord applies one row in dependency order. Steps already applied stay
// committed when a later step fails.
func (s *service) ingestRecord(dbc dbctx.Context, row int, rec csvsource.Record) RowOutcome {
	start := time.Now()
	p := parseRow(rec)
	out := RowOutcome{Row: row, PlanetName: p.planetName}

	fail := func(step string, err error) RowOutcome {
		out.Err = fmt.Errorf("%s: %w", step, err)
		out.Duration = time.Since(start).Seconds()
		return out
	}

	host, created, err := s.hosts.FindOrCreate(dbc, p.hostKey, p.hostDefaults)
	if err != nil {
		return fail("host", err)
	}
	out.HostCreated = created

	ref, created, err := s.references.FindOrCreate(dbc, p.refKey, p.refDefaults)
	if err != nil {
		return fail("system parameter reference", err)
	}
	out.ReferenceCreated = created

	disc, created, err := s.discovery.FindOrCreate(dbc, p.discoveryKey, p.discoveryDefaults)
	if err != nil {
		return fail("discovery", err)
	}
	out.DiscoveryCreated = created
	if !created {
		out.Warnings = append(out.Warnings, "Discovery already exists: "+disc.String())
	}

	refID := ref.ID
	_, created, err = s.systems.FindOrCreateThenRefresh(dbc, host.ID, &refID)
	if err != nil {
		return fail("planetary system", err)
	}
	out.SystemCreated = created

	key := catalog.PlanetKey{Name: p.planetKeyName, HostID: host.ID, DiscoveryID: disc.ID}
	_, created, err = s.planets.FindOrCreate(dbc, key, p.planetDefaults)
	if err != nil {
		return fail("planet", err)
	}
	out.PlanetCreated = created

	out.Duration = time.Since(start).Seconds()
	return out
}
