package schema_registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/tickcodec/v1/logger"
)

// DefaultPublishConcurrency bounds in-flight registry requests per Publish call.
const DefaultPublishConcurrency = 4

// ErrIncompatible is returned when the registry rejects a schema change.
var ErrIncompatible = errors.New("schema registry: schema is not compatible with the latest version")

// PublisherConfig configures a Publisher.
type PublisherConfig struct {
	// CheckCompatibility asks the registry before registering. Subjects
	// that have no versions yet are always considered compatible.
	CheckCompatibility bool `yaml:"check_compatibility" envconfig:"SCHEMA_REGISTRY_CHECK_COMPATIBILITY"`

	// Concurrency is the number of subjects published in parallel.
	// Default: DefaultPublishConcurrency
	Concurrency int `yaml:"concurrency" envconfig:"SCHEMA_REGISTRY_PUBLISH_CONCURRENCY"`
}

// Publisher generates JSON Schemas for Go types and registers them.
type Publisher struct {
	registry Registry
	log      logger.Logger
	cfg      PublisherConfig
}

// NewPublisher returns a Publisher that registers schemas in registry.
// A nil log discards all output.
func NewPublisher(registry Registry, log logger.Logger, cfg PublisherConfig) *Publisher {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultPublishConcurrency
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Publisher{registry: registry, log: log, cfg: cfg}
}

// Publish generates a schema for every value in subjects and registers it
// under the corresponding subject name. It returns the registered schema IDs.
//
// The first failure cancels the remaining requests; IDs of subjects that
// were registered before the failure are still returned.
func (p *Publisher) Publish(ctx context.Context, subjects map[string]interface{}) (map[string]int, error) {
	names := make([]string, 0, len(subjects))
	for name := range subjects {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		mu  sync.Mutex
		ids = make(map[string]int, len(subjects))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)

	for _, name := range names {
		subject, value := name, subjects[name]
		g.Go(func() error {
			id, err := p.publishOne(gctx, subject, value)
			if err != nil {
				p.log.ErrorWithContext(gctx, "Failed to publish schema", err, map[string]interface{}{
					"subject": subject,
				})
				return err
			}

			mu.Lock()
			ids[subject] = id
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	return ids, err
}

func (p *Publisher) publishOne(ctx context.Context, subject string, value interface{}) (int, error) {
	schema, err := Generate(value)
	if err != nil {
		return 0, err
	}

	if p.cfg.CheckCompatibility {
		compatible, err := p.registry.CheckCompatibility(ctx, subject, string(schema), SchemaTypeJSON)
		switch {
		case errors.Is(err, ErrSubjectNotFound):
			p.log.DebugWithContext(ctx, "Subject has no versions yet, skipping compatibility check", nil, map[string]interface{}{
				"subject": subject,
			})
		case err != nil:
			return 0, err
		case !compatible:
			return 0, fmt.Errorf("%w: subject %q", ErrIncompatible, subject)
		}
	}

	id, err := p.registry.RegisterSchema(ctx, subject, string(schema), SchemaTypeJSON)
	if err != nil {
		return 0, err
	}

	p.log.InfoWithContext(ctx, "Schema published", nil, map[string]interface{}{
		"subject": subject,
		"id":      id,
		"type":    fmt.Sprintf("%T", value),
	})
	return id, nil
}
