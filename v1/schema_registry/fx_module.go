package schema_registry

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/tickcodec/v1/logger"
)

// FXModule is an fx.Module that provides the Schema Registry client and a
// Publisher built on top of it.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    schema_registry.FXModule,
//	    fx.Provide(
//	        func() schema_registry.Config {
//	            return schema_registry.Config{URL: os.Getenv("SCHEMA_REGISTRY_URL")}
//	        },
//	        func() schema_registry.PublisherConfig {
//	            return schema_registry.PublisherConfig{CheckCompatibility: true}
//	        },
//	    ),
//	    fx.Invoke(func(lc fx.Lifecycle, p *schema_registry.Publisher) {
//	        lc.Append(fx.StartHook(func(ctx context.Context) error {
//	            _, err := p.Publish(ctx, map[string]interface{}{"artifact-value": &Artifact{}})
//	            return err
//	        }))
//	    }),
//	)
var FXModule = fx.Module("schema_registry",
	fx.Provide(
		NewClientWithDI,
		NewPublisherWithDI,
	),
	fx.Invoke(RegisterSchemaRegistryLifecycle),
)

// SchemaRegistryParams groups the dependencies needed to create a Schema Registry client
type SchemaRegistryParams struct {
	fx.In

	Config Config
}

// NewClientWithDI creates a new Schema Registry client using dependency injection.
func NewClientWithDI(params SchemaRegistryParams) (Registry, error) {
	return NewClient(params.Config)
}

// PublisherParams groups the dependencies of NewPublisherWithDI.
type PublisherParams struct {
	fx.In

	Registry Registry
	Config   PublisherConfig `optional:"true"`
	Logger   logger.Logger   `optional:"true"`
}

// NewPublisherWithDI creates a Publisher using dependency injection.
func NewPublisherWithDI(params PublisherParams) *Publisher {
	return NewPublisher(params.Registry, params.Logger, params.Config)
}

// SchemaRegistryLifecycleParams groups the dependencies needed for Schema Registry lifecycle management
type SchemaRegistryLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Registry  Registry
	Logger    logger.Logger `optional:"true"`
}

// RegisterSchemaRegistryLifecycle logs when the registry client becomes
// available and when it is released. The HTTP client needs no cleanup.
func RegisterSchemaRegistryLifecycle(params SchemaRegistryLifecycleParams) {
	log := params.Logger
	if log == nil {
		log = logger.NewNop()
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Schema Registry client initialized", nil, nil)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Schema Registry client shutdown", nil, nil)
			return nil
		},
	})
}
