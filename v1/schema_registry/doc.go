// Package schema_registry publishes JSON Schemas of tickcodec types to a
// Confluent-compatible Schema Registry.
//
// Documents that carry binary values as tickencoding.Bytes or
// tickencoding.Encoded fields are described with a shared "TickEncoded"
// string definition. This package reflects those Go types into JSON Schema,
// registers them with schemaType "JSON" and caches the resulting IDs.
//
// Core Features:
//   - HTTP client for Confluent Schema Registry with context support
//   - Schema registration and retrieval with caching
//   - Compatibility checking for schema evolution
//   - JSON Schema generation that understands tickencoding types
//   - Concurrent publishing of many subjects
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/tickcodec/v1/schema_registry"
//
//	registry, err := schema_registry.NewClient(schema_registry.Config{
//	    URL:     "http://localhost:8081",
//	    Timeout: 10 * time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	schema, err := schema_registry.Generate(&Artifact{})
//	id, err := registry.RegisterSchema(ctx, "artifact-value", string(schema), schema_registry.SchemaTypeJSON)
//
// Publishing Many Types:
//
//	publisher := schema_registry.NewPublisher(registry, log, schema_registry.PublisherConfig{
//	    CheckCompatibility: true,
//	})
//	ids, err := publisher.Publish(ctx, map[string]interface{}{
//	    "artifact-value": &Artifact{},
//	    "env-value":      &EnvVar{},
//	})
//
// Errors:
//
// Non-2xx responses are returned as *StatusError. Responses carrying the
// registry's "subject not found" or "version not found" codes match
// ErrSubjectNotFound with errors.Is. A failed compatibility check wraps
// ErrIncompatible.
//
// Schema Caching:
//
// The client caches schemas by ID and IDs by subject and schema to minimize
// network calls. Caches are thread-safe and maintained in-memory for the
// lifetime of the client.
package schema_registry
