package schema_registry

import (
	"encoding/json"
	"fmt"

	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

// Generate reflects v into an indented JSON Schema document. Bytes and every
// tickencoding.Encoded field are described by the shared TickEncoded
// definition.
//
// Example:
//
//	schema, err := schema_registry.Generate(&Artifact{})
func Generate(v interface{}) ([]byte, error) {
	s := tickencoding.NewReflector().Reflect(v)

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema for %T: %w", v, err)
	}
	return data, nil
}
