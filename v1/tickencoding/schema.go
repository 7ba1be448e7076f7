package tickencoding

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// SchemaName is the definition name every encoded type is registered under.
const SchemaName = "TickEncoded"

var encodedIface = reflect.TypeOf((*encodedType)(nil)).Elem()

// StringSchema returns the schema of a plain Go string, which is the wire
// shape of every encoded value.
func StringSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string"}
}

// Describe registers the TickEncoded definition in defs and returns a
// reference to it. Calling it repeatedly is harmless.
func Describe(defs jsonschema.Definitions) *jsonschema.Schema {
	defs[SchemaName] = StringSchema()
	return &jsonschema.Schema{Ref: "#/$defs/" + SchemaName}
}

// Document returns a standalone schema whose root is a TickEncoded string.
func Document() *jsonschema.Schema {
	defs := jsonschema.Definitions{}
	root := Describe(defs)
	root.Version = jsonschema.Version
	root.Definitions = defs
	return root
}

// Namer returns a jsonschema.Reflector namer that files Bytes and every
// Encoded instantiation under SchemaName and delegates all other types to
// next. next may be nil, in which case the reflector's default naming
// applies.
func Namer(next func(reflect.Type) string) func(reflect.Type) string {
	return func(t reflect.Type) string {
		if IsEncodedType(t) {
			return SchemaName
		}
		if next != nil {
			return next(t)
		}
		return ""
	}
}

// NewReflector returns a jsonschema.Reflector configured with Namer.
func NewReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		Namer: Namer(nil),
	}
}

// IsEncodedType reports whether values of t serialize as TickEncoded text.
func IsEncodedType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	return t.Implements(encodedIface) || reflect.PointerTo(t).Implements(encodedIface)
}
