package content

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of a document of the given kind.
func Schema(kind Kind) (*jsonschema.Schema, error) {
	item, err := New(kind)
	if err != nil {
		return nil, err
	}

	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return filepath.Base(t.PkgPath()) + "." + strings.ToLower(t.Name())
	}

	return reflector.Reflect(item), nil
}
