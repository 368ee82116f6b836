// Package schema holds the authoritative JSON Schemas for the payloads the
// console sends to the establishment API and validates payloads against them.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/gosuda/snet/internal/domain"
)

// Version is the schema version payloads are validated against.
const Version = "v1"

// Kind names a payload schema.
type Kind string

const (
	KindEstablishment Kind = "establishment"
	KindStore         Kind = "store"
)

//go:embed v1/*.json
var files embed.FS

var (
	compileOnce sync.Once
	compiled    map[Kind]*gojsonschema.Schema
	compileErr  error
)

// ValidationError lists the schema violations of a payload. It unwraps to
// domain.ErrInvalidInput.
type ValidationError struct {
	Kind       Kind
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema: invalid %s payload (%s): %s", e.Kind, Version, strings.Join(e.Violations, "; "))
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInput
}

// Load returns the raw schema document for kind.
func Load(kind Kind) ([]byte, error) {
	b, err := files.ReadFile(Version + "/" + string(kind) + ".json")
	if err != nil {
		return nil, fmt.Errorf("schema.Load: %q: %w", kind, err)
	}
	return b, nil
}

func compile() {
	compiled = make(map[Kind]*gojsonschema.Schema, 2)
	for _, kind := range []Kind{KindEstablishment, KindStore} {
		raw, err := Load(kind)
		if err != nil {
			compileErr = err
			return
		}
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			compileErr = fmt.Errorf("schema.compile: %q: %w", kind, err)
			return
		}
		compiled[kind] = s
	}
}

// Validate checks the JSON encoding of payload against the schema of kind.
// Violations are reported as *ValidationError.
func Validate(kind Kind, payload any) error {
	compileOnce.Do(compile)
	if compileErr != nil {
		return compileErr
	}

	s, ok := compiled[kind]
	if !ok {
		return fmt.Errorf("schema.Validate: unknown kind %q", kind)
	}

	doc, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("schema.Validate: marshal: %w: %w", domain.ErrInvalidInput, err)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("schema.Validate: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		violations[i] = desc.String()
	}
	return &ValidationError{Kind: kind, Violations: violations}
}

// ValidateEstablishment validates an establishment write payload.
func ValidateEstablishment(in domain.EstablishmentInput) error {
	return Validate(KindEstablishment, in)
}

// ValidateStore validates a store write payload.
func ValidateStore(in domain.StoreInput) error {
	return Validate(KindStore, in)
}
