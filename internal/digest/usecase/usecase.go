package usecase

import (
	"context"

	"github.com/shandysiswandi/godigest/internal/digest/entity"
	"github.com/shandysiswandi/godigest/internal/pkg/hash"
	"github.com/shandysiswandi/godigest/internal/pkg/instrument"
	"github.com/shandysiswandi/godigest/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// SaltGenerator produces a fresh random salt string on every call.
type SaltGenerator interface {
	Generate() string
}

type Usecase struct {
	hashers   map[entity.Algorithm]hash.Hash
	salt      SaltGenerator
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	Hashers    map[entity.Algorithm]hash.Hash
	Salt       SaltGenerator
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		hashers:   dep.Hashers,
		salt:      dep.Salt,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("digest.usecase").Start(ctx, name)
}
