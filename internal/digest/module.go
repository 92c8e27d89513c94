package digest

import (
	"github.com/shandysiswandi/godigest/internal/digest/entity"
	"github.com/shandysiswandi/godigest/internal/digest/inbound"
	"github.com/shandysiswandi/godigest/internal/digest/usecase"
	"github.com/shandysiswandi/godigest/internal/pkg/hash"
	"github.com/shandysiswandi/godigest/internal/pkg/instrument"
	"github.com/shandysiswandi/godigest/internal/pkg/router"
	"github.com/shandysiswandi/godigest/internal/pkg/salt"
	"github.com/shandysiswandi/godigest/internal/pkg/validator"
)

type Dependency struct {
	Router     *router.Router                 `validate:"required"`
	Instrument instrument.Instrumentation     `validate:"required"`
	Validator  validator.Validator            `validate:"required"`
	Salt       *salt.Generator                `validate:"required"`
	Hashers    map[entity.Algorithm]hash.Hash `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		Hashers:    dep.Hashers,
		Salt:       dep.Salt,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
