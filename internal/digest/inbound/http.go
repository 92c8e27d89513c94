package inbound

import (
	"context"

	"github.com/shandysiswandi/godigest/internal/digest/usecase"
	"github.com/shandysiswandi/godigest/internal/pkg/router"
)

type uc interface {
	Compute(ctx context.Context, in usecase.ComputeInput) (*usecase.ComputeOutput, error)
	SaltGenerate(ctx context.Context) (*usecase.SaltGenerateOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/digest/compute", end.Compute)
	r.GET("/api/v1/digest/salt", end.Salt)
}
