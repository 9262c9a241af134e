package domain

import (
	"context"

	"github.com/questx-lab/chime-integration/internal/model"
)

type HealthDomain interface {
	Check(context.Context, *model.HealthRequest) (*model.HealthResponse, error)
}

type healthDomain struct{}

func NewHealthDomain() *healthDomain {
	return &healthDomain{}
}

// Check only reports that the process serves requests. Chime is not probed.
func (d *healthDomain) Check(context.Context, *model.HealthRequest) (*model.HealthResponse, error) {
	return &model.HealthResponse{Status: "ok"}, nil
}
