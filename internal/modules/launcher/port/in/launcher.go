package in

import (
	"context"

	"flatpick/internal/modules/launcher/dto"
)

type Usecase interface {
	List(ctx context.Context) (dto.ListOutput, error)
	Run(ctx context.Context) (dto.RunResult, error)
}
