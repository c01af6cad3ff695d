package in

import (
	"context"

	"flatpick/internal/modules/launcher/dto"
	launcherin "flatpick/internal/modules/launcher/port/in"
)

type CLIHandler struct {
	usecase launcherin.Usecase
}

func NewCLIHandler(usecase launcherin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) (dto.ListOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Run(ctx context.Context) (dto.RunResult, error) {
	return h.usecase.Run(ctx)
}
