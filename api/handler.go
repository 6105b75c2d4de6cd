package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/util"
)

type SchedulerHandler interface {
	FirstInFirstOut(ctx *fiber.Ctx) error
	LastInFirstOut(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *zap.SugaredLogger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *zap.SugaredLogger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

// parseRequest decodes and validates the request body. A nil process list and
// any precondition violation come back as one error for the 400 path.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, []core.Process, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return nil, nil, err
	}
	processes := request.ToProcesses()
	if err := util.ValidateProcesses(processes); err != nil {
		return nil, nil, err
	}
	return &request, processes, nil
}

// timeQuantum resolves the effective round robin quantum: the request value
// when set, the configured default otherwise.
func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequest) (int, error) {
	timeQuantum := request.TimeQuantum
	if timeQuantum == 0 {
		timeQuantum = s.config.RoundRobinTimeQuantum
	}
	if err := util.ValidateQuantum(timeQuantum); err != nil {
		return 0, err
	}
	return timeQuantum, nil
}

func (s *SchedulerHandlerImpl) badRequest(ctx *fiber.Ctx, runId string, err error) error {
	s.logger.Warnw("rejecting schedule request", "run_id", runId, "error", err)
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func (s *SchedulerHandlerImpl) FirstInFirstOut(ctx *fiber.Ctx) error {
	runId := uuid.NewString()
	_, processes, err := s.parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx, runId, err)
	}
	response := schedulers.RunFirstInFirstOut(processes)
	s.logger.Infow("scheduled", "run_id", runId, "algorithm", response.Algorithm, "processes", len(processes))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) LastInFirstOut(ctx *fiber.Ctx) error {
	runId := uuid.NewString()
	_, processes, err := s.parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx, runId, err)
	}
	response := schedulers.RunLastInFirstOut(processes)
	s.logger.Infow("scheduled", "run_id", runId, "algorithm", response.Algorithm, "processes", len(processes))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	runId := uuid.NewString()
	request, processes, err := s.parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx, runId, err)
	}
	timeQuantum, err := s.timeQuantum(request)
	if err != nil {
		return s.badRequest(ctx, runId, err)
	}
	response := schedulers.RunRoundRobin(processes, timeQuantum)
	s.logger.Infow("scheduled", "run_id", runId, "algorithm", response.Algorithm,
		"processes", len(processes), "time_quantum", timeQuantum)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	runId := uuid.NewString()
	request, processes, err := s.parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx, runId, err)
	}
	timeQuantum, err := s.timeQuantum(request)
	if err != nil {
		return s.badRequest(ctx, runId, err)
	}
	all := []responses.ScheduleResponse{
		schedulers.RunFirstInFirstOut(processes),
		schedulers.RunLastInFirstOut(processes),
		schedulers.RunRoundRobin(processes, timeQuantum),
	}
	s.logger.Infow("scheduled all algorithms", "run_id", runId,
		"processes", len(processes), "time_quantum", timeQuantum)
	return ctx.JSON(all)
}

var _ SchedulerHandler = (*SchedulerHandlerImpl)(nil)
