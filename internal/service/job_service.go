package service

import (
	"context"
	"fmt"

	"fleetops-backend/internal/billing"
	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/logger"
	"fleetops-backend/internal/repository"
)

type jobService struct {
	jobRepo     repository.JobRepository
	clientRepo  repository.ClientRepository
	vehicleRepo repository.VehicleRepository
}

func NewJobService(
	jobRepo repository.JobRepository,
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		clientRepo:  clientRepo,
		vehicleRepo: vehicleRepo,
	}
}

func (s *jobService) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	logger.EnterMethod("jobService.CreateJob", "clientID", job.ClientID, "variant", job.Variant, "rateType", job.RateType)

	if err := s.prepareJob(ctx, job); err != nil {
		logger.ExitMethodWithError("jobService.CreateJob", err, "clientID", job.ClientID)
		return nil, err
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		logger.ExitMethodWithError("jobService.CreateJob", err, "clientID", job.ClientID)
		return nil, err
	}

	logger.ExitMethod("jobService.CreateJob", "jobID", job.ID, "total", job.TotalAmount)
	return job, nil
}

func (s *jobService) CreateJobBatch(ctx context.Context, jobs []domain.Job) ([]domain.Job, error) {
	logger.EnterMethod("jobService.CreateJobBatch", "count", len(jobs))

	if len(jobs) == 0 {
		return nil, domain.ValidationErrors{}.Add("jobs", "at least one job is required")
	}

	// Batch entry shares one client and one date across every row.
	for i := range jobs {
		if jobs[i].ClientID != jobs[0].ClientID {
			return nil, domain.ValidationErrors{}.Add(
				fmt.Sprintf("jobs[%d].client_id", i), "all jobs in a batch must share one client")
		}
		if jobs[i].JobDate != jobs[0].JobDate {
			return nil, domain.ValidationErrors{}.Add(
				fmt.Sprintf("jobs[%d].job_date", i), "all jobs in a batch must share one date")
		}
	}

	for i := range jobs {
		if err := s.prepareJob(ctx, &jobs[i]); err != nil {
			logger.ExitMethodWithError("jobService.CreateJobBatch", err, "index", i)
			return nil, err
		}
	}

	created, err := s.jobRepo.CreateBatch(ctx, jobs)
	if err != nil {
		logger.ExitMethodWithError("jobService.CreateJobBatch", err)
		return nil, err
	}

	logger.ExitMethod("jobService.CreateJobBatch", "count", len(created))
	return created, nil
}

// prepareJob validates the job, checks its referents and prices it. The
// computed total overwrites anything the caller sent.
func (s *jobService) prepareJob(ctx context.Context, job *domain.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	if _, err := s.clientRepo.GetByID(ctx, job.ClientID); err != nil {
		return fmt.Errorf("client %d: %w", job.ClientID, err)
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, job.VehicleID)
	if err != nil {
		return fmt.Errorf("vehicle %d: %w", job.VehicleID, err)
	}
	if vehicle.Variant != job.Variant {
		return domain.ValidationErrors{}.Add("variant", "does not match the vehicle's variant")
	}

	if err := billing.PriceJob(job); err != nil {
		return err
	}
	job.Status = domain.JobStatusPending
	return nil
}

func (s *jobService) GetJob(ctx context.Context, id int32) (*domain.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *jobService) ListJobs(ctx context.Context, filter repository.JobFilter) ([]domain.Job, error) {
	return s.jobRepo.List(ctx, filter)
}

// CompleteJob moves a pending job to completed. JCB jobs require an end
// meter at or beyond the start meter; lorry jobs transition without extra
// input.
func (s *jobService) CompleteJob(ctx context.Context, id int32, endMeter *float64) (*domain.Job, error) {
	logger.EnterMethod("jobService.CompleteJob", "jobID", id)

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("jobService.CompleteJob", err, "jobID", id)
		return nil, err
	}

	if !job.CanTransitionTo(domain.JobStatusCompleted) {
		return nil, fmt.Errorf("%w: %s -> completed", domain.ErrInvalidTransition, job.Status)
	}

	if job.Variant == domain.VariantJCB {
		if endMeter != nil {
			job.EndMeter = endMeter
		}
		if job.EndMeter == nil {
			return nil, domain.ValidationErrors{}.Add("end_meter", "required to complete a jcb job")
		}
		if job.StartMeter != nil && *job.EndMeter < *job.StartMeter {
			return nil, domain.ValidationErrors{}.Add("end_meter", "must not be less than start_meter")
		}
	}

	job.Status = domain.JobStatusCompleted
	if err := s.jobRepo.Update(ctx, job); err != nil {
		logger.ExitMethodWithError("jobService.CompleteJob", err, "jobID", id)
		return nil, err
	}

	logger.ExitMethod("jobService.CompleteJob", "jobID", id)
	return job, nil
}

// MarkJobPaid moves a completed job to paid, unconditionally.
func (s *jobService) MarkJobPaid(ctx context.Context, id int32) (*domain.Job, error) {
	logger.EnterMethod("jobService.MarkJobPaid", "jobID", id)

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("jobService.MarkJobPaid", err, "jobID", id)
		return nil, err
	}

	if !job.CanTransitionTo(domain.JobStatusPaid) {
		return nil, fmt.Errorf("%w: %s -> paid", domain.ErrInvalidTransition, job.Status)
	}

	job.Status = domain.JobStatusPaid
	if err := s.jobRepo.Update(ctx, job); err != nil {
		logger.ExitMethodWithError("jobService.MarkJobPaid", err, "jobID", id)
		return nil, err
	}

	logger.ExitMethod("jobService.MarkJobPaid", "jobID", id)
	return job, nil
}
