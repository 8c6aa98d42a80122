package api

import (
	"context"

	"acodelab/internal/gateway"
)

// JobsService wraps the B2B job board endpoints.
type JobsService struct {
	api Doer
}

func (s *JobsService) List(ctx context.Context, params ListParams) ([]Job, error) {
	var out []Job
	err := s.api.Get(ctx, "/api/jobs", params.values(), &out)
	return out, err
}

func (s *JobsService) Get(ctx context.Context, id string) (Job, error) {
	var out Job
	err := s.api.Get(ctx, gateway.Path("api", "jobs", id), nil, &out)
	return out, err
}

func (s *JobsService) Create(ctx context.Context, job JobCreate) (Job, error) {
	var out Job
	err := s.api.Post(ctx, "/api/jobs", job, &out)
	return out, err
}

func (s *JobsService) Update(ctx context.Context, id string, job JobCreate) (Job, error) {
	var out Job
	err := s.api.Put(ctx, gateway.Path("api", "jobs", id), job, &out)
	return out, err
}

func (s *JobsService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, gateway.Path("api", "jobs", id), nil)
}

func (s *JobsService) Apply(ctx context.Context, jobID string, application JobApply) (JobApplication, error) {
	var out JobApplication
	err := s.api.Post(ctx, gateway.Path("api", "jobs", jobID, "apply"), application, &out)
	return out, err
}

// Applications lists applications received for a job the caller owns.
func (s *JobsService) Applications(ctx context.Context, jobID string) ([]JobApplication, error) {
	var out []JobApplication
	err := s.api.Get(ctx, gateway.Path("api", "jobs", jobID, "applications"), nil, &out)
	return out, err
}

// MyApplications lists the caller's own applications.
func (s *JobsService) MyApplications(ctx context.Context) ([]JobApplication, error) {
	var out []JobApplication
	err := s.api.Get(ctx, "/api/jobs/applications", nil, &out)
	return out, err
}
