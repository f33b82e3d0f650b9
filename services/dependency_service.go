// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/jobs"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type dependencyService struct {
	dependencyRepository        shared.DependencyRepository
	dependencyVersionRepository shared.DependencyVersionRepository
	jobEnqueuer                 shared.JobEnqueuer
}

func NewDependencyService(dependencyRepository shared.DependencyRepository, dependencyVersionRepository shared.DependencyVersionRepository, jobEnqueuer shared.JobEnqueuer) *dependencyService {
	return &dependencyService{
		dependencyRepository:        dependencyRepository,
		dependencyVersionRepository: dependencyVersionRepository,
		jobEnqueuer:                 jobEnqueuer,
	}
}

// CreateDependency stores the dependency if it is not known yet and schedules
// its enrichment. The returned row is the state before the enrichment ran.
func (s *dependencyService) CreateDependency(ctx context.Context, req dtos.DependencyCreateRequest) (models.Dependency, error) {
	dependency, err := s.dependencyRepository.InsertIfNotExists(ctx, req.DependencyName)
	if err != nil {
		return models.Dependency{}, errors.Wrap(err, "could not create dependency")
	}

	if _, err := s.jobEnqueuer.Enqueue(ctx, jobs.GetDependencyInfo{
		DependencyID:   dependency.ID,
		DependencyName: dependency.Name,
	}, jobs.DependencyInfoOptions()); err != nil {
		return models.Dependency{}, errors.Wrap(err, "could not enqueue dependency enrichment")
	}

	slog.Info("dependency created", "name", dependency.Name, "id", dependency.ID)
	return dependency, nil
}

func (s *dependencyService) Read(ctx context.Context, id uuid.UUID) (models.Dependency, error) {
	dependency, err := s.dependencyRepository.Read(ctx, id)
	if err != nil {
		return models.Dependency{}, err
	}
	if dependency.IsDeleted {
		return models.Dependency{}, errors.Wrapf(gorm.ErrRecordNotFound, "dependency %s", id)
	}
	return dependency, nil
}

func (s *dependencyService) ReadByName(ctx context.Context, name string) (models.Dependency, error) {
	return s.dependencyRepository.ReadByName(ctx, name)
}

func (s *dependencyService) ListPaged(ctx context.Context, pageInfo shared.PageInfo, search string) (shared.Paged[models.Dependency], error) {
	return s.dependencyRepository.ListPaged(ctx, pageInfo, search)
}

func (s *dependencyService) ListVersions(ctx context.Context, id uuid.UUID) ([]models.DependencyVersion, error) {
	if _, err := s.Read(ctx, id); err != nil {
		return nil, err
	}
	return s.dependencyVersionRepository.ListByDependency(ctx, id)
}

func (s *dependencyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Read(ctx, id); err != nil {
		return err
	}
	return s.dependencyRepository.SoftDelete(ctx, id)
}

// RefreshAll schedules a new enrichment for every dependency which is not
// deleted. It returns the number of scheduled jobs.
func (s *dependencyService) RefreshAll(ctx context.Context) (int, error) {
	dependencies, err := s.dependencyRepository.ListActive(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "could not list dependencies")
	}

	enqueued := 0
	for _, dependency := range dependencies {
		if _, err := s.jobEnqueuer.Enqueue(ctx, jobs.GetDependencyInfo{
			DependencyID:   dependency.ID,
			DependencyName: dependency.Name,
		}, jobs.DependencyInfoOptions()); err != nil {
			return enqueued, errors.Wrapf(err, "could not enqueue refresh of %s", dependency.Name)
		}
		enqueued++
	}
	return enqueued, nil
}
