package service

import (
	"context"
	"fmt"

	"campusvisit/config"
	"campusvisit/infras/backend"
	"campusvisit/infras/otel"
	"campusvisit/internal/domains/schools/model"
	"campusvisit/internal/domains/schools/model/dto"
	"campusvisit/shared"
	"campusvisit/shared/cache"
	"campusvisit/shared/constant"
	"campusvisit/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetAllSchools = "schools:gets"

type Schools interface {
	GetAll(ctx context.Context) ([]backend.School, error)
	Grouped(ctx context.Context, expanded map[string]bool) ([]model.CityGroup, error)
	Create(ctx context.Context, req dto.CreateSchoolRequest) (backend.School, error)
	Update(ctx context.Context, id int64, req dto.UpdateSchoolRequest) (backend.School, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	schools backend.Schools
	cache   cache.Cache
	cfg     *config.Config
	otel    otel.Otel
}

func New(schools backend.Schools, cache cache.Cache, cfg *config.Config, otel otel.Otel) Schools {
	return &serviceImpl{
		schools: schools,
		cache:   cache,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []backend.School, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SchoolsGetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetAllSchools, &res)
	if err == nil {
		log.Trace().Str("cacheKey", cacheGetAllSchools).Msg("cache hit for schools")

		return res, nil
	}

	res, err = s.schools.ListSchools(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schools")

		return nil, fmt.Errorf("failed to get schools: %w", err)
	}

	s.remember(ctx, res)

	return res, nil
}

func (s *serviceImpl) Grouped(ctx context.Context, expanded map[string]bool) ([]model.CityGroup, error) {
	schools, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return model.GroupByCity(schools, expanded), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSchoolRequest) (res backend.School, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SchoolsCreate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.schools.CreateSchool(ctx, req.Name, req.City)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to create school")

		return res, failure.New(failure.GetCode(err), "Failed to create school. Please try again.")
	}

	s.patch(ctx, func(schools []backend.School) []backend.School {
		return append(schools, res)
	})

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateSchoolRequest) (res backend.School, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SchoolsUpdate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	changes := shared.TransformFields(req)
	if len(changes) == 0 {
		return res, failure.BadRequestFromString("Nothing to update.")
	}

	input := backend.SchoolInput{Name: req.Name, City: req.City}

	// The backend replaces the whole record; a blank field keeps its current value.
	if input.Name == "" || input.City == "" {
		current, err := s.find(ctx, id)
		if err != nil {
			return res, err
		}

		if input.Name == "" {
			input.Name = current.Name
		}

		if input.City == "" {
			input.City = current.City
		}
	}

	res, err = s.schools.UpdateSchool(ctx, id, input)
	if err != nil {
		log.Error().Err(err).Int64("school", id).Msg("failed to update school")

		return res, failure.New(failure.GetCode(err), "Failed to update school. Please try again.")
	}

	s.patch(ctx, func(schools []backend.School) []backend.School {
		return model.Replace(schools, res)
	})

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id int64) (backend.School, error) {
	schools, err := s.GetAll(ctx)
	if err != nil {
		return backend.School{}, err
	}

	for _, school := range schools {
		if school.ID == id {
			return school, nil
		}
	}

	return backend.School{}, failure.NotFound("School not found.")
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SchoolsDelete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.schools.DeleteSchool(ctx, id); err != nil {
		log.Error().Err(err).Int64("school", id).Msg("failed to delete school")

		return failure.New(failure.GetCode(err), "Failed to delete school. Please try again.")
	}

	s.patch(ctx, func(schools []backend.School) []backend.School {
		return model.Remove(schools, id)
	})

	return nil
}

// patch applies a local edit to the cached list; with nothing cached the next read refetches.
func (s *serviceImpl) patch(ctx context.Context, edit func([]backend.School) []backend.School) {
	var schools []backend.School

	if err := s.cache.Get(ctx, cacheGetAllSchools, &schools); err != nil {
		return
	}

	s.remember(ctx, edit(schools))
}

// remember saves synchronously so a patch never races an older fill.
func (s *serviceImpl) remember(ctx context.Context, schools []backend.School) {
	if err := s.cache.Save(ctx, cacheGetAllSchools, schools, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save schools to cache")
	}
}
