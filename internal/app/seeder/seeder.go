// Package seeder fills an empty registry with demo organizations.
package seeder

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/registry-backend/internal/adapter/postgres"
	"github.com/heartmarshall/registry-backend/internal/service/organization"
	"github.com/heartmarshall/registry-backend/internal/service/view"
)

type organizationCreator interface {
	Create(ctx context.Context, input organization.CreateInput) (view.Organization, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Failure records an organization that could not be inserted. Exists is
// set when the name was already taken.
type Failure struct {
	Name   string
	Err    error
	Exists bool
}

// Result summarizes one seeding run.
type Result struct {
	Inserted int
	Failed   []Failure
	Duration time.Duration
}

// Total is the number of organizations attempted.
func (r Result) Total() int {
	return r.Inserted + len(r.Failed)
}

// Seeder inserts organizations one transaction at a time, so a duplicate
// name only skips that organization.
type Seeder struct {
	orgs organizationCreator
	tx   txRunner
	log  *slog.Logger
}

// New creates a Seeder.
func New(log *slog.Logger, orgs organizationCreator, tx txRunner) *Seeder {
	return &Seeder{orgs: orgs, tx: tx, log: log.With("component", "seeder")}
}

// Run inserts every input and reports what happened. It stops early only
// when ctx is cancelled.
func (s *Seeder) Run(ctx context.Context, inputs []organization.CreateInput) Result {
	start := time.Now()
	var res Result

	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			res.Failed = append(res.Failed, Failure{Name: in.Name, Err: err})
			continue
		}

		err := in.Validate()
		if err == nil {
			err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
				_, err := s.orgs.Create(ctx, in)
				return err
			})
		}
		if err != nil {
			exists := postgres.IsUniqueViolation(err)
			s.log.WarnContext(ctx, "organization not seeded",
				slog.String("name", in.Name),
				slog.Bool("exists", exists),
				slog.String("error", err.Error()),
			)
			res.Failed = append(res.Failed, Failure{Name: in.Name, Err: err, Exists: exists})
			continue
		}
		res.Inserted++
	}

	res.Duration = time.Since(start)
	s.log.InfoContext(ctx, "seeding completed",
		slog.Int("inserted", res.Inserted),
		slog.Int("failed", len(res.Failed)),
		slog.Duration("duration", res.Duration),
	)
	return res
}

// DemoOrganizations returns the ten organizations a fresh registry is
// seeded with.
func DemoOrganizations() []organization.CreateInput {
	return []organization.CreateInput{
		{Name: "Космические технологии", Phones: []string{"+7 (495) 123-45-67"}},
		{Name: "ВкусВилл Продукты", Phones: []string{"8-800-555-12-34"}},
		{Name: "СтройГарант", Phones: []string{"+7 (812) 345-67-89"}},
		{Name: "МедПрофи Центр", Phones: []string{"+7 (383) 567-89-01"}},
		{Name: "АвтоМир Сервис", Phones: []string{"+7 (351) 234-56-78"}},
		{Name: "ТехноПарк", Phones: []string{"8-800-777-33-22"}},
		{Name: "Бюро Путешествий 'Вокруг света'", Phones: []string{"+7 (495) 987-65-43"}},
		{Name: "Юридическая компания 'Право и Закон'", Phones: []string{"+7 (343) 456-78-90"}},
		{Name: "Дизайн-студия 'АртВзгляд'", Phones: []string{"+7 (812) 654-32-10"}},
		{Name: "Образовательный центр 'Знание'", Phones: []string{"8-800-250-50-50"}},
	}
}
