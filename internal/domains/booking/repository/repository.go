package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"

	"sorabora/infras/otel"
	"sorabora/infras/postgres"
	"sorabora/internal/domains/booking/model"
	gDto "sorabora/shared/dto"
	gRepo "sorabora/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	GetAll(ctx context.Context, orderBy string, filter gDto.FilterGroup) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
