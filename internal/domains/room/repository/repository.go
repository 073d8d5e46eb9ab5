package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"

	"sorabora/infras/otel"
	"sorabora/infras/postgres"
	"sorabora/internal/domains/room/model"
	gDto "sorabora/shared/dto"
	gRepo "sorabora/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.RoomStatus) error
	GetAll(ctx context.Context, orderBy string, filter gDto.FilterGroup) ([]model.RoomStatus, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomStatus]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomStatus](model.EntityName, model.TableName, model.FieldRoomNumber, db, otel),
		db:         db,
		otel:       otel,
	}
}
