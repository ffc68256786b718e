package user

import (
	"gorm.io/gorm"

	"github.com/quizhub/quizhub/internal/game"
)

type UserContainer struct {
	Handler *Handler
	Service UserService
	Repo    UserRepository
}

func NewUserContainer(db *gorm.DB, games game.Service) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service, games)

	return &UserContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
