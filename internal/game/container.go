package game

import "gorm.io/gorm"

type GameContainer struct {
	Handler *Handler
	Service Service
	Repo    GameRepository
}

func NewGameContainer(db *gorm.DB) *GameContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &GameContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
