package quiz

import (
	"github.com/quizhub/quizhub/internal/bank"
	"github.com/quizhub/quizhub/internal/trivia"
)

type QuizContainer struct {
	Handler *Handler
	Service Service
	Store   Store
}

func NewQuizContainer(store Store, client *trivia.Client, questionBank *bank.Bank, history UserHistory, results ResultRecorder) *QuizContainer {
	selector := NewSelector(client, questionBank)
	service := NewService(store, selector, history, results)
	handler := NewHandler(service, client)

	return &QuizContainer{
		Handler: handler,
		Service: service,
		Store:   store,
	}
}
