package usecase

import (
	"zenned/internal/event"
	"zenned/internal/user"
	"zenned/internal/user/repository"
	"zenned/pkg/encrypter"
	"zenned/pkg/log"
	"zenned/pkg/scope"
)

type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	encrypter  encrypter.Encrypter
	jwtManager scope.Manager
	eventUC    event.UseCase
}

// New creates the users UseCase. eventUC provisions each new user's events store.
func New(repo repository.Repository, l log.Logger, enc encrypter.Encrypter, jwtManager scope.Manager, eventUC event.UseCase) user.UseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		encrypter:  enc,
		jwtManager: jwtManager,
		eventUC:    eventUC,
	}
}
