package usecase

import (
	"zenned/internal/event"
	"zenned/internal/event/repository"
	"zenned/pkg/datemath"
	"zenned/pkg/gcalendar"
	"zenned/pkg/log"
)

type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	clock  *datemath.Clock
	mirror gcalendar.IGCalendar
}

// New creates the events UseCase. mirror may be nil.
func New(repo repository.Repository, l log.Logger, clock *datemath.Clock, mirror gcalendar.IGCalendar) event.UseCase {
	return &implUseCase{
		repo:   repo,
		l:      l,
		clock:  clock,
		mirror: mirror,
	}
}
