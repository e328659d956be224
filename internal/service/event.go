package service

import (
	"github.com/nuleaf/source/internal/model"
	"github.com/nuleaf/source/internal/query"
)

type EventService = Resource[model.Event]

func NewEventService(repo Store[model.Event], resolver query.Resolver) *EventService {
	return NewResource(ResourceConfig[model.Event]{Store: repo, Resolver: resolver})
}

type SeminarService = Resource[model.Seminar]

func NewSeminarService(repo Store[model.Seminar], resolver query.Resolver) *SeminarService {
	return NewResource(ResourceConfig[model.Seminar]{Store: repo, Resolver: resolver})
}

type PostService = Resource[model.Post]

func NewPostService(repo Store[model.Post], resolver query.Resolver) *PostService {
	return NewResource(ResourceConfig[model.Post]{Store: repo, Resolver: resolver})
}
