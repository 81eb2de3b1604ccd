package services

import (
	"context"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/api"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/session"
)

// TopicView is a topic annotated with the current user's subscription state.
type TopicView struct {
	models.Topic
	Subscribed bool
}

// TopicService lists the forum's topics for the authenticated user.
type TopicService interface {
	Topics(ctx context.Context) ([]TopicView, error)
}

type topicService struct {
	client  api.Client
	session *session.Store
}

func NewTopicService(client api.Client, session *session.Store) TopicService {
	return &topicService{client: client, session: session}
}

func (s *topicService) Topics(ctx context.Context) ([]TopicView, error) {
	user := s.session.Current()
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	topics, err := s.client.Topics(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := s.client.SubscribedTopicIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	subscribed := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		subscribed[id] = struct{}{}
	}

	views := make([]TopicView, 0, len(topics))
	for _, t := range topics {
		_, ok := subscribed[t.ID]
		views = append(views, TopicView{Topic: t, Subscribed: ok})
	}
	return views, nil
}
