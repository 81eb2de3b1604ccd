package services

import (
	"context"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/api"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/session"
)

// SubscriptionService manages the current user's topic subscriptions.
type SubscriptionService interface {
	List(ctx context.Context) ([]models.Subscription, error)
	Subscribe(ctx context.Context, topicID int64) (*models.Subscription, error)
	Unsubscribe(ctx context.Context, topicID int64) (*models.MessageResponse, error)
}

type subscriptionService struct {
	client  api.Client
	session *session.Store
}

func NewSubscriptionService(client api.Client, session *session.Store) SubscriptionService {
	return &subscriptionService{client: client, session: session}
}

func (s *subscriptionService) List(ctx context.Context) ([]models.Subscription, error) {
	user := s.session.Current()
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	return s.client.UserSubscriptions(ctx, user.ID)
}

func (s *subscriptionService) Subscribe(ctx context.Context, topicID int64) (*models.Subscription, error) {
	user := s.session.Current()
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	return s.client.Subscribe(ctx, models.SubscribeRequest{UserID: user.ID, TopicID: topicID})
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, topicID int64) (*models.MessageResponse, error) {
	user := s.session.Current()
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	return s.client.Unsubscribe(ctx, user.ID, topicID)
}
