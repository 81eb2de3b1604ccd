package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/api"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/session"
)

// PostService serves the user's feed and article creation.
type PostService interface {
	// Feed returns the posts from the user's subscribed topics, newest
	// first unless ascending is set.
	Feed(ctx context.Context, ascending bool) ([]models.Post, error)
	Post(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
}

type postService struct {
	client  api.Client
	session *session.Store
}

func NewPostService(client api.Client, session *session.Store) PostService {
	return &postService{client: client, session: session}
}

func (s *postService) Feed(ctx context.Context, ascending bool) ([]models.Post, error) {
	user := s.session.Current()
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	return s.client.Feed(ctx, user.ID, ascending)
}

func (s *postService) Post(ctx context.Context, id int64) (*models.Post, error) {
	return s.client.Post(ctx, id)
}

func (s *postService) Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	user := s.session.Current()
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	err := validation.Errors{
		"topicId": validation.Validate(req.TopicID, validation.Required.Error("Le thème est requis")),
		"title":   validation.Validate(req.Title, validation.Required.Error("Le titre est requis")),
		"content": validation.Validate(req.Content, validation.Required.Error("Le contenu est requis")),
	}.Filter()
	if err != nil {
		return nil, err
	}

	return s.client.CreatePost(ctx, user.ID, req)
}
