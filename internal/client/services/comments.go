package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/api"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/session"
)

// CommentService reads and writes the comments attached to a post.
type CommentService interface {
	ForPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Add(ctx context.Context, postID int64, content string) (*models.Comment, error)
}

type commentService struct {
	client  api.Client
	session *session.Store
}

func NewCommentService(client api.Client, session *session.Store) CommentService {
	return &commentService{client: client, session: session}
}

func (s *commentService) ForPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	return s.client.CommentsForPost(ctx, postID)
}

func (s *commentService) Add(ctx context.Context, postID int64, content string) (*models.Comment, error) {
	user := s.session.Current()
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	if err := validation.Validate(content, validation.Required.Error("Le commentaire ne peut pas être vide")); err != nil {
		return nil, err
	}

	return s.client.AddComment(ctx, postID, user.ID, models.CreateCommentRequest{Content: content})
}
