// Package api is the REST client for the MDD server. It owns the outbound
// middleware chain (request id, bearer credential) and the uniform handling
// of authorization rejections: any 401 fires the registered unauthorized
// hook and is still returned to the caller, so per-call error handling keeps
// working.
package api

import (
	"context"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
)

// Client is the remote surface of the MDD API.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)

	Topics(ctx context.Context) ([]models.Topic, error)

	UserSubscriptions(ctx context.Context, userID int64) ([]models.Subscription, error)
	SubscribedTopicIDs(ctx context.Context, userID int64) ([]int64, error)
	Subscribe(ctx context.Context, req models.SubscribeRequest) (*models.Subscription, error)
	Unsubscribe(ctx context.Context, userID, topicID int64) (*models.MessageResponse, error)

	Feed(ctx context.Context, userID int64, ascending bool) ([]models.Post, error)
	Post(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, userID int64, req models.CreatePostRequest) (*models.Post, error)

	CommentsForPost(ctx context.Context, postID int64) ([]models.Comment, error)
	AddComment(ctx context.Context, postID, userID int64, req models.CreateCommentRequest) (*models.Comment, error)

	UpdateProfile(ctx context.Context, id int64, req models.UpdateProfileRequest) (*models.User, error)
}
