package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/session"
	"github.com/thibautlfr-studylab/mdd-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func newSession(t *testing.T) (*session.Store, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE localstore (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	return session.NewStore(db, logging.NewTextLogger(io.Discard, slog.LevelDebug)), db
}

func signedToken(t *testing.T, payload string) string {
	t.Helper()
	return "header." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".sig"
}

// ---- fake client ----

// fakeClient implements api.Client for service unit tests.
type fakeClient struct {
	RegisterResp *models.AuthResponse
	RegisterErr  error
	LoginResp    *models.AuthResponse
	LoginErr     error

	TopicsResp   []models.Topic
	TopicIDsResp []int64

	SubscriptionsResp []models.Subscription
	SubscribeResp     *models.Subscription
	UnsubscribeResp   *models.MessageResponse

	FeedResp       []models.Post
	PostResp       *models.Post
	CreatePostResp *models.Post

	CommentsResp   []models.Comment
	AddCommentResp *models.Comment

	UpdateProfileResp *models.User
	UpdateProfileErr  error

	LastRegister      models.RegisterRequest
	LastLogin         models.LoginRequest
	LastSubscribe     models.SubscribeRequest
	LastUnsubUser     int64
	LastUnsubTopic    int64
	LastFeedUser      int64
	LastFeedAscending bool
	LastCreatePost    models.CreatePostRequest
	LastCommentPost   int64
	LastCommentUser   int64
	LastComment       models.CreateCommentRequest
	LastProfileID     int64
	LastProfile       models.UpdateProfileRequest
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.LastRegister = req
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.LastLogin = req
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Topics(ctx context.Context) ([]models.Topic, error) {
	return f.TopicsResp, nil
}

func (f *fakeClient) UserSubscriptions(ctx context.Context, userID int64) ([]models.Subscription, error) {
	return f.SubscriptionsResp, nil
}

func (f *fakeClient) SubscribedTopicIDs(ctx context.Context, userID int64) ([]int64, error) {
	return f.TopicIDsResp, nil
}

func (f *fakeClient) Subscribe(ctx context.Context, req models.SubscribeRequest) (*models.Subscription, error) {
	f.LastSubscribe = req
	return f.SubscribeResp, nil
}

func (f *fakeClient) Unsubscribe(ctx context.Context, userID, topicID int64) (*models.MessageResponse, error) {
	f.LastUnsubUser, f.LastUnsubTopic = userID, topicID
	return f.UnsubscribeResp, nil
}

func (f *fakeClient) Feed(ctx context.Context, userID int64, ascending bool) ([]models.Post, error) {
	f.LastFeedUser, f.LastFeedAscending = userID, ascending
	return f.FeedResp, nil
}

func (f *fakeClient) Post(ctx context.Context, id int64) (*models.Post, error) {
	return f.PostResp, nil
}

func (f *fakeClient) CreatePost(ctx context.Context, userID int64, req models.CreatePostRequest) (*models.Post, error) {
	f.LastCreatePost = req
	return f.CreatePostResp, nil
}

func (f *fakeClient) CommentsForPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	f.LastCommentPost = postID
	return f.CommentsResp, nil
}

func (f *fakeClient) AddComment(ctx context.Context, postID, userID int64, req models.CreateCommentRequest) (*models.Comment, error) {
	f.LastCommentPost, f.LastCommentUser, f.LastComment = postID, userID, req
	return f.AddCommentResp, nil
}

func (f *fakeClient) UpdateProfile(ctx context.Context, id int64, req models.UpdateProfileRequest) (*models.User, error) {
	f.LastProfileID, f.LastProfile = id, req
	return f.UpdateProfileResp, f.UpdateProfileErr
}

// loginAs puts a user into the session through the normal token path.
func loginAs(t *testing.T, s *session.Store, payload string) *models.User {
	t.Helper()
	u, err := s.AcceptToken(context.Background(), signedToken(t, payload))
	require.NoError(t, err)
	return u
}

// ---- tests ----

const validPassword = "Abcdef1!"

func TestLogin_SessionComesFromTokenNotResponseBody(t *testing.T) {
	sess, _ := newSession(t)
	// The response body claims a different identity than the token; the
	// token must win.
	fc := &fakeClient{LoginResp: &models.AuthResponse{
		ID:       99,
		Username: "body-name",
		Email:    "body@b.com",
		Token:    signedToken(t, `{"sub":"a@b.com","userId":1,"username":"u","exp":9999999999}`),
	}}
	svc := NewAuthService(fc, sess)

	u, err := svc.Login(context.Background(), "u", validPassword)
	require.NoError(t, err)

	assert.Equal(t, &models.User{ID: 1, Username: "u", Email: "a@b.com"}, u)
	assert.Equal(t, u, sess.Current())
	assert.Equal(t, models.LoginRequest{Identifier: "u", Password: validPassword}, fc.LastLogin)
}

func TestLogin_ValidationFailsBeforeAnyRequest(t *testing.T) {
	sess, _ := newSession(t)
	fc := &fakeClient{}
	svc := NewAuthService(fc, sess)

	_, err := svc.Login(context.Background(), "", "")
	require.Error(t, err)
	assert.Empty(t, fc.LastLogin.Identifier)
	assert.False(t, sess.IsLoggedIn())
}

func TestLogin_APIErrorPropagatesUnchanged(t *testing.T) {
	sess, _ := newSession(t)
	wantErr := assert.AnError
	fc := &fakeClient{LoginErr: wantErr}
	svc := NewAuthService(fc, sess)

	_, err := svc.Login(context.Background(), "u", "pw")
	require.ErrorIs(t, err, wantErr)
	assert.False(t, sess.IsLoggedIn())
}

func TestRegister_PersistsTokenAndHydrates(t *testing.T) {
	sess, db := newSession(t)
	raw := signedToken(t, `{"sub":"n@b.com","userId":5,"username":"new","exp":9999999999}`)
	fc := &fakeClient{RegisterResp: &models.AuthResponse{ID: 5, Username: "new", Email: "n@b.com", Token: raw, Message: "created"}}
	svc := NewAuthService(fc, sess)

	u, err := svc.Register(context.Background(), "new", "n@b.com", validPassword)
	require.NoError(t, err)

	assert.Equal(t, int64(5), u.ID)
	assert.True(t, sess.IsLoggedIn())

	var stored []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM localstore WHERE key='token'`).Scan(&stored))
	assert.Equal(t, raw, string(stored))
}

func TestRegister_RejectsWeakPassword(t *testing.T) {
	sess, _ := newSession(t)
	fc := &fakeClient{}
	svc := NewAuthService(fc, sess)

	_, err := svc.Register(context.Background(), "new", "n@b.com", "weak")
	require.Error(t, err)
	assert.Empty(t, fc.LastRegister.Username)
}

func TestLogout_ClearsSession(t *testing.T) {
	sess, db := newSession(t)
	loginAs(t, sess, `{"sub":"a@b.com","userId":1,"username":"u","exp":9999999999}`)
	svc := NewAuthService(&fakeClient{}, sess)

	require.NoError(t, svc.Logout(context.Background()))

	assert.False(t, sess.IsLoggedIn())
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM localstore WHERE key='token'`).Scan(&n))
	assert.Zero(t, n)
}
