package models

// Post is an article published in a topic.
type Post struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	AuthorID       int64  `json:"authorId"`
	AuthorUsername string `json:"authorUsername"`
	TopicID        int64  `json:"topicId"`
	TopicName      string `json:"topicName"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// CreatePostRequest is the body of POST /api/posts/user/{userId}.
type CreatePostRequest struct {
	TopicID int64  `json:"topicId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Comment is a reply attached to a post.
type Comment struct {
	ID             int64  `json:"id"`
	Content        string `json:"content"`
	AuthorID       int64  `json:"authorId"`
	AuthorUsername string `json:"authorUsername"`
	PostID         int64  `json:"postId"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// CreateCommentRequest is the body of POST /api/comments/post/{postId}/user/{userId}.
type CreateCommentRequest struct {
	Content string `json:"content"`
}
