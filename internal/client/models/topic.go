package models

// Topic is a forum theme users can subscribe to.
type Topic struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Subscription links a user to a topic.
type Subscription struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"userId"`
	TopicID          int64  `json:"topicId"`
	TopicName        string `json:"topicName"`
	TopicDescription string `json:"topicDescription"`
	SubscribedAt     string `json:"subscribedAt"`
}

// SubscribeRequest is the body of POST /api/subscriptions.
type SubscribeRequest struct {
	UserID  int64 `json:"userId"`
	TopicID int64 `json:"topicId"`
}
