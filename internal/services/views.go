package services

import (
	"time"

	"github.com/chirp-social/chirp/internal/models"
)

// View types are the outbound shapes handlers serialize. IDs are int64
// because the synthetic fallback feed uses negative ids that never exist
// as rows.

type UserView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type PostView struct {
	ID         int64         `json:"id"`
	Author     string        `json:"author"`
	Content    string        `json:"content"`
	CreatedAt  time.Time     `json:"createdAt"`
	LikesCount int           `json:"likesCount"`
	Comments   []CommentView `json:"comments"`
}

type CommentView struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type FriendshipView struct {
	UserUsername   string `json:"userUsername"`
	FriendUsername string `json:"friendUsername"`
	IsConfirmed    bool   `json:"isConfirmed"`
}

type PendingRequestView struct {
	Requester string    `json:"requester"`
	Since     time.Time `json:"since"`
}

type LikeResult struct {
	Liked      bool  `json:"liked"`
	TotalLikes int64 `json:"totalLikes"`
}

func newUserView(user *models.User) UserView {
	return UserView{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func newPostView(post *models.Post) PostView {
	comments := make([]CommentView, 0, len(post.Comments))
	for i := range post.Comments {
		comments = append(comments, newCommentView(&post.Comments[i]))
	}

	return PostView{
		ID:         int64(post.ID),
		Author:     post.Author.Username,
		Content:    post.Content,
		CreatedAt:  post.CreatedAt,
		LikesCount: len(post.Likes),
		Comments:   comments,
	}
}

func newCommentView(comment *models.Comment) CommentView {
	return CommentView{
		ID:        int64(comment.ID),
		PostID:    int64(comment.PostID),
		Author:    comment.Author.Username,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

func newFriendshipView(requester, recipient *models.User, confirmed bool) FriendshipView {
	return FriendshipView{
		UserUsername:   requester.Username,
		FriendUsername: recipient.Username,
		IsConfirmed:    confirmed,
	}
}
