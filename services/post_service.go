package services

import (
	"context"
	"fmt"

	"gram/models"
	"gram/notifications"
	"gram/repositories"
	"gram/storage"
)

// PostService orchestrates the post aggregate: creation, retrieval,
// mutation and the notifications social interactions trigger. All
// persistence, identity and delivery concerns live behind the
// collaborator interfaces.
type PostService struct {
	posts          repositories.PostRepository
	users          repositories.UserRepository
	sessions       repositories.SessionResolver
	files          storage.FileRepository
	notifier       notifications.Dispatcher
	assembler      *PostAssembler
	postFactory    *PostFactory
	commentFactory *CommentFactory
	previews       *UserPreviewService
}

func NewPostService(
	posts repositories.PostRepository,
	users repositories.UserRepository,
	sessions repositories.SessionResolver,
	files storage.FileRepository,
	notifier notifications.Dispatcher,
) *PostService {
	return &PostService{
		posts:          posts,
		users:          users,
		sessions:       sessions,
		files:          files,
		notifier:       notifier,
		assembler:      NewPostAssembler(),
		postFactory:    NewPostFactory(),
		commentFactory: NewCommentFactory(),
		previews:       NewUserPreviewService(users),
	}
}

// AddPost stores the uploaded image first and persists the post only
// after storage succeeded, so a failed upload never leaves a post
// pointing at nothing.
func (s *PostService) AddPost(ctx context.Context, request models.AddPostRequest) error {
	report, err := s.files.StoreImage(ctx, request.Image)
	if err != nil {
		return fmt.Errorf("store image: %w", err)
	}

	post := s.postFactory.Create(request, report.ImageURL)
	return s.posts.Save(ctx, post)
}

// GetPost returns the requester-relative view of a single post.
func (s *PostService) GetPost(ctx context.Context, token, id string) (models.PostResponse, error) {
	requester, err := s.sessions.FindUsernameWithToken(ctx, token)
	if err != nil {
		return models.PostResponse{}, err
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return models.PostResponse{}, err
	}

	author, err := s.users.FindByUsername(ctx, post.Author)
	if err != nil {
		return models.PostResponse{}, err
	}

	return s.assembler.AssemblePostResponse(post, author, requester), nil
}

// GetPosts returns a page of the global feed, most recent first.
func (s *PostService) GetPosts(ctx context.Context, token string, pagination models.Pagination) ([]models.PostResponse, error) {
	requester, err := s.sessions.FindUsernameWithToken(ctx, token)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.Find(ctx, pagination)
	if err != nil {
		return nil, err
	}

	return s.assemblePage(ctx, posts, requester)
}

// GetAuthorPosts lists one author's posts. The author must exist;
// an unknown author fails before any post query runs.
func (s *PostService) GetAuthorPosts(ctx context.Context, token, author string, pagination models.Pagination) ([]models.PostResponse, error) {
	if err := s.users.VerifyIfUserExists(ctx, author); err != nil {
		return nil, err
	}

	requester, err := s.sessions.FindUsernameWithToken(ctx, token)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.FindByAuthor(ctx, author, pagination)
	if err != nil {
		return nil, err
	}

	authorProfile, err := s.users.FindByUsername(ctx, author)
	if err != nil {
		return nil, err
	}

	responses := make([]models.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, s.assembler.AssemblePostResponse(post, authorProfile, requester))
	}
	return responses, nil
}

// FindPostsByCaption searches captions for a case-insensitive
// substring match.
func (s *PostService) FindPostsByCaption(ctx context.Context, token, caption string, pagination models.Pagination) ([]models.PostResponse, error) {
	requester, err := s.sessions.FindUsernameWithToken(ctx, token)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.FindByCaption(ctx, caption, pagination)
	if err != nil {
		return nil, err
	}

	return s.assemblePage(ctx, posts, requester)
}

// FindPostsByHashtags returns posts carrying any of the given tags.
func (s *PostService) FindPostsByHashtags(ctx context.Context, token string, hashtags []string, pagination models.Pagination) ([]models.PostResponse, error) {
	requester, err := s.sessions.FindUsernameWithToken(ctx, token)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.FindByHashtags(ctx, hashtags, pagination)
	if err != nil {
		return nil, err
	}

	return s.assemblePage(ctx, posts, requester)
}

// EditPost merges the whitelisted fields over the stored post. Likes,
// comments, author, id and imageUrl survive any edit payload.
func (s *PostService) EditPost(ctx context.Context, token, id string, request models.EditPostFieldsRequest) (models.PostResponse, error) {
	requester, err := s.sessions.FindUsernameWithToken(ctx, token)
	if err != nil {
		return models.PostResponse{}, err
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return models.PostResponse{}, err
	}

	updated := ApplyEditPostFields(post, AssembleEditPostFields(request))

	persisted, err := s.posts.Update(ctx, id, updated)
	if err != nil {
		return models.PostResponse{}, err
	}

	author, err := s.users.FindByUsername(ctx, persisted.Author)
	if err != nil {
		return models.PostResponse{}, err
	}

	return s.assembler.AssemblePostResponse(persisted, author, requester), nil
}

// DeletePost removes the post unconditionally.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}

// LikePost records the requester's like and notifies the author.
// Liking a post twice is a no-op: no duplicate entry, no second
// notification, no error.
func (s *PostService) LikePost(ctx context.Context, token, postID string) error {
	requester, err := s.findRequester(ctx, token)
	if err != nil {
		return err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.IsLikedBy(requester.Username) {
		return nil
	}

	post.Likes = append(post.Likes, requester.Username)
	if _, err := s.posts.Update(ctx, postID, post); err != nil {
		return err
	}

	s.notifier.SendPostNotification(models.PostNotification{
		PostID: postID,
		To:     post.Author,
		From:   requester.Username,
		Type:   models.NotificationPostLike,
	})
	return nil
}

// UnlikePost removes the requester's like. No notification is sent on
// unlike, and unliking a post never liked is a no-op.
func (s *PostService) UnlikePost(ctx context.Context, token, postID string) error {
	requester, err := s.findRequester(ctx, token)
	if err != nil {
		return err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	if !post.IsLikedBy(requester.Username) {
		return nil
	}

	likes := make([]string, 0, len(post.Likes))
	for _, username := range post.Likes {
		if username != requester.Username {
			likes = append(likes, username)
		}
	}
	post.Likes = likes

	_, err = s.posts.Update(ctx, postID, post)
	return err
}

// CommentPost appends the new comment, notifies the author and
// returns the view of the post as persisted, so the response already
// carries the comment.
func (s *PostService) CommentPost(ctx context.Context, token, postID string, request models.PostCommentRequest) (models.PostResponse, error) {
	requester, err := s.findRequester(ctx, token)
	if err != nil {
		return models.PostResponse{}, err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return models.PostResponse{}, err
	}

	author, err := s.users.FindByUsername(ctx, post.Author)
	if err != nil {
		return models.PostResponse{}, err
	}

	comment := s.commentFactory.Create(requester.Username, request)
	post.Comments = append(post.Comments, comment)

	persisted, err := s.posts.Update(ctx, postID, post)
	if err != nil {
		return models.PostResponse{}, err
	}

	s.notifier.SendPostNotification(models.PostNotification{
		PostID: postID,
		To:     persisted.Author,
		From:   requester.Username,
		Type:   models.NotificationPostComment,
	})

	return s.assembler.AssemblePostResponse(persisted, author, requester.Username), nil
}

// GetPostLikes resolves the post's likers into user previews.
func (s *PostService) GetPostLikes(ctx context.Context, id string) ([]models.UserPreview, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.previews.GetUserPreviews(ctx, post.Likes)
}

// findRequester resolves the session token to a full user, proving
// the account behind the token still exists.
func (s *PostService) findRequester(ctx context.Context, token string) (models.User, error) {
	username, err := s.sessions.FindUsernameWithToken(ctx, token)
	if err != nil {
		return models.User{}, err
	}
	return s.users.FindByUsername(ctx, username)
}

// assemblePage assembles responses for a page of posts, resolving
// each distinct author once.
func (s *PostService) assemblePage(ctx context.Context, posts []models.Post, requester string) ([]models.PostResponse, error) {
	authors := make(map[string]models.User)
	responses := make([]models.PostResponse, 0, len(posts))

	for _, post := range posts {
		author, ok := authors[post.Author]
		if !ok {
			var err error
			author, err = s.users.FindByUsername(ctx, post.Author)
			if err != nil {
				return nil, err
			}
			authors[post.Author] = author
		}
		responses = append(responses, s.assembler.AssemblePostResponse(post, author, requester))
	}
	return responses, nil
}
