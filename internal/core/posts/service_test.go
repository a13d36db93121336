package posts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing

type mockPostRepo struct {
	posts          map[int64]*Post
	nextID         int64
	setStatusCalls int
	lastSort       string
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[int64]*Post), nextID: 1}
}

func (m *mockPostRepo) Create(ctx context.Context, post *Post) (*Post, error) {
	p := *post
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	m.nextID++
	m.posts[p.ID] = &p
	return &p, nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*Post, error) {
	if p, ok := m.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, ErrPostNotFound
}

func (m *mockPostRepo) SetStatus(ctx context.Context, id int64, status Status) (*Post, error) {
	m.setStatusCalls++
	p, ok := m.posts[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	p.Status = status
	cp := *p
	return &cp, nil
}

func (m *mockPostRepo) IncrementViews(ctx context.Context, id int64) (*Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	p.ViewCount++
	cp := *p
	return &cp, nil
}

func (m *mockPostRepo) UpdateContent(ctx context.Context, post *Post) (*Post, error) {
	p, ok := m.posts[post.ID]
	if !ok {
		return nil, ErrPostNotFound
	}
	p.Title = post.Title
	p.Content = post.Content
	p.Category = post.Category
	cp := *p
	return &cp, nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.posts[id]; !ok {
		return ErrPostNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) ListVisible(ctx context.Context, callerID *int64, sort string) ([]*Post, error) {
	m.lastSort = sort
	var result []*Post
	for _, p := range m.posts {
		if p.Status == StatusApproved || (callerID != nil && p.AuthorID == *callerID) {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (m *mockPostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error) {
	var result []*Post
	for _, p := range m.posts {
		if p.AuthorID == authorID {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (m *mockPostRepo) ListByStatus(ctx context.Context, status Status) ([]*Post, error) {
	var result []*Post
	for _, p := range m.posts {
		if p.Status == status {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

// mockCaps treats a fixed set of user ids as moderators
type mockCaps struct {
	moderators map[int64]bool
}

func (m *mockCaps) CanModerate(ctx context.Context, userID int64) (bool, error) {
	return m.moderators[userID], nil
}

func newTestPostService() (Service, *mockPostRepo) {
	repo := newMockPostRepo()
	caps := &mockCaps{moderators: map[int64]bool{99: true}}
	return NewService(repo, caps, nil), repo
}

func TestPostService_Submit_MemberStartsPending(t *testing.T) {
	service, _ := newTestPostService()

	post, err := service.Submit(context.Background(), SubmitRequest{
		Title:    "Lost dog near the park",
		Content:  "Golden retriever, answers to Max",
		AuthorID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusPending, post.Status)
	assert.Equal(t, int64(1), post.AuthorID)
}

func TestPostService_Submit_ModeratorAutoApproved(t *testing.T) {
	service, _ := newTestPostService()

	post, err := service.Submit(context.Background(), SubmitRequest{
		Title:    "Community guidelines",
		Content:  "Please keep it civil",
		AuthorID: 99,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusApproved, post.Status)
}

func TestPostService_Submit_ValidatesTitleAndContent(t *testing.T) {
	service, _ := newTestPostService()

	_, err := service.Submit(context.Background(), SubmitRequest{
		Title:    "   ",
		Content:  "body",
		AuthorID: 1,
	})
	assert.True(t, IsValidationError(err))

	_, err = service.Submit(context.Background(), SubmitRequest{
		Title:    "title",
		Content:  "",
		AuthorID: 1,
	})
	assert.True(t, IsValidationError(err))
}

func TestPostService_Approve_PendingPost(t *testing.T) {
	service, _ := newTestPostService()

	post, err := service.Submit(context.Background(), SubmitRequest{
		Title: "t", Content: "c", AuthorID: 1,
	})
	require.NoError(t, err)

	approved, err := service.Approve(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)
}

func TestPostService_Approve_RepeatDecisionIsNoOp(t *testing.T) {
	service, repo := newTestPostService()

	post, err := service.Submit(context.Background(), SubmitRequest{
		Title: "t", Content: "c", AuthorID: 1,
	})
	require.NoError(t, err)

	_, err = service.Approve(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.setStatusCalls)

	// Second approval returns the post unchanged without another write
	again, err := service.Approve(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, again.Status)
	assert.Equal(t, 1, repo.setStatusCalls)
}

func TestPostService_Reject_AfterApproveReverses(t *testing.T) {
	service, _ := newTestPostService()

	post, err := service.Submit(context.Background(), SubmitRequest{
		Title: "t", Content: "c", AuthorID: 1,
	})
	require.NoError(t, err)

	_, err = service.Approve(context.Background(), post.ID)
	require.NoError(t, err)

	// A moderator can still move a decided post to the other terminal state
	rejected, err := service.Reject(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, rejected.Status)
}

func TestPostService_Approve_UnknownPost(t *testing.T) {
	service, _ := newTestPostService()

	_, err := service.Approve(context.Background(), 12345)
	assert.True(t, IsNotFound(err))
}

func TestPostService_RecordView_IncrementsByOne(t *testing.T) {
	service, _ := newTestPostService()

	post, err := service.Submit(context.Background(), SubmitRequest{
		Title: "t", Content: "c", AuthorID: 1,
	})
	require.NoError(t, err)

	viewed, err := service.RecordView(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, viewed.ViewCount)

	viewed, err = service.RecordView(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, viewed.ViewCount)
}

func TestPostService_ListVisible_UnknownSortFallsBack(t *testing.T) {
	service, repo := newTestPostService()

	_, err := service.ListVisible(context.Background(), nil, "sideways")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, repo.lastSort)

	_, err = service.ListVisible(context.Background(), nil, SortPopular)
	require.NoError(t, err)
	assert.Equal(t, SortPopular, repo.lastSort)
}

func TestPostService_ListVisible_CallerSeesOwnPendingPosts(t *testing.T) {
	service, _ := newTestPostService()

	mine, err := service.Submit(context.Background(), SubmitRequest{
		Title: "mine", Content: "pending", AuthorID: 1,
	})
	require.NoError(t, err)
	_, err = service.Submit(context.Background(), SubmitRequest{
		Title: "theirs", Content: "also pending", AuthorID: 2,
	})
	require.NoError(t, err)

	anon, err := service.ListVisible(context.Background(), nil, SortNewest)
	require.NoError(t, err)
	assert.Empty(t, anon)

	visible, err := service.ListVisible(context.Background(), &mine.AuthorID, SortNewest)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, mine.ID, visible[0].ID)
}

func TestPostService_Update_AuthorOnly(t *testing.T) {
	service, _ := newTestPostService()

	post, err := service.Submit(context.Background(), SubmitRequest{
		Title: "original", Content: "body", Category: "dogs", AuthorID: 1,
	})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), post.ID, 2, UpdateRequest{
		Title: "hijacked", Content: "body",
	})
	assert.True(t, IsForbidden(err))

	// Moderators don't get edit rights either
	_, err = service.Update(context.Background(), post.ID, 99, UpdateRequest{
		Title: "hijacked", Content: "body",
	})
	assert.True(t, IsForbidden(err))

	updated, err := service.Update(context.Background(), post.ID, 1, UpdateRequest{
		Title: "fixed", Content: "new body",
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed", updated.Title)
	// Nil category leaves the stored value untouched
	assert.Equal(t, "dogs", updated.Category)
}

func TestPostService_Delete_AuthorOrModerator(t *testing.T) {
	service, _ := newTestPostService()
	ctx := context.Background()

	post, err := service.Submit(ctx, SubmitRequest{Title: "t", Content: "c", AuthorID: 1})
	require.NoError(t, err)

	err = service.Delete(ctx, post.ID, 2)
	assert.True(t, IsForbidden(err))

	err = service.Delete(ctx, post.ID, 99)
	require.NoError(t, err)

	post, err = service.Submit(ctx, SubmitRequest{Title: "t2", Content: "c", AuthorID: 1})
	require.NoError(t, err)

	err = service.Delete(ctx, post.ID, 1)
	require.NoError(t, err)

	_, err = service.Get(ctx, post.ID)
	assert.True(t, IsNotFound(err))
}
