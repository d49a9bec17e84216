package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"breaking_news/internal/config"
	"breaking_news/internal/domain"
	"breaking_news/internal/service/mocks"
)

type SelectorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	users    *mocks.MockUserStore
	articles *mocks.MockArticleStore
	queue    *mocks.MockQueueStore
	observer *mocks.MockObserver

	service *Selector
	cfg     config.PipelineConfig
	logger  *slog.Logger
	now     time.Time
}

func (s *SelectorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.users = mocks.NewMockUserStore(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.queue = mocks.NewMockQueueStore(s.ctrl)
	s.observer = mocks.NewMockObserver(s.ctrl)

	s.cfg = config.PipelineConfig{
		Name:         "test",
		UserPageSize: 2,
	}
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewSelector(s.users, s.articles, s.queue, s.observer, s.logger, s.cfg)
	s.service.newID = func() string { return "item-1" }
	s.service.now = func() time.Time { return s.now }
}

func (s *SelectorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSelectorTestSuite(t *testing.T) {
	suite.Run(t, new(SelectorTestSuite))
}

func testUser(id string) domain.User {
	return domain.User{
		ID:      id,
		Profile: domain.UserProfile{CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func testArticle(id string) domain.Article {
	return domain.Article{
		ID:          id,
		FeedID:      "feed-1",
		Title:       "Title " + id,
		PublishedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		IsPriority:  true,
	}
}

func (s *SelectorTestSuite) TestBuildQueue_EnqueuesEarliestUnread() {
	ctx := context.Background()
	u1, u2 := testUser("u1"), testUser("u2")
	article := testArticle("a1")

	gomock.InOrder(
		s.users.EXPECT().ListActive(ctx, "", 2).Return([]domain.User{u1, u2}, nil),
		s.articles.EXPECT().FindNextUnread(ctx, u1).Return(&article, nil),
		s.queue.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, item *domain.QueuedItem) error {
				s.Equal("item-1", item.ID)
				s.Equal(u1, item.User)
				s.Equal(article, item.Article)
				s.Equal(s.now, item.CreatedAt)
				return nil
			},
		),
		s.observer.EXPECT().Enqueued(),
		s.articles.EXPECT().FindNextUnread(ctx, u2).Return(nil, nil),
		s.users.EXPECT().ListActive(ctx, "u2", 2).Return(nil, nil),
	)

	enqueued, err := s.service.BuildQueue(ctx)

	s.NoError(err)
	s.Equal(1, enqueued)
}

func (s *SelectorTestSuite) TestBuildQueue_FollowsCursorAcrossPages() {
	ctx := context.Background()
	u1, u2, u3 := testUser("u1"), testUser("u2"), testUser("u3")
	article := testArticle("a1")

	gomock.InOrder(
		s.users.EXPECT().ListActive(ctx, "", 2).Return([]domain.User{u1, u2}, nil),
		s.users.EXPECT().ListActive(ctx, "u2", 2).Return([]domain.User{u3}, nil),
		s.users.EXPECT().ListActive(ctx, "u3", 2).Return([]domain.User{}, nil),
	)
	s.articles.EXPECT().FindNextUnread(ctx, gomock.Any()).Return(&article, nil).Times(3)
	s.queue.EXPECT().Insert(ctx, gomock.Any()).Return(nil).Times(3)
	s.observer.EXPECT().Enqueued().Times(3)

	enqueued, err := s.service.BuildQueue(ctx)

	s.NoError(err)
	s.Equal(3, enqueued)
}

func (s *SelectorTestSuite) TestBuildQueue_ListError() {
	ctx := context.Background()

	s.users.EXPECT().ListActive(ctx, "", 2).Return(nil, errors.New("db down"))

	enqueued, err := s.service.BuildQueue(ctx)

	s.Error(err)
	s.Zero(enqueued)
	s.Contains(err.Error(), "list users")
}

func (s *SelectorTestSuite) TestBuildQueue_LookupErrorStopsScan() {
	ctx := context.Background()
	u1, u2 := testUser("u1"), testUser("u2")

	s.users.EXPECT().ListActive(ctx, "", 2).Return([]domain.User{u1, u2}, nil)
	s.articles.EXPECT().FindNextUnread(ctx, u1).Return(nil, errors.New("timeout"))

	_, err := s.service.BuildQueue(ctx)

	s.Error(err)
	s.Contains(err.Error(), "find article for user u1")
}

func (s *SelectorTestSuite) TestBuildQueue_InsertError() {
	ctx := context.Background()
	u1 := testUser("u1")
	article := testArticle("a1")

	s.users.EXPECT().ListActive(ctx, "", 2).Return([]domain.User{u1}, nil)
	s.articles.EXPECT().FindNextUnread(ctx, u1).Return(&article, nil)
	s.queue.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("disk full"))

	enqueued, err := s.service.BuildQueue(ctx)

	s.Error(err)
	s.Zero(enqueued)
	s.Contains(err.Error(), "queue article a1 for user u1")
}

func (s *SelectorTestSuite) TestBuildQueue_CancelledDuringPageDelay() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := s.cfg
	cfg.PageDelay = time.Hour
	selector := NewSelector(s.users, s.articles, s.queue, nil, s.logger, cfg)

	u1 := testUser("u1")
	s.users.EXPECT().ListActive(ctx, "", 2).Return([]domain.User{u1}, nil)
	s.articles.EXPECT().FindNextUnread(ctx, u1).DoAndReturn(
		func(context.Context, domain.User) (*domain.Article, error) {
			cancel()
			return nil, nil
		},
	)

	_, err := selector.BuildQueue(ctx)

	s.ErrorIs(err, context.Canceled)
}
