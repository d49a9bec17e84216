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

type PipelineTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	dispatcher *mocks.MockDrainer
	selector   *mocks.MockQueueBuilder
	runState   *mocks.MockRunStateStore

	service *Pipeline
	logger  *slog.Logger
	cfg     config.PipelineConfig
}

func (s *PipelineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.dispatcher = mocks.NewMockDrainer(s.ctrl)
	s.selector = mocks.NewMockQueueBuilder(s.ctrl)
	s.runState = mocks.NewMockRunStateStore(s.ctrl)

	s.cfg = config.PipelineConfig{Name: "breaking_news"}
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewPipeline(s.dispatcher, s.selector, s.runState, s.logger, s.cfg)
}

func (s *PipelineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) TestRun_DrainBuildDrain() {
	ctx := context.Background()

	gomock.InOrder(
		s.dispatcher.EXPECT().Drain(ctx).Return(domain.DrainStats{Delivered: 2, Pages: 1}, nil),
		s.selector.EXPECT().BuildQueue(ctx).Return(5, nil),
		s.dispatcher.EXPECT().Drain(ctx).Return(domain.DrainStats{Delivered: 5, Pages: 1}, nil),
		s.runState.EXPECT().Get(ctx, "breaking_news").Return(&domain.RunState{
			Pipeline:       "breaking_news",
			TotalEnqueued:  10,
			TotalDelivered: 9,
		}, nil),
		s.runState.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, state *domain.RunState) error {
				s.Equal("breaking_news", state.Pipeline)
				s.Equal(int64(15), state.TotalEnqueued)
				s.Equal(int64(16), state.TotalDelivered)
				s.False(state.LastRunAt.IsZero())
				return nil
			},
		),
	)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(2, stats.Leftover)
	s.Equal(5, stats.Enqueued)
	s.Equal(7, stats.Delivered)
	s.Equal(2, stats.Pages)
}

func (s *PipelineTestSuite) TestRun_LeftoverDrainErrorSkipsBuild() {
	ctx := context.Background()

	s.dispatcher.EXPECT().Drain(ctx).Return(domain.DrainStats{}, errors.New("send failed"))

	_, err := s.service.Run(ctx)

	s.Error(err)
	s.Contains(err.Error(), "drain leftover queue")
}

func (s *PipelineTestSuite) TestRun_BuildErrorSkipsSecondDrain() {
	ctx := context.Background()

	s.dispatcher.EXPECT().Drain(ctx).Return(domain.DrainStats{}, nil)
	s.selector.EXPECT().BuildQueue(ctx).Return(3, errors.New("db down"))

	stats, err := s.service.Run(ctx)

	s.Error(err)
	s.Contains(err.Error(), "build queue")
	s.Equal(3, stats.Enqueued)
}

func (s *PipelineTestSuite) TestRun_SecondDrainError() {
	ctx := context.Background()

	gomock.InOrder(
		s.dispatcher.EXPECT().Drain(ctx).Return(domain.DrainStats{}, nil),
		s.selector.EXPECT().BuildQueue(ctx).Return(1, nil),
		s.dispatcher.EXPECT().Drain(ctx).Return(domain.DrainStats{}, errors.New("channel closed")),
	)

	_, err := s.service.Run(ctx)

	s.Error(err)
	s.Contains(err.Error(), "drain queue")
}

func (s *PipelineTestSuite) TestRun_WithoutRunState() {
	ctx := context.Background()
	pipeline := NewPipeline(s.dispatcher, s.selector, nil, s.logger, s.cfg)

	s.dispatcher.EXPECT().Drain(ctx).Return(domain.DrainStats{}, nil).Times(2)
	s.selector.EXPECT().BuildQueue(ctx).Return(0, nil)

	stats, err := pipeline.Run(ctx)

	s.NoError(err)
	s.Zero(stats.Delivered)
}

func (s *PipelineTestSuite) TestRun_RejectsOverlappingRun() {
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})

	s.dispatcher.EXPECT().Drain(ctx).DoAndReturn(func(context.Context) (domain.DrainStats, error) {
		close(started)
		<-release
		return domain.DrainStats{}, nil
	})
	s.dispatcher.EXPECT().Drain(ctx).Return(domain.DrainStats{}, nil)
	s.selector.EXPECT().BuildQueue(ctx).Return(0, nil)
	s.runState.EXPECT().Get(ctx, "breaking_news").Return(&domain.RunState{}, nil)
	s.runState.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.service.Run(ctx)
		done <- err
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		s.FailNow("first run did not start")
	}

	_, err := s.service.Run(ctx)
	s.ErrorIs(err, domain.ErrRunInProgress)

	close(release)
	s.NoError(<-done)
}
