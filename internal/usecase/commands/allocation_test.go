//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hall-allocation/internal/domain/hall"
	"hall-allocation/internal/domain/hallrequest"
	"hall-allocation/internal/infra"
	"hall-allocation/internal/pkg/clock"
	"hall-allocation/internal/pkg/config"
	"hall-allocation/internal/pkg/errs"
	"hall-allocation/internal/usecase/commands"
	"hall-allocation/internal/usecase/shared"
	"hall-allocation/tests/common/builder"
	sharedmock "hall-allocation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

// txMocks wires a mocked unit of work whose Within runs the callback against
// mocked repositories.
type txMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	halls    *sharedmock.MockHallRepository
	requests *sharedmock.MockHallRequestRepository
	users    *sharedmock.MockUserRepository
}

func newTxMocks(ctrl *gomock.Controller) txMocks {
	m := txMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		halls:    sharedmock.NewMockHallRepository(ctrl),
		requests: sharedmock.NewMockHallRequestRepository(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
	}
	m.tx.EXPECT().Halls().Return(m.halls).AnyTimes()
	m.tx.EXPECT().HallRequests().Return(m.requests).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}

func (m txMocks) expectWithin() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

func notFound() error {
	return infra.WrapRepoErr("row not found", nil, infra.KindNotFound)
}

type AllocationCommandsSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mocks     txMocks
	publisher *sharedmock.MockEventPublisher
	cache     *sharedmock.MockHallCacheInvalidator
	adminID   uuid.UUID
}

func TestAllocationCommandsSuite(t *testing.T) {
	suite.Run(t, new(AllocationCommandsSuite))
}

func (s *AllocationCommandsSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mocks = newTxMocks(s.ctrl)
	s.publisher = sharedmock.NewMockEventPublisher(s.ctrl)
	s.cache = sharedmock.NewMockHallCacheInvalidator(s.ctrl)
	s.adminID = uuid.New()
}

func (s *AllocationCommandsSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AllocationCommandsSuite) newCommands(allowOverwrite bool) commands.AllocationCommands {
	cfg := config.NewTestConfig()
	cfg.Allocation.AllowOverwrite = allowOverwrite
	return commands.NewAllocationCommands(s.mocks.uow, clock.NewMockClock(testNow), s.publisher, s.cache, cfg)
}

func (s *AllocationCommandsSuite) TestApprove() {
	s.Run("保留中の申請を承認するとホールが割り当てられる", func() {
		h, err := builder.NewHallBuilder().BuildDomain()
		s.Require().NoError(err)
		examDate := testNow.Add(7 * 24 * time.Hour)
		req, err := builder.NewHallRequestBuilder().WithHallID(h.ID()).WithExamDate(examDate).BuildDomain()
		s.Require().NoError(err)

		s.mocks.expectWithin()
		s.mocks.requests.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		s.mocks.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), h.ID()).Return(h, nil)
		s.mocks.halls.EXPECT().UpdateAllocation(gomock.Any(), gomock.Any(), h).
			DoAndReturn(func(_ context.Context, _ any, saved *hall.Hall) error {
				s.Equal(hall.StatusAllocated, saved.Status())
				s.Equal(req.LecturerID(), saved.Allocation().LecturerID())
				s.Equal("Midterm", saved.Allocation().ExamTitle())
				s.Equal(&examDate, saved.Allocation().ExamDate())
				s.Equal(testNow, saved.Allocation().AllocatedAt())
				return nil
			})
		s.mocks.requests.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), req).
			DoAndReturn(func(_ context.Context, _ any, saved *hallrequest.HallRequest) error {
				s.Equal(hallrequest.StatusApproved, saved.Status())
				return nil
			})
		s.cache.EXPECT().InvalidateHalls(gomock.Any()).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e shared.AllocationEvent) error {
				s.Equal(shared.EventHallAllocated, e.Type)
				s.Equal(h.ID(), e.HallID)
				s.Equal("Room A", e.HallName)
				s.Equal(s.adminID, e.ActorID)
				s.Require().NotNil(e.RequestID)
				s.Equal(req.ID(), *e.RequestID)
				s.Equal(testNow, e.OccurredAt)
				return nil
			})

		res, err := s.newCommands(false).Approve(context.Background(), s.adminID, req.ID())

		s.Require().NoError(err)
		s.Equal(&commands.ApproveResult{RequestID: req.ID(), HallID: h.ID(), LecturerID: req.LecturerID()}, res)
	})

	s.Run("割当済みホールへの承認はCONFLICTで何も変更しない", func() {
		h, err := builder.NewHallBuilder().AllocatedTo(uuid.New(), "Finals").BuildDomain()
		s.Require().NoError(err)
		req, err := builder.NewHallRequestBuilder().WithHallID(h.ID()).BuildDomain()
		s.Require().NoError(err)

		s.mocks.expectWithin()
		s.mocks.requests.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		s.mocks.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), h.ID()).Return(h, nil)

		res, err := s.newCommands(false).Approve(context.Background(), s.adminID, req.ID())

		s.Nil(res)
		s.ErrorIs(err, hall.ErrAlreadyAllocated)
		s.Equal("CONFLICT", errs.KindName(err))
		s.Equal(hallrequest.StatusPending, req.Status())
	})

	s.Run("上書き許可時は割当済みホールでも承認できる", func() {
		h, err := builder.NewHallBuilder().AllocatedTo(uuid.New(), "Finals").BuildDomain()
		s.Require().NoError(err)
		req, err := builder.NewHallRequestBuilder().WithHallID(h.ID()).BuildDomain()
		s.Require().NoError(err)

		s.mocks.expectWithin()
		s.mocks.requests.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		s.mocks.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), h.ID()).Return(h, nil)
		s.mocks.halls.EXPECT().UpdateAllocation(gomock.Any(), gomock.Any(), h).Return(nil)
		s.mocks.requests.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), req).Return(nil)
		s.cache.EXPECT().InvalidateHalls(gomock.Any()).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		_, err = s.newCommands(true).Approve(context.Background(), s.adminID, req.ID())

		s.Require().NoError(err)
		s.Equal(req.LecturerID(), h.Allocation().LecturerID())
		s.Equal("Midterm", h.Allocation().ExamTitle())
	})

	s.Run("保留中でない申請はCONFLICT", func() {
		req, err := builder.NewHallRequestBuilder().WithStatus("approved").BuildDomain()
		s.Require().NoError(err)

		s.mocks.expectWithin()
		s.mocks.requests.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)

		_, err = s.newCommands(false).Approve(context.Background(), s.adminID, req.ID())

		s.ErrorIs(err, hallrequest.ErrNotPending)
	})

	s.Run("存在しない申請はNOT_FOUND", func() {
		id := uuid.New()

		s.mocks.expectWithin()
		s.mocks.requests.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFound())

		_, err := s.newCommands(false).Approve(context.Background(), s.adminID, id)

		s.ErrorIs(err, hallrequest.ErrNotFound)
		s.Equal("NOT_FOUND", errs.KindName(err))
	})

	s.Run("削除済みホールへの申請はNOT_FOUND", func() {
		req, err := builder.NewHallRequestBuilder().BuildDomain()
		s.Require().NoError(err)

		s.mocks.expectWithin()
		s.mocks.requests.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		s.mocks.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.HallID()).Return(nil, notFound())

		_, err = s.newCommands(false).Approve(context.Background(), s.adminID, req.ID())

		s.ErrorIs(err, hall.ErrNotFound)
	})

	s.Run("コミット後の通知失敗は承認を失敗させない", func() {
		h, err := builder.NewHallBuilder().BuildDomain()
		s.Require().NoError(err)
		req, err := builder.NewHallRequestBuilder().WithHallID(h.ID()).BuildDomain()
		s.Require().NoError(err)

		s.mocks.expectWithin()
		s.mocks.requests.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		s.mocks.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), h.ID()).Return(h, nil)
		s.mocks.halls.EXPECT().UpdateAllocation(gomock.Any(), gomock.Any(), h).Return(nil)
		s.mocks.requests.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), req).Return(nil)
		s.cache.EXPECT().InvalidateHalls(gomock.Any()).Return(assert.AnError)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(assert.AnError)

		res, err := s.newCommands(false).Approve(context.Background(), s.adminID, req.ID())

		s.NoError(err)
		s.NotNil(res)
	})
}

func (s *AllocationCommandsSuite) TestDeallocate() {
	s.Run("割当済みホールを解除し承認済み申請を削除する", func() {
		lecturerID := uuid.New()
		h, err := builder.NewHallBuilder().AllocatedTo(lecturerID, "Midterm").BuildDomain()
		s.Require().NoError(err)

		s.mocks.expectWithin()
		s.mocks.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), h.ID()).Return(h, nil)
		s.mocks.halls.EXPECT().UpdateAllocation(gomock.Any(), gomock.Any(), h).
			DoAndReturn(func(_ context.Context, _ any, saved *hall.Hall) error {
				s.Equal(hall.StatusAvailable, saved.Status())
				s.Nil(saved.Allocation())
				return nil
			})
		s.mocks.requests.EXPECT().DeleteAllForHallWithStatus(gomock.Any(), gomock.Any(), h.ID(), hallrequest.StatusApproved).Return(int64(2), nil)
		s.cache.EXPECT().InvalidateHalls(gomock.Any()).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e shared.AllocationEvent) error {
				s.Equal(shared.EventHallDeallocated, e.Type)
				s.Require().NotNil(e.LecturerID)
				s.Equal(lecturerID, *e.LecturerID)
				s.Require().NotNil(e.PurgedRequests)
				s.Equal(int64(2), *e.PurgedRequests)
				return nil
			})

		res, err := s.newCommands(false).Deallocate(context.Background(), s.adminID, h.ID())

		s.Require().NoError(err)
		s.Equal(&commands.DeallocateResult{HallID: h.ID(), PurgedRequests: 2}, res)
	})

	s.Run("空きホールの解除も成功し承認済み申請は削除される", func() {
		h, err := builder.NewHallBuilder().BuildDomain()
		s.Require().NoError(err)

		s.mocks.expectWithin()
		s.mocks.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), h.ID()).Return(h, nil)
		s.mocks.requests.EXPECT().DeleteAllForHallWithStatus(gomock.Any(), gomock.Any(), h.ID(), hallrequest.StatusApproved).Return(int64(1), nil)
		s.cache.EXPECT().InvalidateHalls(gomock.Any()).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		res, err := s.newCommands(false).Deallocate(context.Background(), s.adminID, h.ID())

		s.Require().NoError(err)
		s.Equal(int64(1), res.PurgedRequests)
	})

	s.Run("存在しないホールはNOT_FOUND", func() {
		id := uuid.New()

		s.mocks.expectWithin()
		s.mocks.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFound())

		res, err := s.newCommands(false).Deallocate(context.Background(), s.adminID, id)

		s.Nil(res)
		s.ErrorIs(err, hall.ErrNotFound)
	})

	s.Run("削除失敗はロールバックされ通知しない", func() {
		h, err := builder.NewHallBuilder().AllocatedTo(uuid.New(), "Midterm").BuildDomain()
		s.Require().NoError(err)

		s.mocks.expectWithin()
		s.mocks.halls.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), h.ID()).Return(h, nil)
		s.mocks.halls.EXPECT().UpdateAllocation(gomock.Any(), gomock.Any(), h).Return(nil)
		s.mocks.requests.EXPECT().DeleteAllForHallWithStatus(gomock.Any(), gomock.Any(), h.ID(), hallrequest.StatusApproved).
			Return(int64(0), assert.AnError)

		_, err = s.newCommands(false).Deallocate(context.Background(), s.adminID, h.ID())

		s.ErrorIs(err, assert.AnError)
	})
}

func TestApproveRequiresPendingAcrossStatuses(t *testing.T) {
	for _, status := range []string{"approved", "rejected"} {
		t.Run(status, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			m.expectWithin()

			req, err := builder.NewHallRequestBuilder().WithStatus(status).BuildDomain()
			require.NoError(t, err)
			m.requests.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)

			uc := commands.NewAllocationCommands(m.uow, clock.NewMockClock(testNow),
				sharedmock.NewMockEventPublisher(ctrl), sharedmock.NewMockHallCacheInvalidator(ctrl), config.NewTestConfig())

			_, err = uc.Approve(context.Background(), uuid.New(), req.ID())
			assert.ErrorIs(t, err, hallrequest.ErrNotPending)
		})
	}
}
