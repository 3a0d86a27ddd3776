//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hall-allocation/internal/domain/hallrequest"
	"hall-allocation/internal/handler/api"
	resdto "hall-allocation/internal/handler/dto/response"
	"hall-allocation/internal/usecase/queries"
	"hall-allocation/tests/common/builder"
	"hall-allocation/tests/common/httptest"
	"hall-allocation/tests/common/testutil"
	commandsmock "hall-allocation/tests/mock/commands"
	queriesmock "hall-allocation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HallRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHallRequestCommands
	mockQueries  *queriesmock.MockHallRequestQueries
	lecturerID   uuid.UUID
}

func (s *HallRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHallRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHallRequestQueries(s.mockCtrl)
	s.lecturerID = uuid.New()
	handler := api.NewHallRequestHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/halls/:id/requests", asActor(s.lecturerID, handler.Create))
	s.router.GET("/lecturer/requests", asActor(s.lecturerID, handler.ListMine))
	s.router.DELETE("/lecturer/requests/:id", asActor(s.lecturerID, handler.Cancel))
	s.router.GET("/admin/requests", handler.ListPending)
}

func (s *HallRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHallRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HallRequestHandlerTestSuite))
}

func (s *HallRequestHandlerTestSuite) TestCreate() {
	hallID := uuid.New()
	url := "/halls/" + hallID.String() + "/requests"
	reqBody := builder.NewHallRequestBuilder().WithHallID(hallID).BuildDTO()

	s.Run("success: returns 201 with the request id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.lecturerID, reqBody.ToInput(hallID)).Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID, response.ID)
	})

	s.Run("error: missing exam title", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("exam_title", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: malformed hall id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/halls/xyz/requests", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: blank exam title from domain", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.lecturerID, gomock.Any()).
			Return(uuid.Nil, hallrequest.ErrExamTitleRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"exam_title": "   "}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "exam title is required")
	})
}

func (s *HallRequestHandlerTestSuite) TestListMine() {
	views := []*queries.HallRequestView{
		builder.NewHallRequestBuilder().WithLecturerID(s.lecturerID).BuildView(),
	}

	s.Run("success: without filter", func() {
		s.mockQueries.EXPECT().ListByLecturer(gomock.Any(), s.lecturerID, "").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lecturer/requests", nil, "")

		var response []resdto.HallRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(s.lecturerID, response[0].LecturerID)
	})

	s.Run("success: with status filter", func() {
		s.mockQueries.EXPECT().ListByLecturer(gomock.Any(), s.lecturerID, "approved").Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lecturer/requests?status=approved", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lecturer/requests?status=done", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *HallRequestHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/lecturer/requests/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.lecturerID, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not found", commandsError: hallrequest.ErrNotFound, expectedStatus: http.StatusNotFound},
			{name: "owned by another lecturer", commandsError: hallrequest.ErrNotOwned, expectedStatus: http.StatusForbidden},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), s.lecturerID, id).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.commandsError.Error())
			})
		}
	})
}

func (s *HallRequestHandlerTestSuite) TestListPending() {
	withoutHall := builder.NewHallRequestBuilder().BuildView()
	withoutHall.Hall = nil
	views := []*queries.HallRequestView{builder.NewHallRequestBuilder().BuildView(), withoutHall}
	s.mockQueries.EXPECT().ListPending(gomock.Any()).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/requests", nil, "")

	var response []resdto.HallRequestResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 2)
	s.Equal("pending", response[0].Status)
	s.Nil(response[1].Hall)
}
