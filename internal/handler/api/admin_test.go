//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"slot-booking/internal/domain/order"
	"slot-booking/internal/handler/api"
	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/cookie"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"
	"slot-booking/tests/common/builder"
	"slot-booking/tests/common/httptest"
	"slot-booking/tests/common/testutil"
	commandsmock "slot-booking/tests/mock/commands"
	queriesmock "slot-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockAuth    *commandsmock.MockAuthCommands
	mockBooking *commandsmock.MockBookingCommands
	mockOrders  *queriesmock.MockOrderQueries
	mockSlots   *queriesmock.MockSlotQueries
	mockStats   *queriesmock.MockStatsQueries
	handler     *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockBooking = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockOrders = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.mockSlots = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.mockStats = queriesmock.NewMockStatsQueries(s.mockCtrl)

	// 20:00 UTC is already the next day in Asia/Kolkata.
	clk := clock.NewMockClock(time.Date(2026, 2, 28, 20, 0, 0, 0, time.UTC))
	s.handler = api.NewAdminHandler(s.mockAuth, s.mockBooking, s.mockOrders, s.mockSlots, s.mockStats, clk, config.NewTestConfig())

	s.router.POST("/admin/login", s.handler.Login)
	s.router.POST("/admin/logout", s.handler.Logout)
	s.router.GET("/admin/orders", s.handler.ListOrders)
	s.router.PUT("/admin/orders/:orderId/status", s.handler.UpdateStatus)
	s.router.GET("/admin/stats", s.handler.Stats)
	s.router.GET("/admin/slots", s.handler.Slots)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestLogin() {
	url := "/admin/login"
	reqBody := map[string]any{"username": "admin", "password": "secret"}

	s.Run("success: returns the token and sets the cookie", func() {
		s.mockAuth.EXPECT().AdminLogin(gomock.Any(), "admin", "secret").
			Return(&commands.AdminToken{Token: "signed-token", ExpiresIn: time.Hour}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AdminLoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-token", response.Token)
		s.Equal(int64(3600), response.ExpiresIn)

		c := httptest.ExtractCookie(rec, cookie.AdminTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("signed-token", c.Value)
		s.True(c.HttpOnly)
		s.Equal("/api/admin", c.Path)
	})

	s.Run("error: 401 on wrong credentials", func() {
		s.mockAuth.EXPECT().AdminLogin(gomock.Any(), "admin", "secret").
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials")
		s.Nil(httptest.ExtractCookie(rec, cookie.AdminTokenCookieName))
	})

	s.Run("error: 500 when signing fails", func() {
		s.mockAuth.EXPECT().AdminLogin(gomock.Any(), "admin", "secret").
			Return(nil, commands.ErrTokenGeneration).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Login failed")
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"username", "password"} {
			requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "required")
		}
	})
}

func (s *AdminHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	c := httptest.ExtractCookie(rec, cookie.AdminTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Negative(c.MaxAge)
}

func (s *AdminHandlerTestSuite) TestListOrders() {
	s.Run("success: passes the filter through", func() {
		view := builder.NewOrderBuilder().BuildView(order.StatusConfirmed)
		s.mockOrders.EXPECT().ListAll(gomock.Any(), queries.OrderFilter{Status: "confirmed", Limit: 10}).
			Return([]*queries.OrderView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/orders?status=confirmed&limit=10", nil, "")

		var response resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Count)
		s.Equal(view.OrderID, response.Orders[0].OrderID)
	})

	s.Run("success: no filter", func() {
		s.mockOrders.EXPECT().ListAll(gomock.Any(), queries.OrderFilter{}).Return([]*queries.OrderView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/orders", nil, "")

		var response resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Zero(response.Count)
		s.NotNil(response.Orders)
	})

	s.Run("error: 400 on invalid filter", func() {
		for _, query := range []string{"status=shipped", "limit=-1", "limit=501"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/orders?"+query, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
		}
	})
}

func (s *AdminHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewOrderBuilder().BuildView(order.StatusConfirmed)
	url := "/admin/orders/" + view.OrderID + "/status"

	s.Run("success: returns the updated order", func() {
		s.mockBooking.EXPECT().AdminSetStatus(gomock.Any(), view.OrderID, "confirmed").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "confirmed"}, "")

		var response resdto.OrderEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Order.Status)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "refunded"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})

	s.Run("error: usecase failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"unknown order", errs.Mark(errs.New("no rows"), errs.ErrOrderNotFound), http.StatusNotFound},
			{"lost every race", errs.Mark(errs.New("status changed"), errs.ErrConcurrentOrderEdit), http.StatusConflict},
			{"database down", errs.Mark(errs.New("timeout"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockBooking.EXPECT().AdminSetStatus(gomock.Any(), view.OrderID, "cancelled").Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "cancelled"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestStats() {
	stats := &queries.StatsView{
		TotalOrders:     4,
		ConfirmedOrders: 2,
		Revenue:         4998,
		ByLocation:      []queries.CountView{{Label: "Surat", Total: 4}},
	}
	s.mockStats.EXPECT().Dashboard(gomock.Any()).Return(stats, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats", nil, "")

	var response resdto.StatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(stats, response.Stats)
}

func (s *AdminHandlerTestSuite) TestSlots() {
	booked := []*queries.BookedSlotView{
		{Date: "2026-03-01", Location: "Surat", Package: "Gold", SlotIDs: []string{"slot-1"}},
		{Date: "2026-03-02", Location: "Rajkot", Global: true, SlotIDs: []string{"slot-3"}},
	}

	s.Run("success: defaults to today in the business time zone", func() {
		s.mockSlots.EXPECT().ListBooked(gomock.Any(), "2026-03-01").Return(booked, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/slots", nil, "")

		var response resdto.BookedSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Count)
		s.True(response.Slots[1].Global)
	})

	s.Run("success: explicit from", func() {
		s.mockSlots.EXPECT().ListBooked(gomock.Any(), "2026-01-01").Return(booked[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/slots?from=2026-01-01", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed from", func() {
		s.mockSlots.EXPECT().ListBooked(gomock.Any(), "yesterday").
			Return(nil, errs.Mark(errs.New("bad date"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/slots?from=yesterday", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
