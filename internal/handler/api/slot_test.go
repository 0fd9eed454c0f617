//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"slot-booking/internal/handler/api"
	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/queries"
	"slot-booking/tests/common/httptest"
	queriesmock "slot-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockSlots   *queriesmock.MockSlotQueries
	mockCatalog *queriesmock.MockCatalogQueries
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSlots = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)

	slots := api.NewSlotHandler(s.mockSlots)
	catalog := api.NewCatalogHandler(s.mockCatalog)
	s.router.GET("/slots", slots.Availability)
	s.router.GET("/slots/check", slots.Check)
	s.router.GET("/locations", catalog.Locations)
	s.router.GET("/packages/:location", catalog.Packages)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestAvailability() {
	s.Run("success: booked map, global list and slot grid", func() {
		view := &queries.AvailabilityView{
			Date:           "2026-03-08",
			Location:       "Surat",
			FormattedDate:  "Sunday, 8 March 2026",
			BookedMap:      map[string][]string{"Gold": {"slot-1"}, "Silver": {}},
			GlobalBookings: []string{"slot-4"},
			TimeSlots:      []queries.TimeSlotView{{ID: "slot-1", Label: "11:00 AM - 1:00 PM", Start: "11:00", End: "13:00"}},
		}
		s.mockSlots.EXPECT().Availability(gomock.Any(), "2026-03-08", "Surat").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?date=2026-03-08&location=Surat", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal([]string{"slot-1"}, response.BookedMap["Gold"])
		s.Equal([]string{"slot-4"}, response.GlobalBookings)
		s.Require().Len(response.TimeSlots, 1)
		s.Equal("13:00", response.TimeSlots[0].End)
	})

	s.Run("error: 400 without date or location", func() {
		for _, query := range []string{"date=2026-03-08", "location=Surat", ""} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?"+query, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "required")
		}
	})

	s.Run("error: unknown location", func() {
		s.mockSlots.EXPECT().Availability(gomock.Any(), "2026-03-08", "Mumbai").
			Return(nil, errs.Mark(errs.Mark(errs.New("Mumbai"), errs.ErrLocationNotFound), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?date=2026-03-08&location=Mumbai", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid location")
	})
}

func (s *SlotHandlerTestSuite) TestCheck() {
	s.Run("success: reports a free slot", func() {
		s.mockSlots.EXPECT().Check(gomock.Any(), "2026-03-08", "Surat", "slot-2", "Gold").
			Return(&queries.SlotCheckView{SlotID: "slot-2", Available: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/slots/check?date=2026-03-08&location=Surat&slotId=slot-2&package=Gold", nil, "")

		var response resdto.SlotCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.False(response.Booked)
	})

	s.Run("success: package is optional", func() {
		s.mockSlots.EXPECT().Check(gomock.Any(), "2026-03-08", "Surat", "slot-2", "").
			Return(&queries.SlotCheckView{SlotID: "slot-2", Booked: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/slots/check?date=2026-03-08&location=Surat&slotId=slot-2", nil, "")

		var response resdto.SlotCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Booked)
	})

	s.Run("error: 400 without slot id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/check?date=2026-03-08&location=Surat", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "slotId required")
	})
}

func (s *SlotHandlerTestSuite) TestCatalog() {
	s.Run("success: lists locations", func() {
		s.mockCatalog.EXPECT().Locations(gomock.Any()).Return([]queries.LocationView{
			{Name: "Surat", Contact: "+91 90000 00001", Address: "Adajan"},
			{Name: "Rajkot", Contact: "+91 90000 00003", Address: "Kalavad Road"},
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/locations", nil, "")

		var response resdto.LocationsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Locations, 2)
		s.Equal("Rajkot", response.Locations[1].Name)
	})

	s.Run("success: packages of a location", func() {
		s.mockCatalog.EXPECT().Packages(gomock.Any(), "Surat").Return(&queries.LocationPackagesView{
			LocationView: queries.LocationView{Name: "Surat"},
			Packages: []queries.PackageView{
				{Name: "Gold", Price: 2499, Popular: true, Features: []string{"Private Theatre"}},
			},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/packages/Surat", nil, "")

		var response resdto.PackagesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Surat", response.Location)
		s.Require().Len(response.Packages, 1)
		s.Equal(int64(2499), response.Packages[0].Price)
		s.True(response.Packages[0].Popular)
	})

	s.Run("error: 404 for unknown location", func() {
		s.mockCatalog.EXPECT().Packages(gomock.Any(), "Mumbai").
			Return(nil, errs.Mark(errs.New("Mumbai"), errs.ErrLocationNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/packages/Mumbai", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Location not found")
	})
}
