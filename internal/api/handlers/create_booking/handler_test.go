package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fablab-portal/SchedulingService/internal/api/middleware"
	"github.com/fablab-portal/SchedulingService/internal/domain"
	createBooking "github.com/fablab-portal/SchedulingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	gotReq *createBooking.Request
	resp   *createBooking.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newTestRouter(uc *fakeUseCase) *mux.Router {
	handler := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings", handler.Handle).Methods(http.MethodPost)
	return r
}

func postBooking(router *mux.Router, body string, withUser bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withUser {
		req.Header.Set("X-User-ID", "7")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"kind": "appointment",
	"section": "3D",
	"startDate": "2024-06-01",
	"endDate": "2024-06-03",
	"startTime": "10:00",
	"endTime": "12:00",
	"blocksCalendar": true,
	"title": "printer induction"
}`

func testResponse() *createBooking.Response {
	groupID := uuid.New()
	events := make([]createBooking.Event, 3)
	for i := range events {
		events[i] = createBooking.Event{
			ID:             int64(i + 1),
			Kind:           domain.KindAppointment,
			Section:        "3D",
			Date:           time.Date(2024, 6, 1+i, 0, 0, 0, 0, time.UTC),
			StartTime:      "10:00",
			EndTime:        "12:00",
			BlocksCalendar: true,
			Status:         domain.StatusPending,
			GroupID:        groupID,
			CreatedBy:      7,
		}
	}
	return &createBooking.Response{GroupID: groupID, Events: events}
}

func TestHandleCreatesBooking(t *testing.T) {
	uc := &fakeUseCase{resp: testResponse()}

	rec := postBooking(newTestRouter(uc), validBody, true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uc.resp.GroupID.String(), body.GroupID)
	require.Len(t, body.Events, 3)
	assert.Equal(t, "2024-06-01", body.Events[0].Date)
	assert.Equal(t, "pending", body.Events[0].Status)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(7), uc.gotReq.CreatedBy)
	require.NotNil(t, uc.gotReq.EndDate)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), *uc.gotReq.EndDate)
}

func TestHandleRequiresAuth(t *testing.T) {
	uc := &fakeUseCase{resp: testResponse()}

	rec := postBooking(newTestRouter(uc), validBody, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandleBadBody(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(uc)

	rec := postBooking(router, `{not json`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postBooking(router, `{"kind":"appointment","section":"3D","startDate":"June 1st"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postBooking(router, `{"kind":"appointment","section":"3D","startDate":"2024-06-01","startTime":"10am","blocksCalendar":true}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleConflictNamesFailingDate(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.DayError{
		Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		Err:  createBooking.ErrSlotConflict,
	}}

	rec := postBooking(newTestRouter(uc), validBody, true)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "2024-06-02")
}

func TestHandleErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{createBooking.ErrSectionClosed, http.StatusConflict},
		{createBooking.ErrOutsideWorkingHours, http.StatusBadRequest},
		{createBooking.ErrInvalidDateRange, http.StatusBadRequest},
		{createBooking.ErrRangeTooLong, http.StatusBadRequest},
		{createBooking.ErrMissingTimeRange, http.StatusBadRequest},
		{createBooking.ErrInvalidInput, http.StatusBadRequest},
		{createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := postBooking(newTestRouter(&fakeUseCase{err: tc.err}), validBody, true)
		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
	}
}
