package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"session-signup/domain/signup"
	"session-signup/errors"
	"session-signup/mocks"
)

func newTestServer(t *testing.T) (*fiber.App, *mocks.MockISignupService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMockISignupService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(logger, mockService), mockService
}

func mustSheet(t *testing.T, id signup.SessionID, status signup.Status, capacity int, attendees ...signup.AttendeeID) signup.Sheet {
	t.Helper()
	sheet, err := signup.RestoreSheet(id, status, capacity, attendees)
	require.NoError(t, err)
	return sheet
}

func decodeSheetResponse(t *testing.T, res *http.Response) sheetResponse {
	t.Helper()
	defer res.Body.Close()
	var body sheetResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}

func TestSignupHandler_CreateSheet(t *testing.T) {
	t.Run("should create a sheet and return 201", func(t *testing.T) {
		req := require.New(t)
		app, mockService := newTestServer(t)

		mockService.EXPECT().
			CreateSheet(gomock.Any(), signup.SessionID("go-conf"), 2).
			Return(mustSheet(t, "go-conf", signup.StatusAvailable, 2), nil)

		request := httptest.NewRequest(http.MethodPost, "/sessions",
			strings.NewReader(`{"session_id":"go-conf","capacity":2}`))
		request.Header.Set("Content-Type", "application/json")

		res, err := app.Test(request)
		req.NoError(err)
		req.Equal(http.StatusCreated, res.StatusCode)

		body := decodeSheetResponse(t, res)
		req.Equal("go-conf", body.SessionID)
		req.Equal("available", body.Status)
		req.Equal(2, body.Remaining)
	})

	t.Run("should generate a session id when none is given", func(t *testing.T) {
		req := require.New(t)
		app, mockService := newTestServer(t)

		mockService.EXPECT().
			CreateSheet(gomock.Any(), gomock.Any(), 1).
			DoAndReturn(func(_ interface{}, id signup.SessionID, capacity int) (signup.Sheet, error) {
				req.NotEmpty(id)
				return mustSheet(t, id, signup.StatusAvailable, capacity), nil
			})

		request := httptest.NewRequest(http.MethodPost, "/sessions",
			strings.NewReader(`{"capacity":1}`))
		request.Header.Set("Content-Type", "application/json")

		res, err := app.Test(request)
		req.NoError(err)
		req.Equal(http.StatusCreated, res.StatusCode)
	})

	t.Run("should reject a body without capacity", func(t *testing.T) {
		req := require.New(t)
		app, mockService := newTestServer(t)
		mockService.EXPECT().CreateSheet(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		request := httptest.NewRequest(http.MethodPost, "/sessions",
			strings.NewReader(`{"session_id":"go-conf"}`))
		request.Header.Set("Content-Type", "application/json")

		res, err := app.Test(request)
		req.NoError(err)
		req.Equal(http.StatusBadRequest, res.StatusCode)
	})

	t.Run("should map a negative capacity to 400", func(t *testing.T) {
		req := require.New(t)
		app, mockService := newTestServer(t)
		mockService.EXPECT().
			CreateSheet(gomock.Any(), signup.SessionID("go-conf"), gomock.Any()).
			Times(0)

		request := httptest.NewRequest(http.MethodPost, "/sessions",
			strings.NewReader(`{"session_id":"go-conf","capacity":-1}`))
		request.Header.Set("Content-Type", "application/json")

		res, err := app.Test(request)
		req.NoError(err)
		req.Equal(http.StatusBadRequest, res.StatusCode)
	})
}

func TestSignupHandler_SignUp(t *testing.T) {
	t.Run("should return the sheet after a successful sign-up", func(t *testing.T) {
		req := require.New(t)
		app, mockService := newTestServer(t)

		mockService.EXPECT().
			SignUp(gomock.Any(), signup.SessionID("s1"), signup.AttendeeID("alice")).
			Return(mustSheet(t, "s1", signup.StatusFull, 1, "alice"), nil)

		res, err := app.Test(httptest.NewRequest(http.MethodPost, "/sessions/s1/signups/alice", nil))
		req.NoError(err)
		req.Equal(http.StatusOK, res.StatusCode)

		body := decodeSheetResponse(t, res)
		req.Equal("full", body.Status)
		req.Equal(0, body.Remaining)
		req.Equal([]string{"alice"}, body.Attendees)
	})

	t.Run("should map a full session to 409", func(t *testing.T) {
		req := require.New(t)
		app, mockService := newTestServer(t)

		mockService.EXPECT().
			SignUp(gomock.Any(), signup.SessionID("s1"), signup.AttendeeID("bob")).
			Return(nil, errors.ErrSessionFull)

		res, err := app.Test(httptest.NewRequest(http.MethodPost, "/sessions/s1/signups/bob", nil))
		req.NoError(err)
		req.Equal(http.StatusConflict, res.StatusCode)
	})

	t.Run("should map a closed session to 409", func(t *testing.T) {
		req := require.New(t)
		app, mockService := newTestServer(t)

		mockService.EXPECT().
			SignUp(gomock.Any(), signup.SessionID("s1"), signup.AttendeeID("bob")).
			Return(nil, errors.ErrSignupClosed)

		res, err := app.Test(httptest.NewRequest(http.MethodPost, "/sessions/s1/signups/bob", nil))
		req.NoError(err)
		req.Equal(http.StatusConflict, res.StatusCode)
	})

	t.Run("should map an unknown session to 404", func(t *testing.T) {
		req := require.New(t)
		app, mockService := newTestServer(t)

		mockService.EXPECT().
			SignUp(gomock.Any(), signup.SessionID("nope"), signup.AttendeeID("bob")).
			Return(nil, errors.ErrUnknownSession)

		res, err := app.Test(httptest.NewRequest(http.MethodPost, "/sessions/nope/signups/bob", nil))
		req.NoError(err)
		req.Equal(http.StatusNotFound, res.StatusCode)
	})
}

func TestSignupHandler_CancelSignUp(t *testing.T) {
	req := require.New(t)
	app, mockService := newTestServer(t)

	mockService.EXPECT().
		CancelSignUp(gomock.Any(), signup.SessionID("s1"), signup.AttendeeID("alice")).
		Return(mustSheet(t, "s1", signup.StatusAvailable, 2, "bob"), nil)

	res, err := app.Test(httptest.NewRequest(http.MethodDelete, "/sessions/s1/signups/alice", nil))
	req.NoError(err)
	req.Equal(http.StatusOK, res.StatusCode)

	body := decodeSheetResponse(t, res)
	req.Equal("available", body.Status)
	req.Equal([]string{"bob"}, body.Attendees)
}

func TestSignupHandler_CloseSignup(t *testing.T) {
	req := require.New(t)
	app, mockService := newTestServer(t)

	mockService.EXPECT().
		CloseSignup(gomock.Any(), signup.SessionID("s1")).
		Return(mustSheet(t, "s1", signup.StatusClosed, 2, "alice"), nil)

	res, err := app.Test(httptest.NewRequest(http.MethodPost, "/sessions/s1/close", nil))
	req.NoError(err)
	req.Equal(http.StatusOK, res.StatusCode)

	body := decodeSheetResponse(t, res)
	req.Equal("closed", body.Status)
}

func TestSignupHandler_IsSignedUp(t *testing.T) {
	req := require.New(t)
	app, mockService := newTestServer(t)

	mockService.EXPECT().
		IsSignedUp(gomock.Any(), signup.SessionID("s1"), signup.AttendeeID("alice")).
		Return(true, nil)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/sessions/s1/signups/alice", nil))
	req.NoError(err)
	req.Equal(http.StatusOK, res.StatusCode)

	defer res.Body.Close()
	var body membershipResponse
	req.NoError(json.NewDecoder(res.Body).Decode(&body))
	req.True(body.SignedUp)
	req.Equal("alice", body.Attendee)
}

func TestSignupHandler_ListSignups(t *testing.T) {
	req := require.New(t)
	app, mockService := newTestServer(t)

	mockService.EXPECT().
		ListSignups(gomock.Any(), signup.SessionID("s1")).
		Return([]signup.AttendeeID{"alice", "bob"}, nil)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/sessions/s1/signups", nil))
	req.NoError(err)
	req.Equal(http.StatusOK, res.StatusCode)

	defer res.Body.Close()
	var body struct {
		SessionID string   `json:"session_id"`
		Attendees []string `json:"attendees"`
	}
	req.NoError(json.NewDecoder(res.Body).Decode(&body))
	req.Equal([]string{"alice", "bob"}, body.Attendees)
}

func TestSignupHandler_ListSheets(t *testing.T) {
	req := require.New(t)
	app, mockService := newTestServer(t)

	mockService.EXPECT().
		ListSheets(gomock.Any()).
		Return([]signup.Sheet{
			mustSheet(t, "s1", signup.StatusAvailable, 2),
			mustSheet(t, "s2", signup.StatusClosed, 1, "alice"),
		}, nil)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/sessions", nil))
	req.NoError(err)
	req.Equal(http.StatusOK, res.StatusCode)

	defer res.Body.Close()
	var body []sheetResponse
	req.NoError(json.NewDecoder(res.Body).Decode(&body))
	req.Len(body, 2)
}
