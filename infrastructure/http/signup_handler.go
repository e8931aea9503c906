package http

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"session-signup/domain/signup"
	"session-signup/errors"
	"session-signup/services"
)

type SignupHandler struct {
	signupService services.ISignupService
	log           *slog.Logger
	validate      *validator.Validate
}

func NewSignupHandler(log *slog.Logger, signupService services.ISignupService) *SignupHandler {
	return &SignupHandler{
		signupService: signupService,
		log:           log,
		validate:      validator.New(),
	}
}

type createSheetRequest struct {
	// SessionID is optional; admins creating a sheet without one get a
	// generated id back in the response.
	SessionID string `json:"session_id"`
	Capacity  *int   `json:"capacity" validate:"required,gte=0"`
}

type sheetResponse struct {
	SessionID string   `json:"session_id"`
	Status    string   `json:"status"`
	Capacity  int      `json:"capacity"`
	Remaining int      `json:"remaining"`
	Attendees []string `json:"attendees"`
}

type membershipResponse struct {
	SessionID string `json:"session_id"`
	Attendee  string `json:"attendee"`
	SignedUp  bool   `json:"signed_up"`
}

func toSheetResponse(sheet signup.Sheet) sheetResponse {
	signups := sheet.Signups()
	return sheetResponse{
		SessionID: sheet.SessionID().String(),
		Status:    string(sheet.Status()),
		Capacity:  sheet.Capacity(),
		Remaining: sheet.Capacity() - signups.Len(),
		Attendees: lo.Map(signups.IDs(), func(id signup.AttendeeID, _ int) string {
			return id.String()
		}),
	}
}

// CreateSheet is the single admin entry point: it defines the session's
// capacity once, before any attendee can sign up.
func (h *SignupHandler) CreateSheet(c *fiber.Ctx) error {
	var req createSheetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
	}

	sessionID := signup.SessionID(req.SessionID)
	if sessionID == "" {
		sessionID = signup.SessionID(uuid.NewString())
	}

	sheet, err := h.signupService.CreateSheet(c.Context(), sessionID, *req.Capacity)
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSheetResponse(sheet))
}

func (h *SignupHandler) SignUp(c *fiber.Ctx) error {
	sheet, err := h.signupService.SignUp(c.Context(),
		signup.SessionID(c.Params("id")),
		signup.AttendeeID(c.Params("attendee")),
	)
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.JSON(toSheetResponse(sheet))
}

func (h *SignupHandler) CancelSignUp(c *fiber.Ctx) error {
	sheet, err := h.signupService.CancelSignUp(c.Context(),
		signup.SessionID(c.Params("id")),
		signup.AttendeeID(c.Params("attendee")),
	)
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.JSON(toSheetResponse(sheet))
}

func (h *SignupHandler) CloseSignup(c *fiber.Ctx) error {
	sheet, err := h.signupService.CloseSignup(c.Context(), signup.SessionID(c.Params("id")))
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.JSON(toSheetResponse(sheet))
}

func (h *SignupHandler) IsSignedUp(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	attendee := c.Params("attendee")
	signedUp, err := h.signupService.IsSignedUp(c.Context(),
		signup.SessionID(sessionID),
		signup.AttendeeID(attendee),
	)
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.JSON(membershipResponse{
		SessionID: sessionID,
		Attendee:  attendee,
		SignedUp:  signedUp,
	})
}

func (h *SignupHandler) ListSignups(c *fiber.Ctx) error {
	attendees, err := h.signupService.ListSignups(c.Context(), signup.SessionID(c.Params("id")))
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.JSON(fiber.Map{
		"session_id": c.Params("id"),
		"attendees": lo.Map(attendees, func(id signup.AttendeeID, _ int) string {
			return id.String()
		}),
	})
}

func (h *SignupHandler) ListSheets(c *fiber.Ctx) error {
	sheets, err := h.signupService.ListSheets(c.Context())
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.JSON(lo.Map(sheets, func(sheet signup.Sheet, _ int) sheetResponse {
		return toSheetResponse(sheet)
	}))
}
