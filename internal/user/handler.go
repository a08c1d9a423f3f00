package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/brtemplate/authgate/internal/auth"
	"github.com/brtemplate/authgate/internal/pkg/document"
	"github.com/brtemplate/authgate/internal/pkg/message"
	"github.com/brtemplate/authgate/internal/pkg/web"
	"github.com/google/uuid"
)

const maskChar = "*"

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type RegisterRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Document  string `json:"document" validate:"required,document"`
	Password  string `json:"password" validate:"required"`
	Birthdate string `json:"birthdate" validate:"required,datetime=2006-01-02"`
	LoginType string `json:"login_type" validate:"required"`
	UserType  string `json:"user_type" validate:"required"`
}

func (r RegisterRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", maskChar),
		slog.String("email", maskChar),
		slog.String("document", maskChar),
		slog.String("password", maskChar),
		slog.String("login_type", r.LoginType),
		slog.String("user_type", r.UserType),
	)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := web.PayloadFromContext[RegisterRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput)
		return
	}

	_, err = h.svc.Register(r.Context(), RegisterParams(req))
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicate):
			web.RespondConflict(w, err, message.EmailTaken)
		case errors.Is(err, document.ErrInvalidDocument), errors.Is(err, ErrInvalidDate):
			web.RespondUnprocessableEntity(w, err, message.InvalidInput)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	web.Respond(w, http.StatusCreated, message.UserRegistered)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

// Login responds with the access token as a bare JSON string.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := web.PayloadFromContext[LoginRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput)
		return
	}

	token, err := h.svc.Login(r.Context(), LoginParams(req))
	if err != nil {
		var authErr *auth.Error
		switch {
		case errors.Is(err, ErrNotFound):
			web.RespondNotFound(w, err, message.UserNotFound)
		case errors.Is(err, ErrNotActive):
			web.RespondForbidden(w, err, message.UserNotActive)
		case errors.Is(err, ErrInvalidPassword):
			web.RespondUnauthorized(w, err, message.InvalidPassword)
		case errors.As(err, &authErr):
			auth.RespondError(w, authErr)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	web.Respond(w, http.StatusOK, token)
}

type UpdateRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Document  string `json:"document" validate:"required,document"`
	Birthdate string `json:"birthdate" validate:"required,datetime=2006-01-02"`
}

func (r UpdateRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", maskChar),
		slog.String("email", maskChar),
		slog.String("document", maskChar),
		slog.String("birthdate", maskChar),
	)
}

// Update changes the profile of the account the verified token belongs to.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, auth.MsgInvalidAuthorizationToken)
		return
	}

	userID, err := uuid.Parse(claims.ID)
	if err != nil {
		web.RespondUnauthorized(w, err, auth.MsgInvalidAuthorizationToken)
		return
	}

	req, err := web.PayloadFromContext[UpdateRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput)
		return
	}

	birthdate, err := parseDate(req.Birthdate)
	if err != nil {
		web.RespondUnprocessableEntity(w, err, message.InvalidInput)
		return
	}

	params := UpdateParams{
		Name:      req.Name,
		Email:     req.Email,
		Document:  req.Document,
		Birthdate: birthdate,
	}
	if err := h.svc.Update(r.Context(), userID, params); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			web.RespondNotFound(w, err, message.UserNotFoundByID)
		case errors.Is(err, ErrDuplicate):
			web.RespondConflict(w, err, message.EmailTaken)
		case errors.Is(err, document.ErrInvalidDocument):
			web.RespondUnprocessableEntity(w, err, message.InvalidInput)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	web.Respond(w, http.StatusOK, message.UserUpdated)
}
