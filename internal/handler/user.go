package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/soyummy/cookbook-api/internal/config"
	"github.com/soyummy/cookbook-api/internal/middleware"
	"github.com/soyummy/cookbook-api/internal/queue"
	"github.com/soyummy/cookbook-api/internal/repository"
	"github.com/soyummy/cookbook-api/internal/service"
	"github.com/soyummy/cookbook-api/internal/utils"
)

// UserHandler bundles dependencies for account endpoints.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
	Mail  *service.MailPublisher
}

func NewUserHandler(cfg config.Config, users *repository.UserRepo, mail *service.MailPublisher) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users, Mail: mail}
}

// ----- DTOs -----

type registerReq struct {
	Name       string `json:"name" validate:"required,min=3,max=50,alphanum"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,userpassword"`
	Newsletter bool   `json:"newsletter"`
}
type signInReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
type updateNameReq struct {
	Name string `json:"name" validate:"required,min=3,max=50,alphanum"`
}

type userPart struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Register creates the account plus its empty shopping list, signs the caller
// in immediately and queues the verification mail.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	verifyToken, err := utils.NewVerificationToken()
	if err != nil {
		return internalError(c)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, verifyToken,
		req.Newsletter, h.Cfg.BcryptCost, h.Cfg.BasicAvatarURL())
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{
				"status":  "error",
				"code":    http.StatusConflict,
				"message": "Email is already in use",
				"data":    "Conflict",
			})
		}
		return internalError(c)
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, h.Cfg.AccessTTLMin)
	if err != nil {
		return internalError(c)
	}
	if err := h.Users.SetToken(ctx, uid, access.Token); err != nil {
		return internalError(c)
	}

	// Best effort: a broker outage costs the mail, not the registration.
	if h.Mail != nil {
		_ = h.Mail.PublishVerification(queue.VerificationMailEvent{
			UserID:      uid,
			Name:        req.Name,
			Email:       req.Email,
			VerifyURL:   h.Cfg.PublicBaseURL + "/users/verify/" + verifyToken,
			RequestedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"status":  "success",
		"code":    http.StatusCreated,
		"message": "User created",
		"token":   access.Token,
		"user": userPart{
			Name:   req.Name,
			Email:  req.Email,
			Avatar: h.Cfg.BasicAvatarURL(),
		},
	})
}

// SignIn verifies credentials, issues a fresh token and persists it as the
// only live session token for the account.
func (h *UserHandler) SignIn(c echo.Context) error {
	var req signInReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, http.StatusUnauthorized, "Incorrect email or password")
		}
		return internalError(c)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return fail(c, http.StatusUnauthorized, "Incorrect email or password")
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return internalError(c)
	}
	if err := h.Users.SetToken(ctx, u.ID, access.Token); err != nil {
		return internalError(c)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "OK",
		"code":   http.StatusOK,
		"token":  access.Token,
		"user":   userPart{Name: u.Name, Email: u.Email, Avatar: u.Avatar},
	})
}

// Logout nulls the stored session token; the bearer token stops working on
// every protected route from here on.
func (h *UserHandler) Logout(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Users.ClearToken(ctx, u.ID); err != nil {
		return internalError(c)
	}
	return c.NoContent(http.StatusNoContent)
}

// Verify consumes the emailed verification token.
func (h *UserHandler) Verify(c echo.Context) error {
	token := c.Param("verificationToken")

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, http.StatusNotFound, "Verification token is invalid or user does not exist")
		}
		return internalError(c)
	}
	if err := h.Users.MarkVerified(ctx, u.ID); err != nil {
		return internalError(c)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "OK",
		"code":    http.StatusOK,
		"message": "Verification successful",
	})
}

// Current echoes the authenticated user resolved by the middleware.
func (h *UserHandler) Current(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status": "OK",
		"code":   http.StatusOK,
		"token":  u.Token.String,
		"user":   userPart{Name: u.Name, Email: u.Email, Avatar: u.Avatar},
	})
}

// UpdateName changes the display name of the authenticated user.
func (h *UserHandler) UpdateName(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req updateNameReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	updated, err := h.Users.UpdateName(ctx, u.ID, req.Name)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"code":   http.StatusOK,
		"user":   userPart{Name: updated.Name, Email: updated.Email, Avatar: updated.Avatar},
	})
}

// UpdateAvatar accepts a multipart avatar file, stages and relocates it under
// the public avatar directory and stores the absolute URL.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}
	fh, err := c.FormFile("avatar")
	if err != nil {
		return fail(c, http.StatusBadRequest, "avatar file is required")
	}

	name, err := utils.SaveUpload(fh, h.Cfg.TmpDir, h.Cfg.AvatarDir, fmt.Sprintf("%d_avatar", u.ID))
	if err != nil {
		if errors.Is(err, utils.ErrFileTooLarge) {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		return internalError(c)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	updated, err := h.Users.UpdateAvatar(ctx, u.ID, h.Cfg.PublicBaseURL+"/avatars/"+name)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"code":   http.StatusOK,
		"user":   userPart{Name: updated.Name, Email: updated.Email, Avatar: updated.Avatar},
	})
}
