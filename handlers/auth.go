package handlers

import (
	"context"
	"errors"
	"net/mail"

	"github.com/gofiber/fiber/v2"

	"github.com/kaushl12/TaskCanvas/auth"
	"github.com/kaushl12/TaskCanvas/models"
	"github.com/kaushl12/TaskCanvas/store"
)

// UserStore is the slice of the user store the auth handlers need.
type UserStore interface {
	Create(ctx context.Context, email, name, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// dummyDigest gets compared against when the email is unknown, so signin
// burns the same bcrypt cost whether or not the user exists.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthHandler struct {
	users  UserStore
	secret []byte
}

func NewAuthHandler(users UserStore, secret []byte) *AuthHandler {
	return &AuthHandler{users: users, secret: secret}
}

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validateSignup(req *signupRequest) error {
	if len(req.Email) < 3 || len(req.Email) > 100 {
		return errors.New("email must be between 3 and 100 characters")
	}
	addr, err := mail.ParseAddress(req.Email)
	if err != nil || addr.Address != req.Email {
		return errors.New("email is not valid")
	}
	if len(req.Name) < 3 || len(req.Name) > 100 {
		return errors.New("name must be between 3 and 100 characters")
	}
	return auth.ValidatePassword(req.Password)
}

// Signup godoc
// @Summary Register a new user
// @Accept json
// @Produce json
// @Param body body signupRequest true "signup payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	req := new(signupRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid data format"})
	}

	// validation runs before any storage access
	if err := validateSignup(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return internalError(c)
	}

	if _, err := h.users.Create(c.UserContext(), req.Email, req.Name, hashed); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email already exists"})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "you are signed up"})
}

// Signin godoc
// @Summary Sign in and receive a bearer token
// @Accept json
// @Produce json
// @Param body body signinRequest true "signin payload"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /signin [post]
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	req := new(signinRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid data format"})
	}

	user, err := h.users.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// unknown email and wrong password are indistinguishable
			auth.CheckPassword(req.Password, dummyDigest)
			return incorrectCredentials(c)
		}
		return internalError(c)
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		return incorrectCredentials(c)
	}

	token, err := auth.IssueToken(user.ID, h.secret)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{"token": token})
}

func incorrectCredentials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "incorrect credentials"})
}
