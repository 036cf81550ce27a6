package authController

import (
	"errors"
	"log"

	"coursehub/config"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/services"
	"coursehub/utils"
	authValidator "coursehub/validators/auth"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	users *services.UserService
}

func New(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

func (h *AuthController) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, err := h.users.GetByEmail(c.UserContext(), reqData.Email); err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user, err := h.users.CreateProfile(c.UserContext(), models.User{
		UID:        uuid.NewString(),
		Name:       reqData.Name,
		Email:      reqData.Email,
		Password:   string(hashedPassword),
		ProviderID: models.ProviderMail,
	})
	if err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	go utils.SendWelcomeEmail(user.Email, user.Name)

	token, err := middleware.GenerateJWT(user.UID, user.Name, user.Email, user.Role)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signed up successfully!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := h.users.GetByEmail(c.UserContext(), reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)) != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.UID, user.Name, user.Email, user.Role)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// googleTokenInfo is the subset of Google's tokeninfo response we use.
type googleTokenInfo struct {
	Sub           string `json:"sub"`
	Aud           string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleLogin verifies a Google ID token against the tokeninfo endpoint
// and creates the profile document on first sign-in.
func (h *AuthController) GoogleLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGoogleLogin").(*authValidator.GoogleLoginPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	info := new(googleTokenInfo)
	client := resty.New()
	resp, err := client.R().
		SetContext(c.UserContext()).
		SetQueryParam("id_token", reqData.IDToken).
		SetResult(info).
		Get(config.AppConfig.GoogleTokenInfoURL)
	if err != nil || resp.IsError() || info.Sub == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Google token!", nil)
	}
	if config.AppConfig.GoogleClientID != "" && info.Aud != config.AppConfig.GoogleClientID {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Google token issued for another application!", nil)
	}

	user, err := h.users.GetByUID(c.UserContext(), info.Sub)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = h.users.CreateProfile(c.UserContext(), models.User{
			UID:            info.Sub,
			Name:           info.Name,
			Email:          info.Email,
			DisplayPicture: info.Picture,
			EmailVerified:  info.EmailVerified == "true",
			ProviderID:     models.ProviderGoogle,
		})
		if err == nil {
			go utils.SendWelcomeEmail(user.Email, user.Name)
		}
	}
	if err != nil {
		log.Printf("Error resolving google profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign in with Google!", nil)
	}

	token, err := middleware.GenerateJWT(user.UID, user.Name, user.Email, user.Role)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *AuthController) GetProfile(c *fiber.Ctx) error {
	uid, ok := c.Locals("uid").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := h.users.GetByUID(c.UserContext(), uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

func (h *AuthController) UpdateProfile(c *fiber.Ctx) error {
	uid, ok := c.Locals("uid").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedUpdateProfile").(*authValidator.UpdateProfilePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := h.users.UpdateProfile(c.UserContext(), uid, services.UpdateProfilePayload{
		Name:           reqData.Name,
		DisplayPicture: reqData.DisplayPicture,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}
