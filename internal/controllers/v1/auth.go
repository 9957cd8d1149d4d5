package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/auth"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
)

// tokens is the manager used to issue session tokens on login. It is set
// by the router during startup.
var tokens *auth.TokenManager

// SetTokenManager sets the token manager used by the auth endpoints.
func SetTokenManager(tm *auth.TokenManager) {
	tokens = tm
}

// RegisterAuthRoutes registers the routes for registration, login and the
// current user. The public group must not require authentication, the
// private group must.
func RegisterAuthRoutes(public, private *gin.RouterGroup) {
	{
		public.OPTIONS("/register", httputil.OptionsPost)
		public.POST("/register", Register)
		public.OPTIONS("/login", httputil.OptionsPost)
		public.POST("/login", Login)
	}

	{
		private.OPTIONS("/me", httputil.OptionsGet)
		private.GET("/me", GetMe)
	}
}

// RegisterRequest are the values needed to create a user account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password  string `json:"password" binding:"required" example:"correct horse battery staple"`
	FirstName string `json:"firstName" example:"Jane"`
	LastName  string `json:"lastName" example:"Doe"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

// Session is the API representation of a logged-in session.
type Session struct {
	Token string `json:"token"` // The bearer token for subsequent requests
	User  User   `json:"user"`
}

type SessionResponse struct {
	Data  *Session `json:"data"`  // The session, if login was successful
	Error *string  `json:"error"` // The error, if any occurred
}

// User is the API representation of a user account.
type User struct {
	models.DefaultModel
	Email     string `json:"email" example:"jane@example.com"`
	FirstName string `json:"firstName" example:"Jane"`
	LastName  string `json:"lastName" example:"Doe"`
}

type UserResponse struct {
	Data  *User   `json:"data"`  // Data for the user
	Error *string `json:"error"` // The error, if any occurred
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
	}
}

// @Summary		Register
// @Description	Creates a new user account
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		409		{object}	UserResponse
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var request RegisterRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &s})
		return
	}

	user := models.User{
		Email:        request.Email,
		PasswordHash: hash,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Login
// @Description	Verifies the credentials and issues a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{Error: &s})
		return
	}

	user, err := models.UserByEmail(models.DB, request.Email)
	if err != nil {
		// Same response as for a wrong password so that login failures
		// don't reveal which emails are registered
		s := auth.ErrInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, SessionResponse{Error: &s})
		return
	}

	err = auth.CheckPassword(user.PasswordHash, request.Password)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusUnauthorized, SessionResponse{Error: &s})
		return
	}

	token, err := tokens.Issue(user.ID, user.Email)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &s})
		return
	}

	data := Session{
		Token: token,
		User:  newUser(user),
	}
	c.JSON(http.StatusOK, SessionResponse{Data: &data})
}

// @Summary		Current user
// @Description	Returns the user the session token belongs to
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Router			/v1/auth/me [get]
func GetMe(c *gin.Context) {
	data := newUser(currentUser(c))
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
