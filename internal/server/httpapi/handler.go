package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dvargas92/fotoapp/internal/common"
	"github.com/dvargas92/fotoapp/internal/server/users"
)

type registerRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the public projection of a User. The password hash never
// leaves the service boundary.
type userResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (s *HTTPServer) register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, errValidation)
		return
	}

	user, err := s.users.Register(ctx, users.RegisterInput{
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			fail(c, http.StatusUnprocessableEntity, errValidation)
		case errors.Is(err, common.ErrorPasswordMismatch):
			fail(c, http.StatusUnprocessableEntity, errPasswordMismatch)
		case errors.Is(err, common.ErrorEmailTaken):
			fail(c, http.StatusUnprocessableEntity, errEmailTaken)
		default:
			s.logger.Error(ctx, "registration failed", "error", err.Error())
			fail(c, http.StatusInternalServerError, errInternal)
		}
		return
	}

	s.logger.Info(ctx, "user registered", "username", user.Username)
	c.JSON(http.StatusOK, gin.H{
		"user": userResponse{Email: user.Email, Username: user.Username},
	})
}

func (s *HTTPServer) login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, errValidation)
		return
	}

	token, user, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUserNotFound):
			fail(c, http.StatusUnprocessableEntity, errUserNotFound)
		case errors.Is(err, common.ErrorInvalidCredentials):
			fail(c, http.StatusUnprocessableEntity, errInvalidCredentials)
		default:
			s.logger.Error(ctx, "login failed", "error", err.Error())
			fail(c, http.StatusInternalServerError, errInternal)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userResponse{Email: user.Email, Username: user.Username},
	})
}

func (s *HTTPServer) imageUpload(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetString(ContextUserIDKey)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, errValidation)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error(ctx, "opening uploaded file failed", "error", err.Error())
		fail(c, http.StatusInternalServerError, errInternal)
		return
	}
	defer file.Close()

	imageURL, err := s.images.Upload(ctx, userID, fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		s.logger.Error(ctx, "image upload failed", "error", err.Error())
		fail(c, http.StatusInternalServerError, errInternal)
		return
	}

	s.logger.Info(ctx, "image uploaded", "userID", userID)
	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}

// imageLink resolves a stored object key to a time-limited download URL.
// The public URL returned by the upload endpoint works only for readable
// buckets; this endpoint serves objects from private ones.
func (s *HTTPServer) imageLink(c *gin.Context) {
	ctx := c.Request.Context()

	key := c.Query("key")
	if key == "" {
		fail(c, http.StatusUnprocessableEntity, errValidation)
		return
	}

	url, err := s.images.PresignedGetURL(ctx, key)
	if err != nil {
		s.logger.Error(ctx, "presigning image link failed", "error", err.Error())
		fail(c, http.StatusInternalServerError, errInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}

func (s *HTTPServer) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
