package services

import (
	"errors"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/b1aiirrr/KaziLink/internal/models"
)

const sessionCookie = "kazilink_session"

type Claims struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	jwt.StandardClaims
}

var (
	errInvalidCredentials = errors.New("Invalid login credentials")
	errEmailNotConfirmed  = errors.New("Email not confirmed")
	errEmailRegistered    = errors.New("User already registered")
)

func (s *Service) loginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Message": c.Query("message"),
		})
	}
}

// login verifies credentials and starts a session. A failed attempt
// re-renders the form with an inline error; the visitor stays on /login.
func (s *Service) login() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		fail := func(err error) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Error": err.Error(),
				"Email": email,
			})
		}

		user, err := s.store.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			fail(errInvalidCredentials)
			return
		}

		if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
			fail(errInvalidCredentials)
			return
		}

		if !user.EmailConfirmed {
			fail(errEmailNotConfirmed)
			return
		}

		token, err := s.issueToken(user)
		if err != nil {
			fail(err)
			return
		}

		c.SetCookie(sessionCookie, token, int((24 * time.Hour).Seconds()), "/", "", false, true)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func (s *Service) issueToken(user models.User) (string, error) {
	claims := &Claims{
		ID:    user.ID,
		Email: user.Email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *Service) signupPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "signup.html", gin.H{})
	}
}

// signup creates an unconfirmed account and sends the visitor to the login
// page with an instruction to confirm their email.
func (s *Service) signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		fail := func(err error) {
			c.HTML(http.StatusOK, "signup.html", gin.H{
				"Error": err.Error(),
				"Email": email,
			})
		}

		exists, err := s.store.ExistsEmail(c.Request.Context(), email)
		if err != nil {
			fail(err)
			return
		}
		if exists {
			fail(errEmailRegistered)
			return
		}

		user, err := newUser(email, password, false)
		if err != nil {
			fail(err)
			return
		}

		if err := s.store.RegisterUser(c.Request.Context(), user); err != nil {
			fail(err)
			return
		}

		c.Redirect(http.StatusSeeOther, "/login?message=Check your email to confirm sign up")
	}
}

func newUser(email, password string, confirmed bool) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		Email:          email,
		Password:       hash,
		EmailConfirmed: confirmed,
	}, nil
}

// currentUser resolves the session cookie back to a user.
func (s *Service) currentUser(c *gin.Context) (models.User, error) {
	raw, err := c.Cookie(sessionCookie)
	if err != nil {
		return models.User{}, err
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return models.User{}, err
	}
	if !tkn.Valid {
		return models.User{}, errors.New("invalid token")
	}

	return s.store.GetUserByEmail(c.Request.Context(), claims.Email)
}
