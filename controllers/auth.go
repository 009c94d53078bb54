package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ezequiel060805/allge-care-apis/config"
	"github.com/Ezequiel060805/allge-care-apis/models"
	"github.com/Ezequiel060805/allge-care-apis/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and returns a short-lived JWT.
// Unknown email and wrong password take the same path and produce the same
// response; a bcrypt compare runs in both cases so neither the status nor the
// timing reveals whether the account exists.
func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
		return
	}

	var user models.Usuario
	err := a.DB.Select("id", "contrasena").Where("correo = ?", req.Email).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("login: user lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	found := err == nil
	storedHash := utils.DummyHash
	if found {
		storedHash = user.Contrasena
	}
	if ok := utils.CheckPassword(storedHash, req.Password); !ok || !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if a.Cfg.JWTSecret == "" {
		slog.Error("login: JWT_SECRET is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid server configuration"})
		return
	}

	token, err := utils.GenerateToken(user.ID, a.Cfg.JWTSecret, a.Cfg.JWTIssuer)
	if err != nil {
		slog.Error("login: token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

type signupRequest struct {
	Nombre     string `json:"nombre"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
	Rol        string `json:"rol"`
}

// Signup registers a new user.
func (a *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Nombre == "" || req.Correo == "" || req.Contrasena == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing nombre, correo or contrasena"})
		return
	}

	hash, err := utils.HashPassword(req.Contrasena)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	user := models.Usuario{
		Nombre:     req.Nombre,
		Correo:     req.Correo,
		Contrasena: hash,
		Rol:        req.Rol,
	}
	if err := a.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}
