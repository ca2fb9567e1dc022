package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/restobar-app/backend/models"
	"github.com/restobar-app/backend/utils"
)

var ErrNoPermission = errors.New("no tiene permisos para esta operación")

type UsuarioController struct {
	DB *gorm.DB
}

func NewUsuarioController(db *gorm.DB) *UsuarioController {
	return &UsuarioController{DB: db}
}

// Register -> POST /auth/register
func (uc *UsuarioController) Register(c *gin.Context) {
	var req struct {
		UsuarioNombre string `json:"UsuarioNombre" binding:"required"`
		UsuarioCorreo string `json:"UsuarioCorreo" binding:"required,email"`
		Password      string `json:"Password" binding:"required,min=8"`
		UsuarioRol    string `json:"UsuarioRol" binding:"required"` // admin, mesero, cocinero
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	switch req.UsuarioRol {
	case "admin", "mesero", "cocinero":
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("rol inválido"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var user models.User
	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		code, err := utils.NextCode(tx, "usuarios", "code", models.CodePrefixUser)
		if err != nil {
			return err
		}
		user = models.User{
			Code:     code,
			Name:     req.UsuarioNombre,
			Email:    req.UsuarioCorreo,
			Password: string(hashed),
			Role:     req.UsuarioRol,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Nuevo usuario registrado: %s (rol=%s)", user.Email, user.Role)
	utils.RespondJSON(c, http.StatusCreated, "Usuario registrado", gin.H{
		"UsuarioCodigo": user.Code,
	})
}

// Login -> POST /auth/login, returns a JWT
func (uc *UsuarioController) Login(c *gin.Context) {
	var req struct {
		UsuarioCorreo string `json:"UsuarioCorreo" binding:"required"`
		Password      string `json:"Password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", req.UsuarioCorreo).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("credenciales inválidas"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("credenciales inválidas"))
		return
	}

	token, err := utils.GenerateToken(user.Code, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login correcto", gin.H{
		"token":         token,
		"UsuarioCodigo": user.Code,
		"UsuarioRol":    user.Role,
	})
}

// Logout -> POST /auth/logout, revokes the presented token
func (uc *UsuarioController) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("token no encontrado"))
		return
	}
	utils.BlacklistToken(token)
	utils.RespondJSON(c, http.StatusOK, "Sesión cerrada", nil)
}

// InfoUser -> GET /usuarios/infoUser (requires token)
func (uc *UsuarioController) InfoUser(c *gin.Context) {
	code := currentUserCode(c)
	if code == nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("token requerido"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, "code = ?", *code).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("usuario no encontrado"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Datos del usuario", user)
}

// ListarUsuarios -> GET /usuarios/listarUsuarios (admin)
func (uc *UsuarioController) ListarUsuarios(c *gin.Context) {
	role, _ := c.Get("role")
	if role != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var usuarios []models.User
	if err := uc.DB.Order("code asc").Find(&usuarios).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Lista de usuarios", usuarios)
}
