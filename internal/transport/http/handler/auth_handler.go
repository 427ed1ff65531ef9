package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmontero22c/BRM-Backend/internal/domain"
	"github.com/jmontero22c/BRM-Backend/internal/service"
	resp "github.com/jmontero22c/BRM-Backend/internal/transport/http/response"
	"github.com/jmontero22c/BRM-Backend/internal/validate"
)

type AuthHandler struct{ svc *service.AuthService }

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Register(c *gin.Context) {
	var in validate.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.BadRequest(err.Error()))
		return
	}
	res, err := h.svc.Register(c.Request.Context(), &in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": res.Message,
		"token":   res.Token,
		"user":    res.User,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in validate.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.BadRequest(err.Error()))
		return
	}
	res, err := h.svc.Login(c.Request.Context(), &in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": res.Message,
		"token":   res.Token,
		"user":    res.User,
	})
}
