package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jmontero22c/BRM-Backend/internal/domain"
	"github.com/jmontero22c/BRM-Backend/internal/service"
	resp "github.com/jmontero22c/BRM-Backend/internal/transport/http/response"
	"github.com/jmontero22c/BRM-Backend/internal/validate"
)

type ProductHandler struct{ svc *service.ProductService }

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(c *gin.Context) {
	ps, err := h.svc.List(c.Request.Context())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.Fail(c, domain.NotFound("Producto no encontrado"))
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var in validate.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.BadRequest(err.Error()))
		return
	}
	p, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Producto creado exitosamente",
		"product": p,
	})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.Fail(c, domain.NotFound("Producto no encontrado"))
		return
	}
	var in validate.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.BadRequest(err.Error()))
		return
	}
	p, err := h.svc.Update(c.Request.Context(), id, &in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Producto actualizado exitosamente",
		"product": p,
	})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.Fail(c, domain.NotFound("Producto no encontrado"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado exitosamente"})
}

func paramID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
