package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmontero22c/BRM-Backend/internal/domain"
	"github.com/jmontero22c/BRM-Backend/internal/service"
	mdw "github.com/jmontero22c/BRM-Backend/internal/transport/http/middleware"
	resp "github.com/jmontero22c/BRM-Backend/internal/transport/http/response"
	"github.com/jmontero22c/BRM-Backend/internal/validate"
)

type PurchaseHandler struct{ svc *service.PurchaseService }

func NewPurchaseHandler(svc *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

func (h *PurchaseHandler) Create(c *gin.Context) {
	u := mdw.CurrentUser(c)
	if u == nil {
		resp.Abort(c, http.StatusUnauthorized, "Token de acceso requerido")
		return
	}
	var in validate.PurchaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.BadRequest(err.Error()))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), u.ID, &in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  res.Message,
		"purchase": res.Purchase,
	})
}

func (h *PurchaseHandler) History(c *gin.Context) {
	u := mdw.CurrentUser(c)
	if u == nil {
		resp.Abort(c, http.StatusUnauthorized, "Token de acceso requerido")
		return
	}
	ps, err := h.svc.History(c.Request.Context(), u.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

func (h *PurchaseHandler) GetByID(c *gin.Context) {
	u := mdw.CurrentUser(c)
	if u == nil {
		resp.Abort(c, http.StatusUnauthorized, "Token de acceso requerido")
		return
	}
	id, ok := paramID(c)
	if !ok {
		resp.Fail(c, domain.NotFound("Compra no encontrada"))
		return
	}
	p, err := h.svc.GetByID(c.Request.Context(), id, u)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PurchaseHandler) All(c *gin.Context) {
	ps, err := h.svc.All(c.Request.Context())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}
