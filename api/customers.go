package api

import (
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service booking.HotelUseCase
}

type createCustomerRequest struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

func NewCustomerHandler(service booking.HotelUseCase) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (h *CustomerHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/:email", h.get)
	router.GET("/:email/reservations", h.reservations)
}

func (h *CustomerHandler) create(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if existing, ok := h.service.GetCustomer(ctx, req.Email); ok {
		c.JSON(http.StatusOK, gin.H{
			"customer": toCustomerResponse(existing),
			"warning":  "customer already registered and was not added",
		})
		return
	}
	if err := h.service.AddCustomer(ctx, req.Email, req.FirstName, req.LastName); err != nil {
		writeError(c, err)
		return
	}
	customer, _ := h.service.GetCustomer(ctx, req.Email)
	c.JSON(http.StatusCreated, gin.H{"customer": toCustomerResponse(customer)})
}

func (h *CustomerHandler) list(c *gin.Context) {
	customers := h.service.ListCustomers(c.Request.Context())
	out := make([]customerResponse, 0, len(customers))
	for _, customer := range customers {
		out = append(out, toCustomerResponse(customer))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) get(c *gin.Context) {
	customer, ok := h.service.GetCustomer(c.Request.Context(), c.Param("email"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

func (h *CustomerHandler) reservations(c *gin.Context) {
	reservations := h.service.CustomerReservations(c.Request.Context(), c.Param("email"))
	c.JSON(http.StatusOK, toReservationResponses(reservations))
}
