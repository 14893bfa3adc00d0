package api

import (
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service booking.HotelUseCase
}

type createRoomRequest struct {
	Number     string `json:"number" binding:"required"`
	PriceCents *int64 `json:"price_cents" binding:"required"`
	Type       string `json:"type" binding:"required"`
}

func NewRoomHandler(service booking.HotelUseCase) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/:number", h.get)
}

func (h *RoomHandler) create(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roomType, err := domain.ParseRoomType(req.Type)
	if err != nil {
		writeError(c, err)
		return
	}
	room, err := domain.NewRoom(req.Number, *req.PriceCents, roomType)
	if err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	if !h.service.AddRoom(ctx, room) {
		existing, _ := h.service.GetRoom(ctx, room.Number)
		c.JSON(http.StatusOK, gin.H{
			"room":    toRoomResponse(existing),
			"warning": "room already exists and was not added",
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"room": toRoomResponse(room)})
}

func (h *RoomHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, toRoomResponses(h.service.ListRooms(c.Request.Context())))
}

func (h *RoomHandler) get(c *gin.Context) {
	room, ok := h.service.GetRoom(c.Request.Context(), c.Param("number"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(room))
}
