package api

import (
	"bytes"
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/logger"
	"github.com/Domenick1991/hotelbooking/internal/report"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service booking.HotelUseCase
	logger  *zap.Logger
}

type createReservationRequest struct {
	Email      string `json:"email" binding:"required"`
	RoomNumber string `json:"room_number" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
}

type availabilityQuery struct {
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}

type windowResponse struct {
	CheckIn  string         `json:"check_in"`
	CheckOut string         `json:"check_out"`
	Rooms    []roomResponse `json:"rooms"`
}

type availabilityResponse struct {
	windowResponse
	Recommended *windowResponse `json:"recommended,omitempty"`
}

func NewReservationHandler(service booking.HotelUseCase, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{service: service, logger: logger.OrNop(log)}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/export", h.export)
}

func (h *ReservationHandler) RegisterAvailability(router *gin.RouterGroup) {
	router.GET("", h.availability)
}

// availability lists free rooms and, when there are none, the rooms free a week later.
func (h *ReservationHandler) availability(c *gin.Context) {
	var q availabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, out, err := parseStay(q.CheckIn, q.CheckOut)
	if err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	rooms, err := h.service.FindAvailableRooms(ctx, in, out)
	if err != nil {
		writeError(c, err)
		return
	}
	resp := availabilityResponse{windowResponse: windowResponse{
		CheckIn:  domain.FormatDate(in),
		CheckOut: domain.FormatDate(out),
		Rooms:    toRoomResponses(rooms),
	}}
	if len(rooms) == 0 {
		rec, err := h.service.RecommendRooms(ctx, in, out)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.Recommended = &windowResponse{
			CheckIn:  domain.FormatDate(rec.CheckIn),
			CheckOut: domain.FormatDate(rec.CheckOut),
			Rooms:    toRoomResponses(rec.Rooms),
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, out, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	room, ok := h.service.GetRoom(ctx, req.RoomNumber)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	reservation, err := h.service.BookRoom(ctx, req.Email, room, in, out)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReservationResponse(reservation))
}

func (h *ReservationHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, toReservationResponses(h.service.AllReservations(c.Request.Context())))
}

func (h *ReservationHandler) export(c *gin.Context) {
	var buf bytes.Buffer
	if err := report.WriteReservations(&buf, h.service.AllReservations(c.Request.Context())); err != nil {
		h.logger.Error("export reservations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reservations.xlsx"`)
	c.Data(http.StatusOK, report.ContentType, buf.Bytes())
}
