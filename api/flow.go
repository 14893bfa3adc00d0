package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FlowHandler runs the booking workflow with every answer supplied up front.
type FlowHandler struct {
	service      booking.HotelUseCase
	orchestrator *booking.Orchestrator
}

type bookingFlowRequest struct {
	Confirm    bool   `json:"confirm"`
	Registered bool   `json:"registered"`
	Email      string `json:"email"`
	RoomNumber string `json:"room_number"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
}

type bookingFlowResponse struct {
	Status      string               `json:"status"`
	Reason      string               `json:"reason,omitempty"`
	CheckIn     string               `json:"check_in"`
	CheckOut    string               `json:"check_out"`
	Recommended bool                 `json:"recommended"`
	Reservation *reservationResponse `json:"reservation,omitempty"`
}

// requestPrompter gives the same answers on every round of the workflow.
type requestPrompter struct {
	req bookingFlowRequest
}

func (p requestPrompter) Confirm(context.Context) (bool, error)      { return p.req.Confirm, nil }
func (p requestPrompter) IsRegistered(context.Context) (bool, error) { return p.req.Registered, nil }
func (p requestPrompter) Email(context.Context) (string, error)      { return p.req.Email, nil }

func (p requestPrompter) SelectRoom(context.Context, []domain.Room) (string, error) {
	return p.req.RoomNumber, nil
}

func NewFlowHandler(service booking.HotelUseCase, log *zap.Logger) *FlowHandler {
	return &FlowHandler{service: service, orchestrator: booking.NewOrchestrator(service, log)}
}

func (h *FlowHandler) Register(router *gin.RouterGroup) {
	router.POST("/flow", h.run)
}

func (h *FlowHandler) run(c *gin.Context) {
	var req bookingFlowRequest
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
	candidates, err := h.service.FindAvailableRooms(ctx, in, out)
	if err != nil {
		writeError(c, err)
		return
	}
	outcome, err := h.orchestrator.Run(ctx, requestPrompter{req: req}, in, out, candidates)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := bookingFlowResponse{
		Status:      string(outcome.Status),
		Reason:      string(outcome.Reason),
		CheckIn:     domain.FormatDate(outcome.CheckIn),
		CheckOut:    domain.FormatDate(outcome.CheckOut),
		Recommended: outcome.Recommended,
	}
	status := http.StatusOK
	if outcome.Reservation != nil {
		r := toReservationResponse(outcome.Reservation)
		resp.Reservation = &r
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}
