package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/classifier"
	"github.com/SergeyBogomolovv/transport-sync/internal/dispatch"
	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
	"github.com/SergeyBogomolovv/transport-sync/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type TransportGetter interface {
	GetTransport(ctx context.Context, orderID int64) (entities.Transport, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, cmd dispatch.Command) (classifier.Notice, error)
}

type HTTPHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	transports TransportGetter
	dispatcher Dispatcher
}

func NewHTTPHandler(logger *slog.Logger, transports TransportGetter, dispatcher Dispatcher) *HTTPHandler {
	return &HTTPHandler{
		logger:     logger.With(slog.String("handler", "http")),
		validate:   validator.New(),
		transports: transports,
		dispatcher: dispatcher,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders/{order_id}", func(r chi.Router) {
		r.Get("/transport", h.GetTransport)
		r.Post("/actions/{action}", h.RunAction)
	})
}

// GetTransport возвращает статус доставки заказа.
// @Summary      Get order transport
// @Description  Returns the transport record of an order with its display status and carrier
// @Tags         transports
// @Produce      json
// @Param        order_id   path      int  true  "Order ID"
// @Success      200  {object}  Transport
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{order_id}/transport [get]
func (h *HTTPHandler) GetTransport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := h.orderID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	t, err := h.transports.GetTransport(ctx, orderID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get transport", slog.Any("error", err), slog.Int64("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, TransportEntityToJSON(t), http.StatusOK)
}

// RunAction выполняет действие оператора над заказом.
// @Summary      Run order action
// @Description  Runs create_transport or create_transport_with_options and returns the resulting notice
// @Tags         transports
// @Accept       json
// @Produce      json
// @Param        order_id   path      int            true   "Order ID"
// @Param        action     path      string         true   "Action name"
// @Param        request    body      ActionRequest  false  "Item and delivery overrides"
// @Success      200  {object}  Notice
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Order or action not found"
// @Failure      409  {object}  utils.ErrorResponse "Transport already created"
// @Failure      422  {object}  utils.ErrorResponse "Order not eligible"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{order_id}/actions/{action} [post]
func (h *HTTPHandler) RunAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	action := chi.URLParam(r, "action")

	orderID, err := h.orderID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req ActionRequest
	if err := utils.DecodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	notice, err := h.dispatcher.Dispatch(ctx, dispatch.Command{
		Action:   action,
		OrderID:  orderID,
		Items:    req.Items,
		Delivery: req.Delivery,
	})
	actionDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())

	if err != nil {
		status, msg := errorStatus(err)
		actionsTotal.WithLabelValues(action, "error").Inc()
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "failed to run action", slog.Any("error", err),
				slog.Int64("order_id", orderID), slog.String("action", action))
		}
		utils.WriteError(w, msg, status)
		return
	}

	actionsTotal.WithLabelValues(action, notice.Status).Inc()
	utils.WriteJSON(w, NoticeToJSON(notice), http.StatusOK)
}

func (h *HTTPHandler) orderID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "order_id")
	if err := h.validate.Var(raw, "required,number"); err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, h.validate.Var(id, "gt=0")
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, dispatch.ErrUnknownAction):
		return http.StatusNotFound, "unknown action"
	case errors.Is(err, entities.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, entities.ErrTransportExists):
		return http.StatusConflict, "transport already created"
	case errors.Is(err, dispatch.ErrNotEligible):
		return http.StatusUnprocessableEntity, "order is not eligible for this shipping method"
	case errors.Is(err, entities.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid argument"
	}
	return http.StatusInternalServerError, "internal server error"
}
