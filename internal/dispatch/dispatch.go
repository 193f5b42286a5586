// Package dispatch maps operator action names to transport operations.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/transport-sync/internal/builder"
	"github.com/SergeyBogomolovv/transport-sync/internal/classifier"
	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
	"github.com/SergeyBogomolovv/transport-sync/internal/service"
)

const (
	ActionCreateTransport            = "create_transport"
	ActionCreateTransportWithOptions = "create_transport_with_options"
)

var (
	ErrUnknownAction = fmt.Errorf("%w: unknown action", entities.ErrInvalidArgument)
	ErrNotEligible   = fmt.Errorf("%w: order has no shippable products for this method", entities.ErrInvalidArgument)
)

// Command is an operator request on one order.
type Command struct {
	Action   string
	OrderID  int64
	Items    []entities.OverrideItem
	Delivery *entities.DeliveryOptions
}

type TransportService interface {
	Order(ctx context.Context, orderID int64) (entities.Order, error)
	CreateTransport(ctx context.Context, orderID int64, opts service.CreateOptions) (bool, error)
}

type ActionFunc func(ctx context.Context, cmd Command) (bool, error)

type Dispatcher struct {
	logger   *slog.Logger
	svc      TransportService
	classes  []string
	handlers map[string]ActionFunc
}

// New registers the creation actions. An empty classes list makes every order eligible.
func New(logger *slog.Logger, svc TransportService, classes []string) *Dispatcher {
	d := &Dispatcher{
		logger:  logger.With(slog.String("service", "dispatch")),
		svc:     svc,
		classes: classes,
	}
	d.handlers = map[string]ActionFunc{
		ActionCreateTransport:            d.createTransport,
		ActionCreateTransportWithOptions: d.createTransportWithOptions,
	}
	return d
}

func (d *Dispatcher) Actions() []string {
	return []string{ActionCreateTransport, ActionCreateTransportWithOptions}
}

// Dispatch runs the action and translates its outcome into a notice.
// Invalid arguments are returned as errors, provider errors become failed notices.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (classifier.Notice, error) {
	fn, ok := d.handlers[cmd.Action]
	if !ok {
		return classifier.Notice{}, fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}

	created, err := fn(ctx, cmd)

	var apiErr *entities.APIError
	switch {
	case errors.As(err, &apiErr):
		notice := classifier.NoticeFromError(err)
		d.logger.WarnContext(ctx, "transport rejected",
			slog.Int64("order_id", cmd.OrderID),
			slog.String("action", cmd.Action),
			slog.String("code", notice.Code),
		)
		return notice, nil
	case err != nil:
		return classifier.Notice{}, err
	case !created:
		return classifier.Notice{Status: classifier.StatusFailed}, nil
	}
	return classifier.Success(), nil
}

func (d *Dispatcher) createTransport(ctx context.Context, cmd Command) (bool, error) {
	if err := d.checkEligible(ctx, cmd.OrderID); err != nil {
		return false, err
	}
	return d.svc.CreateTransport(ctx, cmd.OrderID, service.CreateOptions{})
}

func (d *Dispatcher) createTransportWithOptions(ctx context.Context, cmd Command) (bool, error) {
	if err := d.checkEligible(ctx, cmd.OrderID); err != nil {
		return false, err
	}
	return d.svc.CreateTransport(ctx, cmd.OrderID, service.CreateOptions{
		Items:    cmd.Items,
		Delivery: cmd.Delivery,
	})
}

func (d *Dispatcher) checkEligible(ctx context.Context, orderID int64) error {
	if len(d.classes) == 0 {
		return nil
	}
	order, err := d.svc.Order(ctx, orderID)
	if err != nil {
		return err
	}
	if !builder.HasShippingClass(order, d.classes) {
		return ErrNotEligible
	}
	return nil
}
