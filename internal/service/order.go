package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
	"github.com/SergeyBogomolovv/transport-sync/pkg/trm"
	"github.com/SergeyBogomolovv/transport-sync/pkg/utils"
)

// orderService keeps the local read model of shop orders fed by order events.
type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
	}
}

func (s *orderService) SaveOrder(ctx context.Context, order entities.Order) error {
	products := make([]entities.Product, 0, len(order.Items))
	for _, it := range order.Items {
		if it.Product != nil {
			products = append(products, *it.Product)
		}
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveProducts(ctx, products); err != nil {
				return fmt.Errorf("failed to save products: %w", err)
			}
			if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}

			s.logger.Debug("order saved", slog.Int64("order_id", order.ID))
			return nil
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}

	return utils.Retry(cfg, fn)
}
