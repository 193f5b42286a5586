package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
	"github.com/SergeyBogomolovv/transport-sync/internal/service"
	mocks "github.com/SergeyBogomolovv/transport-sync/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/transport-sync/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_SaveOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	dbError := errors.New("db error")

	order := entities.Order{
		ID: 123,
		Items: []entities.LineItem{
			{ID: 1, ProductID: 10, Quantity: 1, Product: &entities.Product{ID: 10, Name: "Chair"}},
			{ID: 2, ProductID: 11, Quantity: 1},
		},
	}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, order).Return(nil)
				orderRepo.EXPECT().SaveProducts(mock.Anything, []entities.Product{{ID: 10, Name: "Chair"}}).Return(nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, int64(123), order.Items).Return(nil)
			},
		},
		{
			name: "SaveOrder fails",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name: "SaveItems fails",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveProducts(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name: "Retry works (first attempt fails, second succeeds)",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				// первая попытка падает, вторая проходит
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(errors.New("temporary error"))
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(nil)
				orderRepo.EXPECT().SaveProducts(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			tc.mockBehavior(orderRepo)

			svc := service.NewOrderService(logger, tx, orderRepo)

			err := svc.SaveOrder(context.Background(), order)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
