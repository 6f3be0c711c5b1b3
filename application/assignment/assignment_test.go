package assignment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appassignment "github.com/muhammadheryan/warehouse/application/assignment"
	"github.com/muhammadheryan/warehouse/constant"
	assignmentmocks "github.com/muhammadheryan/warehouse/mocks/repository/assignment"
	ordermocks "github.com/muhammadheryan/warehouse/mocks/repository/order"
	pickermocks "github.com/muhammadheryan/warehouse/mocks/repository/picker"
	storagemocks "github.com/muhammadheryan/warehouse/mocks/repository/storage"
	txmocks "github.com/muhammadheryan/warehouse/mocks/repository/tx"
	"github.com/muhammadheryan/warehouse/model"
	cerr "github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	txRepo         *txmocks.TxRepository
	assignmentRepo *assignmentmocks.AssignmentRepository
	orderRepo      *ordermocks.OrderRepository
	pickerRepo     *pickermocks.PickerRepository
	storageRepo    *storagemocks.StorageRepository
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:         txmocks.NewTxRepository(t),
		assignmentRepo: assignmentmocks.NewAssignmentRepository(t),
		orderRepo:      ordermocks.NewOrderRepository(t),
		pickerRepo:     pickermocks.NewPickerRepository(t),
		storageRepo:    storagemocks.NewStorageRepository(t),
	}
}

func (f fields) app() appassignment.AssignmentApp {
	return appassignment.NewAssignmentApp(f.txRepo, f.assignmentRepo, f.orderRepo, f.pickerRepo, f.storageRepo)
}

func TestAssignmentApp_AssignPicker(t *testing.T) {
	actor := model.Actor{ID: "lead-1"}
	now := time.Now().UTC()

	type args struct {
		pickerID uint64
		orderID  uint64
	}
	tests := []struct {
		name      string
		args      args
		mockCall  func(f fields)
		wantRacks []uint64
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: items on shared rack collapse to one row",
			args: args{pickerID: 1, orderID: 10},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.pickerRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.PickerEntity{ID: 1}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(10)).Return(&model.OrderEntity{ID: 10}, nil).Once()
				f.orderRepo.On("ListItemsTx", mock.Anything, tx, uint64(10)).Return([]model.OrderItemEntity{
					{OrderID: 10, ProductID: 1, Quantity: 2},
					{OrderID: 10, ProductID: 3, Quantity: 1},
					{OrderID: 10, ProductID: 5, Quantity: 1},
				}, nil).Once()
				f.storageRepo.On("GetPlacementShareTx", mock.Anything, tx, uint64(1)).Return(&model.Placement{ProductID: 1, RackID: 4}, nil).Once()
				f.storageRepo.On("GetPlacementShareTx", mock.Anything, tx, uint64(3)).Return(&model.Placement{ProductID: 3, RackID: 2}, nil).Once()
				f.storageRepo.On("GetPlacementShareTx", mock.Anything, tx, uint64(5)).Return(&model.Placement{ProductID: 5, RackID: 4}, nil).Once()
				f.assignmentRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(rows []model.PickerAssignment) bool {
					return len(rows) == 2 && rows[0].RackID == 2 && rows[1].RackID == 4 &&
						rows[0].PickerID == 1 && rows[0].OrderID == 10
				})).Return(nil).Once()
				f.assignmentRepo.On("ListForPickerOrderTx", mock.Anything, tx, uint64(1), uint64(10)).Return([]model.PickerAssignment{
					{PickerID: 1, RackID: 2, OrderID: 10, AssignedAt: now},
					{PickerID: 1, RackID: 4, OrderID: 10, AssignedAt: now},
				}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantRacks: []uint64{2, 4},
		},
		{
			name: "error: unknown picker",
			args: args{pickerID: 7, orderID: 10},
			mockCall: func(f fields) {
				f.pickerRepo.On("GetByID", mock.Anything, uint64(7)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPickerNotFound,
		},
		{
			name: "error: unknown order",
			args: args{pickerID: 1, orderID: 99},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.pickerRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.PickerEntity{ID: 1}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(99)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOrderNotFound,
		},
		{
			name: "error: item without placement",
			args: args{pickerID: 1, orderID: 10},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.pickerRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.PickerEntity{ID: 1}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(10)).Return(&model.OrderEntity{ID: 10}, nil).Once()
				f.orderRepo.On("ListItemsTx", mock.Anything, tx, uint64(10)).Return([]model.OrderItemEntity{
					{OrderID: 10, ProductID: 8, Quantity: 1},
				}, nil).Once()
				f.storageRepo.On("GetPlacementShareTx", mock.Anything, tx, uint64(8)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductNotPlaced,
		},
		{
			name: "error: insert fails",
			args: args{pickerID: 1, orderID: 10},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.pickerRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.PickerEntity{ID: 1}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(10)).Return(&model.OrderEntity{ID: 10}, nil).Once()
				f.orderRepo.On("ListItemsTx", mock.Anything, tx, uint64(10)).Return([]model.OrderItemEntity{
					{OrderID: 10, ProductID: 1, Quantity: 1},
				}, nil).Once()
				f.storageRepo.On("GetPlacementShareTx", mock.Anything, tx, uint64(1)).Return(&model.Placement{ProductID: 1, RackID: 4}, nil).Once()
				f.assignmentRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(errors.New("deadlock")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrTransaction,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().AssignPicker(context.Background(), actor, tt.args.pickerID, tt.args.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AssignPicker() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			racks := make([]uint64, 0, len(got))
			for _, a := range got {
				racks = append(racks, a.RackID)
			}
			assert.Equal(t, tt.wantRacks, racks)
		})
	}
}

func TestAssignmentApp_ListPickerAssignments(t *testing.T) {
	f := newFields(t)
	f.pickerRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.PickerEntity{ID: 1}, nil).Once()
	f.assignmentRepo.On("ListByPicker", mock.Anything, uint64(1)).Return([]model.PickerAssignmentView{
		{PickerAssignment: model.PickerAssignment{PickerID: 1, RackID: 2, OrderID: 10}},
	}, nil).Once()
	f.pickerRepo.On("GetByID", mock.Anything, uint64(2)).Return(nil, nil).Once()

	got, err := f.app().ListPickerAssignments(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = f.app().ListPickerAssignments(context.Background(), 2)
	assert.Equal(t, constant.ErrPickerNotFound, cerr.TypeOf(err))
}

func TestAssignmentApp_ListOrderAssignments(t *testing.T) {
	f := newFields(t)
	f.orderRepo.On("GetOrder", mock.Anything, uint64(10)).Return(&model.OrderEntity{ID: 10}, nil).Once()
	f.assignmentRepo.On("ListByOrder", mock.Anything, uint64(10)).Return([]model.PickerAssignmentView{}, nil).Once()
	f.orderRepo.On("GetOrder", mock.Anything, uint64(11)).Return(nil, nil).Once()

	got, err := f.app().ListOrderAssignments(context.Background(), 10)
	assert.NoError(t, err)
	assert.Empty(t, got)

	_, err = f.app().ListOrderAssignments(context.Background(), 11)
	assert.Equal(t, constant.ErrOrderNotFound, cerr.TypeOf(err))
}
