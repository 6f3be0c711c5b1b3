package reassignment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appreassignment "github.com/muhammadheryan/warehouse/application/reassignment"
	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/constant"
	rackmocks "github.com/muhammadheryan/warehouse/mocks/repository/rack"
	reassignmentmocks "github.com/muhammadheryan/warehouse/mocks/repository/reassignment"
	storagemocks "github.com/muhammadheryan/warehouse/mocks/repository/storage"
	txmocks "github.com/muhammadheryan/warehouse/mocks/repository/tx"
	brokermocks "github.com/muhammadheryan/warehouse/mocks/thirdparty/broker"
	"github.com/muhammadheryan/warehouse/model"
	storagerepo "github.com/muhammadheryan/warehouse/repository/storage"
	cerr "github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	config           *config.Config
	txRepo           *txmocks.TxRepository
	storageRepo      *storagemocks.StorageRepository
	rackRepo         *rackmocks.RackRepository
	reassignmentRepo *reassignmentmocks.ReassignmentRepository
	publisher        *brokermocks.Publisher
}

func newFields(t *testing.T) fields {
	return fields{
		config: &config.Config{Warehouse: config.WarehouseConfig{
			AuditDefaultLimit: 50,
			AuditMaxLimit:     500,
		}},
		txRepo:           txmocks.NewTxRepository(t),
		storageRepo:      storagemocks.NewStorageRepository(t),
		rackRepo:         rackmocks.NewRackRepository(t),
		reassignmentRepo: reassignmentmocks.NewReassignmentRepository(t),
		publisher:        brokermocks.NewPublisher(t),
	}
}

func (f fields) app() appreassignment.ReassignmentApp {
	return appreassignment.NewReassignmentApp(f.config, f.txRepo, f.storageRepo, f.rackRepo, f.reassignmentRepo, f.publisher)
}

func rack(id uint64, capacity int, distance int64) model.RackEntity {
	return model.RackEntity{ID: id, Capacity: capacity, Distance: decimal.NewFromInt(distance)}
}

func TestReassignmentApp_ReassignSafely(t *testing.T) {
	actor := model.Actor{ID: "supervisor-2"}

	tests := []struct {
		name      string
		productID uint64
		mockCall  func(f fields)
		wantMoved bool
		wantRack  uint64
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name:      "success: equal ratio, closer rack wins",
			productID: 4,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.storageRepo.On("GetPlacementForUpdateTx", mock.Anything, tx, uint64(4)).Return(&model.Placement{ProductID: 4, RackID: 1}, nil).Once()
				f.rackRepo.On("LockAllTx", mock.Anything, tx).Return([]model.RackEntity{
					rack(1, 2, 1), rack(2, 4, 10), rack(6, 4, 5),
				}, nil).Once()
				f.storageRepo.On("OccupancyByRackTx", mock.Anything, tx).Return(map[uint64]int{1: 2, 2: 1, 6: 1}, nil).Once()
				f.storageRepo.On("DeletePlacementTx", mock.Anything, tx, uint64(4), uint64(1)).Return(nil).Once()
				f.storageRepo.On("InsertPlacementTx", mock.Anything, tx, uint64(4), uint64(6), mock.Anything).Return(nil).Once()
				f.reassignmentRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(rec *model.ReassignmentRecord) bool {
					return rec.ProductID == 4 && rec.OldRackID == 1 && rec.NewRackID == 6 &&
						rec.Reason == constant.ReassignReasonPolicy && rec.RequestedBy == "supervisor-2"
				})).Return(uint64(1), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt model.Event) bool {
					return evt.Type == constant.EventProductReassigned && evt.Key == "4"
				})).Return(nil).Once()
			},
			wantMoved: true,
			wantRack:  6,
		},
		{
			name:      "error: only candidate full, placement unchanged",
			productID: 4,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.storageRepo.On("GetPlacementForUpdateTx", mock.Anything, tx, uint64(4)).Return(&model.Placement{ProductID: 4, RackID: 1}, nil).Once()
				f.rackRepo.On("LockAllTx", mock.Anything, tx).Return([]model.RackEntity{rack(1, 2, 1), rack(2, 3, 1)}, nil).Once()
				f.storageRepo.On("OccupancyByRackTx", mock.Anything, tx).Return(map[uint64]int{1: 2, 2: 3}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNoCapacity,
		},
		{
			name:      "success: already on best rack is a no-op",
			productID: 4,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.storageRepo.On("GetPlacementForUpdateTx", mock.Anything, tx, uint64(4)).Return(&model.Placement{ProductID: 4, RackID: 6}, nil).Once()
				f.rackRepo.On("LockAllTx", mock.Anything, tx).Return([]model.RackEntity{
					rack(1, 2, 1), rack(2, 4, 10), rack(6, 4, 5),
				}, nil).Once()
				f.storageRepo.On("OccupancyByRackTx", mock.Anything, tx).Return(map[uint64]int{1: 1, 2: 1, 6: 2}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantMoved: false,
			wantRack:  6,
		},
		{
			name:      "error: product not placed",
			productID: 9,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.storageRepo.On("GetPlacementForUpdateTx", mock.Anything, tx, uint64(9)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:      "error: placement changed under lock",
			productID: 4,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.storageRepo.On("GetPlacementForUpdateTx", mock.Anything, tx, uint64(4)).Return(&model.Placement{ProductID: 4, RackID: 1}, nil).Once()
				f.rackRepo.On("LockAllTx", mock.Anything, tx).Return([]model.RackEntity{rack(1, 2, 1), rack(2, 4, 1)}, nil).Once()
				f.storageRepo.On("OccupancyByRackTx", mock.Anything, tx).Return(map[uint64]int{1: 2}, nil).Once()
				f.storageRepo.On("DeletePlacementTx", mock.Anything, tx, uint64(4), uint64(1)).Return(storagerepo.ErrPlacementChanged).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrTransaction,
		},
		{
			name:      "error: record insert fails, nothing committed",
			productID: 4,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.storageRepo.On("GetPlacementForUpdateTx", mock.Anything, tx, uint64(4)).Return(&model.Placement{ProductID: 4, RackID: 1}, nil).Once()
				f.rackRepo.On("LockAllTx", mock.Anything, tx).Return([]model.RackEntity{rack(1, 2, 1), rack(2, 4, 1)}, nil).Once()
				f.storageRepo.On("OccupancyByRackTx", mock.Anything, tx).Return(map[uint64]int{1: 2}, nil).Once()
				f.storageRepo.On("DeletePlacementTx", mock.Anything, tx, uint64(4), uint64(1)).Return(nil).Once()
				f.storageRepo.On("InsertPlacementTx", mock.Anything, tx, uint64(4), uint64(2), mock.Anything).Return(nil).Once()
				f.reassignmentRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("lock wait timeout")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrTransaction,
		},
		{
			name:      "error: zero product id",
			productID: 0,
			wantErr:   true,
			errCode:   constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().ReassignSafely(context.Background(), actor, tt.productID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReassignSafely() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				f.txRepo.AssertNotCalled(t, "CommitTx", mock.Anything)
				f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
				return
			}

			assert.Equal(t, tt.wantMoved, got.Moved)
			assert.Equal(t, tt.wantRack, got.RackID)
			if tt.wantMoved {
				require.NotNil(t, got.Record)
				assert.Equal(t, uint64(1), got.Record.ID)
			} else {
				assert.Nil(t, got.Record)
				f.reassignmentRepo.AssertNotCalled(t, "InsertTx", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestReassignmentApp_ListReassignments(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default when unset", limit: 0, wantLimit: 50},
		{name: "explicit", limit: 10, wantLimit: 10},
		{name: "clamped to max", limit: 10000, wantLimit: 500},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.reassignmentRepo.On("ListRecent", mock.Anything, tt.wantLimit).Return([]model.ReassignmentRecord{
				{ID: 2, ProductID: 4, OldRackID: 6, NewRackID: 2},
				{ID: 1, ProductID: 4, OldRackID: 1, NewRackID: 6},
			}, nil).Once()

			got, err := f.app().ListReassignments(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, 2)
			assert.Equal(t, uint64(2), got[0].ID)
		})
	}
}
