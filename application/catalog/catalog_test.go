package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	appcatalog "github.com/muhammadheryan/warehouse/application/catalog"
	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/constant"
	pickermocks "github.com/muhammadheryan/warehouse/mocks/repository/picker"
	productmocks "github.com/muhammadheryan/warehouse/mocks/repository/product"
	rackmocks "github.com/muhammadheryan/warehouse/mocks/repository/rack"
	storagemocks "github.com/muhammadheryan/warehouse/mocks/repository/storage"
	txmocks "github.com/muhammadheryan/warehouse/mocks/repository/tx"
	"github.com/muhammadheryan/warehouse/model"
	cerr "github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fields struct {
	config      *config.Config
	txRepo      *txmocks.TxRepository
	productRepo *productmocks.ProductRepository
	rackRepo    *rackmocks.RackRepository
	pickerRepo  *pickermocks.PickerRepository
	storageRepo *storagemocks.StorageRepository
}

func newFields(t *testing.T) fields {
	return fields{
		config:      &config.Config{Warehouse: config.WarehouseConfig{DefaultRackCapacity: 10}},
		txRepo:      txmocks.NewTxRepository(t),
		productRepo: productmocks.NewProductRepository(t),
		rackRepo:    rackmocks.NewRackRepository(t),
		pickerRepo:  pickermocks.NewPickerRepository(t),
		storageRepo: storagemocks.NewStorageRepository(t),
	}
}

func (f fields) app() appcatalog.CatalogApp {
	return appcatalog.NewCatalogApp(f.config, f.txRepo, f.productRepo, f.rackRepo, f.pickerRepo, f.storageRepo)
}

var admin = model.Actor{ID: "admin", Role: "admin"}

func TestCatalogApp_UpsertProduct(t *testing.T) {
	t.Run("success: popularity read back from store", func(t *testing.T) {
		f := newFields(t)
		req := &model.UpsertProductRequest{ID: 3, Name: "Pallet jack", Weight: decimal.RequireFromString("12.5")}
		f.productRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *model.ProductEntity) bool {
			return p.ID == 3 && p.Weight.Equal(decimal.RequireFromString("12.5"))
		})).Return(nil).Once()
		f.productRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.ProductEntity{ID: 3, Name: "Pallet jack", Popularity: 7}, nil).Once()

		got, err := f.app().UpsertProduct(context.Background(), admin, req)
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.Popularity)
	})

	t.Run("error: negative weight", func(t *testing.T) {
		f := newFields(t)
		req := &model.UpsertProductRequest{ID: 3, Name: "Pallet jack", Weight: decimal.NewFromInt(-1)}

		_, err := f.app().UpsertProduct(context.Background(), admin, req)
		assert.Equal(t, constant.ErrInvalidRequest, cerr.TypeOf(err))
	})
}

func TestCatalogApp_UpsertRack(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.UpsertRackRequest
		mockCall func(f fields)
		wantCap  int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: new rack takes default capacity",
			req:  &model.UpsertRackRequest{ID: 8, AisleNumber: 2, Level: 1, Distance: decimal.NewFromInt(4)},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.rackRepo.On("LockTx", mock.Anything, tx, uint64(8)).Return(nil, nil).Once()
				f.rackRepo.On("UpsertTx", mock.Anything, tx, mock.MatchedBy(func(r *model.RackEntity) bool {
					return r.ID == 8 && r.Capacity == 10
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantCap: 10,
		},
		{
			name: "success: shrink to current occupancy",
			req:  &model.UpsertRackRequest{ID: 2, Capacity: 3},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.rackRepo.On("LockTx", mock.Anything, tx, uint64(2)).Return(&model.RackEntity{ID: 2, Capacity: 5}, nil).Once()
				f.storageRepo.On("CountOccupantsTx", mock.Anything, tx, uint64(2)).Return(3, nil).Once()
				f.rackRepo.On("UpsertTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantCap: 3,
		},
		{
			name: "error: shrink below occupancy",
			req:  &model.UpsertRackRequest{ID: 2, Capacity: 2},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.rackRepo.On("LockTx", mock.Anything, tx, uint64(2)).Return(&model.RackEntity{ID: 2, Capacity: 5}, nil).Once()
				f.storageRepo.On("CountOccupantsTx", mock.Anything, tx, uint64(2)).Return(3, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCapacityExceeded,
		},
		{
			name:    "error: negative distance",
			req:     &model.UpsertRackRequest{ID: 2, Distance: decimal.NewFromInt(-3)},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().UpsertRack(context.Background(), admin, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpsertRack() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.Capacity != tt.wantCap {
				t.Fatalf("UpsertRack() Capacity = %v, want %v", got.Capacity, tt.wantCap)
			}
		})
	}
}

func TestCatalogApp_UpsertRack_LogsFailingCall(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	logger.Replace(zap.New(core))
	t.Cleanup(func() { logger.Replace(zap.NewNop()) })

	f := newFields(t)
	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.rackRepo.On("LockTx", mock.Anything, tx, uint64(2)).Return(&model.RackEntity{ID: 2, Capacity: 3}, nil).Once()
	f.storageRepo.On("CountOccupantsTx", mock.Anything, tx, uint64(2)).Return(0, errors.New("connection reset")).Once()
	f.txRepo.On("RollbackTx", tx).Return(nil).Once()

	_, err := f.app().UpsertRack(context.Background(), admin, &model.UpsertRackRequest{ID: 2, Capacity: 3})
	require.Error(t, err)
	assert.Equal(t, constant.ErrTransaction, cerr.TypeOf(err))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "[UpsertRack] error storageRepo.CountOccupantsTx", entries[0].Message)
	assert.Equal(t, "catalog", entries[0].ContextMap()["component"])
	assert.Equal(t, uint64(2), entries[0].ContextMap()["rack_id"])
}

func TestCatalogApp_Deletes(t *testing.T) {
	referenced := &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}

	t.Run("rack still holding products", func(t *testing.T) {
		f := newFields(t)
		f.rackRepo.On("Delete", mock.Anything, uint64(1)).Return(false, referenced).Once()
		err := f.app().DeleteRack(context.Background(), admin, 1)
		assert.Equal(t, constant.ErrReferenced, cerr.TypeOf(err))
	})

	t.Run("unknown picker", func(t *testing.T) {
		f := newFields(t)
		f.pickerRepo.On("Delete", mock.Anything, uint64(4)).Return(false, nil).Once()
		err := f.app().DeletePicker(context.Background(), admin, 4)
		assert.Equal(t, constant.ErrPickerNotFound, cerr.TypeOf(err))
	})

	t.Run("product removed", func(t *testing.T) {
		f := newFields(t)
		f.productRepo.On("Delete", mock.Anything, uint64(3)).Return(true, nil).Once()
		assert.NoError(t, f.app().DeleteProduct(context.Background(), admin, 3))
	})

	t.Run("product referenced by orders", func(t *testing.T) {
		f := newFields(t)
		f.productRepo.On("Delete", mock.Anything, uint64(3)).Return(false, referenced).Once()
		err := f.app().DeleteProduct(context.Background(), admin, 3)
		assert.Equal(t, constant.ErrReferenced, cerr.TypeOf(err))
	})

	t.Run("store error", func(t *testing.T) {
		f := newFields(t)
		f.productRepo.On("Delete", mock.Anything, uint64(3)).Return(false, errors.New("timeout")).Once()
		err := f.app().DeleteProduct(context.Background(), admin, 3)
		assert.Equal(t, constant.ErrInternal, cerr.TypeOf(err))
	})
}
