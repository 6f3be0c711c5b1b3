package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	productrepo "github.com/muhammadheryan/warehouse/repository/product"
	rackrepo "github.com/muhammadheryan/warehouse/repository/rack"
	reassignmentrepo "github.com/muhammadheryan/warehouse/repository/reassignment"
	storagerepo "github.com/muhammadheryan/warehouse/repository/storage"
	txrepo "github.com/muhammadheryan/warehouse/repository/tx"
	"github.com/muhammadheryan/warehouse/thirdparty/broker"
	"github.com/muhammadheryan/warehouse/utils/dberr"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"go.uber.org/zap"
)

var log = logger.Component("storage")

// StorageApp is the storage ledger: which rack holds which product.
type StorageApp interface {
	PlaceProduct(ctx context.Context, actor model.Actor, productID, rackID uint64) (*model.PlaceProductResponse, error)
	CurrentRack(ctx context.Context, productID uint64) (*model.Placement, error)
	RackOccupants(ctx context.Context, rackID uint64) (*model.RackOccupantsResponse, error)
}

type storageAppImpl struct {
	txRepo           txrepo.TxRepository
	storageRepo      storagerepo.StorageRepository
	productRepo      productrepo.ProductRepository
	rackRepo         rackrepo.RackRepository
	reassignmentRepo reassignmentrepo.ReassignmentRepository
	publisher        broker.Publisher
}

func NewStorageApp(txRepo txrepo.TxRepository, storageRepo storagerepo.StorageRepository, productRepo productrepo.ProductRepository, rackRepo rackrepo.RackRepository, reassignmentRepo reassignmentrepo.ReassignmentRepository, publisher broker.Publisher) StorageApp {
	return &storageAppImpl{
		txRepo:           txRepo,
		storageRepo:      storageRepo,
		productRepo:      productRepo,
		rackRepo:         rackRepo,
		reassignmentRepo: reassignmentRepo,
		publisher:        publisher,
	}
}

// PlaceProduct stores the product on rackID, overwriting any earlier placement.
// Moving an already placed product is logged as a manual reassignment in the same transaction.
func (s *storageAppImpl) PlaceProduct(ctx context.Context, actor model.Actor, productID, rackID uint64) (*model.PlaceProductResponse, error) {
	if productID == 0 || rackID == 0 {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "product id and rack id are required")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		log.Error("[PlaceProduct] error txRepo.BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// the product row serializes placements of one product even when no placement row exists yet
	found, err := s.productRepo.LockTx(ctx, tx, productID)
	if err != nil {
		log.Error("[PlaceProduct] error productRepo.LockTx", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	if !found {
		return nil, errors.SetCustomErrorDetail(constant.ErrNotFound, fmt.Sprintf("product %d", productID))
	}

	// then placement row, then rack row; reassignment takes the last two in the same order
	current, err := s.storageRepo.GetPlacementForUpdateTx(ctx, tx, productID)
	if err != nil {
		log.Error("[PlaceProduct] error storageRepo.GetPlacementForUpdateTx", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	if current != nil && current.RackID == rackID {
		return nil, errors.SetCustomErrorDetail(constant.ErrDuplicateKey, fmt.Sprintf("product %d is already on rack %d", productID, rackID))
	}

	rack, err := s.rackRepo.LockTx(ctx, tx, rackID)
	if err != nil {
		log.Error("[PlaceProduct] error rackRepo.LockTx", zap.Uint64("rack_id", rackID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	if rack == nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrNotFound, fmt.Sprintf("rack %d", rackID))
	}

	occupants, err := s.storageRepo.CountOccupantsTx(ctx, tx, rackID)
	if err != nil {
		log.Error("[PlaceProduct] error storageRepo.CountOccupantsTx", zap.Uint64("rack_id", rackID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	if occupants >= rack.Capacity {
		return nil, errors.SetCustomErrorDetail(constant.ErrCapacityExceeded, fmt.Sprintf("rack %d holds %d of %d", rackID, occupants, rack.Capacity))
	}

	now := time.Now().UTC()
	if err := s.storageRepo.UpsertPlacementTx(ctx, tx, productID, rackID, now); err != nil {
		if dberr.IsMissingReference(err) {
			return nil, errors.SetCustomErrorDetail(constant.ErrNotFound, fmt.Sprintf("product %d", productID))
		}
		log.Error("[PlaceProduct] error storageRepo.UpsertPlacementTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}

	var record *model.ReassignmentRecord
	if current != nil {
		record = &model.ReassignmentRecord{
			ProductID:    productID,
			OldRackID:    current.RackID,
			NewRackID:    rackID,
			Reason:       constant.ReassignReasonManual,
			RequestedBy:  actor.String(),
			ReassignedAt: now,
		}
		id, err := s.reassignmentRepo.InsertTx(ctx, tx, record)
		if err != nil {
			log.Error("[PlaceProduct] error reassignmentRepo.InsertTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrTransaction)
		}
		record.ID = id
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		log.Error("[PlaceProduct] error txRepo.CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	committed = true

	log.Info("[PlaceProduct] product placed",
		zap.Uint64("product_id", productID),
		zap.Uint64("rack_id", rackID),
		zap.Bool("relocated", record != nil),
		zap.Stringer("actor", actor),
	)

	if record != nil && s.publisher != nil {
		evt := broker.NewEvent(constant.EventProductReassigned, productID, record)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			log.Error("[PlaceProduct] error publisher.Publish", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		}
	}

	return &model.PlaceProductResponse{
		Placement:  model.Placement{ProductID: productID, RackID: rackID, PlacedAt: now},
		Relocation: record,
	}, nil
}

func (s *storageAppImpl) CurrentRack(ctx context.Context, productID uint64) (*model.Placement, error) {
	p, err := s.storageRepo.GetPlacement(ctx, productID)
	if err != nil {
		log.Error("[CurrentRack] error storageRepo.GetPlacement", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if p == nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrNotFound, fmt.Sprintf("product %d is not placed", productID))
	}
	return p, nil
}

func (s *storageAppImpl) RackOccupants(ctx context.Context, rackID uint64) (*model.RackOccupantsResponse, error) {
	rack, err := s.rackRepo.GetByID(ctx, rackID)
	if err != nil {
		log.Error("[RackOccupants] error rackRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if rack == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	ids, err := s.storageRepo.ListOccupants(ctx, rackID)
	if err != nil {
		log.Error("[RackOccupants] error storageRepo.ListOccupants", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.RackOccupantsResponse{RackID: rackID, Capacity: rack.Capacity, ProductIDs: ids}, nil
}
