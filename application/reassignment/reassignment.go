package reassignment

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	rackrepo "github.com/muhammadheryan/warehouse/repository/rack"
	reassignmentrepo "github.com/muhammadheryan/warehouse/repository/reassignment"
	storagerepo "github.com/muhammadheryan/warehouse/repository/storage"
	txrepo "github.com/muhammadheryan/warehouse/repository/tx"
	"github.com/muhammadheryan/warehouse/thirdparty/broker"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"go.uber.org/zap"
)

var log = logger.Component("reassignment")

type ReassignmentApp interface {
	ReassignSafely(ctx context.Context, actor model.Actor, productID uint64) (*model.ReassignResult, error)
	ListReassignments(ctx context.Context, limit int) ([]model.ReassignmentRecord, error)
}

type reassignmentAppImpl struct {
	config           *config.Config
	txRepo           txrepo.TxRepository
	storageRepo      storagerepo.StorageRepository
	rackRepo         rackrepo.RackRepository
	reassignmentRepo reassignmentrepo.ReassignmentRepository
	publisher        broker.Publisher
}

func NewReassignmentApp(config *config.Config, txRepo txrepo.TxRepository, storageRepo storagerepo.StorageRepository, rackRepo rackrepo.RackRepository, reassignmentRepo reassignmentrepo.ReassignmentRepository, publisher broker.Publisher) ReassignmentApp {
	return &reassignmentAppImpl{
		config:           config,
		txRepo:           txRepo,
		storageRepo:      storageRepo,
		rackRepo:         rackRepo,
		reassignmentRepo: reassignmentRepo,
		publisher:        publisher,
	}
}

// ReassignSafely moves the product to the least loaded rack that can take it.
// A product already on the best rack is reported with Moved=false and no record is written.
func (s *reassignmentAppImpl) ReassignSafely(ctx context.Context, actor model.Actor, productID uint64) (*model.ReassignResult, error) {
	if productID == 0 {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "product id is required")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		log.Error("[ReassignSafely] error txRepo.BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	current, err := s.storageRepo.GetPlacementForUpdateTx(ctx, tx, productID)
	if err != nil {
		log.Error("[ReassignSafely] error storageRepo.GetPlacementForUpdateTx", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	if current == nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrNotFound, fmt.Sprintf("product %d is not placed", productID))
	}

	// every rack is a candidate, so all of them are locked in id order
	racks, err := s.rackRepo.LockAllTx(ctx, tx)
	if err != nil {
		log.Error("[ReassignSafely] error rackRepo.LockAllTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	occupancy, err := s.storageRepo.OccupancyByRackTx(ctx, tx)
	if err != nil {
		log.Error("[ReassignSafely] error storageRepo.OccupancyByRackTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}

	var (
		here       *model.RackOccupancy
		candidates = make([]model.RackOccupancy, 0, len(racks))
	)
	for _, r := range racks {
		ro := model.RackOccupancy{RackEntity: r, Occupants: occupancy[r.ID]}
		if r.ID == current.RackID {
			here = &ro
			continue
		}
		candidates = append(candidates, ro)
	}
	if here == nil {
		log.Error("[ReassignSafely] placement points at unknown rack", zap.Uint64("product_id", productID), zap.Uint64("rack_id", current.RackID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	decision, target := SelectTarget(*here, candidates)
	switch decision {
	case NoTarget:
		return nil, errors.SetCustomErrorDetail(constant.ErrNoCapacity, fmt.Sprintf("no rack can take product %d", productID))
	case Stay:
		return &model.ReassignResult{Moved: false, ProductID: productID, RackID: current.RackID}, nil
	}

	now := time.Now().UTC()
	if err := s.storageRepo.DeletePlacementTx(ctx, tx, productID, current.RackID); err != nil {
		if stderrors.Is(err, storagerepo.ErrPlacementChanged) {
			log.Warn("[ReassignSafely] placement changed under lock", zap.Uint64("product_id", productID))
		} else {
			log.Error("[ReassignSafely] error storageRepo.DeletePlacementTx", zap.String("error", err.Error()))
		}
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	if err := s.storageRepo.InsertPlacementTx(ctx, tx, productID, target.ID, now); err != nil {
		log.Error("[ReassignSafely] error storageRepo.InsertPlacementTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}

	record := &model.ReassignmentRecord{
		ProductID:    productID,
		OldRackID:    current.RackID,
		NewRackID:    target.ID,
		Reason:       constant.ReassignReasonPolicy,
		RequestedBy:  actor.String(),
		ReassignedAt: now,
	}
	id, err := s.reassignmentRepo.InsertTx(ctx, tx, record)
	if err != nil {
		log.Error("[ReassignSafely] error reassignmentRepo.InsertTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	record.ID = id

	if err := s.txRepo.CommitTx(tx); err != nil {
		log.Error("[ReassignSafely] error txRepo.CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	committed = true

	log.Info("[ReassignSafely] product moved",
		zap.Uint64("product_id", productID),
		zap.Uint64("old_rack_id", record.OldRackID),
		zap.Uint64("new_rack_id", record.NewRackID),
		zap.Stringer("actor", actor),
	)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, broker.NewEvent(constant.EventProductReassigned, productID, record)); err != nil {
			log.Error("[ReassignSafely] error publisher.Publish", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		}
	}

	return &model.ReassignResult{Moved: true, ProductID: productID, RackID: target.ID, Record: record}, nil
}

// ListReassignments returns the newest records first.
func (s *reassignmentAppImpl) ListReassignments(ctx context.Context, limit int) ([]model.ReassignmentRecord, error) {
	if limit <= 0 {
		limit = s.config.Warehouse.AuditDefaultLimit
	}
	if limit <= 0 {
		limit = constant.DefaultAuditLimit
	}
	if maxLimit := s.config.Warehouse.AuditMaxLimit; maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	records, err := s.reassignmentRepo.ListRecent(ctx, limit)
	if err != nil {
		log.Error("[ListReassignments] error reassignmentRepo.ListRecent", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return records, nil
}
