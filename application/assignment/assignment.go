package assignment

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	assignmentrepo "github.com/muhammadheryan/warehouse/repository/assignment"
	orderrepo "github.com/muhammadheryan/warehouse/repository/order"
	pickerrepo "github.com/muhammadheryan/warehouse/repository/picker"
	storagerepo "github.com/muhammadheryan/warehouse/repository/storage"
	txrepo "github.com/muhammadheryan/warehouse/repository/tx"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"go.uber.org/zap"
)

var log = logger.Component("assignment")

type AssignmentApp interface {
	AssignPicker(ctx context.Context, actor model.Actor, pickerID, orderID uint64) ([]model.PickerAssignment, error)
	ListOrderAssignments(ctx context.Context, orderID uint64) ([]model.PickerAssignmentView, error)
	ListPickerAssignments(ctx context.Context, pickerID uint64) ([]model.PickerAssignmentView, error)
}

type assignmentAppImpl struct {
	txRepo         txrepo.TxRepository
	assignmentRepo assignmentrepo.AssignmentRepository
	orderRepo      orderrepo.OrderRepository
	pickerRepo     pickerrepo.PickerRepository
	storageRepo    storagerepo.StorageRepository
}

func NewAssignmentApp(txRepo txrepo.TxRepository, assignmentRepo assignmentrepo.AssignmentRepository, orderRepo orderrepo.OrderRepository, pickerRepo pickerrepo.PickerRepository, storageRepo storagerepo.StorageRepository) AssignmentApp {
	return &assignmentAppImpl{
		txRepo:         txRepo,
		assignmentRepo: assignmentRepo,
		orderRepo:      orderRepo,
		pickerRepo:     pickerRepo,
		storageRepo:    storageRepo,
	}
}

// AssignPicker routes the picker to every rack currently holding an item of the order.
// Rows are a snapshot of the ledger at this moment; later moves do not rewrite them.
func (s *assignmentAppImpl) AssignPicker(ctx context.Context, actor model.Actor, pickerID, orderID uint64) ([]model.PickerAssignment, error) {
	if pickerID == 0 || orderID == 0 {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "picker id and order id are required")
	}

	picker, err := s.pickerRepo.GetByID(ctx, pickerID)
	if err != nil {
		log.Error("[AssignPicker] error pickerRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if picker == nil {
		return nil, errors.SetCustomError(constant.ErrPickerNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		log.Error("[AssignPicker] error txRepo.BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderTx(ctx, tx, orderID)
	if err != nil {
		log.Error("[AssignPicker] error orderRepo.GetOrderTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrOrderNotFound)
	}

	items, err := s.orderRepo.ListItemsTx(ctx, tx, orderID)
	if err != nil {
		log.Error("[AssignPicker] error orderRepo.ListItemsTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}

	seen := make(map[uint64]struct{}, len(items))
	racks := make([]uint64, 0, len(items))
	for _, it := range items {
		// share lock keeps the product from moving until the routing is committed
		p, err := s.storageRepo.GetPlacementShareTx(ctx, tx, it.ProductID)
		if err != nil {
			log.Error("[AssignPicker] error storageRepo.GetPlacementShareTx", zap.Uint64("product_id", it.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrTransaction)
		}
		if p == nil {
			return nil, errors.SetCustomErrorDetail(constant.ErrProductNotPlaced, fmt.Sprintf("product %d", it.ProductID))
		}
		if _, ok := seen[p.RackID]; ok {
			continue
		}
		seen[p.RackID] = struct{}{}
		racks = append(racks, p.RackID)
	}
	sort.Slice(racks, func(i, j int) bool { return racks[i] < racks[j] })

	now := time.Now().UTC()
	rows := make([]model.PickerAssignment, 0, len(racks))
	for _, rackID := range racks {
		rows = append(rows, model.PickerAssignment{PickerID: pickerID, RackID: rackID, OrderID: orderID, AssignedAt: now})
	}
	if err := s.assignmentRepo.InsertTx(ctx, tx, rows); err != nil {
		log.Error("[AssignPicker] error assignmentRepo.InsertTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}

	// re-read so repeated calls return the originally routed rows
	result, err := s.assignmentRepo.ListForPickerOrderTx(ctx, tx, pickerID, orderID)
	if err != nil {
		log.Error("[AssignPicker] error assignmentRepo.ListForPickerOrderTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		log.Error("[AssignPicker] error txRepo.CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	committed = true

	log.Info("[AssignPicker] picker assigned",
		zap.Uint64("picker_id", pickerID),
		zap.Uint64("order_id", orderID),
		zap.Int("racks", len(racks)),
		zap.Stringer("actor", actor),
	)
	return result, nil
}

func (s *assignmentAppImpl) ListOrderAssignments(ctx context.Context, orderID uint64) ([]model.PickerAssignmentView, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		log.Error("[ListOrderAssignments] error orderRepo.GetOrder", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrOrderNotFound)
	}
	rows, err := s.assignmentRepo.ListByOrder(ctx, orderID)
	if err != nil {
		log.Error("[ListOrderAssignments] error assignmentRepo.ListByOrder", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

func (s *assignmentAppImpl) ListPickerAssignments(ctx context.Context, pickerID uint64) ([]model.PickerAssignmentView, error) {
	picker, err := s.pickerRepo.GetByID(ctx, pickerID)
	if err != nil {
		log.Error("[ListPickerAssignments] error pickerRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if picker == nil {
		return nil, errors.SetCustomError(constant.ErrPickerNotFound)
	}
	rows, err := s.assignmentRepo.ListByPicker(ctx, pickerID)
	if err != nil {
		log.Error("[ListPickerAssignments] error assignmentRepo.ListByPicker", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}
