package catalog

import (
	"context"

	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	pickerrepo "github.com/muhammadheryan/warehouse/repository/picker"
	productrepo "github.com/muhammadheryan/warehouse/repository/product"
	rackrepo "github.com/muhammadheryan/warehouse/repository/rack"
	storagerepo "github.com/muhammadheryan/warehouse/repository/storage"
	txrepo "github.com/muhammadheryan/warehouse/repository/tx"
	"github.com/muhammadheryan/warehouse/utils/dberr"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/logger"
	validatorx "github.com/muhammadheryan/warehouse/utils/validator"
	"go.uber.org/zap"
)

var log = logger.Component("catalog")

// CatalogApp manages the reference data: products, racks and pickers.
type CatalogApp interface {
	ListProducts(ctx context.Context) ([]model.ProductEntity, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error)
	UpsertProduct(ctx context.Context, actor model.Actor, req *model.UpsertProductRequest) (*model.ProductEntity, error)
	DeleteProduct(ctx context.Context, actor model.Actor, id uint64) error

	ListRacks(ctx context.Context) ([]model.RackEntity, error)
	GetRack(ctx context.Context, id uint64) (*model.RackEntity, error)
	UpsertRack(ctx context.Context, actor model.Actor, req *model.UpsertRackRequest) (*model.RackEntity, error)
	DeleteRack(ctx context.Context, actor model.Actor, id uint64) error

	ListPickers(ctx context.Context) ([]model.PickerEntity, error)
	UpsertPicker(ctx context.Context, actor model.Actor, req *model.UpsertPickerRequest) (*model.PickerEntity, error)
	DeletePicker(ctx context.Context, actor model.Actor, id uint64) error
}

type catalogAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	productRepo productrepo.ProductRepository
	rackRepo    rackrepo.RackRepository
	pickerRepo  pickerrepo.PickerRepository
	storageRepo storagerepo.StorageRepository
}

func NewCatalogApp(config *config.Config, txRepo txrepo.TxRepository, productRepo productrepo.ProductRepository, rackRepo rackrepo.RackRepository, pickerRepo pickerrepo.PickerRepository, storageRepo storagerepo.StorageRepository) CatalogApp {
	return &catalogAppImpl{
		config:      config,
		txRepo:      txRepo,
		productRepo: productRepo,
		rackRepo:    rackRepo,
		pickerRepo:  pickerRepo,
		storageRepo: storageRepo,
	}
}

func (s *catalogAppImpl) ListProducts(ctx context.Context) ([]model.ProductEntity, error) {
	items, err := s.productRepo.List(ctx)
	if err != nil {
		log.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *catalogAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		log.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

func (s *catalogAppImpl) UpsertProduct(ctx context.Context, actor model.Actor, req *model.UpsertProductRequest) (*model.ProductEntity, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, validatorx.Describe(err))
	}

	entity := &model.ProductEntity{
		ID:      req.ID,
		Name:    req.Name,
		Weight:  req.Weight,
		Height:  req.Height,
		Width:   req.Width,
		Breadth: req.Breadth,
	}
	if err := s.productRepo.Upsert(ctx, entity); err != nil {
		log.Error("[UpsertProduct] error productRepo.Upsert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	log.Info("[UpsertProduct] product saved", zap.Uint64("product_id", req.ID), zap.Stringer("actor", actor))
	// popularity is owned by order commits, read it back rather than echo zero
	return s.GetProduct(ctx, req.ID)
}

// DeleteProduct removes the product; its placement row goes with it through the foreign key cascade.
func (s *catalogAppImpl) DeleteProduct(ctx context.Context, actor model.Actor, id uint64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		if dberr.IsReferenced(err) {
			return errors.SetCustomErrorDetail(constant.ErrReferenced, "product appears in orders")
		}
		log.Error("[DeleteProduct] error productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	log.Info("[DeleteProduct] product deleted", zap.Uint64("product_id", id), zap.Stringer("actor", actor))
	return nil
}

func (s *catalogAppImpl) ListRacks(ctx context.Context) ([]model.RackEntity, error) {
	racks, err := s.rackRepo.List(ctx)
	if err != nil {
		log.Error("[ListRacks] error rackRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return racks, nil
}

func (s *catalogAppImpl) GetRack(ctx context.Context, id uint64) (*model.RackEntity, error) {
	rack, err := s.rackRepo.GetByID(ctx, id)
	if err != nil {
		log.Error("[GetRack] error rackRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if rack == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return rack, nil
}

// UpsertRack refuses to shrink a rack below the number of products it already holds.
func (s *catalogAppImpl) UpsertRack(ctx context.Context, actor model.Actor, req *model.UpsertRackRequest) (*model.RackEntity, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, validatorx.Describe(err))
	}
	capacity := req.Capacity
	if capacity == 0 {
		capacity = s.config.Warehouse.DefaultRackCapacity
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		log.Error("[UpsertRack] error txRepo.BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existing, err := s.rackRepo.LockTx(ctx, tx, req.ID)
	if err != nil {
		log.Error("[UpsertRack] error rackRepo.LockTx", zap.Uint64("rack_id", req.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	if existing != nil {
		occupants, err := s.storageRepo.CountOccupantsTx(ctx, tx, req.ID)
		if err != nil {
			log.Error("[UpsertRack] error storageRepo.CountOccupantsTx", zap.Uint64("rack_id", req.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrTransaction)
		}
		if occupants > capacity {
			return nil, errors.SetCustomErrorDetail(constant.ErrCapacityExceeded, "rack holds more products than the new capacity")
		}
	}

	entity := &model.RackEntity{
		ID:          req.ID,
		AisleNumber: req.AisleNumber,
		Level:       req.Level,
		Distance:    req.Distance,
		Capacity:    capacity,
	}
	if err := s.rackRepo.UpsertTx(ctx, tx, entity); err != nil {
		log.Error("[UpsertRack] error rackRepo.UpsertTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		log.Error("[UpsertRack] error txRepo.CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	committed = true

	log.Info("[UpsertRack] rack saved", zap.Uint64("rack_id", req.ID), zap.Int("capacity", capacity), zap.Stringer("actor", actor))
	return entity, nil
}

func (s *catalogAppImpl) DeleteRack(ctx context.Context, actor model.Actor, id uint64) error {
	deleted, err := s.rackRepo.Delete(ctx, id)
	if err != nil {
		if dberr.IsReferenced(err) {
			return errors.SetCustomErrorDetail(constant.ErrReferenced, "rack holds products or picker assignments")
		}
		log.Error("[DeleteRack] error rackRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	log.Info("[DeleteRack] rack deleted", zap.Uint64("rack_id", id), zap.Stringer("actor", actor))
	return nil
}

func (s *catalogAppImpl) ListPickers(ctx context.Context) ([]model.PickerEntity, error) {
	pickers, err := s.pickerRepo.List(ctx)
	if err != nil {
		log.Error("[ListPickers] error pickerRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return pickers, nil
}

func (s *catalogAppImpl) UpsertPicker(ctx context.Context, actor model.Actor, req *model.UpsertPickerRequest) (*model.PickerEntity, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, validatorx.Describe(err))
	}
	entity := &model.PickerEntity{ID: req.ID, Name: req.Name, Shift: req.Shift}
	if err := s.pickerRepo.Upsert(ctx, entity); err != nil {
		log.Error("[UpsertPicker] error pickerRepo.Upsert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	log.Info("[UpsertPicker] picker saved", zap.Uint64("picker_id", req.ID), zap.Stringer("actor", actor))
	return entity, nil
}

func (s *catalogAppImpl) DeletePicker(ctx context.Context, actor model.Actor, id uint64) error {
	deleted, err := s.pickerRepo.Delete(ctx, id)
	if err != nil {
		if dberr.IsReferenced(err) {
			return errors.SetCustomErrorDetail(constant.ErrReferenced, "picker has assignments")
		}
		log.Error("[DeletePicker] error pickerRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrPickerNotFound)
	}
	log.Info("[DeletePicker] picker deleted", zap.Uint64("picker_id", id), zap.Stringer("actor", actor))
	return nil
}
