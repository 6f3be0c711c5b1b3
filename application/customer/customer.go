package customer

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	customerrepo "github.com/muhammadheryan/warehouse/repository/customer"
	"github.com/muhammadheryan/warehouse/utils/dberr"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/logger"
	validatorx "github.com/muhammadheryan/warehouse/utils/validator"
	"go.uber.org/zap"
)

var log = logger.Component("customer")

type CustomerApp interface {
	Register(ctx context.Context, actor model.Actor, req *model.RegisterCustomerRequest) (*model.CustomerEntity, error)
	GetCustomer(ctx context.Context, id uint64) (*model.CustomerEntity, error)
	ListCustomers(ctx context.Context) ([]model.CustomerEntity, error)
	DeleteCustomer(ctx context.Context, actor model.Actor, id uint64) error
}

type customerAppImpl struct {
	customerRepo customerrepo.CustomerRepository
}

func NewCustomerApp(customerRepo customerrepo.CustomerRepository) CustomerApp {
	return &customerAppImpl{customerRepo: customerRepo}
}

func (s *customerAppImpl) Register(ctx context.Context, actor model.Actor, req *model.RegisterCustomerRequest) (*model.CustomerEntity, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, validatorx.Describe(err))
	}

	existing, err := s.customerRepo.Get(ctx, &model.CustomerFilter{Email: req.Email})
	if err != nil {
		log.Error("[Register] err customerRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrDuplicateKey, "email "+req.Email)
	}

	entity, err := s.customerRepo.Create(ctx, &model.CustomerEntity{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// lost the race against a concurrent registration with the same email
		if dberr.IsDuplicate(err) {
			return nil, errors.SetCustomErrorDetail(constant.ErrDuplicateKey, "email "+req.Email)
		}
		log.Error("[Register] err customerRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	log.Info("[Register] customer registered", zap.Uint64("customer_id", entity.ID), zap.Stringer("actor", actor))
	return entity, nil
}

func (s *customerAppImpl) GetCustomer(ctx context.Context, id uint64) (*model.CustomerEntity, error) {
	c, err := s.customerRepo.Get(ctx, &model.CustomerFilter{ID: id})
	if err != nil {
		log.Error("[GetCustomer] err customerRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return c, nil
}

func (s *customerAppImpl) ListCustomers(ctx context.Context) ([]model.CustomerEntity, error) {
	res, err := s.customerRepo.List(ctx)
	if err != nil {
		log.Error("[ListCustomers] err customerRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return res, nil
}

func (s *customerAppImpl) DeleteCustomer(ctx context.Context, actor model.Actor, id uint64) error {
	deleted, err := s.customerRepo.Delete(ctx, id)
	if err != nil {
		if dberr.IsReferenced(err) {
			return errors.SetCustomErrorDetail(constant.ErrReferenced, "customer has orders")
		}
		log.Error("[DeleteCustomer] err customerRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	log.Info("[DeleteCustomer] customer deleted", zap.Uint64("customer_id", id), zap.Stringer("actor", actor))
	return nil
}
