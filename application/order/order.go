package order

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	cartrepo "github.com/muhammadheryan/warehouse/repository/cart"
	customerrepo "github.com/muhammadheryan/warehouse/repository/customer"
	orderrepo "github.com/muhammadheryan/warehouse/repository/order"
	productrepo "github.com/muhammadheryan/warehouse/repository/product"
	txrepo "github.com/muhammadheryan/warehouse/repository/tx"
	"github.com/muhammadheryan/warehouse/thirdparty/broker"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/logger"
	validatorx "github.com/muhammadheryan/warehouse/utils/validator"
	"go.uber.org/zap"
)

var log = logger.Component("order")

type OrderApp interface {
	StageItem(ctx context.Context, customerID uint64, req *model.StageItemRequest) (*model.Cart, error)
	GetCart(ctx context.Context, customerID uint64) (*model.Cart, error)
	ClearCart(ctx context.Context, customerID uint64) error
	CommitOrder(ctx context.Context, actor model.Actor, cart *model.Cart) (*model.CommitOrderResponse, error)
	CommitStagedCart(ctx context.Context, actor model.Actor, customerID uint64) (*model.CommitOrderResponse, error)
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderDetail, error)
}

type orderAppImpl struct {
	txRepo       txrepo.TxRepository
	orderRepo    orderrepo.OrderRepository
	customerRepo customerrepo.CustomerRepository
	productRepo  productrepo.ProductRepository
	cartRepo     cartrepo.CartRepository
	publisher    broker.Publisher
}

func NewOrderApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, customerRepo customerrepo.CustomerRepository, productRepo productrepo.ProductRepository, cartRepo cartrepo.CartRepository, publisher broker.Publisher) OrderApp {
	return &orderAppImpl{
		txRepo:       txRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		cartRepo:     cartRepo,
		publisher:    publisher,
	}
}

// StageItem checks the product against the catalog and adds it to the customer's cart.
// Nothing is written to the relational store.
func (s *orderAppImpl) StageItem(ctx context.Context, customerID uint64, req *model.StageItemRequest) (*model.Cart, error) {
	if customerID == 0 {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "customer id is required")
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, validatorx.Describe(err))
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		log.Error("[StageItem] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, fmt.Sprintf("unknown product %d", req.ProductID))
	}

	cart, err := s.cartRepo.Get(ctx, customerID)
	if err != nil {
		log.Error("[StageItem] error cartRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	cart.CustomerID = customerID
	if err := cart.Add(model.CartItem{ProductID: req.ProductID, Quantity: req.Quantity}); err != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, fmt.Sprintf("product %d: %s", req.ProductID, err.Error()))
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		log.Error("[StageItem] error cartRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return cart, nil
}

func (s *orderAppImpl) GetCart(ctx context.Context, customerID uint64) (*model.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, customerID)
	if err != nil {
		log.Error("[GetCart] error cartRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return cart, nil
}

func (s *orderAppImpl) ClearCart(ctx context.Context, customerID uint64) error {
	if err := s.cartRepo.Delete(ctx, customerID); err != nil {
		log.Error("[ClearCart] error cartRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// CommitStagedCart commits the customer's staged cart and clears it once the order exists.
// A cart sent inline to CommitOrder never touches the staged one.
func (s *orderAppImpl) CommitStagedCart(ctx context.Context, actor model.Actor, customerID uint64) (*model.CommitOrderResponse, error) {
	cart, err := s.cartRepo.Get(ctx, customerID)
	if err != nil {
		log.Error("[CommitStagedCart] error cartRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	cart.CustomerID = customerID

	resp, err := s.CommitOrder(ctx, actor, cart)
	if err != nil {
		return nil, err
	}

	// the order exists now; a stale cart is only an inconvenience
	if err := s.cartRepo.Delete(ctx, customerID); err != nil {
		log.Warn("[CommitStagedCart] error cartRepo.Delete", zap.Uint64("customer_id", customerID), zap.String("error", err.Error()))
	}
	return resp, nil
}

// CommitOrder writes the order header and every line item in one transaction.
func (s *orderAppImpl) CommitOrder(ctx context.Context, actor model.Actor, cart *model.Cart) (*model.CommitOrderResponse, error) {
	items, err := normalizeCart(cart)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		log.Error("[CommitOrder] error txRepo.BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// validate references before the first insert
	exists, err := s.customerRepo.ExistsTx(ctx, tx, cart.CustomerID)
	if err != nil {
		log.Error("[CommitOrder] error customerRepo.ExistsTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	if !exists {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, fmt.Sprintf("unknown customer %d", cart.CustomerID))
	}

	productIDs := make([]uint64, 0, len(items))
	for _, it := range items {
		productIDs = append(productIDs, it.ProductID)
	}
	missing, err := s.productRepo.MissingTx(ctx, tx, productIDs)
	if err != nil {
		log.Error("[CommitOrder] error productRepo.MissingTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	if len(missing) > 0 {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, fmt.Sprintf("unknown products %v", missing))
	}

	orderDate := time.Now().UTC().Truncate(time.Second)
	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		CustomerID: cart.CustomerID,
		OrderDate:  orderDate,
	})
	if err != nil {
		log.Error("[CommitOrder] error orderRepo.InsertOrderTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, items); err != nil {
		log.Error("[CommitOrder] error orderRepo.InsertOrderItemsTx", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}

	for _, it := range items {
		if err := s.productRepo.IncrementPopularityTx(ctx, tx, it.ProductID, it.Quantity); err != nil {
			log.Error("[CommitOrder] error productRepo.IncrementPopularityTx", zap.Uint64("product_id", it.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrTransaction)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		log.Error("[CommitOrder] error txRepo.CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrTransaction)
	}
	committed = true

	log.Info("[CommitOrder] order committed",
		zap.Uint64("order_id", orderID),
		zap.Uint64("customer_id", cart.CustomerID),
		zap.Int("items", len(items)),
		zap.Stringer("actor", actor),
	)

	if s.publisher != nil {
		evt := broker.NewEvent(constant.EventOrderPlaced, orderID, model.OrderPlacedPayload{
			OrderID:    orderID,
			CustomerID: cart.CustomerID,
			Items:      items,
			PlacedBy:   actor.String(),
		})
		if err := s.publisher.Publish(ctx, evt); err != nil {
			log.Error("[CommitOrder] error publisher.Publish", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		}
	}

	return &model.CommitOrderResponse{
		OrderID:   orderID,
		OrderDate: orderDate,
		ItemCount: len(items),
	}, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID uint64) (*model.OrderDetail, error) {
	o, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		log.Error("[GetOrder] error orderRepo.GetOrder", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if o == nil {
		return nil, errors.SetCustomError(constant.ErrOrderNotFound)
	}
	items, err := s.orderRepo.ListItems(ctx, orderID)
	if err != nil {
		log.Error("[GetOrder] error orderRepo.ListItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.OrderDetail{OrderEntity: *o, Items: items}, nil
}

// normalizeCart validates every line and merges repeated products, keeping first-seen order.
func normalizeCart(cart *model.Cart) ([]model.CartItem, error) {
	if cart == nil || cart.CustomerID == 0 {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "customer id is required")
	}
	if cart.Empty() {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "cart is empty")
	}

	merged := &model.Cart{}
	for _, it := range cart.Items {
		if err := validatorx.ValidateStruct(&it); err != nil {
			return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, validatorx.Describe(err))
		}
		if err := merged.Add(it); err != nil {
			return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, fmt.Sprintf("product %d: %s", it.ProductID, err.Error()))
		}
	}
	return merged.Items, nil
}
