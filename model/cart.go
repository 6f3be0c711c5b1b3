package model

import (
	"errors"
	"time"
)

// MaxItemQuantity matches the INT column order_item.quantity is stored in.
const MaxItemQuantity = 2147483647

var ErrQuantityLimit = errors.New("merged quantity exceeds 2147483647")

type CartItem struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0,lte=2147483647"`
}

// Cart is the client-held staging area for an order, never persisted relationally.
type Cart struct {
	CustomerID uint64     `json:"customer_id"`
	Items      []CartItem `json:"items"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Add appends an item, merging quantities when the product is already staged.
// The cart is left untouched when the merged quantity would pass MaxItemQuantity.
func (c *Cart) Add(item CartItem) error {
	if item.Quantity > MaxItemQuantity {
		return ErrQuantityLimit
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			if item.Quantity > MaxItemQuantity-c.Items[i].Quantity {
				return ErrQuantityLimit
			}
			c.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	c.Items = append(c.Items, item)
	return nil
}

func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}

type StageItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0,lte=2147483647"`
}
