package models

type AddCartItemRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" form:"quantity" binding:"omitempty,min=1,max=99"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" form:"quantity" binding:"required"`
}
