package request_models

type UpsertProductRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description"`
	PriceMinor  int64  `json:"price_minor" binding:"required,min=0"`
	Currency    string `json:"currency" binding:"required,len=3"`
	Stock       int    `json:"stock" binding:"min=0"`
	ImagePath   string `json:"image_path"`
	IsActive    *bool  `json:"is_active"`
}

type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid4"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	Items  []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Method string             `json:"method" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid shipped delivered cancelled"`
}
