package request

type CreateProductRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	// Pointer so that an explicit 0 passes the required check.
	Quantity *int `json:"quantity" binding:"required,min=0,max=2147483647"`
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=2147483647"`
}
