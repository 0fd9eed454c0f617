package request

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled failed"`
}

type AdminOrdersQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled failed"`
	Limit  int32  `form:"limit" binding:"omitempty,min=1,max=500"`
}

type AdminSlotsQuery struct {
	From string `form:"from"`
}
