package response

import "slot-booking/internal/usecase/queries"

type AdminLoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type StatsResponse struct {
	Success bool               `json:"success"`
	Stats   *queries.StatsView `json:"stats"`
}
