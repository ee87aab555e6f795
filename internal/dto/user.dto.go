package dto

import "github.com/BruksfildServices01/valet-reports/internal/models"

type UserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

// HomePath is where a client should land after login.
func HomePath(u *models.User) string {
	if u.IsAdmin() {
		return "/admin"
	}
	return "/dashboard"
}
