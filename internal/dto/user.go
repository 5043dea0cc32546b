package dto

import "github.com/wisteria-dev/taskboard-api/internal/models"

// UserDTO is the public view of a user. The password hash is never part of
// any response shape.
type UserDTO struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
	Title   string `json:"title"`
}

// TeamMemberDTO is the reduced view used by the team listing.
type TeamMemberDTO struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// ToUserDTO converts a user model to its public view
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		IsAdmin: user.IsAdmin,
		Title:   user.Title,
	}
}

// ToTeamMemberDTO converts a user model to the team listing view
func ToTeamMemberDTO(user models.User) TeamMemberDTO {
	return TeamMemberDTO{
		ID:       user.ID,
		Name:     user.Name,
		Title:    user.Title,
		Role:     user.Role,
		Email:    user.Email,
		IsActive: user.IsActive,
	}
}
