package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
)

// Profile is the public shape of an account, without the hash.
type Profile struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Mobile          string         `json:"mobile,omitempty"`
	Address         string         `json:"address,omitempty"`
	FavoriteService *string        `json:"favorite_service,omitempty"`
	Role            enums.UserRole `json:"role"`
	CreatedAt       time.Time      `json:"created_at"`
}

// FromModel converts the persisted user into its public profile.
func FromModel(user *models.User) Profile {
	return Profile{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Mobile:          user.Mobile,
		Address:         user.Address,
		FavoriteService: user.FavoriteService,
		Role:            user.Role,
		CreatedAt:       user.CreatedAt,
	}
}
