package enrichment

import (
	"loanadmin-backend/internal/domain/profile"
	"loanadmin-backend/internal/domain/user"
)

// DetailDTO is what the user detail view renders.
type DetailDTO struct {
	User    user.User      `json:"user"`
	Profile profile.Detail `json:"profile"`
}
