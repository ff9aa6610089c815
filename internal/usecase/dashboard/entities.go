package dashboard

import (
	"loanadmin-backend/internal/domain/loan"
	"loanadmin-backend/internal/domain/user"
)

type StatsDTO struct {
	Users        user.Stats               `json:"users"`
	Loans        loan.Stats               `json:"loans"`
	ProductLoans loan.Stats               `json:"product_loans"`
	Pending      user.PendingApprovals    `json:"pending"`
	Sections     map[Section]SectionState `json:"sections"`
}

type PendingDTO struct {
	Counts user.PendingApprovals `json:"counts"`
	Users  []user.User           `json:"users"`
}

type LoadReport struct {
	Sections map[Section]SectionState `json:"sections"`
}
