package user

import "sort"

type Stats struct {
	All       int `json:"all"`
	NBFC      int `json:"nbfc"`
	Merchants int `json:"merchants"`
	Customers int `json:"customers"`
}

// ComputeStats counts users per role bucket. super_admin rows only count towards All.
func ComputeStats(users []User) Stats {
	s := Stats{All: len(users)}
	for _, u := range users {
		switch {
		case u.Role.IsNBFC():
			s.NBFC++
		case u.Role == RoleMerchant:
			s.Merchants++
		case u.Role.IsCustomer():
			s.Customers++
		}
	}
	return s
}

type PendingApprovals struct {
	Merchants int `json:"merchants"`
	NBFC      int `json:"nbfc"`
	Total     int `json:"total"`
}

// awaitingApproval is true for inactive merchant and NBFC accounts.
func awaitingApproval(u User) bool {
	return !u.IsActive && (u.Role == RoleMerchant || u.Role.IsNBFC())
}

func ComputePendingApprovals(users []User) PendingApprovals {
	var p PendingApprovals
	for _, u := range users {
		if !awaitingApproval(u) {
			continue
		}
		if u.Role == RoleMerchant {
			p.Merchants++
		} else {
			p.NBFC++
		}
	}
	p.Total = p.Merchants + p.NBFC
	return p
}

// PendingUsers returns the accounts awaiting approval, newest first.
func PendingUsers(users []User) []User {
	out := make([]User, 0)
	for _, u := range users {
		if awaitingApproval(u) {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
