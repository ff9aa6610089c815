package enrichment

import (
	"context"
	"errors"
	"strings"

	"loanadmin-backend/internal/domain/address"
	"loanadmin-backend/internal/domain/gateway"
	"loanadmin-backend/internal/domain/loan"
	"loanadmin-backend/internal/domain/productloan"
	"loanadmin-backend/internal/domain/profile"
	"loanadmin-backend/internal/domain/user"

	"go.uber.org/zap"
)

// Lookup resolves users already held in memory.
type Lookup interface {
	User(id string) (user.User, bool)
}

type Usecase struct {
	gw     gateway.Gateway
	lookup Lookup
	log    *zap.Logger
}

func NewUsecase(gw gateway.Gateway, lookup Lookup, log *zap.Logger) *Usecase {
	return &Usecase{gw: gw, lookup: lookup, log: log}
}

// step is one source in the chain. run is skipped when needs reports false.
type step struct {
	name  string
	needs func(acc *DetailDTO) bool
	run   func(ctx context.Context, acc *DetailDTO) error
}

func (u *Usecase) steps() []step {
	return []step{
		{name: "address", needs: always, run: u.fromAddress},
		{name: "loan", needs: missingContact, run: u.fromLoan},
		{name: "product_loan", needs: missingContact, run: u.fromProductLoan},
		{name: "merchant_profile", needs: roleIs(user.RoleMerchant), run: u.merchantProfile},
		{name: "nbfc_profile", needs: isNBFC, run: u.nbfcProfile},
	}
}

// Detail loads a user (cache first, then the gateway) and enriches it.
func (u *Usecase) Detail(ctx context.Context, userID string) (*DetailDTO, error) {
	target, ok := u.lookup.User(userID)
	if !ok {
		got, err := u.gw.Users.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		target = *got
	}
	out := u.Enrich(ctx, target)
	return &out, nil
}

// Enrich runs every applicable step in order. A failing step is logged and the
// chain moves on; fields that already hold a value are never replaced.
func (u *Usecase) Enrich(ctx context.Context, target user.User) DetailDTO {
	acc := DetailDTO{User: target, Profile: profile.None()}
	for _, s := range u.steps() {
		if !s.needs(&acc) {
			continue
		}
		if err := s.run(ctx, &acc); err != nil {
			if isNotFound(err) {
				u.log.Debug("enrichment source empty", zap.String("step", s.name), zap.String("user_id", target.ID))
				continue
			}
			u.log.Warn("enrichment step failed", zap.String("step", s.name), zap.String("user_id", target.ID), zap.Error(err))
		}
	}
	return acc
}

func (u *Usecase) fromAddress(ctx context.Context, acc *DetailDTO) error {
	a, err := u.gw.Addresses.DefaultByUserID(ctx, acc.User.ID)
	if err != nil {
		return err
	}
	fill(&acc.User.Address, a.Formatted())
	fill(&acc.User.Phone, a.Phone)
	return nil
}

func (u *Usecase) fromLoan(ctx context.Context, acc *DetailDTO) error {
	l, err := u.gw.Loans.LatestByUserID(ctx, acc.User.ID)
	if err != nil {
		return err
	}
	applyContact(&acc.User, l.Contact())
	return nil
}

func (u *Usecase) fromProductLoan(ctx context.Context, acc *DetailDTO) error {
	p, err := u.gw.ProductLoans.LatestByUserID(ctx, acc.User.ID)
	if err != nil {
		return err
	}
	applyContact(&acc.User, p.Contact())
	return nil
}

func (u *Usecase) merchantProfile(ctx context.Context, acc *DetailDTO) error {
	p, err := u.gw.Profiles.MerchantByUserID(ctx, acc.User.ID)
	if err != nil {
		return err
	}
	acc.Profile = profile.OfMerchant(p)
	return nil
}

func (u *Usecase) nbfcProfile(ctx context.Context, acc *DetailDTO) error {
	p, err := u.gw.Profiles.NBFCByUserID(ctx, acc.User.ID)
	if err != nil {
		return err
	}
	acc.Profile = profile.OfNBFC(p)
	fill(&acc.User.Address, p.OfficeAddress)
	fill(&acc.User.Phone, p.ContactNumber)
	fill(&acc.User.Email, p.OfficialEmail)
	return nil
}

func applyContact(u *user.User, c loan.Contact) {
	fill(&u.DateOfBirth, c.DateOfBirth)
	fill(&u.Mobile, c.Mobile, c.Phone)
	fill(&u.Phone, c.Phone, c.Mobile)
	fill(&u.Address, c.Address)
	fill(&u.Email, c.Email)
}

// fill sets *dst to the first non-blank candidate, only if *dst is blank.
func fill(dst *string, candidates ...string) {
	if strings.TrimSpace(*dst) != "" {
		return
	}
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			*dst = c
			return
		}
	}
}

func always(*DetailDTO) bool { return true }

func missingContact(acc *DetailDTO) bool {
	u := acc.User
	for _, f := range []string{u.DateOfBirth, u.Mobile, u.Phone, u.Address} {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}

func roleIs(r user.Role) func(*DetailDTO) bool {
	return func(acc *DetailDTO) bool { return acc.User.Role == r }
}

func isNBFC(acc *DetailDTO) bool { return acc.User.Role.IsNBFC() }

func isNotFound(err error) bool {
	return errors.Is(err, address.ErrNotFound) ||
		errors.Is(err, loan.ErrNotFound) ||
		errors.Is(err, productloan.ErrNotFound) ||
		errors.Is(err, profile.ErrNotFound)
}
