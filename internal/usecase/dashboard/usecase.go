package dashboard

import (
	"context"
	"fmt"
	"time"

	"loanadmin-backend/internal/domain/gateway"
	"loanadmin-backend/internal/domain/loan"
	"loanadmin-backend/internal/domain/productloan"
	"loanadmin-backend/internal/domain/user"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Usecase struct {
	gw    gateway.Gateway
	store *Store
	log   *zap.Logger
	now   func() time.Time
}

func NewUsecase(gw gateway.Gateway, store *Store, log *zap.Logger) *Usecase {
	return &Usecase{gw: gw, store: store, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Load fetches users, loans and tied-up product loans concurrently. A failing
// section keeps its previous rows and does not stop the others.
func (u *Usecase) Load(ctx context.Context) LoadReport {
	var g errgroup.Group

	g.Go(func() error {
		rows, err := u.gw.Users.List(ctx)
		u.store.SetUsers(rows, err, u.now())
		return wrapSection(SectionUsers, err)
	})
	g.Go(func() error {
		rows, err := u.gw.Loans.List(ctx)
		u.store.SetLoans(rows, err, u.now())
		return wrapSection(SectionLoans, err)
	})
	g.Go(func() error {
		rows, err := u.tiedProductLoans(ctx)
		u.store.SetProductLoans(rows, err, u.now())
		return wrapSection(SectionProductLoans, err)
	})

	if err := g.Wait(); err != nil {
		u.log.Warn("dashboard load finished with errors", zap.Error(err))
	}
	return LoadReport{Sections: u.store.Snapshot().Sections}
}

// tiedProductLoans only returns product loans of merchants with an NBFC tie-up.
func (u *Usecase) tiedProductLoans(ctx context.Context) ([]productloan.ProductLoan, error) {
	merchantIDs, err := u.gw.TieUps.MerchantIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("tie-ups: %w", err)
	}
	if len(merchantIDs) == 0 {
		return []productloan.ProductLoan{}, nil
	}
	return u.gw.ProductLoans.ListByMerchantIDs(ctx, merchantIDs)
}

func wrapSection(sec Section, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("load %s: %w", sec, err)
}

func (u *Usecase) Stats() StatsDTO {
	st := u.store.Snapshot()
	return StatsDTO{
		Users:        user.ComputeStats(st.Users),
		Loans:        loan.ComputeStats(st.Loans),
		ProductLoans: loan.ComputeStats(st.ProductLoans),
		Pending:      user.ComputePendingApprovals(st.Users),
		Sections:     st.Sections,
	}
}

// Users filters the cached list; it never hits the gateway.
func (u *Usecase) Users(b user.Bucket, query string) []user.User {
	return user.Filter(u.store.Snapshot().Users, b, query)
}

func (u *Usecase) Loans() []loan.Loan { return u.store.Snapshot().Loans }

func (u *Usecase) ProductLoans() []productloan.ProductLoan {
	return u.store.Snapshot().ProductLoans
}

func (u *Usecase) Pending() PendingDTO {
	users := u.store.Snapshot().Users
	return PendingDTO{
		Counts: user.ComputePendingApprovals(users),
		Users:  user.PendingUsers(users),
	}
}
