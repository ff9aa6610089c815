package dashboard

import (
	"context"
	"errors"
	"testing"

	"loanadmin-backend/internal/domain/gateway"
	"loanadmin-backend/internal/domain/loan"
	"loanadmin-backend/internal/domain/productloan"
	"loanadmin-backend/internal/domain/user"
	"loanadmin-backend/internal/testutil/loanmock"
	"loanadmin-backend/internal/testutil/productloanmock"
	"loanadmin-backend/internal/testutil/tieupmock"
	"loanadmin-backend/internal/testutil/usermock"

	"go.uber.org/zap"
)

func fixtureUsers() []user.User {
	return []user.User{
		{ID: "m1", Role: user.RoleMerchant, IsActive: false, Username: "acme"},
		{ID: "c1", Role: user.RoleCustomer, IsActive: true, FullName: "John Doe"},
		{ID: "a1", Role: user.RoleAdmin, IsActive: false, Email: "john@finco.in"},
		{ID: "s1", Role: user.RoleSuperAdmin, IsActive: true},
	}
}

func fixtureGateway() (gateway.Gateway, *productloanmock.Repo) {
	pl := &productloanmock.Repo{
		ListByMerchantIDsFn: func(_ context.Context, ids []string) ([]productloan.ProductLoan, error) {
			return []productloan.ProductLoan{{ID: "p1", MerchantID: ids[0], Status: loan.StatusVerified}}, nil
		},
	}
	return gateway.Gateway{
		Users: &usermock.Repo{ListFn: func(context.Context) ([]user.User, error) { return fixtureUsers(), nil }},
		Loans: &loanmock.Repo{ListFn: func(context.Context) ([]loan.Loan, error) {
			return []loan.Loan{{Status: loan.StatusPending}, {Status: loan.StatusPending}, {Status: loan.StatusAccepted}, {Status: loan.StatusDisbursed}}, nil
		}},
		ProductLoans: pl,
		TieUps:       &tieupmock.Repo{MerchantIDsFn: func(context.Context) ([]string, error) { return []string{"m1"}, nil }},
	}, pl
}

func TestLoad_AllSectionsSucceed(t *testing.T) {
	gw, _ := fixtureGateway()
	uc := NewUsecase(gw, NewStore(), zap.NewNop())

	rep := uc.Load(context.Background())
	for _, sec := range []Section{SectionUsers, SectionLoans, SectionProductLoans} {
		if s := rep.Sections[sec]; !s.Loaded || s.Error != "" {
			t.Fatalf("section %s = %+v", sec, s)
		}
	}

	st := uc.Stats()
	if st.Users != (user.Stats{All: 4, NBFC: 1, Merchants: 1, Customers: 1}) {
		t.Fatalf("user stats = %+v", st.Users)
	}
	if st.Loans.Total != 4 || st.Loans.Pending != 2 || st.Loans.Accepted != 1 || st.Loans.Disbursed != 1 {
		t.Fatalf("loan stats = %+v", st.Loans)
	}
	if st.ProductLoans.Total != 1 || st.ProductLoans.Verified != 1 {
		t.Fatalf("product loan stats = %+v", st.ProductLoans)
	}
	if st.Pending != (user.PendingApprovals{Merchants: 1, NBFC: 1, Total: 2}) {
		t.Fatalf("pending = %+v", st.Pending)
	}
}

func TestLoad_PartialFailureKeepsOtherSections(t *testing.T) {
	gw, _ := fixtureGateway()
	store := NewStore()
	uc := NewUsecase(gw, store, zap.NewNop())
	uc.Load(context.Background())

	// second load: loans fail, users still refresh
	gw.Loans = &loanmock.Repo{ListFn: func(context.Context) ([]loan.Loan, error) { return nil, errors.New("loans down") }}
	gw.Users = &usermock.Repo{ListFn: func(context.Context) ([]user.User, error) { return fixtureUsers()[:1], nil }}
	uc = NewUsecase(gw, store, zap.NewNop())

	rep := uc.Load(context.Background())
	if s := rep.Sections[SectionLoans]; s.Error != "loans down" || !s.Loaded {
		t.Fatalf("loans section = %+v", s)
	}
	if s := rep.Sections[SectionUsers]; s.Error != "" || !s.Loaded {
		t.Fatalf("users section = %+v", s)
	}
	if got := uc.Stats(); got.Loans.Total != 4 || got.Users.All != 1 {
		t.Fatalf("expected previous loans and fresh users, got %+v", got)
	}
}

func TestLoad_FirstLoadFailureIsNotLoaded(t *testing.T) {
	gw, _ := fixtureGateway()
	gw.Users = &usermock.Repo{ListFn: func(context.Context) ([]user.User, error) { return nil, errors.New("boom") }}
	uc := NewUsecase(gw, NewStore(), zap.NewNop())

	rep := uc.Load(context.Background())
	if s := rep.Sections[SectionUsers]; s.Loaded || s.Error != "boom" {
		t.Fatalf("users section = %+v", s)
	}
	if s := rep.Sections[SectionLoans]; !s.Loaded {
		t.Fatalf("loans should still load: %+v", s)
	}
	if got := uc.Stats().Users; got.All != 0 {
		t.Fatalf("users stats = %+v", got)
	}
}

func TestLoad_NoTieUpsMeansNoProductLoans(t *testing.T) {
	gw, pl := fixtureGateway()
	gw.TieUps = &tieupmock.Repo{MerchantIDsFn: func(context.Context) ([]string, error) { return nil, nil }}
	pl.ListByMerchantIDsFn = func(context.Context, []string) ([]productloan.ProductLoan, error) {
		t.Errorf("product_loans must not be queried without tie-ups")
		return nil, nil
	}
	uc := NewUsecase(gw, NewStore(), zap.NewNop())

	uc.Load(context.Background())
	if rows := uc.ProductLoans(); len(rows) != 0 {
		t.Fatalf("product loans = %+v", rows)
	}
	if st := uc.Stats().ProductLoans; st.Total != 0 || st.Verified != 0 {
		t.Fatalf("product loan stats = %+v", st)
	}
}

func TestLoad_TieUpErrorFailsProductSection(t *testing.T) {
	gw, _ := fixtureGateway()
	gw.TieUps = &tieupmock.Repo{MerchantIDsFn: func(context.Context) ([]string, error) { return nil, errors.New("tieups down") }}
	uc := NewUsecase(gw, NewStore(), zap.NewNop())

	rep := uc.Load(context.Background())
	if s := rep.Sections[SectionProductLoans]; s.Loaded || s.Error != "tie-ups: tieups down" {
		t.Fatalf("product section = %+v", s)
	}
}

func TestUsersAndPending_ReadCachedSnapshot(t *testing.T) {
	gw, _ := fixtureGateway()
	calls := 0
	gw.Users = &usermock.Repo{ListFn: func(context.Context) ([]user.User, error) { calls++; return fixtureUsers(), nil }}
	uc := NewUsecase(gw, NewStore(), zap.NewNop())
	uc.Load(context.Background())

	got := uc.Users(user.BucketAll, "john")
	if len(got) != 2 || got[0].ID != "c1" || got[1].ID != "a1" {
		t.Fatalf("Users(all, john) = %+v", got)
	}
	if got := uc.Users(user.BucketNBFC, "john"); len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("Users(nbfc, john) = %+v", got)
	}
	p := uc.Pending()
	if p.Counts.Total != 2 || len(p.Users) != 2 {
		t.Fatalf("Pending = %+v", p)
	}
	if calls != 1 {
		t.Fatalf("filtering must not refetch, list called %d times", calls)
	}
}
