package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"loanadmin-backend/internal/domain/address"
	"loanadmin-backend/internal/domain/gateway"
	"loanadmin-backend/internal/domain/loan"
	"loanadmin-backend/internal/domain/productloan"
	"loanadmin-backend/internal/domain/profile"
	"loanadmin-backend/internal/domain/user"
	"loanadmin-backend/internal/testutil/addressmock"
	"loanadmin-backend/internal/testutil/loanmock"
	"loanadmin-backend/internal/testutil/productloanmock"
	"loanadmin-backend/internal/testutil/profilemock"
	"loanadmin-backend/internal/testutil/tieupmock"
	"loanadmin-backend/internal/testutil/usermock"
	"loanadmin-backend/internal/usecase/dashboard"
	"loanadmin-backend/internal/usecase/enrichment"
	"loanadmin-backend/internal/usecase/status"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func seedUsers() []user.User {
	return []user.User{
		{ID: "m1", Role: user.RoleMerchant, Username: "acme", CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "n1", Role: user.RoleNBFCAdmin, Email: "ops@finco.in", CreatedAt: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "c1", Role: user.RoleCustomer, IsActive: true, FullName: "John Doe"},
		{ID: "u1", Role: user.RoleUser, IsActive: true, Mobile: "98200 john"},
		{ID: "s1", Role: user.RoleSuperAdmin, IsActive: true, Username: "root"},
	}
}

// fixture wires the real usecases over function-backed gateway mocks.
type fixture struct {
	e      *echo.Echo
	gw     gateway.Gateway
	users  *usermock.Repo
	store  *dashboard.Store
	dash   *dashboard.Usecase
	detail *enrichment.Usecase
	status *status.Usecase
	userH  *UserHandler
	notifH *NotificationHandler
	dashH  *DashboardHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	byID := map[string]user.User{}
	for _, u := range seedUsers() {
		byID[u.ID] = u
	}
	users := &usermock.Repo{
		ListFn: func(context.Context) ([]user.User, error) { return seedUsers(), nil },
		GetByIDFn: func(_ context.Context, id string) (*user.User, error) {
			if u, ok := byID[id]; ok {
				return &u, nil
			}
			return nil, user.ErrNotFound
		},
	}
	gw := gateway.Gateway{
		Users: users,
		Loans: &loanmock.Repo{
			ListFn: func(context.Context) ([]loan.Loan, error) {
				return []loan.Loan{{Status: loan.StatusPending}, {Status: loan.StatusRejected}}, nil
			},
			LatestByUserIDFn: func(context.Context, string) (*loan.Loan, error) { return nil, loan.ErrNotFound },
		},
		ProductLoans: &productloanmock.Repo{
			LatestByUserIDFn: func(context.Context, string) (*productloan.ProductLoan, error) { return nil, productloan.ErrNotFound },
		},
		TieUps: &tieupmock.Repo{MerchantIDsFn: func(context.Context) ([]string, error) { return nil, nil }},
		Addresses: &addressmock.Repo{DefaultByUserIDFn: func(context.Context, string) (*address.Address, error) {
			return &address.Address{Line1: "12 MG Road", City: "Pune"}, nil
		}},
		Profiles: &profilemock.Repo{
			MerchantByUserIDFn: func(_ context.Context, id string) (*profile.MerchantProfile, error) {
				return &profile.MerchantProfile{UserID: id, BusinessName: "Acme Traders"}, nil
			},
			NBFCByUserIDFn: func(context.Context, string) (*profile.NBFCProfile, error) { return nil, profile.ErrNotFound },
		},
	}

	store := dashboard.NewStore()
	f := &fixture{e: newEchoWithValidator(), gw: gw, users: users, store: store}
	f.dash = dashboard.NewUsecase(gw, store, zap.NewNop())
	f.detail = enrichment.NewUsecase(gw, store, zap.NewNop())
	f.status = status.NewUsecase(users, store, zap.NewNop())
	f.userH = NewUserHandler(f.dash, f.detail, f.status)
	f.notifH = NewNotificationHandler(f.dash, f.status)
	f.dashH = NewDashboardHandler(f.dash, time.Second)
	return f
}

func (f *fixture) load(t *testing.T) {
	t.Helper()
	rep := f.dash.Load(context.Background())
	for sec, st := range rep.Sections {
		if !st.Loaded || st.Error != "" {
			t.Fatalf("section %s failed to load: %s", sec, st.Error)
		}
	}
}

func (f *fixture) call(t *testing.T, h echo.HandlerFunc, method, target string, body io.Reader, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	if userID != "" {
		c.SetParamNames("user_id")
		c.SetParamValues(userID)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("bad json: %v; raw=%s", err, rec.Body.String())
	}
}

var errGateway = errors.New("gateway 503")
