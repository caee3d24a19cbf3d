package account

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/mock"

	"github.com/kubera-dev/kubera-server/internal/service"
)

// mockAccountService is a mock covering every account handler interface.
type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) ListAccounts(ctx context.Context) ([]service.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Account), args.Error(1)
}

func (m *mockAccountService) GetAccount(ctx context.Context, id int64) (*service.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func (m *mockAccountService) CreateAccount(ctx context.Context, create service.Account) (*service.Account, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, update service.Account) (*service.Account, error) {
	args := m.Called(ctx, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newTestAPI registers every account handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListAccountsHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewCreateAccountHandler(svc).Register(api)
	NewUpdateAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
	return api
}
