package usecases

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/visionffe/visionffe-api/internal/domain"
	domain_mocks "github.com/visionffe/visionffe-api/internal/domain/mocks"
)

const (
	testUserID    = "user-1"
	testBucketURL = "https://cdn.example.com"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func designerCtx() context.Context {
	return domain.WithPrincipal(context.Background(), domain.Principal{
		UserID: testUserID,
		Roles:  []string{domain.Role_Designer},
	})
}

func permissionCtx(permissions ...domain.Permission) context.Context {
	return domain.WithPrincipal(context.Background(), domain.Principal{
		UserID:      testUserID,
		Permissions: permissions,
	})
}

// expectTransactions makes the unit of work run every function against itself.
func expectTransactions(t *testing.T, uow *domain_mocks.MockUnitOfWork) {
	t.Helper()
	uow.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
			return fn(uow)
		}).Maybe()
}
