package service_test

import (
	"testing"

	"rental-management-backend/internal/mailer"
	"rental-management-backend/internal/repository"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/storage"
	"rental-management-backend/internal/testutils"

	"github.com/stretchr/testify/require"
)

// newTestServices wires every service onto the suite database with local file storage
func newTestServices(t *testing.T, base *testutils.BaseTestSuite) *service.Services {
	t.Helper()
	store, err := storage.NewLocal(t.TempDir(), "/media/")
	require.NoError(t, err)
	repos := repository.NewRepositories(base.DB)
	return service.NewServices(base.Config, repos, repository.NewTransactor(base.DB),
		mailer.NoopMailer{}, store, service.NewValidator())
}
