package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"rental-management-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestClean(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "contract/abc/lease.pdf", want: "contract/abc/lease.pdf"},
		{in: "/contract/lease.pdf", want: "contract/lease.pdf"},
		{in: "../../etc/passwd", want: "etc/passwd"},
		{in: "meter\\x\\photo.jpg", want: "meter/x/photo.jpg"},
		{in: "", wantErr: true},
		{in: "/", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Clean(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

type LocalStorageTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *Local
}

func (suite *LocalStorageTestSuite) SetupTest() {
	suite.ctx = context.Background()
	store, err := NewLocal(suite.T().TempDir(), "http://localhost:8080/media/")
	suite.Require().NoError(err)
	suite.store = store
}

func (suite *LocalStorageTestSuite) TestSaveOpenDelete() {
	name := "contract/1234/lease.pdf"
	suite.Require().NoError(suite.store.Save(suite.ctx, name, strings.NewReader("%PDF-1.4"), 8, "application/pdf"))

	rc, err := suite.store.Open(suite.ctx, name)
	suite.Require().NoError(err)
	body, err := io.ReadAll(rc)
	suite.Require().NoError(rc.Close())
	suite.Require().NoError(err)
	suite.Equal("%PDF-1.4", string(body))

	suite.Require().NoError(suite.store.Delete(suite.ctx, name))
	_, err = suite.store.Open(suite.ctx, name)
	suite.ErrorIs(err, ErrNotFound)

	suite.NoError(suite.store.Delete(suite.ctx, name))
}

func (suite *LocalStorageTestSuite) TestURL() {
	suite.Equal("http://localhost:8080/media/meter/1/a.jpg", suite.store.URL("meter/1/a.jpg"))
}

func TestLocalStorageTestSuite(t *testing.T) {
	suite.Run(t, new(LocalStorageTestSuite))
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	_, err := New(context.Background(), &config.Config{StorageBackend: "ftp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ftp")
}
