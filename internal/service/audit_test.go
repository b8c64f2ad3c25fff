package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"rental-management-backend/internal/database/models"
	"rental-management-backend/internal/repository"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func strRef(s string) *string { return &s }

func TestDiff(t *testing.T) {
	before := service.Snapshot{
		"name":    strRef("Nha A"),
		"address": strRef("1 Le Loi"),
		"image":   nil,
		"notes":   strRef("gone"),
	}
	after := service.Snapshot{
		"name":    strRef("Nha B"),
		"address": strRef("1 Le Loi"),
		"image":   strRef("a.jpg"),
	}

	changes := service.Diff(before, after)

	assert.Len(t, changes, 3)
	assert.Equal(t, "Nha A", *changes["name"].Old)
	assert.Equal(t, "Nha B", *changes["name"].New)
	assert.Nil(t, changes["image"].Old)
	assert.Equal(t, "a.jpg", *changes["image"].New)
	assert.Equal(t, "gone", *changes["notes"].Old)
	assert.Nil(t, changes["notes"].New)
	assert.NotContains(t, changes, "address")

	assert.Empty(t, service.Diff(after, after))
}

// AuditServiceTestSuite checks the entries written for model mutations
type AuditServiceTestSuite struct {
	suite.Suite
	base     *testutils.BaseTestSuite
	audit    *service.AuditService
	ctx      context.Context
	landlord *models.User
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.base = testutils.SetupSQLiteSuite(suite.T())
	suite.audit = service.NewAuditService(repository.NewRepositories(suite.base.DB).AuditLogs)
	suite.landlord = suite.base.Factory.Landlord()
	suite.ctx = service.WithRequestInfo(context.Background(), service.RequestInfo{
		IPAddress: "203.0.113.7",
		UserAgent: "rental-app/1.0",
	})
}

func (suite *AuditServiceTestSuite) lastEntry(action models.AuditAction) (models.AuditLog, map[string]service.FieldChange) {
	var entry models.AuditLog
	suite.Require().NoError(suite.base.DB.Where("action_type = ?", action).
		Order("created_at DESC").First(&entry).Error)
	changes := map[string]service.FieldChange{}
	suite.Require().NoError(json.Unmarshal(entry.Changes, &changes))
	return entry, changes
}

func (suite *AuditServiceTestSuite) TestSnapshotSkipsBaseFields() {
	property := suite.base.Factory.Property(suite.landlord)

	snap := suite.audit.Snapshot(property)

	suite.NotContains(snap, "id")
	suite.NotContains(snap, "created_at")
	suite.NotContains(snap, "updated_at")
	suite.NotContains(snap, "owner")
	suite.Require().Contains(snap, "name")
	suite.Equal(property.Name, *snap["name"])
	suite.Equal(suite.landlord.ID.String(), *snap["owner_id"])
}

func (suite *AuditServiceTestSuite) TestLogCreate() {
	property := suite.base.Factory.Property(suite.landlord)

	suite.audit.LogCreate(suite.ctx, suite.landlord, property)

	entry, changes := suite.lastEntry(models.AuditActionCreate)
	suite.Equal("Property", entry.ModelName)
	suite.Equal(property.ID.String(), entry.ObjectID)
	suite.Equal(property.Name, entry.ObjectRepr)
	suite.Require().NotNil(entry.UserID)
	suite.Equal(suite.landlord.ID, *entry.UserID)
	suite.Equal("203.0.113.7", entry.IPAddress)
	suite.Equal("rental-app/1.0", entry.UserAgent)

	suite.Require().Contains(changes, "name")
	suite.Nil(changes["name"].Old)
	suite.Equal(property.Name, *changes["name"].New)
	suite.NotContains(changes, "id")
	suite.NotContains(changes, "created_at")
}

func (suite *AuditServiceTestSuite) TestLogUpdateRecordsOnlyChangedFields() {
	property := suite.base.Factory.Property(suite.landlord)
	oldName := property.Name
	before := suite.audit.Snapshot(property)

	property.Name = "Nha tro Binh Thanh"
	property.Image = "properties/cover.jpg"
	suite.audit.LogUpdate(suite.ctx, suite.landlord, before, property)

	_, changes := suite.lastEntry(models.AuditActionUpdate)
	suite.Len(changes, 2)
	suite.Equal(oldName, *changes["name"].Old)
	suite.Equal("Nha tro Binh Thanh", *changes["name"].New)
	suite.Equal("", *changes["image"].Old)
	suite.Equal("properties/cover.jpg", *changes["image"].New)
	suite.NotContains(changes, "address")
	suite.NotContains(changes, "owner_id")
}

func (suite *AuditServiceTestSuite) TestLogDeleteHasNoChanges() {
	property := suite.base.Factory.Property(suite.landlord)

	suite.audit.LogDelete(suite.ctx, suite.landlord, property)

	entry, changes := suite.lastEntry(models.AuditActionDelete)
	suite.Equal(property.ID.String(), entry.ObjectID)
	suite.Empty(changes)
}

func (suite *AuditServiceTestSuite) TestLongValuesAreCutOnCharacters() {
	ctx := service.WithRequestInfo(context.Background(), service.RequestInfo{
		IPAddress: "2001:db8::1",
		UserAgent: strings.Repeat("é", 600),
	})
	property := suite.base.Factory.Property(suite.landlord)
	property.Name = strings.Repeat("ệ", 300)

	suite.audit.LogAction(ctx, suite.landlord, models.AuditActionLogin, property, map[string]interface{}{"source": "test"})

	entry, _ := suite.lastEntry(models.AuditActionLogin)
	suite.True(utf8.ValidString(entry.UserAgent))
	suite.Equal(500, utf8.RuneCountInString(entry.UserAgent))
	suite.True(utf8.ValidString(entry.ObjectRepr))
	suite.Equal(255, utf8.RuneCountInString(entry.ObjectRepr))
	suite.Equal("2001:db8::1", entry.IPAddress)
	suite.JSONEq(`{"source":"test"}`, string(entry.Metadata))
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
