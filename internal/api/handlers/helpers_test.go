package handlers_test

import (
	"rental-management-backend/internal/auth"
	"rental-management-backend/internal/database/models"
	"rental-management-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// authenticatedRouter returns a test router whose requests run as user
func authenticatedRouter(user *models.User) *testutils.HTTPTestSuite {
	h := testutils.SetupHTTPTest()
	h.Router.Use(func(c *gin.Context) {
		if user != nil {
			auth.SetCurrentUser(c, user)
		}
		c.Next()
	})
	return h
}

func landlord() *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "owner@example.com", Role: models.UserRoleLandlord, IsActive: true}
}

func tenant() *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "tenant@example.com", Role: models.UserRoleTenant, IsActive: true}
}
