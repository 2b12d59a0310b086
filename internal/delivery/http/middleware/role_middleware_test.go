package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-admin-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin/doctors", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		handler    http.Handler
		request    *http.Request
		wantStatus int
	}{
		{"admin passes admin check", RequireAdmin(next), requestWithRole(entity.RoleIDAdmin), http.StatusOK},
		{"staff fails admin check", RequireAdmin(next), requestWithRole(entity.RoleIDStaff), http.StatusForbidden},
		{"staff passes staff check", RequireStaff(next), requestWithRole(entity.RoleIDStaff), http.StatusOK},
		{"admin passes staff check", RequireStaff(next), requestWithRole(entity.RoleIDAdmin), http.StatusOK},
		{"unknown role is forbidden", RequireStaff(next), requestWithRole(99), http.StatusForbidden},
		{"missing role is unauthorized", RequireStaff(next), httptest.NewRequest(http.MethodGet, "/admin/doctors", nil), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler.ServeHTTP(rec, tt.request)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	_, ok := GetRoleIDFromContext(ctx)
	assert.False(t, ok)

	ctx = context.WithValue(ctx, RoleIDKey, entity.RoleIDAdmin)
	roleID, ok := GetRoleIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, entity.RoleIDAdmin, roleID)

	_, ok = GetTokenIDFromContext(ctx)
	assert.False(t, ok)

	ctx = context.WithValue(ctx, TokenIDKey, "token-123")
	tokenID, ok := GetTokenIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "token-123", tokenID)
}
