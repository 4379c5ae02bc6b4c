package auth

import (
	"testing"

	"storecrm/internal/domain"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		op    Operation
		role  domain.Role
		allow bool
	}{
		{OpCustomerCreate, domain.RoleUser, true},
		{OpCustomerCreate, domain.RoleAdmin, true},
		{OpCustomerDelete, domain.RoleUser, false},
		{OpCustomerDelete, domain.RoleAdmin, true},
		{OpCustomerPeriod, domain.RoleUser, false},
		{OpCustomerRegisteredToday, domain.RoleAdmin, true},
		{OpProductSetStock, domain.RoleUser, false},
		{OpProductSetStock, domain.RoleAdmin, true},
		{OpProductLowStock, domain.RoleUser, true},
		{OpStatsDashboard, domain.RoleUser, false},
		{OpStatsSummary, domain.RoleAdmin, true},
		{OpHello, domain.RoleUser, true},
		{OpAdminDemo, domain.RoleUser, false},
		{OpAdminDemo, domain.RoleAdmin, true},
		{Operation("unknown.op"), domain.RoleAdmin, false},
	}
	for _, tc := range cases {
		if got := Allowed(tc.op, tc.role); got != tc.allow {
			t.Fatalf("Allowed(%s, %s) = %v, want %v", tc.op, tc.role, got, tc.allow)
		}
	}
}

func TestEveryOperationHasAPolicy(t *testing.T) {
	ops := []Operation{
		OpCustomerCreate, OpCustomerList, OpCustomerGet, OpCustomerGetByEmail,
		OpCustomerGetByCPF, OpCustomerSearch, OpCustomerSearchPhone,
		OpCustomerUpdate, OpCustomerDelete, OpCustomerPeriod, OpCustomerRegisteredToday,
		OpProductCreate, OpProductList, OpProductGet, OpProductSearch,
		OpProductByCategory, OpProductLowStock, OpProductPriceRange,
		OpProductUpdate, OpProductDelete, OpProductSetStock,
		OpStatsDashboard, OpStatsSummary, OpHello, OpAdminDemo,
	}
	for _, op := range ops {
		if _, ok := policy[op]; !ok {
			t.Fatalf("operation %s missing from policy table", op)
		}
	}
}
