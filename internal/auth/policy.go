// Package auth holds the static operation-to-role policy table. It is
// consulted by HTTP middleware before a request reaches a service; services
// never enforce authorization themselves.
package auth

import "storecrm/internal/domain"

// Operation identifies an API operation for authorization purposes.
type Operation string

const (
	OpCustomerCreate          Operation = "customers.create"
	OpCustomerList            Operation = "customers.list"
	OpCustomerGet             Operation = "customers.get"
	OpCustomerGetByEmail      Operation = "customers.get-by-email"
	OpCustomerGetByCPF        Operation = "customers.get-by-cpf"
	OpCustomerSearch          Operation = "customers.search"
	OpCustomerSearchPhone     Operation = "customers.search-phone"
	OpCustomerUpdate          Operation = "customers.update"
	OpCustomerDelete          Operation = "customers.delete"
	OpCustomerPeriod          Operation = "customers.period"
	OpCustomerRegisteredToday Operation = "customers.registered-today"

	OpProductCreate     Operation = "products.create"
	OpProductList       Operation = "products.list"
	OpProductGet        Operation = "products.get"
	OpProductSearch     Operation = "products.search"
	OpProductByCategory Operation = "products.by-category"
	OpProductLowStock   Operation = "products.low-stock"
	OpProductPriceRange Operation = "products.price-range"
	OpProductUpdate     Operation = "products.update"
	OpProductDelete     Operation = "products.delete"
	OpProductSetStock   Operation = "products.set-stock"

	OpStatsDashboard Operation = "stats.dashboard"
	OpStatsSummary   Operation = "stats.summary"

	OpHello     Operation = "hello"
	OpAdminDemo Operation = "admin.demo"
)

var userOrAdmin = []domain.Role{domain.RoleUser, domain.RoleAdmin}
var adminOnly = []domain.Role{domain.RoleAdmin}

// policy maps each operation to the roles allowed to perform it. Operations
// absent from the table are denied for every role.
var policy = map[Operation][]domain.Role{
	OpCustomerCreate:          userOrAdmin,
	OpCustomerList:            userOrAdmin,
	OpCustomerGet:             userOrAdmin,
	OpCustomerGetByEmail:      userOrAdmin,
	OpCustomerGetByCPF:        userOrAdmin,
	OpCustomerSearch:          userOrAdmin,
	OpCustomerSearchPhone:     userOrAdmin,
	OpCustomerUpdate:          userOrAdmin,
	OpCustomerDelete:          adminOnly,
	OpCustomerPeriod:          adminOnly,
	OpCustomerRegisteredToday: adminOnly,

	OpProductCreate:     userOrAdmin,
	OpProductList:       userOrAdmin,
	OpProductGet:        userOrAdmin,
	OpProductSearch:     userOrAdmin,
	OpProductByCategory: userOrAdmin,
	OpProductLowStock:   userOrAdmin,
	OpProductPriceRange: userOrAdmin,
	OpProductUpdate:     userOrAdmin,
	OpProductDelete:     adminOnly,
	OpProductSetStock:   adminOnly,

	OpStatsDashboard: adminOnly,
	OpStatsSummary:   adminOnly,

	OpHello:     userOrAdmin,
	OpAdminDemo: adminOnly,
}

// Allowed reports whether the role may perform the operation.
func Allowed(op Operation, role domain.Role) bool {
	for _, r := range policy[op] {
		if r == role {
			return true
		}
	}
	return false
}
