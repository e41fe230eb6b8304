package models

import "strings"

// Role is the closed set of staff roles. The directory stores them as plain
// strings, so parsing is case-insensitive.
type Role string

const (
	RoleManager        Role = "Manager"
	RoleWorker         Role = "Worker"
	RoleWorkerEmployee Role = "Worker Employee"
	RoleDelivery       Role = "Delivery"
	RolePaymentHandler Role = "Payment Handler"
	RoleCustomer       Role = "Customer"
)

var allRoles = []Role{
	RoleManager,
	RoleWorker,
	RoleWorkerEmployee,
	RoleDelivery,
	RolePaymentHandler,
	RoleCustomer,
}

// ParseRole resolves a role string against the closed set, case-insensitive.
func ParseRole(s string) (Role, bool) {
	trimmed := strings.TrimSpace(s)
	for _, r := range allRoles {
		if strings.EqualFold(trimmed, string(r)) {
			return r, true
		}
	}
	return "", false
}

// IsDeliveryEligible reports whether the role can be assigned deliveries.
func (r Role) IsDeliveryEligible() bool {
	return r == RoleDelivery
}

// IsPaymentHandler reports whether the role may approve or reject bank
// payments.
func (r Role) IsPaymentHandler() bool {
	return r == RolePaymentHandler
}

// CanManageInventory reports whether the role may create products and adjust
// stock.
func (r Role) CanManageInventory() bool {
	return r == RoleManager || r == RoleWorker || r == RoleWorkerEmployee
}

// CanManageStaff reports whether the role may administer the directory.
func (r Role) CanManageStaff() bool {
	return r == RoleManager
}
