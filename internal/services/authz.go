package services

import (
	"github.com/zenithpay/wallet-ledger/internal/errs"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

// Permission names an operation a role may perform. Roles map to explicit
// permission sets rather than an ordinal level, so inserting a new tier
// between existing ones cannot leak privileges.
type Permission string

const (
	PermTransferCreate  Permission = "transfer:create"
	PermTransferReverse Permission = "transfer:reverse"
	PermLinkCreate      Permission = "link:create"
	PermLinkClaim       Permission = "link:claim"
	PermWalletRead      Permission = "wallet:read"
	PermWalletFreeze    Permission = "wallet:freeze"
)

var userPermissions = []Permission{
	PermTransferCreate, PermLinkCreate, PermLinkClaim, PermWalletRead,
}

var rolePermissions = map[string][]Permission{
	models.TierStandard:  userPermissions,
	models.TierAgent:     userPermissions,
	models.TierAgentPlus: userPermissions,
	models.TierMerchant:  userPermissions,
	models.TierAdmin: {
		PermTransferCreate, PermTransferReverse, PermLinkCreate, PermLinkClaim,
		PermWalletRead, PermWalletFreeze,
	},
}

// AuthzService evaluates role permissions before any ledger call.
type AuthzService struct {
	grants map[string]map[Permission]struct{}
}

func NewAuthzService() *AuthzService {
	grants := make(map[string]map[Permission]struct{}, len(rolePermissions))
	for role, perms := range rolePermissions {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		grants[role] = set
	}
	return &AuthzService{grants: grants}
}

// Allowed reports whether the role holds the permission.
func (s *AuthzService) Allowed(role string, perm Permission) bool {
	_, ok := s.grants[role][perm]
	return ok
}

// Require returns ErrPermissionDenied unless the role holds the permission.
func (s *AuthzService) Require(role string, perm Permission) error {
	if !s.Allowed(role, perm) {
		return errs.ErrPermissionDenied
	}
	return nil
}
