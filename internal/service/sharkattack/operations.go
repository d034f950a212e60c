package sharkattack

import (
	"context"
	"log/slog"
	"slices"

	"github.com/heartmarshall/facts-mng/internal/domain"
	"github.com/heartmarshall/facts-mng/pkg/ctxutil"
)

// Role names carried in the access token.
const (
	RoleRead  = "SHARK_ATTACK_READ"
	RoleWrite = "SHARK_ATTACK_WRITE"
)

// Operation is one externally callable operation and the roles allowed to call it.
type Operation struct {
	Name  string
	Roles []string
}

var (
	readRoles  = []string{RoleRead}
	writeRoles = []string{RoleWrite}
)

var (
	OpList      = Operation{Name: "FactsMngSharkAttackListing", Roles: readRoles}
	OpGet       = Operation{Name: "FactsMngSharkAttack", Roles: readRoles}
	OpByCountry = Operation{Name: "FactsMngSharkAttacksByCountry", Roles: readRoles}
	OpStats     = Operation{Name: "FactsMngSharkAttacksAggStats", Roles: readRoles}
	OpImport    = Operation{Name: "FactsMngImportSharkAttacks", Roles: writeRoles}
	OpCreate    = Operation{Name: "FactsMngCreateSharkAttack", Roles: writeRoles}
	OpUpdate    = Operation{Name: "FactsMngUpdateSharkAttack", Roles: writeRoles}
	OpDelete    = Operation{Name: "FactsMngDeleteSharkAttacks", Roles: writeRoles}
)

// Operations is the static operation table.
var Operations = []Operation{OpList, OpGet, OpByCountry, OpStats, OpImport, OpCreate, OpUpdate, OpDelete}

// authorize resolves the caller and checks it holds one of op's roles.
func (s *Service) authorize(ctx context.Context, op Operation) (ctxutil.Identity, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return ctxutil.Identity{}, domain.ErrUnauthorized
	}
	for _, r := range op.Roles {
		if slices.Contains(id.Roles, r) {
			return id, nil
		}
	}
	s.log.WarnContext(ctx, "permission denied",
		slog.String("operation", op.Name),
		slog.String("user", id.Username),
	)
	return ctxutil.Identity{}, domain.ErrForbidden
}
