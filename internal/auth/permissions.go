package auth

const (
	PermStoresView       = "stores_view"
	PermStoresCreate     = "stores_create"
	PermInventoryView    = "inventory_view"
	PermInventoryCreate  = "inventory_create"
	PermInventoryEdit    = "inventory_edit"
	PermPurchasesView    = "purchases_view"
	PermPurchasesCreate  = "purchases_create"
	PermPurchasesApprove = "purchases_approve"
)

// rolePermissions mirrors the permission matrix of the legacy system: the
// role is carried in the JWT and resolved to capabilities here, before any
// handler runs.
var rolePermissions = map[string][]string{
	"admin": {
		PermStoresView, PermStoresCreate,
		PermInventoryView, PermInventoryCreate, PermInventoryEdit,
		PermPurchasesView, PermPurchasesCreate, PermPurchasesApprove,
	},
	"manager": {
		PermStoresView, PermStoresCreate,
		PermInventoryView, PermInventoryCreate, PermInventoryEdit,
		PermPurchasesView, PermPurchasesCreate, PermPurchasesApprove,
	},
	"operator": {
		PermStoresView,
		PermInventoryView, PermInventoryEdit,
		PermPurchasesView,
	},
	"viewer": {
		PermStoresView, PermInventoryView, PermPurchasesView,
	},
	"user": {
		PermStoresView, PermInventoryView, PermPurchasesView,
	},
}

func HasPermission(role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
