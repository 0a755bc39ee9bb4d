package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"learner": {
		"quiz:view",
		"session:create",
		"session:save",
		"session:submit",
		"session:view-own",
	},
	"author": {
		"quiz:create",
		"quiz:view",
		"quiz:view-full",
		"session:view-all",
		"users:bulk_upsert",
	},
	"admin": {
		"*", // everything
	},
}
