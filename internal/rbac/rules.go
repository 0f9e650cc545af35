package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"catalog:view",
		"attempt:create",
		"attempt:save",
		"attempt:submit",
		"attempt:view-own",
		"result:view-own",
		"profile:edit",
		"user:change_password",
	},
	"counselor": {
		"catalog:view",
		"attempt:view-all",
		"result:view-all",
		"users:list",
		"user:change_password",
	},
	"admin": {
		"*", // everything
	},
}
