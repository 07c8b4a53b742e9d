package rbac

// RolePermissions is the default policy. Staff author quizzes; students
// take them.
var RolePermissions = map[string][]string{
	"student": {
		"quiz:list",
		"quiz:take",
		"quiz:submit",
		"result:view-own",
	},
	"staff": {
		"quiz:create",
		"quiz:list-own",
		"quiz:view-full",
	},
	"admin": {
		"*", // everything
	},
}
