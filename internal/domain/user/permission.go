package user

// Resource is a protected part of the system
type Resource string

const (
	ResourceAttendance   Resource = "attendance"
	ResourceLeave        Resource = "leave"
	ResourceEmployee     Resource = "employee"
	ResourceNotification Resource = "notification"
	ResourceDashboard    Resource = "dashboard"
)

// Action is an operation attempted against a resource
type Action string

const (
	ActionCreate     Action = "create"
	ActionViewOwn    Action = "view_own"
	ActionViewAll    Action = "view_all"
	ActionUpdate     Action = "update"
	ActionApprove    Action = "approve"
	ActionDeactivate Action = "deactivate"
)

// rolePermissions is the single capability table consulted by every
// authorization check. Handlers and services never compare role strings
// directly.
var rolePermissions = map[Role]map[Resource][]Action{
	RoleAdmin: {
		ResourceAttendance:   {ActionCreate, ActionViewOwn, ActionViewAll, ActionUpdate},
		ResourceLeave:        {ActionCreate, ActionViewOwn, ActionViewAll, ActionApprove},
		ResourceEmployee:     {ActionViewOwn, ActionViewAll, ActionUpdate, ActionDeactivate},
		ResourceNotification: {ActionViewOwn, ActionUpdate},
		ResourceDashboard:    {ActionViewOwn, ActionViewAll},
	},
	RoleHR: {
		ResourceAttendance:   {ActionCreate, ActionViewOwn, ActionViewAll, ActionUpdate},
		ResourceLeave:        {ActionCreate, ActionViewOwn, ActionViewAll, ActionApprove},
		ResourceEmployee:     {ActionViewOwn, ActionViewAll, ActionUpdate},
		ResourceNotification: {ActionViewOwn, ActionUpdate},
		ResourceDashboard:    {ActionViewOwn, ActionViewAll},
	},
	RoleEmployee: {
		ResourceAttendance:   {ActionCreate, ActionViewOwn},
		ResourceLeave:        {ActionCreate, ActionViewOwn},
		ResourceEmployee:     {ActionViewOwn, ActionUpdate},
		ResourceNotification: {ActionViewOwn, ActionUpdate},
		ResourceDashboard:    {ActionViewOwn},
	},
}

// Allowed reports whether a role may perform an action on a resource
func Allowed(role Role, resource Resource, action Action) bool {
	resources, exists := rolePermissions[role]
	if !exists {
		return false
	}

	for _, a := range resources[resource] {
		if a == action {
			return true
		}
	}

	return false
}
