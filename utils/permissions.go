package utils

import "salescrm/models"

// Permission 权限级别
type Permission int

const (
	Deny        Permission = iota // 拒绝
	Conditional                   // 请求放行，按行归属或角色在控制器里裁决
	Allow                         // 无限制
)

// 资源名
const (
	ResourceCustomers   = "customers"
	ResourceInquiries   = "inquiries"
	ResourceProposals   = "proposals"
	ResourceServices    = "services"
	ResourceSalesAgents = "sales-agents"
)

// 操作名
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// permissionTable (角色,资源,操作) -> 权限级别
// 所有控制器统一查这张表，行级归属过滤由各仓储的Scope查询完成
var permissionTable = map[models.UserRole]map[string]map[string]Permission{
	models.UserRoleADMIN: {
		ResourceCustomers:   {ActionRead: Allow, ActionCreate: Allow, ActionUpdate: Allow, ActionDelete: Allow},
		ResourceInquiries:   {ActionRead: Allow, ActionCreate: Allow, ActionUpdate: Allow, ActionDelete: Allow},
		ResourceProposals:   {ActionRead: Allow, ActionCreate: Allow, ActionUpdate: Allow, ActionDelete: Allow},
		ResourceServices:    {ActionRead: Allow, ActionCreate: Allow, ActionUpdate: Allow, ActionDelete: Allow},
		ResourceSalesAgents: {ActionCreate: Allow},
	},
	models.UserRoleSALES_AGENT: {
		ResourceCustomers: {ActionRead: Conditional, ActionCreate: Allow, ActionUpdate: Conditional, ActionDelete: Conditional},
		ResourceInquiries: {ActionRead: Conditional, ActionCreate: Allow, ActionUpdate: Conditional, ActionDelete: Conditional},
		ResourceProposals: {ActionRead: Conditional, ActionCreate: Allow, ActionUpdate: Allow, ActionDelete: Allow},
		ResourceServices:  {ActionRead: Allow, ActionCreate: Allow, ActionUpdate: Allow, ActionDelete: Allow},
	},
}

// CheckPermission 查询权限表，未登记的组合一律拒绝
func CheckPermission(role models.UserRole, resource string, action string) Permission {
	if actions, ok := permissionTable[role]; ok {
		if perm, ok := actions[resource]; ok {
			return perm[action]
		}
	}
	return Deny
}

// HasPermission 检查用户在请求级是否放行(含Conditional)
func HasPermission(role models.UserRole, resource string, action string) bool {
	return CheckPermission(role, resource, action) != Deny
}

// IsAdmin 管理员判定
func IsAdmin(user *models.AuthUser) bool {
	return user != nil && user.Role == models.UserRoleADMIN
}

// IsSalesAgent 销售代表判定
func IsSalesAgent(user *models.AuthUser) bool {
	return user != nil && user.Role == models.UserRoleSALES_AGENT
}

// IsAdminOrSalesAgent 管理员或销售代表判定
func IsAdminOrSalesAgent(user *models.AuthUser) bool {
	return IsAdmin(user) || IsSalesAgent(user)
}
