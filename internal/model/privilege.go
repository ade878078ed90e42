package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "case:create"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Create Case"
}

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// User management
	{Code: "user:view", Name: "View User"},
	{Code: "user:create", Name: "Create User"},
	{Code: "user:update", Name: "Update User"},
	{Code: "user:delete", Name: "Delete User"},
	{Code: "user:update_privilege", Name: "Update User Privileges"},
	// Case management
	{Code: "case:view", Name: "View Case"},
	{Code: "case:create", Name: "Create Case"},
	{Code: "case:update", Name: "Update Case"},
	{Code: "case:delete", Name: "Delete Case"},
	// Customer management
	{Code: "customer:view", Name: "View Customer"},
	{Code: "customer:create", Name: "Create Customer"},
	{Code: "customer:update", Name: "Update Customer"},
	{Code: "customer:delete", Name: "Delete Customer"},
	// Transaction management
	{Code: "transaction:view", Name: "View Transaction"},
	{Code: "transaction:create", Name: "Create Transaction"},
	{Code: "transaction:update", Name: "Update Transaction"},
	{Code: "transaction:delete", Name: "Delete Transaction"},
	// Session management
	{Code: "session:view", Name: "View Session"},
	{Code: "session:create", Name: "Create Session"},
	{Code: "session:update", Name: "Update Session"},
	{Code: "session:delete", Name: "Delete Session"},
	// Task management
	{Code: "task:view", Name: "View Task"},
	{Code: "task:create", Name: "Create Task"},
	{Code: "task:update", Name: "Update Task"},
	{Code: "task:delete", Name: "Delete Task"},
	// Agency management
	{Code: "agency:view", Name: "View Agency"},
	{Code: "agency:create", Name: "Create Agency"},
	{Code: "agency:update", Name: "Update Agency"},
	{Code: "agency:delete", Name: "Delete Agency"},
	// Employee management (MASTER_ADMIN only)
	{Code: "employee:view", Name: "View Employee"},
	{Code: "employee:create", Name: "Create Employee"},
	{Code: "employee:update", Name: "Update Employee"},
	{Code: "employee:delete", Name: "Delete Employee"},
	// Dashboard
	{Code: "dashboard:view", Name: "View Dashboard"},
}
