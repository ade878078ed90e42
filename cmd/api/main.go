package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-lawoffice-ws/internal/handler"
	"go-lawoffice-ws/internal/middleware"
	"go-lawoffice-ws/internal/model"
	"go-lawoffice-ws/internal/repository"
	"go-lawoffice-ws/internal/service"
	"go-lawoffice-ws/internal/ws"
	"go-lawoffice-ws/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(
		&model.Customer{}, &model.LegalCase{}, &model.Employee{}, &model.Agency{},
		&model.Session{}, &model.Task{}, &model.Transaction{},
		&model.User{}, &model.Privilege{}, &model.Role{},
	)

	// 3. Seed default privileges, roles, and admin user
	seedPrivilegesRolesAndAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	customerRepo := repository.NewCustomerRepo(db)
	caseRepo := repository.NewCaseRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	agencyRepo := repository.NewAgencyRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	taskRepo := repository.NewTaskRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	txService := service.NewTransactionService(txRepo, caseRepo, employeeRepo, wsHub)
	caseService := service.NewCaseService(caseRepo, wsHub)
	dashService := service.NewDashboardService(txRepo)
	authService := service.NewAuthService(userRepo, wsHub)
	userService := service.NewUserService(userRepo, privilegeRepo, roleRepo)

	txHandler := handler.NewTransactionHandler(txService)
	caseHandler := handler.NewCaseHandler(caseService)
	customerHandler := handler.NewCustomerHandler(customerRepo)
	employeeHandler := handler.NewEmployeeHandler(employeeRepo)
	agencyHandler := handler.NewAgencyHandler(agencyRepo)
	sessionHandler := handler.NewSessionHandler(sessionRepo)
	taskHandler := handler.NewTaskHandler(taskRepo)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Law Office Pro v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	// Auth Routes (No authentication required)
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat) // Heartbeat uses Auth but available to all authenticated

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard Routes (authenticated users can view)
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/dashboard/cash-flow", dashHandler.GetCashFlow)

	// Transaction Routes (with privilege checks)
	protected.Get("/transactions", middleware.RequirePrivilege("transaction:view"), txHandler.GetTransactions)
	protected.Get("/transactions/:id", middleware.RequirePrivilege("transaction:view"), txHandler.GetTransaction)
	protected.Post("/transactions", middleware.RequirePrivilege("transaction:create"), txHandler.CreateTransaction)
	protected.Put("/transactions/:id", middleware.RequirePrivilege("transaction:update"), txHandler.UpdateTransaction)
	protected.Delete("/transactions/:id", middleware.RequirePrivilege("transaction:delete"), txHandler.DeleteTransaction)

	// Case Routes
	protected.Get("/cases", middleware.RequirePrivilege("case:view"), caseHandler.GetCases)
	protected.Get("/cases/:id", middleware.RequirePrivilege("case:view"), caseHandler.GetCase)
	protected.Post("/cases", middleware.RequirePrivilege("case:create"), caseHandler.CreateCase)
	protected.Put("/cases/:id", middleware.RequirePrivilege("case:update"), caseHandler.UpdateCase)
	protected.Delete("/cases/:id", middleware.RequirePrivilege("case:delete"), caseHandler.DeleteCase)

	// Customer Routes
	protected.Get("/customers", middleware.RequirePrivilege("customer:view"), customerHandler.GetCustomers)
	protected.Get("/customers/:id", middleware.RequirePrivilege("customer:view"), customerHandler.GetCustomer)
	protected.Post("/customers", middleware.RequirePrivilege("customer:create"), customerHandler.CreateCustomer)
	protected.Put("/customers/:id", middleware.RequirePrivilege("customer:update"), customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", middleware.RequirePrivilege("customer:delete"), customerHandler.DeleteCustomer)

	// Employee Routes
	protected.Get("/employees", middleware.RequirePrivilege("employee:view"), employeeHandler.GetEmployees)
	protected.Get("/employees/:id", middleware.RequirePrivilege("employee:view"), employeeHandler.GetEmployee)
	protected.Post("/employees", middleware.RequirePrivilege("employee:create"), employeeHandler.CreateEmployee)
	protected.Put("/employees/:id", middleware.RequirePrivilege("employee:update"), employeeHandler.UpdateEmployee)
	protected.Delete("/employees/:id", middleware.RequirePrivilege("employee:delete"), employeeHandler.DeleteEmployee)

	// Agency Routes
	protected.Get("/agencies", middleware.RequirePrivilege("agency:view"), agencyHandler.GetAgencies)
	protected.Get("/agencies/:id", middleware.RequirePrivilege("agency:view"), agencyHandler.GetAgency)
	protected.Post("/agencies", middleware.RequirePrivilege("agency:create"), agencyHandler.CreateAgency)
	protected.Put("/agencies/:id", middleware.RequirePrivilege("agency:update"), agencyHandler.UpdateAgency)
	protected.Delete("/agencies/:id", middleware.RequirePrivilege("agency:delete"), agencyHandler.DeleteAgency)

	// Session Routes
	protected.Get("/sessions", middleware.RequirePrivilege("session:view"), sessionHandler.GetSessions)
	protected.Get("/sessions/upcoming", middleware.RequirePrivilege("session:view"), sessionHandler.GetUpcomingSessions)
	protected.Get("/sessions/:id", middleware.RequirePrivilege("session:view"), sessionHandler.GetSession)
	protected.Post("/sessions", middleware.RequirePrivilege("session:create"), sessionHandler.CreateSession)
	protected.Put("/sessions/:id", middleware.RequirePrivilege("session:update"), sessionHandler.UpdateSession)
	protected.Delete("/sessions/:id", middleware.RequirePrivilege("session:delete"), sessionHandler.DeleteSession)

	// Task Routes
	protected.Get("/tasks", middleware.RequirePrivilege("task:view"), taskHandler.GetTasks)
	protected.Get("/tasks/:id", middleware.RequirePrivilege("task:view"), taskHandler.GetTask)
	protected.Post("/tasks", middleware.RequirePrivilege("task:create"), taskHandler.CreateTask)
	protected.Put("/tasks/:id", middleware.RequirePrivilege("task:update"), taskHandler.UpdateTask)
	protected.Delete("/tasks/:id", middleware.RequirePrivilege("task:delete"), taskHandler.DeleteTask)

	// User Management Routes (with privilege checks)
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Post("/users", middleware.RequirePrivilege("user:create"), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePrivilege("user:update"), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePrivilege("user:delete"), userHandler.DeleteUser)
	protected.Put("/users/:id/privileges", middleware.RequirePrivilege("user:update_privilege"), userHandler.UpdateUserPrivileges)

	// Role Routes
	protected.Get("/roles", roleHandler.GetRoles)

	// Privileges Route (list all available privileges)
	protected.Get("/privileges", func(c *fiber.Ctx) error {
		privileges, err := privilegeRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch privileges"})
		}
		return c.JSON(privileges)
	})

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedPrivilegesRolesAndAdmin creates default privileges, roles, and admin user if they don't exist
func seedPrivilegesRolesAndAdmin(db *gorm.DB) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	// 1. Seed privileges first
	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed privileges: %v", err)
	}

	// 2. Seed roles
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	// 3. Assign privileges to roles
	allPrivileges, _ := privilegeRepo.FindAll()

	// MASTER_ADMIN gets ALL privileges
	masterRole, err := roleRepo.FindByCode(model.RoleMasterAdmin)
	if err == nil && len(masterRole.Privileges) == 0 {
		db.Model(&masterRole).Association("Privileges").Replace(allPrivileges)
		log.Println("✅ MASTER_ADMIN role assigned all privileges")
	}

	// ADMIN gets limited privileges (exclude user management)
	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err == nil && len(adminRole.Privileges) == 0 {
		adminPrivileges := []model.Privilege{}
		for _, p := range allPrivileges {
			// Exclude user creation, update, delete, and privilege update
			if p.Code != "user:create" && p.Code != "user:update" && p.Code != "user:delete" && p.Code != "user:update_privilege" {
				adminPrivileges = append(adminPrivileges, p)
			}
		}
		db.Model(&adminRole).Association("Privileges").Replace(adminPrivileges)
		log.Println("✅ ADMIN role assigned limited privileges")
	}

	// 4. Create default admin user with MASTER_ADMIN role
	_, err = userRepo.FindByEmail("admin@example.com")
	if err != nil {
		// Create admin user
		masterRole, _ := roleRepo.FindByCode(model.RoleMasterAdmin)

		admin := &model.User{
			Email:       "admin@example.com",
			FullName:    "Master Administrator",
			PhoneNumber: "",
			RoleID:      &masterRole.ID,
			IsActive:    true,
			Privileges:  masterRole.Privileges,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"

		if err := admin.SetPassword("admin123"); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}

		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("✅ Admin user created: admin@example.com / admin123 (MASTER_ADMIN)")
		}
	}
}
