package routes

import (
	"backoffice/constants"
	"backoffice/controllers"
	middlewares "backoffice/middleware"
	"backoffice/services"
	"backoffice/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary) {

	log := logger.NewDefaultLogger(logger.InfoLevel)

	reportService := services.NewReportService(services.ReportServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Logger: log,
	})
	saleService := services.NewSaleService(services.SaleServiceOptions{
		DB:      db,
		Reports: reportService,
		Logger:  log,
	})
	salaryService := services.NewSalaryService(services.SalaryServiceOptions{
		DB:     db,
		Logger: log,
	})

	authController := controllers.NewAuthController(db, cld)
	userController := controllers.NewUserController(db, cld)
	saleController := controllers.NewSaleController(saleService, reportService)
	salaryController := controllers.NewSalaryController(salaryService, reportService)
	expenseController := controllers.NewExpenseController(db, reportService)
	categoryController := controllers.NewExpenseCategoryController(db)
	paymentController := controllers.NewPaymentMethodController(db)

	anyRole := middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleEmployee)
	adminOnly := middlewares.AuthMiddleware(constants.RoleAdmin)

	auth := router.Group("/api/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	auth.POST("/google", authController.AuthGoogle)

	users := router.Group("/api/users")
	users.GET("", adminOnly, userController.GetUsers)
	users.GET("/profile/:id", anyRole, userController.GetUserProfile)
	users.PUT("/update/:id", anyRole, userController.UpdateUserProfile)
	users.DELETE("/delete/:id", adminOnly, userController.DeleteUser)

	// giữ nguyên path cũ (kể cả lỗi chính tả) để dashboard không phải đổi
	paymentMethods := router.Group("/api/payment-method")
	paymentMethods.GET("", anyRole, paymentController.GetPaymentMethods)
	paymentMethods.POST("", adminOnly, paymentController.CreatePaymentMethod)
	paymentMethods.PUT("/update/:id", adminOnly, paymentController.UpdatePaymentMethod)
	paymentMethods.DELETE("/delete/:id", adminOnly, paymentController.DeletePaymentMethod)

	expenses := router.Group("/api/expences", adminOnly)
	expenses.GET("", expenseController.GetExpenses)
	expenses.GET("/expense/:id", expenseController.GetExpenseById)
	expenses.GET("/total-expance", expenseController.GetTotalExpenses)
	expenses.POST("", expenseController.CreateExpense)
	expenses.PUT("/update/:id", expenseController.UpdateExpense)
	expenses.DELETE("/delete/:id", expenseController.DeleteExpense)

	categories := router.Group("/api/expance-category", adminOnly)
	categories.GET("", categoryController.GetExpenseCategories)
	categories.POST("", categoryController.CreateExpenseCategory)
	categories.PUT("/update/:id", categoryController.UpdateExpenseCategory)
	categories.DELETE("/delete/:id", categoryController.DeleteExpenseCategory)

	salaries := router.Group("/api/salaries", adminOnly)
	salaries.GET("", salaryController.GetSalaries)
	salaries.GET("/salary/:id", salaryController.GetSalaryById)
	salaries.GET("/search/:employeeId", salaryController.GetSalariesByEmployee)
	salaries.GET("/monthly-salary-data", salaryController.GetMonthlySalaryData)
	salaries.GET("/yearly-salary-data", salaryController.GetYearlySalaryData)
	salaries.POST("", salaryController.CreateSalary)
	salaries.PUT("/update/:id", salaryController.UpdateSalary)
	salaries.DELETE("/delete/:id", salaryController.DeleteSalary)

	sales := router.Group("/api/sales", anyRole)
	sales.GET("", saleController.GetSales)
	sales.GET("/revenue", saleController.GetRevenue)
	sales.GET("/pending-amount", saleController.GetPendingAmount)
	sales.GET("/total-received-amount", saleController.GetTotalReceivedAmount)
	sales.GET("/unique-clients", saleController.GetUniqueClients)
	sales.GET("/suggest-clients", saleController.SuggestClients)
	sales.GET("/monthly-sales-data", saleController.GetMonthlySalesData)
	sales.GET("/yearly-sales-data", saleController.GetYearlySalesData)
	sales.GET("/past-sales", saleController.GetSalesByMonthYear)
	sales.GET("/sale/:id", saleController.GetSaleById)
	sales.GET("/employee/:employeeId", saleController.GetSalesByEmployee)
	sales.GET("/employee/revenue/:employeeId", saleController.GetRevenueByEmployee)
	sales.GET("/employee/total-received-amount/:employeeId", saleController.GetReceivedAmountByEmployee)
	sales.GET("/employee/pending-amount/:employeeId", saleController.GetPendingAmountByEmployee)
	sales.GET("/employee/unique-clients/:employeeId", saleController.GetClientsByEmployee)
	sales.GET("/employee/current-sales-amount/:employeeId", saleController.GetEmployeeCurrentSalesAmount)
	sales.GET("/employee/filter-sales/:employeeId", saleController.GetFilteredSalesByEmployee)
	sales.POST("", saleController.CreateSale)
	sales.PUT("/update/:id", saleController.UpdateSale)
	sales.DELETE("/delete/:id", saleController.DeleteSale)
}
