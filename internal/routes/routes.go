package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secinstall/internal/authz"
	"secinstall/internal/handlers"
	"secinstall/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	inquiryHandler *handlers.InquiryHandler,
	leadHandler *handlers.LeadHandler,
	clientHandler *handlers.ClientHandler,
	projectHandler *handlers.ProjectHandler,
	expenseHandler *handlers.ExpenseHandler,
	invoiceHandler *handlers.InvoiceHandler,
	inventoryHandler *handlers.InventoryHandler,
	legalDocumentHandler *handlers.LegalDocumentHandler,
	rateHandler *handlers.RateHandler,
	referralHandler *handlers.ReferralHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	// website quote/appointment form
	r.POST("/api/inquiries", inquiryHandler.Create)

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtSecret))
	r.Use(middleware.ReadOnlyGuard())

	api := r.Group("/api")

	// USERS (mutations are admin-only, enforced in the handler)
	users := api.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUserByID)
		users.PATCH("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	// INQUIRIES (no DELETE, inquiries are kept; POST is the public route above)
	inquiries := api.Group("/inquiries")
	{
		inquiries.GET("", inquiryHandler.List)
		inquiries.GET("/:id", inquiryHandler.GetByID)
		inquiries.GET("/ref/:reference", inquiryHandler.GetByReference)
		inquiries.PATCH("/:id", inquiryHandler.Patch)
	}

	// LEADS
	leads := api.Group("/leads")
	{
		leads.POST("", leadHandler.Create)
		leads.GET("", leadHandler.List)
		leads.GET("/:id", leadHandler.GetByID)
		leads.PATCH("/:id", leadHandler.Patch)
		leads.DELETE("/:id", leadHandler.Delete)
		leads.POST("/:id/assign", leadHandler.Assign)
		leads.POST("/:id/status", leadHandler.UpdateStatus)
		leads.POST("/convert-from-inquiry/:inquiryId", leadHandler.ConvertFromInquiry)
	}

	// CLIENTS
	clients := api.Group("/clients")
	{
		clients.POST("", clientHandler.Create)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.PATCH("/:id", clientHandler.Patch)
		clients.DELETE("/:id", clientHandler.Delete)
		clients.POST("/:id/status", clientHandler.UpdateStatus)
		clients.POST("/convert-from-lead/:leadId", clientHandler.ConvertFromLead)
	}

	// PROJECTS
	projects := api.Group("/projects")
	{
		projects.POST("", projectHandler.Create)
		projects.GET("", projectHandler.List)
		projects.GET("/:id", projectHandler.GetByID)
		projects.PATCH("/:id", projectHandler.Patch)
		projects.DELETE("/:id", projectHandler.Delete)
		projects.POST("/:id/status", projectHandler.UpdateStatus)
	}

	// FINANCE (accountant/manager/admin; auditors read, the guard blocks
	// their writes)
	finance := middleware.RequireRoles(authz.RoleAccountant, authz.RoleManager, authz.RoleAuditor, authz.RoleAdmin)

	expenses := api.Group("/expenses", finance)
	{
		expenses.POST("", expenseHandler.Create)
		expenses.GET("", expenseHandler.List)
		expenses.GET("/:id", expenseHandler.GetByID)
		expenses.PATCH("/:id", expenseHandler.Patch)
		expenses.DELETE("/:id", expenseHandler.Delete)
	}

	api.GET("/financial-logs", finance, expenseHandler.ListLogs)

	invoices := api.Group("/invoices", finance)
	{
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.POST("/:id/status", invoiceHandler.UpdateStatus)
		invoices.POST("/:id/pay", invoiceHandler.Pay)
	}

	// INVENTORY
	inventory := api.Group("/inventory")
	{
		inventory.POST("", inventoryHandler.Create)
		inventory.GET("", inventoryHandler.List)
		inventory.GET("/:id", inventoryHandler.GetByID)
		inventory.PATCH("/:id", inventoryHandler.Patch)
		inventory.DELETE("/:id", inventoryHandler.Delete)
	}

	// LEGAL DOCUMENTS
	legalDocs := api.Group("/legal-documents")
	{
		legalDocs.POST("", legalDocumentHandler.Create)
		legalDocs.GET("", legalDocumentHandler.List)
		legalDocs.GET("/:id", legalDocumentHandler.GetByID)
		legalDocs.PATCH("/:id", legalDocumentHandler.Patch)
		legalDocs.DELETE("/:id", legalDocumentHandler.Delete)
	}

	// RATES (price list; mutations are finance-gated)
	rates := api.Group("/rates")
	{
		rates.GET("", rateHandler.List)
		rates.GET("/:id", rateHandler.GetByID)
		rates.POST("", finance, rateHandler.Create)
		rates.PATCH("/:id", finance, rateHandler.Patch)
		rates.DELETE("/:id", finance, rateHandler.Delete)
	}

	// REFERRALS
	referrals := api.Group("/referrals")
	{
		referrals.POST("", referralHandler.Create)
		referrals.GET("", referralHandler.List)
		referrals.GET("/:id", referralHandler.GetByID)
		referrals.PATCH("/:id", referralHandler.Patch)
		referrals.DELETE("/:id", referralHandler.Delete)
		referrals.POST("/:id/status", referralHandler.UpdateStatus)
	}

	return r
}
