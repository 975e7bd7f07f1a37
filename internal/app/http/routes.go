package routes

import (
	adminapi "taverne-catalog/internal/api/admin"
	authapi "taverne-catalog/internal/api/auth"
	platesapi "taverne-catalog/internal/api/plates"
	termsapi "taverne-catalog/internal/api/terms"
	"taverne-catalog/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public catalog reads (gallery + adapters)
	r.GET("/plates", platesapi.ListPlates)
	r.GET("/plates/:id", platesapi.GetPlate)
	r.GET("/plates/:id/states", platesapi.GetPlateStates)
	r.GET("/plates/:id/impressions", platesapi.ListPlateImpressions)
	r.GET("/states/:id", platesapi.GetState)
	r.GET("/states/:id/impressions", platesapi.ListStateImpressions)
	r.GET("/impressions/:id", platesapi.GetImpression)

	r.GET("/taxonomies", termsapi.ListTaxonomies)
	r.GET("/taxonomies/:taxonomy/terms", termsapi.ListTerms)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/login", authapi.Login)

	// Editor mutations. The routes perform the "can edit" capability
	// check; the catalog store itself does no authorization.
	editor := r.Group("/")
	editor.Use(middleware.AuthMiddleware(), middleware.RequireRole("editor"))
	editor.POST("/change-password", authapi.ChangePassword)

	editor.POST("/plates", platesapi.CreatePlate)
	editor.PUT("/plates/:id", platesapi.UpdatePlate)
	editor.DELETE("/plates/:id", platesapi.DeletePlate)
	editor.PUT("/plates/:id/terms", platesapi.AssignPlateTerms)

	editor.POST("/plates/:id/states", platesapi.CreateState)
	editor.GET("/plates/:id/next-state-number", platesapi.NextStateNumber)
	editor.PUT("/states/:id", platesapi.UpdateState)
	editor.DELETE("/states/:id", platesapi.DeleteState)

	editor.POST("/plates/:id/states/:stateId/impressions", platesapi.CreateImpression)
	editor.GET("/states/:id/next-impression-number", platesapi.NextImpressionNumber)
	editor.PUT("/impressions/:id", platesapi.UpdateImpression)
	editor.DELETE("/impressions/:id", platesapi.DeleteImpression)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/stats", adminapi.GetCatalogStats)
	admin.POST("/terms/import", termsapi.ImportTermsCSV)
	admin.GET("/terms/export", termsapi.ExportTermsCSV)
}
