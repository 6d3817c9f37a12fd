package main

import (
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/config"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/middleware"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/handler"
	"github.com/gin-gonic/gin"
)

func registerRoutes(router *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": Version})
	})

	api := router.Group("/api/v1",
		middleware.JWTAuth(cfg.JWT.Secret),
	)

	venues := api.Group("/venues/:venueId", middleware.VenueAccess())
	{
		// Settings
		venues.GET("/settings", h.Venue.GetSettings)
		venues.PUT("/settings", h.Venue.UpdateSettings)

		// Dashboard
		venues.GET("/dashboard", h.Dashboard.GetOverview)
		venues.GET("/inventory-export", h.Dashboard.ExportInventory)

		// Suppliers
		venues.GET("/suppliers", h.Supplier.ListSuppliers)
		venues.POST("/suppliers", h.Supplier.CreateSupplier)
		venues.GET("/suppliers/:id", h.Supplier.GetSupplier)
		venues.PUT("/suppliers/:id", h.Supplier.UpdateSupplier)
		venues.DELETE("/suppliers/:id", h.Supplier.DeleteSupplier)
		venues.POST("/suppliers/:id/contacts", h.Supplier.AddContact)
		venues.DELETE("/suppliers/:id/contacts/:contactId", h.Supplier.DeleteContact)

		// Inventory
		venues.GET("/inventory", h.Inventory.ListMaterials)
		venues.POST("/inventory", h.Inventory.CreateMaterial)
		venues.GET("/inventory/:id", h.Inventory.GetMaterial)
		venues.PUT("/inventory/:id", h.Inventory.UpdateMaterial)
		venues.POST("/inventory/:id/adjust", h.Inventory.AdjustStock)
		venues.GET("/inventory/:id/transactions", h.Inventory.ListTransactions)

		// Menu
		venues.GET("/menu/categories", h.Menu.ListCategories)
		venues.POST("/menu/categories", h.Menu.CreateCategory)
		venues.PUT("/menu/categories/:id", h.Menu.UpdateCategory)
		venues.GET("/menu/products/:id", h.Menu.GetProduct)
		venues.POST("/menu/products", h.Menu.CreateProduct)
		venues.PUT("/menu/products/:id", h.Menu.UpdateProduct)
		venues.DELETE("/menu/products/:id", h.Menu.DeleteProduct)
		venues.POST("/menu/products/:id/modifier-groups/:groupId", h.Menu.AssignModifierGroup)
		venues.GET("/menu/modifier-groups", h.Menu.ListModifierGroups)
		venues.POST("/menu/modifier-groups", h.Menu.CreateModifierGroup)
		venues.PUT("/menu/modifier-groups/:id", h.Menu.UpdateModifierGroup)

		// Purchase orders
		venues.GET("/purchase-orders", h.PO.ListPOs)
		venues.POST("/purchase-orders", h.PO.CreatePO)
		venues.GET("/purchase-orders/:id", h.PO.GetPO)
		venues.PUT("/purchase-orders/:id", h.PO.UpdatePO)
		venues.PUT("/purchase-orders/:id/fees", h.PO.UpdateFees)
		venues.POST("/purchase-orders/:id/status", h.PO.ChangeStatus)
		venues.GET("/purchase-orders/:id/export", h.PO.ExportPO)
		venues.GET("/purchase-orders/:id/activity", h.PO.ListActivity)

		// Attachments
		venues.GET("/purchase-orders/:id/attachments", h.PO.ListAttachments)
		venues.POST("/purchase-orders/:id/attachments", h.PO.UploadAttachment)
		venues.GET("/purchase-orders/:id/attachments/:attachmentId", h.PO.DownloadAttachment)
		venues.DELETE("/purchase-orders/:id/attachments/:attachmentId", h.PO.DeleteAttachment)

		// Receiving
		venues.POST("/purchase-orders/:id/receiving/preview", h.Receiving.Preview)
		venues.POST("/purchase-orders/:id/receiving/commit", h.Receiving.Commit)
		venues.POST("/purchase-orders/:id/recalculate-status", h.Receiving.RecalculateStatus)
	}
}
