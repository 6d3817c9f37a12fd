package service

import (
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/config"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/shared/notify"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services bundles all venue services.
type Services struct {
	Venue       *VenueService
	Supplier    *SupplierService
	Inventory   *InventoryService
	Menu        *MenuService
	Procurement *ProcurementService
	Receiving   *ReceivingService
	Dashboard   *DashboardService
	Export      *ExportService
	Attachment  *AttachmentService
}

// NewServices wires the service bundle.
func NewServices(repos *repository.Repositories, db *gorm.DB, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			logger.Warn("minio unavailable, attachments disabled", zap.Error(err))
			minioClient = nil
		}
	}

	notifier := notify.New(cfg.Webhook.URL)

	return &Services{
		Venue:       NewVenueService(repos.Venue, repos.ActivityLog),
		Supplier:    NewSupplierService(repos.Supplier, repos.ActivityLog),
		Inventory:   NewInventoryService(repos.Inventory, repos.ActivityLog),
		Menu:        NewMenuService(repos.Menu),
		Procurement: NewProcurementService(repos.PO, repos.Supplier, repos.Venue, repos.ActivityLog),
		Receiving:   NewReceivingService(repos.PO, repos.Inventory, repos.ActivityLog, rdb, notifier, logger),
		Dashboard:   NewDashboardService(db, rdb),
		Export:      NewExportService(repos.PO, repos.Inventory),
		Attachment:  NewAttachmentService(repos.Attachment, repos.PO, minioClient, cfg.MinIO.Bucket),
	}
}
