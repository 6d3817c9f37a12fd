package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// AttachmentService stores delivery notes and invoices for purchase
// orders. Metadata lives in postgres; file bytes live in MinIO.
type AttachmentService struct {
	attachmentRepo *repository.AttachmentRepository
	poRepo         *repository.PORepository
	minioClient    *minio.Client
	bucketName     string
}

func NewAttachmentService(attachmentRepo *repository.AttachmentRepository, poRepo *repository.PORepository, minioClient *minio.Client, bucketName string) *AttachmentService {
	return &AttachmentService{
		attachmentRepo: attachmentRepo,
		poRepo:         poRepo,
		minioClient:    minioClient,
		bucketName:     bucketName,
	}
}

// List lists attachments of a purchase order within a venue.
func (s *AttachmentService) List(ctx context.Context, venueID, poID string) ([]entity.POAttachment, error) {
	if _, err := s.poRepo.FindByID(ctx, venueID, poID); err != nil {
		return nil, err
	}
	return s.attachmentRepo.FindByPO(ctx, poID)
}

// Upload stores a file and records it against the purchase order.
func (s *AttachmentService) Upload(ctx context.Context, venueID, poID, userID string, reader io.Reader, fileName string, fileSize int64, contentType string) (*entity.POAttachment, error) {
	po, err := s.poRepo.FindByID(ctx, venueID, poID)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("po-attachments/%s/%s%s",
		time.Now().Format("2006/01/02"), uuid.New().String()[:8], filepath.Ext(fileName))

	if s.minioClient != nil {
		_, err = s.minioClient.PutObject(ctx, s.bucketName, objectName, reader, fileSize, minio.PutObjectOptions{
			ContentType: contentType,
		})
		if err != nil {
			return nil, fmt.Errorf("upload file: %w", err)
		}
	}

	att := &entity.POAttachment{
		ID:         uuid.New().String()[:32],
		POID:       po.ID,
		VenueID:    po.VenueID,
		FileName:   fileName,
		FilePath:   objectName,
		FileSize:   fileSize,
		MimeType:   contentType,
		UploadedBy: userID,
	}
	if err := s.attachmentRepo.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}
	return att, nil
}

// Download streams an attachment from object storage. The lookup is
// scoped to the venue's purchase order.
func (s *AttachmentService) Download(ctx context.Context, venueID, poID, id string) (io.ReadCloser, *entity.POAttachment, error) {
	if _, err := s.poRepo.FindByID(ctx, venueID, poID); err != nil {
		return nil, nil, err
	}
	att, err := s.attachmentRepo.FindByID(ctx, poID, id)
	if err != nil {
		return nil, nil, err
	}

	if s.minioClient == nil {
		return nil, att, fmt.Errorf("storage not configured")
	}

	object, err := s.minioClient.GetObject(ctx, s.bucketName, att.FilePath, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("get object: %w", err)
	}
	return object, att, nil
}

// Delete removes an attachment record and its stored object.
func (s *AttachmentService) Delete(ctx context.Context, venueID, poID, id string) error {
	if _, err := s.poRepo.FindByID(ctx, venueID, poID); err != nil {
		return err
	}
	att, err := s.attachmentRepo.FindByID(ctx, poID, id)
	if err != nil {
		return err
	}

	if s.minioClient != nil {
		if err := s.minioClient.RemoveObject(ctx, s.bucketName, att.FilePath, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("remove object: %w", err)
		}
	}
	return s.attachmentRepo.Delete(ctx, id)
}
