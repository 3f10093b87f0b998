package postgres

import (
	"context"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"
	"taponn/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type qrCodeRepository struct {
	db *gorm.DB
}

// NewQRCodeRepository creates a GORM-backed QR code repository.
func NewQRCodeRepository(db *gorm.DB) repository.QRCodeRepository {
	return &qrCodeRepository{db: db}
}

func (repo *qrCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.QRCode, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate issues SELECT ... FOR UPDATE. It only holds the lock when called
// inside a transaction.
func (repo *qrCodeRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.QRCode, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *qrCodeRepository) find(db *gorm.DB, id uuid.UUID) (*entity.QRCode, error) {
	var qrM model.QRCodeModel
	if err := db.Where("id = ?", id).First(&qrM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQRCodeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find qr code")
	}

	return toQRCodeDomain(&qrM), nil
}

// ListByUser returns a page of the user's QR codes, newest first.
func (repo *qrCodeRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.QRCode, error) {
	var qrMs []*model.QRCodeModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&qrMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list qr codes")
	}

	codes := make([]*entity.QRCode, 0, len(qrMs))
	for _, qrM := range qrMs {
		codes = append(codes, toQRCodeDomain(qrM))
	}

	return codes, nil
}

func (repo *qrCodeRepository) Create(ctx context.Context, qr *entity.QRCode) error {
	if qr.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate qr code id")
		}
		qr.ID = id
	}

	qrM := fromQRCodeDomain(qr)
	if err := repo.db.WithContext(ctx).Create(qrM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("qr code profile does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create qr code")
	}

	qr.CreatedAt = qrM.CreatedAt
	qr.UpdatedAt = qrM.UpdatedAt

	return nil
}

func (repo *qrCodeRepository) Update(ctx context.Context, qr *entity.QRCode) error {
	qrM := fromQRCodeDomain(qr)
	if err := repo.db.WithContext(ctx).Save(qrM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update qr code")
	}

	qr.UpdatedAt = qrM.UpdatedAt

	return nil
}

func (repo *qrCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.QRCodeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete qr code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQRCodeNotFound
	}

	return nil
}

func toQRCodeDomain(data *model.QRCodeModel) *entity.QRCode {
	if data == nil {
		return nil
	}

	return &entity.QRCode{
		ID:        data.ID,
		UserID:    data.UserID,
		ProfileID: data.ProfileID,
		Name:      data.Name,
		Type:      entity.QRType(data.Type),
		Content:   data.Content,
		Data:      data.Data,
		QRImage:   data.QRImage,
		Logo:      data.Logo,
		ScanCount: data.ScanCount,
		IsActive:  data.IsActive,
		Settings:  data.Settings,
		Analytics: data.Analytics,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromQRCodeDomain(data *entity.QRCode) *model.QRCodeModel {
	if data == nil {
		return nil
	}

	return &model.QRCodeModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProfileID: data.ProfileID,
		Name:      data.Name,
		Type:      string(data.Type),
		Content:   data.Content,
		Data:      data.Data,
		QRImage:   data.QRImage,
		Logo:      data.Logo,
		ScanCount: data.ScanCount,
		IsActive:  data.IsActive,
		Settings:  data.Settings,
		Analytics: data.Analytics,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
