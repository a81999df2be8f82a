package postgres

import (
	"context"

	"venmito/internal/domain/entity"
	"venmito/internal/domain/repository"
	"venmito/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// transferRepository implements the repository.TransferRepository interface.
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository is the constructor for transferRepository.
func NewTransferRepository(db *gorm.DB) repository.TransferRepository {
	return &transferRepository{
		db: db,
	}
}

// CreateTransfer inserts the transfer unconditionally.
func (repo *transferRepository) CreateTransfer(ctx context.Context, transfer *entity.Transfer) error {
	transferM := fromTransferDomain(transfer)

	if err := repo.db.WithContext(ctx).Omit("Sender", "Recipient").Create(transferM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrPersonNotFound, "invalid sender or recipient reference")
		}

		return storageError(err, "failed to create transfer")
	}

	transfer.ID = transferM.ID
	transfer.CreatedAt = transferM.CreatedAt
	transfer.UpdatedAt = transferM.UpdatedAt

	return nil
}

// ListTransfers returns every transfer with sender and recipient summaries.
func (repo *transferRepository) ListTransfers(ctx context.Context) ([]*entity.Transfer, error) {
	var transferModels []*model.TransferModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Sender").
		Preload("Recipient").
		Order("id ASC").
		Find(&transferModels).Error; err != nil {
		return nil, storageError(err, "failed to list transfers")
	}

	transfers := make([]*entity.Transfer, 0, len(transferModels))
	for _, transferM := range transferModels {
		transfers = append(transfers, toTransferDomain(transferM))
	}

	return transfers, nil
}

// --- Mapper Functions ---

func toTransferDomain(data *model.TransferModel) *entity.Transfer {
	if data == nil {
		return nil
	}

	return &entity.Transfer{
		ID:          data.ID,
		SenderID:    data.SenderID,
		RecipientID: data.RecipientID,
		Amount:      data.Amount,
		Date:        data.Date,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Sender:      toPersonSummary(data.Sender),
		Recipient:   toPersonSummary(data.Recipient),
	}
}

func fromTransferDomain(data *entity.Transfer) *model.TransferModel {
	if data == nil {
		return nil
	}

	return &model.TransferModel{
		ID:          data.ID,
		SenderID:    data.SenderID,
		RecipientID: data.RecipientID,
		Amount:      data.Amount,
		Date:        data.Date,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
