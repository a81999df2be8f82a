package impl

import (
	"context"

	"venmito/internal/domain/constants"
	"venmito/internal/domain/entity"
	"venmito/internal/domain/repository"
	"venmito/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type transferService struct {
	runner       *BatchRunner
	transferRepo repository.TransferRepository
}

// TransferServiceParams holds dependencies for TransferService, injected by Fx.
type TransferServiceParams struct {
	fx.In

	Runner       *BatchRunner
	TransferRepo repository.TransferRepository
}

// NewTransferService is the constructor for transferService.
func NewTransferService(params TransferServiceParams) usecase.TransferUsecase {
	return &transferService{
		runner:       params.Runner,
		transferRepo: params.TransferRepo,
	}
}

// UploadTransfers inserts one transfer per row whose parties resolve by identifier.
// Re-uploading the same rows inserts them again.
func (srv *transferService) UploadTransfers(ctx context.Context, records []usecase.RawRecord) (*usecase.BatchResult[*entity.Transfer], error) {
	policy := batchPolicy{family: constants.FamilyTransfers, requireInsert: true}

	return runBatch(ctx, srv.runner, policy, records, srv.insertTransfer)
}

func (srv *transferService) insertTransfer(ctx context.Context, repos repository.RepositoryFactory, record usecase.RawRecord) (*entity.Transfer, error) {
	rec, err := srv.runner.normalizer.transfer(record)
	if err != nil {
		return nil, skipRow(usecase.SkipInvalidRecord, "", "%v", err)
	}
	key := identifierKey(rec.SenderIdentifier, rec.RecipientIdentifier)

	personRepo := repos.NewPersonRepository()
	sender, err := findParty(ctx, personRepo, rec.SenderIdentifier, usecase.SkipSenderNotFound, key)
	if err != nil {
		return nil, err
	}
	recipient, err := findParty(ctx, personRepo, rec.RecipientIdentifier, usecase.SkipRecipientNotFound, key)
	if err != nil {
		return nil, err
	}

	transfer := &entity.Transfer{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Amount:      rec.Amount,
		Date:        rec.Date,
		Sender:      sender.Summary(),
		Recipient:   recipient.Summary(),
	}
	if err := repos.NewTransferRepository().CreateTransfer(ctx, transfer); err != nil {
		return nil, errors.Wrap(err, "failed to create transfer")
	}

	return transfer, nil
}

func findParty(ctx context.Context, personRepo repository.PersonRepository, identifier string, reason usecase.SkipReason, key string) (*entity.Person, error) {
	person, err := personRepo.FindByIdentifier(ctx, identifier)
	if errors.Is(err, repository.ErrPersonNotFound) {
		return nil, skipRow(reason, key, "no person with identifier %q", identifier)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find person by identifier")
	}

	return person, nil
}

// ListTransfers returns every transfer with sender and recipient summaries.
func (srv *transferService) ListTransfers(ctx context.Context) ([]*entity.Transfer, error) {
	transfers, err := srv.transferRepo.ListTransfers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transfers")
	}

	return transfers, nil
}
