package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/pkg/clock"
	"groupbuy-service/internal/pkg/errs"
	"groupbuy-service/internal/usecase/shared"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const DefaultMaxProofSize int64 = 10 << 20

var (
	ErrFileTooLarge        = errs.Class("file exceeds the maximum upload size", errs.ErrInvalidArgument)
	ErrUnsupportedFileType = errs.Class("only images and PDF files are accepted", errs.ErrInvalidArgument)
	ErrEmptyFile           = errs.Class("uploaded file is empty", errs.ErrInvalidArgument)
)

type UploadProofInput struct {
	GroupBuyID  uuid.UUID
	OrganizerID uuid.UUID
	Body        io.Reader
}

type UploadProofResult struct {
	URL         string
	ContentType string
}

type ProofCommands interface {
	Upload(ctx context.Context, in UploadProofInput) (*UploadProofResult, error)
}

type proofUseCaseImpl struct {
	uow     shared.UnitOfWork
	storage ProofStorage
	clock   clock.Clock
	maxSize int64
}

func NewProofUseCase(uow shared.UnitOfWork, storage ProofStorage, clk clock.Clock, maxSize int64) ProofCommands {
	if maxSize <= 0 {
		maxSize = DefaultMaxProofSize
	}
	return &proofUseCaseImpl{uow: uow, storage: storage, clock: clk, maxSize: maxSize}
}

// Upload only stores the file. Attaching it to the purchase request is a
// separate upload_organizer_proof action.
func (uc *proofUseCaseImpl) Upload(ctx context.Context, in UploadProofInput) (*UploadProofResult, error) {
	organizerID, err := uc.uow.CommandReads().GroupBuyOrganizer(ctx, in.GroupBuyID)
	if err != nil {
		return nil, err
	}
	if organizerID != in.OrganizerID {
		return nil, groupbuy.ErrNotOrganizer
	}

	data, err := io.ReadAll(io.LimitReader(in.Body, uc.maxSize+1))
	if err != nil {
		return nil, errs.Wrap(err, "read proof upload")
	}
	switch {
	case len(data) == 0:
		return nil, ErrEmptyFile
	case int64(len(data)) > uc.maxSize:
		return nil, ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !isAcceptedProofType(mtype) {
		return nil, errs.Wrapf(ErrUnsupportedFileType, "detected %s", mtype.String())
	}

	key := fmt.Sprintf("payments/%s_%d%s", in.OrganizerID, uc.clock.Now().UnixMilli(), mtype.Extension())
	url, err := uc.storage.Save(ctx, key, mtype.String(), bytes.NewReader(data))
	if err != nil {
		return nil, errs.Wrap(err, "store proof upload")
	}
	return &UploadProofResult{URL: url, ContentType: mtype.String()}, nil
}

func isAcceptedProofType(m *mimetype.MIME) bool {
	if m.Is("application/pdf") {
		return true
	}
	for cur := m; cur != nil; cur = cur.Parent() {
		if strings.HasPrefix(cur.String(), "image/") {
			return true
		}
	}
	return false
}
