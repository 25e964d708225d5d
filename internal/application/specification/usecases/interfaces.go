package usecases

import (
	"context"
	"io"

	"cordwain/internal/domain/specification"
)

type GetSpecificationExecutor interface {
	Execute(ctx context.Context, query GetSpecificationQuery) (*specification.Specification, error)
}

type UploadMediaExecutor interface {
	Execute(ctx context.Context, cmd UploadMediaCommand) (*specification.MediaAsset, error)
}

type ReplaceMediaExecutor interface {
	Execute(ctx context.Context, cmd ReplaceMediaCommand) (*specification.MediaAsset, error)
}

type DeleteMediaExecutor interface {
	Execute(ctx context.Context, cmd DeleteMediaCommand) (*DeleteMediaResult, error)
}

type SetMediaStatusExecutor interface {
	Execute(ctx context.Context, cmd SetMediaStatusCommand) (*specification.MediaAsset, error)
}

type AddAnnotationExecutor interface {
	Execute(ctx context.Context, cmd AddAnnotationCommand) (*specification.Annotation, error)
}

type DeleteAnnotationExecutor interface {
	Execute(ctx context.Context, cmd DeleteAnnotationCommand) (*DeleteAnnotationResult, error)
}

// MediaStore is the object-storage port for uploaded specification media.
type MediaStore interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
}

// OpenTicketCounter answers how many open tickets are scoped to exactly
// one view. The resolve transition re-checks this on the server side no
// matter what the client computed.
type OpenTicketCounter interface {
	CountOpenForView(ctx context.Context, orderID, positionID uint, viewKey string) (int, error)
}
