// Package services exposes the specification context to in-process
// consumers, primarily the review engine's specification sessions.
package services

import (
	"context"

	"cordwain/internal/application/review"
	"cordwain/internal/application/specification/usecases"
	"cordwain/internal/domain/specification"
	"cordwain/internal/shared/logger"
)

// SpecificationService implements review.SpecificationService on top of
// the specification use cases.
type SpecificationService struct {
	getUC              usecases.GetSpecificationExecutor
	uploadUC           usecases.UploadMediaExecutor
	replaceUC          usecases.ReplaceMediaExecutor
	deleteMediaUC      usecases.DeleteMediaExecutor
	setStatusUC        usecases.SetMediaStatusExecutor
	addAnnotationUC    usecases.AddAnnotationExecutor
	deleteAnnotationUC usecases.DeleteAnnotationExecutor
	logger             logger.Interface
}

func NewSpecificationService(
	getUC usecases.GetSpecificationExecutor,
	uploadUC usecases.UploadMediaExecutor,
	replaceUC usecases.ReplaceMediaExecutor,
	deleteMediaUC usecases.DeleteMediaExecutor,
	setStatusUC usecases.SetMediaStatusExecutor,
	addAnnotationUC usecases.AddAnnotationExecutor,
	deleteAnnotationUC usecases.DeleteAnnotationExecutor,
	logger logger.Interface,
) *SpecificationService {
	return &SpecificationService{
		getUC:              getUC,
		uploadUC:           uploadUC,
		replaceUC:          replaceUC,
		deleteMediaUC:      deleteMediaUC,
		setStatusUC:        setStatusUC,
		addAnnotationUC:    addAnnotationUC,
		deleteAnnotationUC: deleteAnnotationUC,
		logger:             logger,
	}
}

var _ review.SpecificationService = (*SpecificationService)(nil)

func (s *SpecificationService) GetSpecification(ctx context.Context, orderID, positionID uint) (*specification.Specification, error) {
	return s.getUC.Execute(ctx, usecases.GetSpecificationQuery{OrderID: orderID, PositionID: positionID})
}

func (s *SpecificationService) UploadMedia(ctx context.Context, orderID, positionID uint, view specification.ViewKey, upload review.Upload) (*specification.MediaAsset, error) {
	return s.uploadUC.Execute(ctx, usecases.UploadMediaCommand{
		OrderID:     orderID,
		PositionID:  positionID,
		ViewKey:     view.String(),
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		Reader:      upload.Reader,
	})
}

func (s *SpecificationService) ReplaceMedia(ctx context.Context, orderID, positionID, mediaID uint, upload review.Upload) (*specification.MediaAsset, error) {
	return s.replaceUC.Execute(ctx, usecases.ReplaceMediaCommand{
		OrderID:     orderID,
		PositionID:  positionID,
		MediaID:     mediaID,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		Reader:      upload.Reader,
	})
}

func (s *SpecificationService) DeleteMedia(ctx context.Context, orderID, positionID, mediaID uint) error {
	_, err := s.deleteMediaUC.Execute(ctx, usecases.DeleteMediaCommand{
		OrderID:    orderID,
		PositionID: positionID,
		MediaID:    mediaID,
	})
	return err
}

func (s *SpecificationService) SetMediaStatus(ctx context.Context, orderID, positionID, mediaID uint, status specification.MediaStatus) (*specification.MediaAsset, error) {
	return s.setStatusUC.Execute(ctx, usecases.SetMediaStatusCommand{
		OrderID:    orderID,
		PositionID: positionID,
		MediaID:    mediaID,
		NewStatus:  status,
	})
}

func (s *SpecificationService) AddAnnotation(ctx context.Context, orderID, positionID, mediaID uint, x, y float64, note, author string) (*specification.Annotation, error) {
	return s.addAnnotationUC.Execute(ctx, usecases.AddAnnotationCommand{
		OrderID:    orderID,
		PositionID: positionID,
		MediaID:    mediaID,
		X:          x,
		Y:          y,
		Note:       note,
		Author:     author,
	})
}

func (s *SpecificationService) DeleteAnnotation(ctx context.Context, orderID, positionID, annotationID uint) error {
	_, err := s.deleteAnnotationUC.Execute(ctx, usecases.DeleteAnnotationCommand{
		OrderID:      orderID,
		PositionID:   positionID,
		AnnotationID: annotationID,
	})
	return err
}
