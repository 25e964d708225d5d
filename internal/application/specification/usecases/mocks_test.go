package usecases

import (
	"context"
	"io"

	"cordwain/internal/domain/specification"
	"cordwain/internal/shared/logger"
)

type mockSpecRepository struct {
	GetByOrderPositionFunc func(ctx context.Context, orderID, positionID uint) (*specification.Specification, error)
	SaveMediaFunc          func(ctx context.Context, orderID, positionID uint, asset *specification.MediaAsset) error
	UpdateMediaFunc        func(ctx context.Context, asset *specification.MediaAsset) error
	DeleteMediaFunc        func(ctx context.Context, mediaID uint) error
	SaveAnnotationFunc     func(ctx context.Context, orderID, positionID uint, annotation *specification.Annotation) error
	DeleteAnnotationFunc   func(ctx context.Context, annotationID uint) error
}

func (m *mockSpecRepository) GetByOrderPosition(ctx context.Context, orderID, positionID uint) (*specification.Specification, error) {
	if m.GetByOrderPositionFunc != nil {
		return m.GetByOrderPositionFunc(ctx, orderID, positionID)
	}
	return specification.NewSpecification(orderID, positionID)
}

func (m *mockSpecRepository) SaveMedia(ctx context.Context, orderID, positionID uint, asset *specification.MediaAsset) error {
	if m.SaveMediaFunc != nil {
		return m.SaveMediaFunc(ctx, orderID, positionID, asset)
	}
	return nil
}

func (m *mockSpecRepository) UpdateMedia(ctx context.Context, asset *specification.MediaAsset) error {
	if m.UpdateMediaFunc != nil {
		return m.UpdateMediaFunc(ctx, asset)
	}
	return nil
}

func (m *mockSpecRepository) DeleteMedia(ctx context.Context, mediaID uint) error {
	if m.DeleteMediaFunc != nil {
		return m.DeleteMediaFunc(ctx, mediaID)
	}
	return nil
}

func (m *mockSpecRepository) SaveAnnotation(ctx context.Context, orderID, positionID uint, annotation *specification.Annotation) error {
	if m.SaveAnnotationFunc != nil {
		return m.SaveAnnotationFunc(ctx, orderID, positionID, annotation)
	}
	return nil
}

func (m *mockSpecRepository) DeleteAnnotation(ctx context.Context, annotationID uint) error {
	if m.DeleteAnnotationFunc != nil {
		return m.DeleteAnnotationFunc(ctx, annotationID)
	}
	return nil
}

type mockMediaStore struct {
	PutFunc    func(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	RemoveFunc func(ctx context.Context, objectName string) error
}

func (m *mockMediaStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, objectName, reader, size, contentType)
	}
	return "https://media.example/" + objectName, nil
}

func (m *mockMediaStore) Remove(ctx context.Context, objectName string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, objectName)
	}
	return nil
}

type mockTicketCounter struct {
	CountOpenForViewFunc func(ctx context.Context, orderID, positionID uint, viewKey string) (int, error)
}

func (m *mockTicketCounter) CountOpenForView(ctx context.Context, orderID, positionID uint, viewKey string) (int, error) {
	if m.CountOpenForViewFunc != nil {
		return m.CountOpenForViewFunc(ctx, orderID, positionID, viewKey)
	}
	return 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
