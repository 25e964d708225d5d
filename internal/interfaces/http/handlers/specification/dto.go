package specification

import (
	domain "cordwain/internal/domain/specification"
)

// MediaResponse is the wire shape of one view slot's asset. Placeholders
// carry no id and no timestamps; clients switch on kind.
type MediaResponse struct {
	ID        uint   `json:"id,omitempty"`
	Kind      string `json:"kind"`
	ViewKey   string `json:"view_key"`
	Status    string `json:"status"`
	URL       string `json:"url"`
	CreatedAt int64  `json:"created_at,omitempty"`
	UpdatedAt int64  `json:"updated_at,omitempty"`
}

type AnnotationResponse struct {
	ID        uint    `json:"id"`
	MediaID   uint    `json:"media_id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Note      string  `json:"note"`
	Author    string  `json:"author"`
	CreatedAt int64   `json:"created_at"`
}

// ViewResponse is one of the eight fixed view slots.
type ViewResponse struct {
	ViewKey     string               `json:"view_key"`
	Label       string               `json:"label"`
	Media       MediaResponse        `json:"media"`
	Annotations []AnnotationResponse `json:"annotations"`
}

type SpecificationResponse struct {
	OrderID    uint           `json:"order_id"`
	PositionID uint           `json:"position_id"`
	ActiveView string         `json:"active_view"`
	Views      []ViewResponse `json:"views"`
}

type AddAnnotationRequest struct {
	X    float64 `json:"x" binding:"min=0,max=1"`
	Y    float64 `json:"y" binding:"min=0,max=1"`
	Note string  `json:"note" binding:"required,max=2000"`
}

type SetMediaStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open resolved"`
}

func toMediaResponse(asset *domain.MediaAsset) MediaResponse {
	resp := MediaResponse{
		ID:      asset.ID(),
		Kind:    string(asset.Kind()),
		ViewKey: asset.ViewKey().String(),
		Status:  asset.Status().String(),
		URL:     asset.URL(),
	}

	if asset.IsPersisted() {
		resp.CreatedAt = asset.CreatedAt().UnixMilli()
		resp.UpdatedAt = asset.UpdatedAt().UnixMilli()
	}

	return resp
}

func toAnnotationResponse(a *domain.Annotation) AnnotationResponse {
	return AnnotationResponse{
		ID:        a.ID(),
		MediaID:   a.MediaID(),
		X:         a.X(),
		Y:         a.Y(),
		Note:      a.Note(),
		Author:    a.Author(),
		CreatedAt: a.CreatedAt().UnixMilli(),
	}
}

// toSpecificationResponse expands the aggregate into the full eight-slot
// catalog: every view appears, with a placeholder where nothing was
// uploaded yet.
func toSpecificationResponse(spec *domain.Specification, activeView domain.ViewKey) (SpecificationResponse, error) {
	views := domain.Views()
	resp := SpecificationResponse{
		OrderID:    spec.OrderID(),
		PositionID: spec.PositionID(),
		ActiveView: activeView.String(),
		Views:      make([]ViewResponse, 0, len(views)),
	}

	for _, view := range views {
		asset, err := spec.Asset(view)
		if err != nil {
			return SpecificationResponse{}, err
		}

		vr := ViewResponse{
			ViewKey:     view.String(),
			Label:       view.Label(),
			Media:       toMediaResponse(asset),
			Annotations: []AnnotationResponse{},
		}

		if asset.IsPersisted() {
			for _, a := range spec.AnnotationsForMedia(asset.ID()) {
				vr.Annotations = append(vr.Annotations, toAnnotationResponse(a))
			}
		}

		resp.Views = append(resp.Views, vr)
	}

	return resp, nil
}
