package models

type MediaModel struct {
	ID         uint   `gorm:"primaryKey"`
	OrderID    uint   `gorm:"not null;uniqueIndex:idx_media_view"`
	PositionID uint   `gorm:"not null;uniqueIndex:idx_media_view"`
	ViewKey    string `gorm:"size:20;not null;uniqueIndex:idx_media_view"`
	Status     string `gorm:"size:20;not null;index"`
	URL        string `gorm:"size:500;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (MediaModel) TableName() string {
	return "specification_media"
}

type AnnotationModel struct {
	ID         uint    `gorm:"primaryKey"`
	MediaID    uint    `gorm:"not null;index"`
	OrderID    uint    `gorm:"not null;index:idx_annotations_position"`
	PositionID uint    `gorm:"not null;index:idx_annotations_position"`
	X          float64 `gorm:"not null"`
	Y          float64 `gorm:"not null"`
	Note       string  `gorm:"type:text;not null"`
	Author     string  `gorm:"size:100;not null"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;not null"`
}

func (AnnotationModel) TableName() string {
	return "media_annotations"
}
