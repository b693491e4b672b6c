package models

type ArticleModel struct {
	ID        uint   `gorm:"primaryKey"`
	Slug      string `gorm:"uniqueIndex;size:100;not null"`
	Title     string `gorm:"size:200;not null"`
	Summary   string `gorm:"size:500"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ArticleModel) TableName() string {
	return "kb_articles"
}
