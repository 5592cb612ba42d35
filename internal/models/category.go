package models

type Category struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:255;uniqueIndex;not null" json:"name"`
	KnowledgeTag string     `gorm:"size:50;index" json:"knowledge_tag,omitempty"`
	Questions    []Question `gorm:"foreignKey:CategoryID" json:"questions,omitempty"`
}

const (
	KnowledgeTagHistory    = "history"
	KnowledgeTagGeography  = "geography"
	KnowledgeTagScience    = "science"
	KnowledgeTagLiterature = "literature"
	KnowledgeTagPopCulture = "pop_culture"
	KnowledgeTagWordplay   = "wordplay"
	KnowledgeTagGeneral    = "general"
)
