package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryType classifies a category as income or expense.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports whether the value is a known category type.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category labels transactions within a family. The same name can exist
// once as income and once as expense category.
type Category struct {
	DefaultModel
	// The unique index only covers live rows so that a deleted category
	// frees up its name again.
	Name     string       `json:"name" gorm:"uniqueIndex:category_name_type_family,where:deleted_at IS NULL" example:"Groceries"`
	Type     CategoryType `json:"type" gorm:"column:category_type;uniqueIndex:category_name_type_family" example:"expense"`
	FamilyID uuid.UUID    `json:"familyId" gorm:"uniqueIndex:category_name_type_family" example:"c8431323-3f68-4a8a-b073-2f318f9d2b94"` // ID of the family the category belongs to
	Family   Family       `json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return tx.First(&Family{}, toSave.FamilyID).Error
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if !c.Type.Valid() {
		return ErrInvalidCategoryType
	}

	return nil
}
