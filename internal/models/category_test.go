package models_test

import (
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	category := suite.createTestCategory(models.Category{
		FamilyID: family.ID,
		Name:     " Groceries ",
	})

	suite.Assert().Equal("Groceries", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryInvalidType() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	err := models.DB.Create(&models.Category{
		FamilyID: family.ID,
		Name:     "Invalid",
		Type:     "transfer",
	}).Error

	suite.Assert().ErrorIs(err, models.ErrInvalidCategoryType)
}

func (suite *TestSuiteStandard) TestCategoryRequiresFamily() {
	err := models.DB.Create(&models.Category{
		FamilyID: uuid.New(),
		Name:     "Orphan",
		Type:     models.CategoryTypeExpense,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerFamilyAndType() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)
	other := suite.createTestFamily(models.Family{}, creator.ID)

	_ = suite.createTestCategory(models.Category{
		FamilyID: family.ID,
		Name:     "Groceries",
		Type:     models.CategoryTypeExpense,
	})

	err := models.DB.Create(&models.Category{
		FamilyID: family.ID,
		Name:     "Groceries",
		Type:     models.CategoryTypeExpense,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
	suite.Assert().ErrorIs(err, models.ErrConflict)

	// The same name can exist with the other type
	err = models.DB.Create(&models.Category{
		FamilyID: family.ID,
		Name:     "Groceries",
		Type:     models.CategoryTypeIncome,
	}).Error
	suite.Assert().NoError(err)

	// And in another family
	err = models.DB.Create(&models.Category{
		FamilyID: other.ID,
		Name:     "Groceries",
		Type:     models.CategoryTypeExpense,
	}).Error
	suite.Assert().NoError(err)
}

func (suite *TestSuiteStandard) TestCategoryNameReusableAfterDelete() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	category := suite.createTestCategory(models.Category{
		FamilyID: family.ID,
		Name:     "Groceries",
		Type:     models.CategoryTypeExpense,
	})

	err := models.DB.Delete(&category).Error
	suite.Require().NoError(err)

	// The deleted category does not block the name anymore
	err = models.DB.Create(&models.Category{
		FamilyID: family.ID,
		Name:     "Groceries",
		Type:     models.CategoryTypeExpense,
	}).Error
	suite.Assert().NoError(err)
}
