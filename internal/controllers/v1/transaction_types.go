package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
)

type TransactionEditable struct {
	BudgetID   uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`            // ID of the budget the transaction is booked against
	CategoryID *uuid.UUID      `json:"categoryId" example:"b07881ae-6aa1-4aa6-a0f8-cbbfc54e3097"`          // ID of the category, optional
	Amount     decimal.Decimal `json:"amount" example:"32.12" default:"0" minimum:"0" maximum:"999999999999.99"` // The amount of the transaction
	Note       string          `json:"note" example:"Weekly shopping" default:""`                          // A longer description for the transaction
	Date       types.Date      `json:"date" example:"2024-03-16"`                                          // Date of the transaction. Defaults to the current day.
}

// model returns the database resource for the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		BudgetID:   editable.BudgetID,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		Note:       editable.Note,
		Date:       editable.Date,
	}
}

type TransactionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`    // The budget the transaction is booked against
}

// Transaction is the API v1 representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	CreatedBy uuid.UUID        `json:"createdBy" example:"9b4ff4aa-d2f1-4276-b2b5-4b8a43922a34"` // ID of the user who created the transaction
	Links     TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.ContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			BudgetID:   model.BudgetID,
			CategoryID: model.CategoryID,
			Amount:     model.Amount,
			Note:       model.Note,
			Date:       model.Date,
		},
		CreatedBy: model.CreatedByID,
		Links: TransactionLinks{
			Self:   fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Note     string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Budget   string `form:"budget"`                     // By budget ID
	Category string `form:"category"`                   // By category ID
	Search   string `form:"search" filterField:"false"` // By string in the note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Transaction returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	budgetID, err := hs_uuid.Parse(f.Budget)
	if err != nil {
		return models.Transaction{}, err
	}

	categoryID, err := hs_uuid.Parse(f.Category)
	if err != nil {
		return models.Transaction{}, err
	}

	transaction := models.Transaction{
		BudgetID: budgetID.UUID,
	}

	if categoryID != hs_uuid.Nil {
		id := categoryID.UUID
		transaction.CategoryID = &id
	}

	return transaction, nil
}
