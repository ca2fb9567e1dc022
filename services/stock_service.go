package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/restobar-app/backend/models"
)

// StockService translates "N units of menu item X were ordered or returned"
// into concrete insumo stock deltas and applies them. It never owns a
// transaction boundary: every method runs on the caller's tx, so a failed
// decrement rolls back together with whatever the caller was doing.
type StockService struct{}

func NewStockService() *StockService {
	return &StockService{}
}

// Consume decrements stock for qty units of a menu item. Direct items map
// 1:1 onto their single insumo; recipe items decrement every recipe line by
// line-quantity x qty. Any decrement that would push an insumo below zero
// fails with InsufficientStockError and leaves that row untouched.
func (s *StockService) Consume(tx *gorm.DB, menuCode string, qty int) error {
	item, err := s.loadMenuItem(tx, menuCode)
	if err != nil {
		return err
	}

	if item.IsDirect() {
		if item.IngredientCode == nil {
			return &NoIngredientError{MenuItemCode: menuCode}
		}
		// 1:1, no recipe scaling on the direct path
		return s.decrement(tx, *item.IngredientCode, float64(qty))
	}

	lines, err := s.loadRecipeLines(tx, menuCode)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if err := s.decrement(tx, line.IngredientCode, line.Quantity*float64(qty)); err != nil {
			return err
		}
	}
	return nil
}

// Restore is the inverse of Consume: it increments the same insumos by the
// same amounts, following the menu item's *current* mapping (an accepted
// approximation when the catalog changed since the order was created). There
// is no upper bound on restored stock.
func (s *StockService) Restore(tx *gorm.DB, menuCode string, qty int) error {
	item, err := s.loadMenuItem(tx, menuCode)
	if err != nil {
		return err
	}

	if item.IsDirect() {
		if item.IngredientCode == nil {
			return &NoIngredientError{MenuItemCode: menuCode}
		}
		return s.increment(tx, *item.IngredientCode, float64(qty))
	}

	lines, err := s.loadRecipeLines(tx, menuCode)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if err := s.increment(tx, line.IngredientCode, line.Quantity*float64(qty)); err != nil {
			return err
		}
	}
	return nil
}

func (s *StockService) loadMenuItem(tx *gorm.DB, menuCode string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := tx.First(&item, "code = ?", menuCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *StockService) loadRecipeLines(tx *gorm.DB, menuCode string) ([]models.RecipeLine, error) {
	var recipe models.Recipe
	if err := tx.Preload("Lines").First(&recipe, "menu_item_code = ?", menuCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe.Lines, nil
}

// decrement is the floor-enforcing conditional update. The stock check and
// the subtraction are a single statement, so two concurrent orders cannot
// both pass the check and drive the row negative: the row lock taken by the
// UPDATE serializes them, and the loser sees zero affected rows.
func (s *StockService) decrement(tx *gorm.DB, ingredientCode string, amount float64) error {
	res := tx.Model(&models.Ingredient{}).
		Where("code = ? AND stock >= ?", ingredientCode, amount).
		UpdateColumn("stock", gorm.Expr("stock - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &InsufficientStockError{IngredientCode: ingredientCode}
	}
	return nil
}

func (s *StockService) increment(tx *gorm.DB, ingredientCode string, amount float64) error {
	res := tx.Model(&models.Ingredient{}).
		Where("code = ?", ingredientCode).
		UpdateColumn("stock", gorm.Expr("stock + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrIngredientNotFound
	}
	return nil
}
