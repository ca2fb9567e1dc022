package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/restobar-app/backend/models"
	"github.com/restobar-app/backend/utils"
)

var testDBCounter int64

// newTestDB opens a private in-memory database per test. The unique DSN keeps
// gorm's connection pool on the same database without sharing state between
// tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuCategory{},
		&models.Ingredient{},
		&models.MenuItem{},
		&models.Recipe{},
		&models.RecipeLine{},
		&models.Order{},
		&models.OrderLine{},
		&models.PaymentMethod{},
	))
	return db
}

func seedIngredient(t *testing.T, db *gorm.DB, code string, stock float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Ingredient{
		Code: code, Name: "insumo " + code, Unit: "und", Stock: stock, UnitCost: 1,
	}).Error)
}

func seedCategory(t *testing.T, db *gorm.DB, code string) {
	t.Helper()
	require.NoError(t, db.Create(&models.MenuCategory{
		Code: code, Name: "categoria " + code, Description: "test", Active: true,
	}).Error)
}

// seedDirectMenu binds a direct-kind ('I') menu item 1:1 to an insumo.
func seedDirectMenu(t *testing.T, db *gorm.DB, code, categoryCode, ingredientCode string, price float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.MenuItem{
		Code:           code,
		Name:           "menu " + code,
		Price:          price,
		Prepared:       models.PreparedDirect,
		Active:         true,
		CategoryCode:   categoryCode,
		IngredientCode: &ingredientCode,
	}).Error)
}

// seedRecipeMenu creates a recipe-kind ('A') menu item with one receta line
// per (insumo, cantidad) pair passed in.
func seedRecipeMenu(t *testing.T, db *gorm.DB, code, categoryCode, recipeCode string, price float64, lines map[string]float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.MenuItem{
		Code:         code,
		Name:         "menu " + code,
		Price:        price,
		Prepared:     models.PreparedRecipe,
		Active:       true,
		CategoryCode: categoryCode,
	}).Error)
	require.NoError(t, db.Create(&models.Recipe{Code: recipeCode, MenuItemCode: code}).Error)
	for insumo, qty := range lines {
		require.NoError(t, db.Create(&models.RecipeLine{
			RecipeCode: recipeCode, IngredientCode: insumo, Quantity: qty,
		}).Error)
	}
}

func ingredientStock(t *testing.T, db *gorm.DB, code string) float64 {
	t.Helper()
	var ins models.Ingredient
	require.NoError(t, db.First(&ins, "code = ?", code).Error)
	return ins.Stock
}

func TestConsumeDirectDecrementsOneToOne(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "CAT0000001")
	seedIngredient(t, db, "INS0000001", 10)
	seedDirectMenu(t, db, "MEN0000001", "CAT0000001", "INS0000001", 5)

	svc := NewStockService()
	require.NoError(t, svc.Consume(db, "MEN0000001", 3))

	assert.Equal(t, 7.0, ingredientStock(t, db, "INS0000001"))
}

func TestConsumeRecipeScalesPerLine(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "CAT0000001")
	seedIngredient(t, db, "INS0000001", 10)
	seedIngredient(t, db, "INS0000002", 10)
	seedRecipeMenu(t, db, "MEN0000001", "CAT0000001", "REC0000001", 12, map[string]float64{
		"INS0000001": 2.0,
		"INS0000002": 0.5,
	})

	svc := NewStockService()
	require.NoError(t, svc.Consume(db, "MEN0000001", 2))

	assert.Equal(t, 6.0, ingredientStock(t, db, "INS0000001"))
	assert.Equal(t, 9.0, ingredientStock(t, db, "INS0000002"))
}

func TestConsumeDuplicateRecipeLinesAreCumulative(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "CAT0000001")
	seedIngredient(t, db, "INS0000001", 10)
	seedRecipeMenu(t, db, "MEN0000001", "CAT0000001", "REC0000001", 12, nil)
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&models.RecipeLine{
			RecipeCode: "REC0000001", IngredientCode: "INS0000001", Quantity: 1.0,
		}).Error)
	}

	svc := NewStockService()
	require.NoError(t, svc.Consume(db, "MEN0000001", 2))

	// 2 lines x 1.0 x qty 2 = 4
	assert.Equal(t, 6.0, ingredientStock(t, db, "INS0000001"))
}

func TestConsumeExactStockReachesZero(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "CAT0000001")
	seedIngredient(t, db, "INS0000001", 5)
	seedDirectMenu(t, db, "MEN0000001", "CAT0000001", "INS0000001", 5)

	svc := NewStockService()
	require.NoError(t, svc.Consume(db, "MEN0000001", 5))

	assert.Equal(t, 0.0, ingredientStock(t, db, "INS0000001"))
}

func TestConsumeBelowFloorFailsAndLeavesStock(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "CAT0000001")
	seedIngredient(t, db, "INS0000001", 2)
	seedDirectMenu(t, db, "MEN0000001", "CAT0000001", "INS0000001", 5)

	svc := NewStockService()
	err := svc.Consume(db, "MEN0000001", 5)

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "INS0000001", insufficient.IngredientCode)
	assert.Equal(t, 2.0, ingredientStock(t, db, "INS0000001"))
}

func TestRestoreIsInverseOfConsume(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "CAT0000001")
	seedIngredient(t, db, "INS0000001", 10)
	seedIngredient(t, db, "INS0000002", 10)
	seedRecipeMenu(t, db, "MEN0000001", "CAT0000001", "REC0000001", 12, map[string]float64{
		"INS0000001": 1.5,
		"INS0000002": 0.25,
	})

	svc := NewStockService()
	require.NoError(t, svc.Consume(db, "MEN0000001", 4))
	require.NoError(t, svc.Restore(db, "MEN0000001", 4))

	assert.Equal(t, 10.0, ingredientStock(t, db, "INS0000001"))
	assert.Equal(t, 10.0, ingredientStock(t, db, "INS0000002"))
}

func TestConsumeDirectWithoutIngredientMapping(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "CAT0000001")
	require.NoError(t, db.Create(&models.MenuItem{
		Code:         "MEN0000001",
		Name:         "huérfano",
		Price:        5,
		Prepared:     models.PreparedDirect,
		Active:       true,
		CategoryCode: "CAT0000001",
	}).Error)

	svc := NewStockService()
	err := svc.Consume(db, "MEN0000001", 1)

	var noIngredient *NoIngredientError
	require.ErrorAs(t, err, &noIngredient)
	assert.Equal(t, "MEN0000001", noIngredient.MenuItemCode)
}

func TestConsumeUnknownMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService()
	assert.ErrorIs(t, svc.Consume(db, "MEN9999999", 1), ErrMenuItemNotFound)
}

func TestConsumeRecipeKindWithoutRecipe(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "CAT0000001")
	require.NoError(t, db.Create(&models.MenuItem{
		Code:         "MEN0000001",
		Name:         "sin receta",
		Price:        5,
		Prepared:     models.PreparedRecipe,
		Active:       true,
		CategoryCode: "CAT0000001",
	}).Error)

	svc := NewStockService()
	assert.ErrorIs(t, svc.Consume(db, "MEN0000001", 1), ErrRecipeNotFound)
}
