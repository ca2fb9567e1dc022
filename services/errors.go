package services

import (
	"errors"
	"fmt"
)

// Reference errors: a code did not resolve to a row.
var (
	ErrOrderNotFound      = errors.New("pedido no encontrado")
	ErrOrderLineNotFound  = errors.New("detalle de pedido no encontrado")
	ErrTableNotFound      = errors.New("mesa no encontrada")
	ErrMenuItemNotFound   = errors.New("menú no encontrado")
	ErrRecipeNotFound     = errors.New("receta no encontrada")
	ErrIngredientNotFound = errors.New("insumo no encontrado")
)

// Validation errors surfaced as 400s at the boundary.
var (
	ErrEmptyOrder            = errors.New("se requiere MesaCodigo y lista de Detalles")
	ErrInvalidQuantity       = errors.New("la cantidad debe ser mayor que cero")
	ErrUnknownStatus         = errors.New("estado desconocido")
	ErrPaymentMethodRequired = errors.New("debe indicar el campo MetodoPagoCodigo")
)

// InsufficientStockError aborts the whole order-creation transaction. It names
// the insumo that could not cover the decrement.
type InsufficientStockError struct {
	IngredientCode string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para insumo %s", e.IngredientCode)
}

// NoIngredientError means a direct-kind menu item has no insumo mapping.
type NoIngredientError struct {
	MenuItemCode string
}

func (e *NoIngredientError) Error() string {
	return fmt.Sprintf("no hay insumo asociado al menú %s", e.MenuItemCode)
}

// InvalidTransitionError rejects a status change the order state machine does
// not allow.
type InvalidTransitionError struct {
	From, To string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transición de estado no permitida: %s -> %s", e.From, e.To)
}
