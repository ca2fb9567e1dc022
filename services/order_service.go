package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/restobar-app/backend/models"
	"github.com/restobar-app/backend/utils"
)

// Operational timezone for "today" queries. Orders are filtered by the
// calendar day in Lima regardless of server locale.
var limaTZ = loadLimaTZ()

func loadLimaTZ() *time.Location {
	loc, err := time.LoadLocation("America/Lima")
	if err != nil {
		return time.FixedZone("PET", -5*60*60)
	}
	return loc
}

// OrderLineRequest is one requested (menu item, quantity) pair.
type OrderLineRequest struct {
	MenuCodigo string `json:"MenuCodigo" binding:"required"`
	Cantidad   int    `json:"Cantidad" binding:"required,gt=0"`
	Notas      string `json:"Notas"`
}

// CreateOrderRequest is the structured replacement for the old JSON-blob
// procedure argument: validated before the atomic unit of work begins.
type CreateOrderRequest struct {
	MesaCodigo string             `json:"MesaCodigo" binding:"required"`
	Detalles   []OrderLineRequest `json:"Detalles" binding:"required,min=1,dive"`
}

// OrderService coordinates creation, state transitions and deletion of
// pedidos, calling StockService inside a single unit of work and notifying
// observers of committed changes.
type OrderService struct {
	DB       *gorm.DB
	Stock    *StockService
	Notifier Notifier
}

func NewOrderService(db *gorm.DB, notifier Notifier) *OrderService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &OrderService{
		DB:       db,
		Stock:    NewStockService(),
		Notifier: notifier,
	}
}

// CreateOrder persists a new order header plus its lines and consumes stock
// for every line, all inside one transaction. Either every line's stock
// effect lands or none does: any failure (unknown mesa, unknown menu,
// insufficient stock) rolls the whole thing back and leaves no trace.
// Returns the new PED code.
func (s *OrderService) CreateOrder(req CreateOrderRequest, creator *string) (string, error) {
	if req.MesaCodigo == "" || len(req.Detalles) == 0 {
		return "", ErrEmptyOrder
	}
	for _, d := range req.Detalles {
		if d.Cantidad <= 0 {
			return "", ErrInvalidQuantity
		}
	}

	var orderCode string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, "code = ?", req.MesaCodigo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTableNotFound
			}
			return err
		}

		code, err := utils.NextCode(tx, "pedidos", "code", models.CodePrefixOrder)
		if err != nil {
			return err
		}
		order := models.Order{
			Code:      code,
			TableCode: table.Code,
			Status:    models.OrderPending,
			CreatedBy: creator,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var total float64
		for _, d := range req.Detalles {
			var item models.MenuItem
			if err := tx.First(&item, "code = ?", d.MenuCodigo).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrMenuItemNotFound
				}
				return err
			}

			lineCode, err := utils.NextCode(tx, "detalle_pedidos", "code", models.CodePrefixOrderLine)
			if err != nil {
				return err
			}
			line := models.OrderLine{
				Code:         lineCode,
				OrderCode:    order.Code,
				MenuItemCode: item.Code,
				Quantity:     d.Cantidad,
				UnitPrice:    item.Price, // snapshot, insulated from later price changes
				Subtotal:     float64(d.Cantidad) * item.Price,
				Status:       models.LinePending,
				Notes:        d.Notas,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			total += line.Subtotal

			if err := s.Stock.Consume(tx, item.Code, d.Cantidad); err != nil {
				return err
			}
		}

		if err := tx.Model(&order).UpdateColumn("total", total).Error; err != nil {
			return err
		}

		// A table with a fresh order is in use.
		if err := tx.Model(&table).Update("status", models.TableOccupied).Error; err != nil {
			return err
		}

		orderCode = order.Code
		return nil
	})
	if err != nil {
		return "", err
	}

	s.Notifier.OrdersChanged()
	s.Notifier.TablesChanged()
	return orderCode, nil
}

// DeleteOrder restores stock for every line and then removes the order and
// its lines. The restore phase is deliberately best-effort: a vanished menu
// or insumo mapping is logged as an anomaly and does not block deletion of
// the order records. Restoration follows the catalog's current mappings, not
// a re-snapshot of creation time.
func (s *OrderService) DeleteOrder(orderCode string) error {
	var order models.Order
	if err := s.DB.Preload("Lines").First(&order, "code = ?", orderCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	for _, line := range order.Lines {
		if err := s.Stock.Restore(s.DB, line.MenuItemCode, line.Quantity); err != nil {
			utils.ErrorLogger.Printf("restore anomaly: pedido %s detalle %s (menu %s x%d): %v",
				order.Code, line.Code, line.MenuItemCode, line.Quantity, err)
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_code = ?", order.Code).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		return err
	}

	s.Notifier.OrdersChanged()
	return nil
}

// UpdateOrderStatus validates the transition against the order state machine
// and persists it. On the move into the kitchen or to listo, the first
// cocinero to touch the order is recorded; a later user never overwrites an
// already-recorded one.
func (s *OrderService) UpdateOrderStatus(orderCode, newStatus string, userCode *string) error {
	if !models.IsValidOrderStatus(newStatus) {
		return ErrUnknownStatus
	}

	var order models.Order
	if err := s.DB.First(&order, "code = ?", orderCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if !models.CanTransition(order.Status, newStatus) {
		return &InvalidTransitionError{From: order.Status, To: newStatus}
	}

	if err := s.DB.Model(&order).Update("status", newStatus).Error; err != nil {
		return err
	}

	if userCode != nil && (newStatus == models.OrderInKitchen || newStatus == models.OrderReady) {
		err := s.DB.Model(&models.Order{}).
			Where("code = ?", orderCode).
			UpdateColumn("cook_code", gorm.Expr("COALESCE(cook_code, ?)", *userCode)).Error
		if err != nil {
			return err
		}
	}

	s.Notifier.OrdersChanged()
	return nil
}

// UpdateLineStatus advances one line's kitchen sub-state, independently of
// its siblings and of the order's own status.
func (s *OrderService) UpdateLineStatus(lineCode, newStatus string) error {
	switch newStatus {
	case models.LinePending, models.LineCooking, models.LineReady, models.LineDelivered:
	default:
		return ErrUnknownStatus
	}

	res := s.DB.Model(&models.OrderLine{}).
		Where("code = ?", lineCode).
		Update("status", newStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderLineNotFound
	}

	s.Notifier.OrdersChanged()
	return nil
}

// FinalizeOrder marks the order servido, records the payment method and the
// first cashier to charge it (first-writer-wins, same pattern as the cook).
func (s *OrderService) FinalizeOrder(orderCode, paymentMethodCode string, cashier *string) error {
	if paymentMethodCode == "" {
		return ErrPaymentMethodRequired
	}

	res := s.DB.Model(&models.Order{}).
		Where("code = ?", orderCode).
		Updates(map[string]interface{}{
			"status":              models.OrderServed,
			"payment_method_code": paymentMethodCode,
			"cashier_code":        gorm.Expr("COALESCE(cashier_code, ?)", cashier),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}

	s.Notifier.OrdersChanged()
	return nil
}

// GetOrdersForTable returns every order of a mesa with its lines and product
// detail. When the result set is empty the mesa is pushed back to disponible
// and observers are told: an empty order list means the table has nothing
// active. This read-causes-write coupling is how table state self-heals after
// orders are cleared through any path.
func (s *OrderService) GetOrdersForTable(tableCode string) ([]models.Order, error) {
	var table models.Table
	if err := s.DB.First(&table, "code = ?", tableCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	var orders []models.Order
	err := s.DB.Preload("Lines.MenuItem").
		Where("table_code = ?", tableCode).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 && table.Status != models.TableAvailable {
		if err := s.DB.Model(&table).Update("status", models.TableAvailable).Error; err != nil {
			return nil, err
		}
		s.Notifier.TablesChanged()
	}
	return orders, nil
}

// ListActiveOrders returns every order not yet servido or cancelado,
// independent of creation date.
func (s *OrderService) ListActiveOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("Lines.MenuItem").Preload("Table").
		Where("status NOT IN ?", []string{models.OrderServed, models.OrderCancelled}).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// ListOrdersForToday returns the orders created today (Lima calendar day),
// excluding cancelled ones; served orders stay visible. The day boundaries
// are pushed into the query so the scan stays bounded as history grows.
func (s *OrderService) ListOrdersForToday() ([]models.Order, error) {
	now := time.Now().In(limaTZ)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, limaTZ)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var orders []models.Order
	err := s.DB.Preload("Lines.MenuItem").Preload("Table").
		Where("status <> ?", models.OrderCancelled).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// ListAllOrders pages over every order, newest first.
func (s *OrderService) ListAllOrders(page, limit int) ([]models.Order, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var orders []models.Order
	err := s.DB.Preload("Lines.MenuItem").Preload("Table").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
