package service

import (
	"errors"
	"sync"

	"github.com/mahidrahman375/coffee-shop/models"
	"github.com/mahidrahman375/coffee-shop/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CustomerInfo optionally attaches a walk-in customer to a new order.
type CustomerInfo struct {
	Name  string
	Phone string
}

// session is one table's in-progress ordering state: the working cart and,
// when the table already had a pending order, a reference to it.
type session struct {
	cart        *Cart
	activeOrder *models.Order
}

// Ordering is the customer-facing workflow: pick a table, build a cart,
// place the order, choose how to pay. Workflow operations run one at a
// time under a single lock, matching the event-driven request chain.
type Ordering struct {
	mu       sync.Mutex
	sessions map[uint]*session

	tables      *store.TableRepo
	menu        *store.MenuRepo
	ingredients *store.IngredientRepo
	orders      *store.OrderRepo
	customers   *store.CustomerRepo
	log         *zap.Logger
}

func NewOrdering(repos *store.Repos, log *zap.Logger) *Ordering {
	return &Ordering{
		sessions:    make(map[uint]*session),
		tables:      repos.Tables,
		menu:        repos.Menu,
		ingredients: repos.Ingredients,
		orders:      repos.Orders,
		customers:   repos.Customers,
		log:         log.Named("ordering"),
	}
}

// SelectTable starts a session for a free table. If the table still has a
// pending order, the cart is rebuilt from its lines so the guest continues
// where they left off. An occupied table is not selectable.
func (s *Ordering) SelectTable(tableID uint) ([]CartLine, error) {
	table, err := s.tables.Get(tableID)
	if err != nil {
		return nil, err
	}
	if table.Status != models.TableFree {
		return nil, ErrTableOccupied
	}

	sess := &session{cart: NewCart()}
	order, err := s.orders.PendingByTable(tableID)
	switch {
	case err == nil:
		sess.activeOrder = &order
		for _, detail := range order.Details {
			sess.cart.addLine(detail.MenuItem, detail.Quantity)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no pending order, start empty
	default:
		return nil, err
	}

	s.mu.Lock()
	s.sessions[tableID] = sess
	s.mu.Unlock()

	s.log.Info("table selected", zap.Uint("table_id", tableID), zap.Int("cart_lines", len(sess.cart.Lines())))
	return sess.cart.Lines(), nil
}

// AddToCart puts one unit of an available menu item in the table's cart.
func (s *Ordering) AddToCart(tableID, menuItemID uint) ([]CartLine, error) {
	item, err := s.menu.Get(menuItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[tableID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	sess.cart.Add(item)
	return sess.cart.Lines(), nil
}

// UpdateQuantity applies a +/- delta to a cart line.
func (s *Ordering) UpdateQuantity(tableID, menuItemID uint, change int) ([]CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[tableID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	sess.cart.UpdateQuantity(menuItemID, change)
	return sess.cart.Lines(), nil
}

// RemoveFromCart drops a cart line.
func (s *Ordering) RemoveFromCart(tableID, menuItemID uint) ([]CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[tableID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	sess.cart.Remove(menuItemID)
	return sess.cart.Lines(), nil
}

// Cart returns the table's current cart and its running total.
func (s *Ordering) Cart(tableID uint) ([]CartLine, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[tableID]
	if !ok {
		return nil, 0, ErrNoActiveSession
	}
	return sess.cart.Lines(), sess.cart.Total(), nil
}

// PlaceOrder writes the cart out as an order. The steps run in sequence
// with no transaction or compensation: a failure aborts the remaining
// steps and leaves earlier writes in place.
//
// Ingredient deduction always runs for the full cart quantity, even for
// lines merged into an existing row. Cancellation's restoration relies on
// the stored line quantity reflecting those cumulative deductions.
func (s *Ordering) PlaceOrder(tableID uint, customer *CustomerInfo) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[tableID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	if sess.cart.Empty() {
		return nil, ErrEmptyCart
	}

	var orderID uint
	if sess.activeOrder == nil {
		order := models.Order{
			TableID:       tableID,
			TotalAmount:   sess.cart.Total(),
			Status:        models.StatusPending,
			PaymentStatus: models.PaymentPending,
		}
		if customer != nil && customer.Name != "" {
			cust, err := s.customers.FindOrCreate(customer.Name, customer.Phone)
			if err != nil {
				return nil, err
			}
			order.CustomerID = &cust.ID
		}
		if err := s.orders.Create(&order); err != nil {
			return nil, err
		}
		orderID = order.ID

		if err := s.tables.SetStatus(tableID, models.TableOccupied); err != nil {
			return nil, err
		}
	} else {
		orderID = sess.activeOrder.ID
		if err := s.orders.UpdateTotal(orderID, sess.cart.Total()); err != nil {
			return nil, err
		}
	}

	for _, line := range sess.cart.Lines() {
		existing, err := s.orders.DetailByItem(orderID, line.MenuItem.ID)
		switch {
		case err == nil:
			// merge: re-adding an item grows its line, never duplicates it
			newQty := existing.Quantity + line.Quantity
			if err := s.orders.UpdateDetail(existing.ID, newQty, line.MenuItem.Price*float64(newQty)); err != nil {
				return nil, err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			detail := models.OrderDetail{
				OrderID:    orderID,
				MenuItemID: line.MenuItem.ID,
				Quantity:   line.Quantity,
				Price:      line.MenuItem.Price,
				Subtotal:   line.MenuItem.Price * float64(line.Quantity),
			}
			if err := s.orders.CreateDetail(&detail); err != nil {
				return nil, err
			}
		default:
			return nil, err
		}

		recipe, err := s.menu.Recipe(line.MenuItem.ID)
		if err != nil {
			return nil, err
		}
		for _, ing := range recipe {
			newStock := ing.Ingredient.StockQuantity - ing.QuantityNeeded*float64(line.Quantity)
			if err := s.ingredients.SetStock(ing.IngredientID, newStock); err != nil {
				return nil, err
			}
			s.log.Debug("ingredient deducted",
				zap.Uint("ingredient_id", ing.IngredientID),
				zap.Float64("amount", ing.QuantityNeeded*float64(line.Quantity)),
				zap.Float64("remaining", newStock))
		}
	}

	full, err := s.orders.GetFull(orderID)
	if err != nil {
		return nil, err
	}

	delete(s.sessions, tableID)
	s.log.Info("order placed",
		zap.Uint("order_id", full.ID),
		zap.Uint("table_id", tableID),
		zap.Float64("total_amount", full.TotalAmount))
	return &full, nil
}

// SelectPaymentMethod records how the guest intends to pay. Payment stays
// pending until staff confirm it.
func (s *Ordering) SelectPaymentMethod(orderID uint, method models.PaymentMethod) error {
	if !method.Valid() {
		return ErrInvalidPayment
	}
	if _, err := s.orders.Get(orderID); err != nil {
		return err
	}
	if err := s.orders.SetPaymentMethod(orderID, method); err != nil {
		return err
	}
	s.log.Info("payment method selected", zap.Uint("order_id", orderID), zap.String("method", string(method)))
	return nil
}
