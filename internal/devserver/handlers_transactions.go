package devserver

import (
	"math"
	"net/http"
	"time"

	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/collection"
)

// devTaxRate mirrors the backend's fixed 11% sales tax, rounded half away
// from zero to the nearest currency unit.
const devTaxRate = 0.11

func (s *Server) handleTransactionList(w http.ResponseWriter, r *http.Request) {
	page, limit, search := listParams(r)

	s.db.mu.Lock()
	filtered := collection.Filter(s.db.transactions, func(t models.Transaction) bool {
		return matches(search, t.Code)
	})
	s.db.mu.Unlock()

	meta := pageMeta(page, limit, len(filtered))
	paginated(w, collection.Paginate(filtered, meta.CurrentPage, meta.PerPage), meta)
}

func (s *Server) handleTransactionGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	s.db.mu.Lock()
	t, found := s.db.transactionByID(id)
	s.db.mu.Unlock()

	if !found {
		notFound(w)
		return
	}
	success(w, t)
}

// handleTransactionCreate is the checkout endpoint. The server is the
// pricing authority: it snapshots names and prices, computes subtotal, tax,
// and total, and decrements stock. Created transactions are immutable.
func (s *Server) handleTransactionCreate(w http.ResponseWriter, r *http.Request) {
	var in api.TransactionInput
	if err := decode(r, &in); err != nil {
		fail(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	if in.CustomerID <= 0 {
		validationFailed(w, map[string]string{"customer_id": "The customer_id field is required."})
		return
	}
	if len(in.Items) == 0 {
		validationFailed(w, map[string]string{"items": "At least one item is required."})
		return
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	customer, ok := s.db.customerByID(in.CustomerID)
	if !ok {
		validationFailed(w, map[string]string{"customer_id": "The selected customer does not exist."})
		return
	}

	// Validate every line before mutating anything.
	for _, line := range in.Items {
		p, ok := s.db.productByID(line.ProductID)
		if !ok {
			validationFailed(w, map[string]string{"items": "One of the selected products does not exist."})
			return
		}
		if line.Quantity <= 0 {
			validationFailed(w, map[string]string{"items": "Quantities must be positive."})
			return
		}
		if p.Stock < line.Quantity {
			validationFailed(w, map[string]string{"items": "Insufficient stock for " + p.Name + "."})
			return
		}
	}

	now := time.Now().UTC()
	tx := models.Transaction{
		ID:         s.db.id("transactions"),
		Code:       s.db.nextCode(now),
		CustomerID: &in.CustomerID,
		CreatedAt:  now,
		Customer:   &customer,
	}

	for _, line := range in.Items {
		p, _ := s.db.productByID(line.ProductID)

		lineSubtotal := p.Price * line.Quantity
		tx.Subtotal += lineSubtotal
		tx.Items = append(tx.Items, models.TransactionItem{
			ID:            s.db.id("transaction_items"),
			TransactionID: tx.ID,
			ProductID:     p.ID,
			ProductName:   p.Name,
			Quantity:      line.Quantity,
			Price:         p.Price,
			Subtotal:      lineSubtotal,
		})

		for i := range s.db.products {
			if s.db.products[i].ID == p.ID {
				s.db.products[i].Stock -= line.Quantity
			}
		}
	}

	tx.Tax = int64(math.Round(float64(tx.Subtotal) * devTaxRate))
	tx.Total = tx.Subtotal + tx.Tax

	s.db.transactions = append(s.db.transactions, tx)
	created(w, tx)
}
