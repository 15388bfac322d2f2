package devserver

import (
	"net/http"
	"strconv"

	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/collection"
	"github.com/reynaldiarya/flashpos/pkg/validate"
)

// withCategory embeds the category like the real backend's eager load.
func (d *data) withCategory(p models.Product) models.Product {
	if cat, ok := d.categoryByID(p.ProductCategoryID); ok {
		p.Category = &cat
	}
	return p
}

func productFilter(search string, categoryID int64) func(models.Product) bool {
	return func(p models.Product) bool {
		if categoryID > 0 && p.ProductCategoryID != categoryID {
			return false
		}
		return matches(search, p.Name)
	}
}

func (s *Server) handleProductList(w http.ResponseWriter, r *http.Request) {
	page, limit, search := listParams(r)
	categoryID, _ := strconv.ParseInt(r.URL.Query().Get("product_category_id"), 10, 64)

	s.db.mu.Lock()
	filtered := collection.Filter(s.db.products, productFilter(search, categoryID))
	meta := pageMeta(page, limit, len(filtered))
	items := collection.Map(collection.Paginate(filtered, meta.CurrentPage, meta.PerPage), s.db.withCategory)
	s.db.mu.Unlock()

	paginated(w, items, meta)
}

func (s *Server) handleProductOptions(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	categoryID, _ := strconv.ParseInt(r.URL.Query().Get("product_category_id"), 10, 64)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 20
	}

	s.db.mu.Lock()
	filtered := collection.Filter(s.db.products, productFilter(search, categoryID))
	s.db.mu.Unlock()

	success(w, collection.Paginate(filtered, 1, limit))
}

func (s *Server) handleProductGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	s.db.mu.Lock()
	p, found := s.db.productByID(id)
	if found {
		p = s.db.withCategory(p)
	}
	s.db.mu.Unlock()

	if !found {
		notFound(w)
		return
	}
	success(w, p)
}

func (s *Server) handleProductCreate(w http.ResponseWriter, r *http.Request) {
	var in api.ProductInput
	if err := decode(r, &in); err != nil {
		fail(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		validationFailed(w, errs)
		return
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.categoryByID(in.ProductCategoryID); !ok {
		validationFailed(w, map[string]string{"product_category_id": "The selected category does not exist."})
		return
	}

	p := models.Product{
		ID:                s.db.id("products"),
		ProductCategoryID: in.ProductCategoryID,
		Name:              in.Name,
		Price:             in.Price,
		Stock:             in.Stock,
	}
	s.db.products = append(s.db.products, p)
	created(w, s.db.withCategory(p))
}

func (s *Server) handleProductUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	var in api.ProductInput
	if err := decode(r, &in); err != nil {
		fail(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		validationFailed(w, errs)
		return
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.categoryByID(in.ProductCategoryID); !ok {
		validationFailed(w, map[string]string{"product_category_id": "The selected category does not exist."})
		return
	}

	for i := range s.db.products {
		if s.db.products[i].ID == id {
			s.db.products[i].ProductCategoryID = in.ProductCategoryID
			s.db.products[i].Name = in.Name
			s.db.products[i].Price = in.Price
			s.db.products[i].Stock = in.Stock
			success(w, s.db.withCategory(s.db.products[i]))
			return
		}
	}
	notFound(w)
}

func (s *Server) handleProductDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, found := s.db.productByID(id); !found {
		notFound(w)
		return
	}
	s.db.products = collection.Reject(s.db.products, func(p models.Product) bool {
		return p.ID == id
	})
	success(w, map[string]string{"message": "Deleted"})
}

func (s *Server) handleProductImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	path, err := saveUpload(r, "products", id)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.products {
		if s.db.products[i].ID == id {
			s.db.products[i].Image = path
			success(w, s.db.withCategory(s.db.products[i]))
			return
		}
	}
	notFound(w)
}
