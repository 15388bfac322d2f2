package devserver

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/reynaldiarya/flashpos/config"
	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/collection"
	"github.com/reynaldiarya/flashpos/pkg/validate"
)

func (s *Server) handleCategoryList(w http.ResponseWriter, r *http.Request) {
	page, limit, search := listParams(r)

	s.db.mu.Lock()
	filtered := collection.Filter(s.db.categories, func(c models.ProductCategory) bool {
		return matches(search, c.Name, c.Description)
	})
	s.db.mu.Unlock()

	meta := pageMeta(page, limit, len(filtered))
	paginated(w, collection.Paginate(filtered, meta.CurrentPage, meta.PerPage), meta)
}

func (s *Server) handleCategoryGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	s.db.mu.Lock()
	c, found := s.db.categoryByID(id)
	s.db.mu.Unlock()

	if !found {
		notFound(w)
		return
	}
	success(w, c)
}

func (s *Server) handleCategoryCreate(w http.ResponseWriter, r *http.Request) {
	var in api.ProductCategoryInput
	if err := decode(r, &in); err != nil {
		fail(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		validationFailed(w, errs)
		return
	}

	s.db.mu.Lock()
	c := models.ProductCategory{ID: s.db.id("categories"), Name: in.Name, Description: in.Description}
	s.db.categories = append(s.db.categories, c)
	s.db.mu.Unlock()

	created(w, c)
}

func (s *Server) handleCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	var in api.ProductCategoryInput
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

	for i := range s.db.categories {
		if s.db.categories[i].ID == id {
			s.db.categories[i].Name = in.Name
			s.db.categories[i].Description = in.Description
			success(w, s.db.categories[i])
			return
		}
	}
	notFound(w)
}

func (s *Server) handleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, found := s.db.categoryByID(id); !found {
		notFound(w)
		return
	}
	s.db.categories = collection.Reject(s.db.categories, func(c models.ProductCategory) bool {
		return c.ID == id
	})
	success(w, map[string]string{"message": "Deleted"})
}

func (s *Server) handleCategoryImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	path, err := saveUpload(r, "categories", id)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.categories {
		if s.db.categories[i].ID == id {
			s.db.categories[i].Image = path
			success(w, s.db.categories[i])
			return
		}
	}
	notFound(w)
}

// saveUpload stores the "image" multipart part under the upload root and
// returns the backend-relative path recorded on the entity.
func saveUpload(r *http.Request, kind string, id int64) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("missing image file: %w", err)
	}
	defer file.Close()

	rel := filepath.Join(kind, fmt.Sprintf("%d%s", id, filepath.Ext(header.Filename)))
	full := filepath.Join(config.UploadRoot(), rel)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("prepare upload dir: %w", err)
	}
	out, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return "/" + filepath.ToSlash(rel), nil
}
