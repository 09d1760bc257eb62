package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// Fakes en memoria para los puertos de persistencia y el almacén de blobs.
// Guardan copias (no punteros compartidos) para emular la semántica de una
// base real.

func ptr[T any](v T) *T { return &v }

func testUpload() *ports.ImageUpload {
	return &ports.ImageUpload{
		Filename:    "foto.png",
		ContentType: "image/png",
		Size:        4,
		Content:     strings.NewReader("png!"),
	}
}

type fakeImageStore struct {
	uploads   int
	uploadErr error
	deleteErr error
	deleted   []string
}

func (f *fakeImageStore) Upload(_ context.Context, _ ports.ImageUpload) (entity.Image, error) {
	if f.uploadErr != nil {
		return entity.Image{}, f.uploadErr
	}
	f.uploads++
	key := fmt.Sprintf("catalog/blob-%d", f.uploads)
	return entity.Image{StoreID: key, URL: "https://cdn.test/" + key}, nil
}

func (f *fakeImageStore) Delete(_ context.Context, storeID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, storeID)
	return nil
}

type fakeCategoryRepo struct {
	byID map[string]entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: map[string]entity.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.byID[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	if c, ok := r.byID[id]; ok {
		out := c
		return &out, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.byID {
		if c.Name == name {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		cc := c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.byID[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeSubCategoryRepo struct {
	byID map[string]entity.SubCategory
}

func newFakeSubCategoryRepo() *fakeSubCategoryRepo {
	return &fakeSubCategoryRepo{byID: map[string]entity.SubCategory{}}
}

func (r *fakeSubCategoryRepo) Create(_ context.Context, s *entity.SubCategory) error {
	r.byID[s.ID] = *s
	return nil
}

func (r *fakeSubCategoryRepo) GetByID(_ context.Context, id string) (*entity.SubCategory, error) {
	if s, ok := r.byID[id]; ok {
		out := s
		return &out, nil
	}
	return nil, nil
}

func (r *fakeSubCategoryRepo) GetByName(_ context.Context, name string) (*entity.SubCategory, error) {
	for _, s := range r.byID {
		if s.Name == name {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeSubCategoryRepo) List(_ context.Context) ([]*entity.SubCategory, error) {
	out := make([]*entity.SubCategory, 0, len(r.byID))
	for _, s := range r.byID {
		ss := s
		out = append(out, &ss)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSubCategoryRepo) ListByCategory(_ context.Context, categoryID string) ([]*entity.SubCategory, error) {
	out := []*entity.SubCategory{}
	for _, s := range r.byID {
		if s.CategoryID == categoryID {
			ss := s
			out = append(out, &ss)
		}
	}
	return out, nil
}

func (r *fakeSubCategoryRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	n := 0
	for _, s := range r.byID {
		if s.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubCategoryRepo) Update(_ context.Context, s *entity.SubCategory) error {
	r.byID[s.ID] = *s
	return nil
}

func (r *fakeSubCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeItemRepo struct {
	byID map[string]entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{byID: map[string]entity.Item{}}
}

func (r *fakeItemRepo) Create(_ context.Context, i *entity.Item) error {
	r.byID[i.ID] = *i
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	if i, ok := r.byID[id]; ok {
		out := i
		return &out, nil
	}
	return nil, nil
}

func (r *fakeItemRepo) GetByName(_ context.Context, name string) (*entity.Item, error) {
	for _, i := range r.byID {
		if i.Name == name {
			out := i
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.byID))
	for _, i := range r.byID {
		ii := i
		out = append(out, &ii)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeItemRepo) ListByCategory(_ context.Context, categoryID string) ([]*entity.Item, error) {
	out := []*entity.Item{}
	for _, i := range r.byID {
		if i.CategoryID == categoryID {
			ii := i
			out = append(out, &ii)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ListBySubCategory(_ context.Context, subCategoryID string) ([]*entity.Item, error) {
	out := []*entity.Item{}
	for _, i := range r.byID {
		if i.SubCategoryID != nil && *i.SubCategoryID == subCategoryID {
			ii := i
			out = append(out, &ii)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	n := 0
	for _, i := range r.byID {
		if i.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *fakeItemRepo) Search(_ context.Context, query string) ([]*entity.Item, error) {
	q := strings.ToLower(query)
	out := []*entity.Item{}
	for _, i := range r.byID {
		if strings.Contains(strings.ToLower(i.Name), q) || strings.Contains(strings.ToLower(i.Description), q) {
			ii := i
			out = append(out, &ii)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(_ context.Context, i *entity.Item) error {
	r.byID[i.ID] = *i
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

// seedCategory inserta una categoría directamente en el fake.
func seedCategory(r *fakeCategoryRepo, name string, applicability bool, tax string, taxType entity.TaxType) *entity.Category {
	c := entity.Category{
		ID:               uuid.New().String(),
		Name:             name,
		Image:            entity.Image{StoreID: "catalog/seed-" + name, URL: "https://cdn.test/catalog/seed-" + name},
		Description:      "descripción de " + name,
		TaxApplicability: applicability,
		Tax:              decimal.RequireFromString(tax),
		TaxType:          taxType,
	}
	r.byID[c.ID] = c
	return &c
}

// seedSubCategory inserta una subcategoría directamente en el fake.
func seedSubCategory(r *fakeSubCategoryRepo, name string, parent *entity.Category) *entity.SubCategory {
	s := entity.SubCategory{
		ID:               uuid.New().String(),
		Name:             name,
		Image:            entity.Image{StoreID: "catalog/seed-" + name, URL: "https://cdn.test/catalog/seed-" + name},
		Description:      "descripción de " + name,
		CategoryID:       parent.ID,
		CategoryName:     parent.Name,
		TaxApplicability: parent.TaxApplicability,
		Tax:              parent.Tax,
		TaxType:          parent.TaxType,
	}
	r.byID[s.ID] = s
	return &s
}
