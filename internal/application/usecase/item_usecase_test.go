package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

type itemFixture struct {
	uc    *ItemUseCase
	cats  *fakeCategoryRepo
	subs  *fakeSubCategoryRepo
	items *fakeItemRepo
	store *fakeImageStore
}

func newItemFixture() *itemFixture {
	cats := newFakeCategoryRepo()
	subs := newFakeSubCategoryRepo()
	items := newFakeItemRepo()
	store := &fakeImageStore{}
	return &itemFixture{
		uc:    NewItemUseCase(items, cats, subs, NewImageLifecycle(store, logger.Nop())),
		cats:  cats,
		subs:  subs,
		items: items,
		store: store,
	}
}

func TestItemCreate_DerivesTotalAmount(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)

	out, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:        "Limonada",
		Description: "Limonada natural",
		CategoryID:  parent.ID,
		BaseAmount:  ptr(decimal.RequireFromString("100")),
		Discount:    ptr(decimal.RequireFromString("10")),
	}, testUpload())

	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("90")))
	assert.Equal(t, "Bebidas", out.CategoryName)
}

func TestItemCreate_OmittedDiscountDefaultsToZero(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)

	out, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:        "Limonada",
		Description: "Limonada natural",
		CategoryID:  parent.ID,
		BaseAmount:  ptr(decimal.RequireFromString("100")),
	}, testUpload())

	require.NoError(t, err)
	assert.True(t, out.Discount.IsZero())
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("100")))
	// Impuestos omitidos: defaults del ítem, no herencia del padre.
	assert.False(t, out.TaxApplicability)
	assert.Equal(t, entity.TaxTypeNone, out.TaxType)
}

func TestItemCreate_SubCategoryOfAnotherCategory(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)
	other := seedCategory(f.cats, "Postres", false, "0", entity.TaxTypeNone)
	foreignSub := seedSubCategory(f.subs, "Helados", other)

	_, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:          "Limonada",
		Description:   "Limonada natural",
		CategoryID:    parent.ID,
		SubCategoryID: &foreignSub.ID,
		BaseAmount:    ptr(decimal.RequireFromString("100")),
	}, testUpload())

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, f.items.byID, "con conflicto no se persiste nada")
	assert.Zero(t, f.store.uploads, "ni se sube la imagen")
}

func TestItemCreate_MissingSubCategory(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)

	_, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:          "Limonada",
		Description:   "desc",
		CategoryID:    parent.ID,
		SubCategoryID: ptr("7b0d3b39-6a04-4b33-9cf9-000000000000"),
		BaseAmount:    ptr(decimal.RequireFromString("100")),
	}, testUpload())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemCreate_NegativeBaseAmount(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)

	_, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:        "Limonada",
		Description: "desc",
		CategoryID:  parent.ID,
		BaseAmount:  ptr(decimal.RequireFromString("-1")),
	}, testUpload())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemUpdate_RecomputesTotalWithEffectiveValues(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)
	created, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:        "Limonada",
		Description: "Limonada natural",
		CategoryID:  parent.ID,
		BaseAmount:  ptr(decimal.RequireFromString("100")),
		Discount:    ptr(decimal.RequireFromString("10")),
	}, testUpload())
	require.NoError(t, err)

	// Solo cambia la base: el descuento vigente (10) sigue contando.
	out, err := f.uc.Update(context.Background(), created.ID, dto.UpdateItemRequest{
		BaseAmount: ptr(decimal.RequireFromString("200")),
	}, nil)
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("190")))

	// Solo cambia el descuento: la base vigente (200) sigue contando.
	out, err = f.uc.Update(context.Background(), created.ID, dto.UpdateItemRequest{
		Discount: ptr(decimal.RequireFromString("50")),
	}, nil)
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("150")))
}

func TestItemUpdate_EmptySubCategoryIDClearsIt(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)
	sub := seedSubCategory(f.subs, "Gaseosas", parent)
	created, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:          "Cola",
		Description:   "Gaseosa cola",
		CategoryID:    parent.ID,
		SubCategoryID: &sub.ID,
		BaseAmount:    ptr(decimal.RequireFromString("50")),
	}, testUpload())
	require.NoError(t, err)
	require.NotNil(t, created.SubCategoryID)

	out, err := f.uc.Update(context.Background(), created.ID, dto.UpdateItemRequest{
		SubCategoryID: ptr(""),
	}, nil)

	require.NoError(t, err)
	assert.Nil(t, out.SubCategoryID)
	assert.Empty(t, out.SubCategoryName)
}

func TestItemUpdate_CategoryChangeWithRetainedSubCategory(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)
	other := seedCategory(f.cats, "Postres", false, "0", entity.TaxTypeNone)
	sub := seedSubCategory(f.subs, "Gaseosas", parent)
	created, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:          "Cola",
		Description:   "Gaseosa cola",
		CategoryID:    parent.ID,
		SubCategoryID: &sub.ID,
		BaseAmount:    ptr(decimal.RequireFromString("50")),
	}, testUpload())
	require.NoError(t, err)

	// Cambiar solo la categoría dejaría la subcategoría colgando de otra: conflicto.
	_, err = f.uc.Update(context.Background(), created.ID, dto.UpdateItemRequest{
		CategoryID: &other.ID,
	}, nil)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestItemUpdate_ApplicabilityFalseForcesReset(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)
	created, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:             "Limonada",
		Description:      "Limonada natural",
		CategoryID:       parent.ID,
		BaseAmount:       ptr(decimal.RequireFromString("100")),
		TaxApplicability: ptr(true),
		Tax:              ptr(decimal.RequireFromString("12")),
		TaxType:          ptr(entity.TaxTypePercentage),
	}, testUpload())
	require.NoError(t, err)

	out, err := f.uc.Update(context.Background(), created.ID, dto.UpdateItemRequest{
		TaxApplicability: ptr(false),
		Tax:              ptr(decimal.RequireFromString("8")),
	}, nil)

	require.NoError(t, err)
	assert.False(t, out.TaxApplicability)
	assert.True(t, out.Tax.IsZero())
	assert.Equal(t, entity.TaxTypeNone, out.TaxType)
}

func TestItemUpdate_ValidationFailureLeavesImagesUntouched(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)
	created, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:        "Limonada",
		Description: "Limonada natural",
		CategoryID:  parent.ID,
		BaseAmount:  ptr(decimal.RequireFromString("100")),
	}, testUpload())
	require.NoError(t, err)
	uploadsBefore := f.store.uploads

	// Petición inválida que además trae imagen: el blob vigente no se toca.
	_, err = f.uc.Update(context.Background(), created.ID, dto.UpdateItemRequest{
		Name: ptr("   "),
	}, testUpload())

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, uploadsBefore, f.store.uploads, "no debe subirse la imagen nueva")
	assert.Empty(t, f.store.deleted, "ni borrarse la vigente")

	stored, err := f.items.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Image.StoreID, stored.Image.StoreID)
	assert.NotContains(t, f.store.deleted, stored.Image.StoreID)
}

func TestItemSearch_EmptyQueryIsValidationError(t *testing.T) {
	f := newItemFixture()

	_, err := f.uc.Search(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemSearch_MatchesNameAndDescription(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)
	_, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:        "Limonada",
		Description: "Bebida cítrica natural",
		CategoryID:  parent.ID,
		BaseAmount:  ptr(decimal.RequireFromString("100")),
	}, testUpload())
	require.NoError(t, err)

	out, err := f.uc.Search(context.Background(), "cítrica")

	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, "Limonada", out.Items[0].Name)
}

func TestItemGetByIDOrName(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)
	created, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:        "Limonada",
		Description: "Limonada natural",
		CategoryID:  parent.ID,
		BaseAmount:  ptr(decimal.RequireFromString("100")),
	}, testUpload())
	require.NoError(t, err)

	byID, err := f.uc.GetByIDOrName(context.Background(), created.ID)
	require.NoError(t, err)
	byName, err := f.uc.GetByIDOrName(context.Background(), "Limonada")
	require.NoError(t, err)

	assert.Equal(t, byID.ID, byName.ID)
}

func TestItemDelete_ReleasesImage(t *testing.T) {
	f := newItemFixture()
	parent := seedCategory(f.cats, "Bebidas", true, "12", entity.TaxTypePercentage)
	created, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:        "Limonada",
		Description: "Limonada natural",
		CategoryID:  parent.ID,
		BaseAmount:  ptr(decimal.RequireFromString("100")),
	}, testUpload())
	require.NoError(t, err)

	err = f.uc.Delete(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Empty(t, f.items.byID)
	assert.Contains(t, f.store.deleted, created.Image.StoreID)
}
