package database

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rpupo63/dsa-learning-backend/errs"
	"github.com/rpupo63/dsa-learning-backend/models"
)

func newTestDatabase(t *testing.T) Database {
	t.Helper()
	db, err := Open(map[string]string{
		"DB_TYPE":     DBTypeSQLite,
		"SQLITE_PATH": filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	d := New(db)
	require.NoError(t, d.Migrate(context.Background()))
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func newCategory(name, slug string) *models.Category {
	return &models.Category{Name: name, Slug: slug, Type: models.CategoryTypeDataStructure}
}

func countRows(t *testing.T, d Database, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, d.DB().Model(model).Count(&n).Error)
	return n
}

func TestDialector(t *testing.T) {
	d, err := Dialector(map[string]string{"DB_TYPE": "sqlite", "SQLITE_PATH": "x.db"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	d, err = Dialector(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = Dialector(map[string]string{"DB_TYPE": "oracle"})
	assert.ErrorContains(t, err, "unsupported DB_TYPE")

	assert.Equal(t, "a.db?_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("a.db"))
	assert.Equal(t, "a.db?cache=shared&_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("a.db?cache=shared"))
}

func TestNewGormLoggerLevel(t *testing.T) {
	assert.NotNil(t, NewGormLogger(zerolog.Nop(), 0))
}

func TestCategoryRoundTrip(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	in := models.CategoryInput{
		Name:        "Tries",
		Slug:        "tries",
		Description: strPtr("Prefix trees"),
		Type:        models.CategoryTypeDataStructure,
		Icon:        strPtr("text"),
		Order:       14,
	}
	rec := in.Record()
	require.NoError(t, d.CategoryRepo().Add(ctx, &rec))
	require.NotZero(t, rec.ID)

	got, err := d.CategoryRepo().FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, *got)

	bySlug, err := d.CategoryRepo().FindBySlug(ctx, "tries")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, bySlug.ID)
}

func TestUniqueSlugLeavesStateUnchanged(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	require.NoError(t, d.CategoryRepo().Add(ctx, newCategory("Arrays", "arrays")))

	err := d.CategoryRepo().Add(ctx, newCategory("Arrays Again", "arrays"))
	require.Error(t, err)
	assert.True(t, errs.IsUniqueConstraintViolationError(err))
	assert.Equal(t, http.StatusConflict, errs.StatusCode(err))
	assert.Equal(t, int64(1), countRows(t, d, &models.Category{}))

	err = d.CategoryRepo().Add(ctx, newCategory("Arrays", "arrays-2"))
	require.Error(t, err)
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "name", apiErr.Field)
	assert.Equal(t, int64(1), countRows(t, d, &models.Category{}))
}

func TestDuplicateKeyNamesField(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()
	repo := d.CategoryRepo()
	require.NoError(t, repo.Add(ctx, newCategory("Arrays", "arrays")))

	// A row that reached the unique index without passing checkWrite.
	clash := newCategory("Lists", "arrays")
	cause := d.DB().WithContext(ctx).Create(clash).Error
	require.ErrorIs(t, cause, gorm.ErrDuplicatedKey)

	err := repo.duplicateKeyError(ctx, clash, cause)
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "slug", apiErr.Field)
	assert.Contains(t, apiErr.Details, `"arrays"`)
	assert.ErrorIs(t, apiErr.Cause, gorm.ErrDuplicatedKey)

	err = repo.duplicateKeyError(ctx, newCategory("Trees", "trees"), cause)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Empty(t, apiErr.Field)
}

func TestUniqueSlugAcrossFamilies(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	cat := newCategory("Arrays", "arrays")
	require.NoError(t, d.CategoryRepo().Add(ctx, cat))

	require.NoError(t, d.ExampleRepo().Add(ctx, &models.Example{Title: "A", Slug: "dup", CategoryID: cat.ID}))
	err := d.ExampleRepo().Add(ctx, &models.Example{Title: "B", Slug: "dup", CategoryID: cat.ID})
	assert.True(t, errs.IsUniqueConstraintViolationError(err))
	assert.Equal(t, int64(1), countRows(t, d, &models.Example{}))

	require.NoError(t, d.AlgorithmRepo().Add(ctx, &models.Algorithm{Name: "A", Slug: "dup"}))
	err = d.AlgorithmRepo().Add(ctx, &models.Algorithm{Name: "B", Slug: "dup"})
	assert.True(t, errs.IsUniqueConstraintViolationError(err))
	assert.Equal(t, int64(1), countRows(t, d, &models.Algorithm{}))
}

func TestPagination(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	slugs := []string{"a", "b", "c", "d", "e"}
	for _, s := range slugs {
		require.NoError(t, d.CategoryRepo().Add(ctx, newCategory("Category "+s, s)))
	}

	first, err := d.CategoryRepo().FindAll(ctx, Page{Offset: 0, Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "a", first[0].Slug)
	assert.Equal(t, "b", first[1].Slug)

	last, err := d.CategoryRepo().FindAll(ctx, Page{Offset: 4, Limit: 2})
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, "e", last[0].Slug)

	none, err := d.CategoryRepo().FindAll(ctx, Page{Offset: 0, Limit: 0})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	all, err := d.CategoryRepo().FindAll(ctx, DefaultPage())
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestReplace(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	cat := newCategory("Arrays", "arrays")
	cat.Icon = strPtr("table")
	cat.Order = 3
	require.NoError(t, d.CategoryRepo().Add(ctx, cat))
	require.NoError(t, d.CategoryRepo().Add(ctx, newCategory("Stacks", "stacks")))

	replacement := models.CategoryInput{Name: "Arrays", Slug: "arrays", Type: models.CategoryTypeDataStructure}.Record()
	require.NoError(t, d.CategoryRepo().Replace(ctx, cat.ID, &replacement))

	got, err := d.CategoryRepo().FindByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Icon)
	assert.Equal(t, 0, got.Order)

	clash := models.CategoryInput{Name: "Arrays", Slug: "stacks", Type: models.CategoryTypeDataStructure}.Record()
	err = d.CategoryRepo().Replace(ctx, cat.ID, &clash)
	assert.True(t, errs.IsUniqueConstraintViolationError(err))

	missing := models.CategoryInput{Name: "Ghost", Slug: "ghost", Type: models.CategoryTypeAlgorithm}.Record()
	err = d.CategoryRepo().Replace(ctx, 999, &missing)
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, int64(2), countRows(t, d, &models.Category{}))
}

func TestDelete(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	alg := &models.Algorithm{Name: "Binary Search", Slug: "binary-search", Category: "searching"}
	require.NoError(t, d.AlgorithmRepo().Add(ctx, alg))

	require.NoError(t, d.AlgorithmRepo().Delete(ctx, alg.ID))
	_, err := d.AlgorithmRepo().FindByID(ctx, alg.ID)
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, "Algorithm not found", err.Error())

	err = d.AlgorithmRepo().Delete(ctx, alg.ID)
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, errs.StatusCode(err))
}

func TestExampleRequiresExistingCategory(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	err := d.ExampleRepo().Add(ctx, &models.Example{Title: "Orphan", Slug: "orphan", CategoryID: 42})
	require.Error(t, err)
	assert.True(t, errs.IsForeignKeyConstraintError(err))
	assert.Equal(t, http.StatusBadRequest, errs.StatusCode(err))
	assert.Equal(t, int64(0), countRows(t, d, &models.Example{}))
}

func TestCategoryDeleteRejectedWhileReferenced(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	cat := newCategory("Arrays", "arrays")
	require.NoError(t, d.CategoryRepo().Add(ctx, cat))
	ex := &models.Example{Title: "Dynamic Array", Slug: "dynamic-array", CategoryID: cat.ID}
	require.NoError(t, d.ExampleRepo().Add(ctx, ex))

	err := d.CategoryRepo().Delete(ctx, cat.ID)
	require.Error(t, err)
	assert.True(t, errs.IsStillReferencedError(err))
	assert.True(t, errs.IsConflict(err))
	assert.Equal(t, int64(1), countRows(t, d, &models.Category{}))

	require.NoError(t, d.ExampleRepo().Delete(ctx, ex.ID))
	require.NoError(t, d.CategoryRepo().Delete(ctx, cat.ID))
}

func TestSchemaRestrictsCategoryDelete(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	cat := newCategory("Arrays", "arrays")
	require.NoError(t, d.CategoryRepo().Add(ctx, cat))
	require.NoError(t, d.ExampleRepo().Add(ctx, &models.Example{Title: "A", Slug: "a", CategoryID: cat.ID}))

	err := d.DB().Exec("DELETE FROM categories WHERE id = ?", cat.ID).Error
	assert.Error(t, err)
	assert.Equal(t, int64(1), countRows(t, d, &models.Category{}))
}

func TestExampleFilterDistinguishesZero(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	cat := newCategory("Arrays", "arrays")
	require.NoError(t, d.CategoryRepo().Add(ctx, cat))
	other := newCategory("Stacks", "stacks")
	require.NoError(t, d.CategoryRepo().Add(ctx, other))
	require.NoError(t, d.ExampleRepo().Add(ctx, &models.Example{Title: "A", Slug: "a", CategoryID: cat.ID}))
	require.NoError(t, d.ExampleRepo().Add(ctx, &models.Example{Title: "B", Slug: "b", CategoryID: other.ID}))

	all, err := d.ExampleRepo().FindAll(ctx, DefaultPage(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := d.ExampleRepo().FindAll(ctx, DefaultPage(), &other.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "b", filtered[0].Slug)

	zero := 0
	none, err := d.ExampleRepo().FindAll(ctx, DefaultPage(), &zero)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAlgorithmFilterDistinguishesEmptyLabel(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	require.NoError(t, d.AlgorithmRepo().Add(ctx, &models.Algorithm{Name: "Quick Sort", Slug: "quick-sort", Category: "sorting"}))
	require.NoError(t, d.AlgorithmRepo().Add(ctx, &models.Algorithm{Name: "Unfiled", Slug: "unfiled"}))

	sorting := "sorting"
	got, err := d.AlgorithmRepo().FindAll(ctx, DefaultPage(), &sorting)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "quick-sort", got[0].Slug)

	empty := ""
	got, err = d.AlgorithmRepo().FindAll(ctx, DefaultPage(), &empty)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "unfiled", got[0].Slug)
}

func TestClosedDatabaseIsUnavailable(t *testing.T) {
	d := newTestDatabase(t)
	require.NoError(t, d.Close())

	_, err := d.CategoryRepo().FindAll(context.Background(), DefaultPage())
	require.Error(t, err)
	assert.True(t, errs.IsDatabaseConnectionError(err))
	assert.Equal(t, http.StatusServiceUnavailable, errs.StatusCode(err))
	assert.Error(t, d.Ping(context.Background()))
}
