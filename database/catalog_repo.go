package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/dsa-learning-backend/errs"
	"github.com/rpupo63/dsa-learning-backend/models"
)

// DefaultLimit bounds list results when the caller gives no limit.
const DefaultLimit = 100

// Page selects a window of a list in insertion order.
type Page struct {
	Offset int
	Limit  int
}

func DefaultPage() Page {
	return Page{Offset: 0, Limit: DefaultLimit}
}

// record constrains P to be the pointer type of T that implements models.Entity.
type record[T any] interface {
	*T
	models.Entity
}

// catalogRepo holds the operations shared by every entity family. Writes run
// in a transaction so a failed uniqueness or reference check leaves no row.
type catalogRepo[T any, P record[T]] struct {
	db     *gorm.DB
	entity string

	// beforeWrite runs inside create and replace transactions.
	beforeWrite func(tx *gorm.DB, rec P) error
	// beforeDelete runs inside the delete transaction after the row is found.
	beforeDelete func(tx *gorm.DB, rec P) error
}

func newCatalogRepo[T any, P record[T]](db *gorm.DB) catalogRepo[T, P] {
	return catalogRepo[T, P]{db: db, entity: P(new(T)).EntityName()}
}

func (r catalogRepo[T, P]) list(ctx context.Context, page Page, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	out := []T{}
	if page.Limit <= 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).
		Scopes(scopes...).
		Order("id").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&out).Error
	if err != nil {
		return nil, r.translate("list", err)
	}
	return out, nil
}

// FindByID returns the record with the given identity or a NotFound error.
func (r catalogRepo[T, P]) FindByID(ctx context.Context, id int) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, r.translate("get", err)
	}
	return &rec, nil
}

// FindBySlug returns the record with the given slug or a NotFound error.
func (r catalogRepo[T, P]) FindBySlug(ctx context.Context, slug string) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&rec).Error; err != nil {
		return nil, r.translate("get", err)
	}
	return &rec, nil
}

// Add inserts rec and fills in its generated identity.
func (r catalogRepo[T, P]) Add(ctx context.Context, rec *T) error {
	p := P(rec)
	p.SetPrimaryKey(0)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.checkWrite(tx, p); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(rec).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.duplicateKeyError(ctx, p, err)
	}
	if err != nil {
		return r.translate("create", err)
	}
	return nil
}

// Replace overwrites every column of the record with the given identity.
func (r catalogRepo[T, P]) Replace(ctx context.Context, id int, rec *T) error {
	p := P(rec)
	p.SetPrimaryKey(id)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(new(T), id).Error; err != nil {
			return err
		}
		if err := r.checkWrite(tx, p); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(rec).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.duplicateKeyError(ctx, p, err)
	}
	if err != nil {
		return r.translate("update", err)
	}
	return nil
}

// Delete removes the record with the given identity.
func (r catalogRepo[T, P]) Delete(ctx context.Context, id int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec T
		if err := tx.First(&rec, id).Error; err != nil {
			return err
		}
		if r.beforeDelete != nil {
			if err := r.beforeDelete(tx, P(&rec)); err != nil {
				return err
			}
		}
		return tx.Delete(&rec).Error
	})
	if err != nil {
		return r.translate("delete", err)
	}
	return nil
}

func (r catalogRepo[T, P]) checkWrite(tx *gorm.DB, rec P) error {
	taken, err := r.takenField(tx, rec)
	if err != nil {
		return err
	}
	if taken != nil {
		return errs.NewUniqueConstraintViolationError(r.entity, taken.Column, taken.Value, nil)
	}
	if r.beforeWrite != nil {
		return r.beforeWrite(tx, rec)
	}
	return nil
}

// takenField returns the first unique field of rec already held by another
// row, or nil.
func (r catalogRepo[T, P]) takenField(tx *gorm.DB, rec P) (*models.UniqueField, error) {
	for _, f := range rec.UniqueFields() {
		var count int64
		q := tx.Model(new(T)).Where(clause.Eq{Column: clause.Column{Name: f.Column}, Value: f.Value})
		if id := rec.PrimaryKey(); id != 0 {
			q = q.Where("id <> ?", id)
		}
		if err := q.Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return &f, nil
		}
	}
	return nil, nil
}

// duplicateKeyError names the field behind a unique index violation that a
// concurrent writer won after checkWrite passed.
func (r catalogRepo[T, P]) duplicateKeyError(ctx context.Context, rec P, cause error) error {
	taken, err := r.takenField(r.db.WithContext(ctx), rec)
	if err != nil || taken == nil {
		return errs.NewUniqueConstraintViolationError(r.entity, "", nil, cause)
	}
	return errs.NewUniqueConstraintViolationError(r.entity, taken.Column, taken.Value, cause)
}

// translate maps gorm and driver errors onto the API error taxonomy.
func (r catalogRepo[T, P]) translate(op string, err error) error {
	var apiErr *errs.ApiErr
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewNotFound(r.entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewUniqueConstraintViolationError(r.entity, "", nil, err)
	default:
		return errs.NewDatabaseError(op, r.entity, err)
	}
}
