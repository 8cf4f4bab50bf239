package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rpupo63/dsa-learning-backend/models"
)

// Database is the catalog store: one repository per entity family sharing a
// single gorm connection.
type Database struct {
	db            *gorm.DB
	categoryRepo  *CategoryRepo
	exampleRepo   *ExampleRepo
	algorithmRepo *AlgorithmRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:            db,
		categoryRepo:  NewCategoryRepo(db),
		exampleRepo:   NewExampleRepo(db),
		algorithmRepo: NewAlgorithmRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ExampleRepo() *ExampleRepo {
	return d.exampleRepo
}

func (d Database) AlgorithmRepo() *AlgorithmRepo {
	return d.algorithmRepo
}

// DB exposes the connection for maintenance tooling.
func (d Database) DB() *gorm.DB {
	return d.db
}

// Migrate creates or updates the catalog tables.
func (d Database) Migrate(ctx context.Context) error {
	if err := d.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrating catalog schema: %w", err)
	}
	return nil
}

// Ping checks that the store is reachable.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
