package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	infradb "github.com/spendtrack/backend/internal/infra/db"
)

var once sync.Once
var db *Db

type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb returns the shared in-memory database, migrated with every API model.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := infradb.Migrate(dbConn); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	models := make(map[string]any)
	for _, model := range infradb.Models() {
		stmt := &gorm.Statement{DB: dbConn}
		if err := stmt.Parse(model); err != nil {
			panic(err)
		}
		models[stmt.Schema.Table] = model
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// ClearDB deletes every row and resets the autoincrement counters.
func (d *Db) ClearDB() error {
	for table, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}

func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
