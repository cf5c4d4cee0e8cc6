package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		name TEXT,
		password_hash TEXT,
		role TEXT,
		status TEXT,
		deleted_at DATETIME,
		deleted_by TEXT,
		deletion_reason TEXT,
		original_status TEXT,
		restored_at DATETIME,
		restored_by TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSellerTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE sellers (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		farm_name TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createDeletedUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE deleted_users (
		id TEXT PRIMARY KEY,
		original_id TEXT NOT NULL,
		name TEXT,
		email TEXT,
		role TEXT,
		status TEXT,
		deleted_at DATETIME,
		deleted_by TEXT,
		reason TEXT
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		seller_id TEXT NOT NULL,
		name TEXT,
		description TEXT,
		category TEXT,
		price REAL,
		stock INTEGER,
		status TEXT,
		previous_status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createArchivedProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE archived_products (
		id TEXT PRIMARY KEY,
		original_id TEXT NOT NULL,
		original_seller_id TEXT NOT NULL,
		name TEXT,
		category TEXT,
		price REAL,
		status TEXT,
		archived_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		seller_id TEXT NOT NULL,
		buyer_id TEXT NOT NULL,
		quantity INTEGER,
		amount REAL,
		status TEXT,
		payment_method TEXT,
		delivery_method TEXT,
		cancelled_at DATETIME,
		cancellation_reason TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAuditLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admin_audit_logs (
		id TEXT PRIMARY KEY,
		action TEXT NOT NULL,
		target_user_id TEXT NOT NULL,
		target_name TEXT,
		target_email TEXT,
		target_role TEXT,
		target_status TEXT,
		admin_id TEXT NOT NULL,
		delete_type TEXT,
		reason TEXT,
		timestamp DATETIME
	);`)
}

func createNotificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT,
		message TEXT,
		type TEXT,
		read BOOLEAN,
		data TEXT,
		dispatched_at DATETIME,
		created_at DATETIME
	);`)
}
