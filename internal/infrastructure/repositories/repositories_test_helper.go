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
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProfileTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		agency_id TEXT,
		profile_name TEXT NOT NULL,
		description TEXT,
		city TEXT,
		country TEXT,
		tariff REAL NOT NULL DEFAULT 0,
		currency TEXT NOT NULL DEFAULT 'EUR',
		categories TEXT,
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		verified_at DATETIME,
		is_available BOOLEAN NOT NULL DEFAULT 1,
		activity_score INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE profile_photos (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		url TEXT NOT NULL,
		is_principal BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createAgencyTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE agencies (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		logo_url TEXT,
		website TEXT,
		address TEXT,
		city TEXT,
		country TEXT,
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		verified_at DATETIME,
		commission_percent REAL,
		points_accumulated INTEGER NOT NULL DEFAULT 0,
		points_spent INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE agency_registration_requests (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		description TEXT,
		logo_url TEXT,
		website TEXT,
		address TEXT,
		city TEXT,
		country TEXT,
		state TEXT NOT NULL DEFAULT 'pending',
		motive TEXT,
		submitted_at DATETIME NOT NULL,
		responded_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createVerificationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_records (
		id TEXT PRIMARY KEY,
		agency_id TEXT NOT NULL,
		profile_id TEXT NOT NULL,
		verified_at DATETIME NOT NULL,
		charged_amount REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		notes TEXT,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE verification_payments (
		id TEXT PRIMARY KEY,
		verification_id TEXT NOT NULL UNIQUE,
		profile_id TEXT NOT NULL,
		agency_id TEXT NOT NULL,
		amount REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		paid_at DATETIME,
		external_ref TEXT,
		created_at DATETIME
	);`)
}

func createPointsMovementTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE points_movements (
		id TEXT PRIMARY KEY,
		agency_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		type TEXT NOT NULL,
		concept TEXT NOT NULL,
		balance_before INTEGER NOT NULL,
		balance_after INTEGER NOT NULL,
		created_at DATETIME
	);`)
}

func createMembershipRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE membership_requests (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		agency_id TEXT NOT NULL,
		state TEXT NOT NULL,
		submitted_at DATETIME NOT NULL,
		responded_at DATETIME,
		motive TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createFeaturedPlacementTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE featured_placements (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		starts_at DATETIME NOT NULL,
		ends_at DATETIME NOT NULL,
		kind TEXT NOT NULL,
		amount_paid REAL NOT NULL DEFAULT 0,
		coupon_id TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createActivityTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profile_visits (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		visitor_id TEXT,
		ip TEXT,
		user_agent TEXT,
		visited_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE profile_contacts (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		visitor_id TEXT,
		contact_type TEXT NOT NULL,
		ip TEXT,
		is_registered BOOLEAN NOT NULL DEFAULT 0,
		contacted_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}
