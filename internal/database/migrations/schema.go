package migrations

import "gorm.io/gorm"

// The DDL below is the legacy SugarByte schema and is kept byte-compatible
// with databases produced by earlier releases. Column names stay camelCase;
// the UNIQUE(userId, date, timeOfDay) index backs the one-reading-per-slot
// invariant at the storage level.

const createUserTable = `
CREATE TABLE IF NOT EXISTS user (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT,
    diabetesType TEXT,
    insulinType TEXT,
    insulinAdmin TEXT,
    email TEXT UNIQUE NOT NULL,
    phone TEXT,
    doctorName TEXT,
    doctorEmail TEXT,
    doctorAddress TEXT,
    doctorEmergencyPhone TEXT,
    logbookType TEXT,
    password TEXT NOT NULL
)`

const createLogEntryTable = `
CREATE TABLE IF NOT EXISTS logentry (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    userId INTEGER NOT NULL,
    date TEXT NOT NULL,
    timeOfDay TEXT NOT NULL,
    bloodSugar REAL,
    carbsEaten REAL,
    hoursSinceMeal INTEGER,
    foodDetails TEXT,
    exerciseType TEXT,
    exerciseDuration INTEGER,
    insulinDose REAL,
    otherMedications TEXT,
    UNIQUE(userId, date, timeOfDay),
    FOREIGN KEY(userId) REFERENCES user(id) ON DELETE CASCADE
)`

func init() {
	Register("001_create_user",
		func(db *gorm.DB) error {
			return db.Exec(createUserTable).Error
		},
		func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS user`).Error
		})

	Register("002_create_logentry",
		func(db *gorm.DB) error {
			return db.Exec(createLogEntryTable).Error
		},
		func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS logentry`).Error
		})
}
