package migrations

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	Batch     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type MigrationFunc func(*gorm.DB) error

type MigrationDefinition struct {
	Name string
	Up   MigrationFunc
	Down MigrationFunc
}

// Migrator applies registered migrations in order, recording each run in the
// migrations table so reruns are idempotent.
type Migrator struct {
	db         *gorm.DB
	migrations []MigrationDefinition
}

func NewMigrator(db *gorm.DB) *Migrator {
	db.AutoMigrate(&Migration{})
	return &Migrator{
		db:         db,
		migrations: []MigrationDefinition{},
	}
}

func (m *Migrator) AddMigration(migration MigrationDefinition) {
	m.migrations = append(m.migrations, migration)
}

func (m *Migrator) Migrate() error {
	log.Println("Running database migrations...")

	batch := m.getNextBatch()

	for _, migration := range m.migrations {
		if m.hasRun(migration.Name) {
			continue
		}

		log.Printf("Migrating: %s", migration.Name)

		tx := m.db.Begin()

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", migration.Name, err)
		}

		record := Migration{
			Name:  migration.Name,
			Batch: batch,
		}

		if err := tx.Create(&record).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
		}

		tx.Commit()
		log.Printf("Migrated: %s", migration.Name)
	}

	log.Println("Migration completed successfully")
	return nil
}

// Rollback undoes the last `steps` batches, newest first.
func (m *Migrator) Rollback(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	log.Printf("Rolling back %d migration batch(es)...", steps)

	batch := m.getLatestBatch()

	for i := 0; i < steps && batch > 0; i++ {
		var toRollback []Migration
		m.db.Where("batch = ?", batch).Order("id DESC").Find(&toRollback)

		for _, record := range toRollback {
			migration := m.findMigration(record.Name)
			if migration == nil {
				return fmt.Errorf("migration definition not found: %s", record.Name)
			}

			if migration.Down == nil {
				return fmt.Errorf("rollback not defined for migration: %s", record.Name)
			}

			log.Printf("Rolling back: %s", record.Name)

			tx := m.db.Begin()

			if err := migration.Down(tx); err != nil {
				tx.Rollback()
				return fmt.Errorf("rollback failed for %s: %w", record.Name, err)
			}

			if err := tx.Delete(&record).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to remove migration record %s: %w", record.Name, err)
			}

			tx.Commit()
			log.Printf("Rolled back: %s", record.Name)
		}

		batch--
	}

	log.Println("Rollback completed successfully")
	return nil
}

// MigrationStatus describes one migration for status reporting: applied
// migrations carry their batch, pending ones have Applied false and Batch 0.
type MigrationStatus struct {
	Name    string
	Batch   int
	Applied bool
}

// Status lists every known migration in registration order with its applied
// state, then any recorded migration whose definition is no longer registered
// (an older binary applied it).
func (m *Migrator) Status() []MigrationStatus {
	var applied []Migration
	m.db.Order("batch ASC, id ASC").Find(&applied)

	batches := make(map[string]int, len(applied))
	for _, record := range applied {
		batches[record.Name] = record.Batch
	}

	statuses := make([]MigrationStatus, 0, len(m.migrations))
	for _, migration := range m.migrations {
		batch, ok := batches[migration.Name]
		statuses = append(statuses, MigrationStatus{
			Name:    migration.Name,
			Batch:   batch,
			Applied: ok,
		})
		delete(batches, migration.Name)
	}
	for _, record := range applied {
		if _, orphaned := batches[record.Name]; orphaned {
			statuses = append(statuses, MigrationStatus{
				Name:    record.Name,
				Batch:   record.Batch,
				Applied: true,
			})
		}
	}
	return statuses
}

func (m *Migrator) hasRun(name string) bool {
	var count int64
	m.db.Model(&Migration{}).Where("name = ?", name).Count(&count)
	return count > 0
}

func (m *Migrator) getNextBatch() int {
	var migration Migration
	m.db.Order("batch DESC").First(&migration)
	return migration.Batch + 1
}

func (m *Migrator) getLatestBatch() int {
	var migration Migration
	m.db.Order("batch DESC").First(&migration)
	return migration.Batch
}

func (m *Migrator) findMigration(name string) *MigrationDefinition {
	for _, migration := range m.migrations {
		if migration.Name == name {
			return &migration
		}
	}
	return nil
}
