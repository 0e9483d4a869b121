package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_03_000000_create_tournaments_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS tournaments (
						id VARCHAR(50) PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						sport VARCHAR(20) NOT NULL DEFAULT 'padel'
							CHECK (sport IN ('padel', 'futbol', 'hockey')),
						modality VARCHAR(20) NOT NULL DEFAULT 'escalera'
							CHECK (modality IN ('escalera', 'grupo', 'liga')),
						status VARCHAR(20) NOT NULL DEFAULT 'active'
							CHECK (status IN ('active', 'finished')),
						start_date DATE NULL,
						end_date DATE NULL,
						rules TEXT,
						state_json JSONB,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_tournaments_status ON tournaments(status);
					CREATE INDEX IF NOT EXISTS idx_tournaments_sport ON tournaments(sport);
					CREATE INDEX IF NOT EXISTS idx_tournaments_deleted_at ON tournaments(deleted_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS tournaments CASCADE").Error
			},
		},
	}
}
