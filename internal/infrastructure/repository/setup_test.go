package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/infrastructure/persistence/migrations"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// every pooled connection would otherwise get its own empty :memory: db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

type boardFixture struct {
	dina, budi, rani models.UserModel
	campaign         models.ActivityTypeModel
	launch           models.ActivityModel
	banner           models.TaskModel
	orphan           models.TaskModel
}

// seedBoard creates one activity with a PIC and approver, a task under it
// and a standalone task.
func seedBoard(t *testing.T, db *gorm.DB) *boardFixture {
	f := &boardFixture{
		dina:     models.UserModel{Name: "Dina", Email: "dina@example.com"},
		budi:     models.UserModel{Name: "Budi", Email: "budi@example.com"},
		rani:     models.UserModel{Name: "Rani", Email: "rani@example.com", Role: "Leader"},
		campaign: models.ActivityTypeModel{Name: "Campaign"},
	}
	require.NoError(t, db.Create(&f.dina).Error)
	require.NoError(t, db.Create(&f.budi).Error)
	require.NoError(t, db.Create(&f.rani).Error)
	require.NoError(t, db.Create(&f.campaign).Error)

	f.launch = models.ActivityModel{
		Name:           "Product Launch",
		StartDate:      date("2026-02-01"),
		EndDate:        date("2026-02-22"),
		Status:         "In Progress",
		ActivityTypeID: &f.campaign.ID,
		PICs:           []models.UserModel{f.dina, f.budi},
		Approvers:      []models.UserModel{f.rani},
	}
	require.NoError(t, db.Create(&f.launch).Error)

	f.banner = models.TaskModel{
		ActivityID: &f.launch.ID,
		Name:       "Design banner",
		EndDate:    date("2026-02-24"),
		Status:     "To Do",
		PICs:       []models.UserModel{f.budi},
	}
	require.NoError(t, db.Create(&f.banner).Error)

	f.orphan = models.TaskModel{
		Name:    "Renew domain",
		EndDate: date("2026-03-01"),
		Status:  "In Progress",
	}
	require.NoError(t, db.Create(&f.orphan).Error)

	return f
}
