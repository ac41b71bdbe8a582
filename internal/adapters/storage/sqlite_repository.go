package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/paths"
	"github.com/renato0307/muxdeck/internal/ports"
)

// defaultZoom is stored for profiles that never changed the zoom level
const defaultZoom = 1.0

// SQLiteRepository implements ports.PreferencesRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.PreferencesRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the muxdeck logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if logging.DebugEnabled() {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating when needed) the preferences database
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = paths.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Several muxdeck processes (TUI, serve, CLI) may share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&PreferenceModel{}, &HostSelectionModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate preferences schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath creates a repository in a specific MUXDECK_HOME
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// LoadPreferences implements PreferencesRepository.LoadPreferences.
// An unknown profile yields default preferences.
func (r *SQLiteRepository) LoadPreferences(ctx context.Context, profile string) (domain.Preferences, error) {
	var pref PreferenceModel
	var selections []HostSelectionModel
	found := true

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("profile = ?", profile).First(&pref).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				found = false
			}
			return tx.Where("profile = ?", profile).Order("host_id").Find(&selections).Error
		})
	}, 3)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to load preferences for %s: %w", profile, err)
	}

	if !found {
		pref = PreferenceModel{Profile: profile, Zoom: defaultZoom}
	}
	return preferencesToDomain(pref, selections), nil
}

// SavePreferences implements PreferencesRepository.SavePreferences.
// The stored host selections are replaced by prefs.LastActive.
func (r *SQLiteRepository) SavePreferences(ctx context.Context, profile string, prefs domain.Preferences) error {
	zoom := prefs.Zoom
	if zoom <= 0 {
		zoom = defaultZoom
	}
	pref := PreferenceModel{
		Profile:     profile,
		ScopeHostID: prefs.ScopeHostID,
		Zoom:        zoom,
	}
	rows := domainToHostSelections(profile, prefs)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "profile"}},
				DoUpdates: clause.AssignmentColumns([]string{"scope_host_id", "zoom", "updated_at"}),
			}).Create(&pref).Error; err != nil {
				return err
			}
			if err := tx.Where("profile = ?", profile).Delete(&HostSelectionModel{}).Error; err != nil {
				return err
			}
			if len(rows) == 0 {
				return nil
			}
			return tx.Create(&rows).Error
		})
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save preferences for %s: %w", profile, err)
	}

	logging.Logger.Debug("Preferences saved",
		"profile", profile,
		"scope", prefs.ScopeHostID,
		"hosts", len(rows),
		"zoom", zoom)
	return nil
}

// ListProfiles returns every profile with stored preferences
func (r *SQLiteRepository) ListProfiles(ctx context.Context) ([]string, error) {
	var profiles []string
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&PreferenceModel{}).Order("profile").Pluck("profile", &profiles).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// DeletePreferences removes everything stored for profile
func (r *SQLiteRepository) DeletePreferences(ctx context.Context, profile string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("profile = ?", profile).Delete(&HostSelectionModel{}).Error; err != nil {
				return err
			}
			return tx.Where("profile = ?", profile).Delete(&PreferenceModel{}).Error
		})
	}, 3)
}

// withRetry retries fn while sqlite reports the database busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
